package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/iho/goassets/internal/domain"
)

// SaveAssetsListUseCase builds, validates and stores an assets list.
type SaveAssetsListUseCase struct {
	repo       AssetsListRepository
	calculator InterestRateCalculator
	metrics    MetricsRecorder
}

// NewSaveAssetsListUseCase creates a new SaveAssetsListUseCase. metrics may be nil.
func NewSaveAssetsListUseCase(repo AssetsListRepository, calculator InterestRateCalculator, metrics MetricsRecorder) *SaveAssetsListUseCase {
	if metrics == nil {
		metrics = nopMetrics{}
	}
	return &SaveAssetsListUseCase{
		repo:       repo,
		calculator: calculator,
		metrics:    metrics,
	}
}

// AssetInput describes one asset to save. A nil ID gets a generated one.
type AssetInput struct {
	ID           *string
	InterestRate *float64
}

// SaveAssetsListInput represents input for saving an assets list.
// A nil Assets slice means no list was provided.
type SaveAssetsListInput struct {
	Assets []AssetInput
}

// SaveAssetsList replaces the stored list with one built from input.
// Nothing is written unless every asset and the list itself are valid.
func (uc *SaveAssetsListUseCase) SaveAssetsList(ctx context.Context, input SaveAssetsListInput) (*domain.AssetsList, error) {
	var assets []domain.Asset
	if input.Assets != nil {
		assets = make([]domain.Asset, 0, len(input.Assets))
	}

	for i, in := range input.Assets {
		var opts []domain.EntityOption
		if in.ID != nil {
			opts = append(opts, domain.WithID(*in.ID))
		}

		asset, err := domain.NewAsset(in.InterestRate, opts...)
		if err != nil {
			uc.metrics.AssetsListRejected(ReasonInvalidAsset)
			return nil, fmt.Errorf("assets[%d]: %w", i, err)
		}
		assets = append(assets, asset)
	}

	avg, err := uc.calculator.Calculate(assets)
	if err != nil {
		uc.metrics.AssetsListRejected(rejectReason(err))
		return nil, err
	}

	list, err := domain.NewAssetsList(assets, avg)
	if err != nil {
		uc.metrics.AssetsListRejected(rejectReason(err))
		return nil, err
	}

	saved, err := uc.repo.Save(ctx, list)
	if err != nil {
		uc.metrics.AssetsListRejected(ReasonRepository)
		return nil, err
	}

	uc.metrics.AssetsListSaved(len(assets))

	return saved, nil
}

// GetAverageInterestRateUseCase reads the average of the stored list.
type GetAverageInterestRateUseCase struct {
	repo AssetsListRepository
}

// NewGetAverageInterestRateUseCase creates a new GetAverageInterestRateUseCase.
func NewGetAverageInterestRateUseCase(repo AssetsListRepository) *GetAverageInterestRateUseCase {
	return &GetAverageInterestRateUseCase{repo: repo}
}

// GetAverageInterestRate returns nil when no list has been saved yet.
func (uc *GetAverageInterestRateUseCase) GetAverageInterestRate(ctx context.Context) (*float64, error) {
	return uc.repo.GetAverageInterestRate(ctx)
}

func rejectReason(err error) string {
	var dupErr *domain.DuplicateAssetIDError
	switch {
	case errors.Is(err, domain.ErrInvalidList):
		return ReasonInvalidList
	case errors.Is(err, domain.ErrEmptyList):
		return ReasonEmptyList
	case errors.As(err, &dupErr):
		return ReasonDuplicateIDs
	default:
		return ReasonInvalidAsset
	}
}

type nopMetrics struct{}

func (nopMetrics) AssetsListSaved(int)          {}
func (nopMetrics) AssetsListRejected(string)    {}
