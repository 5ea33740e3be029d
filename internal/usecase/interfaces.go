package usecase

import (
	"context"

	"github.com/iho/goassets/internal/domain"
)

// AssetsListRepository stores a single assets list, replacing it on every save.
type AssetsListRepository interface {
	// Save stores the list under the fixed storage key and returns it unchanged.
	Save(ctx context.Context, list *domain.AssetsList) (*domain.AssetsList, error)
	// GetAverageInterestRate returns the stored average, or nil when nothing was saved.
	GetAverageInterestRate(ctx context.Context) (*float64, error)
}

// InterestRateCalculator computes the average interest rate of assets.
type InterestRateCalculator interface {
	Calculate(assets []domain.Asset) (float64, error)
}

// MetricsRecorder receives save outcomes.
type MetricsRecorder interface {
	AssetsListSaved(assets int)
	AssetsListRejected(reason string)
}
