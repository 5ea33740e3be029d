package memory

import (
	"context"

	"github.com/iho/goassets/internal/domain"
	"github.com/iho/goassets/internal/infrastructure/memstore"
)

// AssetsListStorageKey is the slot the assets list lives under.
const AssetsListStorageKey = "assets_list"

// AssetsListRepository implements usecase.AssetsListRepository in process memory.
type AssetsListRepository struct {
	store *memstore.Store[*domain.AssetsList]
}

// NewAssetsListRepository creates a new AssetsListRepository backed by store.
func NewAssetsListRepository(store *memstore.Store[*domain.AssetsList]) *AssetsListRepository {
	return &AssetsListRepository{store: store}
}

// Save replaces the stored list.
func (r *AssetsListRepository) Save(ctx context.Context, list *domain.AssetsList) (*domain.AssetsList, error) {
	r.store.Set(AssetsListStorageKey, list)
	return list, nil
}

// GetAverageInterestRate returns the stored average or nil.
func (r *AssetsListRepository) GetAverageInterestRate(ctx context.Context) (*float64, error) {
	list, ok := r.store.Get(AssetsListStorageKey)
	if !ok || list == nil {
		return nil, nil
	}
	avg := list.AvgInterestRate()
	return &avg, nil
}
