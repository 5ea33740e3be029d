package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/iho/goassets/internal/domain"
)

// AssetsListStorageKey is the slot the assets list lives under, before prefixing.
const AssetsListStorageKey = "assets_list"

// AssetsListRepository implements usecase.AssetsListRepository on a Redis key.
// Each save overwrites the whole snapshot with a single SET.
type AssetsListRepository struct {
	cache *Cache
}

// NewAssetsListRepository creates a new AssetsListRepository.
func NewAssetsListRepository(cache *Cache) *AssetsListRepository {
	return &AssetsListRepository{cache: cache}
}

type assetRecord struct {
	ID           string    `json:"id"`
	CreatedAt    time.Time `json:"created_at"`
	InterestRate float64   `json:"interest_rate"`
}

type assetsListRecord struct {
	ID              string        `json:"id"`
	CreatedAt       time.Time     `json:"created_at"`
	Assets          []assetRecord `json:"assets"`
	AvgInterestRate float64       `json:"avg_interest_rate"`
}

func recordFromDomain(list *domain.AssetsList) assetsListRecord {
	assets := list.Assets()
	rec := assetsListRecord{
		ID:              list.ID(),
		CreatedAt:       list.CreatedAt(),
		Assets:          make([]assetRecord, len(assets)),
		AvgInterestRate: list.AvgInterestRate(),
	}
	for i, a := range assets {
		rec.Assets[i] = assetRecord{
			ID:           a.ID(),
			CreatedAt:    a.CreatedAt(),
			InterestRate: a.InterestRate(),
		}
	}
	return rec
}

// Save replaces the stored snapshot.
func (r *AssetsListRepository) Save(ctx context.Context, list *domain.AssetsList) (*domain.AssetsList, error) {
	payload, err := json.Marshal(recordFromDomain(list))
	if err != nil {
		return nil, fmt.Errorf("failed to encode assets list: %w", err)
	}

	if err := r.cache.Set(ctx, AssetsListStorageKey, string(payload), 0); err != nil {
		return nil, fmt.Errorf("failed to store assets list: %w", err)
	}

	return list, nil
}

// GetAverageInterestRate returns the stored average or nil when the key is absent.
func (r *AssetsListRepository) GetAverageInterestRate(ctx context.Context) (*float64, error) {
	payload, err := r.cache.Get(ctx, AssetsListStorageKey)
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load assets list: %w", err)
	}

	var rec assetsListRecord
	if err := json.Unmarshal([]byte(payload), &rec); err != nil {
		return nil, fmt.Errorf("failed to decode assets list: %w", err)
	}

	return &rec.AvgInterestRate, nil
}
