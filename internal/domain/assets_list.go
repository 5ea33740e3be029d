package domain

// AssetsList is an immutable snapshot of assets and their average interest rate.
type AssetsList struct {
	Entity

	assets          []Asset
	avgInterestRate float64
}

// NewAssetsList builds a list from assets and a precomputed average.
// It fails with *DuplicateAssetIDError when two assets share an ID.
func NewAssetsList(assets []Asset, avgInterestRate float64, opts ...EntityOption) (*AssetsList, error) {
	if err := validateUniqueAssetIDs(assets); err != nil {
		return nil, err
	}

	stored := make([]Asset, len(assets))
	copy(stored, assets)

	return &AssetsList{
		Entity:          newEntity(opts...),
		assets:          stored,
		avgInterestRate: avgInterestRate,
	}, nil
}

// Assets returns a copy of the assets in their original order.
func (l *AssetsList) Assets() []Asset {
	out := make([]Asset, len(l.assets))
	copy(out, l.assets)
	return out
}

// AvgInterestRate returns the average computed when the list was built.
func (l *AssetsList) AvgInterestRate() float64 { return l.avgInterestRate }

// validateUniqueAssetIDs reports every repeated ID once, in the order the
// repetition was first seen.
func validateUniqueAssetIDs(assets []Asset) error {
	seen := make(map[string]struct{}, len(assets))
	reported := make(map[string]struct{})
	var duplicates []string

	for _, a := range assets {
		id := a.ID()
		if _, ok := seen[id]; !ok {
			seen[id] = struct{}{}
			continue
		}
		if _, ok := reported[id]; ok {
			continue
		}
		reported[id] = struct{}{}
		duplicates = append(duplicates, id)
	}

	if len(duplicates) > 0 {
		return &DuplicateAssetIDError{IDs: duplicates}
	}
	return nil
}
