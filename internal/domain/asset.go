package domain

import (
	"fmt"
	"math"
)

// Asset is a financial instrument with an interest rate.
type Asset struct {
	Entity

	interestRate float64
}

// NewAsset builds an asset. The rate is required and must be a finite number;
// zero and negative rates are accepted as is.
func NewAsset(interestRate *float64, opts ...EntityOption) (Asset, error) {
	if interestRate == nil {
		return Asset{}, fmt.Errorf("%w: interest_rate is required", ErrInvalidAsset)
	}
	if math.IsNaN(*interestRate) || math.IsInf(*interestRate, 0) {
		return Asset{}, fmt.Errorf("%w: interest_rate must be a finite number", ErrInvalidAsset)
	}

	return Asset{
		Entity:       newEntity(opts...),
		interestRate: *interestRate,
	}, nil
}

// InterestRate returns the asset interest rate.
func (a Asset) InterestRate() float64 { return a.interestRate }
