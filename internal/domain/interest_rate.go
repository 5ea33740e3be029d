package domain

// InterestRateAvgCalculator computes the mean interest rate of a set of assets.
type InterestRateAvgCalculator struct{}

// NewInterestRateAvgCalculator creates a new InterestRateAvgCalculator.
func NewInterestRateAvgCalculator() *InterestRateAvgCalculator {
	return &InterestRateAvgCalculator{}
}

// Calculate returns sum(rates) / count(rates).
// A nil slice is ErrInvalidList, an empty one is ErrEmptyList.
func (c *InterestRateAvgCalculator) Calculate(assets []Asset) (float64, error) {
	if assets == nil {
		return 0, ErrInvalidList
	}
	if len(assets) == 0 {
		return 0, ErrEmptyList
	}

	var sum float64
	for _, a := range assets {
		sum += a.interestRate
	}
	return sum / float64(len(assets)), nil
}
