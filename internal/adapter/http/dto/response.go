package dto

// MessageResponse carries a human readable outcome.
type MessageResponse struct {
	Message string `json:"message"`
}

// AverageInterestRateResponse is null until a list has been saved.
type AverageInterestRateResponse struct {
	AverageInterestRate *float64 `json:"average_interest_rate"`
}

// ErrorResponse represents an error in API responses.
type ErrorResponse struct {
	Error  string `json:"error"`
	Detail string `json:"detail,omitempty"`
}
