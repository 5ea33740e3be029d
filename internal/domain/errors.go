package domain

import (
	"errors"
	"strings"
)

var (
	// Assets list errors
	ErrInvalidList = errors.New("A valid assets list is required")
	ErrEmptyList   = errors.New("Empty list is not a valid list")

	// Asset errors
	ErrInvalidAsset = errors.New("invalid asset")
)

// DuplicateAssetIDError is returned when an assets list holds the same asset ID more than once.
type DuplicateAssetIDError struct {
	IDs []string
}

func (e *DuplicateAssetIDError) Error() string {
	return "Duplicate asset IDs found: " + strings.Join(e.IDs, ", ")
}
