package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/iho/goassets/internal/adapter/http/dto"
	"github.com/iho/goassets/internal/domain"
)

// writeJSON writes a JSON response.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// writeError writes an error response.
func writeError(w http.ResponseWriter, status int, message, detail string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(dto.ErrorResponse{
		Error:  message,
		Detail: detail,
	})
}

// mapDomainError maps domain errors to HTTP status codes.
func mapDomainError(err error) int {
	var dupErr *domain.DuplicateAssetIDError
	switch {
	case errors.Is(err, domain.ErrInvalidList):
		return http.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrEmptyList):
		return http.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrInvalidAsset):
		return http.StatusUnprocessableEntity
	case errors.As(err, &dupErr):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
