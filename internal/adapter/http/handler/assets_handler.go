package handler

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/iho/goassets/internal/adapter/http/dto"
	"github.com/iho/goassets/internal/domain"
	"github.com/iho/goassets/internal/usecase"
)

// maxBodyBytes caps the size of a save request body.
const maxBodyBytes = 1 << 20

// AssetsListSaver defines the save behavior needed by AssetsHandler.
type AssetsListSaver interface {
	SaveAssetsList(ctx context.Context, input usecase.SaveAssetsListInput) (*domain.AssetsList, error)
}

// AverageInterestRateReader defines the read behavior needed by AssetsHandler.
type AverageInterestRateReader interface {
	GetAverageInterestRate(ctx context.Context) (*float64, error)
}

// AssetsHandler handles assets list HTTP requests.
type AssetsHandler struct {
	saveUC AssetsListSaver
	avgUC  AverageInterestRateReader
}

// NewAssetsHandler creates a new AssetsHandler.
func NewAssetsHandler(saveUC AssetsListSaver, avgUC AverageInterestRateReader) *AssetsHandler {
	return &AssetsHandler{
		saveUC: saveUC,
		avgUC:  avgUC,
	}
}

// Save replaces the stored assets list.
func (h *AssetsHandler) Save(w http.ResponseWriter, r *http.Request) {
	var req dto.SaveAssetsListRequest
	if err := decodeSingleJSON(http.MaxBytesReader(w, r.Body, maxBodyBytes), &req); err != nil {
		writeError(w, http.StatusUnprocessableEntity, "invalid request body", "Validation error: "+err.Error())
		return
	}

	if err := req.Validate(); err != nil {
		writeError(w, http.StatusUnprocessableEntity, "validation failed", "Validation error: "+dto.ValidationDetail(err))
		return
	}

	list, err := h.saveUC.SaveAssetsList(r.Context(), req.ToUseCaseInput())
	if err != nil {
		status := mapDomainError(err)
		if status == http.StatusInternalServerError {
			zerolog.Ctx(r.Context()).Error().Err(err).Msg("failed to save assets list")
		}
		writeError(w, status, "failed to save assets list", err.Error())
		return
	}

	zerolog.Ctx(r.Context()).Debug().
		Str("assets_list_id", list.ID()).
		Int("assets", len(list.Assets())).
		Float64("avg_interest_rate", list.AvgInterestRate()).
		Msg("assets list saved")

	writeJSON(w, http.StatusOK, dto.MessageResponse{Message: "Assets list saved successfully"})
}

// GetAverageInterestRate returns the average of the last saved list, or null.
func (h *AssetsHandler) GetAverageInterestRate(w http.ResponseWriter, r *http.Request) {
	avg, err := h.avgUC.GetAverageInterestRate(r.Context())
	if err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("failed to read average interest rate")
		writeError(w, http.StatusInternalServerError, "failed to get average interest rate", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.AverageInterestRateResponse{AverageInterestRate: avg})
}

// decodeSingleJSON decodes exactly one JSON value; anything after it is an error.
func decodeSingleJSON(body io.Reader, v any) error {
	dec := json.NewDecoder(body)
	if err := dec.Decode(v); err != nil {
		return err
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return errors.New("request body must contain a single JSON object")
	}
	return nil
}
