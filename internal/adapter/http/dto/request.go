package dto

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/iho/goassets/internal/usecase"
)

var validate = newValidator()

// newValidator reports fields by their JSON names.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// AssetRequest is one asset in a save request.
type AssetRequest struct {
	ID           *string  `json:"id"            validate:"required"`
	InterestRate *float64 `json:"interest_rate" validate:"required"`
}

// SaveAssetsListRequest represents a request to save an assets list.
// A missing or null assets field is passed on as an absent list.
type SaveAssetsListRequest struct {
	Assets []AssetRequest `json:"assets" validate:"dive"`
}

// Validate checks the request shape.
func (r *SaveAssetsListRequest) Validate() error {
	return validate.Struct(r)
}

// ToUseCaseInput converts to use case input.
func (r *SaveAssetsListRequest) ToUseCaseInput() usecase.SaveAssetsListInput {
	if r.Assets == nil {
		return usecase.SaveAssetsListInput{}
	}

	assets := make([]usecase.AssetInput, len(r.Assets))
	for i, a := range r.Assets {
		assets[i] = usecase.AssetInput{
			ID:           a.ID,
			InterestRate: a.InterestRate,
		}
	}
	return usecase.SaveAssetsListInput{Assets: assets}
}

// ValidationDetail turns a validation error into "field: problem" pairs
// joined by "; ". Other errors are returned as their message.
func ValidationDetail(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}

	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		parts = append(parts, fmt.Sprintf("%s: %s", fieldPath(fe.Namespace()), describe(fe)))
	}
	return strings.Join(parts, "; ")
}

// fieldPath drops the root struct name from a validator namespace.
func fieldPath(namespace string) string {
	if i := strings.IndexByte(namespace, '.'); i >= 0 {
		return namespace[i+1:]
	}
	return namespace
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "field required"
	default:
		return fmt.Sprintf("failed on '%s'", fe.Tag())
	}
}
