package req

import (
	"context"
	"fmt"
	"net/http"

	"git.appkode.ru/pub/go/failure"
	"github.com/go-playground/validator/v10"
	jsoniter "github.com/json-iterator/go"

	"rating-service/pkg/errcodes"
)

var (
	json     = jsoniter.ConfigCompatibleWithStandardLibrary         //nolint:gochecknoglobals // skip
	validate = validator.New(validator.WithRequiredStructEnabled()) //nolint:gochecknoglobals // skip
)

func Read(r *http.Request, dest any) error {
	if err := decode(r, dest); err != nil {
		return err
	}

	if err := validate.StructCtx(r.Context(), dest); err != nil {
		return validationError(err.Error())
	}

	return nil
}

// ReadList decodes a JSON array and validates every element.
func ReadList[T any](r *http.Request, dest *[]T) error {
	if err := decode(r, dest); err != nil {
		return err
	}

	for i := range *dest {
		if err := validate.StructCtx(r.Context(), &(*dest)[i]); err != nil {
			return validationError(fmt.Sprintf("item %d: %s", i, err.Error()))
		}
	}

	return nil
}

// Validate checks v against its validate tags outside of an HTTP request.
func Validate(ctx context.Context, v any) error {
	if err := validate.StructCtx(ctx, v); err != nil {
		return validationError(err.Error())
	}

	return nil
}

func decode(r *http.Request, dest any) error {
	if err := json.NewDecoder(r.Body).Decode(dest); err != nil {
		return failure.NewInvalidArgumentError(
			fmt.Errorf("json.Decode: %w", err).Error(),
			failure.WithCode(errcodes.ValidationError),
			failure.WithDescription("Invalid JSON"),
		)
	}

	return nil
}

func validationError(description string) error {
	return failure.NewInvalidArgumentError(
		"validation error",
		failure.WithCode(errcodes.ValidationError),
		failure.WithDescription(description),
	)
}
