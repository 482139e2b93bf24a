package repo

import (
	"errors"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"jokesapi/src/core/domain"
)

// jokeSchema holds the field rules applied to a new joke.
type jokeSchema struct {
	Type      *int    `validate:"required"`
	Setup     *string `validate:"required,notblank"`
	Punchline *string `validate:"required,notblank"`
}

// jokePatchSchema holds the rules for the fields present in an update.
type jokePatchSchema struct {
	Type      *int
	Setup     *string `validate:"omitnil,notblank"`
	Punchline *string `validate:"omitnil,notblank"`
}

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func schemaValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		_ = validate.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
			return strings.TrimSpace(fl.Field().String()) != ""
		})
	})
	return validate
}

// validateNew checks that every required field of a new joke is present.
func validateNew(f domain.JokeFields) error {
	return toValidationError(schemaValidator().Struct(jokeSchema{
		Type:      f.Type,
		Setup:     f.Setup,
		Punchline: f.Punchline,
	}))
}

// validatePatch checks the fields present in an update.
func validatePatch(f domain.JokeFields) error {
	return toValidationError(schemaValidator().Struct(jokePatchSchema{
		Type:      f.Type,
		Setup:     f.Setup,
		Punchline: f.Punchline,
	}))
}

func toValidationError(err error) error {
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return domain.NewValidationError("", err.Error())
	}
	fe := verrs[0]
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return domain.NewValidationError(field, "Path `"+field+"` is required.")
	default:
		return domain.NewValidationError(field, "Path `"+field+"` must not be empty.")
	}
}
