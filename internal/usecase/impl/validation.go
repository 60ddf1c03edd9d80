package impl

import (
	"strings"
	"unicode"
	"unicode/utf8"

	domainerrors "authsvc/internal/domain/errors"
	"authsvc/internal/errors"

	"github.com/go-playground/validator/v10"
)

const minPasswordLength = 6

// registrationBounds carries the upper bounds a stored profile must respect.
// The password has no upper bound.
type registrationBounds struct {
	Email string `validate:"max=254,nocontrol"`
	Name  string `validate:"max=100,nocontrol"`
}

var boundsValidate = mustNewBoundsValidator()

func mustNewBoundsValidator() *validator.Validate {
	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.RegisterValidation("nocontrol", noControlChars); err != nil {
		panic(err)
	}

	return validate
}

func noControlChars(fl validator.FieldLevel) bool {
	return !strings.ContainsFunc(fl.Field().String(), unicode.IsControl)
}

// validateRegistration applies the registration checks in order and returns
// the first failure. email and name are expected to be trimmed already.
func validateRegistration(email, password, name string) error {
	if email == "" || password == "" || name == "" {
		return domainerrors.ErrMissingFields
	}

	if utf8.RuneCountInString(password) < minPasswordLength {
		return domainerrors.ErrPasswordTooShort
	}

	if !strings.Contains(email, "@") {
		return domainerrors.ErrInvalidEmail
	}

	return validateBounds(email, name)
}

func validateBounds(email, name string) error {
	err := boundsValidate.Struct(registrationBounds{
		Email: email,
		Name:  name,
	})
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return errors.Wrap(err, "validate registration bounds")
	}

	if fieldErrs[0].Field() == "Email" {
		return domainerrors.ErrInvalidEmail
	}

	return domainerrors.ErrInvalidName
}
