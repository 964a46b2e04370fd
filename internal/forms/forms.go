// Package forms validates user input at the call site, before anything is
// dispatched to the store.
package forms

import (
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/alexisbeaulieu97/storefront/internal/state"
	apperrors "github.com/alexisbeaulieu97/storefront/pkg/errors"
)

// MissingCredentials is shown when either login field is blank.
const MissingCredentials = "Please enter username and password"

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

type loginForm struct {
	Username string `validate:"notblank"`
	Password string `validate:"notblank"`
}

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()
		_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
			return strings.TrimSpace(fl.Field().String()) != ""
		})
		validateInst = v
	})
	return validateInst
}

// Login checks the login form. The returned credentials are passed through
// untouched; only whitespace-only values are rejected.
func Login(username, password string) (state.Credentials, error) {
	form := loginForm{Username: username, Password: password}
	if err := validatorInstance().Struct(form); err != nil {
		field := "credentials"
		if ves, ok := err.(validator.ValidationErrors); ok {
			field = strings.ToLower(ves[0].Field())
		}
		return state.Credentials{}, apperrors.NewValidationError(field, MissingCredentials, err)
	}
	return state.Credentials{Username: username, Password: password}, nil
}

// SearchQuery normalizes a search box value. It reports false for a blank
// query, which means the full listing should be shown instead.
func SearchQuery(q string) (string, bool) {
	trimmed := strings.TrimSpace(q)
	return trimmed, trimmed != ""
}
