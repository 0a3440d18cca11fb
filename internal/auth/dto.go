package auth

import (
	"strings"

	"github.com/frahmantamala/hrm/internal"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// LoginDTO is the transport shape used by the HTTP handler to accept login requests.
type LoginDTO struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// ResetCredentialsDTO replaces the stored pair. The old password is not asked for.
type ResetCredentialsDTO struct {
	Username        string `json:"username"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}

// SelectSectionDTO switches the record screen of the current session.
type SelectSectionDTO struct {
	Section string `json:"section"`
}

// Validate reports a mismatched confirmation before anything else, then
// fields that are empty once trimmed.
func (d ResetCredentialsDTO) Validate() error {
	if err := validate.VarWithValue(d.Password, d.ConfirmPassword, "eqfield"); err != nil {
		return internal.ErrPasswordMismatch
	}

	trimmed := struct {
		Username string `validate:"required"`
		Password string `validate:"required"`
	}{
		Username: strings.TrimSpace(d.Username),
		Password: strings.TrimSpace(d.Password),
	}
	if err := validate.Struct(trimmed); err != nil {
		return internal.ErrMissingFields
	}
	return nil
}
