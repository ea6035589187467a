package auth

import (
	"strings"

	"github.com/legolocker/backend/internal/domain"
)

// RegisterInput holds parameters for user registration.
type RegisterInput struct {
	Email    string
	Username string
	Password string
}

// Validate validates the register input.
func (i RegisterInput) Validate() error {
	var errs []domain.FieldError

	errs = appendEmailErrs(errs, i.Email)

	if i.Username == "" {
		errs = append(errs, domain.FieldError{Field: "username", Message: "required"})
	} else {
		if len(i.Username) < 2 {
			errs = append(errs, domain.FieldError{Field: "username", Message: "min 2 characters"})
		}
		if len(i.Username) > 50 {
			errs = append(errs, domain.FieldError{Field: "username", Message: "max 50 characters"})
		}
	}

	errs = appendPasswordErrs(errs, i.Password)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// LoginPasswordInput holds parameters for password login.
type LoginPasswordInput struct {
	Email    string
	Password string
}

// Validate validates the login input.
func (i LoginPasswordInput) Validate() error {
	var errs []domain.FieldError

	errs = appendEmailErrs(errs, i.Email)

	if i.Password == "" {
		errs = append(errs, domain.FieldError{Field: "password", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// RefreshInput holds parameters for token refresh operation.
type RefreshInput struct {
	RefreshToken string
}

// Validate validates the refresh input.
func (i RefreshInput) Validate() error {
	var errs []domain.FieldError

	if i.RefreshToken == "" {
		errs = append(errs, domain.FieldError{Field: "refresh_token", Message: "required"})
	} else if len(i.RefreshToken) > 512 {
		errs = append(errs, domain.FieldError{Field: "refresh_token", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func appendEmailErrs(errs []domain.FieldError, email string) []domain.FieldError {
	switch {
	case email == "":
		errs = append(errs, domain.FieldError{Field: "email", Message: "required"})
	case len(email) > 254:
		errs = append(errs, domain.FieldError{Field: "email", Message: "max 254 characters"})
	case !strings.Contains(email, "@") || strings.HasPrefix(email, "@") || strings.HasSuffix(email, "@"):
		errs = append(errs, domain.FieldError{Field: "email", Message: "invalid format"})
	}
	return errs
}

func appendPasswordErrs(errs []domain.FieldError, password string) []domain.FieldError {
	switch {
	case password == "":
		errs = append(errs, domain.FieldError{Field: "password", Message: "required"})
	case len(password) < 8:
		errs = append(errs, domain.FieldError{Field: "password", Message: "min 8 characters"})
	case len(password) > 128:
		errs = append(errs, domain.FieldError{Field: "password", Message: "max 128 characters"})
	}
	return errs
}
