package document

import (
	"encoding/json"
	"strings"

	"github.com/legolocker/backend/internal/domain"
)

// ListInput holds the parameters for listing a collection.
type ListInput struct {
	Collection string
	// OwnerID narrows results to documents stamped with that owner.
	OwnerID string
	// Ascending flips the default newest-first order.
	Ascending bool
}

// Validate checks all fields and collects all errors.
func (i ListInput) Validate() error {
	var errs []domain.FieldError
	errs = appendCollectionErrs(errs, i.Collection)
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// GetInput holds the parameters for fetching one document.
type GetInput struct {
	Collection string
	ID         string
}

// Validate checks all fields and collects all errors.
func (i GetInput) Validate() error {
	var errs []domain.FieldError
	errs = appendCollectionErrs(errs, i.Collection)
	errs = appendIDErrs(errs, i.ID)
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// CreateInput holds the parameters for creating a document under a
// generated id.
type CreateInput struct {
	Collection string
	Data       json.RawMessage
}

// Validate checks all fields and collects all errors.
func (i CreateInput) Validate() error {
	var errs []domain.FieldError
	errs = appendCollectionErrs(errs, i.Collection)
	errs = appendDataErrs(errs, i.Data)
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpsertInput holds the parameters for writing a document at a known id.
type UpsertInput struct {
	Collection string
	ID         string
	Data       json.RawMessage
}

// Validate checks all fields and collects all errors.
func (i UpsertInput) Validate() error {
	var errs []domain.FieldError
	errs = appendCollectionErrs(errs, i.Collection)
	errs = appendIDErrs(errs, i.ID)
	errs = appendDataErrs(errs, i.Data)
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// DeleteInput holds the parameters for deleting a document.
type DeleteInput struct {
	Collection string
	ID         string
}

// Validate checks all fields and collects all errors.
func (i DeleteInput) Validate() error {
	var errs []domain.FieldError
	errs = appendCollectionErrs(errs, i.Collection)
	errs = appendIDErrs(errs, i.ID)
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func appendCollectionErrs(errs []domain.FieldError, collection string) []domain.FieldError {
	c := strings.TrimSpace(collection)
	if c == "" {
		errs = append(errs, domain.FieldError{Field: "collection", Message: "required"})
	}
	if len(c) > 128 {
		errs = append(errs, domain.FieldError{Field: "collection", Message: "max 128 characters"})
	}
	return errs
}

func appendIDErrs(errs []domain.FieldError, id string) []domain.FieldError {
	v := strings.TrimSpace(id)
	if v == "" {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	if len(v) > 256 {
		errs = append(errs, domain.FieldError{Field: "id", Message: "max 256 characters"})
	}
	return errs
}

func appendDataErrs(errs []domain.FieldError, data json.RawMessage) []domain.FieldError {
	if len(data) == 0 {
		errs = append(errs, domain.FieldError{Field: "data", Message: "required"})
		return errs
	}
	if len(data) > MaxPayloadBytes {
		errs = append(errs, domain.FieldError{Field: "data", Message: "payload too large"})
	}
	if !json.Valid(data) {
		errs = append(errs, domain.FieldError{Field: "data", Message: "invalid JSON"})
	}
	return errs
}
