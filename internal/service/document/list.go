package document

import (
	"context"
	"fmt"

	repo "github.com/legolocker/backend/internal/adapter/postgres/document"
	"github.com/legolocker/backend/internal/domain"
)

// List returns all documents in a collection, newest first. A collection
// that was never written to yields an empty slice.
func (s *Service) List(ctx context.Context, input ListInput) ([]domain.Document, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	docs, err := s.docs.List(ctx, input.Collection, repo.ListOptions{
		OwnerID:   input.OwnerID,
		Ascending: input.Ascending,
	})
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}

	return docs, nil
}
