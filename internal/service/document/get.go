package document

import (
	"context"
	"fmt"

	"github.com/legolocker/backend/internal/domain"
)

// Get returns one document by collection and id.
func (s *Service) Get(ctx context.Context, input GetInput) (*domain.Document, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	doc, err := s.docs.Get(ctx, input.Collection, input.ID)
	if err != nil {
		return nil, fmt.Errorf("get document: %w", err)
	}

	return doc, nil
}
