package document

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/legolocker/backend/internal/domain"
)

// Create stores a document under a server-generated id and returns it.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.Document, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	doc, err := s.docs.Create(ctx, input.Collection, input.Data)
	if err != nil {
		return nil, fmt.Errorf("create document: %w", err)
	}

	s.log.InfoContext(ctx, "document created",
		slog.String("collection", doc.Collection),
		slog.String("document_id", doc.ID),
	)

	return doc, nil
}
