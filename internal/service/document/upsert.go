package document

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/legolocker/backend/internal/domain"
)

// Upsert writes the document at a caller-chosen id. An existing document
// gets its payload replaced while its creation timestamp survives; repeated
// writes to the same key converge on the last payload.
func (s *Service) Upsert(ctx context.Context, input UpsertInput) (*domain.Document, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	doc, err := s.docs.Upsert(ctx, input.Collection, input.ID, input.Data)
	if err != nil {
		return nil, fmt.Errorf("upsert document: %w", err)
	}

	s.log.InfoContext(ctx, "document upserted",
		slog.String("collection", doc.Collection),
		slog.String("document_id", doc.ID),
	)

	return doc, nil
}
