package document

import (
	"context"
	"fmt"
	"log/slog"
)

// Delete removes a document. Deleting an id that is already gone succeeds,
// so clients can retry without tracking state.
func (s *Service) Delete(ctx context.Context, input DeleteInput) error {
	if err := input.Validate(); err != nil {
		return err
	}

	if err := s.docs.Delete(ctx, input.Collection, input.ID); err != nil {
		return fmt.Errorf("delete document: %w", err)
	}

	s.log.InfoContext(ctx, "document deleted",
		slog.String("collection", input.Collection),
		slog.String("document_id", input.ID),
	)

	return nil
}
