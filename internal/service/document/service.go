package document

import (
	"context"
	"encoding/json"
	"log/slog"

	repo "github.com/legolocker/backend/internal/adapter/postgres/document"
	"github.com/legolocker/backend/internal/domain"
)

// MaxPayloadBytes caps a single document payload.
const MaxPayloadBytes = 256 * 1024

type documentRepo interface {
	List(ctx context.Context, collection string, opts repo.ListOptions) ([]domain.Document, error)
	Get(ctx context.Context, collection, id string) (*domain.Document, error)
	Create(ctx context.Context, collection string, data json.RawMessage) (*domain.Document, error)
	Upsert(ctx context.Context, collection, id string, data json.RawMessage) (*domain.Document, error)
	Delete(ctx context.Context, collection, id string) error
}

// Service provides the generic document store operations.
type Service struct {
	docs documentRepo
	log  *slog.Logger
}

// NewService creates a new document service.
func NewService(
	log *slog.Logger,
	docs documentRepo,
) *Service {
	return &Service{
		docs: docs,
		log:  log.With("service", "document"),
	}
}
