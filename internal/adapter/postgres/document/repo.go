// Package document implements the generic document store on PostgreSQL.
// Every row is keyed by (collection, id) and carries an opaque JSON payload;
// the collection name is caller-supplied and never validated.
package document

import (
	"context"
	"encoding/json"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	postgres "github.com/legolocker/backend/internal/adapter/postgres"
	"github.com/legolocker/backend/internal/domain"
)

// psql builds queries with PostgreSQL $N placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// ListOptions narrows and orders a List call.
type ListOptions struct {
	// OwnerID, when non-empty, keeps only documents whose payload has a
	// matching top-level "ownerId" field (remote-sync per-user scoping).
	OwnerID string
	// Ascending flips the default created_at DESC ordering.
	Ascending bool
}

// Repo provides document persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new document repository. db is normally the pgx pool.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// List returns all documents in a collection. An empty collection yields an
// empty slice, not an error.
func (r *Repo) List(ctx context.Context, collection string, opts ListOptions) ([]domain.Document, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	order := "created_at DESC"
	if opts.Ascending {
		order = "created_at ASC"
	}

	builder := psql.
		Select("id", "data", "created_at").
		From("documents").
		Where(sq.Eq{"collection": collection}).
		OrderBy(order)

	if opts.OwnerID != "" {
		builder = builder.Where(sq.Expr("data->>'ownerId' = ?", opts.OwnerID))
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list query: %w", err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, postgres.MapError(err, "collection", collection)
	}
	defer rows.Close()

	docs := make([]domain.Document, 0)
	for rows.Next() {
		doc := domain.Document{Collection: collection}
		if err := rows.Scan(&doc.ID, &doc.Data, &doc.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan document: %w", err)
		}
		docs = append(docs, doc)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "collection", collection)
	}

	return docs, nil
}

// Get returns one document by primary key.
// Returns domain.ErrNotFound if it does not exist.
func (r *Repo) Get(ctx context.Context, collection, id string) (*domain.Document, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := psql.
		Select("data", "created_at").
		From("documents").
		Where(sq.Eq{"collection": collection, "id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get query: %w", err)
	}

	doc := domain.Document{Collection: collection, ID: id}
	if err := q.QueryRow(ctx, sql, args...).Scan(&doc.Data, &doc.CreatedAt); err != nil {
		return nil, postgres.MapError(err, "document", id)
	}

	return &doc, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new document under a server-generated id (uuid v4; the
// 128-bit random space makes collisions negligible, so they are not checked
// beyond the primary-key constraint).
func (r *Repo) Create(ctx context.Context, collection string, data json.RawMessage) (*domain.Document, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	doc := domain.Document{
		Collection: collection,
		ID:         uuid.NewString(),
		Data:       data,
		CreatedAt:  domain.NowMillis(),
	}

	sql, args, err := psql.
		Insert("documents").
		Columns("collection", "id", "data", "created_at").
		Values(doc.Collection, doc.ID, doc.Data, doc.CreatedAt).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build create query: %w", err)
	}

	if _, err := q.Exec(ctx, sql, args...); err != nil {
		return nil, postgres.MapError(err, "document", doc.ID)
	}

	return &doc, nil
}

// Upsert inserts the document or, when (collection, id) already exists,
// replaces only the payload. A single conditional write: the original
// created_at survives concurrent upserts untouched.
func (r *Repo) Upsert(ctx context.Context, collection, id string, data json.RawMessage) (*domain.Document, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := psql.
		Insert("documents").
		Columns("collection", "id", "data", "created_at").
		Values(collection, id, data, domain.NowMillis()).
		Suffix("ON CONFLICT (collection, id) DO UPDATE SET data = EXCLUDED.data RETURNING created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build upsert query: %w", err)
	}

	doc := domain.Document{Collection: collection, ID: id, Data: data}
	if err := q.QueryRow(ctx, sql, args...).Scan(&doc.CreatedAt); err != nil {
		return nil, postgres.MapError(err, "document", id)
	}

	return &doc, nil
}

// Delete removes a document. Idempotent: deleting a missing document is not
// an error.
func (r *Repo) Delete(ctx context.Context, collection, id string) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := psql.
		Delete("documents").
		Where(sq.Eq{"collection": collection, "id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete query: %w", err)
	}

	if _, err := q.Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "document", id)
	}

	return nil
}
