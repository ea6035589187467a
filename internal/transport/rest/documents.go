package rest

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/legolocker/backend/internal/domain"
	"github.com/legolocker/backend/internal/service/document"
)

// documentService defines the minimal interface needed by DocumentHandler.
type documentService interface {
	List(ctx context.Context, input document.ListInput) ([]domain.Document, error)
	Get(ctx context.Context, input document.GetInput) (*domain.Document, error)
	Create(ctx context.Context, input document.CreateInput) (*domain.Document, error)
	Upsert(ctx context.Context, input document.UpsertInput) (*domain.Document, error)
	Delete(ctx context.Context, input document.DeleteInput) error
}

// DocumentHandler serves the generic document store endpoints. Every
// response carries the stored payload flattened to the {id, ...data} shape.
type DocumentHandler struct {
	svc documentService
	log *slog.Logger
}

// NewDocumentHandler creates a DocumentHandler.
func NewDocumentHandler(svc documentService, logger *slog.Logger) *DocumentHandler {
	return &DocumentHandler{svc: svc, log: logger.With("handler", "documents")}
}

// List handles GET /api/{collection}. Supports ?ownerId= to narrow results
// and ?order=asc to flip the default newest-first order.
func (h *DocumentHandler) List(w http.ResponseWriter, r *http.Request) {
	docs, err := h.svc.List(r.Context(), document.ListInput{
		Collection: chi.URLParam(r, "collection"),
		OwnerID:    r.URL.Query().Get("ownerId"),
		Ascending:  r.URL.Query().Get("order") == "asc",
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	out := make([]json.RawMessage, 0, len(docs))
	for _, doc := range docs {
		flat, err := doc.Flatten()
		if err != nil {
			h.handleError(w, r, err)
			return
		}
		out = append(out, flat)
	}

	writeJSON(w, http.StatusOK, out)
}

// Get handles GET /api/{collection}/{id}.
func (h *DocumentHandler) Get(w http.ResponseWriter, r *http.Request) {
	doc, err := h.svc.Get(r.Context(), document.GetInput{
		Collection: chi.URLParam(r, "collection"),
		ID:         chi.URLParam(r, "id"),
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeDocument(w, r, http.StatusOK, doc)
}

// Create handles POST /api/{collection}. The document id is generated
// server-side and echoed inside the payload.
func (h *DocumentHandler) Create(w http.ResponseWriter, r *http.Request) {
	data, err := readBody(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	doc, err := h.svc.Create(r.Context(), document.CreateInput{
		Collection: chi.URLParam(r, "collection"),
		Data:       data,
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeDocument(w, r, http.StatusCreated, doc)
}

// Upsert handles PUT /api/{collection}/{id}. Inserts when the id is new,
// replaces the payload otherwise.
func (h *DocumentHandler) Upsert(w http.ResponseWriter, r *http.Request) {
	data, err := readBody(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	doc, err := h.svc.Upsert(r.Context(), document.UpsertInput{
		Collection: chi.URLParam(r, "collection"),
		ID:         chi.URLParam(r, "id"),
		Data:       data,
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeDocument(w, r, http.StatusOK, doc)
}

// Delete handles DELETE /api/{collection}/{id}. Deleting an absent document
// still answers success.
func (h *DocumentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	err := h.svc.Delete(r.Context(), document.DeleteInput{
		Collection: chi.URLParam(r, "collection"),
		ID:         chi.URLParam(r, "id"),
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (h *DocumentHandler) writeDocument(w http.ResponseWriter, r *http.Request, status int, doc *domain.Document) {
	flat, err := doc.Flatten()
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	writeJSON(w, status, flat)
}

func (h *DocumentHandler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "not found")
	default:
		h.log.ErrorContext(r.Context(), "internal error", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

func readBody(r *http.Request) (json.RawMessage, error) {
	body, err := io.ReadAll(io.LimitReader(r.Body, document.MaxPayloadBytes+1))
	if err != nil {
		return nil, err
	}
	return json.RawMessage(body), nil
}
