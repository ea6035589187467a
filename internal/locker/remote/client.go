// Package remote backs the locker operations with the HTTP document API
// instead of the embedded engine. One client serves one signed-in user; all
// documents are stamped with that user's id.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/legolocker/backend/internal/domain"
)

const (
	collectionInventory = "inventory"
	collectionWishlist  = "wishlist"
)

// Client is a signed-in session against the sync backend.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        *slog.Logger

	accessToken string
	ownerID     string
}

// NewClient creates a client for the given server. Call SignIn before any
// data operation.
func NewClient(baseURL string, logger *slog.Logger) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 15 * time.Second},
		log:        logger.With("component", "remote"),
	}
}

type credentialsRequest struct {
	Email    string `json:"email"`
	Username string `json:"username,omitempty"`
	Password string `json:"password"`
}

type authResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	User         struct {
		ID       string `json:"id"`
		Email    string `json:"email"`
		Username string `json:"username"`
	} `json:"user"`
}

// SignIn authenticates against the backend. An email the server has never
// seen registers a fresh account with the same credentials, so first-time
// users sign in the same way as returning ones. A wrong password stays
// domain.ErrUnauthorized.
func (c *Client) SignIn(ctx context.Context, email, password string) error {
	status, body, err := c.postJSON(ctx, "/auth/login", credentialsRequest{
		Email:    email,
		Password: password,
	})
	if err != nil {
		return err
	}

	switch status {
	case http.StatusOK:
		return c.adoptSession(body)
	case http.StatusUnauthorized:
		return fmt.Errorf("sign in: %w", domain.ErrUnauthorized)
	case http.StatusNotFound:
		// No such account: fall through to registration.
	default:
		return fmt.Errorf("sign in: status %d: %w", status, domain.ErrRemoteCall)
	}

	c.log.InfoContext(ctx, "no account for email, registering", slog.String("email", email))

	status, body, err = c.postJSON(ctx, "/auth/register", credentialsRequest{
		Email:    email,
		Username: usernameFromEmail(email),
		Password: password,
	})
	if err != nil {
		return err
	}
	if status != http.StatusCreated {
		return fmt.Errorf("register: status %d: %w", status, domain.ErrRemoteCall)
	}
	return c.adoptSession(body)
}

// OwnerID returns the signed-in user id, empty before SignIn.
func (c *Client) OwnerID() string { return c.ownerID }

func (c *Client) adoptSession(body []byte) error {
	var resp authResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return fmt.Errorf("decode auth response: %w", err)
	}
	if resp.AccessToken == "" || resp.User.ID == "" {
		return fmt.Errorf("auth response missing token or user: %w", domain.ErrRemoteCall)
	}
	c.accessToken = resp.AccessToken
	c.ownerID = resp.User.ID
	return nil
}

// usernameFromEmail derives a registration username from the address's
// local part.
func usernameFromEmail(email string) string {
	name, _, found := strings.Cut(email, "@")
	if !found || len(name) < 2 {
		return "builder"
	}
	return name
}

// inventoryDoc is the wire shape of one inventory document. ID is the
// server-assigned document id.
type inventoryDoc struct {
	ID        string `json:"id,omitempty"`
	OwnerID   string `json:"ownerId"`
	ItemID    string `json:"itemId"`
	Name      string `json:"name"`
	Type      string `json:"type"`
	Quantity  int    `json:"quantity"`
	Notes     string `json:"notes,omitempty"`
	CreatedAt int64  `json:"createdAt"`
}

type wishlistDoc struct {
	ID        string `json:"id,omitempty"`
	OwnerID   string `json:"ownerId"`
	ItemID    string `json:"itemId"`
	Title     string `json:"title"`
	Subtitle  string `json:"subtitle,omitempty"`
	CreatedAt int64  `json:"createdAt"`
}

// ListInventory fetches the user's owned items, newest first.
func (c *Client) ListInventory(ctx context.Context) ([]domain.InventoryItem, error) {
	body, err := c.list(ctx, collectionInventory)
	if err != nil {
		return nil, err
	}

	var docs []inventoryDoc
	if err := json.Unmarshal(body, &docs); err != nil {
		return nil, fmt.Errorf("decode inventory: %w", err)
	}

	items := make([]domain.InventoryItem, 0, len(docs))
	for _, d := range docs {
		items = append(items, domain.InventoryItem{
			DocID:     d.ID,
			ID:        d.ItemID,
			Name:      d.Name,
			Type:      d.Type,
			Quantity:  d.Quantity,
			Notes:     d.Notes,
			CreatedAt: d.CreatedAt,
		})
	}
	return items, nil
}

// AddInventoryItem stores an owned item under the user's id.
func (c *Client) AddInventoryItem(ctx context.Context, item domain.InventoryItem) (domain.InventoryItem, error) {
	item.Quantity = domain.NormalizeQuantity(item.Quantity)
	if item.CreatedAt == 0 {
		item.CreatedAt = domain.NowMillis()
	}

	doc := inventoryDoc{
		OwnerID:   c.ownerID,
		ItemID:    item.ID,
		Name:      item.Name,
		Type:      item.Type,
		Quantity:  item.Quantity,
		Notes:     item.Notes,
		CreatedAt: item.CreatedAt,
	}

	created, err := c.create(ctx, collectionInventory, doc)
	if err != nil {
		return domain.InventoryItem{}, err
	}

	var stored inventoryDoc
	if err := json.Unmarshal(created, &stored); err != nil {
		return domain.InventoryItem{}, fmt.Errorf("decode created document: %w", err)
	}
	item.DocID = stored.ID
	return item, nil
}

// ListWishlist fetches the user's wanted items, newest first.
func (c *Client) ListWishlist(ctx context.Context) ([]domain.WishlistItem, error) {
	body, err := c.list(ctx, collectionWishlist)
	if err != nil {
		return nil, err
	}

	var docs []wishlistDoc
	if err := json.Unmarshal(body, &docs); err != nil {
		return nil, fmt.Errorf("decode wishlist: %w", err)
	}

	items := make([]domain.WishlistItem, 0, len(docs))
	for _, d := range docs {
		items = append(items, domain.WishlistItem{
			DocID:     d.ID,
			ID:        d.ItemID,
			Title:     d.Title,
			Subtitle:  d.Subtitle,
			CreatedAt: d.CreatedAt,
		})
	}
	return items, nil
}

// AddWishlistItem stores a wanted item under the user's id.
func (c *Client) AddWishlistItem(ctx context.Context, item domain.WishlistItem) (domain.WishlistItem, error) {
	if item.CreatedAt == 0 {
		item.CreatedAt = domain.NowMillis()
	}

	doc := wishlistDoc{
		OwnerID:   c.ownerID,
		ItemID:    item.ID,
		Title:     item.Title,
		Subtitle:  item.Subtitle,
		CreatedAt: item.CreatedAt,
	}

	created, err := c.create(ctx, collectionWishlist, doc)
	if err != nil {
		return domain.WishlistItem{}, err
	}

	var stored wishlistDoc
	if err := json.Unmarshal(created, &stored); err != nil {
		return domain.WishlistItem{}, fmt.Errorf("decode created document: %w", err)
	}
	item.DocID = stored.ID
	return item, nil
}

// RemoveWishlistItem deletes by document id. The server treats delete as
// idempotent, so removing an already-gone document succeeds.
func (c *Client) RemoveWishlistItem(ctx context.Context, docID string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete,
		fmt.Sprintf("%s/api/%s/%s", c.baseURL, collectionWishlist, docID), nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	status, _, err := c.do(req)
	if err != nil {
		return err
	}
	if status != http.StatusOK {
		return fmt.Errorf("delete document: status %d: %w", status, domain.ErrRemoteCall)
	}
	return nil
}

func (c *Client) list(ctx context.Context, collection string) ([]byte, error) {
	url := fmt.Sprintf("%s/api/%s?ownerId=%s", c.baseURL, collection, c.ownerID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	status, body, err := c.do(req)
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return nil, fmt.Errorf("list %s: status %d: %w", collection, status, domain.ErrRemoteCall)
	}
	return body, nil
}

func (c *Client) create(ctx context.Context, collection string, doc any) ([]byte, error) {
	payload, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("encode document: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		fmt.Sprintf("%s/api/%s", c.baseURL, collection), bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	status, body, err := c.do(req)
	if err != nil {
		return nil, err
	}
	if status != http.StatusCreated {
		return nil, fmt.Errorf("create document: status %d: %w", status, domain.ErrRemoteCall)
	}
	return body, nil
}

func (c *Client) do(req *http.Request) (int, []byte, error) {
	if c.accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.accessToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("%s %s: %w", req.Method, req.URL.Path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, fmt.Errorf("read response: %w", err)
	}
	return resp.StatusCode, body, nil
}

func (c *Client) postJSON(ctx context.Context, path string, v any) (int, []byte, error) {
	payload, err := json.Marshal(v)
	if err != nil {
		return 0, nil, fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return 0, nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	return c.do(req)
}
