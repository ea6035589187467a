package rebrickable

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/legolocker/backend/internal/config"
	"github.com/legolocker/backend/internal/domain"
)

// Client searches the Rebrickable set catalog.
type Client struct {
	cfg        config.RebrickableConfig
	httpClient *http.Client
	log        *slog.Logger
}

// NewClient creates a Rebrickable catalog client. An unset API key leaves
// the client constructed but disabled: SearchSets answers
// domain.ErrConfigurationMissing without touching the network.
func NewClient(cfg config.RebrickableConfig, logger *slog.Logger) *Client {
	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		log:        logger.With("adapter", "rebrickable"),
	}
}

// SearchSets queries the set catalog. Results come back in the API's own
// relevance order. Failures are terminal: a non-2xx status surfaces as
// domain.ErrRemoteCall with the upstream status, never retried.
func (c *Client) SearchSets(ctx context.Context, query string) (*SearchResult, error) {
	if !c.cfg.Enabled() {
		return nil, fmt.Errorf("catalog search disabled: %w", domain.ErrConfigurationMissing)
	}

	u, err := url.Parse(c.cfg.BaseURL + "/lego/sets/")
	if err != nil {
		return nil, fmt.Errorf("rebrickable: invalid base url: %w", err)
	}
	q := u.Query()
	q.Set("search", query)
	q.Set("page_size", fmt.Sprintf("%d", c.cfg.PageSize))
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("rebrickable: create request: %w", err)
	}
	req.Header.Set("Authorization", "key "+c.cfg.APIKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.ErrorContext(ctx, "rebrickable request failed", slog.String("error", err.Error()))
		return nil, fmt.Errorf("rebrickable: %s: %w", err.Error(), domain.ErrRemoteCall)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.log.ErrorContext(ctx, "rebrickable returned non-success",
			slog.Int("status", resp.StatusCode),
			slog.String("query", query),
		)
		return nil, fmt.Errorf("rebrickable: %s: %w", resp.Status, domain.ErrRemoteCall)
	}

	var body searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("rebrickable: decode response: %w", err)
	}

	result := &SearchResult{
		Count: body.Count,
		Sets:  make([]Set, 0, len(body.Results)),
	}
	for _, r := range body.Results {
		result.Sets = append(result.Sets, Set{
			SetNum:   r.SetNum,
			Name:     r.Name,
			Year:     r.Year,
			NumParts: r.NumParts,
		})
	}

	c.log.DebugContext(ctx, "rebrickable search done",
		slog.String("query", query),
		slog.Int("count", body.Count),
	)

	return result, nil
}
