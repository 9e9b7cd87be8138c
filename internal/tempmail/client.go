package tempmail

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/mixelka/tempmailbot/pkg/models"
)

// Client talks to the disposable-mail HTTP API.
//
// Every call is a live network round trip against a service that is free,
// unauthenticated and frequently flaky. The chat surface has no useful way to
// show a provider outage, so all public methods soft-fail: any network, HTTP
// or decode error is logged here and collapsed into an empty/absent result.
// Callers get exactly one policy to reason about — empty means unavailable.
type Client struct {
	baseURL       string
	defaultDomain string
	httpClient    *http.Client
	logger        *slog.Logger
}

// Config for the provider client
type Config struct {
	BaseURL       string // e.g., https://www.1secmail.com/api/v1/
	DefaultDomain string // fallback when no domain list is available
	Timeout       time.Duration
}

// NewClient creates a new provider client
func NewClient(cfg Config, logger *slog.Logger) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		baseURL:       cfg.BaseURL,
		defaultDomain: cfg.DefaultDomain,
		httpClient:    &http.Client{Timeout: timeout},
		logger:        logger.With("component", "tempmail_client"),
	}
}

// DefaultDomain returns the fallback domain used when no list is available.
func (c *Client) DefaultDomain() string {
	return c.defaultDomain
}

// Domains fetches the provider's current domain list.
// Returns nil when the provider is unavailable.
func (c *Client) Domains(ctx context.Context) []string {
	var domains []string
	q := url.Values{"action": {"getDomainList"}}
	if err := c.get(ctx, q, &domains); err != nil {
		c.logger.Error("failed to fetch domain list", "error", err)
		return nil
	}
	return domains
}

// Messages lists the inbox of the given address, newest first.
// Returns nil when the provider is unavailable. The provider creates the
// mailbox lazily on this call, so an address never announced server-side
// still yields a valid (empty) inbox.
func (c *Client) Messages(ctx context.Context, addr models.Address) []models.MessageSummary {
	var msgs []models.MessageSummary
	q := url.Values{
		"action": {"getMessages"},
		"login":  {addr.Login},
		"domain": {addr.Domain},
	}
	if err := c.get(ctx, q, &msgs); err != nil {
		c.logger.Error("failed to fetch messages", "address", addr.String(), "error", err)
		return nil
	}
	return msgs
}

// ReadMessage fetches one message by its provider-assigned id.
// Returns nil when the message cannot be loaded.
func (c *Client) ReadMessage(ctx context.Context, addr models.Address, id int64) *models.MessageDetail {
	var msg models.MessageDetail
	q := url.Values{
		"action": {"readMessage"},
		"login":  {addr.Login},
		"domain": {addr.Domain},
		"id":     {strconv.FormatInt(id, 10)},
	}
	if err := c.get(ctx, q, &msg); err != nil {
		c.logger.Error("failed to read message", "address", addr.String(), "id", id, "error", err)
		return nil
	}
	return &msg
}

// get performs a query-parameter API call and decodes the JSON response.
func (c *Client) get(ctx context.Context, query url.Values, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+query.Encode(), nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}
	return nil
}
