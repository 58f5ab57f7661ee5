// Package directory provisions user accounts in the external identity-provider
// directory over its HTTP API.
package directory

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/heartmarshall/insurance-admin/internal/config"
	"github.com/heartmarshall/insurance-admin/internal/domain"
)

// Client talks to the directory API.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	log        *slog.Logger
	retryDelay time.Duration
}

// NewClient creates a Client from cfg.
func NewClient(cfg config.DirectoryConfig, logger *slog.Logger) *Client {
	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:     cfg.APIKey,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		log:        logger.With("adapter", "directory"),
		retryDelay: 500 * time.Millisecond,
	}
}

// CreateAccount registers the user in the directory. An account that
// already exists maps to domain.ErrAlreadyExists.
func (c *Client) CreateAccount(ctx context.Context, u *domain.User) error {
	return c.send(ctx, http.MethodPost, "/accounts", u.Username, toAccount(u))
}

// UpdateAccount pushes the user's current name and email to the directory.
func (c *Client) UpdateAccount(ctx context.Context, u *domain.User) error {
	return c.send(ctx, http.MethodPut, "/accounts/"+url.PathEscape(u.Username), u.Username, toAccount(u))
}

// SendInvitation asks the directory to email the user an activation link.
func (c *Client) SendInvitation(ctx context.Context, u *domain.User) error {
	return c.send(ctx, http.MethodPost, "/accounts/"+url.PathEscape(u.Username)+"/invitations", u.Username,
		invitation{Email: u.Email})
}

func (c *Client) send(ctx context.Context, method, path, username string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("directory: encode %s: %w", path, err)
	}

	c.log.DebugContext(ctx, "directory request", slog.String("method", method), slog.String("path", path))

	resp, err := c.doWithRetry(ctx, method, c.baseURL+path, body)
	if err != nil {
		c.log.ErrorContext(ctx, "directory request failed",
			slog.String("method", method),
			slog.String("path", path),
			slog.String("error", err.Error()),
		)
		return fmt.Errorf("directory: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return nil
	case resp.StatusCode == http.StatusConflict:
		return fmt.Errorf("directory: account %q: %w", username, domain.ErrAlreadyExists)
	case resp.StatusCode == http.StatusNotFound:
		return fmt.Errorf("directory: account %q: %w", username, domain.ErrNotFound)
	default:
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("directory: %s %s: unexpected status %d: %s", method, path, resp.StatusCode, strings.TrimSpace(string(msg)))
	}
}

// doWithRetry executes the request with a single retry on 5xx or network errors.
func (c *Client) doWithRetry(ctx context.Context, method, target string, body []byte) (*http.Response, error) {
	resp, err := c.do(ctx, method, target, body)

	shouldRetry := err != nil || (resp != nil && resp.StatusCode >= 500)
	if !shouldRetry || ctx.Err() != nil {
		return resp, err
	}

	reason := "network error"
	if err == nil {
		reason = fmt.Sprintf("status %d", resp.StatusCode)
		resp.Body.Close()
	}
	c.log.WarnContext(ctx, "directory retry", slog.String("target", target), slog.String("reason", reason))

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-time.After(c.retryDelay):
	}

	return c.do(ctx, method, target, body)
}

func (c *Client) do(ctx context.Context, method, target string, body []byte) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, target, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}
	return c.httpClient.Do(req)
}

// Disabled accepts every call without contacting anything. It stands in when
// no directory endpoint is configured.
type Disabled struct {
	log *slog.Logger
}

// NewDisabled creates a Disabled directory.
func NewDisabled(logger *slog.Logger) *Disabled {
	return &Disabled{log: logger.With("adapter", "directory")}
}

func (d *Disabled) CreateAccount(ctx context.Context, u *domain.User) error {
	d.log.DebugContext(ctx, "directory disabled, account not provisioned", slog.String("username", u.Username))
	return nil
}

func (d *Disabled) UpdateAccount(ctx context.Context, u *domain.User) error {
	d.log.DebugContext(ctx, "directory disabled, account not updated", slog.String("username", u.Username))
	return nil
}

func (d *Disabled) SendInvitation(ctx context.Context, u *domain.User) error {
	d.log.DebugContext(ctx, "directory disabled, invitation not sent", slog.String("username", u.Username))
	return nil
}
