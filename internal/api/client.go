// Package api implements the HTTP client for the agent chat service.
package api

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

	"github.com/tidwall/gjson"

	apierrors "github.com/diogo/agentchat/internal/errors"
	"github.com/diogo/agentchat/internal/models"
)

const (
	// DefaultTimeout bounds a single exchange when no timeout is
	// configured.
	DefaultTimeout = 120 * time.Second

	// DefaultChatPath is the chat endpoint path on the agent service.
	DefaultChatPath = "/api/chat"

	// replyField is the response field carrying the assistant's reply.
	replyField = "assistant"

	// Limit captured error bodies to 4KB for diagnostics.
	maxErrorBody = 4096
)

// Client performs request/response exchanges against the agent service.
// It holds no conversation state: callers pass the full conversation on
// every exchange.
type Client struct {
	baseURL    string
	path       string
	userID     string
	httpClient *http.Client
	log        *slog.Logger
}

// ClientOption is a function that configures the client
type ClientOption func(*Client)

// WithPath sets the chat endpoint path
func WithPath(path string) ClientOption {
	return func(c *Client) {
		if path != "" {
			c.path = path
		}
	}
}

// WithTimeout sets the per-exchange timeout
func WithTimeout(d time.Duration) ClientOption {
	return func(c *Client) {
		if d > 0 {
			c.httpClient.Timeout = d
		}
	}
}

// WithHTTPClient replaces the underlying HTTP client
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithLogger sets the logger used for diagnostics
func WithLogger(log *slog.Logger) ClientOption {
	return func(c *Client) {
		if log != nil {
			c.log = log
		}
	}
}

// NewClient creates a new Client for the agent service at baseURL.
// userID is the static identifier sent with every exchange.
func NewClient(baseURL, userID string, opts ...ClientOption) (*Client, error) {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return nil, fmt.Errorf("base URL cannot be empty")
	}
	if strings.TrimSpace(userID) == "" {
		return nil, fmt.Errorf("user ID cannot be empty")
	}

	client := &Client{
		baseURL:    baseURL,
		path:       DefaultChatPath,
		userID:     userID,
		httpClient: &http.Client{Timeout: DefaultTimeout},
		log:        slog.Default(),
	}

	for _, opt := range opts {
		opt(client)
	}

	return client, nil
}

// Endpoint returns the full chat endpoint URL
func (c *Client) Endpoint() string {
	return c.baseURL + c.path
}

// UserID returns the identifier sent with every exchange
func (c *Client) UserID() string {
	return c.userID
}

// chatRequest mirrors the agent service's chat payload
type chatRequest struct {
	UserID   string           `json:"user_id"`
	Messages []models.Message `json:"messages"`
}

// Exchange sends the full conversation to the agent service and returns
// the assistant's reply. Any transport error, non-2xx status, or
// response missing the reply field is reported as a uniform exchange
// failure (it matches errors.ErrExchangeFailed).
func (c *Client) Exchange(ctx context.Context, conv models.Conversation) (string, error) {
	if len(conv) == 0 {
		return "", fmt.Errorf("conversation cannot be empty")
	}

	endpoint := c.Endpoint()

	payload, err := json.Marshal(chatRequest{
		UserID:   c.userID,
		Messages: conv,
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", apierrors.NewNetworkError("chat exchange", endpoint, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		errorBody, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		c.log.Error("chat exchange rejected",
			"status", resp.StatusCode,
			"endpoint", endpoint,
		)
		return "", apierrors.NewAPIErrorWithBody(resp.StatusCode, endpoint, "chat exchange failed", string(errorBody))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", apierrors.NewNetworkError("read response", endpoint, err)
	}

	return parseReply(body)
}

// parseReply extracts the assistant reply from a response body
func parseReply(body []byte) (string, error) {
	if !gjson.ValidBytes(body) {
		return "", apierrors.NewParseError("response is not valid JSON", "")
	}

	reply := gjson.GetBytes(body, replyField)
	if !reply.Exists() {
		return "", apierrors.NewParseError("response missing assistant reply", replyField)
	}
	if reply.Type != gjson.String {
		return "", apierrors.NewParseError("assistant reply is not a string", replyField)
	}

	return reply.String(), nil
}
