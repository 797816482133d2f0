package interpreter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// DefaultTimeout bounds a single delegation call. The service call is the
// only blocking point in a quiz turn; expiry degrades to "no usable reply".
const DefaultTimeout = 10 * time.Second

const maxResponseSize = 1 << 20 // 1 MB

// Message is one turn of the exchange with the interpreter service.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Client talks to the opaque natural-language interpreter over HTTP. Each
// request advertises the quiz actions as the only callable operations plus a
// policy document describing the command grammar; the service answers with
// one of several loosely specified shapes (see ExtractAssistantText).
type Client struct {
	Endpoint string
	Actions  []string
	Policy   string
	HTTP     *http.Client
}

// NewClient creates a client for the service at endpoint. A non-positive
// timeout falls back to DefaultTimeout.
func NewClient(endpoint string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		Endpoint: endpoint,
		HTTP:     &http.Client{Timeout: timeout},
	}
}

type generateRequest struct {
	Messages []Message `json:"messages"`
	Actions  []string  `json:"actions,omitempty"`
	Policy   string    `json:"policy,omitempty"`
}

// Generate submits one user message and returns the raw structured response.
// Transport errors, non-200 statuses and unreadable bodies are all returned
// as errors; callers treat any error as "no usable reply".
func (c *Client) Generate(ctx context.Context, userText string) (json.RawMessage, error) {
	if c.Endpoint == "" {
		return nil, fmt.Errorf("no interpreter endpoint configured")
	}

	body, err := json.Marshal(generateRequest{
		Messages: []Message{{Role: "user", Content: userText}},
		Actions:  c.Actions,
		Policy:   c.Policy,
	})
	if err != nil {
		return nil, fmt.Errorf("marshal interpreter request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", "spelltutor-cli")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("interpreter returned status: %s", resp.Status)
	}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, fmt.Errorf("read interpreter response: %w", err)
	}
	return json.RawMessage(raw), nil
}
