package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// Sender relays one chat message to the LLM webhook and returns the reply
// text. Implementations must format non-200 responses into the reply
// instead of failing; only transport and decode problems are errors.
type Sender interface {
	Send(ctx context.Context, sessionID, chatInput string) (string, error)
}

type request struct {
	SessionID string `json:"sessionId"`
	ChatInput string `json:"chatInput"`
}

type response struct {
	Output *string `json:"output"`
}

// Client posts chat messages to a fixed webhook URL.
type Client struct {
	url  string
	http *http.Client
}

// New creates a webhook client. A nil httpClient falls back to
// http.DefaultClient, which carries no timeout; a slow webhook blocks the
// calling request until it answers.
func New(url string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{url: url, http: httpClient}
}

func (c *Client) Send(ctx context.Context, sessionID, chatInput string) (string, error) {
	payload, err := json.Marshal(request{SessionID: sessionID, ChatInput: chatInput})
	if err != nil {
		return "", fmt.Errorf("encode webhook payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("build webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("call webhook: %w", err)
	}
	defer func(body io.ReadCloser) {
		err := body.Close()
		if err != nil {
		}
	}(resp.Body)

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read webhook response: %w", err)
	}

	// Non-200 becomes transcript text, mirrored into the conversation as
	// if the assistant had said it.
	if resp.StatusCode != http.StatusOK {
		return fmt.Sprintf("Error: %d - %s", resp.StatusCode, string(body)), nil
	}

	var out response
	if err := json.Unmarshal(body, &out); err != nil {
		return "", fmt.Errorf("decode webhook response: %w", err)
	}
	if out.Output == nil {
		return "", fmt.Errorf("webhook response has no output field")
	}
	return *out.Output, nil
}
