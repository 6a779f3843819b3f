package anthropic

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	defaultBase = "https://api.anthropic.com/v1"
	apiVersion  = "2023-06-01"

	// Fixed sampling parameters. Low temperature biases the model toward
	// schema-conformant output.
	maxTokens   = 2000
	temperature = 0.2
)

type Client struct {
	apiKey string
	model  string
	base   string
	http   *http.Client
}

func NewClient(apiKey, model string, timeout time.Duration) *Client {
	return &Client{
		apiKey: apiKey,
		model:  model,
		base:   defaultBase,
		http:   &http.Client{Timeout: timeout},
	}
}

type messagesRequest struct {
	Model       string    `json:"model"`
	MaxTokens   int       `json:"max_tokens"`
	Temperature float32   `json:"temperature"`
	System      string    `json:"system,omitempty"`
	Messages    []message `json:"messages"`
}

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type messagesResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
	Error *struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// Complete sends one system+user message pair to the messages API and returns
// the first text content block. A response without a text block returns "" and
// no error; the caller decides how to treat an empty completion.
func (c *Client) Complete(ctx context.Context, system, user string) (string, error) {
	body := messagesRequest{
		Model:       c.model,
		MaxTokens:   maxTokens,
		Temperature: temperature,
		System:      system,
		Messages: []message{
			{Role: "user", Content: user},
		},
	}

	b, _ := json.Marshal(body)
	r, err := http.NewRequestWithContext(ctx, http.MethodPost, c.base+"/messages", bytes.NewReader(b))
	if err != nil {
		return "", err
	}
	r.Header.Set("x-api-key", c.apiKey)
	r.Header.Set("anthropic-version", apiVersion)
	r.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(r)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	bodyBytes, _ := io.ReadAll(resp.Body)
	if resp.StatusCode >= 400 {
		return "", fmt.Errorf("anthropic api error (status %d): %s", resp.StatusCode, string(bodyBytes))
	}

	var mr messagesResponse
	if err := json.Unmarshal(bodyBytes, &mr); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	if mr.Error != nil {
		return "", fmt.Errorf("api error: %s", mr.Error.Message)
	}

	for _, block := range mr.Content {
		if block.Type == "text" {
			return block.Text, nil
		}
	}
	return "", nil
}
