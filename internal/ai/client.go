package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/guptapriyanshi3107-dotcom/Finova-CodeRed3/pkg/config"
)

const (
	modelID        = "ibm/granite-13b-chat-v2"
	requestTimeout = 30 * time.Second

	promptPrefix = "You are FinPal, the AI financial assistant for Finova. User asks: "
)

// Client talks to the IBM Granite chat API.
type Client struct {
	endpoint   string
	apiKey     string
	httpClient *http.Client
}

// NewClient builds a Granite client from config.
func NewClient(cfg config.GraniteConfig) *Client {
	return &Client{
		endpoint:   cfg.Endpoint,
		apiKey:     cfg.APIKey,
		httpClient: &http.Client{Timeout: requestTimeout},
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatParameters struct {
	MaxNewTokens      int     `json:"max_new_tokens"`
	Temperature       float64 `json:"temperature,omitempty"`
	TopP              float64 `json:"top_p,omitempty"`
	RepetitionPenalty float64 `json:"repetition_penalty,omitempty"`
}

type chatRequest struct {
	ModelID    string         `json:"model_id"`
	Messages   []chatMessage  `json:"messages"`
	Parameters chatParameters `json:"parameters"`
}

type chatResponse struct {
	Results []struct {
		GeneratedText string `json:"generated_text"`
	} `json:"results"`
}

// Chat relays a user message to Granite and returns the generated reply.
func (c *Client) Chat(ctx context.Context, message string) (string, error) {
	if c.apiKey == "" {
		return "", fmt.Errorf("granite api key not configured")
	}

	req := chatRequest{
		ModelID: modelID,
		Messages: []chatMessage{
			{Role: "user", Content: promptPrefix + message},
		},
		Parameters: chatParameters{
			MaxNewTokens:      500,
			Temperature:       0.7,
			TopP:              0.9,
			RepetitionPenalty: 1.1,
		},
	}

	var resp chatResponse
	if err := c.do(ctx, req, &resp); err != nil {
		return "", err
	}
	if len(resp.Results) == 0 {
		return "", fmt.Errorf("no response from granite model")
	}
	return strings.TrimSpace(resp.Results[0].GeneratedText), nil
}

// Ping issues a minimal completion to verify the service is reachable.
func (c *Client) Ping(ctx context.Context) error {
	if c.apiKey == "" {
		return fmt.Errorf("granite api key not configured")
	}

	req := chatRequest{
		ModelID:    modelID,
		Messages:   []chatMessage{{Role: "user", Content: "Hello"}},
		Parameters: chatParameters{MaxNewTokens: 10},
	}

	var resp chatResponse
	return c.do(ctx, req, &resp)
}

func (c *Client) do(ctx context.Context, payload chatRequest, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("granite request: %w", err)
	}
	defer httpResp.Body.Close()

	if httpResp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, httpResp.Body)
		return fmt.Errorf("granite api error: %d", httpResp.StatusCode)
	}

	if err := json.NewDecoder(httpResp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
