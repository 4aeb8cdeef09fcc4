package groq

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

const defaultModel = "llama3-70b-8192"

// Client talks to the Groq OpenAI-compatible chat completions API. With no API
// key configured it answers from the canned offline advisor instead of failing,
// so development setups work without credentials.
type Client struct {
	BaseURL     string
	APIKey      string
	Model       string
	Temperature float64
	MaxTokens   int

	HTTP *http.Client
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// Chat sends a single-turn prompt and returns the assistant text. The model
// argument overrides the configured default when non-empty.
func (c *Client) Chat(ctx context.Context, prompt, model string) (string, error) {
	if strings.TrimSpace(c.APIKey) == "" {
		return FallbackResponse(prompt), nil
	}

	base := strings.TrimRight(strings.TrimSpace(c.BaseURL), "/")
	if base == "" {
		base = "https://api.groq.com/openai"
	}
	if model = strings.TrimSpace(model); model == "" {
		model = strings.TrimSpace(c.Model)
	}
	if model == "" {
		model = defaultModel
	}
	temperature := c.Temperature
	if temperature == 0 {
		temperature = 0.7
	}
	maxTokens := c.MaxTokens
	if maxTokens == 0 {
		maxTokens = 2048
	}

	body, _ := json.Marshal(chatRequest{
		Model:       model,
		Messages:    []chatMessage{{Role: "user", Content: prompt}},
		Temperature: temperature,
		MaxTokens:   maxTokens,
	})
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, base+"/v1/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+strings.TrimSpace(c.APIKey))

	resp, err := c.httpClient().Do(req)
	if err != nil {
		return "", err
	}
	defer func() { _ = resp.Body.Close() }()
	b, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("groq http %d: %s", resp.StatusCode, strings.TrimSpace(string(b)))
	}
	var cr chatResponse
	if err := json.Unmarshal(b, &cr); err != nil {
		return "", err
	}
	if len(cr.Choices) == 0 {
		return "", errors.New("groq response has no choices")
	}
	return cr.Choices[0].Message.Content, nil
}

func (c *Client) httpClient() *http.Client {
	if c.HTTP != nil {
		return c.HTTP
	}
	return http.DefaultClient
}
