package gateway

import (
	"bytes"
	"compliancebot-be/pkg/llm"
	"compliancebot-be/pkg/sse"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// GatewayProvider talks to an OpenAI-compatible chat completions endpoint
// (the AI gateway) over server-sent events.
type GatewayProvider struct {
	BaseURL   string
	APIKey    string
	ModelName string
	Client    *http.Client
}

// Ensure GatewayProvider implements LLMProvider
var _ llm.LLMProvider = &GatewayProvider{}

func NewGatewayProvider(baseURL, apiKey, modelName string) *GatewayProvider {
	return &GatewayProvider{
		BaseURL:   strings.TrimRight(baseURL, "/"),
		APIKey:    apiKey,
		ModelName: modelName,
		Client: &http.Client{
			Timeout: 120 * time.Second,
		},
	}
}

// --- Request/Response structs (Internal to this package) ---

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Stream      bool          `json:"stream"`
	Temperature float64       `json:"temperature,omitempty"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type streamChunk struct {
	Choices []struct {
		Delta struct {
			Content string `json:"content"`
		} `json:"delta"`
	} `json:"choices"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// --- Interface Implementation ---

func (g *GatewayProvider) Chat(ctx context.Context, history []llm.Message, opts ...llm.Option) (string, error) {
	resp, err := g.send(ctx, history, false, opts...)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}

	var chatResp chatResponse
	if err := json.Unmarshal(bodyBytes, &chatResp); err != nil {
		return "", fmt.Errorf("unmarshal response: %w", err)
	}
	if len(chatResp.Choices) == 0 {
		return "", fmt.Errorf("%w: empty choices", llm.ErrGateway)
	}

	return chatResp.Choices[0].Message.Content, nil
}

func (g *GatewayProvider) ChatStream(ctx context.Context, history []llm.Message, onDelta func(string), opts ...llm.Option) (string, error) {
	resp, err := g.send(ctx, history, true, opts...)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	var full strings.Builder
	parser := sse.NewParser()
	buf := make([]byte, 4096)

	for !parser.Done() {
		if err := ctx.Err(); err != nil {
			return full.String(), err
		}

		n, readErr := resp.Body.Read(buf)
		if n > 0 {
			for _, payload := range parser.Feed(buf[:n]) {
				if delta := extractDelta(payload); delta != "" {
					full.WriteString(delta)
					if onDelta != nil {
						onDelta(delta)
					}
				}
			}
		}
		if readErr == io.EOF {
			for _, payload := range parser.Close() {
				if delta := extractDelta(payload); delta != "" {
					full.WriteString(delta)
					if onDelta != nil {
						onDelta(delta)
					}
				}
			}
			break
		}
		if readErr != nil {
			// A canceled context aborts the body read; report the
			// cancellation, not a gateway fault.
			if ctx.Err() != nil {
				return full.String(), ctx.Err()
			}
			return full.String(), fmt.Errorf("%w: read stream: %v", llm.ErrGateway, readErr)
		}
	}

	return full.String(), nil
}

func extractDelta(payload string) string {
	var chunk streamChunk
	if err := json.Unmarshal([]byte(payload), &chunk); err != nil {
		return ""
	}
	if len(chunk.Choices) == 0 {
		return ""
	}
	return chunk.Choices[0].Delta.Content
}

func (g *GatewayProvider) send(ctx context.Context, history []llm.Message, stream bool, opts ...llm.Option) (*http.Response, error) {
	options := &llm.Options{
		Temperature: 0.7, // Default
	}
	for _, opt := range opts {
		opt(options)
	}

	messages := make([]chatMessage, len(history))
	for i, msg := range history {
		role := msg.Role
		if role == "model" {
			role = "assistant"
		}
		messages[i] = chatMessage{
			Role:    role,
			Content: msg.Content,
		}
	}

	model := g.ModelName
	if options.Model != "" {
		model = options.Model
	}

	payloadBytes, err := json.Marshal(chatRequest{
		Model:       model,
		Messages:    messages,
		Stream:      stream,
		Temperature: options.Temperature,
		MaxTokens:   options.MaxTokens,
	})
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	url := g.BaseURL + "/v1/chat/completions"
	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(payloadBytes))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if g.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+g.APIKey)
	}

	resp, err := g.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", llm.ErrGateway, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		resp.Body.Close()
		switch resp.StatusCode {
		case http.StatusTooManyRequests:
			return nil, fmt.Errorf("%w: status %d", llm.ErrRateLimited, resp.StatusCode)
		case http.StatusPaymentRequired:
			return nil, fmt.Errorf("%w: status %d", llm.ErrQuotaExceeded, resp.StatusCode)
		default:
			return nil, fmt.Errorf("%w: status %d, body: %s", llm.ErrGateway, resp.StatusCode, string(body))
		}
	}

	return resp, nil
}
