package llm

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

const (
	// MaxCompletionTokens caps generation length for both chat replies and
	// schedule generation.
	MaxCompletionTokens = 2000

	DefaultTemperature = 0.7
)

// Message is one entry of the outbound chat-completion message list.
type Message struct {
	Role    string
	Content string
}

// APIError carries the provider's status code and message so user-initiated
// actions can surface them verbatim.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("groq api error: %d - %s", e.StatusCode, e.Message)
}

// Client talks to Groq's OpenAI-compatible chat completions endpoint.
type Client struct {
	api   *openai.Client
	model string
}

func NewClient(apiKey, baseURL, model string) *Client {
	cfg := openai.DefaultConfig(apiKey)
	cfg.BaseURL = baseURL
	return &Client{
		api:   openai.NewClientWithConfig(cfg),
		model: model,
	}
}

func (c *Client) Model() string {
	return c.model
}

// Complete performs a single non-streaming completion and returns the whole
// assistant message.
func (c *Client) Complete(ctx context.Context, messages []Message, temperature float64) (string, error) {
	resp, err := c.api.CreateChatCompletion(ctx, c.buildRequest(messages, temperature, false))
	if err != nil {
		return "", wrapAPIError(err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("empty response from model")
	}
	return resp.Choices[0].Message.Content, nil
}

// StreamComplete performs a streaming completion, invoking onDelta for every
// non-empty content chunk, and returns the fully assembled response. The
// stream runs to completion or to a provider error; there is no cancel path
// beyond ctx.
func (c *Client) StreamComplete(
	ctx context.Context,
	messages []Message,
	temperature float64,
	onDelta func(delta string),
) (string, error) {
	stream, err := c.api.CreateChatCompletionStream(ctx, c.buildRequest(messages, temperature, true))
	if err != nil {
		return "", wrapAPIError(err)
	}
	defer stream.Close()

	var full strings.Builder
	for {
		chunk, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return full.String(), wrapAPIError(err)
		}
		if len(chunk.Choices) == 0 {
			continue
		}
		delta := chunk.Choices[0].Delta.Content
		if delta == "" {
			continue
		}
		full.WriteString(delta)
		if onDelta != nil {
			onDelta(delta)
		}
	}

	return full.String(), nil
}

func (c *Client) buildRequest(messages []Message, temperature float64, stream bool) openai.ChatCompletionRequest {
	outbound := make([]openai.ChatCompletionMessage, 0, len(messages))
	for _, message := range messages {
		outbound = append(outbound, openai.ChatCompletionMessage{
			Role:    message.Role,
			Content: message.Content,
		})
	}

	// The request struct tags Temperature omitempty, so a literal 0 would
	// vanish from the wire and the provider would fall back to its own
	// default. The smallest positive float32 keeps deterministic sampling
	// selectable.
	temp := float32(temperature)
	if temp == 0 {
		temp = math.SmallestNonzeroFloat32
	}

	return openai.ChatCompletionRequest{
		Model:       c.model,
		Messages:    outbound,
		Temperature: temp,
		MaxTokens:   MaxCompletionTokens,
		TopP:        1,
		Stream:      stream,
	}
}

func wrapAPIError(err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return &APIError{
			StatusCode: apiErr.HTTPStatusCode,
			Message:    apiErr.Message,
		}
	}
	return err
}
