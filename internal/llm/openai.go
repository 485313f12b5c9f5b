package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/sashabaranov/go-openai"

	"github.com/valpere/voicemsg/internal/log"
)

var errNoChoices = errors.New("response contained no choices")

// OpenAIClient talks to any OpenAI-compatible chat completion endpoint,
// such as Open WebUI, OpenRouter or OpenAI itself.
type OpenAIClient struct {
	client  *openai.Client
	baseURL string
}

// NewOpenAIClient creates a client for baseURL. An empty baseURL keeps the
// library default (https://api.openai.com/v1).
func NewOpenAIClient(baseURL, apiKey string, timeout time.Duration) *OpenAIClient {
	clientConfig := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		clientConfig.BaseURL = baseURL
	}
	clientConfig.HTTPClient = &http.Client{Timeout: timeout}

	return &OpenAIClient{
		client:  openai.NewClientWithConfig(clientConfig),
		baseURL: clientConfig.BaseURL,
	}
}

func (c *OpenAIClient) Name() string {
	return ProviderOpenAI
}

func (c *OpenAIClient) Complete(ctx context.Context, systemMessage, userMessage, model string) (string, error) {
	req := openai.ChatCompletionRequest{
		Model: model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemMessage},
			{Role: openai.ChatMessageRoleUser, Content: userMessage},
		},
	}

	resp, err := c.client.CreateChatCompletion(ctx, req)
	if err != nil {
		upstream := &UpstreamCallError{Provider: c.Name(), Err: err}
		var apiErr *openai.APIError
		var reqErr *openai.RequestError
		if errors.As(err, &apiErr) {
			upstream.StatusCode = apiErr.HTTPStatusCode
		} else if errors.As(err, &reqErr) {
			upstream.StatusCode = reqErr.HTTPStatusCode
		}
		return "", upstream
	}

	if len(resp.Choices) == 0 {
		return "", &UpstreamCallError{Provider: c.Name(), Err: errNoChoices}
	}

	log.Debug().
		Str("model", model).
		Str("finishReason", string(resp.Choices[0].FinishReason)).
		Int("promptTokens", resp.Usage.PromptTokens).
		Int("completionTokens", resp.Usage.CompletionTokens).
		Msg("openai completion")

	return resp.Choices[0].Message.Content, nil
}

// ListModels returns the model ids the endpoint advertises.
func (c *OpenAIClient) ListModels(ctx context.Context) ([]string, error) {
	list, err := c.client.ListModels(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list models at %s: %w", c.baseURL, err)
	}
	ids := make([]string, 0, len(list.Models))
	for _, m := range list.Models {
		ids = append(ids, m.ID)
	}
	return ids, nil
}
