package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/Karan28272827/testurself-backend/internal/config"
	"github.com/Karan28272827/testurself-backend/internal/domain"
	"github.com/Karan28272827/testurself-backend/internal/logger"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
	"go.uber.org/zap"
)

// deepSeekClient implements domain.CompletionClient against the DeepSeek
// chat-completions API, which speaks the OpenAI wire format.
type deepSeekClient struct {
	llm       *openai.LLM
	timeout   time.Duration
	maxTokens int
}

// NewDeepSeekClient creates a completion client for the configured provider.
// An empty API key is accepted; requests will fail at call time instead.
func NewDeepSeekClient(cfg config.LLMConfig) (domain.CompletionClient, error) {
	httpClient := &http.Client{Timeout: cfg.Timeout}

	// The underlying client refuses an empty token outright. A placeholder
	// keeps startup alive; the provider then rejects calls at request time.
	token := cfg.APIKey
	if token == "" {
		token = "missing-api-key"
	}

	client, err := openai.New(
		openai.WithToken(token),
		openai.WithModel(cfg.Model),
		openai.WithBaseURL(cfg.BaseURL),
		openai.WithHTTPClient(httpClient),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create LLM client: %w", err)
	}

	return &deepSeekClient{
		llm:       client,
		timeout:   cfg.Timeout,
		maxTokens: cfg.MaxTokens,
	}, nil
}

// Complete sends one prompt and returns the first completion's text verbatim.
func (c *deepSeekClient) Complete(ctx context.Context, prompt string, temperature float64) (string, error) {
	if prompt == "" {
		return "", domain.NewInvalidInputError("prompt cannot be empty")
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	response, err := c.llm.Call(ctx, prompt,
		llms.WithTemperature(temperature),
		llms.WithMaxTokens(c.maxTokens),
	)
	if err != nil {
		if errors.Is(err, openai.ErrEmptyResponse) {
			logger.Get().Error("LLM returned a payload without a completion", zap.Error(err))
			return "", domain.NewLLMMalformedResponseError(err)
		}
		logger.Get().Error("LLM call failed", zap.Error(err))
		return "", domain.NewLLMProviderError(err)
	}

	// Raw response body, for diagnostics only.
	logger.Get().Debug("Raw LLM response received", zap.String("raw_response", response))

	if response == "" {
		return "", domain.NewLLMMalformedResponseError(errors.New("completion text is empty"))
	}
	return response, nil
}
