package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Karan28272827/testurself-backend/internal/config"
	"github.com/Karan28272827/testurself-backend/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLLMConfig(baseURL string) config.LLMConfig {
	return config.LLMConfig{
		APIKey:    "test-key",
		BaseURL:   baseURL,
		Model:     "deepseek-chat",
		Timeout:   5 * time.Second,
		MaxTokens: 800,
	}
}

// completionsStub serves an OpenAI-compatible chat completion response.
func completionsStub(t *testing.T, status int, content string, choices bool) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Contains(t, r.URL.Path, "/chat/completions")

		var payload map[string]interface{}
		if err := json.NewDecoder(r.Body).Decode(&payload); err == nil {
			assert.Equal(t, "deepseek-chat", payload["model"])
		}

		if status != http.StatusOK {
			http.Error(w, `{"error": {"message": "provider failure"}}`, status)
			return
		}

		resp := map[string]interface{}{
			"id":      "chatcmpl-test",
			"object":  "chat.completion",
			"created": time.Now().Unix(),
			"model":   "deepseek-chat",
			"choices": []map[string]interface{}{},
		}
		if choices {
			resp["choices"] = []map[string]interface{}{
				{
					"index":         0,
					"message":       map[string]string{"role": "assistant", "content": content},
					"finish_reason": "stop",
				},
			}
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resp)
	}))
}

func TestComplete_ReturnsFirstCompletionText(t *testing.T) {
	server := completionsStub(t, http.StatusOK, "VERDICT: CORRECT\nJUSTIFICATION: fine", true)
	defer server.Close()

	client, err := NewDeepSeekClient(testLLMConfig(server.URL))
	require.NoError(t, err)

	got, err := client.Complete(context.Background(), "evaluate this", 0.3)
	require.NoError(t, err)
	assert.Equal(t, "VERDICT: CORRECT\nJUSTIFICATION: fine", got)
}

func TestComplete_ProviderErrorStatus(t *testing.T) {
	server := completionsStub(t, http.StatusInternalServerError, "", false)
	defer server.Close()

	client, err := NewDeepSeekClient(testLLMConfig(server.URL))
	require.NoError(t, err)

	_, err = client.Complete(context.Background(), "prompt", 0.7)
	require.Error(t, err)

	var domainErr *domain.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, domain.CodeLLMProvider, domainErr.Code)
}

func TestComplete_EmptyChoicesIsMalformedResponse(t *testing.T) {
	server := completionsStub(t, http.StatusOK, "", false)
	defer server.Close()

	client, err := NewDeepSeekClient(testLLMConfig(server.URL))
	require.NoError(t, err)

	_, err = client.Complete(context.Background(), "prompt", 0.7)
	require.Error(t, err)

	var domainErr *domain.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, domain.CodeLLMMalformed, domainErr.Code)
}

func TestComplete_EmptyPromptIsRejected(t *testing.T) {
	server := completionsStub(t, http.StatusOK, "unused", true)
	defer server.Close()

	client, err := NewDeepSeekClient(testLLMConfig(server.URL))
	require.NoError(t, err)

	_, err = client.Complete(context.Background(), "", 0.7)
	require.Error(t, err)

	var domainErr *domain.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, domain.CodeInvalidInput, domainErr.Code)
}
