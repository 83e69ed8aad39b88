package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/guptapriyanshi3107-dotcom/Finova-CodeRed3/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// graniteStub records the last request and replies with a fixed text.
func graniteStub(t *testing.T, status int, text string) (*httptest.Server, *chatRequest) {
	t.Helper()
	var captured chatRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))

		w.WriteHeader(status)
		if status == http.StatusOK {
			json.NewEncoder(w).Encode(map[string]any{
				"results": []map[string]string{{"generated_text": text}},
			})
		}
	}))
	t.Cleanup(server.Close)
	return server, &captured
}

func newTestClient(endpoint string) *Client {
	return NewClient(config.GraniteConfig{Endpoint: endpoint, APIKey: "test-key"})
}

func TestChat(t *testing.T) {
	t.Run("wraps the message in the FinPal prompt", func(t *testing.T) {
		server, captured := graniteStub(t, http.StatusOK, "  Save 20% of your income.  ")
		client := newTestClient(server.URL)

		reply, err := client.Chat(context.Background(), "How much should I save?")
		require.NoError(t, err)
		assert.Equal(t, "Save 20% of your income.", reply)

		assert.Equal(t, modelID, captured.ModelID)
		require.Len(t, captured.Messages, 1)
		assert.True(t, strings.HasPrefix(captured.Messages[0].Content, "You are FinPal"))
		assert.True(t, strings.HasSuffix(captured.Messages[0].Content, "How much should I save?"))
		assert.Equal(t, 500, captured.Parameters.MaxNewTokens)
		assert.Equal(t, 0.7, captured.Parameters.Temperature)
	})

	t.Run("fails on upstream errors", func(t *testing.T) {
		server, _ := graniteStub(t, http.StatusBadGateway, "")
		client := newTestClient(server.URL)

		_, err := client.Chat(context.Background(), "hello")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "502")
	})

	t.Run("fails without an api key", func(t *testing.T) {
		client := NewClient(config.GraniteConfig{Endpoint: "http://unused"})
		_, err := client.Chat(context.Background(), "hello")
		require.Error(t, err)
	})

	t.Run("fails on an empty result set", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(map[string]any{"results": []any{}})
		}))
		t.Cleanup(server.Close)

		_, err := newTestClient(server.URL).Chat(context.Background(), "hello")
		require.Error(t, err)
	})
}

func TestPing(t *testing.T) {
	server, captured := graniteStub(t, http.StatusOK, "Hi")
	client := newTestClient(server.URL)

	require.NoError(t, client.Ping(context.Background()))
	assert.Equal(t, "Hello", captured.Messages[0].Content)
	assert.Equal(t, 10, captured.Parameters.MaxNewTokens)
}

func setupTestRouter(client *Client) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	api := router.Group("/api/v1")
	NewHandler(client).RegisterRoutes(api)
	return router
}

func TestGetAdvice(t *testing.T) {
	t.Run("relays the model reply", func(t *testing.T) {
		server, _ := graniteStub(t, http.StatusOK, "Track every expense for a month.")
		router := setupTestRouter(newTestClient(server.URL))

		w := httptest.NewRecorder()
		body := strings.NewReader(`{"message": "Where does my money go?"}`)
		req := httptest.NewRequest(http.MethodPost, "/api/v1/ai/advice", body)
		req.Header.Set("Authorization", "Bearer 1")
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var resp AdviceResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "granite", resp.Source)
		assert.Equal(t, "Track every expense for a month.", resp.Response)
		assert.NotZero(t, resp.Timestamp)
	})

	t.Run("degrades to the fallback on upstream failure", func(t *testing.T) {
		server, _ := graniteStub(t, http.StatusInternalServerError, "")
		router := setupTestRouter(newTestClient(server.URL))

		w := httptest.NewRecorder()
		body := strings.NewReader(`{"message": "help"}`)
		req := httptest.NewRequest(http.MethodPost, "/api/v1/ai/advice", body)
		req.Header.Set("Authorization", "Bearer 1")
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var resp AdviceResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "fallback", resp.Source)
		assert.Equal(t, FallbackMessage, resp.Response)
	})

	t.Run("requires authentication", func(t *testing.T) {
		router := setupTestRouter(newTestClient("http://unused"))

		w := httptest.NewRecorder()
		body := strings.NewReader(`{"message": "help"}`)
		req := httptest.NewRequest(http.MethodPost, "/api/v1/ai/advice", body)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("rejects an empty message", func(t *testing.T) {
		router := setupTestRouter(newTestClient("http://unused"))

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/ai/advice", strings.NewReader(`{}`))
		req.Header.Set("Authorization", "Bearer 1")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestCheckHealth(t *testing.T) {
	t.Run("healthy upstream", func(t *testing.T) {
		server, _ := graniteStub(t, http.StatusOK, "Hi")
		router := setupTestRouter(newTestClient(server.URL))

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/ai/health", nil)
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var resp HealthResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "healthy", resp.Status)
	})

	t.Run("unreachable upstream reports error", func(t *testing.T) {
		router := setupTestRouter(NewClient(config.GraniteConfig{Endpoint: "http://unused"}))

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/ai/health", nil)
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var resp HealthResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "error", resp.Status)
	})
}
