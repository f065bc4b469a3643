package telegram

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestClient_SendMessage(t *testing.T) {
	tests := []struct {
		name          string
		token         string
		status        int
		response      string
		expectedError bool
	}{
		{
			name:     "success",
			token:    "123:abc",
			status:   http.StatusOK,
			response: `{"ok":true,"result":{}}`,
		},
		{
			name:          "api error",
			token:         "123:abc",
			status:        http.StatusBadRequest,
			response:      `{"ok":false,"description":"Bad Request: chat not found"}`,
			expectedError: true,
		},
		{
			name:          "not ok with status 200",
			token:         "123:abc",
			status:        http.StatusOK,
			response:      `{"ok":false}`,
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var received sendMessageRequest
			var path string

			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				path = r.URL.Path
				require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.response))
			}))
			defer server.Close()

			client := NewClient(server.URL+"/", tt.token, zap.NewNop())
			err := client.SendMessage(context.Background(), "@channel", "hello")

			if tt.expectedError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, "/bot123:abc/sendMessage", path)
			assert.Equal(t, "@channel", received.ChatID)
			assert.Equal(t, "hello", received.Text)
			assert.Equal(t, "Markdown", received.ParseMode)
		})
	}
}

func TestClient_SendMessage_NotConfigured(t *testing.T) {
	client := NewClient("https://api.telegram.org", "", zap.NewNop())

	err := client.SendMessage(context.Background(), "@channel", "hello")
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestFormatPassage(t *testing.T) {
	assert.Equal(t,
		"📚 *Climate*\n\nGlaciers are melting.\n\nShared from TOEFL Prep App",
		FormatPassage("Climate", "Glaciers are melting."),
	)
}
