// Package telegram sends messages through the Telegram Bot API
package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
)

// ErrNotConfigured is returned when no bot token is set
var ErrNotConfigured = errors.New("telegram bot token is not configured")

// Client calls the sendMessage method of the Bot API
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewClient creates a new Telegram client. baseURL is usually https://api.telegram.org.
func NewClient(baseURL, token string, logger *zap.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		logger: logger,
	}
}

type sendMessageRequest struct {
	ChatID    string `json:"chat_id"`
	Text      string `json:"text"`
	ParseMode string `json:"parse_mode"`
}

type apiResponse struct {
	OK          bool   `json:"ok"`
	Description string `json:"description"`
}

// SendMessage posts a Markdown message to the chat
func (c *Client) SendMessage(ctx context.Context, chatID, text string) error {
	if c.token == "" {
		return ErrNotConfigured
	}

	body, err := json.Marshal(sendMessageRequest{
		ChatID:    chatID,
		Text:      text,
		ParseMode: "Markdown",
	})
	if err != nil {
		return fmt.Errorf("failed to encode message: %w", err)
	}

	url := fmt.Sprintf("%s/bot%s/sendMessage", c.baseURL, c.token)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send message: %w", err)
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))

	var result apiResponse
	if err := json.Unmarshal(respBody, &result); err != nil || resp.StatusCode != http.StatusOK || !result.OK {
		c.logger.Warn("telegram api rejected message",
			zap.Int("status", resp.StatusCode),
			zap.String("chatID", chatID),
			zap.String("description", result.Description),
		)
		return fmt.Errorf("telegram api returned status %d: %s", resp.StatusCode, result.Description)
	}

	return nil
}

// FormatPassage builds the shared message for a passage
func FormatPassage(title, content string) string {
	return fmt.Sprintf("📚 *%s*\n\n%s\n\nShared from TOEFL Prep App", title, content)
}
