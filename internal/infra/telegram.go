package infra

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// TelegramClient sends notification messages through the Bot API.
type TelegramClient struct {
	token string
	http  *http.Client
}

func NewTelegramClient(token string) *TelegramClient {
	return &TelegramClient{
		token: token,
		http:  &http.Client{Timeout: 10 * time.Second},
	}
}

// Enabled reports whether a bot token is configured.
func (t *TelegramClient) Enabled() bool {
	return t.token != ""
}

// SendMessage posts a text message to the chat.
func (t *TelegramClient) SendMessage(ctx context.Context, chatID int64, text string) error {
	body, err := json.Marshal(map[string]any{
		"chat_id": chatID,
		"text":    text,
	})
	if err != nil {
		return err
	}

	url := fmt.Sprintf("https://api.telegram.org/bot%s/sendMessage", t.token)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := t.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("telegram: sendMessage returned %s", resp.Status)
	}
	return nil
}
