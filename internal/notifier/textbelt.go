package notifier

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Textbelt sends SMS through the textbelt.com HTTP gateway. The key
// "textbelt" selects the free tier.
type Textbelt struct {
	url    string
	key    string
	client *http.Client
}

func NewTextbelt(gatewayURL, key string) *Textbelt {
	return &Textbelt{
		url:    gatewayURL,
		key:    key,
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

func (t *Textbelt) Notify(ctx context.Context, phone, message string) error {
	form := url.Values{}
	form.Set("phone", phone)
	form.Set("message", message)
	form.Set("key", t.key)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.url, strings.NewReader(form.Encode()))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := t.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	var body struct {
		Success bool   `json:"success"`
		Error   string `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return fmt.Errorf("decode textbelt response: %w", err)
	}

	if !body.Success {
		return fmt.Errorf("textbelt delivery failed: %s", body.Error)
	}

	return nil
}
