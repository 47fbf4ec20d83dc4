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

const vonageEndpoint = "https://rest.nexmo.com/sms/json"

// Vonage sends SMS through the Vonage (Nexmo) REST API.
type Vonage struct {
	apiKey    string
	apiSecret string
	from      string
	endpoint  string
	client    *http.Client
}

func NewVonage(apiKey, apiSecret, from string) *Vonage {
	return &Vonage{
		apiKey:    apiKey,
		apiSecret: apiSecret,
		from:      from,
		endpoint:  vonageEndpoint,
		client:    &http.Client{Timeout: 10 * time.Second},
	}
}

func (v *Vonage) Notify(ctx context.Context, phone, message string) error {
	form := url.Values{}
	form.Set("api_key", v.apiKey)
	form.Set("api_secret", v.apiSecret)
	form.Set("from", v.from)
	form.Set("to", phone)
	form.Set("text", message)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, v.endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := v.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	var body struct {
		Messages []struct {
			Status    string `json:"status"`
			ErrorText string `json:"error-text"`
		} `json:"messages"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return fmt.Errorf("decode vonage response: %w", err)
	}

	if len(body.Messages) == 0 {
		return fmt.Errorf("vonage returned no message status")
	}
	// Status "0" means accepted for delivery.
	if m := body.Messages[0]; m.Status != "0" {
		return fmt.Errorf("vonage delivery failed: %s", m.ErrorText)
	}

	return nil
}
