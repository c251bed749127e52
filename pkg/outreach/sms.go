package outreach

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// SMSProvider delivers outreach text messages and exposes the gateway's
// account endpoints.
type SMSProvider interface {
	SendSMS(ctx context.Context, to, message string) error
	Balance(ctx context.Context) (json.RawMessage, error)
	Messages(ctx context.Context, limit, page int, status string) (json.RawMessage, error)
}

// SMSToProvider is the SMS.to gateway implementation.
type SMSToProvider struct {
	apiKey     string
	senderID   string
	baseURL    string
	authURL    string
	httpClient *http.Client
}

// NewSMSToProvider creates an SMS.to provider. baseURL and authURL are
// normally https://api.sms.to and https://auth.sms.to.
func NewSMSToProvider(apiKey, senderID, baseURL, authURL string) *SMSToProvider {
	return &SMSToProvider{
		apiKey:     apiKey,
		senderID:   senderID,
		baseURL:    strings.TrimRight(baseURL, "/"),
		authURL:    strings.TrimRight(authURL, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

type smsSendPayload struct {
	Message  string `json:"message"`
	To       string `json:"to"`
	SenderID string `json:"sender_id"`
}

// SendSMS delivers one message. to must already be in +prefixed form.
func (p *SMSToProvider) SendSMS(ctx context.Context, to, message string) error {
	if p.apiKey == "" {
		return fmt.Errorf("SMS.to API key is not configured")
	}

	body, err := json.Marshal(smsSendPayload{Message: message, To: to, SenderID: p.senderID})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/sms/send", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+p.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to reach SMS gateway: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		errorBody, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("SMS.to API error (%d): %s", resp.StatusCode, strings.TrimSpace(string(errorBody)))
	}
	return nil
}

// Balance returns the account balance document as the gateway reports it.
func (p *SMSToProvider) Balance(ctx context.Context) (json.RawMessage, error) {
	return p.get(ctx, p.authURL+"/api/balance")
}

// Messages returns a page of the account's message history.
func (p *SMSToProvider) Messages(ctx context.Context, limit, page int, status string) (json.RawMessage, error) {
	if limit <= 0 {
		limit = 25
	}
	if page <= 0 {
		page = 1
	}

	params := url.Values{}
	params.Set("limit", strconv.Itoa(limit))
	params.Set("page", strconv.Itoa(page))
	params.Set("order_direction", "desc")
	params.Set("order_by", "created_at")
	if status != "" {
		params.Set("status", status)
	}

	return p.get(ctx, p.baseURL+"/v2/messages?"+params.Encode())
}

func (p *SMSToProvider) get(ctx context.Context, endpoint string) (json.RawMessage, error) {
	if p.apiKey == "" {
		return nil, fmt.Errorf("SMS.to API key is not configured")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+p.apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to reach SMS gateway: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("SMS.to API error (%d): %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
	return body, nil
}
