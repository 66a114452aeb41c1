package mailer

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

const defaultHTTPTimeout = 15 * time.Second

type httpSender struct {
	endpoint string
	client   *http.Client
}

// NewHTTPSender posts messages as JSON {to, subject, html} to an external
// mail endpoint. Any 2xx status counts as success.
func NewHTTPSender(endpoint string, client *http.Client) (Sender, error) {
	if endpoint == "" {
		return nil, errors.New("mail endpoint URL is required")
	}
	if client == nil {
		client = &http.Client{Timeout: defaultHTTPTimeout}
	}
	return &httpSender{endpoint: endpoint, client: client}, nil
}

func (s *httpSender) Send(ctx context.Context, msg Message) error {
	if err := msg.validate(); err != nil {
		return err
	}

	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to encode mail message: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build mail request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("mail endpoint request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("mail endpoint returned %d: %s", resp.StatusCode, bytes.TrimSpace(detail))
	}
	return nil
}
