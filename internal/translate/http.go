package translate

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"time"
)

// HTTP client timeout configuration; a stalled translation must never
// stall a turn, so every phase of the request is bounded.
const requestTimeout = 10 * time.Second

var (
	dialTimeout           = requestTimeout / 5
	tlsTimeout            = requestTimeout / 5
	responseHeaderTimeout = requestTimeout / 2
)

// Client calls a LibreTranslate-style JSON endpoint:
// POST {"q": text, "source": src, "target": dst} → {"translatedText": ...}.
type Client struct {
	endpoint string
	client   *http.Client
}

// NewClient builds a Client for the given endpoint URL.
func NewClient(endpoint string) *Client {
	return &Client{
		endpoint: endpoint,
		client: &http.Client{
			Timeout: requestTimeout,
			Transport: &http.Transport{
				Dial: (&net.Dialer{
					Timeout: dialTimeout,
				}).Dial,
				TLSHandshakeTimeout:   tlsTimeout,
				ResponseHeaderTimeout: responseHeaderTimeout,
			},
		},
	}
}

// Translate sends text to the translation service. It returns an error for
// any transport or protocol failure; converting that into pass-through
// fallback is the Normalizer's job.
func (c *Client) Translate(ctx context.Context, text, sourceLang, targetLang string) (string, error) {
	payload, err := json.Marshal(map[string]string{
		"q":      text,
		"source": sourceLang,
		"target": targetLang,
	})
	if err != nil {
		return "", fmt.Errorf("failed to encode translation request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("failed to create translation request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", "votebot/0.1")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("translation request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("translation service returned status %d", resp.StatusCode)
	}

	var out struct {
		TranslatedText string `json:"translatedText"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("failed to decode translation response: %w", err)
	}
	return out.TranslatedText, nil
}
