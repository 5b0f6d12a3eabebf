package translation

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/text/language"
)

// GoogleClient handles translation requests via the Google Translate web endpoint.
type GoogleClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewGoogleClient creates a new Google Translate client.
func NewGoogleClient(baseURL string, timeout time.Duration) *GoogleClient {
	return &GoogleClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Translate sends one block of text and returns the translated block.
// Failures are returned as-is; there is no retry.
func (gc *GoogleClient) Translate(ctx context.Context, src, dst language.Tag, text string) (string, error) {
	query := url.Values{}
	query.Set("client", "gtx")
	query.Set("dt", "t")
	query.Set("sl", src.String())
	query.Set("tl", dst.String())
	endpoint := fmt.Sprintf("%s/translate_a/single?%s", gc.baseURL, query.Encode())

	form := url.Values{}
	form.Set("q", text)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded;charset=utf-8")

	resp, err := gc.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("API call: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("API error (status %d): %s", resp.StatusCode, string(respBody))
	}

	translated, err := decodeSegments(respBody)
	if err != nil {
		return "", err
	}

	log.Debug().
		Str("src", src.String()).
		Str("dst", dst.String()).
		Int("bytes", len(translated)).
		Msg("Translation complete")

	return translated, nil
}

// decodeSegments concatenates the translated segments of a gtx reply:
// [[["translated","source",...],...],...].
func decodeSegments(body []byte) (string, error) {
	var raw []json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return "", fmt.Errorf("unmarshal response: %w", err)
	}
	if len(raw) == 0 {
		return "", fmt.Errorf("empty response: no segments")
	}

	var segments [][]any
	if err := json.Unmarshal(raw[0], &segments); err != nil {
		return "", fmt.Errorf("unmarshal segments: %w", err)
	}

	var result strings.Builder
	for _, seg := range segments {
		if len(seg) == 0 {
			continue
		}
		if s, ok := seg[0].(string); ok {
			result.WriteString(s)
		}
	}
	return result.String(), nil
}
