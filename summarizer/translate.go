package summarizer

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

// SourceLanguage is the language summaries are produced in before translation
const SourceLanguage = "en"

// Translator renders text in a target language
type Translator interface {
	Translate(ctx context.Context, text, target string) (string, error)
}

type libreRequest struct {
	Q      string `json:"q"`
	Source string `json:"source"`
	Target string `json:"target"`
	Format string `json:"format"`
}

type libreResponse struct {
	TranslatedText string `json:"translatedText"`
	Error          string `json:"error,omitempty"`
}

// LibreTranslator calls a LibreTranslate /translate endpoint
type LibreTranslator struct {
	url        string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewLibreTranslator creates a translator posting to url, the full
// /translate endpoint of a LibreTranslate instance
func NewLibreTranslator(url string, timeout time.Duration, logger *zap.Logger) *LibreTranslator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LibreTranslator{
		url:        url,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

// Translate implements Translator. Failures are logged at warn level.
func (t *LibreTranslator) Translate(ctx context.Context, text, target string) (string, error) {
	out, err := t.translate(ctx, text, target)
	if err != nil {
		t.logger.Warn("translation failed", zap.String("target", target), zap.Error(err))
	}
	return out, err
}

func (t *LibreTranslator) translate(ctx context.Context, text, target string) (string, error) {
	jsonData, err := json.Marshal(libreRequest{Q: text, Source: "auto", Target: target, Format: "text"})
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.url, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := t.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("translation request failed: %w", err)
	}
	defer resp.Body.Close()

	t.logger.Debug("translation complete",
		zap.String("target", target),
		zap.Int("status", resp.StatusCode),
		zap.Duration("elapsed", time.Since(start)),
	)

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	var result libreResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return "", fmt.Errorf("failed to decode response (status %d): %w", resp.StatusCode, err)
	}
	if resp.StatusCode != http.StatusOK {
		msg := result.Error
		if msg == "" {
			msg = http.StatusText(resp.StatusCode)
		}
		return "", fmt.Errorf("translation failed with status %d: %s", resp.StatusCode, msg)
	}
	if strings.TrimSpace(result.TranslatedText) == "" {
		return "", errors.New("translation returned no text")
	}
	return result.TranslatedText, nil
}
