package client

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"pdfsummarizer/types"
)

// SummarizeRequest holds the upload form
type SummarizeRequest struct {
	FilePath       string
	Length         string
	TargetLanguage string
}

// Validate checks the form before anything is sent
func (r SummarizeRequest) Validate() error {
	if strings.TrimSpace(r.FilePath) == "" {
		return ErrNoFile
	}
	info, err := os.Stat(r.FilePath)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrNoFile, err)
	}
	if info.IsDir() {
		return fmt.Errorf("%w: %s is a directory", ErrNoFile, r.FilePath)
	}
	if !strings.EqualFold(filepath.Ext(r.FilePath), ".pdf") {
		return ErrNotPDF
	}
	return nil
}

// Summarize uploads a PDF to POST /summarize. The result is never
// auto-saved; saving is a separate, explicit step.
func (c *Client) Summarize(ctx context.Context, in SummarizeRequest) (*types.SummaryResult, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	body, contentType, err := buildSummarizeForm(in)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/summarize", body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", contentType)

	var result types.SummaryResult
	if err := c.do(req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func buildSummarizeForm(in SummarizeRequest) (*bytes.Buffer, string, error) {
	f, err := os.Open(in.FilePath)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %w", ErrNoFile, err)
	}
	defer f.Close()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	part, err := w.CreateFormFile("file", filepath.Base(in.FilePath))
	if err != nil {
		return nil, "", fmt.Errorf("failed to create form file: %w", err)
	}
	if _, err := io.Copy(part, f); err != nil {
		return nil, "", fmt.Errorf("failed to read %s: %w", in.FilePath, err)
	}

	fields := [][2]string{{"length", in.Length}}
	if in.TargetLanguage != "" {
		fields = append(fields, [2]string{"target_language", in.TargetLanguage})
	}
	fields = append(fields, [2]string{"auto_save", "false"})

	for _, kv := range fields {
		if kv[1] == "" {
			continue
		}
		if err := w.WriteField(kv[0], kv[1]); err != nil {
			return nil, "", fmt.Errorf("failed to write field %s: %w", kv[0], err)
		}
	}

	if err := w.Close(); err != nil {
		return nil, "", fmt.Errorf("failed to finish form: %w", err)
	}
	return &buf, w.FormDataContentType(), nil
}
