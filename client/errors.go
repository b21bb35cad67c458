package client

import (
	"errors"
	"fmt"
)

var (
	// ErrNoFile is returned before any request when no usable file was chosen
	ErrNoFile = errors.New("please select a PDF file")
	// ErrNotPDF is returned before any request for files without a .pdf name
	ErrNotPDF = errors.New("only PDF files are allowed")
	// ErrTransport wraps network-level failures
	ErrTransport = errors.New("request failed")
	// ErrNoSummaryID is returned when a save succeeds without an identifier
	ErrNoSummaryID = errors.New("save response did not include a summary id")
)

// HTTPError is returned for non-2xx responses
type HTTPError struct {
	StatusCode int
	Message    string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("server returned %d: %s", e.StatusCode, e.Message)
}

// IsValidation reports whether err was raised before any request was sent
func IsValidation(err error) bool {
	return errors.Is(err, ErrNoFile) || errors.Is(err, ErrNotPDF)
}

// StatusCode returns the HTTP status carried by err, or 0
func StatusCode(err error) int {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.StatusCode
	}
	return 0
}
