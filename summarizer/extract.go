package summarizer

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/lu4p/unipdf/v3/extractor"
	pdf "github.com/lu4p/unipdf/v3/model"
)

// ErrNoText is returned when a document yields no extractable text
var ErrNoText = errors.New("no text could be extracted from the document")

// TextExtractor pulls plain text out of an uploaded document
type TextExtractor interface {
	ExtractText(r io.ReadSeeker) (string, error)
}

// PDFExtractor extracts text page by page with unipdf
type PDFExtractor struct{}

// ExtractText implements TextExtractor
func (PDFExtractor) ExtractText(r io.ReadSeeker) (string, error) {
	pdfReader, err := pdf.NewPdfReader(r)
	if err != nil {
		return "", fmt.Errorf("failed to open pdf: %w", err)
	}

	numPages, err := pdfReader.GetNumPages()
	if err != nil {
		return "", fmt.Errorf("failed to get page count: %w", err)
	}

	var allText strings.Builder
	for i := 1; i <= numPages; i++ {
		page, err := pdfReader.GetPage(i)
		if err != nil {
			return "", fmt.Errorf("failed to get page %d: %w", i, err)
		}

		ex, err := extractor.New(page)
		if err != nil {
			return "", fmt.Errorf("failed to create extractor for page %d: %w", i, err)
		}

		text, err := ex.ExtractText()
		if err != nil {
			return "", fmt.Errorf("failed to extract text from page %d: %w", i, err)
		}

		allText.WriteString(text)
		allText.WriteString("\n")
	}

	if strings.TrimSpace(allText.String()) == "" {
		return "", ErrNoText
	}
	return allText.String(), nil
}

// PlainTextExtractor treats the upload as UTF-8 text. Useful for fixtures.
type PlainTextExtractor struct{}

// ExtractText implements TextExtractor
func (PlainTextExtractor) ExtractText(r io.ReadSeeker) (string, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(string(b)) == "" {
		return "", ErrNoText
	}
	return string(b), nil
}
