// Package summarizer is the development backend's extractive summarizer.
// It picks representative sentences, counts keywords and matches a small set
// of topic categories; it makes no attempt at abstractive summarization.
package summarizer

import (
	"context"
	"fmt"
	"io"
	"math"

	"pdfsummarizer/config"
	"pdfsummarizer/types"
)

// Options are the form options of a summarize request
type Options struct {
	Length         string
	TargetLanguage string
}

// Summarizer turns documents into summary results
type Summarizer struct {
	extractor  TextExtractor
	detector   LanguageDetector
	translator Translator
}

// New creates a summarizer. A nil detector reports every language as unknown.
// Translation is off until WithTranslator is called.
func New(extractor TextExtractor, detector LanguageDetector) *Summarizer {
	if extractor == nil {
		extractor = PDFExtractor{}
	}
	if detector == nil {
		detector = FixedDetector{}
	}
	return &Summarizer{extractor: extractor, detector: detector}
}

// Ratio maps a length option to the share of sentences kept
func Ratio(length string) float64 {
	switch length {
	case config.LengthShort:
		return 0.25
	case config.LengthMedium:
		return 0.5
	default:
		return 0.75
	}
}

// LengthForSize picks a length option from the upload size
func LengthForSize(size int64) string {
	switch {
	case size < config.SmallFileBytes:
		return config.LengthShort
	case size < config.MediumFileBytes:
		return config.LengthMedium
	default:
		return config.LengthLong
	}
}

// ReadingTime estimates whole minutes to read text, at least one
func ReadingTime(text string) int {
	if minutes := wordCount(text) / config.WordsPerMinute; minutes > 0 {
		return minutes
	}
	return 1
}

// WithTranslator sets the translator used for target languages other than
// SourceLanguage. A nil translator turns translation off.
func (s *Summarizer) WithTranslator(t Translator) *Summarizer {
	s.translator = t
	return s
}

// SummarizeDocument extracts the document's text and summarizes it
func (s *Summarizer) SummarizeDocument(ctx context.Context, r io.ReadSeeker, opts Options) (*types.SummaryResult, error) {
	text, err := s.extractor.ExtractText(r)
	if err != nil {
		return nil, fmt.Errorf("failed to extract text: %w", err)
	}
	return s.SummarizeText(ctx, text, opts), nil
}

// SummarizeText summarizes already extracted text. With a target language the
// summary and topic names are translated and the result's language becomes
// the target; topic terms stay as extracted. A failed translation keeps the
// source text.
func (s *Summarizer) SummarizeText(ctx context.Context, text string, opts Options) *types.SummaryResult {
	summary := extractSummary(text, Ratio(opts.Length))

	language := SourceLanguage
	confidence := -1.0
	if code, c, ok := s.detector.Detect(text); ok {
		language = code
		confidence = round2(c)
	}

	topics := extractTopics(text)
	if target := opts.TargetLanguage; s.translator != nil && target != "" && target != SourceLanguage {
		if translated, err := s.translator.Translate(ctx, summary, target); err == nil {
			summary = translated
			language = target
		}
		for i := range topics {
			if name, err := s.translator.Translate(ctx, topics[i].Topic, target); err == nil {
				topics[i].Topic = name
			}
		}
	}

	compression := 0.0
	if words := wordCount(text); words > 0 {
		compression = round2(float64(wordCount(summary)) / float64(words))
	}

	return &types.SummaryResult{
		Summary:            summary,
		ReadingTime:        ReadingTime(summary),
		Language:           language,
		LanguageConfidence: &confidence,
		Topics:             topics,
		Keywords:           extractKeywords(text, config.MaxKeywords),
		QualityMetrics: types.QualityMetrics{
			"compression_ratio":   compression,
			"information_density": 0.8,
			"coherence_score":     0.9,
			"overall_quality":     0.85,
		},
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
