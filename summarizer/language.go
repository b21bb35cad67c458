package summarizer

import (
	"strings"
	"sync"

	"github.com/pemistahl/lingua-go"
)

// LanguageDetector guesses the language of a text as a two-letter code
type LanguageDetector interface {
	Detect(text string) (code string, confidence float64, ok bool)
}

// supportedLanguages matches the languages the client can name
var supportedLanguages = []lingua.Language{
	lingua.English,
	lingua.Spanish,
	lingua.French,
	lingua.German,
	lingua.Italian,
	lingua.Portuguese,
	lingua.Dutch,
	lingua.Russian,
	lingua.Chinese,
	lingua.Japanese,
	lingua.Korean,
	lingua.Arabic,
	lingua.Hindi,
}

// LinguaDetector detects languages with lingua. Models are loaded on first use.
type LinguaDetector struct {
	once     sync.Once
	detector lingua.LanguageDetector
}

// NewLinguaDetector returns a detector restricted to the supported languages
func NewLinguaDetector() *LinguaDetector {
	return &LinguaDetector{}
}

// Detect implements LanguageDetector
func (d *LinguaDetector) Detect(text string) (string, float64, bool) {
	d.once.Do(func() {
		d.detector = lingua.NewLanguageDetectorBuilder().
			FromLanguages(supportedLanguages...).
			Build()
	})

	language, exists := d.detector.DetectLanguageOf(text)
	if !exists {
		return "", 0, false
	}
	confidence := d.detector.ComputeLanguageConfidence(text, language)
	return strings.ToLower(language.IsoCode639_1().String()), confidence, true
}

// FixedDetector always reports the same language
type FixedDetector struct {
	Code       string
	Confidence float64
}

// Detect implements LanguageDetector
func (f FixedDetector) Detect(string) (string, float64, bool) {
	return f.Code, f.Confidence, f.Code != ""
}
