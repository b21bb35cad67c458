package render

import (
	"fmt"

	"pdfsummarizer/config"
	"pdfsummarizer/types"
)

var languageNames = map[string]string{
	"en": "English",
	"es": "Spanish",
	"fr": "French",
	"de": "German",
	"it": "Italian",
	"pt": "Portuguese",
	"nl": "Dutch",
	"ru": "Russian",
	"zh": "Chinese",
	"ja": "Japanese",
	"ko": "Korean",
	"ar": "Arabic",
	"hi": "Hindi",
}

// LanguageName maps a two-letter code to its display name. Unknown codes are
// returned unchanged.
func LanguageName(code string) string {
	if name, ok := languageNames[code]; ok {
		return name
	}
	return code
}

// Confidence returns the language confidence as a percentage. A negative
// value is the backend's "unknown" sentinel and maps to a fixed default.
func Confidence(c float64) int {
	if c < 0 {
		return config.SentinelConfidence
	}
	return Percent(c)
}

// LanguageLine renders the language header. Saved records carry no
// confidence, so only the name is shown for them; an explicit null
// confidence is treated the same way.
func LanguageLine(r *types.SummaryResult) string {
	name := LanguageName(r.Language)
	if r.LanguageConfidence == nil {
		return fmt.Sprintf("Language: %s", name)
	}
	return fmt.Sprintf("Language: %s (%d%% confidence)", name, Confidence(*r.LanguageConfidence))
}

// ReadingTimeLine renders the reading time header
func ReadingTimeLine(minutes int) string {
	return fmt.Sprintf("Reading time: %d min", minutes)
}
