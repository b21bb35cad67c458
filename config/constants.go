package config

import "time"

// Rendering Constants
const (
	// MaxTermLength is the exclusive upper bound on topic term and keyword
	// length
	MaxTermLength = 30

	// MaxKeywords caps how many keywords are shown, in the order received
	MaxKeywords = 20

	// SentinelConfidence is shown when the backend reports a negative
	// language confidence (unknown)
	SentinelConfidence = 80
)

// Summary Length Options
const (
	LengthShort  = "short"
	LengthMedium = "medium"
	LengthLong   = "long"
)

// Lengths lists the length options in display order
var Lengths = []string{LengthShort, LengthMedium, LengthLong}

// Client Defaults
const (
	// DefaultServerURL is where the summarization backend listens by default
	DefaultServerURL = "http://localhost:5003"

	// DefaultTimeout bounds a single request, upload included
	DefaultTimeout = 2 * time.Minute

	// DefaultLength is used when no length is configured
	DefaultLength = LengthMedium
)

// Backend Defaults
const (
	// DefaultBackendAddr is the listen address of the development backend
	DefaultBackendAddr = ":5003"

	// DefaultDBPath is the SQLite file used by the development backend
	DefaultDBPath = "summaries.db"

	// DefaultMaxUploadBytes limits uploaded files to 16 MiB
	DefaultMaxUploadBytes = 16 << 20

	// TranslateTimeout bounds one translation call
	TranslateTimeout = 10 * time.Second
)

// Automatic Length Thresholds (used by the backend when length is omitted)
const (
	// SmallFileBytes and below selects a short summary
	SmallFileBytes = 50000

	// MediumFileBytes and below selects a medium summary
	MediumFileBytes = 200000
)

// Reading Time Constants
const (
	// WordsPerMinute is the assumed reading speed
	WordsPerMinute = 200
)

// IsValidLength reports whether s is one of the length options
func IsValidLength(s string) bool {
	for _, l := range Lengths {
		if s == l {
			return true
		}
	}
	return false
}
