// Package render turns summary data into display-ready values. Nothing here
// touches the network or the terminal.
package render

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"pdfsummarizer/config"
)

var (
	camelBoundary = regexp.MustCompile(`([a-z])([A-Z])`)
	whitespaceRun = regexp.MustCompile(`\s{2,}`)
)

// Options tunes the filtering applied to upstream terms
type Options struct {
	// MaxTermLength drops terms of this many characters or more
	MaxTermLength int
	// MaxKeywords caps the number of keywords shown
	MaxKeywords int
}

// DefaultOptions returns the standard thresholds
func DefaultOptions() Options {
	return Options{
		MaxTermLength: config.MaxTermLength,
		MaxKeywords:   config.MaxKeywords,
	}
}

// CleanTerm splits concatenated camel-case tokens ("machineLearning" becomes
// "machine Learning"), collapses whitespace runs and trims the ends.
func CleanTerm(term string) string {
	term = camelBoundary.ReplaceAllString(term, "$1 $2")
	term = whitespaceRun.ReplaceAllString(term, " ")
	return strings.TrimSpace(term)
}

// acceptTerm reports whether a raw term is worth showing
func (o Options) acceptTerm(term string) bool {
	return term != "" && utf8.RuneCountInString(term) < o.MaxTermLength
}
