package summarizer

import (
	"regexp"
	"sort"
	"strings"
	"unicode"
)

var (
	camelBoundary = regexp.MustCompile(`([a-z])([A-Z])`)
	missingSpace  = regexp.MustCompile(`([.,!?])([A-Za-z])`)
)

// cleanText normalizes whitespace and repairs common extraction artifacts
func cleanText(text string) string {
	text = strings.Join(strings.Fields(text), " ")
	text = camelBoundary.ReplaceAllString(text, "$1 $2")
	text = missingSpace.ReplaceAllString(text, "$1 $2")
	return strings.TrimSpace(text)
}

// splitSentences splits after ., ! or ? when whitespace and an upper-case
// letter follow
func splitSentences(text string) []string {
	runes := []rune(text)
	var sentences []string
	start := 0

	for i := 0; i < len(runes); i++ {
		if !strings.ContainsRune(".!?", runes[i]) {
			continue
		}
		j := i + 1
		for j < len(runes) && unicode.IsSpace(runes[j]) {
			j++
		}
		if j == i+1 || j >= len(runes) || !unicode.IsUpper(runes[j]) {
			continue
		}
		if s := strings.TrimSpace(string(runes[start : i+1])); s != "" {
			sentences = append(sentences, s)
		}
		start = j
		i = j - 1
	}

	if s := strings.TrimSpace(string(runes[start:])); s != "" {
		sentences = append(sentences, s)
	}
	return sentences
}

// extractSummary keeps roughly ratio of the sentences: always the first and
// the last, the rest spread evenly, in original order
func extractSummary(text string, ratio float64) string {
	text = cleanText(text)
	sentences := splitSentences(text)
	n := len(sentences)
	if n <= 3 {
		return text
	}

	want := int(float64(n) * ratio)
	if want < 1 {
		want = 1
	}

	selected := []int{0}
	if remaining := want - 1; remaining > 0 {
		switch remaining {
		case 1:
			selected = append(selected, n-1)
		case 2:
			selected = append(selected, n/2, n-1)
		default:
			step := n / remaining
			for i := 1; i < remaining; i++ {
				idx := i * step
				if idx > 0 && idx < n-1 {
					selected = append(selected, idx)
				}
			}
			selected = append(selected, n-1)
		}
	}
	if len(selected) > want {
		selected = selected[:want]
	}
	sort.Ints(selected)

	parts := make([]string, 0, len(selected))
	last := -1
	for _, idx := range selected {
		if idx == last {
			continue
		}
		parts = append(parts, sentences[idx])
		last = idx
	}
	return strings.Join(parts, " ")
}

// wordCount counts whitespace-separated words
func wordCount(text string) int {
	return len(strings.Fields(text))
}
