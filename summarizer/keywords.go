package summarizer

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"pdfsummarizer/types"
)

var stopWords = map[string]bool{
	"the": true, "and": true, "a": true, "an": true, "in": true, "on": true, "at": true,
	"to": true, "for": true, "with": true, "by": true, "of": true, "that": true, "this": true,
	"is": true, "are": true, "was": true, "were": true, "be": true, "been": true, "being": true,
	"have": true, "has": true, "had": true, "do": true, "does": true, "did": true, "will": true,
	"would": true, "shall": true, "should": true, "can": true, "could": true, "may": true,
	"might": true, "must": true, "from": true, "as": true, "if": true, "then": true, "than": true,
}

// extractKeywords returns the n most frequent non-stop words longer than
// three characters. Ties keep first-seen order.
func extractKeywords(text string, n int) []types.Keyword {
	counts := map[string]int{}
	var order []string
	total := 0

	for _, raw := range strings.Fields(strings.ToLower(cleanText(text))) {
		word := strings.TrimFunc(raw, func(r rune) bool {
			return !unicode.IsLetter(r) && !unicode.IsDigit(r)
		})
		if utf8.RuneCountInString(word) <= 3 || stopWords[word] {
			continue
		}
		if counts[word] == 0 {
			order = append(order, word)
		}
		counts[word]++
		total++
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})
	if len(order) > n {
		order = order[:n]
	}

	keywords := make([]types.Keyword, 0, len(order))
	for _, word := range order {
		keywords = append(keywords, types.Keyword{
			Term:  word,
			Score: float64(counts[word]) / float64(total),
		})
	}
	return keywords
}
