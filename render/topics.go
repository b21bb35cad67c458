package render

import "pdfsummarizer/types"

// Placeholders shown when a panel has nothing to display
const (
	NoTopics   = "No topics identified"
	NoKeywords = "No keywords identified"
	NoMetrics  = "No quality metrics available"
)

// TopicView is a topic ready for display
type TopicView struct {
	Title string
	Terms []string
}

// Topics filters and cleans every topic's terms. Topics whose terms were all
// dropped are kept with an empty term list. A nil result means the panel
// should show NoTopics.
func Topics(topics []types.Topic, opts Options) []TopicView {
	if len(topics) == 0 {
		return nil
	}

	views := make([]TopicView, 0, len(topics))
	for _, t := range topics {
		view := TopicView{Title: t.Topic, Terms: []string{}}
		for _, term := range t.TextTerms() {
			if !opts.acceptTerm(term) {
				continue
			}
			view.Terms = append(view.Terms, CleanTerm(term))
		}
		views = append(views, view)
	}
	return views
}

// Keywords filters, caps and cleans keywords in the order received.
// A nil result means the panel should show NoKeywords; an empty non-nil
// result means every keyword was filtered out.
func Keywords(keywords []types.Keyword, opts Options) []string {
	if len(keywords) == 0 {
		return nil
	}

	out := []string{}
	for _, k := range keywords {
		if !opts.acceptTerm(k.Term) {
			continue
		}
		if len(out) == opts.MaxKeywords {
			break
		}
		out = append(out, CleanTerm(k.Term))
	}
	return out
}
