package render

import (
	"strings"

	"pdfsummarizer/types"
)

// Text renders a result as plain text for non-interactive output
func Text(r *types.SummaryResult, opts Options) string {
	var b strings.Builder

	b.WriteString(r.Summary)
	b.WriteString("\n\n")
	b.WriteString(ReadingTimeLine(r.ReadingTime))
	b.WriteString("\n")
	b.WriteString(LanguageLine(r))
	b.WriteString("\n\n")

	b.WriteString("Topics\n")
	if topics := Topics(r.Topics, opts); topics == nil {
		b.WriteString("  " + NoTopics + "\n")
	} else {
		for _, t := range topics {
			b.WriteString("  " + t.Title)
			if len(t.Terms) > 0 {
				b.WriteString(": " + strings.Join(t.Terms, ", "))
			}
			b.WriteString("\n")
		}
	}

	b.WriteString("\nKeywords\n")
	if keywords := Keywords(r.Keywords, opts); keywords == nil {
		b.WriteString("  " + NoKeywords + "\n")
	} else if len(keywords) > 0 {
		b.WriteString("  " + strings.Join(keywords, ", ") + "\n")
	}

	b.WriteString("\nQuality Metrics\n")
	if rows := Metrics(r.QualityMetrics); rows == nil {
		b.WriteString("  " + NoMetrics + "\n")
	} else {
		for _, row := range rows {
			b.WriteString("  " + row.String() + "\n")
		}
	}

	return b.String()
}
