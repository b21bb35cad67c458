package summarizer

import (
	"sort"
	"strings"

	"pdfsummarizer/types"
)

const (
	maxTopics        = 3
	maxTermsPerTopic = 10
)

type topicCategory struct {
	name  string
	terms []string
}

var topicCategories = []topicCategory{
	{"Technology", []string{
		"blockchain", "technology", "decentralized", "systems", "data", "decision",
		"topology", "infrastructure", "security", "network", "algorithm", "software",
		"hardware", "platform", "application", "system", "digital", "computer",
		"internet", "web", "cloud", "api", "interface", "protocol", "encryption",
	}},
	{"Business", []string{
		"business", "company", "organization", "management", "strategy", "marketing",
		"sales", "customer", "client", "product", "service", "market", "industry",
		"revenue", "profit", "growth", "startup", "enterprise", "corporation",
	}},
	{"Education", []string{
		"education", "learning", "teaching", "school", "university", "college",
		"student", "teacher", "professor", "course", "curriculum", "degree",
		"academic", "research", "study", "knowledge", "skill", "training",
	}},
	{"Science", []string{
		"science", "scientific", "research", "experiment", "theory", "hypothesis",
		"analysis", "data", "evidence", "observation", "laboratory", "discovery",
		"innovation", "development", "advancement", "breakthrough",
	}},
}

// extractTopics scores each category by how often its terms occur and
// returns up to three matching categories with the terms that appeared
func extractTopics(text string) []types.Topic {
	lower := strings.ToLower(cleanText(text))

	type scored struct {
		category topicCategory
		score    int
	}
	scores := make([]scored, 0, len(topicCategories))
	for _, c := range topicCategories {
		score := 0
		for _, term := range c.terms {
			score += strings.Count(lower, term)
		}
		scores = append(scores, scored{c, score})
	}
	sort.SliceStable(scores, func(i, j int) bool {
		return scores[i].score > scores[j].score
	})

	topics := []types.Topic{}
	for _, s := range scores[:maxTopics] {
		if s.score == 0 {
			continue
		}
		var terms []string
		for _, term := range s.category.terms {
			if len(terms) == maxTermsPerTopic {
				break
			}
			if strings.Contains(lower, term) {
				terms = append(terms, term)
			}
		}
		if len(terms) > 0 {
			topics = append(topics, types.NewTopic(s.category.name, terms...))
		}
	}
	return topics
}
