package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummaryIDUnmarshal(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want SummaryID
	}{
		{"number", `42`, "42"},
		{"string", `"abc"`, "abc"},
		{"null", `null`, ""},
		{"empty string", `""`, ""},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			var id SummaryID
			require.NoError(t, json.Unmarshal([]byte(c.in), &id))
			assert.Equal(t, c.want, id)
			assert.Equal(t, c.want == "", id.IsZero())
		})
	}

	var id SummaryID
	assert.Error(t, json.Unmarshal([]byte(`true`), &id))
}

func TestSummaryResultFromSummarizeResponse(t *testing.T) {
	body := `{
		"summary": "A short text.",
		"reading_time": 1,
		"language": "en",
		"language_confidence": 0.9,
		"topics": [{"topic": "Blockchain", "terms": ["ledger", 7, null]}],
		"keywords": [{"term": "ledger", "score": 0.5}],
		"quality_metrics": {"compression_ratio": 0.25},
		"summary_id": null,
		"saved": false
	}`

	var r SummaryResult
	require.NoError(t, json.Unmarshal([]byte(body), &r))

	assert.Equal(t, "A short text.", r.Summary)
	assert.Equal(t, 1, r.ReadingTime)
	require.NotNil(t, r.LanguageConfidence)
	assert.InDelta(t, 0.9, *r.LanguageConfidence, 1e-9)
	assert.True(t, r.SummaryID.IsZero())
	assert.False(t, r.Saved)
	require.Len(t, r.Topics, 1)
	assert.Equal(t, []string{"ledger", ""}, r.Topics[0].TextTerms())
	assert.InDelta(t, 0.25, r.QualityMetrics["compression_ratio"], 1e-9)
}

func TestSummaryResultFromSavedRecord(t *testing.T) {
	body := `{
		"id": 7,
		"title": "paper.pdf",
		"content": "Stored text.",
		"reading_time": 3,
		"language": "fr",
		"topics": [],
		"keywords": [],
		"quality_metrics": {}
	}`

	var r SummaryResult
	require.NoError(t, json.Unmarshal([]byte(body), &r))

	assert.Equal(t, "Stored text.", r.Summary)
	assert.Equal(t, SummaryID("7"), r.SummaryID)
	assert.Equal(t, "paper.pdf", r.Title)
	assert.Nil(t, r.LanguageConfidence)
}

func TestSummaryFieldWinsOverContent(t *testing.T) {
	var r SummaryResult
	require.NoError(t, json.Unmarshal([]byte(`{"summary":"a","content":"b"}`), &r))
	assert.Equal(t, "a", r.Summary)
}

func TestNewTopicRoundTrip(t *testing.T) {
	topic := NewTopic("Security", "hash", "proof of work")
	assert.Equal(t, []string{"hash", "proof of work"}, topic.TextTerms())

	b, err := json.Marshal(topic)
	require.NoError(t, err)
	assert.JSONEq(t, `{"topic":"Security","terms":["hash","proof of work"]}`, string(b))
}

func TestNewSaveRequest(t *testing.T) {
	r := &SummaryResult{
		Summary:        "text",
		ReadingTime:    2,
		Language:       "en",
		Keywords:       []Keyword{{Term: "k", Score: 1}},
		QualityMetrics: QualityMetrics{"overall_quality": 0.85},
		SummaryID:      "9",
	}

	req := NewSaveRequest("doc.pdf", r)
	b, err := json.Marshal(req)
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(b, &m))
	assert.Equal(t, "doc.pdf", m["title"])
	assert.Equal(t, "text", m["summary"])
	assert.NotContains(t, m, "summary_id")
	assert.Len(t, m, 7)
}

func TestKeywordUnmarshalTolerant(t *testing.T) {
	cases := []struct {
		name      string
		in        string
		wantTerm  string
		wantScore float64
	}{
		{"well formed", `{"term":"ledger","score":0.5}`, "ledger", 0.5},
		{"numeric term", `{"term":42,"score":0.5}`, "", 0.5},
		{"string score", `{"term":"ok","score":"0.5"}`, "ok", 0},
		{"missing term", `{"score":0.1}`, "", 0.1},
		{"not an object", `"ledger"`, "", 0},
		{"null", `null`, "", 0},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			var k Keyword
			require.NoError(t, json.Unmarshal([]byte(c.in), &k))
			assert.Equal(t, c.wantTerm, k.Term)
			assert.Equal(t, c.wantScore, k.Score)
		})
	}
}

func TestResultWithMalformedKeywordDecodes(t *testing.T) {
	var r SummaryResult
	err := json.Unmarshal([]byte(`{"summary":"s","keywords":[{"term":42,"score":1},{"term":"ok","score":"high"}]}`), &r)
	require.NoError(t, err)

	require.Len(t, r.Keywords, 2)
	assert.Empty(t, r.Keywords[0].Term)
	assert.Equal(t, "ok", r.Keywords[1].Term)
}

func TestKeywordExtraFieldsSurviveSave(t *testing.T) {
	var r SummaryResult
	require.NoError(t, json.Unmarshal([]byte(`{"summary":"s","keywords":[{"term":"ok","score":0.5,"frequency":3}]}`), &r))

	b, err := json.Marshal(NewSaveRequest("doc.pdf", &r))
	require.NoError(t, err)

	var m struct {
		Keywords []map[string]any `json:"keywords"`
	}
	require.NoError(t, json.Unmarshal(b, &m))
	require.Len(t, m.Keywords, 1)
	assert.Equal(t, map[string]any{"term": "ok", "score": 0.5, "frequency": float64(3)}, m.Keywords[0])
}

func TestKeywordBuiltLocallyEncodes(t *testing.T) {
	b, err := json.Marshal(Keyword{Term: "hash", Score: 0.25})
	require.NoError(t, err)
	assert.JSONEq(t, `{"term":"hash","score":0.25}`, string(b))
}
