package types

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// SummaryID identifies a persisted summary. The backend issues integer ids,
// but both JSON numbers and strings are accepted.
type SummaryID string

// UnmarshalJSON accepts a number, a string or null
func (id *SummaryID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = SummaryID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("invalid summary id %s: %w", data, err)
	}
	*id = SummaryID(n.String())
	return nil
}

// IsZero reports whether the id is unset
func (id SummaryID) IsZero() bool {
	return id == ""
}

// String implements fmt.Stringer
func (id SummaryID) String() string {
	return string(id)
}

// Topic is a named group of related terms. Terms are kept raw because the
// upstream extractor occasionally emits non-string values.
type Topic struct {
	Topic string            `json:"topic"`
	Terms []json.RawMessage `json:"terms"`
}

// NewTopic builds a topic from string terms
func NewTopic(name string, terms ...string) Topic {
	t := Topic{Topic: name, Terms: make([]json.RawMessage, 0, len(terms))}
	for _, term := range terms {
		b, _ := json.Marshal(term)
		t.Terms = append(t.Terms, b)
	}
	return t
}

// TextTerms returns the terms that decode as JSON strings, in order
func (t Topic) TextTerms() []string {
	out := make([]string, 0, len(t.Terms))
	for _, raw := range t.Terms {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			continue
		}
		out = append(out, s)
	}
	return out
}

// Keyword is a single extracted term with its relevance score. A decoded
// keyword keeps its original object and re-encodes it verbatim, so fields
// this client does not know about survive a save. A non-string term decodes
// to an empty Term and a non-numeric score to zero.
type Keyword struct {
	Term  string
	Score float64

	raw json.RawMessage
}

// UnmarshalJSON never fails on a well-formed value; malformed fields are
// left zero so the entry can be skipped at render time.
func (k *Keyword) UnmarshalJSON(data []byte) error {
	*k = Keyword{raw: append(json.RawMessage(nil), data...)}

	var fields struct {
		Term  json.RawMessage `json:"term"`
		Score json.RawMessage `json:"score"`
	}
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil
	}
	if err := json.Unmarshal(fields.Term, &k.Term); err != nil {
		k.Term = ""
	}
	if err := json.Unmarshal(fields.Score, &k.Score); err != nil {
		k.Score = 0
	}
	return nil
}

// MarshalJSON implements json.Marshaler
func (k Keyword) MarshalJSON() ([]byte, error) {
	if len(k.raw) > 0 {
		return k.raw, nil
	}
	return json.Marshal(struct {
		Term  string  `json:"term"`
		Score float64 `json:"score"`
	}{k.Term, k.Score})
}

// QualityMetrics maps metric names to values in [0,1]
type QualityMetrics map[string]float64

// SummaryResult is what the controller displays: either a freshly generated
// summary or a saved record that was opened.
type SummaryResult struct {
	Summary            string         `json:"summary"`
	ReadingTime        int            `json:"reading_time"`
	Language           string         `json:"language"`
	LanguageConfidence *float64       `json:"language_confidence,omitempty"`
	Topics             []Topic        `json:"topics"`
	Keywords           []Keyword      `json:"keywords"`
	QualityMetrics     QualityMetrics `json:"quality_metrics"`
	SummaryID          SummaryID      `json:"summary_id,omitempty"`
	Saved              bool           `json:"saved"`
	Title              string         `json:"title,omitempty"`
}

// UnmarshalJSON tolerates both response shapes: /summarize returns the text
// as "summary" and the id as "summary_id", saved records use "content" and "id".
func (r *SummaryResult) UnmarshalJSON(data []byte) error {
	type plain SummaryResult
	var aux struct {
		plain
		Content *string   `json:"content"`
		ID      SummaryID `json:"id"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	*r = SummaryResult(aux.plain)
	if r.Summary == "" && aux.Content != nil {
		r.Summary = *aux.Content
	}
	if r.SummaryID.IsZero() && !aux.ID.IsZero() {
		r.SummaryID = aux.ID
	}
	return nil
}

// SummaryListing is the minimal projection returned by GET /summaries
type SummaryListing struct {
	ID          SummaryID `json:"id"`
	Title       string    `json:"title"`
	ReadingTime int       `json:"reading_time"`
}

// SaveRequest is the body of POST /summaries/save
type SaveRequest struct {
	Title          string         `json:"title"`
	Summary        string         `json:"summary"`
	ReadingTime    int            `json:"reading_time"`
	Language       string         `json:"language"`
	Topics         []Topic        `json:"topics"`
	Keywords       []Keyword      `json:"keywords"`
	QualityMetrics QualityMetrics `json:"quality_metrics"`
}

// NewSaveRequest builds the save payload for a result shown under title
func NewSaveRequest(title string, r *SummaryResult) SaveRequest {
	return SaveRequest{
		Title:          title,
		Summary:        r.Summary,
		ReadingTime:    r.ReadingTime,
		Language:       r.Language,
		Topics:         r.Topics,
		Keywords:       r.Keywords,
		QualityMetrics: r.QualityMetrics,
	}
}

// SaveResponse is returned by POST /summaries/save
type SaveResponse struct {
	Message   string    `json:"message,omitempty"`
	SummaryID SummaryID `json:"summary_id"`
}

// MessageResponse is a plain acknowledgement body
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the body the backend returns with non-2xx statuses
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}
