package viewstate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pdfsummarizer/types"
)

func TestNewStateCannotSave(t *testing.T) {
	s := New()

	assert.False(t, s.HasResult())
	assert.ErrorIs(t, s.CheckSave(), ErrNothingToSave)
	assert.Equal(t, SaveControl{Label: LabelSave, Enabled: false}, s.SaveControl())

	_, err := s.SaveRequest()
	assert.ErrorIs(t, err, ErrNothingToSave)
}

func TestGeneratedUnsaved(t *testing.T) {
	s := New().SelectFile("paper.pdf").Generated(types.SummaryResult{Summary: "text", ReadingTime: 2})

	require.True(t, s.HasResult())
	assert.True(t, s.CurrentID().IsZero())
	assert.NoError(t, s.CheckSave())
	assert.Equal(t, SaveControl{Label: LabelSave, Enabled: true}, s.SaveControl())

	req, err := s.SaveRequest()
	require.NoError(t, err)
	assert.Equal(t, "paper.pdf", req.Title)
	assert.Equal(t, "text", req.Summary)
	assert.Equal(t, 2, req.ReadingTime)
}

func TestGeneratedAlreadySaved(t *testing.T) {
	s := New().Generated(types.SummaryResult{Summary: "text", Saved: true, SummaryID: "5"})

	assert.Equal(t, types.SummaryID("5"), s.CurrentID())
	assert.ErrorIs(t, s.CheckSave(), ErrAlreadySaved)
	assert.Equal(t, SaveControl{Label: LabelSaved, Enabled: false}, s.SaveControl())
}

func TestGeneratedReplacesWholesale(t *testing.T) {
	s := New().Opened("3", types.SummaryResult{Summary: "old", Keywords: []types.Keyword{{Term: "k"}}})
	s = s.Generated(types.SummaryResult{Summary: "new"})

	assert.Equal(t, "new", s.Current().Summary)
	assert.Empty(t, s.Current().Keywords)
	assert.True(t, s.CurrentID().IsZero())
	assert.True(t, s.SaveControl().Enabled)
}

func TestOpenedForcesSaved(t *testing.T) {
	s := New().Opened("12", types.SummaryResult{Summary: "stored"})

	assert.Equal(t, types.SummaryID("12"), s.CurrentID())
	assert.Equal(t, SaveControl{Label: LabelSaved, Enabled: false}, s.SaveControl())
	assert.ErrorIs(t, s.CheckSave(), ErrAlreadySaved)
}

func TestSaved(t *testing.T) {
	s := New().SelectFile("a.pdf").Generated(types.SummaryResult{Summary: "text"})
	s = s.Saved("abc")

	assert.Equal(t, types.SummaryID("abc"), s.CurrentID())
	assert.Equal(t, SaveControl{Label: LabelSaved, Enabled: false}, s.SaveControl())

	unchanged := New().Generated(types.SummaryResult{Summary: "text"}).Saved("")
	assert.True(t, unchanged.CurrentID().IsZero())
	assert.True(t, unchanged.SaveControl().Enabled)
}

func TestTransitionsDoNotAlias(t *testing.T) {
	before := New().Generated(types.SummaryResult{Summary: "text"})
	after := before.Saved("1")

	assert.True(t, before.CurrentID().IsZero())
	assert.False(t, before.Current().Saved)
	assert.True(t, after.Current().Saved)
}

func TestForget(t *testing.T) {
	s := New().Opened("7", types.SummaryResult{Summary: "stored", Title: "doc.pdf"})

	other := s.Forget("8")
	assert.Equal(t, types.SummaryID("7"), other.CurrentID())

	s = s.Forget("7")
	assert.True(t, s.CurrentID().IsZero())
	assert.NoError(t, s.CheckSave())

	req, err := s.SaveRequest()
	require.NoError(t, err)
	assert.Equal(t, "doc.pdf", req.Title, "falls back to the record title with no selected file")
}
