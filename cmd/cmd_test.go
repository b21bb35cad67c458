package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"pdfsummarizer/api"
	"pdfsummarizer/client"
	"pdfsummarizer/store"
	"pdfsummarizer/summarizer"
	"pdfsummarizer/types"
)

const sampleText = "Machine learning models need data. The algorithm trains on the dataset. " +
	"Researchers publish the study results. Patients receive treatment at the hospital."

func setupCmdTest(t *testing.T) string {
	t.Helper()
	t.Chdir(t.TempDir())
	t.Setenv("NO_COLOR", "1")
	gin.SetMode(gin.TestMode)

	st, err := store.Open(store.MemoryPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	srv := httptest.NewServer(api.NewRouter(api.Deps{
		Store:      st,
		Summarizer: summarizer.New(summarizer.PlainTextExtractor{}, summarizer.FixedDetector{Code: "es", Confidence: 0.55}),
	}))
	t.Cleanup(srv.Close)
	return srv.URL
}

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func writePDF(t *testing.T, name string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(sampleText), 0o644))
	return path
}

func TestRootHelpListsCommands(t *testing.T) {
	setupCmdTest(t)

	out, err := execute(t, "", "--help")
	require.NoError(t, err)
	for _, name := range []string{"tui", "summarize", "list", "show", "delete", "serve", "version"} {
		assert.Contains(t, out, name)
	}
}

func TestUnknownCommand(t *testing.T) {
	setupCmdTest(t)
	_, err := execute(t, "", "nonexistent-command")
	assert.Error(t, err)
}

func TestVersionShort(t *testing.T) {
	setupCmdTest(t)
	SetVersion("1.2.3")
	t.Cleanup(func() { SetVersion("dev") })

	out, err := execute(t, "", "version", "--short")
	require.NoError(t, err)
	assert.Equal(t, "1.2.3\n", out)
}

func TestInvalidURL(t *testing.T) {
	setupCmdTest(t)
	_, err := execute(t, "", "list", "--url", "not a url")
	assert.Error(t, err)
}

func TestSummarizeAndList(t *testing.T) {
	url := setupCmdTest(t)

	out, err := execute(t, "", "--url", url, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "No saved summaries yet")

	out, err = execute(t, "", "--url", url, "summarize", writePDF(t, "paper.pdf"), "--length", "short")
	require.NoError(t, err)
	assert.Contains(t, out, "paper.pdf")
	assert.Contains(t, out, "Language: Spanish (55% confidence)")
	assert.Contains(t, out, "--save")

	out, err = execute(t, "", "--url", url, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "No saved summaries yet", "summarize must not auto-save")

	out, err = execute(t, "", "--url", url, "summarize", writePDF(t, "kept.pdf"), "--save")
	require.NoError(t, err)
	assert.Contains(t, out, "Summary saved successfully!")

	out, err = execute(t, "", "--url", url, "list", "--json")
	require.NoError(t, err)
	var list []types.SummaryListing
	require.NoError(t, json.Unmarshal([]byte(out), &list))
	require.Len(t, list, 1)
	assert.Equal(t, "kept.pdf", list[0].Title)

	out, err = execute(t, "", "--url", url, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "kept.pdf")
	assert.Contains(t, out, "1 saved")
}

func TestSummarizeJSONWithSave(t *testing.T) {
	url := setupCmdTest(t)

	root := NewRootCmd()
	var stdout, stderr bytes.Buffer
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs([]string{"--url", url, "summarize", writePDF(t, "paper.pdf"), "--save", "--json"})
	require.NoError(t, root.Execute())

	var res types.SummaryResult
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &res))
	assert.False(t, res.SummaryID.IsZero())
	assert.True(t, res.Saved)
	assert.Contains(t, stderr.String(), "Summary saved successfully!")
}

func TestSummarizeRejectsNonPDF(t *testing.T) {
	url := setupCmdTest(t)
	path := filepath.Join(t.TempDir(), "notes.txt")
	require.NoError(t, os.WriteFile(path, []byte(sampleText), 0o644))

	_, err := execute(t, "", "--url", url, "summarize", path)
	assert.ErrorIs(t, err, client.ErrNotPDF)

	_, err = execute(t, "", "--url", url, "summarize", writePDF(t, "a.pdf"), "--length", "huge")
	assert.ErrorContains(t, err, "invalid length")
}

func TestShowAndDelete(t *testing.T) {
	url := setupCmdTest(t)
	c := client.NewClient(url)
	id, err := c.SaveSummary(context.Background(), types.SaveRequest{
		Title:          "report.pdf",
		Summary:        "Saved text.",
		ReadingTime:    3,
		Language:       "de",
		QualityMetrics: types.QualityMetrics{"coherence_score": 0.91},
	})
	require.NoError(t, err)

	out, err := execute(t, "", "--url", url, "show", id.String())
	require.NoError(t, err)
	assert.Contains(t, out, "report.pdf")
	assert.Contains(t, out, "Saved text.")
	assert.Contains(t, out, "Language: German\n")
	assert.Contains(t, out, "Coherence: 91%")
	assert.Contains(t, out, "No topics identified")

	out, err = execute(t, "n\n", "--url", url, "delete", id.String())
	require.NoError(t, err)
	assert.Contains(t, out, "[WARN] Delete cancelled")

	list, err := c.ListSummaries(context.Background())
	require.NoError(t, err)
	assert.Len(t, list, 1)

	out, err = execute(t, "y\n", "--url", url, "delete", id.String())
	require.NoError(t, err)
	assert.Contains(t, out, "Summary deleted successfully")

	_, err = execute(t, "", "--url", url, "show", id.String())
	assert.Equal(t, http.StatusNotFound, client.StatusCode(err))
	assert.ErrorContains(t, err, "no saved summary with id "+id.String())

	_, err = execute(t, "", "--url", url, "delete", "--yes", id.String())
	assert.Equal(t, http.StatusNotFound, client.StatusCode(err))
	assert.ErrorContains(t, err, "no saved summary with id "+id.String())
}

func TestServeStopsWithContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	srv := &http.Server{Addr: "127.0.0.1:0", Handler: http.NotFoundHandler()}

	done := make(chan error, 1)
	go func() { done <- serve(ctx, zap.NewNop(), srv) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("serve did not return after cancel")
	}
}
