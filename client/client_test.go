package client

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pdfsummarizer/api"
	"pdfsummarizer/store"
	"pdfsummarizer/summarizer"
	"pdfsummarizer/types"
)

const sampleText = "Machine learning models need data. The algorithm trains on the dataset. " +
	"Researchers publish the study results. Patients receive treatment at the hospital."

func newBackend(t *testing.T) *httptest.Server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	st, err := store.Open(store.MemoryPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	sum := summarizer.New(summarizer.PlainTextExtractor{}, summarizer.FixedDetector{Code: "de", Confidence: 0.9})
	srv := httptest.NewServer(api.NewRouter(api.Deps{Store: st, Summarizer: sum}))
	t.Cleanup(srv.Close)
	return srv
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestSummarizeRequestValidate(t *testing.T) {
	pdf := writeFile(t, "doc.pdf", sampleText)
	upper := writeFile(t, "DOC.PDF", sampleText)
	txt := writeFile(t, "doc.txt", sampleText)

	tests := []struct {
		name string
		path string
		want error
	}{
		{"empty path", "", ErrNoFile},
		{"missing file", filepath.Join(t.TempDir(), "missing.pdf"), ErrNoFile},
		{"directory", t.TempDir(), ErrNoFile},
		{"wrong extension", txt, ErrNotPDF},
		{"pdf", pdf, nil},
		{"upper case extension", upper, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := SummarizeRequest{FilePath: tt.path}.Validate()
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
			assert.True(t, IsValidation(err))
		})
	}
}

func TestSummarizeSendsForm(t *testing.T) {
	var form map[string][]string
	var gotFile string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !assert.NoError(t, r.ParseMultipartForm(1<<20)) {
			return
		}
		form = r.MultipartForm.Value
		f, hdr, err := r.FormFile("file")
		if !assert.NoError(t, err) {
			return
		}
		defer f.Close()
		b, _ := io.ReadAll(f)
		gotFile = hdr.Filename + ":" + string(b)
		assert.NotEmpty(t, r.Header.Get("X-Request-ID"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"summary":"ok","reading_time":1,"language":"en","language_confidence":0.5,"topics":[],"keywords":[],"quality_metrics":{},"saved":false,"summary_id":null}`)
	}))
	defer srv.Close()

	path := writeFile(t, "paper.pdf", "hello")
	c := NewClient(srv.URL)

	res, err := c.Summarize(context.Background(), SummarizeRequest{FilePath: path, Length: "long", TargetLanguage: "es"})
	require.NoError(t, err)
	assert.Equal(t, "ok", res.Summary)
	assert.True(t, res.SummaryID.IsZero())

	assert.Equal(t, "paper.pdf:hello", gotFile)
	assert.Equal(t, []string{"long"}, form["length"])
	assert.Equal(t, []string{"es"}, form["target_language"])
	assert.Equal(t, []string{"false"}, form["auto_save"])

	_, err = c.Summarize(context.Background(), SummarizeRequest{FilePath: path, Length: "short"})
	require.NoError(t, err)
	assert.NotContains(t, form, "target_language")
}

func TestValidationSendsNothing(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	_, err := c.Summarize(context.Background(), SummarizeRequest{})
	assert.ErrorIs(t, err, ErrNoFile)
	assert.Zero(t, calls)
}

func TestRoundTrip(t *testing.T) {
	srv := newBackend(t)
	c := NewClient(srv.URL + "/")
	ctx := context.Background()

	res, err := c.Summarize(ctx, SummarizeRequest{FilePath: writeFile(t, "paper.pdf", sampleText), Length: "medium"})
	require.NoError(t, err)
	assert.Equal(t, "de", res.Language)
	require.NotNil(t, res.LanguageConfidence)
	assert.InDelta(t, 0.9, *res.LanguageConfidence, 1e-9)
	assert.False(t, res.Saved)
	assert.True(t, res.SummaryID.IsZero())

	list, err := c.ListSummaries(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
	assert.NotNil(t, list)

	id, err := c.SaveSummary(ctx, types.NewSaveRequest("paper.pdf", res))
	require.NoError(t, err)
	assert.False(t, id.IsZero())

	list, err = c.ListSummaries(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, id, list[0].ID)
	assert.Equal(t, "paper.pdf", list[0].Title)

	opened, err := c.GetSummary(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, res.Summary, opened.Summary, "content is read into Summary")
	assert.Equal(t, id, opened.SummaryID)
	assert.Equal(t, "paper.pdf", opened.Title)

	require.NoError(t, c.DeleteSummary(ctx, id))

	_, err = c.GetSummary(ctx, id)
	assert.Equal(t, http.StatusNotFound, StatusCode(err))
	var httpErr *HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, "Summary not found", httpErr.Message)
}

func TestSaveWithoutID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"message":"Summary saved successfully"}`)
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL).SaveSummary(context.Background(), types.SaveRequest{Summary: "x"})
	assert.ErrorIs(t, err, ErrNoSummaryID)
}

func TestErrorMessages(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		want   string
	}{
		{"json error", http.StatusBadRequest, `{"error":"Only PDF files are allowed"}`, "Only PDF files are allowed"},
		{"plain body", http.StatusBadGateway, "upstream down", "upstream down"},
		{"empty body", http.StatusServiceUnavailable, "", http.StatusText(http.StatusServiceUnavailable)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = io.WriteString(w, tt.body)
			}))
			defer srv.Close()

			_, err := NewClient(srv.URL).ListSummaries(context.Background())
			var httpErr *HTTPError
			require.ErrorAs(t, err, &httpErr)
			assert.Equal(t, tt.status, httpErr.StatusCode)
			assert.Equal(t, tt.want, httpErr.Message)
		})
	}
}

func TestTransportError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	err := NewClient(url).DeleteSummary(context.Background(), "1")
	assert.True(t, errors.Is(err, ErrTransport))
	assert.Zero(t, StatusCode(err))
}
