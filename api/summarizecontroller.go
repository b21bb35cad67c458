package api

import (
	"errors"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"pdfsummarizer/store"
	"pdfsummarizer/summarizer"
	"pdfsummarizer/types"
)

// RegisterSummarizeRoutes registers the upload endpoint.
func RegisterSummarizeRoutes(r *gin.Engine, h *handler) {
	r.POST("/summarize", h.handleSummarize)
}

// SummarizeResponse is the body returned by POST /summarize
type SummarizeResponse struct {
	Summary            string               `json:"summary"`
	ReadingTime        int                  `json:"reading_time"`
	Language           string               `json:"language"`
	LanguageConfidence float64              `json:"language_confidence"`
	Topics             []types.Topic        `json:"topics"`
	Keywords           []types.Keyword      `json:"keywords"`
	QualityMetrics     types.QualityMetrics `json:"quality_metrics"`
	Saved              bool                 `json:"saved"`
	SummaryID          *int64               `json:"summary_id"`
}

// handleSummarize accepts a multipart PDF upload and returns its summary.
// The summary is persisted only when auto_save=true.
func (h *handler) handleSummarize(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxUploadBytes)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "File too large"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file uploaded"})
		return
	}

	filename := filepath.Base(fileHeader.Filename)
	if filename == "" || filename == "." {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file selected"})
		return
	}
	if !strings.HasSuffix(strings.ToLower(filename), ".pdf") {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Only PDF files are allowed"})
		return
	}

	length, ok := c.GetPostForm("length")
	if !ok || length == "" {
		length = summarizer.LengthForSize(fileHeader.Size)
	}
	autoSave := strings.EqualFold(c.DefaultPostForm("auto_save", "false"), "true")

	f, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read upload: " + err.Error()})
		return
	}
	defer f.Close()

	result, err := h.summarizer.SummarizeDocument(c.Request.Context(), f, summarizer.Options{
		Length:         length,
		TargetLanguage: c.PostForm("target_language"),
	})
	if err != nil {
		h.logger.Warn("summarize failed", zap.String("file", filename), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	resp := SummarizeResponse{
		Summary:        result.Summary,
		ReadingTime:    result.ReadingTime,
		Language:       result.Language,
		Topics:         nonNilTopics(result.Topics),
		Keywords:       nonNilKeywords(result.Keywords),
		QualityMetrics: result.QualityMetrics,
		Saved:          autoSave,
	}
	if result.LanguageConfidence != nil {
		resp.LanguageConfidence = *result.LanguageConfidence
	}

	if autoSave {
		id, err := h.store.Create(c.Request.Context(), store.Record{
			Title:          filename,
			Content:        result.Summary,
			ReadingTime:    result.ReadingTime,
			Language:       result.Language,
			Topics:         result.Topics,
			Keywords:       result.Keywords,
			QualityMetrics: result.QualityMetrics,
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		resp.SummaryID = &id
	}

	h.logger.Info("summarized",
		zap.String("file", filename),
		zap.String("length", length),
		zap.Bool("saved", autoSave),
	)
	c.JSON(http.StatusOK, resp)
}

func nonNilTopics(t []types.Topic) []types.Topic {
	if t == nil {
		return []types.Topic{}
	}
	return t
}

func nonNilKeywords(k []types.Keyword) []types.Keyword {
	if k == nil {
		return []types.Keyword{}
	}
	return k
}
