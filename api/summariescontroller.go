package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"pdfsummarizer/store"
	"pdfsummarizer/types"
)

// RegisterSummaryRoutes registers saved-summary endpoints.
func RegisterSummaryRoutes(r *gin.Engine, h *handler) {
	g := r.Group("/summaries")
	g.GET("", h.handleListSummaries)
	g.POST("/save", h.handleSaveSummary)
	g.GET("/:id", h.handleGetSummary)
	g.DELETE("/:id", h.handleDeleteSummary)
}

// ListingResponse is one entry of GET /summaries
type ListingResponse struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	ReadingTime int    `json:"reading_time"`
}

// RecordResponse is the body of GET /summaries/{id}. The text is named
// "content" here, unlike the summarize response.
type RecordResponse struct {
	ID             int64                `json:"id"`
	Title          string               `json:"title"`
	Content        string               `json:"content"`
	ReadingTime    int                  `json:"reading_time"`
	Language       string               `json:"language"`
	Topics         []types.Topic        `json:"topics"`
	Keywords       []types.Keyword      `json:"keywords"`
	QualityMetrics types.QualityMetrics `json:"quality_metrics"`
}

// SaveResponse is the body of POST /summaries/save
type SaveResponse struct {
	Message   string `json:"message"`
	SummaryID int64  `json:"summary_id"`
}

func (h *handler) handleListSummaries(c *gin.Context) {
	listings, err := h.store.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	resp := make([]ListingResponse, 0, len(listings))
	for _, l := range listings {
		resp = append(resp, ListingResponse{ID: l.ID, Title: l.Title, ReadingTime: l.ReadingTime})
	}
	c.JSON(http.StatusOK, resp)
}

func (h *handler) handleSaveSummary(c *gin.Context) {
	var req types.SaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No data provided"})
		return
	}
	if req.Summary == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "summary is required"})
		return
	}

	id, err := h.store.Create(c.Request.Context(), store.Record{
		Title:          req.Title,
		Content:        req.Summary,
		ReadingTime:    req.ReadingTime,
		Language:       req.Language,
		Topics:         req.Topics,
		Keywords:       req.Keywords,
		QualityMetrics: req.QualityMetrics,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, SaveResponse{Message: "Summary saved successfully", SummaryID: id})
}

func (h *handler) handleGetSummary(c *gin.Context) {
	id, ok := summaryID(c)
	if !ok {
		return
	}

	r, err := h.store.Get(c.Request.Context(), id)
	if err != nil {
		respondStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, RecordResponse{
		ID:             r.ID,
		Title:          r.Title,
		Content:        r.Content,
		ReadingTime:    r.ReadingTime,
		Language:       r.Language,
		Topics:         r.Topics,
		Keywords:       r.Keywords,
		QualityMetrics: r.QualityMetrics,
	})
}

func (h *handler) handleDeleteSummary(c *gin.Context) {
	id, ok := summaryID(c)
	if !ok {
		return
	}

	if err := h.store.Delete(c.Request.Context(), id); err != nil {
		respondStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Summary deleted successfully"})
}

// summaryID parses the :id path parameter, answering 404 for non-integers
func summaryID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Summary not found"})
		return 0, false
	}
	return id, true
}

func respondStoreError(c *gin.Context, err error) {
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Summary not found"})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}
