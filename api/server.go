// Package api is the development backend: a gin router speaking the same
// REST contract as the production summarization service.
package api

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"pdfsummarizer/config"
	"pdfsummarizer/store"
	"pdfsummarizer/summarizer"
)

// Deps are the collaborators the handlers need
type Deps struct {
	Store          *store.Store
	Summarizer     *summarizer.Summarizer
	Logger         *zap.Logger
	MaxUploadBytes int64
}

// NewRouter constructs a Gin engine with registered routes.
func NewRouter(deps Deps) *gin.Engine {
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}
	if deps.MaxUploadBytes <= 0 {
		deps.MaxUploadBytes = config.DefaultMaxUploadBytes
	}

	r := gin.New()
	r.Use(gin.Recovery(), requestLogger(deps.Logger))
	r.MaxMultipartMemory = deps.MaxUploadBytes

	h := &handler{
		store:          deps.Store,
		summarizer:     deps.Summarizer,
		logger:         deps.Logger,
		maxUploadBytes: deps.MaxUploadBytes,
	}

	RegisterHealthRoutes(r)
	RegisterSummarizeRoutes(r, h)
	RegisterSummaryRoutes(r, h)
	return r
}

type handler struct {
	store          *store.Store
	summarizer     *summarizer.Summarizer
	logger         *zap.Logger
	maxUploadBytes int64
}

// requestLogger logs each request using zap
func requestLogger(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		log.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
			zap.String("request_id", c.GetHeader("X-Request-ID")),
		)
	}
}
