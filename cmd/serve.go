package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"pdfsummarizer/api"
	"pdfsummarizer/config"
	"pdfsummarizer/store"
	"pdfsummarizer/summarizer"
)

const shutdownTimeout = 10 * time.Second

func (a *app) newServeCmd() *cobra.Command {
	var addr, dbPath string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the development summarization backend",
		Long: `Run a local backend implementing the summarization API on top of SQLite.

Summaries are extractive. A requested target language is honored only when
backend.translate_url points at a LibreTranslate instance; otherwise the
summary stays in English.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("addr") {
				addr = a.cfg.Backend.Addr
			}
			if !cmd.Flags().Changed("db") {
				dbPath = a.cfg.Backend.DB
			}

			st, err := store.Open(dbPath)
			if err != nil {
				return err
			}
			defer st.Close()

			if !a.verbose {
				gin.SetMode(gin.ReleaseMode)
			}

			sum := summarizer.New(summarizer.PDFExtractor{}, summarizer.NewLinguaDetector())
			if u := a.cfg.Backend.TranslateURL; u != "" {
				sum.WithTranslator(summarizer.NewLibreTranslator(u, config.TranslateTimeout, a.logger))
				a.logger.Info("translation enabled", zap.String("url", u))
			}

			router := api.NewRouter(api.Deps{
				Store:          st,
				Summarizer:     sum,
				Logger:         a.logger,
				MaxUploadBytes: a.cfg.Backend.MaxUploadBytes,
			})
			return serve(cmd.Context(), a.logger, &http.Server{Addr: addr, Handler: router})
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config, "+config.DefaultBackendAddr+")")
	cmd.Flags().StringVar(&dbPath, "db", "", "SQLite database path (default from config, "+config.DefaultDBPath+")")
	return cmd
}

// serve runs srv until ctx is done or SIGINT/SIGTERM arrives, then shuts down
func serve(ctx context.Context, logger *zap.Logger, srv *http.Server) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("forced shutdown: %w", err)
	}
	logger.Info("server exited")
	return nil
}
