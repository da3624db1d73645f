// Package server exposes the payment-code and slip-verification HTTP API.
package server

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"slipverify/internal/common"
	"slipverify/internal/ocr"
	"slipverify/internal/repository"
)

// TextExtractor is the OCR boundary: image path in, flattened text out.
type TextExtractor interface {
	Extract(ctx context.Context, path string) (ocr.Result, error)
}

// Exporter produces XLSX exports of verification history.
type Exporter interface {
	VerificationsXLSX(ctx context.Context, limit int) ([]byte, error)
}

// Server wires the HTTP routes to the verification core and its
// collaborators.
type Server struct {
	cfg       *common.Config
	extractor TextExtractor
	history   repository.HistoryRepository
	exporter  Exporter
	logger    *slog.Logger
	router    *gin.Engine
}

func New(cfg *common.Config, extractor TextExtractor, history repository.HistoryRepository, exporter Exporter, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.MaxMultipartMemory = cfg.Upload.MaxBytes

	s := &Server{
		cfg:       cfg,
		extractor: extractor,
		history:   history,
		exporter:  exporter,
		logger:    logger,
		router:    router,
	}

	router.POST("/generateQR", s.handleGenerateQR)
	router.POST("/upload-slip", s.handleUploadSlip)
	router.GET("/health", s.handleHealth)
	router.GET("/verifications", s.handleListVerifications)
	router.GET("/verifications/export", s.handleExportVerifications)

	return s
}

// Handler returns the underlying HTTP handler, for mounting and tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "OK", "message": "service is ready."})
}
