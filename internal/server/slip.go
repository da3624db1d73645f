package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"

	"slipverify/constants"
	"slipverify/internal/identifier"
	"slipverify/internal/repository"
	"slipverify/internal/verify"
)

// slipResponse is the verdict envelope for slip verification.
type slipResponse struct {
	Status  string        `json:"status"`
	Message string        `json:"message"`
	Debug   *verify.Debug `json:"debug,omitempty"`
}

func (s *Server) handleUploadSlip(c *gin.Context) {
	debug := c.PostForm("debug") == "true" || c.Query("debug") == "true"

	file, err := c.FormFile("slip")
	if err != nil {
		c.JSON(http.StatusBadRequest, slipResponse{Status: "fail", Message: "slip file is required."})
		return
	}

	expected := identifier.Classify(c.PostForm("gWalletId"))
	if !expected.Valid() {
		s.logger.Warn("invalid recipient identifier for slip", "gWalletId", c.PostForm("gWalletId"))
		c.JSON(http.StatusBadRequest, slipResponse{Status: "fail", Message: verify.MsgInvalidIdentifier})
		return
	}

	ext := filepath.Ext(file.Filename)
	if !constants.AllowedExt(ext) {
		c.JSON(http.StatusBadRequest, slipResponse{Status: "fail", Message: "slip must be a jpg, jpeg or png image."})
		return
	}
	if file.Size > s.cfg.Upload.MaxBytes {
		c.JSON(http.StatusBadRequest, slipResponse{Status: "fail", Message: "slip file is too large."})
		return
	}

	// Temp file lives only for the duration of the OCR call.
	dst := filepath.Join(s.cfg.Upload.Dir, fmt.Sprintf("%d%s", time.Now().UnixNano(), ext))
	if err := c.SaveUploadedFile(file, dst); err != nil {
		s.logger.Error("saving slip failed", "error", err)
		c.JSON(http.StatusInternalServerError, slipResponse{Status: "fail", Message: "failed to store slip image."})
		return
	}
	defer func() {
		if err := os.Remove(dst); err != nil {
			s.logger.Error("deleting slip failed", "path", dst, "error", err)
		}
	}()

	ctx := c.Request.Context()
	if s.cfg.OCR.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.cfg.OCR.Timeout)
		defer cancel()
	}
	res, err := s.extractor.Extract(ctx, dst)
	if err != nil {
		s.logger.Error("slip OCR failed", "error", err)
		c.JSON(http.StatusInternalServerError, slipResponse{Status: "fail", Message: "failed to read slip image."})
		return
	}
	if debug {
		s.logger.Debug("slip OCR text", "text", res.Text, "confidence", res.Confidence)
	}

	verdict := verify.Run(res.Text, expected, debug)

	rec := &repository.Verification{
		Recipient: expected.Value,
		Status:    verdict.Status,
		Message:   verdict.Message,
	}
	if verdict.OK() {
		amt := verdict.Amount.StringFixed(2)
		rec.Amount = &amt
	}
	if err := s.history.InsertVerification(c.Request.Context(), rec); err != nil {
		s.logger.Warn("recording verification failed", "error", err)
	}

	status := "fail"
	if verdict.OK() {
		status = "success"
	}
	s.logger.Info("slip verified", "recipient", expected.Value, "status", verdict.Status)
	c.JSON(http.StatusOK, slipResponse{Status: status, Message: verdict.Message, Debug: verdict.Debug})
}
