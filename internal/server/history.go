package server

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"slipverify/internal/repository"
)

type verificationView struct {
	ID        string  `json:"id"`
	Recipient string  `json:"recipient"`
	Status    string  `json:"status"`
	Amount    *string `json:"amount,omitempty"`
	Message   string  `json:"message"`
	CreatedAt string  `json:"createdAt"`
}

func toVerificationView(v *repository.Verification) verificationView {
	return verificationView{
		ID:        v.ID.String(),
		Recipient: v.Recipient,
		Status:    string(v.Status),
		Amount:    v.Amount,
		Message:   v.Message,
		CreatedAt: v.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func (s *Server) handleListVerifications(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if limit < 1 {
		limit = 50
	}

	recs, err := s.history.ListVerifications(c.Request.Context(), limit)
	if err != nil {
		s.logger.Error("listing verifications failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list verifications"})
		return
	}

	out := make([]verificationView, 0, len(recs))
	for _, r := range recs {
		out = append(out, toVerificationView(r))
	}
	c.JSON(http.StatusOK, gin.H{"verifications": out, "count": len(out)})
}

func (s *Server) handleExportVerifications(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "1000"))
	if limit < 1 {
		limit = 1000
	}

	data, err := s.exporter.VerificationsXLSX(c.Request.Context(), limit)
	if err != nil {
		s.logger.Error("exporting verifications failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to export verifications"})
		return
	}

	filename := "verifications-" + time.Now().UTC().Format("20060102") + ".xlsx"
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}
