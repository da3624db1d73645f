package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"slipverify/internal/identifier"
	"slipverify/internal/payload"
	"slipverify/internal/repository"
	"slipverify/internal/verify"
)

type generateRequest struct {
	GWalletID string          `json:"gWalletId"`
	Amount    decimal.Decimal `json:"amount"`
}

// generateResponse is the envelope the web client expects for code
// generation.
type generateResponse struct {
	RespCode    int    `json:"RespCode"`
	RespMessage string `json:"RespMessage"`
	Result      string `json:"Result,omitempty"`
}

func (s *Server) handleGenerateQR(c *gin.Context) {
	var req generateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.logger.Warn("malformed generateQR request", "error", err)
		c.JSON(http.StatusBadRequest, generateResponse{
			RespCode:    http.StatusBadRequest,
			RespMessage: "invalid request body.",
		})
		return
	}

	id := identifier.Classify(req.GWalletID)
	if !id.Valid() {
		s.logger.Warn("invalid recipient identifier", "gWalletId", req.GWalletID)
		c.JSON(http.StatusBadRequest, generateResponse{
			RespCode:    http.StatusBadRequest,
			RespMessage: verify.MsgInvalidIdentifier,
		})
		return
	}

	// Rejected before any other processing; zero means an open amount.
	if req.Amount.IsNegative() {
		s.logger.Warn("negative amount", "amount", req.Amount)
		c.JSON(http.StatusBadRequest, generateResponse{
			RespCode:    http.StatusBadRequest,
			RespMessage: verify.MsgNegativeAmount,
		})
		return
	}

	text, err := payload.Build(id, req.Amount)
	if err != nil {
		s.logger.Error("payload build failed", "error", err)
		c.JSON(http.StatusInternalServerError, generateResponse{
			RespCode:    http.StatusInternalServerError,
			RespMessage: "failed to build payment payload.",
		})
		return
	}

	uri, err := payload.RenderDataURI(text, payload.Style{
		Dark:  s.cfg.QR.Dark,
		Light: s.cfg.QR.Light,
		Size:  s.cfg.QR.Size,
	})
	if err != nil {
		s.logger.Error("QR render failed", "error", err)
		c.JSON(http.StatusInternalServerError, generateResponse{
			RespCode:    http.StatusInternalServerError,
			RespMessage: "failed to render payment code.",
		})
		return
	}

	// History is best effort; a storage hiccup never fails the request.
	if err := s.history.InsertCode(c.Request.Context(), &repository.GeneratedCode{
		Recipient: id.Value,
		Kind:      id.Kind.String(),
		Amount:    req.Amount.String(),
	}); err != nil {
		s.logger.Warn("recording generated code failed", "error", err)
	}

	s.logger.Info("payment code generated", "kind", id.Kind.String(), "amount", req.Amount)
	c.JSON(http.StatusOK, generateResponse{
		RespCode:    http.StatusOK,
		RespMessage: "success",
		Result:      uri,
	})
}
