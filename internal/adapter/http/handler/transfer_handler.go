package handler

import (
	"context"

	"novapay/internal/adapter/http/dto"
	"novapay/internal/core/domain"
	"novapay/internal/core/ports"
	"novapay/pkg/apperror"
	"novapay/pkg/response"

	"github.com/gin-gonic/gin"
)

// TransferHandler handles simulated transfer endpoints.
type TransferHandler struct {
	transferSvc ports.TransferService
}

// NewTransferHandler creates a new TransferHandler.
func NewTransferHandler(transferSvc ports.TransferService) *TransferHandler {
	return &TransferHandler{transferSvc: transferSvc}
}

// Submit handles POST /api/v1/transfers. Validation is synchronous; on
// acceptance the sequence runs in the background past the request's
// lifetime, so the client can poll /transfers/current.
func (h *TransferHandler) Submit(c *gin.Context) {
	var req dto.TransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	if err := h.transferSvc.Submit(c.Request.Context(), ports.TransferRequest{
		Recipient: req.Recipient,
		Amount:    req.Amount,
		Category:  req.Category,
		Note:      req.Note,
	}); err != nil {
		response.Error(c, err)
		return
	}

	go h.transferSvc.Run(context.WithoutCancel(c.Request.Context()))

	response.Accepted(c, h.transferSvc.Status())
}

// Current handles GET /api/v1/transfers/current.
func (h *TransferHandler) Current(c *gin.Context) {
	response.OK(c, h.transferSvc.Status())
}

// Draft handles POST /api/v1/transfers/draft. It pre-fills the transfer
// form without starting the sequence; ignored while a transfer is in
// flight.
func (h *TransferHandler) Draft(c *gin.Context) {
	var req dto.DraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	h.transferSvc.Prefill(domain.DraftPayment{
		Recipient: req.Recipient,
		Amount:    req.Amount,
		Category:  domain.ParseCategory(req.Category),
		Note:      req.Note,
	})

	response.OK(c, h.transferSvc.Status())
}
