package handler

import (
	"net/http"

	"novapay/internal/adapter/http/dto"
	"novapay/internal/core/ports"
	"novapay/pkg/apperror"
	"novapay/pkg/response"

	"github.com/gin-gonic/gin"
)

// PaymentLinkHandler handles payment request (receive money) endpoints.
type PaymentLinkHandler struct {
	linkSvc ports.PaymentLinkService
}

// NewPaymentLinkHandler creates a new PaymentLinkHandler.
func NewPaymentLinkHandler(linkSvc ports.PaymentLinkService) *PaymentLinkHandler {
	return &PaymentLinkHandler{linkSvc: linkSvc}
}

// Create handles POST /api/v1/payment-requests.
func (h *PaymentLinkHandler) Create(c *gin.Context) {
	var req dto.PaymentLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	uri := h.linkSvc.BuildURI(req.Amount, req.Payee, req.Payer)
	response.OK(c, dto.PaymentLinkResponse{
		URI:        uri,
		QRImageURL: h.linkSvc.QRImageURL(uri),
	})
}

// QRImage handles GET /api/v1/payment-requests/qr. It proxies the rendered
// QR image so the caller never touches the external service directly.
func (h *PaymentLinkHandler) QRImage(c *gin.Context) {
	payee := c.Query("payee")
	if payee == "" {
		response.Error(c, apperror.Validation("payee is required"))
		return
	}

	uri := h.linkSvc.BuildURI(c.Query("amount"), payee, c.Query("payer"))
	img, contentType, err := h.linkSvc.FetchQR(c.Request.Context(), uri)
	if err != nil {
		response.Error(c, err)
		return
	}
	if contentType == "" {
		contentType = "image/png"
	}

	c.Data(http.StatusOK, contentType, img)
}

// Copy handles POST /api/v1/payment-requests/copy.
func (h *PaymentLinkHandler) Copy(c *gin.Context) {
	var req dto.CopyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	h.linkSvc.Copy(req.URI)
	response.OK(c, dto.CopyResponse{Copied: h.linkSvc.CopiedRecently()})
}
