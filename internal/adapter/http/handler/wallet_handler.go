package handler

import (
	"net/http"

	"novapay/internal/adapter/http/dto"
	"novapay/internal/core/ports"
	"novapay/pkg/response"

	"github.com/gin-gonic/gin"
)

// WalletHandler handles wallet and transaction history endpoints.
type WalletHandler struct {
	walletSvc ports.WalletService
}

// NewWalletHandler creates a new WalletHandler.
func NewWalletHandler(walletSvc ports.WalletService) *WalletHandler {
	return &WalletHandler{walletSvc: walletSvc}
}

// GetWallet handles GET /api/v1/wallet.
func (h *WalletHandler) GetWallet(c *gin.Context) {
	wallet, _ := h.walletSvc.Snapshot()
	response.OK(c, wallet)
}

// ListTransactions handles GET /api/v1/transactions.
func (h *WalletHandler) ListTransactions(c *gin.Context) {
	_, txs := h.walletSvc.Snapshot()
	response.OK(c, dto.TransactionListResponse{
		Items: txs,
		Total: len(txs),
	})
}

// HealthCheck handles GET /health — verifies the snapshot backend.
func HealthCheck(checkers ...ports.HealthChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		type depStatus struct {
			Status string `json:"status"`
			Error  string `json:"error,omitempty"`
		}

		deps := make(map[string]depStatus)
		allHealthy := true

		for _, checker := range checkers {
			if err := checker.Ping(c.Request.Context()); err != nil {
				deps[checker.Name()] = depStatus{Status: "unhealthy", Error: err.Error()}
				allHealthy = false
			} else {
				deps[checker.Name()] = depStatus{Status: "healthy"}
			}
		}

		status := "healthy"
		httpCode := http.StatusOK
		if !allHealthy {
			status = "degraded"
			httpCode = http.StatusServiceUnavailable
		}

		c.JSON(httpCode, gin.H{
			"status":       status,
			"dependencies": deps,
		})
	}
}
