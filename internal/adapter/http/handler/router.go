package handler

import (
	"novapay/internal/adapter/http/middleware"
	"novapay/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	WalletSvc      ports.WalletService
	TransferSvc    ports.TransferService
	LinkSvc        ports.PaymentLinkService
	AssistantSvc   ports.AssistantService
	HealthCheckers []ports.HealthChecker
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(1 << 20)) // 1 MB request body limit

	// Health check (verifies the snapshot backend)
	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	// API v1 routes
	v1 := r.Group("/api/v1")

	walletHandler := NewWalletHandler(deps.WalletSvc)
	v1.GET("/wallet", walletHandler.GetWallet)
	v1.GET("/transactions", walletHandler.ListTransactions)

	transferHandler := NewTransferHandler(deps.TransferSvc)
	transfers := v1.Group("/transfers")
	{
		transfers.POST("", transferHandler.Submit)
		transfers.GET("/current", transferHandler.Current)
		transfers.POST("/draft", transferHandler.Draft)
	}

	linkHandler := NewPaymentLinkHandler(deps.LinkSvc)
	paymentRequests := v1.Group("/payment-requests")
	{
		paymentRequests.POST("", linkHandler.Create)
		paymentRequests.GET("/qr", linkHandler.QRImage)
		paymentRequests.POST("/copy", linkHandler.Copy)
	}

	assistantHandler := NewAssistantHandler(deps.AssistantSvc)
	assistant := v1.Group("/assistant")
	{
		assistant.POST("/chat", assistantHandler.Chat)
		assistant.GET("/history", assistantHandler.History)
	}

	return r
}
