package dto

import (
	"novapay/internal/core/domain"

	"github.com/shopspring/decimal"
)

// TransferRequest is the request body for starting a simulated transfer.
// Amount is carried as entered; the sequencer owns parsing and validation.
type TransferRequest struct {
	Recipient string `json:"recipient" binding:"required"`
	Amount    string `json:"amount" binding:"required"`
	Category  string `json:"category,omitempty"`
	Note      string `json:"note,omitempty"`
}

// DraftRequest pre-fills the transfer form without starting the sequence.
type DraftRequest struct {
	Recipient string          `json:"recipient" binding:"required"`
	Amount    decimal.Decimal `json:"amount" binding:"required"`
	Category  string          `json:"category,omitempty"`
	Note      string          `json:"note,omitempty"`
}

// PaymentLinkRequest is the request body for generating a payment URI.
type PaymentLinkRequest struct {
	Amount string `json:"amount"`
	Payee  string `json:"payee" binding:"required"`
	Payer  string `json:"payer,omitempty"`
}

// PaymentLinkResponse carries the generated URI and its QR render URL.
type PaymentLinkResponse struct {
	URI        string `json:"uri"`
	QRImageURL string `json:"qr_image_url"`
}

// CopyRequest acknowledges a copy-to-clipboard of a payment URI.
type CopyRequest struct {
	URI string `json:"uri" binding:"required"`
}

// CopyResponse reports the copy acknowledgment state.
type CopyResponse struct {
	Copied bool `json:"copied"`
}

// ChatRequest is the request body for one assistant exchange.
type ChatRequest struct {
	Message string `json:"message" binding:"required"`
}

// ChatResponse is the assistant's reply to one exchange.
type ChatResponse struct {
	Reply string `json:"reply"`
}

// ChatHistoryResponse wraps the session chat log.
type ChatHistoryResponse struct {
	Messages []domain.ChatMessage `json:"messages"`
}

// TransactionListResponse wraps the transaction history, newest first.
type TransactionListResponse struct {
	Items []domain.Transaction `json:"items"`
	Total int                  `json:"total"`
}
