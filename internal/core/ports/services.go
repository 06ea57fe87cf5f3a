package ports

import (
	"context"
	"time"

	"novapay/internal/core/domain"

	"github.com/shopspring/decimal"
)

// WalletService is the wallet/transaction store. It owns the in-memory
// session state and mirrors every change to the snapshot store.
type WalletService interface {
	// Snapshot returns copies of the wallet and the transaction list,
	// newest first.
	Snapshot() (domain.Wallet, []domain.Transaction)
	// RecordOutgoing appends an outgoing transaction and debits the balance.
	RecordOutgoing(ctx context.Context, amount decimal.Decimal, recipient string, category domain.Category, note string) (*domain.Transaction, error)
	// AppendChat appends to the session's append-only chat log.
	AppendChat(msg domain.ChatMessage)
	// ChatHistory returns a copy of the session chat log in order.
	ChatHistory() []domain.ChatMessage
}

// TransferPhase enumerates the simulated transfer states.
type TransferPhase string

const (
	PhaseIdle         TransferPhase = "idle"
	PhaseVerifying    TransferPhase = "verifying"
	PhaseTransferring TransferPhase = "transferring"
	PhaseSuccess      TransferPhase = "success"
)

// TransferRequest holds raw form input for a simulated transfer.
// Amount arrives as entered, unparsed.
type TransferRequest struct {
	Recipient string
	Amount    string
	Category  string
	Note      string
}

// TransferStatus is a point-in-time view of the sequencer.
type TransferStatus struct {
	Phase    TransferPhase       `json:"phase"`
	Progress int                 `json:"progress"` // cosmetic percentage
	Draft    domain.DraftPayment `json:"draft"`
}

// TransferService drives the fixed simulated transfer sequence
// idle -> verifying -> transferring -> success -> idle.
type TransferService interface {
	// Submit validates the request against the current balance snapshot and
	// starts the sequence. Rejections are synchronous; nothing is mutated.
	Submit(ctx context.Context, req TransferRequest) error
	// Advance feeds elapsed time into the current phase, firing any
	// transitions whose duration has been met.
	Advance(ctx context.Context, elapsed time.Duration)
	// Run drives the submitted sequence to completion with real timers.
	Run(ctx context.Context)
	// Status reports the current phase, progress, and draft form.
	Status() TransferStatus
	// Prefill sets the draft form (assistant tool-call entry point).
	// Only applied while the sequencer is idle.
	Prefill(draft domain.DraftPayment)
}

// PaymentLinkService builds standard payment URIs and delegates QR
// rendering to the external image service.
type PaymentLinkService interface {
	// BuildURI constructs the canonical payment URI. Pure and idempotent.
	BuildURI(amount, payeeHandle, payerName string) string
	// QRImageURL returns the external service URL rendering uri as a QR image.
	QRImageURL(uri string) string
	// FetchQR retrieves the rendered image; returns bytes and content type.
	FetchQR(ctx context.Context, uri string) ([]byte, string, error)
	// Copy records a copy-to-clipboard acknowledgment for uri.
	Copy(uri string)
	// CopiedRecently reports whether a copy happened within the ack window.
	CopiedRecently() bool
}

// AssistantService is the bridge to the generative-AI completion service.
type AssistantService interface {
	// GetInsights sends one prompt composed from the transaction history and
	// the user message. A draftPayment tool invocation in the response is
	// validated and forwarded to onToolCall; the reply text never carries an
	// error (upstream failures map to a fixed message).
	GetInsights(ctx context.Context, transactions []domain.Transaction, userMessage string, onToolCall func(domain.DraftPayment)) string
	// Chat runs GetInsights against the store's current history and records
	// both sides of the exchange in the session chat log.
	Chat(ctx context.Context, userMessage string) string
	// History returns the session chat log.
	History() []domain.ChatMessage
}

// ToolCall is a structured function invocation in a model response.
type ToolCall struct {
	Name string
	Args map[string]interface{}
}

// GenerateRequest is one completion request to the model.
type GenerateRequest struct {
	SystemInstruction string
	Prompt            string
}

// GenerateResult is the parsed model response: free text, tool calls, or both.
type GenerateResult struct {
	Text      string
	ToolCalls []ToolCall
}

// GenerativeClient calls an external generative-AI completion endpoint
// configured with the draftPayment tool.
type GenerativeClient interface {
	GenerateContent(ctx context.Context, req GenerateRequest) (*GenerateResult, error)
}
