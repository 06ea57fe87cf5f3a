package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"novapay/internal/core/domain"
	"novapay/internal/core/ports"

	"github.com/rs/zerolog"
)

// Fixed assistant replies. These are user-facing copy, not error values:
// the bridge never surfaces an error to its caller.
const (
	assistantConfirmation = "I've prepared that payment for you. Please review the details in the transfer window."
	assistantFallback     = "Neural link stable. How can I assist?"
	assistantError        = "Neural interference detected. Please try again."

	assistantSystemInstruction = "You are Nova. If a user asks to pay someone, use the draftPayment tool immediately. Otherwise, provide financial advice."

	// aiDraftNote marks transfers drafted through the assistant.
	aiDraftNote = "Requested via Nova AI"
)

// AssistantServiceImpl implements ports.AssistantService.
type AssistantServiceImpl struct {
	client    ports.GenerativeClient
	wallet    ports.WalletService
	transfers ports.TransferService
	log       zerolog.Logger

	// chatMu serializes Chat calls for this session so replies land in the
	// chat log in submission order.
	chatMu sync.Mutex
}

// NewAssistantService creates the assistant bridge.
func NewAssistantService(client ports.GenerativeClient, wallet ports.WalletService, transfers ports.TransferService, log zerolog.Logger) *AssistantServiceImpl {
	return &AssistantServiceImpl{
		client:    client,
		wallet:    wallet,
		transfers: transfers,
		log:       log,
	}
}

// GetInsights composes a single prompt from the transaction history and the
// user message and sends it to the completion service. The first
// draftPayment tool invocation in the response wins; its arguments are
// validated before onToolCall runs. All failure modes collapse into fixed
// reply strings.
func (s *AssistantServiceImpl) GetInsights(ctx context.Context, transactions []domain.Transaction, userMessage string, onToolCall func(domain.DraftPayment)) string {
	prompt := composePrompt(transactions, userMessage)

	result, err := s.client.GenerateContent(ctx, ports.GenerateRequest{
		SystemInstruction: assistantSystemInstruction,
		Prompt:            prompt,
	})
	if err != nil {
		s.log.Error().Err(err).Msg("assistant completion failed")
		return assistantError
	}

	if len(result.ToolCalls) > 0 && onToolCall != nil {
		call := result.ToolCalls[0]
		draft, err := domain.ParseDraftPayment(call.Args)
		if err != nil {
			s.log.Warn().Err(err).Str("tool", call.Name).Msg("rejected malformed tool call arguments")
			return assistantError
		}
		draft.Note = aiDraftNote

		onToolCall(draft)
		return assistantConfirmation
	}

	if strings.TrimSpace(result.Text) == "" {
		return assistantFallback
	}
	return result.Text
}

// Chat runs one assistant exchange against the store's current history and
// records both sides in the session chat log. A tool call prefills the
// transfer draft form. Calls are serialized per session.
func (s *AssistantServiceImpl) Chat(ctx context.Context, userMessage string) string {
	s.chatMu.Lock()
	defer s.chatMu.Unlock()

	s.wallet.AppendChat(domain.ChatMessage{Role: domain.RoleUser, Content: userMessage})

	_, transactions := s.wallet.Snapshot()
	reply := s.GetInsights(ctx, transactions, userMessage, func(draft domain.DraftPayment) {
		s.transfers.Prefill(draft)
	})

	s.wallet.AppendChat(domain.ChatMessage{Role: domain.RoleAssistant, Content: reply})
	return reply
}

// History returns the session chat log.
func (s *AssistantServiceImpl) History() []domain.ChatMessage {
	return s.wallet.ChatHistory()
}

// composePrompt renders the history summary and user message into the
// single prompt the completion service receives.
func composePrompt(transactions []domain.Transaction, userMessage string) string {
	var b strings.Builder
	b.WriteString("You are Nova, a futuristic financial assistant.\n")
	b.WriteString("Current Balance context is available in the app.\n")
	b.WriteString("History:\n")
	for _, t := range transactions {
		fmt.Fprintf(&b, "%s: %s $%s to %s (%s)\n",
			t.Date.Format(time.RFC3339), t.Direction, t.Amount.String(), t.Recipient, t.Category)
	}
	b.WriteString("\nUser says: ")
	b.WriteString(userMessage)
	b.WriteString("\n\nIf the user wants to send money, use the 'draftPayment' tool.")
	return b.String()
}
