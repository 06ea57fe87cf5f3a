package service

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"novapay/internal/core/domain"
	"novapay/internal/core/ports"
	"novapay/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// WalletServiceImpl implements ports.WalletService. It holds the session
// wallet and transaction history in memory and mirrors every mutation to
// the snapshot store on a best-effort basis.
type WalletServiceImpl struct {
	mu           sync.RWMutex
	wallet       domain.Wallet
	transactions []domain.Transaction // newest first
	chat         []domain.ChatMessage

	store ports.SnapshotStore
	log   zerolog.Logger
}

// NewWalletService loads persisted state from the snapshot store, falling
// back to the fixed seed data when no snapshot exists. Unparsable persisted
// state is a hard error: the caller is expected to fail fast at startup.
func NewWalletService(ctx context.Context, store ports.SnapshotStore, log zerolog.Logger) (*WalletServiceImpl, error) {
	s := &WalletServiceImpl{
		store: store,
		log:   log,
	}

	walletBlob, err := store.Get(ctx, ports.SnapshotKeyWallet)
	if err != nil {
		return nil, fmt.Errorf("load wallet snapshot: %w", err)
	}
	if walletBlob == nil {
		s.wallet = domain.SeedWallet()
	} else if err := json.Unmarshal(walletBlob, &s.wallet); err != nil {
		return nil, fmt.Errorf("parse wallet snapshot: %w", err)
	}

	txBlob, err := store.Get(ctx, ports.SnapshotKeyTransactions)
	if err != nil {
		return nil, fmt.Errorf("load transaction snapshot: %w", err)
	}
	if txBlob == nil {
		s.transactions = domain.SeedTransactions()
	} else if err := json.Unmarshal(txBlob, &s.transactions); err != nil {
		return nil, fmt.Errorf("parse transaction snapshot: %w", err)
	}

	log.Info().
		Str("owner", s.wallet.Owner).
		Int("transactions", len(s.transactions)).
		Bool("seeded", walletBlob == nil).
		Msg("wallet state loaded")

	return s, nil
}

// Snapshot returns copies of the wallet and transaction list, newest first.
func (s *WalletServiceImpl) Snapshot() (domain.Wallet, []domain.Transaction) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	txs := make([]domain.Transaction, len(s.transactions))
	copy(txs, s.transactions)
	return s.wallet, txs
}

// RecordOutgoing appends a new outgoing transaction and debits the balance.
// The caller has already validated the request at submission time; this is
// the backstop keeping the balance non-negative regardless.
func (s *WalletServiceImpl) RecordOutgoing(ctx context.Context, amount decimal.Decimal, recipient string, category domain.Category, note string) (*domain.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !amount.IsPositive() {
		return nil, apperror.ErrInvalidAmount()
	}
	if !s.wallet.CanDebit(amount) {
		return nil, apperror.ErrInsufficientFunds()
	}

	txn := domain.Transaction{
		ID:        uuid.New().String(),
		Direction: domain.DirectionOutgoing,
		Amount:    amount,
		Recipient: recipient,
		Category:  category,
		Date:      time.Now().UTC(),
		Note:      note,
	}

	s.transactions = append([]domain.Transaction{txn}, s.transactions...)
	s.wallet.Balance = s.wallet.Balance.Sub(amount)

	s.persistLocked(ctx)

	s.log.Info().
		Str("tx_id", txn.ID).
		Str("recipient", recipient).
		Str("amount", amount.String()).
		Str("balance", s.wallet.Balance.String()).
		Msg("outgoing transaction recorded")

	return &txn, nil
}

// AppendChat appends to the session chat log. The log is append-only and
// not persisted: it lives only for this session.
func (s *WalletServiceImpl) AppendChat(msg domain.ChatMessage) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.chat = append(s.chat, msg)
}

// ChatHistory returns a copy of the session chat log in insertion order.
func (s *WalletServiceImpl) ChatHistory() []domain.ChatMessage {
	s.mu.RLock()
	defer s.mu.RUnlock()

	history := make([]domain.ChatMessage, len(s.chat))
	copy(history, s.chat)
	return history
}

// persistLocked re-serializes both snapshots. Persistence is best-effort:
// failures are logged, never surfaced. Caller must hold s.mu.
func (s *WalletServiceImpl) persistLocked(ctx context.Context) {
	walletBlob, err := json.Marshal(s.wallet)
	if err != nil {
		s.log.Warn().Err(err).Msg("failed to serialize wallet snapshot")
		return
	}
	if err := s.store.Set(ctx, ports.SnapshotKeyWallet, walletBlob); err != nil {
		s.log.Warn().Err(err).Msg("failed to persist wallet snapshot")
	}

	txBlob, err := json.Marshal(s.transactions)
	if err != nil {
		s.log.Warn().Err(err).Msg("failed to serialize transaction snapshot")
		return
	}
	if err := s.store.Set(ctx, ports.SnapshotKeyTransactions, txBlob); err != nil {
		s.log.Warn().Err(err).Msg("failed to persist transaction snapshot")
	}
}
