package service

import (
	"context"
	"strings"
	"sync"
	"time"

	"novapay/config"
	"novapay/internal/core/domain"
	"novapay/internal/core/ports"
	"novapay/pkg/apperror"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// transferringProgress is the cosmetic percentage shown while the ledger
// update is simulated. It is not tied to real progress.
const transferringProgress = 60

// TransferServiceImpl implements ports.TransferService as an explicit
// finite-state machine. Transitions are driven by elapsed-time events fed
// through Advance, so the sequence is testable without real delays; Run is
// the timer-backed production driver.
type TransferServiceImpl struct {
	mu      sync.Mutex
	phase   ports.TransferPhase
	elapsed time.Duration
	draft   domain.DraftPayment
	pending domain.DraftPayment // submitted values, committed as-is

	wallet ports.WalletService
	delays config.TransferConfig
	log    zerolog.Logger
}

// NewTransferService creates a sequencer in the idle phase.
func NewTransferService(wallet ports.WalletService, delays config.TransferConfig, log zerolog.Logger) *TransferServiceImpl {
	return &TransferServiceImpl{
		phase:  ports.PhaseIdle,
		wallet: wallet,
		delays: delays,
		log:    log,
	}
}

// Submit runs the entry guard and starts the sequence. The balance check
// uses the snapshot at submission time; once the guard passes, the transfer
// runs to completion with the values captured here.
func (s *TransferServiceImpl) Submit(ctx context.Context, req ports.TransferRequest) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase != ports.PhaseIdle {
		return apperror.ErrTransferInFlight()
	}

	recipient := strings.TrimSpace(req.Recipient)
	if recipient == "" {
		return apperror.ErrEmptyRecipient()
	}

	amount, err := decimal.NewFromString(strings.TrimSpace(req.Amount))
	if err != nil || !amount.IsPositive() {
		return apperror.ErrInvalidAmount()
	}

	wallet, _ := s.wallet.Snapshot()
	if amount.GreaterThan(wallet.Balance) {
		return apperror.ErrInsufficientFunds()
	}

	s.pending = domain.DraftPayment{
		Recipient: recipient,
		Amount:    amount,
		Category:  domain.ParseCategory(req.Category),
		Note:      req.Note,
	}
	s.draft = s.pending
	s.phase = ports.PhaseVerifying
	s.elapsed = 0

	s.log.Info().
		Str("recipient", recipient).
		Str("amount", amount.String()).
		Msg("transfer submitted, verification started")

	return nil
}

// Advance feeds elapsed time into the sequencer. Time left over after a
// transition carries into the next phase, so one large Advance call can
// walk the whole sequence.
func (s *TransferServiceImpl) Advance(ctx context.Context, elapsed time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()

	remaining := elapsed
	for remaining > 0 {
		var phaseLen time.Duration
		switch s.phase {
		case ports.PhaseVerifying:
			phaseLen = s.delays.VerifyDelay
		case ports.PhaseTransferring:
			phaseLen = s.delays.TransferDelay
		case ports.PhaseSuccess:
			phaseLen = s.delays.SuccessHold
		default:
			return // idle absorbs time
		}

		needed := phaseLen - s.elapsed
		if remaining < needed {
			s.elapsed += remaining
			return
		}
		remaining -= needed
		s.transitionLocked(ctx)
	}
}

// transitionLocked fires the next edge. Caller must hold s.mu.
func (s *TransferServiceImpl) transitionLocked(ctx context.Context) {
	switch s.phase {
	case ports.PhaseVerifying:
		s.phase = ports.PhaseTransferring
		s.log.Debug().Msg("verification complete, transferring")
	case ports.PhaseTransferring:
		// The only durable side effect of the whole sequence.
		if _, err := s.wallet.RecordOutgoing(ctx, s.pending.Amount, s.pending.Recipient, s.pending.Category, s.pending.Note); err != nil {
			s.log.Error().Err(err).Msg("transfer commit failed")
		}
		s.phase = ports.PhaseSuccess
	case ports.PhaseSuccess:
		s.phase = ports.PhaseIdle
		s.draft = domain.DraftPayment{}
		s.pending = domain.DraftPayment{}
		s.log.Debug().Msg("transfer sequence complete, sequencer idle")
	}
	s.elapsed = 0
}

// Run drives a submitted sequence to completion with real timers. There is
// no cancellation path for the simulation itself; ctx cancellation stands
// in for session teardown.
func (s *TransferServiceImpl) Run(ctx context.Context) {
	for _, d := range []time.Duration{s.delays.VerifyDelay, s.delays.TransferDelay, s.delays.SuccessHold} {
		select {
		case <-ctx.Done():
			return
		case <-time.After(d):
			s.Advance(ctx, d)
		}
	}
}

// Status reports the current phase, cosmetic progress, and draft form.
func (s *TransferServiceImpl) Status() ports.TransferStatus {
	s.mu.Lock()
	defer s.mu.Unlock()

	progress := 0
	switch s.phase {
	case ports.PhaseTransferring:
		progress = transferringProgress
	case ports.PhaseSuccess:
		progress = 100
	}

	return ports.TransferStatus{
		Phase:    s.phase,
		Progress: progress,
		Draft:    s.draft,
	}
}

// Prefill sets the draft form, typically from an assistant tool call.
// Ignored while a transfer is in flight.
func (s *TransferServiceImpl) Prefill(draft domain.DraftPayment) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase != ports.PhaseIdle {
		s.log.Debug().Msg("prefill ignored, transfer in flight")
		return
	}
	s.draft = draft
}
