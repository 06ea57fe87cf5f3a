package service

import (
	"context"
	"testing"
	"time"

	"novapay/config"
	"novapay/internal/core/domain"
	"novapay/internal/core/ports"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testDelays = config.TransferConfig{
	VerifyDelay:   1500 * time.Millisecond,
	TransferDelay: 2 * time.Second,
	SuccessHold:   2 * time.Second,
}

func newTestTransferService(t *testing.T) (*TransferServiceImpl, *WalletServiceImpl) {
	t.Helper()
	wallet, _ := newTestWalletService(t)
	return NewTransferService(wallet, testDelays, zerolog.Nop()), wallet
}

func TestTransferService_FullSequence(t *testing.T) {
	svc, wallet := newTestTransferService(t)
	ctx := context.Background()

	before, beforeTxs := wallet.Snapshot()

	err := svc.Submit(ctx, ports.TransferRequest{
		Recipient: "bob@bank",
		Amount:    "100.50",
		Category:  "Food",
		Note:      "dinner",
	})
	require.NoError(t, err)
	assert.Equal(t, ports.PhaseVerifying, svc.Status().Phase)

	// Nothing committed before the transferring phase completes.
	svc.Advance(ctx, testDelays.VerifyDelay)
	assert.Equal(t, ports.PhaseTransferring, svc.Status().Phase)
	mid, midTxs := wallet.Snapshot()
	assert.True(t, mid.Balance.Equal(before.Balance))
	assert.Len(t, midTxs, len(beforeTxs))

	// The transferring -> success edge is the only durable mutation.
	svc.Advance(ctx, testDelays.TransferDelay)
	assert.Equal(t, ports.PhaseSuccess, svc.Status().Phase)
	after, afterTxs := wallet.Snapshot()
	assert.True(t, after.Balance.Equal(before.Balance.Sub(decimal.RequireFromString("100.50"))))
	require.Len(t, afterTxs, len(beforeTxs)+1)
	assert.Equal(t, domain.DirectionOutgoing, afterTxs[0].Direction)
	assert.Equal(t, "bob@bank", afterTxs[0].Recipient)
	assert.Equal(t, domain.CategoryFood, afterTxs[0].Category)
	assert.Equal(t, "dinner", afterTxs[0].Note)
	assert.True(t, afterTxs[0].Amount.Equal(decimal.RequireFromString("100.50")))

	// Sequencer resets and the form clears.
	svc.Advance(ctx, testDelays.SuccessHold)
	status := svc.Status()
	assert.Equal(t, ports.PhaseIdle, status.Phase)
	assert.Empty(t, status.Draft.Recipient)
}

func TestTransferService_OneAdvanceWalksWholeSequence(t *testing.T) {
	svc, wallet := newTestTransferService(t)
	ctx := context.Background()

	before, _ := wallet.Snapshot()
	require.NoError(t, svc.Submit(ctx, ports.TransferRequest{Recipient: "bob@bank", Amount: "10"}))

	svc.Advance(ctx, 10*time.Second)

	assert.Equal(t, ports.PhaseIdle, svc.Status().Phase)
	after, _ := wallet.Snapshot()
	assert.True(t, after.Balance.Equal(before.Balance.Sub(decimal.NewFromInt(10))))
}

func TestTransferService_PartialElapsedTimeAccumulates(t *testing.T) {
	svc, _ := newTestTransferService(t)
	ctx := context.Background()

	require.NoError(t, svc.Submit(ctx, ports.TransferRequest{Recipient: "bob@bank", Amount: "10"}))

	svc.Advance(ctx, 700*time.Millisecond)
	assert.Equal(t, ports.PhaseVerifying, svc.Status().Phase)
	svc.Advance(ctx, 800*time.Millisecond)
	assert.Equal(t, ports.PhaseTransferring, svc.Status().Phase)
}

func TestTransferService_GuardRejections(t *testing.T) {
	tests := []struct {
		name string
		req  ports.TransferRequest
		code string
	}{
		{"empty recipient", ports.TransferRequest{Recipient: "  ", Amount: "10"}, "PAY_003"},
		{"unparsable amount", ports.TransferRequest{Recipient: "bob@bank", Amount: "ten"}, "PAY_002"},
		{"zero amount", ports.TransferRequest{Recipient: "bob@bank", Amount: "0"}, "PAY_002"},
		{"negative amount", ports.TransferRequest{Recipient: "bob@bank", Amount: "-5"}, "PAY_002"},
		{"over balance", ports.TransferRequest{Recipient: "bob@bank", Amount: "999999"}, "PAY_001"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, wallet := newTestTransferService(t)
			before, beforeTxs := wallet.Snapshot()

			err := svc.Submit(context.Background(), tt.req)
			assertAppError(t, err, tt.code)

			// Guard failures mutate nothing and leave the sequencer idle.
			assert.Equal(t, ports.PhaseIdle, svc.Status().Phase)
			after, afterTxs := wallet.Snapshot()
			assert.True(t, after.Balance.Equal(before.Balance))
			assert.Len(t, afterTxs, len(beforeTxs))
		})
	}
}

func TestTransferService_AmountEqualToBalanceIsAllowed(t *testing.T) {
	svc, wallet := newTestTransferService(t)
	ctx := context.Background()
	before, _ := wallet.Snapshot()

	require.NoError(t, svc.Submit(ctx, ports.TransferRequest{
		Recipient: "bob@bank",
		Amount:    before.Balance.String(),
	}))
	svc.Advance(ctx, 10*time.Second)

	after, _ := wallet.Snapshot()
	assert.True(t, after.Balance.IsZero())
}

func TestTransferService_ReentrancyBlocked(t *testing.T) {
	svc, _ := newTestTransferService(t)
	ctx := context.Background()

	require.NoError(t, svc.Submit(ctx, ports.TransferRequest{Recipient: "bob@bank", Amount: "10"}))

	err := svc.Submit(ctx, ports.TransferRequest{Recipient: "carol@bank", Amount: "20"})
	assertAppError(t, err, "PAY_005")
}

func TestTransferService_BalanceCheckUsesSubmissionSnapshot(t *testing.T) {
	svc, wallet := newTestTransferService(t)
	ctx := context.Background()
	before, _ := wallet.Snapshot()

	// Guard passes against the snapshot at submission time; a later balance
	// drop does not re-validate the in-flight transfer.
	require.NoError(t, svc.Submit(ctx, ports.TransferRequest{Recipient: "bob@bank", Amount: before.Balance.String()}))

	_, err := wallet.RecordOutgoing(ctx, decimal.NewFromInt(1), "carol@bank", domain.CategoryOthers, "")
	require.NoError(t, err)

	svc.Advance(ctx, 10*time.Second)

	// The commit itself is backstopped by the store, so the balance stays
	// non-negative even in this unguarded overlap.
	after, _ := wallet.Snapshot()
	assert.False(t, after.Balance.IsNegative())
}

func TestTransferService_Progress(t *testing.T) {
	svc, _ := newTestTransferService(t)
	ctx := context.Background()

	assert.Equal(t, 0, svc.Status().Progress)

	require.NoError(t, svc.Submit(ctx, ports.TransferRequest{Recipient: "bob@bank", Amount: "10"}))
	assert.Equal(t, 0, svc.Status().Progress)

	svc.Advance(ctx, testDelays.VerifyDelay)
	assert.Equal(t, transferringProgress, svc.Status().Progress)

	svc.Advance(ctx, testDelays.TransferDelay)
	assert.Equal(t, 100, svc.Status().Progress)
}

func TestTransferService_UnknownCategoryDefaults(t *testing.T) {
	svc, wallet := newTestTransferService(t)
	ctx := context.Background()

	require.NoError(t, svc.Submit(ctx, ports.TransferRequest{Recipient: "bob@bank", Amount: "10", Category: "Nonsense"}))
	svc.Advance(ctx, 10*time.Second)

	_, txs := wallet.Snapshot()
	assert.Equal(t, domain.DefaultCategory, txs[0].Category)
}

func TestTransferService_Prefill(t *testing.T) {
	svc, _ := newTestTransferService(t)

	draft := domain.DraftPayment{
		Recipient: "bob@upi",
		Amount:    decimal.NewFromInt(20),
		Category:  domain.CategoryShopping,
		Note:      "Requested via Nova AI",
	}
	svc.Prefill(draft)
	assert.Equal(t, draft, svc.Status().Draft)
}

func TestTransferService_PrefillIgnoredWhileInFlight(t *testing.T) {
	svc, _ := newTestTransferService(t)
	ctx := context.Background()

	require.NoError(t, svc.Submit(ctx, ports.TransferRequest{Recipient: "bob@bank", Amount: "10"}))
	submitted := svc.Status().Draft

	svc.Prefill(domain.DraftPayment{Recipient: "mallory@upi", Amount: decimal.NewFromInt(999)})
	assert.Equal(t, submitted, svc.Status().Draft)
}

func TestTransferService_RunDrivesSequenceWithTimers(t *testing.T) {
	wallet, _ := newTestWalletService(t)
	fast := config.TransferConfig{
		VerifyDelay:   time.Millisecond,
		TransferDelay: time.Millisecond,
		SuccessHold:   time.Millisecond,
	}
	svc := NewTransferService(wallet, fast, zerolog.Nop())
	ctx := context.Background()

	before, _ := wallet.Snapshot()
	require.NoError(t, svc.Submit(ctx, ports.TransferRequest{Recipient: "bob@bank", Amount: "10"}))

	svc.Run(ctx)

	assert.Equal(t, ports.PhaseIdle, svc.Status().Phase)
	after, _ := wallet.Snapshot()
	assert.True(t, after.Balance.Equal(before.Balance.Sub(decimal.NewFromInt(10))))
}
