// Package treasury accumulates accepted mint payment and exposes the single
// controlled withdrawal path.
package treasury

import (
	"context"
	"log/slog"
	"sync"

	"mintgate/internal/mint/models"
	"mintgate/internal/mint/ports"
	"mintgate/pkg/domain"
)

type logTransferrer struct {
	logger *slog.Logger
}

// LogTransferrer returns a transferrer that accepts every withdrawal and
// records it in the log. Stands in until a settlement backend is wired.
func LogTransferrer(logger *slog.Logger) ports.FundsTransferrer {
	return logTransferrer{logger: logger}
}

func (t logTransferrer) Transfer(ctx context.Context, to domain.Address, amount uint64) error {
	t.logger.InfoContext(ctx, "funds transferred",
		"payee", to,
		"amount", amount,
	)
	return nil
}

type Treasury struct {
	mu      sync.Mutex
	balance uint64

	transferrer ports.FundsTransferrer
}

func New(transferrer ports.FundsTransferrer) *Treasury {
	return &Treasury{transferrer: transferrer}
}

// Accrue adds accepted payment. Overpayment has already been accepted by the
// policy, so the full offered amount lands here.
func (t *Treasury) Accrue(amount uint64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.balance += amount
}

func (t *Treasury) Balance() uint64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.balance
}

// WithdrawAll transfers the entire balance to the payee. The balance is
// zeroed before the transfer and restored if the payee rejects the funds, so
// no partial withdrawal can ever be observed.
func (t *Treasury) WithdrawAll(ctx context.Context, to domain.Address) (uint64, error) {
	t.mu.Lock()
	amount := t.balance
	if amount == 0 {
		t.mu.Unlock()
		return 0, models.ErrNothingToWithdraw
	}
	t.balance = 0
	t.mu.Unlock()

	if err := t.transferrer.Transfer(ctx, to, amount); err != nil {
		t.mu.Lock()
		t.balance += amount
		t.mu.Unlock()
		return 0, models.ErrTransferFailed
	}

	return amount, nil
}
