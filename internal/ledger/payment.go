package ledger

import (
	"fmt"
	"math"

	"github.com/farrow-dev/SkullPit_Go/internal/domain"
)

// PaymentResult reports the applied debt payment.
type PaymentResult struct {
	Paid       int `json:"paid"`
	EarlyBonus int `json:"early_bonus"`
	Remaining  int `json:"remaining"`
}

// MakePayment pays down the round's debt. The amount must be within
// [0, credits]; the applied payment is clamped to the remaining debt.
// Paying early earns floor((payment/10) x turnsLeft) back as credits,
// applied alongside the debit.
func MakePayment(state *domain.GameState, amount int) (PaymentResult, error) {
	if amount < 0 || amount > state.Credits {
		return PaymentResult{}, fmt.Errorf("%w: payment %d outside [0, %d]", domain.ErrInvalidAction, amount, state.Credits)
	}

	paid := amount
	if remaining := state.RemainingDebt(); paid > remaining {
		paid = remaining
	}

	turnsLeft := state.DeadlineTurn - state.CurrentTurn
	if turnsLeft < 0 {
		turnsLeft = 0
	}
	bonus := int(math.Floor(float64(paid) / 10 * float64(turnsLeft)))

	state.Credits -= paid
	state.Credits += bonus
	state.PaidAmount += paid

	return PaymentResult{Paid: paid, EarlyBonus: bonus, Remaining: state.RemainingDebt()}, nil
}
