package bank

import (
	"math"

	"github.com/pkg/errors"
)

var (
	ErrNegativeAmount = errors.New("negative amount")
	ErrOverflow       = errors.New("balance overflow")
)

// Account is a balance counter that never goes below zero. It is not safe for
// concurrent use.
type Account struct {
	balance int64
}

func (a *Account) Balance() int64 { return a.balance }

func (a *Account) Deposit(amount int64) error {
	if amount < 0 {
		return errors.Wrapf(ErrNegativeAmount, "deposit %d", amount)
	}
	if a.balance > math.MaxInt64-amount {
		return errors.Wrapf(ErrOverflow, "deposit %d onto %d", amount, a.balance)
	}
	a.balance += amount
	return nil
}

// Withdraw takes amount out and reports true, or leaves the balance untouched
// and reports false when it would go negative.
func (a *Account) Withdraw(amount int64) (bool, error) {
	if amount < 0 {
		return false, errors.Wrapf(ErrNegativeAmount, "withdraw %d", amount)
	}
	if a.balance < amount {
		return false, nil
	}
	a.balance -= amount
	return true, nil
}
