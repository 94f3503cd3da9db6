package payments

import "github.com/shopspring/decimal"

// Account holds a client's balances. Total always equals Available + Held;
// every mutation goes through one of the guarded methods below.
type Account struct {
	ID        uint16
	Available decimal.Decimal
	Held      decimal.Decimal
	Total     decimal.Decimal
	Locked    bool
}

func NewAccount(id uint16) *Account {
	return &Account{
		ID:        id,
		Available: decimal.Zero,
		Held:      decimal.Zero,
		Total:     decimal.Zero,
	}
}

func (a *Account) Deposit(amount decimal.Decimal) bool {
	a.Available = a.Available.Add(amount)
	a.Total = a.Total.Add(amount)
	return true
}

func (a *Account) Withdraw(amount decimal.Decimal) bool {
	if amount.GreaterThan(a.Available) {
		return false
	}

	a.Available = a.Available.Sub(amount)
	a.Total = a.Total.Sub(amount)
	return true
}

// Dispute moves amount from available to held.
func (a *Account) Dispute(amount decimal.Decimal) bool {
	if amount.GreaterThan(a.Available) {
		return false
	}

	a.Available = a.Available.Sub(amount)
	a.Held = a.Held.Add(amount)
	return true
}

// Resolve releases a held amount back to available.
func (a *Account) Resolve(amount decimal.Decimal) bool {
	if amount.GreaterThan(a.Held) {
		return false
	}

	a.Held = a.Held.Sub(amount)
	a.Available = a.Available.Add(amount)
	return true
}

// Chargeback removes a held amount from the account and locks it.
func (a *Account) Chargeback(amount decimal.Decimal) bool {
	if amount.GreaterThan(a.Held) {
		return false
	}

	a.Held = a.Held.Sub(amount)
	a.Total = a.Total.Sub(amount)
	a.Locked = true
	return true
}
