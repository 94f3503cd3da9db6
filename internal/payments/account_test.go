package payments

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func assertBalances(t *testing.T, acc Account, available, held, total string) {
	t.Helper()

	assert.Truef(t, dec(available).Equal(acc.Available), "available: want %s, got %s", available, acc.Available)
	assert.Truef(t, dec(held).Equal(acc.Held), "held: want %s, got %s", held, acc.Held)
	assert.Truef(t, dec(total).Equal(acc.Total), "total: want %s, got %s", total, acc.Total)
	assert.Truef(t, acc.Total.Equal(acc.Available.Add(acc.Held)), "total %s != available %s + held %s", acc.Total, acc.Available, acc.Held)
}

func TestAccount_Deposit(t *testing.T) {
	acc := NewAccount(1)

	assert.True(t, acc.Deposit(dec("1")))
	assertBalances(t, *acc, "1", "0", "1")

	assert.True(t, acc.Deposit(dec("0.0001")))
	assertBalances(t, *acc, "1.0001", "0", "1.0001")
}

func TestAccount_Withdraw(t *testing.T) {
	acc := NewAccount(1)
	acc.Deposit(dec("1"))

	assert.False(t, acc.Withdraw(dec("2")))
	assertBalances(t, *acc, "1", "0", "1")

	assert.True(t, acc.Withdraw(dec("0.5")))
	assertBalances(t, *acc, "0.5", "0", "0.5")

	assert.True(t, acc.Withdraw(dec("0.5")))
	assertBalances(t, *acc, "0", "0", "0")
}

func TestAccount_Dispute(t *testing.T) {
	acc := NewAccount(1)
	acc.Deposit(dec("1"))

	assert.False(t, acc.Dispute(dec("2")))
	assertBalances(t, *acc, "1", "0", "1")

	assert.True(t, acc.Dispute(dec("0.5")))
	assertBalances(t, *acc, "0.5", "0.5", "1")
}

func TestAccount_Resolve(t *testing.T) {
	acc := NewAccount(1)
	acc.Deposit(dec("10"))

	assert.True(t, acc.Dispute(dec("5")))
	assertBalances(t, *acc, "5", "5", "10")

	assert.True(t, acc.Resolve(dec("5")))
	assertBalances(t, *acc, "10", "0", "10")

	assert.False(t, acc.Resolve(dec("10")))
	assertBalances(t, *acc, "10", "0", "10")
}

func TestAccount_Chargeback(t *testing.T) {
	acc := NewAccount(1)
	acc.Deposit(dec("10"))
	acc.Dispute(dec("5"))

	assert.False(t, acc.Chargeback(dec("6")))
	assertBalances(t, *acc, "5", "5", "10")
	assert.False(t, acc.Locked)

	assert.True(t, acc.Chargeback(dec("5")))
	assertBalances(t, *acc, "5", "0", "5")
	assert.True(t, acc.Locked)
}

func TestAccount_RejectionLeavesAccountUnchanged(t *testing.T) {
	base := NewAccount(7)
	base.Deposit(dec("3.25"))
	base.Dispute(dec("1.25"))

	ops := map[string]func(*Account) bool{
		"withdraw":   func(a *Account) bool { return a.Withdraw(dec("2.0001")) },
		"dispute":    func(a *Account) bool { return a.Dispute(dec("2.0001")) },
		"resolve":    func(a *Account) bool { return a.Resolve(dec("1.2501")) },
		"chargeback": func(a *Account) bool { return a.Chargeback(dec("1.2501")) },
	}

	for name, op := range ops {
		t.Run(name, func(t *testing.T) {
			acc := *base
			before := acc

			assert.False(t, op(&acc))
			assert.Equal(t, before, acc)
		})
	}
}
