package payments

import "github.com/shopspring/decimal"

type Transaction struct {
	Kind     Kind
	ClientID uint16
	ID       uint32
	// Amount is only set on transfers. Claims take the amount of the
	// transfer they reference.
	Amount decimal.Decimal

	claim ClaimState
}

func NewTransfer(kind Kind, clientID uint16, id uint32, amount decimal.Decimal) Transaction {
	return Transaction{Kind: kind, ClientID: clientID, ID: id, Amount: amount}
}

func NewClaim(kind Kind, clientID uint16, id uint32) Transaction {
	return Transaction{Kind: kind, ClientID: clientID, ID: id}
}

// Disputed reports whether the transfer is currently held by an open dispute.
func (t Transaction) Disputed() bool {
	return t.claim == Disputed
}

func (t Transaction) ClaimState() ClaimState {
	return t.claim
}
