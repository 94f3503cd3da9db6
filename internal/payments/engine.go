package payments

import (
	"errors"
	"fmt"
	"sort"
)

// Auditor receives every transaction the engine ignored and the reason.
type Auditor interface {
	Rejected(tx Transaction, reason Rejection)
}

// AuditorFunc adapts a plain function to Auditor.
type AuditorFunc func(tx Transaction, reason Rejection)

func (f AuditorFunc) Rejected(tx Transaction, reason Rejection) { f(tx, reason) }

type Option func(*Engine)

func WithAuditor(a Auditor) Option {
	return func(e *Engine) { e.auditor = a }
}

// WithFreezeLocked makes deposits and withdrawals on a locked account fail.
// Without it the locked flag is informational only.
func WithFreezeLocked(freeze bool) Option {
	return func(e *Engine) { e.freezeLocked = freeze }
}

type Stats struct {
	Processed int
	Applied   int
	Rejected  int
}

// Engine owns the account table and the history of recorded transfers.
// It is not safe for concurrent use: records must be executed one at a
// time in input order.
type Engine struct {
	accounts     map[uint16]*Account
	history      map[uint32]*Transaction
	auditor      Auditor
	freezeLocked bool
	stats        Stats
}

func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		accounts: make(map[uint16]*Account),
		history:  make(map[uint32]*Transaction),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Execute applies one transaction. Business rule refusals are reported to
// the auditor and return nil; only ErrUnknownKind is returned.
func (e *Engine) Execute(tx Transaction) error {
	var err error
	switch {
	case tx.Kind.IsTransfer():
		err = e.transfer(tx)
	case tx.Kind.IsClaim():
		err = e.claim(tx)
	default:
		return fmt.Errorf("%w: %s (client %d, tx %d)", ErrUnknownKind, tx.Kind, tx.ClientID, tx.ID)
	}

	e.stats.Processed++

	var reason Rejection
	if errors.As(err, &reason) {
		e.stats.Rejected++
		if e.auditor != nil {
			e.auditor.Rejected(tx, reason)
		}
		return nil
	}
	if err != nil {
		return err
	}

	e.stats.Applied++
	return nil
}

func (e *Engine) transfer(tx Transaction) error {
	acc := e.account(tx.ClientID)

	if _, seen := e.history[tx.ID]; seen {
		return RejectDuplicate
	}
	if e.freezeLocked && acc.Locked {
		return RejectAccountLocked
	}

	switch tx.Kind {
	case Deposit:
		acc.Deposit(tx.Amount)
	case Withdrawal:
		if !acc.Withdraw(tx.Amount) {
			return RejectInsufficientFunds
		}
	}

	record := tx
	record.claim = Unclaimed
	e.history[tx.ID] = &record
	return nil
}

func (e *Engine) claim(tx Transaction) error {
	record, ok := e.history[tx.ID]
	if !ok {
		return RejectUnknownTransaction
	}
	if record.ClientID != tx.ClientID {
		return RejectClientMismatch
	}

	next, err := Transition(record.claim, tx.Kind)
	if err != nil {
		return err
	}

	// The flag moves before the account is touched and stays moved when the
	// guarded operation below refuses the amount.
	record.claim = next

	acc := e.accounts[record.ClientID]
	amount := record.Amount

	switch tx.Kind {
	case Dispute:
		if !acc.Dispute(amount) {
			return RejectInsufficientAvail
		}
	case Resolve:
		if !acc.Resolve(amount) {
			return RejectInsufficientHeld
		}
	case Chargeback:
		if !acc.Chargeback(amount) {
			// dispute cleared, nothing charged back
			record.claim = Unclaimed
			return RejectInsufficientHeld
		}
	}

	return nil
}

func (e *Engine) account(id uint16) *Account {
	acc, ok := e.accounts[id]
	if !ok {
		acc = NewAccount(id)
		e.accounts[id] = acc
	}
	return acc
}

// Account returns a copy of the client's account.
func (e *Engine) Account(id uint16) (Account, bool) {
	acc, ok := e.accounts[id]
	if !ok {
		return Account{}, false
	}
	return *acc, true
}

// Accounts returns a copy of every account ordered by client id.
func (e *Engine) Accounts() []Account {
	out := make([]Account, 0, len(e.accounts))
	for _, acc := range e.accounts {
		out = append(out, *acc)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Lookup returns a copy of a recorded transfer.
func (e *Engine) Lookup(id uint32) (Transaction, bool) {
	record, ok := e.history[id]
	if !ok {
		return Transaction{}, false
	}
	return *record, true
}

func (e *Engine) Stats() Stats {
	return e.stats
}
