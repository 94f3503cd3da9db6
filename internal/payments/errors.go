package payments

import "errors"

// ErrUnknownKind means a record reached the engine with a kind outside the
// closed set. It points at a bug in the input source and aborts the run.
var ErrUnknownKind = errors.New("unknown transaction kind")

// Rejection is a business rule refusal. The transaction is ignored and the
// ledger is left untouched; the run continues.
type Rejection string

func (r Rejection) Error() string { return string(r) }

const (
	RejectInsufficientFunds  Rejection = "insufficient funds"
	RejectUnknownTransaction Rejection = "unknown transaction"
	RejectDuplicate          Rejection = "transaction already recorded"
	RejectClientMismatch     Rejection = "client mismatch"
	RejectInvalidClaim       Rejection = "invalid claim transition"
	RejectInsufficientAvail  Rejection = "insufficient available"
	RejectInsufficientHeld   Rejection = "insufficient held"
	RejectAccountLocked      Rejection = "account locked"
)

// IsRejection reports whether err is a business rule refusal.
func IsRejection(err error) bool {
	var r Rejection
	return errors.As(err, &r)
}
