package payments

import (
	"fmt"
	"strings"
)

// Kind is the operation a transaction record requests.
type Kind uint8

const (
	Deposit Kind = iota + 1
	Withdrawal
	Dispute
	Resolve
	Chargeback
)

var kindNames = map[Kind]string{
	Deposit:    "deposit",
	Withdrawal: "withdrawal",
	Dispute:    "dispute",
	Resolve:    "resolve",
	Chargeback: "chargeback",
}

func ParseKind(s string) (Kind, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for k, n := range kindNames {
		if n == name {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown transaction type '%s'", s)
}

func (k Kind) String() string {
	if n, ok := kindNames[k]; ok {
		return n
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// IsTransfer reports whether k moves funds in or out of an account.
func (k Kind) IsTransfer() bool {
	return k == Deposit || k == Withdrawal
}

// IsClaim reports whether k refers back to a recorded transfer.
func (k Kind) IsClaim() bool {
	return k == Dispute || k == Resolve || k == Chargeback
}
