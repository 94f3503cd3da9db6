package payments

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKind(t *testing.T) {
	tests := map[string]Kind{
		"deposit":      Deposit,
		"DEPOSIT":      Deposit,
		" Withdrawal ": Withdrawal,
		"dispute":      Dispute,
		"Resolve":      Resolve,
		"chargeBack":   Chargeback,
	}

	for in, want := range tests {
		got, err := ParseKind(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseKind("refund")
	assert.Error(t, err)

	_, err = ParseKind("")
	assert.Error(t, err)
}

func TestKind_Classes(t *testing.T) {
	assert.True(t, Deposit.IsTransfer())
	assert.True(t, Withdrawal.IsTransfer())
	assert.False(t, Dispute.IsTransfer())

	assert.True(t, Dispute.IsClaim())
	assert.True(t, Resolve.IsClaim())
	assert.True(t, Chargeback.IsClaim())
	assert.False(t, Deposit.IsClaim())

	assert.False(t, Kind(0).IsTransfer())
	assert.False(t, Kind(0).IsClaim())
	assert.Equal(t, "kind(0)", Kind(0).String())
	assert.Equal(t, "withdrawal", Withdrawal.String())
}
