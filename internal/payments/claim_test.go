package payments

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransition(t *testing.T) {
	tests := []struct {
		name    string
		from    ClaimState
		kind    Kind
		want    ClaimState
		wantErr bool
	}{
		{name: "dispute unclaimed", from: Unclaimed, kind: Dispute, want: Disputed},
		{name: "resolve disputed", from: Disputed, kind: Resolve, want: Unclaimed},
		{name: "chargeback disputed", from: Disputed, kind: Chargeback, want: ChargedBack},

		{name: "resolve unclaimed", from: Unclaimed, kind: Resolve, wantErr: true},
		{name: "chargeback unclaimed", from: Unclaimed, kind: Chargeback, wantErr: true},
		{name: "dispute disputed", from: Disputed, kind: Dispute, wantErr: true},
		{name: "dispute charged back", from: ChargedBack, kind: Dispute, wantErr: true},
		{name: "resolve charged back", from: ChargedBack, kind: Resolve, wantErr: true},
		{name: "chargeback charged back", from: ChargedBack, kind: Chargeback, wantErr: true},
		{name: "deposit is not a claim", from: Unclaimed, kind: Deposit, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Transition(tt.from, tt.kind)

			if tt.wantErr {
				require.ErrorIs(t, err, RejectInvalidClaim)
				assert.Equal(t, tt.from, got)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClaimState_String(t *testing.T) {
	assert.Equal(t, "unclaimed", Unclaimed.String())
	assert.Equal(t, "disputed", Disputed.String())
	assert.Equal(t, "charged_back", ChargedBack.String())
}
