package payments

// ClaimState tracks where a recorded transfer is in the dispute lifecycle.
//
//	Unclaimed --dispute--> Disputed --resolve--> Unclaimed
//	Disputed --chargeback--> ChargedBack
type ClaimState uint8

const (
	Unclaimed ClaimState = iota
	Disputed
	ChargedBack
)

func (s ClaimState) String() string {
	switch s {
	case Unclaimed:
		return "unclaimed"
	case Disputed:
		return "disputed"
	case ChargedBack:
		return "charged_back"
	default:
		return "unknown"
	}
}

var claimTransitions = map[ClaimState]map[Kind]ClaimState{
	Unclaimed: {Dispute: Disputed},
	Disputed:  {Resolve: Unclaimed, Chargeback: ChargedBack},
}

// Transition returns the state a claim of the given kind moves a transfer
// into. Disputing an already disputed transfer is rejected so a hold is
// never placed twice.
func Transition(from ClaimState, kind Kind) (ClaimState, error) {
	next, ok := claimTransitions[from][kind]
	if !ok {
		return from, RejectInvalidClaim
	}
	return next, nil
}
