package spell

import (
	"fmt"

	"github.com/charmsorg/libcharms-go/charm"
)

// Bounty lifecycle states. Unlike escrow, bounties have no milestone
// sub-states.
const (
	BountyOpen       uint64 = 0
	BountyInProgress uint64 = 1
	BountyCompleted  uint64 = 2
	BountyCancelled  uint64 = 3
	BountyDisputed   uint64 = 4
)

var bountyStateNames = [...]string{"Open", "InProgress", "Completed", "Cancelled", "Disputed"}

// CheckBounty verifies a bounty state transition for app against tx. The
// read pattern is the same as for escrow: first U64 under the app's tag on
// an input is the current state, first on an output the next state.
func CheckBounty(app charm.App, tx *charm.Transaction, _, _ charm.Data) CheckResult {
	var errs []string

	current, hasCurrent := firstStateValue(inputStates(tx), app.Tag)
	next, hasNext := firstStateValue(outputStates(tx), app.Tag)

	ok := validBountyTransition(current, hasCurrent, next, hasNext)
	if !ok {
		errs = append(errs, fmt.Sprintf("Invalid bounty transition: %s -> %s",
			bountyStateName(current, hasCurrent), bountyStateName(next, hasNext)))
	}

	return CheckResult{
		Valid:                len(errs) == 0,
		Type:                 AppTypeBounty,
		CurrentState:         bountyStateName(current, hasCurrent),
		NextState:            bountyStateName(next, hasNext),
		StateTransitionValid: boolptr(ok),
		Errors:               errs,
	}
}

func validBountyTransition(current uint64, hasCurrent bool, next uint64, hasNext bool) bool {
	if !hasNext {
		return false
	}
	if !hasCurrent {
		return next == BountyOpen
	}
	switch {
	case current == BountyOpen && next == BountyInProgress,
		current == BountyInProgress && next == BountyCompleted,
		current == BountyOpen && next == BountyCancelled,
		current == BountyInProgress && next == BountyDisputed,
		current == BountyDisputed && next == BountyCompleted,
		current == BountyDisputed && next == BountyCancelled:
		return true
	}
	return false
}

func bountyStateName(state uint64, has bool) string {
	if !has {
		return "None"
	}
	if state < uint64(len(bountyStateNames)) {
		return bountyStateNames[state]
	}
	return "None"
}
