package spell

import (
	"fmt"

	"github.com/charmsorg/libcharms-go/charm"
)

// Escrow lifecycle states. Values at or above escrowMilestoneBase are
// milestone sub-states: value 100+n means "executing milestone n".
const (
	EscrowCreated  uint64 = 0
	EscrowFunded   uint64 = 1
	EscrowReleased uint64 = 2
	EscrowDisputed uint64 = 3
	EscrowRefunded uint64 = 4

	escrowMilestoneBase uint64 = 100
)

var escrowStateNames = [...]string{"Created", "Funded", "Released", "Disputed", "Refunded"}

// CheckEscrow verifies an escrow state transition for app against tx.
//
// The current state is the first U64 found under the app's tag on an input,
// the next state the first found on an output; either side may be absent.
// The transition must be in the escrow table, or enter a milestone from
// Funded, or release from a milestone.
func CheckEscrow(app charm.App, tx *charm.Transaction, _, _ charm.Data) CheckResult {
	var errs []string

	current, hasCurrent := firstStateValue(inputStates(tx), app.Tag)
	next, hasNext := firstStateValue(outputStates(tx), app.Tag)

	ok := validEscrowTransition(current, hasCurrent, next, hasNext)
	if !ok {
		errs = append(errs, fmt.Sprintf("Invalid escrow transition: %s -> %s",
			escrowStateName(current, hasCurrent), escrowStateName(next, hasNext)))
	}

	return CheckResult{
		Valid:                len(errs) == 0,
		Type:                 AppTypeEscrow,
		CurrentState:         escrowStateName(current, hasCurrent),
		NextState:            escrowStateName(next, hasNext),
		StateTransitionValid: boolptr(ok),
		Errors:               errs,
	}
}

func validEscrowTransition(current uint64, hasCurrent bool, next uint64, hasNext bool) bool {
	if !hasNext {
		return false
	}
	if !hasCurrent {
		return next == EscrowCreated
	}
	switch {
	case current == EscrowCreated && next == EscrowFunded,
		current == EscrowFunded && next == EscrowReleased,
		current == EscrowFunded && next == EscrowDisputed,
		current == EscrowDisputed && next == EscrowRefunded,
		current == EscrowDisputed && next == EscrowReleased:
		return true
	case current == EscrowFunded && next >= escrowMilestoneBase:
		return true // entering a milestone
	case current >= escrowMilestoneBase && next == EscrowReleased:
		return true // completing a milestone, then releasing
	}
	return false
}

func escrowStateName(state uint64, has bool) string {
	if !has {
		return "None"
	}
	if state >= escrowMilestoneBase {
		return fmt.Sprintf("Milestone(%d)", state-escrowMilestoneBase)
	}
	if state < uint64(len(escrowStateNames)) {
		return escrowStateNames[state]
	}
	return "None"
}
