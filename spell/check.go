package spell

import (
	"fmt"

	"github.com/charmsorg/libcharms-go/charm"
)

// Check verifies that tx is a legal state transition for app. x is public
// auxiliary data (authorization material), w is private witness data; a nil
// value for either defaults to Empty. The application's namespace selects
// the checker; a namespace with no checker yields an unknown-type failure
// naming the tag.
func Check(app charm.App, tx *charm.Transaction, x, w charm.Data) CheckResult {
	if x == nil {
		x = charm.Empty{}
	}
	if w == nil {
		w = charm.Empty{}
	}
	switch app.Kind() {
	case charm.KindToken:
		return CheckToken(app, tx, x, w)
	case charm.KindNFT:
		return CheckNFT(app, tx, x, w)
	case charm.KindEscrow:
		return CheckEscrow(app, tx, x, w)
	case charm.KindBounty:
		return CheckBounty(app, tx, x, w)
	case charm.KindBollar:
		return CheckBollar(app, tx, x, w)
	case charm.KindUnknown:
	}
	return CheckResult{
		Valid:  false,
		Type:   AppTypeUnknown,
		Errors: []string{fmt.Sprintf("Unknown app type: %s", app.Tag)},
	}
}

// firstStateValue returns the first U64 value stored under tag across the
// given charm states, in order. The second return is false if no input or
// output carries one.
func firstStateValue(states []*charm.CharmState, tag string) (uint64, bool) {
	for _, s := range states {
		if v, ok := charm.AsU64(s.Get(tag)); ok {
			return v, true
		}
	}
	return 0, false
}

// inputStates returns the charm states of all transaction inputs, including
// nils for inputs that carry none.
func inputStates(tx *charm.Transaction) []*charm.CharmState {
	states := make([]*charm.CharmState, len(tx.Inputs))
	for i := range tx.Inputs {
		states[i] = tx.Inputs[i].CharmState
	}
	return states
}

// outputStates returns the charm states of all transaction outputs.
func outputStates(tx *charm.Transaction) []*charm.CharmState {
	states := make([]*charm.CharmState, len(tx.Outputs))
	for i := range tx.Outputs {
		states[i] = tx.Outputs[i].CharmState
	}
	return states
}
