package spell

import (
	"fmt"
	"math"

	"github.com/charmsorg/libcharms-go/charm"
)

// CheckToken verifies the fungible token rules for app against tx.
//
// Every input and output contributes the U64 value stored under the app's
// tag in its charm state (absent or non-U64 contributes 0). The sums must
// conserve unless the transaction is a mint (no token inputs, positive
// output) or a burn (input exceeds output) carrying non-empty public
// authorization data. An explicit empty byte-string authorization is
// rejected; a wholly absent one is not.
func CheckToken(app charm.App, tx *charm.Transaction, x, _ charm.Data) CheckResult {
	var errs []string

	inputSum, inOK := sumCharmAmounts(inputStates(tx), app.Tag)
	if !inOK {
		errs = append(errs, "Token input sum overflows uint64")
	}
	outputSum, outOK := sumCharmAmounts(outputStates(tx), app.Tag)
	if !outOK {
		errs = append(errs, "Token output sum overflows uint64")
	}

	isMint := inputSum == 0 && outputSum > 0
	isBurn := inputSum > outputSum
	authorized := !charm.IsEmpty(x)

	if inOK && outOK && inputSum != outputSum {
		if !isMint && !(isBurn && authorized) {
			errs = append(errs, fmt.Sprintf("Token conservation failed: input=%d != output=%d",
				inputSum, outputSum))
		}
	}

	if b, ok := charm.AsBytes(x); ok && len(b) == 0 {
		errs = append(errs, "Empty authorization data")
	}

	return CheckResult{
		Valid:     len(errs) == 0,
		Type:      AppTypeToken,
		InputSum:  u64ptr(inputSum),
		OutputSum: u64ptr(outputSum),
		IsMint:    boolptr(isMint),
		IsBurn:    boolptr(isBurn),
		Errors:    errs,
	}
}

// CheckBollar verifies the bollar stablecoin rules: conservation, mint and
// burn exactly as for fungible tokens, relabeled as a stablecoin result.
// Collateral-ratio policy is enforced by the caller, not the engine.
func CheckBollar(app charm.App, tx *charm.Transaction, x, w charm.Data) CheckResult {
	result := CheckToken(app, tx, x, w)
	result.Type = AppTypeStablecoin
	return result
}

// sumCharmAmounts sums the U64 values stored under tag across the given
// charm states. On overflow it saturates at MaxUint64 and returns false.
func sumCharmAmounts(states []*charm.CharmState, tag string) (uint64, bool) {
	var sum uint64
	ok := true
	for _, s := range states {
		v, isU64 := charm.AsU64(s.Get(tag))
		if !isU64 {
			continue
		}
		if v > math.MaxUint64-sum {
			sum = math.MaxUint64
			ok = false
			continue
		}
		sum += v
	}
	return sum, ok
}
