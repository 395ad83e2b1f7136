// Package spell implements the Charms spell verification engine: a
// dispatcher that routes a (app, transaction, auxiliary, witness) request to
// the checker for the application's namespace, and the per-application
// checkers themselves. Every operation is a pure function of its inputs;
// domain violations are accumulated as data in the CheckResult, never raised
// as errors.
package spell

// AppType labels which rule set produced a check result.
type AppType string

const (
	// AppTypeToken is the fungible token checker.
	AppTypeToken AppType = "token"

	// AppTypeNFT is the non-fungible item checker.
	AppTypeNFT AppType = "nft"

	// AppTypeEscrow is the escrow state machine checker.
	AppTypeEscrow AppType = "escrow"

	// AppTypeBounty is the bounty state machine checker.
	AppTypeBounty AppType = "bounty"

	// AppTypeStablecoin is the bollar collateralized stablecoin checker.
	AppTypeStablecoin AppType = "stablecoin"

	// AppTypeUnknown is any namespace with no registered checker.
	AppTypeUnknown AppType = "unknown"
)

// CheckResult is the outcome of verifying one spell against one application.
// Valid is true exactly when Errors is empty. The optional detail fields are
// populated by whichever checker ran: sums and mint/burn flags by the token
// and stablecoin checkers, state names by the escrow and bounty checkers,
// id lists by the NFT checker.
type CheckResult struct {
	Valid                bool     `json:"valid"`
	Type                 AppType  `json:"spell_type"`
	InputSum             *uint64  `json:"input_sum,omitempty"`
	OutputSum            *uint64  `json:"output_sum,omitempty"`
	IsMint               *bool    `json:"is_mint,omitempty"`
	IsBurn               *bool    `json:"is_burn,omitempty"`
	CurrentState         string   `json:"current_state,omitempty"`
	NextState            string   `json:"next_state,omitempty"`
	StateTransitionValid *bool    `json:"state_transition_valid,omitempty"`
	NFTIDs               []string `json:"nft_ids,omitempty"`
	DuplicateNFTs        []string `json:"duplicate_nfts,omitempty"`
	Errors               []string `json:"errors"`
}

func u64ptr(v uint64) *uint64 { return &v }
func boolptr(v bool) *bool    { return &v }
