package charm

import "strings"

// AppKind identifies which rule set governs an application. It is parsed
// once from the tag namespace so checker dispatch is an exhaustive switch
// instead of repeated string tests.
type AppKind int

const (
	// KindUnknown is any namespace the engine has no checker for.
	KindUnknown AppKind = iota

	// KindToken is a fungible token governed by the conservation rules.
	KindToken

	// KindNFT is a non-fungible item governed by uniqueness rules.
	KindNFT

	// KindEscrow is an escrow contract governed by its state machine.
	KindEscrow

	// KindBounty is a bounty contract governed by its state machine.
	KindBounty

	// KindBollar is the collateralized stablecoin (token rules relabeled).
	KindBollar
)

// String returns the namespace prefix for the kind, without the colon.
func (k AppKind) String() string {
	switch k {
	case KindToken:
		return "token"
	case KindNFT:
		return "nft"
	case KindEscrow:
		return "escrow"
	case KindBounty:
		return "bounty"
	case KindBollar:
		return "bollar"
	}
	return "unknown"
}

// ParseAppKind extracts the namespace prefix of tag (everything before the
// first colon, matched case-insensitively) and maps it to an AppKind.
// A tag without a colon, or with an unrecognized namespace, is KindUnknown.
func ParseAppKind(tag string) AppKind {
	ns, _, found := strings.Cut(tag, ":")
	if !found {
		return KindUnknown
	}
	switch strings.ToLower(ns) {
	case "token":
		return KindToken
	case "nft":
		return KindNFT
	case "escrow":
		return KindEscrow
	case "bounty":
		return KindBounty
	case "bollar":
		return KindBollar
	}
	return KindUnknown
}

// App identifies a Charms application: a namespaced tag selecting the rule
// set, the hash of the application's verification key, and app-specific
// parameters.
type App struct {
	Tag    string   // namespaced identifier, e.g. "escrow:contract-1"
	VKHash [32]byte // verification key hash
	Params Data     // application parameters, Empty if unused
}

// NewApp creates an App with empty parameters.
func NewApp(tag string, vkHash [32]byte) App {
	return App{Tag: tag, VKHash: vkHash, Params: Empty{}}
}

// WithParams returns a copy of the app carrying the given parameters.
func (a App) WithParams(params Data) App {
	a.Params = params
	return a
}

// Kind returns the checker namespace parsed from the tag.
func (a App) Kind() AppKind {
	return ParseAppKind(a.Tag)
}

// Validate checks that the app identity is structurally well-formed.
func (a App) Validate() error {
	if a.Tag == "" {
		return ErrEmptyTag
	}
	return nil
}
