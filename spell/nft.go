package spell

import (
	"encoding/hex"
	"fmt"

	"github.com/charmsorg/libcharms-go/charm"
)

// CheckNFT verifies the non-fungible item rules for app against tx.
//
// Ids are the Bytes values stored under the app's tag, collected in
// first-seen order and compared by their hex encoding. An id appearing more
// than once among the outputs is a duplicate. An output id absent from the
// inputs is a mint, which requires non-Empty public auxiliary data.
func CheckNFT(app charm.App, tx *charm.Transaction, x, _ charm.Data) CheckResult {
	var errs []string

	inputIDs := collectNFTIDs(inputStates(tx), app.Tag)
	outputIDs := collectNFTIDs(outputStates(tx), app.Tag)

	var duplicates []string
	seen := make(map[string]struct{}, len(outputIDs))
	for _, id := range outputIDs {
		if _, dup := seen[id]; dup {
			duplicates = append(duplicates, id)
			errs = append(errs, fmt.Sprintf("Duplicate NFT in outputs: %s", id))
			continue
		}
		seen[id] = struct{}{}
	}

	minted := make(map[string]struct{}, len(inputIDs))
	for _, id := range inputIDs {
		minted[id] = struct{}{}
	}
	for _, id := range outputIDs {
		if _, fromInput := minted[id]; fromInput {
			continue
		}
		if charm.IsEmpty(x) {
			errs = append(errs, fmt.Sprintf("NFT mint without authorization: %s", id))
		}
	}

	return CheckResult{
		Valid:         len(errs) == 0,
		Type:          AppTypeNFT,
		NFTIDs:        outputIDs,
		DuplicateNFTs: duplicates,
		Errors:        errs,
	}
}

// collectNFTIDs gathers the hex-encoded Bytes values stored under tag across
// the given charm states, preserving first-seen order. Duplicate occurrences
// are kept; the checker decides what they mean.
func collectNFTIDs(states []*charm.CharmState, tag string) []string {
	var ids []string
	for _, s := range states {
		if b, ok := charm.AsBytes(s.Get(tag)); ok {
			ids = append(ids, hex.EncodeToString(b))
		}
	}
	return ids
}
