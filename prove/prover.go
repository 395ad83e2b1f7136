// Package prove wraps check results with deterministic commitment hashes,
// standing in for a real proving system. Commitments are byte-for-byte
// reproducible from (verification key, txid, result) and carry no
// cryptographic soundness claim beyond that determinism.
package prove

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"

	bsvhash "github.com/bsv-blockchain/go-sdk/primitives/hash"
	"golang.org/x/crypto/hkdf"

	"github.com/charmsorg/libcharms-go/spell"
)

// commitmentInfo is the HKDF info string binding derived keys to this layer.
const commitmentInfo = "charms-spell-commitment"

// commitmentKeyLen is the length of the derived commitment key in bytes.
const commitmentKeyLen = 32

// Proof is a commitment over one check result.
type Proof struct {
	TxID       [32]byte          // transaction the result was computed for
	Commitment []byte            // 32-byte commitment hash
	Result     spell.CheckResult // the committed result
}

// CommitmentHex returns the commitment as a lower-case hex string.
func (p *Proof) CommitmentHex() string {
	return hex.EncodeToString(p.Commitment)
}

// Prover produces commitments under an injected verification key. The key is
// configuration passed in at construction, never package-level state.
type Prover struct {
	vk [32]byte
}

// NewProver creates a prover committed to the given verification key hash.
func NewProver(vkHash [32]byte) *Prover {
	return &Prover{vk: vkHash}
}

// Prove commits to a check result. The commitment key is derived with
// HKDF-SHA256 from the verification key salted by the txid; the commitment
// is SHA-256 over the key followed by the canonical JSON encoding of the
// result. Identical inputs always produce identical proofs.
func (p *Prover) Prove(txID [32]byte, result *spell.CheckResult) (*Proof, error) {
	if result == nil {
		return nil, ErrNilResult
	}

	payload, err := json.Marshal(result)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncodeResult, err)
	}

	key, err := p.commitmentKey(txID)
	if err != nil {
		return nil, err
	}

	commitment := bsvhash.Sha256(append(key, payload...))

	return &Proof{
		TxID:       txID,
		Commitment: commitment,
		Result:     *result,
	}, nil
}

// Verify recomputes the commitment for the proof's result and reports
// whether it matches. A proof produced under a different verification key,
// or carrying a tampered result, does not verify.
func (p *Prover) Verify(proof *Proof) bool {
	if proof == nil {
		return false
	}
	recomputed, err := p.Prove(proof.TxID, &proof.Result)
	if err != nil {
		return false
	}
	return bytes.Equal(recomputed.Commitment, proof.Commitment)
}

// commitmentKey derives the per-transaction commitment key.
func (p *Prover) commitmentKey(txID [32]byte) ([]byte, error) {
	r := hkdf.New(sha256.New, p.vk[:], txID[:], []byte(commitmentInfo))
	key := make([]byte, commitmentKeyLen)
	if _, err := io.ReadFull(r, key); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDeriveKey, err)
	}
	return key, nil
}
