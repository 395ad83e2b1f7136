// Package builder constructs synthetic Charms transactions: {app,
// transaction} pairs with well-formed structure (correct tag namespace,
// 32-byte hashes, P2PKH locking scripts, dust output values) embedding
// before/after application state. Builders guarantee syntactic validity
// only; whether the produced transaction passes its checker is for the
// caller to verify.
package builder

import (
	"crypto/sha256"
	"encoding/binary"
	"fmt"

	"github.com/bsv-blockchain/go-sdk/chainhash"
	"github.com/bsv-blockchain/go-sdk/script"
	"github.com/bsv-blockchain/go-sdk/transaction"

	"github.com/charmsorg/libcharms-go/charm"
)

// DustValue is the satoshi value carried by synthetic charm outputs.
const DustValue uint64 = 546

// checkTag validates that tag is non-empty and parses to the expected
// application kind.
func checkTag(tag string, want charm.AppKind) error {
	if tag == "" {
		return ErrEmptyTag
	}
	if charm.ParseAppKind(tag) != want {
		return fmt.Errorf("%w: %q is not %s", ErrWrongNamespace, tag, want)
	}
	return nil
}

// lockingScriptFor builds a deterministic P2PKH locking script for a
// synthetic output slot. The key hash is derived from the tag and slot index
// so distinct slots lock to distinct placeholder addresses.
func lockingScriptFor(tag string, index uint32) ([]byte, error) {
	seed := make([]byte, 0, len(tag)+4)
	seed = append(seed, tag...)
	seed = binary.BigEndian.AppendUint32(seed, index)
	digest := sha256.Sum256(seed)

	s := &script.Script{}
	if err := s.AppendOpcodes(script.OpDUP); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScriptBuild, err)
	}
	if err := s.AppendOpcodes(script.OpHASH160); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScriptBuild, err)
	}
	if err := s.AppendPushData(digest[:20]); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScriptBuild, err)
	}
	if err := s.AppendOpcodes(script.OpEQUALVERIFY); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScriptBuild, err)
	}
	if err := s.AppendOpcodes(script.OpCHECKSIG); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScriptBuild, err)
	}
	return s.Bytes(), nil
}

// assembleTxID mirrors the synthetic inputs and outputs into a skeleton
// Bitcoin transaction and hashes it, so synthetic txids are deterministic
// functions of the built structure rather than a shared constant.
func assembleTxID(inputs []charm.TxInput, outputs []charm.TxOutput) ([32]byte, error) {
	var txid [32]byte

	tx := transaction.NewTransaction()
	for _, in := range inputs {
		src, err := chainhash.NewHash(in.UTXORef.TxID[:])
		if err != nil {
			return txid, fmt.Errorf("%w: source txid: %w", ErrAssembleTx, err)
		}
		tx.AddInput(&transaction.TransactionInput{
			SourceTXID:       src,
			SourceTxOutIndex: in.UTXORef.Vout,
			SequenceNumber:   0xffffffff,
		})
	}
	for _, out := range outputs {
		tx.AddOutput(&transaction.TransactionOutput{
			LockingScript: script.NewFromBytes(out.ScriptPubkey),
			Satoshis:      out.Value,
		})
	}

	id := tx.TxID()
	copy(txid[:], id[:])
	return txid, nil
}
