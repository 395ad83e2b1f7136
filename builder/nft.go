package builder

import (
	"github.com/charmsorg/libcharms-go/charm"
)

// BuildNFTTx constructs an NFT transaction: one input per id in inputIDs and
// one output per id in outputIDs, each carrying the id as a Bytes value
// under the app's tag. The tag must be in the "nft:" namespace. Output ids
// not present among the inputs describe mints; the builder does not attach
// mint authorization, the caller supplies it at check time.
func BuildNFTTx(tag string, vkHash [32]byte, inputIDs, outputIDs [][]byte) (charm.App, *charm.Transaction, error) {
	if err := checkTag(tag, charm.KindNFT); err != nil {
		return charm.App{}, nil, err
	}

	inputs := make([]charm.TxInput, len(inputIDs))
	for i, id := range inputIDs {
		inputs[i] = charm.TxInput{
			UTXORef:    charm.UTXORef{Vout: uint32(i)},
			CharmState: charm.NewCharmState().WithApp(tag, charm.Bytes(id)),
		}
	}

	outputs := make([]charm.TxOutput, len(outputIDs))
	for i, id := range outputIDs {
		lock, err := lockingScriptFor(tag, uint32(i))
		if err != nil {
			return charm.App{}, nil, err
		}
		outputs[i] = charm.TxOutput{
			Index:        uint32(i),
			Value:        DustValue,
			ScriptPubkey: lock,
			CharmState:   charm.NewCharmState().WithApp(tag, charm.Bytes(id)),
		}
	}

	txid, err := assembleTxID(inputs, outputs)
	if err != nil {
		return charm.App{}, nil, err
	}

	tx := charm.NewTransaction(txid)
	tx.Inputs = inputs
	tx.Outputs = outputs
	return charm.NewApp(tag, vkHash), tx, nil
}
