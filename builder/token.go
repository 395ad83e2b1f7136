package builder

import (
	"github.com/charmsorg/libcharms-go/charm"
)

// BuildTokenTx constructs a token transaction: one input per entry in
// inputAmounts and one output per entry in outputAmounts, each carrying the
// corresponding U64 amount under the app's tag. The tag must be in the
// "token:" namespace.
func BuildTokenTx(tag string, vkHash [32]byte, inputAmounts, outputAmounts []uint64) (charm.App, *charm.Transaction, error) {
	if err := checkTag(tag, charm.KindToken); err != nil {
		return charm.App{}, nil, err
	}

	inputs := make([]charm.TxInput, len(inputAmounts))
	for i, amount := range inputAmounts {
		inputs[i] = charm.TxInput{
			UTXORef:    charm.UTXORef{Vout: uint32(i)},
			CharmState: charm.NewCharmState().WithApp(tag, charm.U64(amount)),
		}
	}

	outputs := make([]charm.TxOutput, len(outputAmounts))
	for i, amount := range outputAmounts {
		lock, err := lockingScriptFor(tag, uint32(i))
		if err != nil {
			return charm.App{}, nil, err
		}
		outputs[i] = charm.TxOutput{
			Index:        uint32(i),
			Value:        DustValue,
			ScriptPubkey: lock,
			CharmState:   charm.NewCharmState().WithApp(tag, charm.U64(amount)),
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
