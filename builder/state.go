package builder

import (
	"github.com/charmsorg/libcharms-go/charm"
)

// BuildEscrowTx constructs an escrow transition transaction. currentState is
// nil for contract creation, otherwise the transaction spends one input
// carrying the current state; the single output carries nextState and the
// payout amount. The tag must be in the "escrow:" namespace.
func BuildEscrowTx(tag string, vkHash [32]byte, currentState *uint64, nextState uint64, payout uint64) (charm.App, *charm.Transaction, error) {
	if err := checkTag(tag, charm.KindEscrow); err != nil {
		return charm.App{}, nil, err
	}
	return buildStateTx(tag, vkHash, currentState, nextState, payout)
}

// BuildBountyTx constructs a bounty transition transaction with the same
// shape as BuildEscrowTx. The tag must be in the "bounty:" namespace.
func BuildBountyTx(tag string, vkHash [32]byte, currentState *uint64, nextState uint64, payout uint64) (charm.App, *charm.Transaction, error) {
	if err := checkTag(tag, charm.KindBounty); err != nil {
		return charm.App{}, nil, err
	}
	return buildStateTx(tag, vkHash, currentState, nextState, payout)
}

func buildStateTx(tag string, vkHash [32]byte, currentState *uint64, nextState uint64, payout uint64) (charm.App, *charm.Transaction, error) {
	var inputs []charm.TxInput
	if currentState != nil {
		inputs = append(inputs, charm.TxInput{
			UTXORef:    charm.UTXORef{Vout: 0},
			CharmState: charm.NewCharmState().WithApp(tag, charm.U64(*currentState)),
		})
	}

	lock, err := lockingScriptFor(tag, 0)
	if err != nil {
		return charm.App{}, nil, err
	}
	outputs := []charm.TxOutput{{
		Index:        0,
		Value:        payout,
		ScriptPubkey: lock,
		CharmState:   charm.NewCharmState().WithApp(tag, charm.U64(nextState)),
	}}

	txid, err := assembleTxID(inputs, outputs)
	if err != nil {
		return charm.App{}, nil, err
	}

	tx := charm.NewTransaction(txid)
	tx.Inputs = inputs
	tx.Outputs = outputs
	return charm.NewApp(tag, vkHash), tx, nil
}
