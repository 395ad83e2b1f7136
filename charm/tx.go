package charm

// UTXORef identifies a transaction output by the id of the transaction that
// created it and the output index within that transaction.
type UTXORef struct {
	TxID [32]byte
	Vout uint32
}

// CharmState is the per-application state attached to one transaction input
// or output: a map from application tag to that application's value. A
// missing tag means the application has no state at that input or output.
type CharmState struct {
	Apps map[string]Data
}

// NewCharmState creates an empty charm state.
func NewCharmState() *CharmState {
	return &CharmState{Apps: make(map[string]Data)}
}

// WithApp sets the state for an application tag and returns the state for
// chaining.
func (s *CharmState) WithApp(tag string, d Data) *CharmState {
	if s.Apps == nil {
		s.Apps = make(map[string]Data)
	}
	s.Apps[tag] = d
	return s
}

// Get returns the state for an application tag, or nil if absent. A nil
// receiver has no state for any tag.
func (s *CharmState) Get(tag string) Data {
	if s == nil {
		return nil
	}
	return s.Apps[tag]
}

// TxInput is a transaction input: the UTXO being spent and the charm state
// it carried, if any.
type TxInput struct {
	UTXORef    UTXORef
	CharmState *CharmState // nil if the input carries no charm state
}

// TxOutput is a transaction output with its charm state, if any.
type TxOutput struct {
	Index        uint32
	Value        uint64 // satoshis
	ScriptPubkey []byte
	CharmState   *CharmState // nil if the output carries no charm state
}

// Transaction is a Bitcoin transaction in the Charms context. Checkers treat
// it as an immutable value; nothing in the engine mutates it.
type Transaction struct {
	TxID    [32]byte
	Inputs  []TxInput
	Outputs []TxOutput
}

// NewTransaction creates a transaction with no inputs or outputs.
func NewTransaction(txid [32]byte) *Transaction {
	return &Transaction{TxID: txid}
}

// AddInput appends an input.
func (t *Transaction) AddInput(in TxInput) {
	t.Inputs = append(t.Inputs, in)
}

// AddOutput appends an output.
func (t *Transaction) AddOutput(out TxOutput) {
	t.Outputs = append(t.Outputs, out)
}

// SpellInput is one input of a normalized spell.
type SpellInput struct {
	UTXORef UTXORef
	Charms  *CharmState // nil if no state is declared for this input
}

// SpellOutput is one output of a normalized spell.
type SpellOutput struct {
	Index  uint32
	Charms *CharmState // nil if no state is declared for this output
}

// NormalizedSpell is the declared manifest of per-application state changes
// across a transaction's inputs and outputs, checked for well-formedness
// before any per-application checker runs.
type NormalizedSpell struct {
	Version uint32
	Ins     []SpellInput
	Outs    []SpellOutput
}

// NewNormalizedSpell creates a spell with the given protocol version.
func NewNormalizedSpell(version uint32) *NormalizedSpell {
	return &NormalizedSpell{Version: version}
}

// Verify reports whether the spell is well-formed: a positive version and at
// least one declared input and output.
func (s *NormalizedSpell) Verify() bool {
	return s != nil && s.Version > 0 && len(s.Ins) > 0 && len(s.Outs) > 0
}
