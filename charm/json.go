package charm

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strconv"
)

// The JSON boundary represents typed values as {"type": "...", "value": ...}
// envelopes, binary fields as lower-case hex strings of even length, and
// 64-bit integers as ordinary JSON numbers parsed without a float64
// round-trip, so amounts above 2^53 keep full precision.

// dataEnvelope is the wire form of a Data value.
type dataEnvelope struct {
	Type  string          `json:"type"`
	Value json.RawMessage `json:"value,omitempty"`
}

// MarshalData encodes a Data value. Map keys are emitted in sorted order so
// the encoding is deterministic.
func MarshalData(d Data) ([]byte, error) {
	env, err := dataToEnvelope(d)
	if err != nil {
		return nil, err
	}
	return json.Marshal(env)
}

func dataToEnvelope(d Data) (dataEnvelope, error) {
	switch v := d.(type) {
	case nil, Empty:
		return dataEnvelope{Type: "Empty"}, nil
	case Bool:
		raw, err := json.Marshal(bool(v))
		return dataEnvelope{Type: "Bool", Value: raw}, err
	case U64:
		return dataEnvelope{Type: "U64", Value: json.RawMessage(strconv.FormatUint(uint64(v), 10))}, nil
	case I64:
		return dataEnvelope{Type: "I64", Value: json.RawMessage(strconv.FormatInt(int64(v), 10))}, nil
	case Bytes:
		raw, err := json.Marshal(hex.EncodeToString(v))
		return dataEnvelope{Type: "Bytes", Value: raw}, err
	case Text:
		raw, err := json.Marshal(string(v))
		return dataEnvelope{Type: "String", Value: raw}, err
	case List:
		elems := make([]json.RawMessage, len(v))
		for i, e := range v {
			raw, err := MarshalData(e)
			if err != nil {
				return dataEnvelope{}, err
			}
			elems[i] = raw
		}
		raw, err := json.Marshal(elems)
		return dataEnvelope{Type: "List", Value: raw}, err
	case Map:
		m := make(map[string]json.RawMessage, len(v))
		for k, e := range v {
			raw, err := MarshalData(e)
			if err != nil {
				return dataEnvelope{}, err
			}
			m[k] = raw
		}
		raw, err := json.Marshal(m) // encoding/json sorts map keys
		return dataEnvelope{Type: "Map", Value: raw}, err
	}
	return dataEnvelope{}, fmt.Errorf("%w: %T", ErrUnknownDataType, d)
}

// UnmarshalData decodes a Data value from its envelope form. An empty or
// missing value is Empty.
func UnmarshalData(b []byte) (Data, error) {
	if len(b) == 0 {
		return Empty{}, nil
	}
	var env dataEnvelope
	if err := json.Unmarshal(b, &env); err != nil {
		return nil, fmt.Errorf("charm: decode data envelope: %w", err)
	}
	switch env.Type {
	case "", "Empty":
		return Empty{}, nil
	case "Bool":
		var v bool
		if err := json.Unmarshal(env.Value, &v); err != nil {
			return nil, fmt.Errorf("%w: Bool: %w", ErrInvalidDataValue, err)
		}
		return Bool(v), nil
	case "U64":
		var n json.Number
		if err := json.Unmarshal(env.Value, &n); err != nil {
			return nil, fmt.Errorf("%w: U64: %w", ErrInvalidDataValue, err)
		}
		v, err := strconv.ParseUint(n.String(), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: U64: %w", ErrInvalidDataValue, err)
		}
		return U64(v), nil
	case "I64":
		var n json.Number
		if err := json.Unmarshal(env.Value, &n); err != nil {
			return nil, fmt.Errorf("%w: I64: %w", ErrInvalidDataValue, err)
		}
		v, err := strconv.ParseInt(n.String(), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: I64: %w", ErrInvalidDataValue, err)
		}
		return I64(v), nil
	case "Bytes":
		var s string
		if err := json.Unmarshal(env.Value, &s); err != nil {
			return nil, fmt.Errorf("%w: Bytes: %w", ErrInvalidDataValue, err)
		}
		raw, err := hex.DecodeString(s)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidHex, err)
		}
		return Bytes(raw), nil
	case "String":
		var s string
		if err := json.Unmarshal(env.Value, &s); err != nil {
			return nil, fmt.Errorf("%w: String: %w", ErrInvalidDataValue, err)
		}
		return Text(s), nil
	case "List":
		var elems []json.RawMessage
		if err := json.Unmarshal(env.Value, &elems); err != nil {
			return nil, fmt.Errorf("%w: List: %w", ErrInvalidDataValue, err)
		}
		out := make(List, len(elems))
		for i, raw := range elems {
			d, err := UnmarshalData(raw)
			if err != nil {
				return nil, err
			}
			out[i] = d
		}
		return out, nil
	case "Map":
		var m map[string]json.RawMessage
		if err := json.Unmarshal(env.Value, &m); err != nil {
			return nil, fmt.Errorf("%w: Map: %w", ErrInvalidDataValue, err)
		}
		out := make(Map, len(m))
		for k, raw := range m {
			d, err := UnmarshalData(raw)
			if err != nil {
				return nil, err
			}
			out[k] = d
		}
		return out, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownDataType, env.Type)
}

// ParseHash decodes a 32-byte hash from a 64-character hex string.
func ParseHash(s string) ([32]byte, error) {
	var h [32]byte
	raw, err := hex.DecodeString(s)
	if err != nil {
		return h, fmt.Errorf("%w: %w", ErrInvalidHex, err)
	}
	if len(raw) != 32 {
		return h, fmt.Errorf("%w: got %d bytes", ErrInvalidTxID, len(raw))
	}
	copy(h[:], raw)
	return h, nil
}

// HashHex encodes a 32-byte hash as a lower-case hex string.
func HashHex(h [32]byte) string {
	return hex.EncodeToString(h[:])
}

// --- App ---

type appJSON struct {
	Tag    string          `json:"tag"`
	VKHash string          `json:"vk_hash"`
	Params json.RawMessage `json:"params,omitempty"`
}

// MarshalJSON implements json.Marshaler.
func (a App) MarshalJSON() ([]byte, error) {
	out := appJSON{Tag: a.Tag, VKHash: hex.EncodeToString(a.VKHash[:])}
	if !IsEmpty(a.Params) {
		raw, err := MarshalData(a.Params)
		if err != nil {
			return nil, err
		}
		out.Params = raw
	}
	return json.Marshal(out)
}

// UnmarshalJSON implements json.Unmarshaler. A vk_hash that does not decode
// to exactly 32 bytes is rejected.
func (a *App) UnmarshalJSON(b []byte) error {
	var in appJSON
	if err := json.Unmarshal(b, &in); err != nil {
		return fmt.Errorf("charm: decode app: %w", err)
	}
	if in.Tag == "" {
		return ErrEmptyTag
	}
	raw, err := hex.DecodeString(in.VKHash)
	if err != nil {
		return fmt.Errorf("%w: vk_hash: %w", ErrInvalidHex, err)
	}
	if len(raw) != 32 {
		return fmt.Errorf("%w: got %d bytes", ErrInvalidVKHash, len(raw))
	}
	a.Tag = in.Tag
	copy(a.VKHash[:], raw)
	a.Params, err = UnmarshalData(in.Params)
	return err
}

// --- CharmState ---

// MarshalJSON implements json.Marshaler.
func (s *CharmState) MarshalJSON() ([]byte, error) {
	apps := make(map[string]json.RawMessage, len(s.Apps))
	for tag, d := range s.Apps {
		raw, err := MarshalData(d)
		if err != nil {
			return nil, err
		}
		apps[tag] = raw
	}
	return json.Marshal(struct {
		Apps map[string]json.RawMessage `json:"apps"`
	}{apps})
}

// UnmarshalJSON implements json.Unmarshaler.
func (s *CharmState) UnmarshalJSON(b []byte) error {
	var in struct {
		Apps map[string]json.RawMessage `json:"apps"`
	}
	if err := json.Unmarshal(b, &in); err != nil {
		return fmt.Errorf("charm: decode charm state: %w", err)
	}
	s.Apps = make(map[string]Data, len(in.Apps))
	for tag, raw := range in.Apps {
		d, err := UnmarshalData(raw)
		if err != nil {
			return err
		}
		s.Apps[tag] = d
	}
	return nil
}

// --- UTXORef ---

type utxoRefJSON struct {
	TxID string `json:"txid"`
	Vout uint32 `json:"vout"`
}

// MarshalJSON implements json.Marshaler.
func (r UTXORef) MarshalJSON() ([]byte, error) {
	return json.Marshal(utxoRefJSON{TxID: hex.EncodeToString(r.TxID[:]), Vout: r.Vout})
}

// UnmarshalJSON implements json.Unmarshaler.
func (r *UTXORef) UnmarshalJSON(b []byte) error {
	var in utxoRefJSON
	if err := json.Unmarshal(b, &in); err != nil {
		return fmt.Errorf("charm: decode utxo ref: %w", err)
	}
	txid, err := ParseHash(in.TxID)
	if err != nil {
		return err
	}
	r.TxID = txid
	r.Vout = in.Vout
	return nil
}

// --- Transaction ---

type txInputJSON struct {
	UTXORef    UTXORef     `json:"utxo_ref"`
	CharmState *CharmState `json:"charm_state,omitempty"`
}

type txOutputJSON struct {
	Index        uint32      `json:"index"`
	Value        uint64      `json:"value"`
	ScriptPubkey string      `json:"script_pubkey"`
	CharmState   *CharmState `json:"charm_state,omitempty"`
}

type transactionJSON struct {
	TxID    string         `json:"txid"`
	Inputs  []txInputJSON  `json:"inputs"`
	Outputs []txOutputJSON `json:"outputs"`
}

// MarshalJSON implements json.Marshaler.
func (in TxInput) MarshalJSON() ([]byte, error) {
	return json.Marshal(txInputJSON{UTXORef: in.UTXORef, CharmState: in.CharmState})
}

// UnmarshalJSON implements json.Unmarshaler.
func (in *TxInput) UnmarshalJSON(b []byte) error {
	var v txInputJSON
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	in.UTXORef = v.UTXORef
	in.CharmState = v.CharmState
	return nil
}

// MarshalJSON implements json.Marshaler.
func (out TxOutput) MarshalJSON() ([]byte, error) {
	return json.Marshal(txOutputJSON{
		Index:        out.Index,
		Value:        out.Value,
		ScriptPubkey: hex.EncodeToString(out.ScriptPubkey),
		CharmState:   out.CharmState,
	})
}

// UnmarshalJSON implements json.Unmarshaler.
func (out *TxOutput) UnmarshalJSON(b []byte) error {
	var v txOutputJSON
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	script, err := hex.DecodeString(v.ScriptPubkey)
	if err != nil {
		return fmt.Errorf("%w: script_pubkey: %w", ErrInvalidHex, err)
	}
	out.Index = v.Index
	out.Value = v.Value
	out.ScriptPubkey = script
	out.CharmState = v.CharmState
	return nil
}

// MarshalJSON implements json.Marshaler.
func (t *Transaction) MarshalJSON() ([]byte, error) {
	v := transactionJSON{
		TxID:    hex.EncodeToString(t.TxID[:]),
		Inputs:  make([]txInputJSON, len(t.Inputs)),
		Outputs: make([]txOutputJSON, len(t.Outputs)),
	}
	for i, in := range t.Inputs {
		v.Inputs[i] = txInputJSON{UTXORef: in.UTXORef, CharmState: in.CharmState}
	}
	for i, out := range t.Outputs {
		v.Outputs[i] = txOutputJSON{
			Index:        out.Index,
			Value:        out.Value,
			ScriptPubkey: hex.EncodeToString(out.ScriptPubkey),
			CharmState:   out.CharmState,
		}
	}
	return json.Marshal(v)
}

// UnmarshalJSON implements json.Unmarshaler.
func (t *Transaction) UnmarshalJSON(b []byte) error {
	var v transactionJSON
	if err := json.Unmarshal(b, &v); err != nil {
		return fmt.Errorf("charm: decode transaction: %w", err)
	}
	txid, err := ParseHash(v.TxID)
	if err != nil {
		return err
	}
	t.TxID = txid
	t.Inputs = make([]TxInput, len(v.Inputs))
	for i, in := range v.Inputs {
		t.Inputs[i] = TxInput{UTXORef: in.UTXORef, CharmState: in.CharmState}
	}
	t.Outputs = make([]TxOutput, len(v.Outputs))
	for i, out := range v.Outputs {
		script, err := hex.DecodeString(out.ScriptPubkey)
		if err != nil {
			return fmt.Errorf("%w: output %d script_pubkey: %w", ErrInvalidHex, i, err)
		}
		t.Outputs[i] = TxOutput{
			Index:        out.Index,
			Value:        out.Value,
			ScriptPubkey: script,
			CharmState:   out.CharmState,
		}
	}
	return nil
}

// --- NormalizedSpell ---

type spellInputJSON struct {
	UTXORef UTXORef     `json:"utxo_ref"`
	Charms  *CharmState `json:"charms,omitempty"`
}

type spellOutputJSON struct {
	Index  uint32      `json:"index"`
	Charms *CharmState `json:"charms,omitempty"`
}

type normalizedSpellJSON struct {
	Version uint32            `json:"version"`
	Ins     []spellInputJSON  `json:"ins"`
	Outs    []spellOutputJSON `json:"outs"`
}

// MarshalJSON implements json.Marshaler.
func (s *NormalizedSpell) MarshalJSON() ([]byte, error) {
	v := normalizedSpellJSON{
		Version: s.Version,
		Ins:     make([]spellInputJSON, len(s.Ins)),
		Outs:    make([]spellOutputJSON, len(s.Outs)),
	}
	for i, in := range s.Ins {
		v.Ins[i] = spellInputJSON{UTXORef: in.UTXORef, Charms: in.Charms}
	}
	for i, out := range s.Outs {
		v.Outs[i] = spellOutputJSON{Index: out.Index, Charms: out.Charms}
	}
	return json.Marshal(v)
}

// UnmarshalJSON implements json.Unmarshaler.
func (s *NormalizedSpell) UnmarshalJSON(b []byte) error {
	var v normalizedSpellJSON
	if err := json.Unmarshal(b, &v); err != nil {
		return fmt.Errorf("charm: decode spell: %w", err)
	}
	s.Version = v.Version
	s.Ins = make([]SpellInput, len(v.Ins))
	for i, in := range v.Ins {
		s.Ins[i] = SpellInput{UTXORef: in.UTXORef, Charms: in.Charms}
	}
	s.Outs = make([]SpellOutput, len(v.Outs))
	for i, out := range v.Outs {
		s.Outs[i] = SpellOutput{Index: out.Index, Charms: out.Charms}
	}
	return nil
}
