// Package charm defines the core data types of the Charms protocol: the
// typed value model attached to transaction inputs and outputs, application
// identities, UTXO references, transactions and normalized spells.
package charm

import "bytes"

// Data is the value attached to a transaction input or output on behalf of
// an application. It is a closed variant type: exactly one of the concrete
// types below is ever active, and consumers select on it with a type switch
// or the As* accessors.
type Data interface {
	isData()
}

// Empty is the absent value. A nil Data is treated as Empty everywhere.
type Empty struct{}

// Bool is a boolean value.
type Bool bool

// U64 is an unsigned 64-bit integer value.
type U64 uint64

// I64 is a signed 64-bit integer value.
type I64 int64

// Bytes is an opaque byte string, hex-encoded at the JSON boundary.
type Bytes []byte

// Text is a UTF-8 string value.
type Text string

// List is an ordered sequence of values.
type List []Data

// Map is a string-keyed collection of values. Keys are unique; encoding and
// comparison iterate in sorted key order so derived bytes are deterministic.
type Map map[string]Data

func (Empty) isData() {}
func (Bool) isData()  {}
func (U64) isData()   {}
func (I64) isData()   {}
func (Bytes) isData() {}
func (Text) isData()  {}
func (List) isData()  {}
func (Map) isData()   {}

// IsEmpty reports whether d is the Empty variant (or nil).
func IsEmpty(d Data) bool {
	if d == nil {
		return true
	}
	_, ok := d.(Empty)
	return ok
}

// AsU64 returns the value of a U64 variant. The second return is false for
// any other variant.
func AsU64(d Data) (uint64, bool) {
	v, ok := d.(U64)
	return uint64(v), ok
}

// AsI64 returns the value of an I64 variant.
func AsI64(d Data) (int64, bool) {
	v, ok := d.(I64)
	return int64(v), ok
}

// AsBool returns the value of a Bool variant.
func AsBool(d Data) (bool, bool) {
	v, ok := d.(Bool)
	return bool(v), ok
}

// AsBytes returns the payload of a Bytes variant.
func AsBytes(d Data) ([]byte, bool) {
	v, ok := d.(Bytes)
	return []byte(v), ok
}

// AsText returns the value of a Text variant.
func AsText(d Data) (string, bool) {
	v, ok := d.(Text)
	return string(v), ok
}

// Equal reports whether two values are structurally equal. Nil is equal to
// Empty; lists compare element-wise, maps compare by key set and values.
func Equal(a, b Data) bool {
	if IsEmpty(a) || IsEmpty(b) {
		return IsEmpty(a) && IsEmpty(b)
	}
	switch av := a.(type) {
	case Bool:
		bv, ok := b.(Bool)
		return ok && av == bv
	case U64:
		bv, ok := b.(U64)
		return ok && av == bv
	case I64:
		bv, ok := b.(I64)
		return ok && av == bv
	case Bytes:
		bv, ok := b.(Bytes)
		return ok && bytes.Equal(av, bv)
	case Text:
		bv, ok := b.(Text)
		return ok && av == bv
	case List:
		bv, ok := b.(List)
		if !ok || len(av) != len(bv) {
			return false
		}
		for i := range av {
			if !Equal(av[i], bv[i]) {
				return false
			}
		}
		return true
	case Map:
		bv, ok := b.(Map)
		if !ok || len(av) != len(bv) {
			return false
		}
		for k, v := range av {
			w, present := bv[k]
			if !present || !Equal(v, w) {
				return false
			}
		}
		return true
	}
	return false
}
