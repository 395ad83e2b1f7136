package charm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsEmpty(t *testing.T) {
	assert.True(t, IsEmpty(nil))
	assert.True(t, IsEmpty(Empty{}))
	assert.False(t, IsEmpty(U64(0)))
	assert.False(t, IsEmpty(Bytes(nil)))
	assert.False(t, IsEmpty(Text("")))
}

func TestAccessors(t *testing.T) {
	u, ok := AsU64(U64(42))
	assert.True(t, ok)
	assert.Equal(t, uint64(42), u)

	_, ok = AsU64(I64(42))
	assert.False(t, ok)

	i, ok := AsI64(I64(-7))
	assert.True(t, ok)
	assert.Equal(t, int64(-7), i)

	b, ok := AsBool(Bool(true))
	assert.True(t, ok)
	assert.True(t, b)

	raw, ok := AsBytes(Bytes{0xde, 0xad})
	assert.True(t, ok)
	assert.Equal(t, []byte{0xde, 0xad}, raw)

	s, ok := AsText(Text("hello"))
	assert.True(t, ok)
	assert.Equal(t, "hello", s)

	_, ok = AsText(Bytes("hello"))
	assert.False(t, ok)
}

func TestEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b Data
		want bool
	}{
		{"nil vs empty", nil, Empty{}, true},
		{"empty vs empty", Empty{}, Empty{}, true},
		{"empty vs u64", Empty{}, U64(0), false},
		{"u64 equal", U64(5), U64(5), true},
		{"u64 differ", U64(5), U64(6), false},
		{"u64 vs i64", U64(5), I64(5), false},
		{"bytes equal", Bytes{1, 2}, Bytes{1, 2}, true},
		{"bytes differ", Bytes{1, 2}, Bytes{1, 3}, false},
		{"text equal", Text("a"), Text("a"), true},
		{"list equal", List{U64(1), Text("x")}, List{U64(1), Text("x")}, true},
		{"list length differ", List{U64(1)}, List{U64(1), U64(2)}, false},
		{"list element differ", List{U64(1)}, List{U64(2)}, false},
		{"map equal", Map{"a": U64(1), "b": Bool(true)}, Map{"b": Bool(true), "a": U64(1)}, true},
		{"map key missing", Map{"a": U64(1)}, Map{"b": U64(1)}, false},
		{"map value differ", Map{"a": U64(1)}, Map{"a": U64(2)}, false},
		{"nested", Map{"l": List{Bytes{0xff}}}, Map{"l": List{Bytes{0xff}}}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Equal(tt.a, tt.b))
			assert.Equal(t, tt.want, Equal(tt.b, tt.a))
		})
	}
}

func TestParseAppKind(t *testing.T) {
	tests := []struct {
		tag  string
		want AppKind
	}{
		{"token:gold", KindToken},
		{"TOKEN:gold", KindToken},
		{"nft:punk", KindNFT},
		{"escrow:deal-1", KindEscrow},
		{"bounty:fix-42", KindBounty},
		{"bollar:usd", KindBollar},
		{"token", KindUnknown},
		{"", KindUnknown},
		{"custom:thing", KindUnknown},
		{":gold", KindUnknown},
		{"token:", KindToken},
	}
	for _, tt := range tests {
		t.Run(tt.tag, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseAppKind(tt.tag))
		})
	}
}

func TestAppKindString(t *testing.T) {
	assert.Equal(t, "token", KindToken.String())
	assert.Equal(t, "bollar", KindBollar.String())
	assert.Equal(t, "unknown", KindUnknown.String())
	assert.Equal(t, "unknown", AppKind(99).String())
}

func TestAppValidate(t *testing.T) {
	var vk [32]byte
	assert.NoError(t, NewApp("token:gold", vk).Validate())
	assert.ErrorIs(t, App{}.Validate(), ErrEmptyTag)
}

func TestCharmStateGet(t *testing.T) {
	var nilState *CharmState
	assert.Nil(t, nilState.Get("token:gold"))

	s := NewCharmState().WithApp("token:gold", U64(100))
	assert.Equal(t, U64(100), s.Get("token:gold"))
	assert.Nil(t, s.Get("nft:punk"))
}

func TestNormalizedSpellVerify(t *testing.T) {
	var ref UTXORef
	spell := NewNormalizedSpell(2)
	assert.False(t, spell.Verify())

	spell.Ins = append(spell.Ins, SpellInput{UTXORef: ref})
	assert.False(t, spell.Verify())

	spell.Outs = append(spell.Outs, SpellOutput{Index: 0})
	assert.True(t, spell.Verify())

	spell.Version = 0
	assert.False(t, spell.Verify())

	var nilSpell *NormalizedSpell
	assert.False(t, nilSpell.Verify())
}
