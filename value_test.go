package streamjson

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValueAsAccessorsMatchType(t *testing.T) {
	v := &Value{typ: Integer, i: 7}
	n, err := v.AsInteger()
	require.NoError(t, err)
	assert.Equal(t, int64(7), n)

	_, err = v.AsString()
	assert.ErrorIs(t, err, ErrType)
}

func TestValueAsNumberWidensAllNumericKinds(t *testing.T) {
	cases := []struct {
		v    *Value
		want float64
	}{
		{&Value{typ: Integer, i: 3}, 3},
		{&Value{typ: Number, f: 2.5}, 2.5},
		{&Value{typ: BigInteger, bigI: big.NewInt(9)}, 9},
		{&Value{typ: BigDecimal, bigF: big.NewFloat(1.25)}, 1.25},
	}
	for _, c := range cases {
		got, err := c.v.AsNumber()
		require.NoError(t, err)
		assert.InDelta(t, c.want, got, 1e-9)
	}
}

func TestValueAsBigIntAndBigDecimal(t *testing.T) {
	bi := big.NewInt(123456789012345)
	v := &Value{typ: BigInteger, bigI: bi}
	got, err := v.AsBigInt()
	require.NoError(t, err)
	assert.Equal(t, 0, bi.Cmp(got))

	_, err = v.AsBigDecimal()
	assert.ErrorIs(t, err, ErrType)
}

func TestValueAsObjectAndPairsPreserveOrder(t *testing.T) {
	v := &Value{typ: Object, obj: []pair{
		{key: "b", val: &Value{typ: Integer, i: 2}},
		{key: "a", val: &Value{typ: Integer, i: 1}},
	}}
	m, err := v.AsObject()
	require.NoError(t, err)
	assert.Len(t, m, 2)

	pairs, err := v.Pairs()
	require.NoError(t, err)
	require.Len(t, pairs, 2)
	assert.Equal(t, "b", pairs[0].Key)
	assert.Equal(t, "a", pairs[1].Key)
}

func TestValueIndexAndKeyAreFluent(t *testing.T) {
	v := &Value{typ: Array, arr: []*Value{
		{typ: String, s: "x"},
	}}
	assert.Equal(t, "x", v.Index(0).s)
	assert.Equal(t, typeUnknown, v.Index(5).Type())

	obj := &Value{typ: Object, obj: []pair{{key: "k", val: &Value{typ: Boolean, b: true}}}}
	assert.Equal(t, true, obj.Key("k").b)
	assert.Equal(t, typeUnknown, obj.Key("missing").Type())
}

func TestTypeStringCoversAllKinds(t *testing.T) {
	for typ := Null; typ < numTypes; typ++ {
		assert.NotEqual(t, "<unknown>", typ.String())
	}
	assert.Equal(t, "<unknown>", typeUnknown.String())
}

func TestValueStringDebugRepr(t *testing.T) {
	v := &Value{typ: Array, arr: []*Value{
		{typ: Integer, i: 1},
		{typ: String, s: "a"},
	}}
	assert.Equal(t, `[1, "a"]`, v.String())
}
