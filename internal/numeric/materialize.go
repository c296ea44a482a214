package numeric

import (
	"math"
	"math/big"
)

// Kind tags which field of Result holds the materialized value.
type Kind int

const (
	KindInt64 Kind = iota
	KindFloat64
	KindBigInt
	KindBigFloat
)

// Result is the domain-level numeric value produced from a NumInfo,
// per spec §4.7. Exactly one field is meaningful, selected by Kind.
type Result struct {
	Kind   Kind
	Int64  int64
	Float  float64
	Int    *big.Int   // arbitrary-precision integer
	Dec    *big.Float // arbitrary-precision decimal
}

// bigFloatPrec is the working precision (in bits) used to parse a
// big-decimal's original digit string. It comfortably exceeds the
// ~14-significant-digit threshold that triggers escalation in the first
// place; 256 bits hold about 77 significant decimal digits, and longer
// inputs are rounded to that precision.
const bigFloatPrec = 256

// Materialize converts a fully-scanned NumInfo into a domain value,
// dispatching to the small-integer, float, or big-decimal path exactly
// as spec §4.7 describes.
func Materialize(n *NumInfo) Result {
	switch {
	case n.Infinity:
		f := math.Inf(1)
		if n.Neg {
			f = math.Inf(-1)
		}
		return Result{Kind: KindFloat64, Float: f}
	case n.Nan:
		return Result{Kind: KindFloat64, Float: math.NaN()}
	case n.Div == 1 && n.Exp == 0:
		if n.Big {
			bi := parseBigInt(n.Raw)
			return Result{Kind: KindBigInt, Int: bi}
		}
		v := n.I
		if n.Neg {
			v = -v
		}
		return Result{Kind: KindInt64, Int64: v}
	default:
		if n.Big {
			dec := parseBigFloat(n.Raw)
			if n.NoBig {
				f, _ := dec.Float64()
				return Result{Kind: KindFloat64, Float: f}
			}
			return Result{Kind: KindBigFloat, Dec: dec}
		}
		d := float64(n.I) + float64(n.Num)/float64(n.Div)
		if n.Neg {
			d = -d
		}
		if n.Exp != 0 {
			d *= math.Pow(10, float64(n.Exp))
		}
		return Result{Kind: KindFloat64, Float: d}
	}
}

func parseBigInt(raw []byte) *big.Int {
	bi := new(big.Int)
	// Raw may carry a leading '+' that big.Int.SetString rejects; strip it.
	s := stripPlus(raw)
	if _, ok := bi.SetString(string(s), 10); !ok {
		return bi
	}
	return bi
}

func parseBigFloat(raw []byte) *big.Float {
	f := new(big.Float).SetPrec(bigFloatPrec)
	s := stripPlus(raw)
	if _, ok := f.SetString(string(s)); !ok {
		return f
	}
	return f
}

func stripPlus(raw []byte) []byte {
	if len(raw) > 0 && raw[0] == '+' {
		return raw[1:]
	}
	return raw
}
