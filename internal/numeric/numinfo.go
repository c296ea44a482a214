// Package numeric implements the number scanner's value type (NumInfo)
// and its three-way materialization (native int64/float64, or an
// arbitrary-precision escalation), per spec §3 and §4.7.
package numeric

// NumInfo is a pure value type accumulated by the number scanner. Its
// only allocation is Raw, which the scanner copies out of the reader's
// protected window; the three materialization paths (small int, float,
// big) all read from the same fields.
type NumInfo struct {
	// Raw is the original textual form of the number, exactly as it
	// appeared in the input (sign included). Preserving it lets the big
	// path build an arbitrary-precision value without re-lexing.
	Raw []byte

	I   int64  // integer-digit accumulator (valid while !Big)
	Num uint64 // fractional-digit accumulator
	Div uint64 // fractional divisor: frac = Num/Div
	Exp int    // signed decimal exponent

	DecCnt  int // significant digit count, trailing zeros excluded
	zeroCnt int

	Big      bool // precision or magnitude exceeded native limits
	Infinity bool
	Nan      bool
	Neg      bool
	NoBig    bool // caller option: render big decimals as float64, not arbitrary precision
}

// LongMax bounds the integer-digit accumulator; once I would overflow
// past this, further digits stop accumulating into I and Big is set.
const LongMax = (1<<63 - 1) / 10 // int64 max/10: any I below it leaves headroom for one more digit

// AddIntDigit folds one decimal digit ('0'-'9' already translated to 0-9)
// into the integer accumulator, applying the big-escalation rule of
// spec §4.5 step 4.
func (n *NumInfo) AddIntDigit(d int) {
	n.DecCnt++
	if d == 0 {
		n.zeroCnt++
	} else {
		n.zeroCnt = 0
	}
	if n.Big {
		return
	}
	if n.I >= LongMax || n.DecCnt-n.zeroCnt > 14 {
		n.Big = true
		return
	}
	n.I = n.I*10 + int64(d)
}

// AddFracDigit folds one fractional digit into Num/Div, same
// escalation rule.
func (n *NumInfo) AddFracDigit(d int) {
	n.DecCnt++
	if d == 0 {
		n.zeroCnt++
	} else {
		n.zeroCnt = 0
	}
	if n.Big {
		// Keep Div off 1 so Materialize still treats this as a decimal
		// when Big was already set by the integer digits.
		n.Div *= 10
		return
	}
	if n.DecCnt-n.zeroCnt > 14 {
		n.Big = true
		return
	}
	n.Num = n.Num*10 + uint64(d)
	n.Div *= 10
}

// AddExpDigit folds one exponent digit (unsigned magnitude; the caller
// negates once scanning finishes, after the escalation check below has
// run on the magnitude), escalating per spec §4.5 step 6.
func (n *NumInfo) AddExpDigit(d int) {
	n.Exp = n.Exp*10 + d
	if n.Exp >= 1023 {
		n.Big = true
	}
}

// NegateExp flips the sign of the accumulated exponent magnitude.
func (n *NumInfo) NegateExp() {
	n.Exp = -n.Exp
}

// Finalize drops the trailing-zero count from DecCnt (spec §4.5 step 7).
// Call once after scanning is complete.
func (n *NumInfo) Finalize() {
	n.DecCnt -= n.zeroCnt
}
