package scanner

import (
	"github.com/mcvoid/streamjson/internal/numeric"
	"github.com/mcvoid/streamjson/internal/perr"
	"github.com/mcvoid/streamjson/internal/reader"
)

// NumberOptions carries the one caller preference the number
// materializer needs (spec §6.3 bigdec_load).
type NumberOptions struct {
	// ForceBig corresponds to bigdec_load=BigDec: always escalate
	// decimals to the arbitrary-precision path.
	ForceBig bool
	// NoBig corresponds to bigdec_load=FloatDec: render an escalated
	// decimal as float64 rather than *big.Float.
	NoBig bool
}

// scanNumber implements spec §4.5. first is the dispatch byte the
// driver already consumed ('+', '-', a digit, 'I', or 'N'/'n' reached
// through the sign path).
func scanNumber(rd *reader.Reader, first byte, opts NumberOptions) (numeric.Result, *perr.Error) {
	rd.Protect()
	n := &numeric.NumInfo{Div: 1, NoBig: opts.NoBig}

	b := first
	switch b {
	case '-':
		n.Neg = true
		nb, e := rd.Get()
		if e != nil {
			rd.Release()
			return numeric.Result{}, ioErr(rd, e)
		}
		b = nb
	case '+':
		nb, e := rd.Get()
		if e != nil {
			rd.Release()
			return numeric.Result{}, ioErr(rd, e)
		}
		b = nb
	}

	var scanErr *perr.Error
	switch {
	case b == 'I':
		if e := rd.Expect("nfinity"); e != nil {
			scanErr = newErr(rd, perr.NotANumberOrOtherValue, "expected Infinity")
		} else {
			n.Infinity = true
		}
	case b == 'N' || b == 'n':
		scanErr = scanLenientNan(rd, n)
	case b >= '0' && b <= '9':
		scanDigits(rd, n, b)
	default:
		scanErr = newErr(rd, perr.NotANumberOrOtherValue, "")
	}

	w := rd.Window()
	raw := make([]byte, 0, len(w)+1)
	raw = append(raw, first)
	raw = append(raw, w...)
	n.Raw = raw
	rd.Release()

	if scanErr != nil {
		return numeric.Result{}, scanErr
	}
	if opts.ForceBig {
		n.Big = true
	}
	n.Finalize()
	return numeric.Materialize(n), nil
}

// scanLenientNan matches the literal "NaN" case-insensitively on its
// last two letters (spec §4.5 step 3): having already consumed a
// leading N/n, it requires an 'a'/'A' then a final letter whose case is
// unconstrained.
func scanLenientNan(rd *reader.Reader, n *numeric.NumInfo) *perr.Error {
	a, e := rd.Get()
	if e != nil {
		return ioErr(rd, e)
	}
	if a != 'a' && a != 'A' {
		return newErr(rd, perr.ExpectedNaN, "")
	}
	last, e := rd.Get()
	if e != nil {
		return ioErr(rd, e)
	}
	if last != 'n' && last != 'N' {
		return newErr(rd, perr.ExpectedNaN, "")
	}
	n.Nan = true
	return nil
}

func scanDigits(rd *reader.Reader, n *numeric.NumInfo, first byte) {
	n.AddIntDigit(int(first - '0'))
	for {
		b, err := rd.Peek()
		if err != nil || b < '0' || b > '9' {
			break
		}
		rd.Get()
		n.AddIntDigit(int(b - '0'))
	}

	if b, _ := rd.Peek(); b == '.' {
		rd.Get()
		for {
			b, err := rd.Peek()
			if err != nil || b < '0' || b > '9' {
				break
			}
			rd.Get()
			n.AddFracDigit(int(b - '0'))
		}
	}

	if b, _ := rd.Peek(); b == 'e' || b == 'E' {
		rd.Get()
		negExp := false
		if b2, _ := rd.Peek(); b2 == '+' || b2 == '-' {
			rd.Get()
			negExp = b2 == '-'
		}
		for {
			b3, err := rd.Peek()
			if err != nil || b3 < '0' || b3 > '9' {
				break
			}
			rd.Get()
			n.AddExpDigit(int(b3 - '0'))
		}
		if negExp {
			n.NegateExp()
		}
	}
}

// scanComment implements spec §4.6: entry is right after the leading
// '/' has been consumed.
func scanComment(rd *reader.Reader) *perr.Error {
	b, err := rd.Get()
	if err != nil {
		return ioErr(rd, err)
	}
	switch b {
	case '*':
		return scanBlockComment(rd)
	case '/':
		return scanLineComment(rd)
	default:
		return newErr(rd, perr.InvalidCommentFormat, "")
	}
}

func scanBlockComment(rd *reader.Reader) *perr.Error {
	for {
		b, err := rd.Get()
		if err != nil {
			return ioErr(rd, err)
		}
		if b == 0 {
			return newErr(rd, perr.CommentNotTerminated, "")
		}
		if b != '*' {
			continue
		}
		for {
			b2, err := rd.Get()
			if err != nil {
				return ioErr(rd, err)
			}
			if b2 == '/' {
				return nil
			}
			if b2 == 0 {
				return newErr(rd, perr.CommentNotTerminated, "")
			}
			if b2 != '*' {
				break
			}
		}
	}
}

func scanLineComment(rd *reader.Reader) *perr.Error {
	for {
		b, err := rd.Get()
		if err != nil {
			return ioErr(rd, err)
		}
		switch b {
		case '\n', '\f', 0:
			return nil
		}
	}
}
