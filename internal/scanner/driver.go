// Package scanner is the core of streamjson: the parse driver's flat
// dispatch loop (spec §4.1) fused with the value stack (spec §3), the
// string scanner (spec §4.4) and number scanner (spec §4.5). It knows
// nothing about how values are materialized into a tree; that's the
// Handler's job (spec §6.2).
package scanner

import (
	"errors"
	"fmt"
	"math"

	"github.com/mcvoid/streamjson/internal/numeric"
	"github.com/mcvoid/streamjson/internal/perr"
	"github.com/mcvoid/streamjson/internal/reader"
)

// Driver is the parse driver of spec §4.1: a flat loop over the value
// stack, with no recursion between containers, so nesting never grows
// the Go call stack; the value stack itself is bounded by MaxDepth.
type Driver struct {
	rd    *reader.Reader
	h     Handler
	stack Stack
	opts  NumberOptions
	rec   perr.Recorder
}

// NewDriver builds a Driver. opts configures the number materializer's
// big-decimal behavior (spec §6.3 bigdec_load).
func NewDriver(rd *reader.Reader, h Handler, opts NumberOptions) *Driver {
	return &Driver{rd: rd, h: h, opts: opts}
}

// Run drives the scanner to a clean end-of-input or the first error.
// On a nil return, callers must still check StackLen/StackTop: a
// non-empty stack means the input ended with unterminated containers
// (spec §4.1 "Termination check"), which the driver deliberately leaves
// to its caller so it stays composable: the single-value and the
// per-document entry points (spec §3 "per-document streaming") each run
// it once and apply that check themselves.
func (d *Driver) Run() *perr.Error {
	for {
		if d.rec.Failed() {
			return d.rec.Err()
		}
		b, err := d.rd.NextNonWhite()
		if err != nil {
			return d.rec.Record(ioErr(d.rd, err))
		}
		done, e := d.dispatch(b)
		if e != nil {
			return d.rec.Record(e)
		}
		if done {
			return nil
		}
	}
}

// StackLen reports the value stack's depth. Zero means a complete,
// well-formed document (or stream of documents) was parsed.
func (d *Driver) StackLen() int { return d.stack.Len() }

// StackTop returns the still-open outermost frame after Run returns
// with a non-empty stack, so the caller can tell an unterminated array
// from an unterminated hash. Outermost (not innermost) because spec
// §4.1's termination check reports on the frame that was never closed
// from the top of the original input, which for a chain of unterminated
// nested containers is the first one opened.
func (d *Driver) StackTop() *Frame {
	if len(d.stack.frames) == 0 {
		return nil
	}
	return &d.stack.frames[0]
}

func (d *Driver) dispatch(b byte) (bool, *perr.Error) {
	switch {
	case b == '{':
		return false, d.startHash()
	case b == '}':
		return false, d.endHash()
	case b == '[':
		return false, d.startArray()
	case b == ']':
		return false, d.endArray()
	case b == ',':
		return false, d.comma()
	case b == ':':
		return false, d.colon()
	case b == '"':
		s, e := scanString(d.rd)
		if e != nil {
			return false, e
		}
		return false, d.bindString(s)
	case b == '+' || b == '-' || b == 'I' || b == 'N' || (b >= '0' && b <= '9'):
		res, e := scanNumber(d.rd, b, d.opts)
		if e != nil {
			return false, e
		}
		return false, d.bindValue(res)
	case b == 't':
		if e := expectLiteral(d.rd, "rue", perr.ExpectedTrue); e != nil {
			return false, e
		}
		return false, d.bindValue(true)
	case b == 'f':
		if e := expectLiteral(d.rd, "alse", perr.ExpectedFalse); e != nil {
			return false, e
		}
		return false, d.bindValue(false)
	case b == 'n':
		return false, d.dispatchN()
	case b == '/':
		return false, scanComment(d.rd)
	case b == 0:
		return true, nil
	default:
		return false, newErr(d.rd, perr.UnexpectedCharacter, "")
	}
}

// dispatchN implements spec §4.1's null/NaN branch under the bare 'n'
// dispatch byte, and SPEC_FULL §4's decision that this path never
// produces a signed NaN (only the number scanner's "-NaN"/"-nan" path
// can).
func (d *Driver) dispatchN() *perr.Error {
	b, err := d.rd.Get()
	if err != nil {
		return ioErr(d.rd, err)
	}
	switch b {
	case 'u':
		if e := expectLiteral(d.rd, "ll", perr.ExpectedNull); e != nil {
			return e
		}
		return d.bindValue(Null{})
	case 'a':
		last, err := d.rd.Get()
		if err != nil {
			return ioErr(d.rd, err)
		}
		if last != 'N' && last != 'n' {
			return newErr(d.rd, perr.ExpectedNaN, "")
		}
		return d.bindValue(numeric.Result{Kind: numeric.KindFloat64, Float: math.NaN()})
	default:
		return newErr(d.rd, perr.UnexpectedCharacter, "")
	}
}

func expectLiteral(rd *reader.Reader, s string, kind perr.Kind) *perr.Error {
	if err := rd.Expect(s); err != nil {
		if errors.Is(err, reader.ErrExpect) {
			return newErr(rd, kind, "")
		}
		return ioErr(rd, err)
	}
	return nil
}

func (d *Driver) comma() *perr.Error {
	top := d.stack.Top()
	if top == nil {
		return newErr(d.rd, perr.UnexpectedComma, "")
	}
	switch top.Next {
	case ArrayComma:
		top.Next = ArrayElement
	case HashComma:
		top.Next = HashKey
	default:
		return newErr(d.rd, perr.UnexpectedComma, "")
	}
	return nil
}

func (d *Driver) colon() *perr.Error {
	top := d.stack.Top()
	if top == nil || top.Next != HashColon {
		return newErr(d.rd, perr.UnexpectedColon, "")
	}
	top.Next = HashValue
	return nil
}

func (d *Driver) startArray() *perr.Error {
	handle := d.h.StartArray()
	if !d.stack.Push(Frame{Handle: handle, Next: ArrayNew}) {
		return newErr(d.rd, perr.MaxDepthExceeded, "")
	}
	return nil
}

func (d *Driver) endArray() *perr.Error {
	top := d.stack.Top()
	if top == nil || (top.Next != ArrayNew && top.Next != ArrayComma) {
		return newErr(d.rd, perr.UnexpectedArrayClose, "")
	}
	f := d.stack.Pop()
	v := d.h.EndArray(f.Handle)
	return d.bindValue(v)
}

func (d *Driver) startHash() *perr.Error {
	handle := d.h.StartHash()
	if !d.stack.Push(Frame{Handle: handle, Next: HashNew}) {
		return newErr(d.rd, perr.MaxDepthExceeded, "")
	}
	return nil
}

func (d *Driver) endHash() *perr.Error {
	top := d.stack.Top()
	if top == nil || (top.Next != HashNew && top.Next != HashComma) {
		return newErr(d.rd, perr.UnexpectedHashClose, "")
	}
	f := d.stack.Pop()
	v := d.h.EndHash(f.Handle)
	return d.bindValue(v)
}

// bindValue is add_value/add_num_value of spec §4.8 for any value that
// cannot also serve as an object key (bool, null, number, or a
// completed container).
func (d *Driver) bindValue(v any) *perr.Error {
	top := d.stack.Top()
	if top == nil {
		d.h.AddRoot(v)
		return nil
	}
	switch top.Next {
	case ArrayNew, ArrayElement:
		d.h.ArrayAppend(top.Handle, v)
		top.Next = ArrayComma
	case HashValue:
		d.h.HashSet(top.Handle, top.Key, v)
		top.Key = ""
		top.HasKey = false
		top.Next = HashComma
	default:
		return newErr(d.rd, perr.ExpectedStateNotAKind, fmt.Sprintf("expected %s", top.Next))
	}
	return nil
}

// bindString is spec §4.4's delivery-based-on-frame-state table: a
// string can additionally serve as an object key when the frame is
// expecting one.
func (d *Driver) bindString(s string) *perr.Error {
	top := d.stack.Top()
	if top == nil {
		d.h.AddRoot(s)
		return nil
	}
	switch top.Next {
	case ArrayNew, ArrayElement:
		d.h.ArrayAppend(top.Handle, s)
		top.Next = ArrayComma
	case HashNew, HashKey:
		top.Key = s
		top.HasKey = true
		top.Next = HashColon
	case HashValue:
		d.h.HashSet(top.Handle, top.Key, s)
		top.Key = ""
		top.HasKey = false
		top.Next = HashComma
	default:
		return newErr(d.rd, perr.ExpectedStateNotAKind, fmt.Sprintf("expected %s, not a string", top.Next))
	}
	return nil
}

// Abort drains the value stack without invoking any handler callback,
// per spec §5's abort-time teardown ("partial containers are simply
// discarded").
func (d *Driver) Abort() {
	d.stack.Drain()
}
