// Package streamjson is a single-pass, character-at-a-time JSON parser:
// a scanner/state-machine core (internal/scanner) fused with a string
// decoder and a numeric scanner/materializer (internal/numeric), driving
// a pluggable Handler to build the Value tree this package exposes.
//
// Beyond strict JSON it accepts the lenient extensions documented in
// spec §6.4: a leading '+' on numbers, Infinity/-Infinity, NaN/-NaN, and
// '/* */' and '//' comments.
package streamjson

import (
	"io"

	"github.com/mcvoid/streamjson/internal/perr"
	"github.com/mcvoid/streamjson/internal/reader"
	"github.com/mcvoid/streamjson/internal/scanner"
)

// BigDecMode selects how a number that escalates past native precision
// is materialized (spec §6.3 bigdec_load).
type BigDecMode int

const (
	// AutoDec lets the scanner's own heuristic decide (spec §4.5/§4.7):
	// an escalated whole number becomes a *big.Int, an escalated
	// decimal becomes a *big.Float.
	AutoDec BigDecMode = iota
	// BigDec forces every number through the big path, even ones that
	// would otherwise fit natively.
	BigDec
	// FloatDec renders an escalated decimal as float64 instead of
	// *big.Float (whole numbers still escalate to *big.Int, since
	// float64 cannot represent them exactly either).
	FloatDec
)

// Options configures a parse (spec §6.3).
type Options struct {
	BigDec BigDecMode

	// Circular is opaque to the core (spec §6.3): it exists only so a
	// Handler that tracks cyclic references can read the caller's
	// intent. The built-in tree Handler never produces cycles (nothing
	// in the JSON grammar can reference an ancestor container) and
	// ignores this field.
	Circular bool

	// BeforeParse/AfterParse are the two host hooks of spec §9 ("the
	// core exposes two hooks... for the surrounding environment to
	// suspend any global invariants it needs to"), e.g. a GC-disable/
	// enable bracket. The core never touches process-wide state itself.
	BeforeParse func()
	AfterParse  func()
}

func numberOptions(o Options) scanner.NumberOptions {
	return scanner.NumberOptions{
		ForceBig: o.BigDec == BigDec,
		NoBig:    o.BigDec == FloatDec,
	}
}

// Parse parses a single JSON value from r using default options.
func Parse(r io.Reader) (*Value, error) {
	return ParseWithOptions(r, Options{})
}

// ParseString parses a single JSON value from s using default options.
// s is copied once into a byte buffer before the parse starts.
func ParseString(s string) (*Value, error) {
	return ParseStringWithOptions(s, Options{})
}

// ParseBytes parses a single JSON value from b using default options.
// The underlying bytes are never copied before the parse completes.
func ParseBytes(b []byte) (*Value, error) {
	return ParseBytesWithOptions(b, Options{})
}

// ParseWithOptions is Parse with explicit Options.
func ParseWithOptions(r io.Reader, opts Options) (*Value, error) {
	return parseOnce(reader.New(r), opts)
}

// ParseStringWithOptions is ParseString with explicit Options.
func ParseStringWithOptions(s string, opts Options) (*Value, error) {
	return parseOnce(reader.NewString(s), opts)
}

// ParseBytesWithOptions is ParseBytes with explicit Options.
func ParseBytesWithOptions(b []byte, opts Options) (*Value, error) {
	return parseOnce(reader.NewBytes(b), opts)
}

// ParseDocuments drives a per-document callback over a concatenated
// stream of JSON values (JSON-Lines style), per SPEC_FULL §3. onDoc is
// invoked once for each completed top-level value in document order,
// until r is exhausted, onDoc returns an error, or a parse error occurs.
// Once onDoc has returned an error it is not called again, though the
// rest of r is still read. The first error from either source is
// returned.
func ParseDocuments(r io.Reader, opts Options, onDoc func(*Value) error) error {
	return parseDocuments(reader.New(r), opts, onDoc)
}

// ParseReader parses a single value from an already-constructed internal
// reader, letting callers outside this package (e.g. cmd/streamjsoncat)
// layer a decompressing reader.Reader in front of the scanner without
// reaching into unexported internals.
func ParseReader(rd *reader.Reader, opts Options) (*Value, error) {
	return parseOnce(rd, opts)
}

// ParseDocumentsReader is ParseDocuments over an already-constructed
// internal reader; see ParseReader.
func ParseDocumentsReader(rd *reader.Reader, opts Options, onDoc func(*Value) error) error {
	return parseDocuments(rd, opts, onDoc)
}

func parseOnce(rd *reader.Reader, opts Options) (*Value, error) {
	if opts.BeforeParse != nil {
		opts.BeforeParse()
	}
	if opts.AfterParse != nil {
		defer opts.AfterParse()
	}

	h := &treeHandler{}
	d := scanner.NewDriver(rd, h, numberOptions(opts))
	if e := d.Run(); e != nil {
		return &Value{}, e
	}
	if e := checkTermination(rd, d); e != nil {
		return &Value{}, e
	}
	if h.root == nil {
		line, col := rd.Pos()
		return &Value{}, perr.New(perr.NotANumberOrOtherValue, rd.Offset(), line, col, "empty input")
	}
	return h.root, nil
}

func parseDocuments(rd *reader.Reader, opts Options, onDoc func(*Value) error) error {
	if opts.BeforeParse != nil {
		opts.BeforeParse()
	}
	if opts.AfterParse != nil {
		defer opts.AfterParse()
	}

	h := &streamHandler{onDoc: onDoc}
	d := scanner.NewDriver(rd, h, numberOptions(opts))
	e := d.Run()
	if h.err != nil {
		return h.err
	}
	if e != nil {
		return e
	}
	if e := checkTermination(rd, d); e != nil {
		return e
	}
	return nil
}

// checkTermination implements spec §4.1's post-loop termination check:
// a non-empty stack after a clean '\0' means the input ended mid-array
// or mid-object.
func checkTermination(rd *reader.Reader, d *scanner.Driver) *perr.Error {
	if d.StackLen() == 0 {
		return nil
	}
	top := d.StackTop()
	line, col := rd.Pos()
	switch top.Next {
	case scanner.ArrayNew, scanner.ArrayElement, scanner.ArrayComma:
		return perr.New(perr.ArrayNotTerminated, rd.Offset(), line, col, "")
	default:
		return perr.New(perr.HashNotTerminated, rd.Offset(), line, col, "")
	}
}
