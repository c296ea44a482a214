package streamjson

import "github.com/mcvoid/streamjson/internal/perr"

// ErrParse is the sentinel every parse Error wraps (teacher's own
// ErrParse, generalized from a single opaque error into the full kind
// enum of spec §7 while keeping errors.Is(err, streamjson.ErrParse)
// working exactly as it did in the teacher).
var ErrParse = perr.ErrParse

// Error is a parse failure: a stable Kind plus the position it was
// detected at (spec §7). The original oj source comments out its
// location-setting call; SPEC_FULL §4 decided to always record it.
type Error = perr.Error

// ErrorKind enumerates the error kinds of spec §7.
type ErrorKind = perr.Kind

// Error kinds, re-exported from the internal perr package
// so callers can switch on err.(*streamjson.Error).Kind without
// importing an internal package.
const (
	InvalidCommentFormat      = perr.InvalidCommentFormat
	CommentNotTerminated      = perr.CommentNotTerminated
	InvalidHexCharacter       = perr.InvalidHexCharacter
	InvalidUnicodeCharacter   = perr.InvalidUnicodeCharacter
	QuotedStringNotTerminated = perr.QuotedStringNotTerminated
	InvalidEscapedCharacter   = perr.InvalidEscapedCharacter
	NotANumberOrOtherValue    = perr.NotANumberOrOtherValue
	ExpectedTrue              = perr.ExpectedTrue
	ExpectedFalse             = perr.ExpectedFalse
	ExpectedNull              = perr.ExpectedNull
	ExpectedNaN               = perr.ExpectedNaN
	InvalidToken              = perr.InvalidToken
	UnexpectedCharacter       = perr.UnexpectedCharacter
	UnexpectedComma           = perr.UnexpectedComma
	UnexpectedColon           = perr.UnexpectedColon
	UnexpectedArrayClose      = perr.UnexpectedArrayClose
	UnexpectedHashClose       = perr.UnexpectedHashClose
	ExpectedStateNotAKind     = perr.ExpectedStateNotAKind
	ArrayNotTerminated        = perr.ArrayNotTerminated
	HashNotTerminated         = perr.HashNotTerminated
	MaxDepthExceeded          = perr.MaxDepthExceeded
)
