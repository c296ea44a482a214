package scanner

import (
	"io"

	"github.com/mcvoid/streamjson/internal/perr"
	"github.com/mcvoid/streamjson/internal/reader"
)

// newErr builds a *perr.Error at the reader's current position. Kept as
// a free function (rather than a Reader method) so the reader package
// stays free of any dependency on error kinds.
func newErr(rd *reader.Reader, kind perr.Kind, msg string) *perr.Error {
	line, col := rd.Pos()
	return perr.New(kind, rd.Offset(), line, col, msg)
}

// ioErr wraps an unexpected I/O error from the underlying reader. It is
// not one of spec §7's grammar error kinds; InvalidToken is the closest
// catch-all, carrying the underlying error text.
func ioErr(rd *reader.Reader, err error) *perr.Error {
	if err == io.EOF {
		return newErr(rd, perr.InvalidToken, "unexpected end of input")
	}
	return newErr(rd, perr.InvalidToken, err.Error())
}
