package reader

import (
	"io"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

// NewGzip wraps src, decompressing gzip-framed JSON before the scanner
// ever sees it. Mirrors the role klauspost/compress plays for
// minio-simdjson-go's compressed test corpora, applied here to live input
// instead of fixtures.
func NewGzip(src io.Reader) (*Reader, error) {
	gz, err := gzip.NewReader(src)
	if err != nil {
		return nil, err
	}
	return New(gz), nil
}

// NewZstd wraps src, decompressing a zstd-framed stream before the
// scanner sees it. The returned closer must be closed once the caller is
// done parsing to release the decoder's internal buffers.
func NewZstd(src io.Reader) (rd *Reader, closer func(), err error) {
	dec, err := zstd.NewReader(src)
	if err != nil {
		return nil, nil, err
	}
	return New(dec.IOReadCloser()), dec.Close, nil
}
