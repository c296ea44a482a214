// Command streamjsoncat reads JSON (optionally lenient, optionally
// gzip/zstd-compressed, optionally a stream of concatenated documents)
// and re-emits it as canonical JSON, one line per document. It exists to
// exercise spec §6.3's Options end to end rather than only through
// library tests.
package main

import (
	"fmt"
	"os"

	"github.com/jessevdk/go-flags"

	"github.com/mcvoid/streamjson"
	"github.com/mcvoid/streamjson/internal/reader"
)

type args struct {
	BigDec   bool   `long:"bigdec" description:"force arbitrary-precision decimal materialization"`
	FloatDec bool   `long:"float-dec" description:"render escalated decimals as float64 instead of big.Float"`
	Circular bool   `long:"circular" description:"hint the handler to expect cyclic references (no-op in this build)"`
	Stream   bool   `long:"stream" description:"parse a concatenated stream of JSON documents instead of one value"`
	Gzip     bool   `long:"gzip" description:"input is gzip-compressed"`
	Zstd     bool   `long:"zstd" description:"input is zstd-compressed"`
	File     string `long:"file" short:"f" description:"input file (default: stdin)"`
}

func main() {
	var a args
	if _, err := flags.Parse(&a); err != nil {
		os.Exit(1)
	}

	in := os.Stdin
	if a.File != "" {
		f, err := os.Open(a.File)
		if err != nil {
			fmt.Fprintln(os.Stderr, "streamjsoncat:", err)
			os.Exit(1)
		}
		defer f.Close()
		in = f
	}

	opts := streamjson.Options{}
	switch {
	case a.BigDec:
		opts.BigDec = streamjson.BigDec
	case a.FloatDec:
		opts.BigDec = streamjson.FloatDec
	}
	opts.Circular = a.Circular

	var rd *reader.Reader
	var closer func()
	var err error
	switch {
	case a.Gzip:
		rd, err = reader.NewGzip(in)
	case a.Zstd:
		rd, closer, err = reader.NewZstd(in)
	default:
		rd = reader.New(in)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "streamjsoncat:", err)
		os.Exit(1)
	}
	if closer != nil {
		defer closer()
	}

	if a.Stream {
		err = streamjson.ParseDocumentsReader(rd, opts, func(v *streamjson.Value) error {
			fmt.Println(v.Encode())
			return nil
		})
	} else {
		var v *streamjson.Value
		v, err = streamjson.ParseReader(rd, opts)
		if err == nil {
			fmt.Println(v.Encode())
		}
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "streamjsoncat:", err)
		os.Exit(1)
	}
}
