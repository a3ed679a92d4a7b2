package ingest

import (
	"bytes"
	"fmt"
	"io"

	"github.com/golang/snappy"
	"github.com/klauspost/compress/flate"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
	"github.com/pkg/errors"
)

// Content encodings understood by the Checker.
const (
	EncodingIdentity = "identity"
	EncodingGzip     = "gzip"
	EncodingDeflate  = "deflate"
	EncodingSnappy   = "snappy"
	EncodingZstd     = "zstd"
	// EncodingLZ4 is an lz4 frame. Not part of OTLP/HTTP.
	EncodingLZ4 = "lz4"
)

// sizeReader counts the bytes read through it.
type sizeReader struct {
	r    io.Reader
	size int64
}

func (r *sizeReader) Read(p []byte) (int, error) {
	n, err := r.r.Read(p)
	r.size += int64(n)
	return n, err
}

func (r *sizeReader) Size() int64 { return r.size }

// readBody reads and decompresses body. The compressed input is limited to
// maxRecv bytes and the output to maxDecompressed bytes.
func readBody(body *sizeReader, encoding string, maxRecv, maxDecompressed int64) ([]byte, error) {
	limited := io.LimitReader(body, maxRecv+1)

	var r io.Reader
	switch encoding {
	case "", EncodingIdentity:
		r = limited
	case EncodingGzip:
		gzipReader, err := gzip.NewReader(limited)
		if err != nil {
			return nil, decompressionError(err)
		}
		defer gzipReader.Close()
		r = gzipReader
	case EncodingDeflate:
		flateReader := flate.NewReader(limited)
		defer flateReader.Close()
		r = flateReader
	case EncodingZstd:
		zstdReader, err := zstd.NewReader(limited, zstd.WithDecoderConcurrency(1))
		if err != nil {
			return nil, decompressionError(err)
		}
		defer zstdReader.Close()
		r = zstdReader
	case EncodingLZ4:
		r = lz4.NewReader(limited)
	case EncodingSnappy:
		return readSnappy(body, limited, maxRecv, maxDecompressed)
	default:
		return nil, errors.Wrapf(ErrUnsupportedEncoding, "Content-Encoding %q", encoding)
	}

	buf, err := io.ReadAll(io.LimitReader(r, maxDecompressed+1))
	if body.Size() > maxRecv {
		return nil, errors.Wrapf(ErrTooLarge, "body exceeds %d bytes", maxRecv)
	}
	if err != nil {
		if r == limited {
			return nil, err
		}
		return nil, decompressionError(err)
	}
	if int64(len(buf)) > maxDecompressed {
		return nil, errors.Wrapf(ErrTooLarge, "decompressed body exceeds %d bytes", maxDecompressed)
	}
	return buf, nil
}

func decompressionError(err error) error {
	return fmt.Errorf("%w: %v", ErrDecompression, err)
}

// readSnappy decodes a snappy block. The decoded length is checked against
// the limit before decoding.
func readSnappy(body *sizeReader, limited io.Reader, maxRecv, maxDecompressed int64) ([]byte, error) {
	var compressed bytes.Buffer
	if _, err := compressed.ReadFrom(limited); err != nil {
		return nil, err
	}
	if body.Size() > maxRecv {
		return nil, errors.Wrapf(ErrTooLarge, "body exceeds %d bytes", maxRecv)
	}
	n, err := snappy.DecodedLen(compressed.Bytes())
	if err != nil {
		return nil, decompressionError(err)
	}
	if int64(n) > maxDecompressed {
		return nil, errors.Wrapf(ErrTooLarge, "decompressed body exceeds %d bytes", maxDecompressed)
	}
	buf, err := snappy.Decode(nil, compressed.Bytes())
	if err != nil {
		return nil, decompressionError(err)
	}
	return buf, nil
}
