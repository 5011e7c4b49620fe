package regbench

import (
	"compress/bzip2"
	"compress/gzip"
	"compress/zlib"
	"io"
	"os"

	"github.com/krolaw/zipstream"
	"github.com/xi2/xz"
)

type Compression byte

const (
	CompressionInvalid Compression = iota
	CompressionNone
	CompressionGzip
	CompressionZip
	CompressionXZ
	CompressionZ
	CompressionBZip2
)

// Magic numbers from https://stackoverflow.com/a/19127748/199475
var compressionSigs = map[Compression][]byte{
	CompressionGzip:  {0x1f, 0x8b, 0x08},
	CompressionZip:   {0x50, 0x4b, 0x03, 0x04},
	CompressionXZ:    {0xfd, 0x37, 0x7a, 0x58, 0x5a, 0x00},
	CompressionZ:     {0x1f, 0x9d},
	CompressionBZip2: {0x42, 0x5a, 0x68},
}

// DetectCompression reads the first few bytes of r and matches them against
// the known compression signatures, ignoring the filename suffix.
func DetectCompression(r io.Reader) (Compression, error) {
	buff := make([]byte, 6)
	if _, err := r.Read(buff); err != nil {
		return CompressionInvalid, err
	}

Outer:
	for c, sig := range compressionSigs {
		for i := range sig {
			if buff[i] != sig[i] {
				continue Outer
			}
		}
		return c, nil
	}

	return CompressionNone, nil
}

// MaybeDecompressReadCloserFromFile sniffs the compression type of f and
// returns a reader that yields the decompressed stream. Uncompressed input is
// passed through unchanged. The file offset is rewound, so f must support
// seeking from the start.
func MaybeDecompressReadCloserFromFile(f *os.File) (io.ReadCloser, error) {
	c, err := DetectCompression(f)
	if err != nil {
		return nil, err
	}
	// Reset the underlying reader to the start of the stream before handing
	// it to a decompressor, which expects to see the magic bytes again.
	if _, err := f.Seek(0, 0); err != nil {
		return nil, err
	}

	switch c {
	case CompressionGzip:
		return gzip.NewReader(f)
	case CompressionZip:
		zr := zipstream.NewReader(f)
		if _, err := zr.Next(); err != nil {
			return nil, err
		}
		return &nopReadCloser{zr}, nil
	case CompressionBZip2:
		return &nopReadCloser{bzip2.NewReader(f)}, nil
	case CompressionXZ:
		reader, err := xz.NewReader(f, 0)
		if err != nil {
			return nil, err
		}
		return &nopReadCloser{reader}, nil
	case CompressionZ:
		return zlib.NewReader(f)
	}

	return f, nil
}

// nopReadCloser "upgrades" readers that don't need to be closed
type nopReadCloser struct {
	io.Reader
}

func (c *nopReadCloser) Close() error {
	return nil
}
