package bundle

import (
	"bytes"
	"fmt"
	"io"

	"github.com/klauspost/compress/zstd"
	lz4 "github.com/pierrec/lz4/v4"
)

// Codec is the per-entry payload compression.
type Codec uint8

const (
	CodecNone Codec = iota
	CodecZstd
	CodecLZ4
)

func (c Codec) String() string {
	switch c {
	case CodecNone:
		return "none"
	case CodecZstd:
		return "zstd"
	case CodecLZ4:
		return "lz4"
	default:
		return fmt.Sprintf("codec(%d)", uint8(c))
	}
}

// ParseCodec maps a config value to a Codec.
func ParseCodec(s string) (Codec, error) {
	switch s {
	case "none", "":
		return CodecNone, nil
	case "zstd":
		return CodecZstd, nil
	case "lz4":
		return CodecLZ4, nil
	}
	return 0, fmt.Errorf("bundle: unsupported compression %q", s)
}

// coder holds the zstd encoder and decoder shared by every entry of one
// Write or Read. They are created on first use.
type coder struct {
	enc *zstd.Encoder
	dec *zstd.Decoder
}

func (c *coder) encode(codec Codec, b []byte) ([]byte, error) {
	switch codec {
	case CodecNone:
		return b, nil
	case CodecZstd:
		if c.enc == nil {
			enc, err := zstd.NewWriter(nil)
			if err != nil {
				return nil, err
			}
			c.enc = enc
		}
		return c.enc.EncodeAll(b, make([]byte, 0, len(b))), nil
	case CodecLZ4:
		var buf bytes.Buffer
		w := lz4.NewWriter(&buf)
		if _, err := w.Write(b); err != nil {
			return nil, err
		}
		if err := w.Close(); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	}
	return nil, fmt.Errorf("bundle: unsupported codec %s", codec)
}

func (c *coder) decode(codec Codec, b []byte) ([]byte, error) {
	switch codec {
	case CodecNone:
		return b, nil
	case CodecZstd:
		if c.dec == nil {
			dec, err := zstd.NewReader(nil)
			if err != nil {
				return nil, err
			}
			c.dec = dec
		}
		return c.dec.DecodeAll(b, nil)
	case CodecLZ4:
		var buf bytes.Buffer
		if _, err := io.Copy(&buf, lz4.NewReader(bytes.NewReader(b))); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	}
	return nil, fmt.Errorf("bundle: unsupported codec %s", codec)
}

func (c *coder) close() {
	if c.enc != nil {
		c.enc.Close()
		c.enc = nil
	}
	if c.dec != nil {
		c.dec.Close()
		c.dec = nil
	}
}
