package bundle

import (
	"bytes"
	"io"
	"testing"

	"github.com/fxnlabs/kfd-isa/internal/isa"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultSources(t *testing.T) []isa.KernelSource {
	t.Helper()
	var sources []isa.KernelSource
	for _, arch := range isa.Architectures() {
		c, err := isa.Default(arch)
		require.NoError(t, err)
		sources = append(sources, c)
	}
	return sources
}

func TestWriteRead(t *testing.T) {
	sources := defaultSources(t)
	total := len(isa.Architectures()) * len(isa.KernelNames())

	for _, codec := range []Codec{CodecNone, CodecZstd, CodecLZ4} {
		t.Run(codec.String(), func(t *testing.T) {
			var buf bytes.Buffer
			n, err := Write(&buf, codec, sources...)
			require.NoError(t, err)
			assert.Equal(t, total, n)

			entries, err := Read(&buf)
			require.NoError(t, err)
			require.Len(t, entries, total)
			assert.Equal(t, codec, entries[0].Codec)
			require.NoError(t, Verify(entries, sources...))

			k, err := isa.GetKernel(entries[0].Name, entries[0].Arch)
			require.NoError(t, err)
			assert.Equal(t, k.Words(), entries[0].Words())
			assert.Equal(t, Checksum(k), entries[0].Checksum)
		})
	}
}

func TestWrite_CompressesGEMM(t *testing.T) {
	c, err := isa.Default(isa.ArchAldebaran)
	require.NoError(t, err)

	var plain, packed bytes.Buffer
	_, err = Write(&plain, CodecNone, c)
	require.NoError(t, err)
	_, err = Write(&packed, CodecZstd, c)
	require.NoError(t, err)
	assert.Less(t, packed.Len(), plain.Len())
}

func TestRead_CorruptPayload(t *testing.T) {
	c, err := isa.Default(isa.ArchGFX9)
	require.NoError(t, err)

	var buf bytes.Buffer
	_, err = Write(&buf, CodecNone, c)
	require.NoError(t, err)

	// The last byte belongs to the final entry's uncompressed payload.
	data := buf.Bytes()
	data[len(data)-1] ^= 0xff

	_, err = Read(bytes.NewReader(data))
	assert.ErrorIs(t, err, ErrChecksumMismatch)
}

func TestRead_BadHeader(t *testing.T) {
	_, err := Read(bytes.NewReader([]byte("ELF\x7f\x01\x00\x00\x00\x00\x00\x00\x00")))
	assert.ErrorIs(t, err, ErrBadMagic)

	_, err = Read(bytes.NewReader([]byte("KISA\x07\x00\x00\x00\x00\x00\x00\x00")))
	assert.ErrorIs(t, err, ErrVersion)

	_, err = Read(bytes.NewReader([]byte("KI")))
	assert.Error(t, err)
}

func TestRead_EntryCountLimit(t *testing.T) {
	_, err := Read(bytes.NewReader([]byte{'K', 'I', 'S', 'A', 1, 0, 0, 0, 0xff, 0xff, 0xff, 0xff}))
	assert.ErrorIs(t, err, ErrTooManyEntries)

	// A plausible count with no entries behind it fails on the first read.
	_, err = Read(bytes.NewReader([]byte{'K', 'I', 'S', 'A', 1, 0, 0, 0, 0x10, 0, 0, 0}))
	assert.ErrorIs(t, err, io.EOF)
}

func TestRead_Truncated(t *testing.T) {
	c, err := isa.Default(isa.ArchGFX9)
	require.NoError(t, err)

	var buf bytes.Buffer
	_, err = Write(&buf, CodecLZ4, c)
	require.NoError(t, err)

	_, err = Read(bytes.NewReader(buf.Bytes()[:buf.Len()/2]))
	assert.Error(t, err)
}

func TestVerify_DetectsDifferentCatalog(t *testing.T) {
	empty, err := isa.New(isa.ArchAldebaran, isa.WithEmptyGEMMKernels(true))
	require.NoError(t, err)
	full, err := isa.Default(isa.ArchAldebaran)
	require.NoError(t, err)

	var buf bytes.Buffer
	_, err = Write(&buf, CodecZstd, empty)
	require.NoError(t, err)
	entries, err := Read(&buf)
	require.NoError(t, err)

	require.NoError(t, Verify(entries, empty))
	assert.ErrorIs(t, Verify(entries, full), ErrContentMismatch)
	assert.ErrorIs(t, Verify(entries, empty, defaultSources(t)[1]), ErrContentMismatch)
}

func TestVerify_RejectsDuplicateEntry(t *testing.T) {
	c, err := isa.Default(isa.ArchGFX9)
	require.NoError(t, err)

	var buf bytes.Buffer
	_, err = Write(&buf, CodecNone, c)
	require.NoError(t, err)
	entries, err := Read(&buf)
	require.NoError(t, err)

	// Replace the last entry with a copy of the first so the count still matches.
	entries[len(entries)-1] = entries[0]
	err = Verify(entries, c)
	assert.ErrorIs(t, err, ErrContentMismatch)
	assert.Contains(t, err.Error(), "appears twice")
}

func TestCoder_ReusesZstd(t *testing.T) {
	var c coder
	defer c.close()

	first, err := c.encode(CodecZstd, []byte{0x00, 0x00, 0x81, 0xbf})
	require.NoError(t, err)
	enc := c.enc
	require.NotNil(t, enc)
	_, err = c.encode(CodecZstd, []byte{0xff, 0xff, 0x82, 0xbf})
	require.NoError(t, err)
	assert.Same(t, enc, c.enc)

	out, err := c.decode(CodecZstd, first)
	require.NoError(t, err)
	dec := c.dec
	_, err = c.decode(CodecZstd, first)
	require.NoError(t, err)
	assert.Same(t, dec, c.dec)
	assert.Equal(t, []byte{0x00, 0x00, 0x81, 0xbf}, out)
}

func TestParseCodec(t *testing.T) {
	c, err := ParseCodec("lz4")
	require.NoError(t, err)
	assert.Equal(t, CodecLZ4, c)

	c, err = ParseCodec("")
	require.NoError(t, err)
	assert.Equal(t, CodecNone, c)

	_, err = ParseCodec("gzip")
	assert.Error(t, err)
}
