// Package bundle exports catalog snapshots to a single file so that
// harnesses outside this module can load the same payloads.
//
// Layout, all integers little-endian:
//
//	header: "KISA" | version u16 | reserved u16 | count u32
//	entry:  arch len u8 | arch | name len u8 | name | codec u8 |
//	        words u32 | xxh3 u64 | payload len u32 | payload
//
// The checksum covers the uncompressed payload.
package bundle

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/fxnlabs/kfd-isa/internal/isa"
	"github.com/zeebo/xxh3"
)

const (
	magic   = "KISA"
	version = 1

	// No catalog comes close to these; anything larger is corrupt input.
	maxPayload = 1 << 24
	maxEntries = 1 << 16
)

var (
	ErrBadMagic         = errors.New("bundle: bad magic")
	ErrVersion          = errors.New("bundle: unsupported version")
	ErrChecksumMismatch = errors.New("bundle: checksum mismatch")
	ErrContentMismatch  = errors.New("bundle: content differs from catalog")
	ErrTooManyEntries   = errors.New("bundle: entry count exceeds limit")
)

type header struct {
	Magic    [4]byte
	Version  uint16
	Reserved uint16
	Count    uint32
}

// Entry is one decoded kernel.
type Entry struct {
	Arch     isa.Architecture
	Name     isa.KernelName
	Codec    Codec
	Checksum uint64
	Data     []byte
}

// Words returns the payload as instruction words.
func (e Entry) Words() []uint32 {
	words := make([]uint32, len(e.Data)/isa.WordSize)
	for i := range words {
		words[i] = binary.LittleEndian.Uint32(e.Data[i*isa.WordSize:])
	}
	return words
}

// Checksum is the xxh3-64 digest of the kernel's device bytes.
func Checksum(k isa.Kernel) uint64 {
	return xxh3.Hash(k.Bytes())
}

// Write serializes every kernel of every source and returns the number of
// entries written.
func Write(w io.Writer, codec Codec, sources ...isa.KernelSource) (int, error) {
	var kernels []isa.Kernel
	for _, src := range sources {
		for _, name := range src.Kernels() {
			k, err := src.Kernel(name)
			if err != nil {
				return 0, err
			}
			kernels = append(kernels, k)
		}
	}

	var c coder
	defer c.close()

	var buf bytes.Buffer
	h := header{Version: version, Count: uint32(len(kernels))}
	copy(h.Magic[:], magic)
	if err := binary.Write(&buf, binary.LittleEndian, h); err != nil {
		return 0, err
	}

	for _, k := range kernels {
		raw := k.Bytes()
		payload, err := c.encode(codec, raw)
		if err != nil {
			return 0, fmt.Errorf("bundle: encode %s/%s: %w", k.Arch, k.Name, err)
		}
		writeString(&buf, k.Arch.String())
		writeString(&buf, string(k.Name))
		buf.WriteByte(byte(codec))
		buf.Write(binary.LittleEndian.AppendUint32(nil, uint32(k.Len())))
		buf.Write(binary.LittleEndian.AppendUint64(nil, xxh3.Hash(raw)))
		buf.Write(binary.LittleEndian.AppendUint32(nil, uint32(len(payload))))
		buf.Write(payload)
	}

	if _, err := w.Write(buf.Bytes()); err != nil {
		return 0, err
	}
	return len(kernels), nil
}

// Read decodes a bundle and verifies every checksum.
func Read(r io.Reader) ([]Entry, error) {
	var h header
	if err := binary.Read(r, binary.LittleEndian, &h); err != nil {
		return nil, fmt.Errorf("bundle: read header: %w", err)
	}
	if string(h.Magic[:]) != magic {
		return nil, ErrBadMagic
	}
	if h.Version != version {
		return nil, fmt.Errorf("%w: %d", ErrVersion, h.Version)
	}

	if h.Count > maxEntries {
		return nil, fmt.Errorf("%w: %d", ErrTooManyEntries, h.Count)
	}

	var c coder
	defer c.close()

	var entries []Entry
	for i := uint32(0); i < h.Count; i++ {
		e, err := readEntry(r, &c)
		if err != nil {
			return nil, fmt.Errorf("bundle: entry %d: %w", i, err)
		}
		entries = append(entries, e)
	}
	return entries, nil
}

func readEntry(r io.Reader, c *coder) (Entry, error) {
	archName, err := readString(r)
	if err != nil {
		return Entry{}, err
	}
	arch, err := isa.ParseArchitecture(archName)
	if err != nil {
		return Entry{}, err
	}
	name, err := readString(r)
	if err != nil {
		return Entry{}, err
	}

	var fixed struct {
		Codec      uint8
		Words      uint32
		Checksum   uint64
		PayloadLen uint32
	}
	if err := binary.Read(r, binary.LittleEndian, &fixed); err != nil {
		return Entry{}, err
	}
	if fixed.PayloadLen > maxPayload {
		return Entry{}, fmt.Errorf("payload of %d bytes exceeds limit", fixed.PayloadLen)
	}
	payload := make([]byte, fixed.PayloadLen)
	if _, err := io.ReadFull(r, payload); err != nil {
		return Entry{}, err
	}

	codec := Codec(fixed.Codec)
	data, err := c.decode(codec, payload)
	if err != nil {
		return Entry{}, fmt.Errorf("decode %s/%s: %w", archName, name, err)
	}
	if len(data) != int(fixed.Words)*isa.WordSize {
		return Entry{}, fmt.Errorf("%s/%s: %d bytes for %d words", archName, name, len(data), fixed.Words)
	}
	if xxh3.Hash(data) != fixed.Checksum {
		return Entry{}, fmt.Errorf("%w: %s/%s", ErrChecksumMismatch, archName, name)
	}

	return Entry{
		Arch:     arch,
		Name:     isa.KernelName(name),
		Codec:    codec,
		Checksum: fixed.Checksum,
		Data:     data,
	}, nil
}

// Verify checks that entries hold exactly the kernels of sources.
func Verify(entries []Entry, sources ...isa.KernelSource) error {
	type key struct {
		arch isa.Architecture
		name isa.KernelName
	}
	seen := make(map[key]Entry, len(entries))
	for _, e := range entries {
		k := key{e.Arch, e.Name}
		if _, dup := seen[k]; dup {
			return fmt.Errorf("%w: %s/%s appears twice", ErrContentMismatch, e.Arch, e.Name)
		}
		seen[k] = e
	}

	want := 0
	for _, src := range sources {
		for _, name := range src.Kernels() {
			want++
			k, err := src.Kernel(name)
			if err != nil {
				return err
			}
			e, ok := seen[key{k.Arch, k.Name}]
			if !ok {
				return fmt.Errorf("%w: %s/%s missing", ErrContentMismatch, k.Arch, k.Name)
			}
			if !bytes.Equal(e.Data, k.Bytes()) {
				return fmt.Errorf("%w: %s/%s", ErrContentMismatch, k.Arch, k.Name)
			}
		}
	}
	if len(seen) != want {
		return fmt.Errorf("%w: bundle has %d kernels, catalog has %d", ErrContentMismatch, len(seen), want)
	}
	return nil
}

func writeString(buf *bytes.Buffer, s string) {
	buf.WriteByte(byte(len(s)))
	buf.WriteString(s)
}

func readString(r io.Reader) (string, error) {
	var n [1]byte
	if _, err := io.ReadFull(r, n[:]); err != nil {
		return "", err
	}
	b := make([]byte, n[0])
	if _, err := io.ReadFull(r, b); err != nil {
		return "", err
	}
	return string(b), nil
}
