// Package memory provides page-aligned host buffers that stand in for
// device-visible memory when loading ISA payloads.
package memory

import (
	"encoding/binary"
	"errors"
	"fmt"
	"sync"
)

var ErrReleased = errors.New("memory: buffer released")

// Buffer is a caller-owned, page-aligned region. Bytes exposes the first
// Size bytes; the rest of the last page is zeroed padding.
type Buffer struct {
	mu   sync.Mutex
	data []byte
	size int
}

// Allocate reserves at least size bytes rounded up to whole pages.
func Allocate(size int) (*Buffer, error) {
	if size <= 0 {
		return nil, fmt.Errorf("memory: invalid size %d", size)
	}
	data, err := allocPages(alignUp(size, pageSize()))
	if err != nil {
		return nil, fmt.Errorf("memory: allocate %d bytes: %w", size, err)
	}
	return &Buffer{data: data, size: size}, nil
}

// Bytes returns the usable region, or nil after Release. The slice aliases
// the mapping and must not be used once Release has been called; use Words
// for a copy that is safe against a concurrent Release.
func (b *Buffer) Bytes() []byte {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.data == nil {
		return nil
	}
	return b.data[:b.size]
}

// Size is the requested size in bytes.
func (b *Buffer) Size() int { return b.size }

// Capacity is the page-rounded size of the mapping.
func (b *Buffer) Capacity() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.data)
}

// Words copies the buffer out as little-endian 32-bit words.
func (b *Buffer) Words() ([]uint32, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.data == nil {
		return nil, ErrReleased
	}
	data := b.data[:b.size]
	words := make([]uint32, len(data)/4)
	for i := range words {
		words[i] = binary.LittleEndian.Uint32(data[i*4:])
	}
	return words, nil
}

// Release unmaps the buffer. Calling it more than once is a no-op.
func (b *Buffer) Release() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.data == nil {
		return nil
	}
	err := freePages(b.data)
	b.data = nil
	return err
}

func alignUp(n, align int) int {
	if r := n % align; r != 0 {
		return n + align - r
	}
	return n
}
