package isa

import "encoding/binary"

// KernelName is the symbolic name of a payload. Every architecture
// provides every name.
type KernelName string

const (
	Noop           KernelName = "noop"
	CopyDword      KernelName = "copy_dword"
	InfiniteLoop   KernelName = "infinite_loop"
	AtomicAdd      KernelName = "atomic_add"
	CustomSGPR     KernelName = "custom_sgpr"
	ScalarSet      KernelName = "scalar_set"
	ScalarAdd      KernelName = "scalar_add"
	VectorSet      KernelName = "vector_set"
	VectorAdd      KernelName = "vector_add"
	VectorGroupSet KernelName = "vector_group_set"
	VectorGroupAdd KernelName = "vector_group_add"

	GEMM16x1152x5120 KernelName = "gemm_16x1152x5120"
	GEMM16x5120x384  KernelName = "gemm_16x5120x384"
	GEMM16x1280x5120 KernelName = "gemm_16x1280x5120"
	GEMM16x5120x1280 KernelName = "gemm_16x5120x1280"
)

// KernelNames returns the shared capability set in catalog order.
func KernelNames() []KernelName {
	return []KernelName{
		Noop, CopyDword, InfiniteLoop, AtomicAdd,
		CustomSGPR, ScalarSet, ScalarAdd,
		VectorSet, VectorAdd, VectorGroupSet, VectorGroupAdd,
		GEMM16x1152x5120, GEMM16x5120x384, GEMM16x1280x5120, GEMM16x5120x1280,
	}
}

// IsGEMM reports whether n is one of the fixed-shape GEMM kernels.
func (n KernelName) IsGEMM() bool {
	switch n {
	case GEMM16x1152x5120, GEMM16x5120x384, GEMM16x1280x5120, GEMM16x5120x1280:
		return true
	}
	return false
}

// ParseKernelName validates s against the known names.
func ParseKernelName(s string) (KernelName, bool) {
	for _, n := range KernelNames() {
		if string(n) == s {
			return n, true
		}
	}
	return "", false
}

// WordSize is the size in bytes of one instruction word.
const WordSize = 4

// endpgm is s_endpgm, the single-instruction stub for kernels an
// architecture has no real encoding for.
var endpgm = []uint32{0xbf810000}

// Kernel is one immutable machine-code payload.
type Kernel struct {
	Name  KernelName
	Arch  Architecture
	words []uint32
}

// Len returns the number of instruction words.
func (k Kernel) Len() int { return len(k.words) }

// Size returns the payload length in bytes.
func (k Kernel) Size() int { return len(k.words) * WordSize }

// Words returns a copy of the instruction words.
func (k Kernel) Words() []uint32 {
	out := make([]uint32, len(k.words))
	copy(out, k.words)
	return out
}

// Bytes returns the payload in device byte order.
func (k Kernel) Bytes() []byte {
	return k.AppendTo(make([]byte, 0, k.Size()))
}

// AppendTo appends the payload in device byte order to dst.
func (k Kernel) AppendTo(dst []byte) []byte {
	for _, w := range k.words {
		dst = binary.LittleEndian.AppendUint32(dst, w)
	}
	return dst
}

// put writes the payload into dst, which must hold Size() bytes.
func (k Kernel) put(dst []byte) {
	for i, w := range k.words {
		binary.LittleEndian.PutUint32(dst[i*WordSize:], w)
	}
}
