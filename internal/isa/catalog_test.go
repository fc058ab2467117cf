package isa

import (
	"encoding/binary"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zeebo/xxh3"
)

func readWords(t *testing.T, b []byte) []uint32 {
	t.Helper()
	require.Zero(t, len(b)%WordSize)
	words := make([]uint32, len(b)/WordSize)
	for i := range words {
		words[i] = binary.LittleEndian.Uint32(b[i*WordSize:])
	}
	return words
}

func TestCatalog_EveryKernelRoundTrips(t *testing.T) {
	for _, arch := range Architectures() {
		for _, name := range KernelNames() {
			t.Run(arch.String()+"/"+string(name), func(t *testing.T) {
				k, err := GetKernel(name, arch)
				require.NoError(t, err)
				require.NotZero(t, k.Len())
				assert.Equal(t, name, k.Name)
				assert.Equal(t, arch, k.Arch)
				assert.Equal(t, k.Len()*WordSize, k.Size())

				buf := make([]byte, k.Size())
				n, err := CopyKernelInto(name, arch, buf)
				require.NoError(t, err)
				assert.Equal(t, k.Size(), n)
				assert.Equal(t, k.Words(), readWords(t, buf))
				assert.Equal(t, k.Bytes(), buf)
			})
		}
	}
}

func TestCatalog_NoopAldebaran(t *testing.T) {
	buf := make([]byte, 4)
	n, err := CopyKernelInto(Noop, ArchAldebaran, buf)
	require.NoError(t, err)
	assert.Equal(t, 4, n)
	assert.Equal(t, []byte{0x00, 0x00, 0x81, 0xbf}, buf)
}

func TestCatalog_CopyDwordAldebaran(t *testing.T) {
	want := []uint32{
		0x7e000200, 0x7e020201,
		0x7e040202, 0x7e060203,
		0xdc530000, 0x047f0000,
		0xbf8c0000, 0xdc730000,
		0x007f0402, 0xbf810000,
	}
	buf := make([]byte, 40)
	n, err := CopyKernelInto(CopyDword, ArchAldebaran, buf)
	require.NoError(t, err)
	assert.Equal(t, 40, n)
	assert.Equal(t, want, readWords(t, buf))
}

func TestCatalog_AtomicAddDiffersPerArchitecture(t *testing.T) {
	ald, err := GetKernel(AtomicAdd, ArchAldebaran)
	require.NoError(t, err)
	gfx9, err := GetKernel(AtomicAdd, ArchGFX9)
	require.NoError(t, err)

	assert.Equal(t, ald.Len(), gfx9.Len())
	assert.NotEqual(t, ald.Bytes(), gfx9.Bytes())
}

func TestCatalog_BufferTooSmall(t *testing.T) {
	buf := make([]byte, 39)
	for i := range buf {
		buf[i] = 0xaa
	}
	n, err := CopyKernelInto(CopyDword, ArchAldebaran, buf)
	require.Error(t, err)
	assert.Zero(t, n)
	assert.True(t, errors.Is(err, ErrBufferTooSmall))

	var tooSmall *BufferTooSmallError
	require.ErrorAs(t, err, &tooSmall)
	assert.Equal(t, 40, tooSmall.Need)
	assert.Equal(t, 39, tooSmall.Have)

	for i, b := range buf {
		assert.Equal(t, byte(0xaa), b, "byte %d was written", i)
	}
}

func TestCatalog_LargerBufferKeepsTail(t *testing.T) {
	buf := make([]byte, 12)
	for i := range buf {
		buf[i] = 0xee
	}
	n, err := CopyKernelInto(InfiniteLoop, ArchGFX9, buf)
	require.NoError(t, err)
	assert.Equal(t, 8, n)
	assert.Equal(t, []uint32{0xbf82ffff, 0xbf810000}, readWords(t, buf[:n]))
	assert.Equal(t, []byte{0xee, 0xee, 0xee, 0xee}, buf[n:])
}

func TestCatalog_UnknownKernel(t *testing.T) {
	_, err := GetKernel("matrix_transpose", ArchAldebaran)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownKernel))

	var unknown *UnknownKernelError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, KernelName("matrix_transpose"), unknown.Name)
	assert.Equal(t, ArchAldebaran, unknown.Arch)

	_, err = CopyKernelInto(Noop, ArchUnknown, make([]byte, 4))
	assert.ErrorIs(t, err, ErrUnknownKernel)
}

func TestCatalog_Idempotent(t *testing.T) {
	k, err := GetKernel(VectorGroupAdd, ArchAldebaran)
	require.NoError(t, err)

	first := make([]byte, k.Size())
	second := make([]byte, k.Size())
	_, err = CopyKernelInto(VectorGroupAdd, ArchAldebaran, first)
	require.NoError(t, err)
	_, err = CopyKernelInto(VectorGroupAdd, ArchAldebaran, second)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestCatalog_WordsIsACopy(t *testing.T) {
	k, err := GetKernel(Noop, ArchGFX9)
	require.NoError(t, err)

	words := k.Words()
	words[0] = 0
	again, err := GetKernel(Noop, ArchGFX9)
	require.NoError(t, err)
	assert.Equal(t, []uint32{0xbf810000}, again.Words())
}

func TestCatalog_GFX9StubsVectorAndGEMM(t *testing.T) {
	c, err := Default(ArchGFX9)
	require.NoError(t, err)
	for _, name := range []KernelName{VectorSet, VectorAdd, VectorGroupSet, VectorGroupAdd, GEMM16x1152x5120, GEMM16x5120x1280} {
		k, err := c.Kernel(name)
		require.NoError(t, err)
		assert.Equal(t, []uint32{0xbf810000}, k.Words(), string(name))
	}
}

func TestCatalog_AldebaranGEMMEndsWithEndpgm(t *testing.T) {
	c, err := Default(ArchAldebaran)
	require.NoError(t, err)
	for _, name := range KernelNames() {
		if !name.IsGEMM() {
			continue
		}
		k, err := c.Kernel(name)
		require.NoError(t, err)
		words := k.Words()
		assert.Greater(t, len(words), 300, string(name))
		assert.Equal(t, uint32(0xbf810000), words[len(words)-1], string(name))
	}
}

func TestCatalog_EmptyGEMMKernels(t *testing.T) {
	c, err := New(ArchAldebaran, WithEmptyGEMMKernels(true))
	require.NoError(t, err)

	gemm, err := c.Kernel(GEMM16x5120x384)
	require.NoError(t, err)
	assert.Equal(t, []uint32{0xbf810000}, gemm.Words())

	vec, err := c.Kernel(VectorAdd)
	require.NoError(t, err)
	assert.Equal(t, 20, vec.Len())

	full, err := Default(ArchAldebaran)
	require.NoError(t, err)
	fullGEMM, err := full.Kernel(GEMM16x5120x384)
	require.NoError(t, err)
	assert.Equal(t, 399, fullGEMM.Len())
}

func TestCatalog_Kernels(t *testing.T) {
	for _, arch := range Architectures() {
		c, err := Default(arch)
		require.NoError(t, err)
		assert.Equal(t, KernelNames(), c.Kernels())
		assert.Equal(t, arch, c.Architecture())
		assert.Equal(t, ArchitectureName(arch), c.ArchitectureName())
	}
}

func TestNew_UnsupportedArchitecture(t *testing.T) {
	c, err := New(ArchUnknown)
	assert.Nil(t, c)
	assert.ErrorIs(t, err, ErrUnsupportedArchitecture)

	_, err = Default(Architecture(42))
	assert.ErrorIs(t, err, ErrUnsupportedArchitecture)
}

func TestCatalog_ConcurrentCopies(t *testing.T) {
	c, err := Default(ArchAldebaran)
	require.NoError(t, err)
	want, err := c.Kernel(GEMM16x1152x5120)
	require.NoError(t, err)

	var wg sync.WaitGroup
	results := make([][]byte, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			buf := make([]byte, want.Size())
			if _, err := c.CopyKernelInto(GEMM16x1152x5120, buf); err == nil {
				results[i] = buf
			}
		}(i)
	}
	wg.Wait()

	for i, got := range results {
		assert.Equal(t, want.Bytes(), got, "goroutine %d", i)
	}
}

func TestCatalog_Golden(t *testing.T) {
	tests := []struct {
		arch  Architecture
		name  KernelName
		words int
		xxh3  uint64
	}{
		{ArchAldebaran, Noop, 1, 0x53daadf06d383944},
		{ArchAldebaran, CopyDword, 10, 0xcdb3214a97e673db},
		{ArchAldebaran, InfiniteLoop, 2, 0x54999c82c4277fd0},
		{ArchAldebaran, AtomicAdd, 8, 0xda746b62214b2cb0},
		{ArchAldebaran, CustomSGPR, 6, 0x5f94db2146b16c9d},
		{ArchAldebaran, ScalarSet, 11, 0xeeca1b75496c4557},
		{ArchAldebaran, ScalarAdd, 15, 0xecb063a79c627deb},
		{ArchAldebaran, VectorSet, 8, 0x74ae0c72b4f2fd1f},
		{ArchAldebaran, VectorAdd, 20, 0xdfc24007125e4c78},
		{ArchAldebaran, VectorGroupSet, 16, 0x005dc8086e16db41},
		{ArchAldebaran, VectorGroupAdd, 27, 0x146376fc27e7aa57},
		{ArchAldebaran, GEMM16x1152x5120, 389, 0xb2f2ef6721936e1a},
		{ArchAldebaran, GEMM16x5120x384, 399, 0x4a543d6883bab4e8},
		{ArchAldebaran, GEMM16x1280x5120, 389, 0xf4a8ff0a05f21153},
		{ArchAldebaran, GEMM16x5120x1280, 399, 0xbd3b683c506903e7},
		{ArchGFX9, Noop, 1, 0x53daadf06d383944},
		{ArchGFX9, CopyDword, 10, 0xcdb3214a97e673db},
		{ArchGFX9, InfiniteLoop, 2, 0x54999c82c4277fd0},
		{ArchGFX9, AtomicAdd, 8, 0xbf7617497778f7cc},
		{ArchGFX9, CustomSGPR, 6, 0x5f94db2146b16c9d},
		{ArchGFX9, ScalarSet, 11, 0xeeca1b75496c4557},
		{ArchGFX9, ScalarAdd, 15, 0xecb063a79c627deb},
		{ArchGFX9, VectorSet, 1, 0x53daadf06d383944},
		{ArchGFX9, VectorAdd, 1, 0x53daadf06d383944},
		{ArchGFX9, VectorGroupSet, 1, 0x53daadf06d383944},
		{ArchGFX9, VectorGroupAdd, 1, 0x53daadf06d383944},
		{ArchGFX9, GEMM16x1152x5120, 1, 0x53daadf06d383944},
		{ArchGFX9, GEMM16x5120x384, 1, 0x53daadf06d383944},
		{ArchGFX9, GEMM16x1280x5120, 1, 0x53daadf06d383944},
		{ArchGFX9, GEMM16x5120x1280, 1, 0x53daadf06d383944},
	}
	require.Len(t, tests, len(Architectures())*len(KernelNames()))

	for _, tt := range tests {
		t.Run(tt.arch.String()+"/"+string(tt.name), func(t *testing.T) {
			k, err := GetKernel(tt.name, tt.arch)
			require.NoError(t, err)
			assert.Equal(t, tt.words, k.Len())
			assert.Equal(t, tt.xxh3, xxh3.Hash(k.Bytes()), "digest %#016x", xxh3.Hash(k.Bytes()))
		})
	}
}
