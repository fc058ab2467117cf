package isa

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseArchitecture(t *testing.T) {
	tests := []struct {
		in   string
		want Architecture
	}{
		{"ALDEBARAN", ArchAldebaran},
		{"aldebaran", ArchAldebaran},
		{" gfx90a ", ArchAldebaran},
		{"GFX9", ArchGFX9},
		{"gfx906", ArchGFX9},
		{"gfx90c", ArchGFX9},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseArchitecture(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("unknown", func(t *testing.T) {
		got, err := ParseArchitecture("gfx1100")
		assert.ErrorIs(t, err, ErrUnsupportedArchitecture)
		assert.Equal(t, ArchUnknown, got)
	})
}

func TestArchitecture_String(t *testing.T) {
	assert.Equal(t, "ALDEBARAN", ArchAldebaran.String())
	assert.Equal(t, "GFX9", ArchGFX9.String())
	assert.Equal(t, "Architecture(0)", ArchUnknown.String())
	assert.False(t, ArchUnknown.Valid())
	assert.True(t, ArchGFX9.Valid())
}

func TestParseKernelName(t *testing.T) {
	n, ok := ParseKernelName("gemm_16x5120x1280")
	assert.True(t, ok)
	assert.Equal(t, GEMM16x5120x1280, n)
	assert.True(t, n.IsGEMM())
	assert.False(t, AtomicAdd.IsGEMM())

	_, ok = ParseKernelName("GEMM_16x5120x1280")
	assert.False(t, ok)
}
