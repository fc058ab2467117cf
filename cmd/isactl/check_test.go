package main

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/fxnlabs/kfd-isa/internal/config"
	"github.com/fxnlabs/kfd-isa/internal/gemm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func writeMatrix(t *testing.T, dir, name string, rows, cols int, fill func(i int) float32) string {
	t.Helper()
	values := make([]float32, rows*cols)
	for i := range values {
		values[i] = fill(i)
	}
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, binary.Write(f, binary.LittleEndian, values))
	return path
}

func constant(v float32) func(int) float32 {
	return func(int) float32 { return v }
}

func newCheckApp(log *zap.Logger) *cli.App {
	state := &appState{cfg: config.Default(), log: log}
	return &cli.App{
		Name:     "isactl",
		Commands: []*cli.Command{checkCommand(state)},
	}
}

func TestCheckCommand(t *testing.T) {
	dir := t.TempDir()
	// gemm_16x5120x384: A is 16x384, B is 384x5120, C is 16x5120.
	a := writeMatrix(t, dir, "a.bin", 16, 384, constant(1))
	b := writeMatrix(t, dir, "b.bin", 384, 5120, constant(0.5))
	good := writeMatrix(t, dir, "good.bin", 16, 5120, constant(192))
	bad := writeMatrix(t, dir, "bad.bin", 16, 5120, func(i int) float32 {
		if i == 5123 {
			return 0
		}
		return 192
	})

	t.Run("matching result", func(t *testing.T) {
		core, logs := observer.New(zap.InfoLevel)
		app := newCheckApp(zap.New(core))
		err := app.Run([]string{"isactl", "check", "--a", a, "--b", b, "--c", good, "gemm_16x5120x384"})
		require.NoError(t, err)
		assert.Equal(t, 1, logs.FilterMessage("GEMM result matches reference").Len())
	})

	t.Run("mismatching result", func(t *testing.T) {
		core, logs := observer.New(zap.InfoLevel)
		app := newCheckApp(zap.New(core))
		err := app.Run([]string{"isactl", "check", "--a", a, "--b", b, "--c", bad, "gemm_16x5120x384"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "1 of 81920 elements")

		entries := logs.FilterMessage("GEMM result mismatch").All()
		require.Len(t, entries, 1)
		fields := entries[0].ContextMap()
		assert.Equal(t, int64(1), fields["row"])
		assert.Equal(t, int64(3), fields["col"])
		assert.Equal(t, float64(192), fields["maxAbsError"])
	})

	t.Run("wrong matrix size", func(t *testing.T) {
		app := newCheckApp(zap.NewNop())
		err := app.Run([]string{"isactl", "check", "--a", b, "--b", b, "--c", good, "gemm_16x5120x384"})
		assert.Error(t, err)
	})

	t.Run("not a GEMM kernel", func(t *testing.T) {
		app := newCheckApp(zap.NewNop())
		err := app.Run([]string{"isactl", "check", "--a", a, "--b", b, "--c", good, "copy_dword"})
		assert.ErrorContains(t, err, "not a GEMM kernel")
	})
}

func TestCheckGEMM_SmallShape(t *testing.T) {
	dir := t.TempDir()
	s := gemm.Shape{M: 2, N: 2, K: 3}
	a := writeMatrix(t, dir, "a.bin", 2, 3, func(i int) float32 { return float32(i + 1) })
	b := writeMatrix(t, dir, "b.bin", 3, 2, func(i int) float32 { return float32(i + 7) })
	c := writeMatrix(t, dir, "c.bin", 2, 2, func(i int) float32 { return []float32{58, 64, 139, 154}[i] })

	require.NoError(t, checkGEMM(zap.NewNop(), s, a, b, c, 0))
	assert.Error(t, checkGEMM(zap.NewNop(), s, a, b, filepath.Join(dir, "missing.bin"), 0))
}
