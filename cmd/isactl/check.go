package main

import (
	"fmt"
	"os"

	"github.com/fxnlabs/kfd-isa/internal/gemm"
	"github.com/fxnlabs/kfd-isa/internal/isa"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

func checkCommand(state *appState) *cli.Command {
	return &cli.Command{
		Name:      "check",
		Usage:     "Check a device GEMM result against the host reference product",
		ArgsUsage: "<gemm kernel>",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "a", Usage: "Matrix A (M×K), little-endian float32, row-major", Required: true},
			&cli.StringFlag{Name: "b", Usage: "Matrix B (K×N), little-endian float32, row-major", Required: true},
			&cli.StringFlag{Name: "c", Usage: "Device result C (M×N), little-endian float32, row-major", Required: true},
			&cli.Float64Flag{Name: "tol", Value: 1e-2, Usage: "Absolute tolerance per element"},
		},
		Action: func(c *cli.Context) error {
			name := isa.KernelName(c.Args().First())
			shape, ok := gemm.ShapeOf(name)
			if !ok {
				return fmt.Errorf("%q is not a GEMM kernel", name)
			}
			return checkGEMM(state.log.With(zap.String("kernel", string(name))), shape,
				c.String("a"), c.String("b"), c.String("c"), c.Float64("tol"))
		},
	}
}

func checkGEMM(log *zap.Logger, shape gemm.Shape, aPath, bPath, cPath string, tol float64) error {
	a, err := readMatrixFile(aPath, shape.M, shape.K)
	if err != nil {
		return err
	}
	b, err := readMatrixFile(bPath, shape.K, shape.N)
	if err != nil {
		return err
	}
	got, err := readMatrixFile(cPath, shape.M, shape.N)
	if err != nil {
		return err
	}

	result, err := gemm.Check(a, b, got, shape, tol)
	if err != nil {
		return err
	}
	if !result.OK() {
		log.Error("GEMM result mismatch",
			zap.String("shape", shape.String()),
			zap.Int("mismatches", result.Mismatches),
			zap.Float64("maxAbsError", result.MaxAbsError),
			zap.Int("row", result.First.Row),
			zap.Int("col", result.First.Col),
			zap.Float64("want", result.First.Want),
			zap.Float64("got", result.First.Got),
		)
		return fmt.Errorf("GEMM %s: %d of %d elements outside tolerance %g",
			shape, result.Mismatches, shape.M*shape.N, tol)
	}
	log.Info("GEMM result matches reference",
		zap.String("shape", shape.String()),
		zap.Float64("maxAbsError", result.MaxAbsError),
	)
	return nil
}

func readMatrixFile(path string, rows, cols int) ([]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	m, err := gemm.ReadMatrix(f, rows, cols)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}
