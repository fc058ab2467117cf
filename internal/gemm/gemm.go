// Package gemm describes the fixed GEMM payload shapes and computes the
// host-side reference a dispatched GEMM result is checked against.
package gemm

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"github.com/fxnlabs/kfd-isa/internal/isa"
	"gonum.org/v1/gonum/mat"
)

// Shape is C(M×N) = A(M×K) · B(K×N).
type Shape struct {
	M, N, K int
}

func (s Shape) String() string {
	return fmt.Sprintf("%dx%dx%d", s.M, s.N, s.K)
}

// FLOPs counts one multiply and one add per inner-product term.
func (s Shape) FLOPs() int64 {
	return 2 * int64(s.M) * int64(s.N) * int64(s.K)
}

// ShapeOf parses the shape out of a GEMM kernel name.
func ShapeOf(name isa.KernelName) (Shape, bool) {
	if !name.IsGEMM() {
		return Shape{}, false
	}
	var s Shape
	if _, err := fmt.Sscanf(string(name), "gemm_%dx%dx%d", &s.M, &s.N, &s.K); err != nil {
		return Shape{}, false
	}
	return s, true
}

// Validate rejects shapes with a non-positive dimension.
func (s Shape) Validate() error {
	if s.M <= 0 || s.N <= 0 || s.K <= 0 {
		return fmt.Errorf("invalid GEMM shape %s", s)
	}
	return nil
}

// Reference computes C = A·B for row-major a and b.
func Reference(a, b []float64, s Shape) ([]float64, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	if len(a) != s.M*s.K {
		return nil, fmt.Errorf("matrix A size mismatch: expected %d, got %d", s.M*s.K, len(a))
	}
	if len(b) != s.K*s.N {
		return nil, fmt.Errorf("matrix B size mismatch: expected %d, got %d", s.K*s.N, len(b))
	}

	matA := mat.NewDense(s.M, s.K, a)
	matB := mat.NewDense(s.K, s.N, b)
	var matC mat.Dense
	matC.Mul(matA, matB)

	return mat.DenseCopyOf(&matC).RawMatrix().Data, nil
}

// Mismatch locates one element outside tolerance.
type Mismatch struct {
	Row, Col  int
	Want, Got float64
}

// Comparison summarizes a device result against the reference.
type Comparison struct {
	MaxAbsError float64
	Mismatches  int
	First       *Mismatch
}

// OK reports whether every element was within tolerance.
func (c Comparison) OK() bool { return c.Mismatches == 0 }

// Compare checks got against want element-wise with an absolute tolerance.
func Compare(want, got []float64, s Shape, tol float64) (Comparison, error) {
	if err := s.Validate(); err != nil {
		return Comparison{}, err
	}
	if len(want) != s.M*s.N || len(got) != s.M*s.N {
		return Comparison{}, fmt.Errorf("result size mismatch: expected %d, got want=%d got=%d",
			s.M*s.N, len(want), len(got))
	}

	var c Comparison
	for i := range want {
		diff := math.Abs(want[i] - got[i])
		if math.IsNaN(diff) {
			diff = math.Inf(1)
		}
		if diff > c.MaxAbsError {
			c.MaxAbsError = diff
		}
		if diff > tol {
			c.Mismatches++
			if c.First == nil {
				c.First = &Mismatch{Row: i / s.N, Col: i % s.N, Want: want[i], Got: got[i]}
			}
		}
	}
	return c, nil
}

// Check computes the reference product of a and b and compares got, the
// device result, against it.
func Check(a, b, got []float64, s Shape, tol float64) (Comparison, error) {
	want, err := Reference(a, b, s)
	if err != nil {
		return Comparison{}, err
	}
	return Compare(want, got, s, tol)
}

// ReadMatrix reads a rows×cols row-major matrix of little-endian float32
// values, the layout the GEMM payloads load and store. Trailing data is
// an error.
func ReadMatrix(r io.Reader, rows, cols int) ([]float64, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("invalid matrix dimensions %dx%d", rows, cols)
	}
	raw := make([]float32, rows*cols)
	if err := binary.Read(r, binary.LittleEndian, raw); err != nil {
		return nil, fmt.Errorf("read %dx%d matrix: %w", rows, cols, err)
	}
	var extra [1]byte
	if _, err := io.ReadFull(r, extra[:]); err == nil {
		return nil, fmt.Errorf("matrix has data beyond %dx%d float32 values", rows, cols)
	}

	out := make([]float64, len(raw))
	for i, v := range raw {
		out[i] = float64(v)
	}
	return out, nil
}
