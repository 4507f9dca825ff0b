package convolution

import "fmt"

// Matrix is an utterance representation: Matrix[i] is the feature vector of
// frame i. All frames share one width.
type Matrix [][]float64

func (m Matrix) Dims() int {
	if len(m) == 0 {
		return 0
	}
	return len(m[0])
}

// Validate checks that every frame has the width of the first.
func (m Matrix) Validate() error {
	d := m.Dims()
	for i, f := range m {
		if len(f) != d {
			return fmt.Errorf("%w: frame %d has %d values, frame 0 has %d", ErrDimensionMismatch, i, len(f), d)
		}
	}
	return nil
}

// Pad returns a copy of m with p zero frames before and after it.
// p <= 0 returns a plain copy.
func Pad(m Matrix, p int) Matrix {
	if p < 0 {
		p = 0
	}
	d := m.Dims()
	out := make(Matrix, 0, len(m)+2*p)
	for k := 0; k < p; k++ {
		out = append(out, make([]float64, d))
	}
	for _, f := range m {
		out = append(out, append([]float64(nil), f...))
	}
	for k := 0; k < p; k++ {
		out = append(out, make([]float64, d))
	}
	return out
}
