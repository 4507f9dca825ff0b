package convolution

import (
	vecmath "github.com/cwbudde/algo-vecmath"
)

var (
	laplacian3           = [LaplacianWindow]float64{-1, 4, -1}
	laplacian3MaxSharpen = [LaplacianWindow]float64{-1, 8, -1}
)

// LaplacianCoefficients returns the 3-tap sharpening kernel.
func LaplacianCoefficients(maxSharpen bool) [LaplacianWindow]float64 {
	if maxSharpen {
		return laplacian3MaxSharpen
	}
	return laplacian3
}

// RunningMeanFrame writes to dst the per-dimension mean of the window frames
// of padded starting at index i. With padding window/2 that window is centred
// on original frame i. dst must have the frame width.
func RunningMeanFrame(dst []float64, padded Matrix, i, window int) {
	copy(dst, padded[i])
	for _, f := range padded[i+1 : i+window] {
		vecmath.AddBlockInPlace(dst, f)
	}
	// divide rather than scale by 1/window, which can be off by one ulp
	n := float64(window)
	for j := range dst {
		dst[j] /= n
	}
}

// LaplacianFrame writes to dst the dot product of the 3-tap kernel with
// padded[i:i+3]. scratch is clobbered and must have the frame width.
func LaplacianFrame(dst, scratch []float64, padded Matrix, i int, maxSharpen bool) {
	coeffs := LaplacianCoefficients(maxSharpen)
	vecmath.ScaleBlock(dst, padded[i], coeffs[0])
	for k := 1; k < len(coeffs); k++ {
		vecmath.ScaleBlock(scratch, padded[i+k], coeffs[k])
		vecmath.AddBlockInPlace(dst, scratch)
	}
}

// frameKernel computes output frame i from a padded matrix.
type frameKernel func(dst []float64, padded Matrix, i int)

// kernelFor resolves the single-frame kernel of s. The composed filter has
// none.
func kernelFor(s Spec, dims int) (frameKernel, error) {
	switch s.Kind {
	case RunningMean:
		return func(dst []float64, padded Matrix, i int) {
			RunningMeanFrame(dst, padded, i, s.Window)
		}, nil
	case Laplacian:
		scratch := make([]float64, dims)
		return func(dst []float64, padded Matrix, i int) {
			LaplacianFrame(dst, scratch, padded, i, s.MaxSharpen)
		}, nil
	case BlurThenSharpen:
		return nil, ErrUnreachable
	default:
		return nil, ErrUnknownKind
	}
}
