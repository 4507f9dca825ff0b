package convolution

// Apply filters m along the time axis. The result has the length and frame
// width of m; m itself is not modified.
func Apply(m Matrix, s Spec) (Matrix, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return apply(m, s)
}

func apply(m Matrix, s Spec) (Matrix, error) {
	if s.Kind == BlurThenSharpen {
		blurred, err := apply(m, s.withKind(RunningMean))
		if err != nil {
			return nil, err
		}
		return apply(blurred, s.withKind(Laplacian))
	}

	p, err := s.PaddingSize()
	if err != nil {
		return nil, err
	}
	dims := m.Dims()
	kernel, err := kernelFor(s, dims)
	if err != nil {
		return nil, err
	}

	out := make(Matrix, len(m))
	if len(m) == 0 {
		return out, nil
	}
	padded := Pad(m, p)
	for i := range out {
		out[i] = make([]float64, dims)
		// padded[i] starts the window centred on original frame i
		kernel(out[i], padded, i)
	}
	return out, nil
}
