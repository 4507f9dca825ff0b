package convolution

import (
	"fmt"
	"strconv"
)

// LaplacianWindow is the only window size the Laplacian kernel supports.
const LaplacianWindow = 3

const (
	avWindowPrefix   = "av_ws_"
	laplWindowPrefix = "lapl_ws_"
	maxSharpenSuffix = "_max_sharpen"
)

// Spec is the immutable filter configuration of one run.
type Spec struct {
	Kind Kind

	// Window is the running-mean window; ignored by Laplacian.
	Window int

	// MaxSharpen switches the Laplacian centre tap from 4 to 8.
	MaxSharpen bool
}

func NewSpec(kind Kind, window int, maxSharpen bool) (Spec, error) {
	s := Spec{Kind: kind, Window: window, MaxSharpen: maxSharpen}
	if err := s.Validate(); err != nil {
		return Spec{}, err
	}
	return s, nil
}

// Validate reports an ErrConfiguration-wrapped error for an unusable Spec.
func (s Spec) Validate() error {
	switch s.Kind {
	case RunningMean, BlurThenSharpen:
		if s.Window < 1 {
			return fmt.Errorf("%w: got %d", ErrNonPositiveWindow, s.Window)
		}
		if s.Window%2 == 0 {
			return fmt.Errorf("%w: got %d", ErrEvenWindow, s.Window)
		}
		return nil
	case Laplacian:
		return nil
	default:
		return fmt.Errorf("%w: %v", ErrUnknownKind, s.Kind)
	}
}

// WindowSize is the number of frames one output frame is computed from.
// The composed filter has no single window and yields ErrUnreachable.
func (s Spec) WindowSize() (int, error) {
	switch s.Kind {
	case RunningMean:
		return s.Window, nil
	case Laplacian:
		return LaplacianWindow, nil
	case BlurThenSharpen:
		return 0, fmt.Errorf("%w: %v has no single-frame window", ErrUnreachable, s.Kind)
	default:
		return 0, fmt.Errorf("%w: %v", ErrUnknownKind, s.Kind)
	}
}

// PaddingSize is the number of zero frames added at each end of a sequence
// before a single-stage kernel slides over it.
func (s Spec) PaddingSize() (int, error) {
	w, err := s.WindowSize()
	if err != nil {
		return 0, err
	}
	return w / 2, nil
}

// WindowTag encodes kind, window and sharpening mode as a directory name.
func (s Spec) WindowTag() string {
	lapl := laplWindowPrefix + strconv.Itoa(LaplacianWindow)
	if s.MaxSharpen {
		lapl += maxSharpenSuffix
	}
	switch s.Kind {
	case RunningMean:
		return avWindowPrefix + strconv.Itoa(s.Window)
	case Laplacian:
		return lapl
	case BlurThenSharpen:
		return avWindowPrefix + strconv.Itoa(s.Window) + "_" + lapl
	default:
		return ""
	}
}

func (s Spec) withKind(k Kind) Spec {
	s.Kind = k
	return s
}
