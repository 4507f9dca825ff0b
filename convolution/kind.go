package convolution

import "fmt"

// Kind enumerates the supported filters.
type Kind int

const (
	// RunningMean blurs with a box window of Spec.Window frames.
	RunningMean Kind = iota

	// Laplacian sharpens with a fixed 3-tap kernel.
	Laplacian

	// BlurThenSharpen applies RunningMean, then Laplacian to its result.
	BlurThenSharpen
)

var kindNames = [...]string{
	RunningMean:     "running_mean",
	Laplacian:       "laplacian",
	BlurThenSharpen: "blur_then_sharpen",
}

func Kinds() []Kind { return []Kind{RunningMean, Laplacian, BlurThenSharpen} }

// String returns the command-line name of k, which is also the first
// directory level of a generated submission.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

func ParseKind(name string) (Kind, error) {
	for k, n := range kindNames {
		if n == name {
			return Kind(k), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, name)
}
