package orchestrator

import (
	"errors"

	"github.com/maastricht-university/zerospeech-convolution/submission"
)

// ErrDuplicateOutput is returned when two input files resolve to one output path.
var ErrDuplicateOutput = errors.New("orchestrator: two input files map to the same output path")

// Job converts one utterance file. Out is unique within a run.
type Job struct {
	Subset string
	Source submission.File
	Out    string
}

type Summary struct {
	Subsets    int
	Files      int
	Frames     int
	MetaCopied bool
}
