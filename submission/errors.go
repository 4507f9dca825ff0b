package submission

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrMissingSubset is returned when a subset directory exists in none of
	// the accepted layouts.
	ErrMissingSubset = errors.New("submission: subset directory not found, check submission integrity and subset dir names")

	// ErrShape is returned for a representation file that is not a matrix.
	ErrShape = errors.New("submission: representation is not two-dimensional")

	// ErrMetaNotFound is returned when no meta.yaml exists in any layout.
	ErrMetaNotFound = errors.New("submission: unable to find meta.yaml in submission")
)

// MissingSubsetError names the subset and every directory that was tried.
type MissingSubsetError struct {
	Subset string
	Tried  []string
}

func (e *MissingSubsetError) Error() string {
	return fmt.Sprintf("%v: %s (tried %s)", ErrMissingSubset, e.Subset, strings.Join(e.Tried, ", "))
}

func (e *MissingSubsetError) Unwrap() error { return ErrMissingSubset }

// ShapeError locates the first row whose width differs from the first row.
type ShapeError struct {
	Path string
	Line int
	Want int
	Got  int
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("%v: %s:%d has %d values, expected %d", ErrShape, e.Path, e.Line, e.Got, e.Want)
}

func (e *ShapeError) Unwrap() error { return ErrShape }
