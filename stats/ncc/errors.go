package ncc

import (
	"errors"
	"fmt"
)

// Errors returned by correlation functions.
var (
	ErrEmptyInput     = errors.New("ncc: empty input")
	ErrLengthMismatch = errors.New("ncc: length mismatch")
)

// LengthMismatchError reports two sequences of different length.
type LengthMismatchError struct {
	LenF int
	LenG int
}

func (e *LengthMismatchError) Error() string {
	return fmt.Sprintf("ncc: received unequal sets, sizes are %d and %d", e.LenF, e.LenG)
}

// Is reports whether target is ErrLengthMismatch.
func (e *LengthMismatchError) Is(target error) bool {
	return target == ErrLengthMismatch
}

func checkLengths(f, g []float64) error {
	if len(f) != len(g) {
		return &LengthMismatchError{LenF: len(f), LenG: len(g)}
	}
	if len(f) == 0 {
		return ErrEmptyInput
	}
	return nil
}
