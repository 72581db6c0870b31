package transforms

import (
	"errors"
	"fmt"
)

var (
	// ErrLandmarkCount reports that a geometric transform produced a
	// different number of landmarks than it received. This is always a hard
	// failure for the offending step, never a silent truncation.
	ErrLandmarkCount = errors.New("landmark count mismatch")

	// ErrConfig reports invalid constructor arguments. It is returned at
	// construction time only; a successfully constructed transform never
	// fails validation at call time.
	ErrConfig = errors.New("invalid transform configuration")
)

// countMismatch builds the standard ErrLandmarkCount wrapper for a transform.
func countMismatch(name string, want, got int) error {
	return fmt.Errorf("%w: %s: %d input landmarks, but got %d output landmarks",
		ErrLandmarkCount, name, want, got)
}

// configErr builds an ErrConfig wrapper with a formatted detail message.
func configErr(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrConfig, fmt.Sprintf(format, args...))
}
