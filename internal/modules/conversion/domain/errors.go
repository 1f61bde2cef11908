package domain

import (
	"errors"
	"fmt"
)

var (
	ErrFetch   = errors.New("fetch failed")
	ErrConvert = errors.New("convert failed")
	ErrStore   = errors.New("store failed")

	ErrConverterNotFound = errors.New("converter executable not found")
)

// Stage names the step of a round trip.
type Stage string

const (
	StageFetch   Stage = "fetch"
	StageConvert Stage = "convert"
	StageStore   Stage = "store"
)

func (s Stage) sentinel() error {
	switch s {
	case StageFetch:
		return ErrFetch
	case StageConvert:
		return ErrConvert
	case StageStore:
		return ErrStore
	}
	return nil
}

// StageError reports which stage aborted a round trip.
type StageError struct {
	Stage Stage
	Key   string
	Err   error
}

func (e *StageError) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("%s: %v", e.Stage, e.Err)
	}
	return fmt.Sprintf("%s %q: %v", e.Stage, e.Key, e.Err)
}

func (e *StageError) Unwrap() error { return e.Err }

// Is matches the stage sentinel so callers can write errors.Is(err, ErrConvert).
func (e *StageError) Is(target error) bool {
	return target != nil && target == e.Stage.sentinel()
}

// StageOf returns the stage that failed, or "" if err did not come from a round trip.
func StageOf(err error) Stage {
	var se *StageError
	if errors.As(err, &se) {
		return se.Stage
	}
	return ""
}

// ExitError is returned when the converter ran but exited non-zero.
type ExitError struct {
	Command string
	Code    int
	Stdout  string
	Stderr  string
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("%s exited with status %d: %s", e.Command, e.Code, e.Stderr)
}
