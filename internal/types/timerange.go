package types

import (
	"errors"
	"fmt"
)

// TimeRange is a validated [start, end) window in seconds.
type TimeRange struct {
	StartSeconds float64
	EndSeconds   float64
}

var errEmptyRange = errors.New("time range is empty or negative")

// Validate checks the range in isolation: start must be non-negative and
// the window strictly positive.
func (r TimeRange) Validate() error {
	if r.StartSeconds < 0 {
		return fmt.Errorf("start %.3f is negative", r.StartSeconds)
	}
	if r.EndSeconds <= r.StartSeconds {
		return errEmptyRange
	}
	return nil
}

// ValidateAgainst additionally checks the range against the source duration.
func (r TimeRange) ValidateAgainst(durationSeconds int64) error {
	if err := r.Validate(); err != nil {
		return err
	}
	if r.EndSeconds > float64(durationSeconds) {
		return fmt.Errorf("end %.3f exceeds duration %d", r.EndSeconds, durationSeconds)
	}
	return nil
}

// Duration returns the window length in seconds.
func (r TimeRange) Duration() float64 {
	return r.EndSeconds - r.StartSeconds
}
