package tui

import (
	"context"
	"errors"

	"github.com/CodePen-Alt/ColorPicker/internal/session"
)

// ErrSampleUnavailable means the environment cannot read screen pixels.
// It is surfaced once at startup so the pick binding can be disabled.
var ErrSampleUnavailable = errors.New("pixel sampling is not available")

// Sampler asynchronously picks a pixel color from outside the program.
// Sample blocks until the user picks, cancels, or ctx is done; a
// cancellation is reported in the result, not as an error.
type Sampler interface {
	Available() bool
	Sample(ctx context.Context) (session.SampleResult, error)
}

// UnavailableSampler is the stock sampler: a terminal process has no
// portable way to read screen pixels, so the control reports itself
// unavailable and the TUI disables the binding.
type UnavailableSampler struct{}

func (UnavailableSampler) Available() bool { return false }

func (UnavailableSampler) Sample(context.Context) (session.SampleResult, error) {
	return session.SampleResult{}, ErrSampleUnavailable
}
