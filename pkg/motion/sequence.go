// Package motion provides canned joint sequences for the D1 arm.
// A Sequence is a list of timed 7-joint poses; the Player drives a
// controller through them step by step. The firmware performs the actual
// interpolation between poses.
package motion

import (
	"time"

	"github.com/armlabs/go-d1/pkg/protocol"
)

// Step is one pose in a sequence: target angles (degrees, firmware
// order) and how long to hold before the next step.
type Step struct {
	Angles [protocol.NumJoints]float64
	Hold   time.Duration
}

// Sequence is a named series of steps.
type Sequence struct {
	Name  string
	Steps []Step
}

// Duration returns the total hold time of the sequence.
func (s Sequence) Duration() time.Duration {
	var d time.Duration
	for _, step := range s.Steps {
		d += step.Hold
	}
	return d
}
