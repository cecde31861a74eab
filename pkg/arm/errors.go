package arm

import "errors"

// Validation errors. These are recoverable: the command is not
// transmitted and the caller may retry with corrected input.
var (
	// ErrInvalidJoint is returned when a joint id is outside 0-6.
	ErrInvalidJoint = errors.New("joint id out of range")

	// ErrAngleCount is returned when a move-all request does not carry
	// exactly seven angles.
	ErrAngleCount = errors.New("expected 7 joint angles")

	// ErrClosed is returned when commanding a closed controller.
	ErrClosed = errors.New("controller is closed")
)
