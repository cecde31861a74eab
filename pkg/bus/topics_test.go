package bus

import "testing"

func TestTopicsDomainZero(t *testing.T) {
	topics := NewTopics(0)

	// Domain 0 must produce the bare firmware names exactly.
	if got := topics.Command(); got != "rt/arm_Command" {
		t.Errorf("Command() = %q", got)
	}
	if got := topics.ServoAngles(); got != "current_servo_angle" {
		t.Errorf("ServoAngles() = %q", got)
	}
	if got := topics.Feedback(); got != "arm_Feedback" {
		t.Errorf("Feedback() = %q", got)
	}
}

func TestTopicsDomainPrefix(t *testing.T) {
	topics := NewTopics(2)

	if got := topics.Command(); got != "d2/rt/arm_Command" {
		t.Errorf("Command() = %q", got)
	}
	if got := topics.ServoAngles(); got != "d2/current_servo_angle" {
		t.Errorf("ServoAngles() = %q", got)
	}
	if got := topics.Feedback(); got != "d2/arm_Feedback" {
		t.Errorf("Feedback() = %q", got)
	}
}
