package bus

import "fmt"

// Topic names spoken by the D1 arm firmware. These are an external
// contract and must match the firmware exactly.

// TopicCommand is the outbound command topic.
// Publishes: ArmString envelope wrapping a JSON command.
const TopicCommand = "rt/arm_Command"

// TopicServoAngles is the inbound joint-angle topic.
// Subscribes: seven per-joint float32 values, firmware order.
const TopicServoAngles = "current_servo_angle"

// TopicFeedback is the inbound arm status topic.
// Subscribes: ArmString envelope with an opaque status string.
const TopicFeedback = "arm_Feedback"

// Topics builds fully-qualified topic names for a domain.
//
// Domain 0 produces the bare firmware names. A non-zero domain prefixes
// "d<id>/", giving independent arms on a shared broker disjoint topic
// spaces, the same role a domain id plays for DDS participants.
type Topics struct {
	domain int
}

// NewTopics creates a Topics helper for the given domain id.
func NewTopics(domainID int) *Topics {
	return &Topics{domain: domainID}
}

func (t *Topics) qualify(name string) string {
	if t.domain == 0 {
		return name
	}
	return fmt.Sprintf("d%d/%s", t.domain, name)
}

// Command returns the full command topic name.
func (t *Topics) Command() string {
	return t.qualify(TopicCommand)
}

// ServoAngles returns the full servo-angle topic name.
func (t *Topics) ServoAngles() string {
	return t.qualify(TopicServoAngles)
}

// Feedback returns the full feedback topic name.
func (t *Topics) Feedback() string {
	return t.qualify(TopicFeedback)
}
