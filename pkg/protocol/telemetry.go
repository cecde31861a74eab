package protocol

import (
	"encoding/json"
	"fmt"
)

// ArmString is the firmware's one-field string envelope
// (unitree_arm::msg::dds_::ArmString_). Outbound it wraps a serialized
// Command; inbound on the feedback topic it carries an opaque status
// string whose format the firmware owns.
type ArmString struct {
	Data string `json:"data_"`
}

// ServoAngles is the frame published by the firmware on the servo-angle
// topic (unitree_arm::msg::dds_::PubServoInfo_): one float32 per joint.
type ServoAngles struct {
	Servo0 float32 `json:"servo0_data_"`
	Servo1 float32 `json:"servo1_data_"`
	Servo2 float32 `json:"servo2_data_"`
	Servo3 float32 `json:"servo3_data_"`
	Servo4 float32 `json:"servo4_data_"`
	Servo5 float32 `json:"servo5_data_"`
	Servo6 float32 `json:"servo6_data_"`
}

// AsList returns the angles as an ordered array (index = joint id).
func (s ServoAngles) AsList() [NumJoints]float32 {
	return [NumJoints]float32{
		s.Servo0, s.Servo1, s.Servo2, s.Servo3, s.Servo4, s.Servo5, s.Servo6,
	}
}

// DecodeServoAngles parses a servo-angle frame.
func DecodeServoAngles(payload []byte) (*ServoAngles, error) {
	var s ServoAngles
	if err := json.Unmarshal(payload, &s); err != nil {
		return nil, fmt.Errorf("failed to parse servo angles: %w", err)
	}
	return &s, nil
}

// DecodeFeedback extracts the opaque status string from a feedback
// envelope.
func DecodeFeedback(payload []byte) (string, error) {
	var env ArmString
	if err := json.Unmarshal(payload, &env); err != nil {
		return "", fmt.Errorf("failed to parse feedback: %w", err)
	}
	return env.Data, nil
}
