package protocol

import "fmt"

// NumJoints is the number of joints on the D1 arm.
const NumJoints = 7

// Joint identifies one of the arm's seven joints.
// Angles are in degrees.
type Joint int

// Joint numbering matches the arm firmware.
const (
	BaseRotation Joint = iota
	ShoulderPitch
	ShoulderRoll
	ElbowPitch
	WristPitch
	WristRoll
	Gripper
)

var jointNames = [NumJoints]string{
	"base rotation",
	"shoulder pitch",
	"shoulder roll",
	"elbow pitch",
	"wrist pitch",
	"wrist roll",
	"gripper",
}

// Valid reports whether j is a real joint (0-6).
func (j Joint) Valid() bool {
	return j >= 0 && j < NumJoints
}

// String returns the human-readable joint name.
func (j Joint) String() string {
	if !j.Valid() {
		return fmt.Sprintf("joint(%d)", int(j))
	}
	return jointNames[j]
}

// Joints returns all joints in firmware order.
func Joints() []Joint {
	js := make([]Joint, NumJoints)
	for i := range js {
		js[i] = Joint(i)
	}
	return js
}
