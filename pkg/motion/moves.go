package motion

import "time"

// Built-in sequences. Angles are conservative and stay well inside the
// arm's mechanical range.

// Home returns all joints to zero over a single step.
func Home() Sequence {
	return Sequence{
		Name: "home",
		Steps: []Step{
			{Hold: 2 * time.Second},
		},
	}
}

// Wave swings the wrist roll joint side to side.
func Wave() Sequence {
	left := [7]float64{0, 20, 0, 40, 0, -30, 0}
	right := [7]float64{0, 20, 0, 40, 0, 30, 0}

	return Sequence{
		Name: "wave",
		Steps: []Step{
			{Angles: [7]float64{0, 20, 0, 40, 0, 0, 0}, Hold: 1500 * time.Millisecond},
			{Angles: left, Hold: 700 * time.Millisecond},
			{Angles: right, Hold: 700 * time.Millisecond},
			{Angles: left, Hold: 700 * time.Millisecond},
			{Angles: right, Hold: 700 * time.Millisecond},
			{Hold: 1500 * time.Millisecond},
		},
	}
}

// GripperPulse opens and closes the gripper twice.
func GripperPulse() Sequence {
	open := [7]float64{0, 0, 0, 0, 0, 0, 60}
	closed := [7]float64{}

	return Sequence{
		Name: "gripper-pulse",
		Steps: []Step{
			{Angles: open, Hold: time.Second},
			{Angles: closed, Hold: time.Second},
			{Angles: open, Hold: time.Second},
			{Angles: closed, Hold: time.Second},
		},
	}
}

// ByName looks up a built-in sequence.
func ByName(name string) (Sequence, bool) {
	switch name {
	case "home":
		return Home(), true
	case "wave":
		return Wave(), true
	case "gripper-pulse":
		return GripperPulse(), true
	}
	return Sequence{}, false
}
