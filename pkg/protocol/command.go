// Package protocol defines the wire format spoken by the D1 arm firmware.
//
// Commands are JSON objects tagged with a function code, wrapped in a
// one-field string envelope (the firmware's ArmString type) before being
// published on the command topic. The firmware reads the funcode to decide
// which operation to execute; the data field carries the parameters.
package protocol

import (
	"encoding/json"
	"fmt"
)

// Funcode selects the arm operation a command requests.
type Funcode int

const (
	// FuncodeMoveJoint moves a single joint to a target angle.
	FuncodeMoveJoint Funcode = 1
	// FuncodeMoveAll moves all seven joints simultaneously.
	FuncodeMoveAll Funcode = 2
	// FuncodeEnable enables or disables the joint motors.
	FuncodeEnable Funcode = 5
	// FuncodeZero moves the arm to its zero position.
	FuncodeZero Funcode = 7
)

// DeviceAddress identifies the target device. Fixed at 1 for a
// single-arm setup.
const DeviceAddress = 1

// Enable/disable modes for FuncodeEnable.
const (
	ModeEnable  = 0
	ModeDisable = 1
)

// Command is the record published on the command topic.
// Seq is assigned by the controller immediately before sending.
type Command struct {
	Funcode Funcode         `json:"funcode"`
	Data    json.RawMessage `json:"data,omitempty"`
	Seq     uint32          `json:"seq"`
	Address int             `json:"address"`
}

// MoveJointData carries the parameters for FuncodeMoveJoint.
type MoveJointData struct {
	ID      int     `json:"id"`
	Angle   float64 `json:"angle"`
	DelayMS int     `json:"delay_ms"`
}

// MoveAllData carries the parameters for FuncodeMoveAll.
// Mode is always 1; angles are per-joint targets in firmware order.
type MoveAllData struct {
	Mode   int     `json:"mode"`
	Angle0 float64 `json:"angle0"`
	Angle1 float64 `json:"angle1"`
	Angle2 float64 `json:"angle2"`
	Angle3 float64 `json:"angle3"`
	Angle4 float64 `json:"angle4"`
	Angle5 float64 `json:"angle5"`
	Angle6 float64 `json:"angle6"`
}

// Angles returns the targets as an ordered array (index = joint id).
func (d MoveAllData) Angles() [NumJoints]float64 {
	return [NumJoints]float64{
		d.Angle0, d.Angle1, d.Angle2, d.Angle3, d.Angle4, d.Angle5, d.Angle6,
	}
}

// EnableData carries the parameters for FuncodeEnable.
type EnableData struct {
	Mode int `json:"mode"`
}

// NewCommand creates a command with the given funcode and parameters.
// A nil data omits the data field entirely (used by FuncodeZero).
// The address is fixed at DeviceAddress; Seq is left for the sender.
func NewCommand(fc Funcode, data interface{}) (*Command, error) {
	var raw json.RawMessage
	if data != nil {
		var err error
		raw, err = json.Marshal(data)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal command data: %w", err)
		}
	}

	return &Command{
		Funcode: fc,
		Data:    raw,
		Address: DeviceAddress,
	}, nil
}

// NewMoveJointCommand builds a FuncodeMoveJoint command.
func NewMoveJointCommand(joint Joint, angle float64, delayMS int) (*Command, error) {
	return NewCommand(FuncodeMoveJoint, MoveJointData{
		ID:      int(joint),
		Angle:   angle,
		DelayMS: delayMS,
	})
}

// NewMoveAllCommand builds a FuncodeMoveAll command from per-joint targets.
func NewMoveAllCommand(angles [NumJoints]float64) (*Command, error) {
	return NewCommand(FuncodeMoveAll, MoveAllData{
		Mode:   1,
		Angle0: angles[0],
		Angle1: angles[1],
		Angle2: angles[2],
		Angle3: angles[3],
		Angle4: angles[4],
		Angle5: angles[5],
		Angle6: angles[6],
	})
}

// NewEnableCommand builds a FuncodeEnable command.
// mode is ModeEnable (0) or ModeDisable (1).
func NewEnableCommand(mode int) (*Command, error) {
	return NewCommand(FuncodeEnable, EnableData{Mode: mode})
}

// NewZeroCommand builds a FuncodeZero command. It carries no data.
func NewZeroCommand() (*Command, error) {
	return NewCommand(FuncodeZero, nil)
}

// ParseData unmarshals the command parameters into the provided struct.
func (c *Command) ParseData(v interface{}) error {
	if c.Data == nil {
		return nil
	}
	return json.Unmarshal(c.Data, v)
}

// Encode serializes the command and wraps it in the ArmString envelope,
// producing the bytes published on the command topic.
func (c *Command) Encode() ([]byte, error) {
	inner, err := json.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal command: %w", err)
	}
	return json.Marshal(ArmString{Data: string(inner)})
}

// DecodeCommand parses an ArmString-wrapped command payload.
func DecodeCommand(payload []byte) (*Command, error) {
	var env ArmString
	if err := json.Unmarshal(payload, &env); err != nil {
		return nil, fmt.Errorf("failed to parse command envelope: %w", err)
	}

	var cmd Command
	if err := json.Unmarshal([]byte(env.Data), &cmd); err != nil {
		return nil, fmt.Errorf("failed to parse command: %w", err)
	}
	return &cmd, nil
}
