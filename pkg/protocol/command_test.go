package protocol

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestNewCommand(t *testing.T) {
	tests := []struct {
		name    string
		funcode Funcode
		data    interface{}
		wantErr bool
	}{
		{
			name:    "move joint",
			funcode: FuncodeMoveJoint,
			data:    MoveJointData{ID: 3, Angle: 45.0},
			wantErr: false,
		},
		{
			name:    "enable",
			funcode: FuncodeEnable,
			data:    EnableData{Mode: ModeEnable},
			wantErr: false,
		},
		{
			name:    "zero with nil data",
			funcode: FuncodeZero,
			data:    nil,
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, err := NewCommand(tt.funcode, tt.data)
			if (err != nil) != tt.wantErr {
				t.Errorf("NewCommand() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if cmd.Funcode != tt.funcode {
				t.Errorf("Funcode = %v, want %v", cmd.Funcode, tt.funcode)
			}
			if cmd.Address != DeviceAddress {
				t.Errorf("Address = %v, want %v", cmd.Address, DeviceAddress)
			}
			if cmd.Seq != 0 {
				t.Errorf("Seq = %v, want 0 before send", cmd.Seq)
			}
		})
	}
}

func TestZeroCommandHasNoDataField(t *testing.T) {
	cmd, err := NewZeroCommand()
	if err != nil {
		t.Fatalf("NewZeroCommand() error = %v", err)
	}

	inner, err := json.Marshal(cmd)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if strings.Contains(string(inner), `"data"`) {
		t.Errorf("zero command should not carry a data field: %s", inner)
	}
	if !strings.Contains(string(inner), `"funcode":7`) {
		t.Errorf("zero command missing funcode 7: %s", inner)
	}
}

func TestMoveAllRoundTrip(t *testing.T) {
	angles := [NumJoints]float64{0, 10, 20, 30, 40, 50, 60}

	cmd, err := NewMoveAllCommand(angles)
	if err != nil {
		t.Fatalf("NewMoveAllCommand() error = %v", err)
	}

	payload, err := cmd.Encode()
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}

	decoded, err := DecodeCommand(payload)
	if err != nil {
		t.Fatalf("DecodeCommand() error = %v", err)
	}

	if decoded.Funcode != FuncodeMoveAll {
		t.Errorf("Funcode = %v, want %v", decoded.Funcode, FuncodeMoveAll)
	}
	if decoded.Address != DeviceAddress {
		t.Errorf("Address = %v, want %v", decoded.Address, DeviceAddress)
	}

	var data MoveAllData
	if err := decoded.ParseData(&data); err != nil {
		t.Fatalf("ParseData() error = %v", err)
	}
	if data.Mode != 1 {
		t.Errorf("Mode = %v, want 1", data.Mode)
	}
	if data.Angles() != angles {
		t.Errorf("Angles = %v, want %v", data.Angles(), angles)
	}
}

func TestMoveJointCommandWire(t *testing.T) {
	cmd, err := NewMoveJointCommand(ElbowPitch, 45.0, 0)
	if err != nil {
		t.Fatalf("NewMoveJointCommand() error = %v", err)
	}

	payload, err := cmd.Encode()
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}

	// The envelope is a single string field holding the command JSON.
	var env ArmString
	if err := json.Unmarshal(payload, &env); err != nil {
		t.Fatalf("envelope parse error = %v", err)
	}

	decoded, err := DecodeCommand(payload)
	if err != nil {
		t.Fatalf("DecodeCommand() error = %v", err)
	}

	var data MoveJointData
	if err := decoded.ParseData(&data); err != nil {
		t.Fatalf("ParseData() error = %v", err)
	}
	if data.ID != 3 {
		t.Errorf("ID = %v, want 3", data.ID)
	}
	if data.Angle != 45.0 {
		t.Errorf("Angle = %v, want 45.0", data.Angle)
	}
	if data.DelayMS != 0 {
		t.Errorf("DelayMS = %v, want 0", data.DelayMS)
	}
}

func TestEnableCommandModes(t *testing.T) {
	for _, mode := range []int{ModeEnable, ModeDisable} {
		cmd, err := NewEnableCommand(mode)
		if err != nil {
			t.Fatalf("NewEnableCommand(%d) error = %v", mode, err)
		}
		var data EnableData
		if err := cmd.ParseData(&data); err != nil {
			t.Fatalf("ParseData() error = %v", err)
		}
		if data.Mode != mode {
			t.Errorf("Mode = %v, want %v", data.Mode, mode)
		}
	}
}

func TestDecodeCommandBadPayload(t *testing.T) {
	if _, err := DecodeCommand([]byte("not json")); err == nil {
		t.Error("DecodeCommand() expected error for bad envelope")
	}
	if _, err := DecodeCommand([]byte(`{"data_":"not json"}`)); err == nil {
		t.Error("DecodeCommand() expected error for bad inner payload")
	}
}

func TestJointValid(t *testing.T) {
	for _, j := range Joints() {
		if !j.Valid() {
			t.Errorf("Joint %d should be valid", j)
		}
	}
	for _, j := range []Joint{-1, 7, 100} {
		if j.Valid() {
			t.Errorf("Joint %d should be invalid", j)
		}
	}
}

func TestJointString(t *testing.T) {
	if got := ElbowPitch.String(); got != "elbow pitch" {
		t.Errorf("ElbowPitch.String() = %q", got)
	}
	if got := Gripper.String(); got != "gripper" {
		t.Errorf("Gripper.String() = %q", got)
	}
	if got := Joint(9).String(); got != "joint(9)" {
		t.Errorf("Joint(9).String() = %q", got)
	}
}
