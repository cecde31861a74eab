// Package arm provides the command encoder/publisher and telemetry reader
// for the Unitree D1 robotic arm.
//
// The controller translates high-level intents (move one joint, move all
// joints, enable/disable, go to zero) into funcode-tagged JSON commands
// published on the firmware's command topic, and caches the latest
// servo-angle and feedback samples from the two inbound topics.
package arm

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/armlabs/go-d1/pkg/bus"
	"github.com/armlabs/go-d1/pkg/protocol"
)

// Transport is the pub/sub surface the controller needs.
// *bus.Client satisfies it; tests substitute a mock.
type Transport interface {
	Publish(topic string, data []byte) error
	Subscribe(topic string, handler func(data []byte)) error
	Close() error
}

// DefaultSettleDelay is how long Connect pauses after establishing
// subscriptions, giving the pub/sub layer's discovery handshake time to
// settle before the first command. A heuristic, not a guarantee.
const DefaultSettleDelay = 500 * time.Millisecond

// Config holds controller configuration.
type Config struct {
	// Bus configures the underlying pub/sub transport.
	Bus bus.Config

	// SettleDelay overrides DefaultSettleDelay when positive.
	SettleDelay time.Duration
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Bus:         bus.DefaultConfig(),
		SettleDelay: DefaultSettleDelay,
	}
}

// Controller commands a single D1 arm over pub/sub.
type Controller struct {
	transport Transport
	topics    *bus.Topics
	logger    *slog.Logger

	// sendMu serializes command emission so the seq field stays
	// monotonic even with multiple callers.
	sendMu sync.Mutex
	seq    uint32
	closed bool

	mu           sync.RWMutex
	angles       [protocol.NumJoints]float32
	haveAngles   bool
	feedback     string
	haveFeedback bool

	// OnAngles, if set before Start, is called for every servo-angle
	// sample received.
	OnAngles func([protocol.NumJoints]float32)
}

// NewController creates a controller on an already-connected transport.
// Call Start to establish the telemetry subscriptions.
func NewController(transport Transport, domainID int, logger *slog.Logger) *Controller {
	if logger == nil {
		logger = slog.Default()
	}
	return &Controller{
		transport: transport,
		topics:    bus.NewTopics(domainID),
		logger:    logger,
	}
}

// Connect dials the broker, starts telemetry subscriptions, and waits the
// settle delay before returning a ready controller.
func Connect(ctx context.Context, cfg Config) (*Controller, error) {
	client, err := bus.New(cfg.Bus, nil)
	if err != nil {
		return nil, err
	}
	if err := client.Connect(ctx); err != nil {
		return nil, err
	}

	c := NewController(client, cfg.Bus.DomainID, slog.Default())
	if err := c.Start(); err != nil {
		client.Close()
		return nil, err
	}

	settle := cfg.SettleDelay
	if settle <= 0 {
		settle = DefaultSettleDelay
	}
	select {
	case <-ctx.Done():
		client.Close()
		return nil, ctx.Err()
	case <-time.After(settle):
	}

	c.logger.Info("arm controller ready", "domain", cfg.Bus.DomainID)
	return c, nil
}

// Start establishes the servo-angle and feedback subscriptions.
func (c *Controller) Start() error {
	if err := c.transport.Subscribe(c.topics.ServoAngles(), c.handleServoAngles); err != nil {
		return fmt.Errorf("subscribe servo angles: %w", err)
	}
	if err := c.transport.Subscribe(c.topics.Feedback(), c.handleFeedback); err != nil {
		return fmt.Errorf("subscribe feedback: %w", err)
	}
	return nil
}

// send assigns the sequence number and address, encodes, and publishes.
// The counter is incremented only after the transport accepts the message.
func (c *Controller) send(cmd *protocol.Command) error {
	c.sendMu.Lock()
	defer c.sendMu.Unlock()

	if c.closed {
		return ErrClosed
	}

	cmd.Seq = c.seq
	payload, err := cmd.Encode()
	if err != nil {
		return err
	}

	if err := c.transport.Publish(c.topics.Command(), payload); err != nil {
		return fmt.Errorf("publish command: %w", err)
	}

	c.seq++
	return nil
}

// MoveJoint moves a single joint to a target angle in degrees.
// delayMS is the wait before the firmware starts the move.
func (c *Controller) MoveJoint(joint protocol.Joint, angle float64, delayMS int) error {
	if !joint.Valid() {
		return fmt.Errorf("%w: %d", ErrInvalidJoint, int(joint))
	}

	cmd, err := protocol.NewMoveJointCommand(joint, angle, delayMS)
	if err != nil {
		return err
	}
	if err := c.send(cmd); err != nil {
		return err
	}

	c.logger.Info("move joint", "joint", joint.String(), "angle", angle, "delay_ms", delayMS)
	return nil
}

// MoveAllJoints moves all seven joints simultaneously to target angles
// in degrees, firmware order.
func (c *Controller) MoveAllJoints(angles []float64) error {
	if len(angles) != protocol.NumJoints {
		return fmt.Errorf("%w: got %d", ErrAngleCount, len(angles))
	}

	var target [protocol.NumJoints]float64
	copy(target[:], angles)

	cmd, err := protocol.NewMoveAllCommand(target)
	if err != nil {
		return err
	}
	if err := c.send(cmd); err != nil {
		return err
	}

	c.logger.Info("move all joints", "angles", angles)
	return nil
}

// SetJointsMode enables (mode 0) or disables (mode 1) the joint motors.
// The mode value is passed through to the firmware unvalidated.
func (c *Controller) SetJointsMode(mode int) error {
	cmd, err := protocol.NewEnableCommand(mode)
	if err != nil {
		return err
	}
	if err := c.send(cmd); err != nil {
		return err
	}

	c.logger.Info("set joints mode", "mode", mode)
	return nil
}

// EnableJoints enables the joint motors.
func (c *Controller) EnableJoints() error {
	return c.SetJointsMode(protocol.ModeEnable)
}

// DisableJoints disables the joint motors.
func (c *Controller) DisableJoints() error {
	return c.SetJointsMode(protocol.ModeDisable)
}

// GoToZero moves the arm to its zero position.
func (c *Controller) GoToZero() error {
	cmd, err := protocol.NewZeroCommand()
	if err != nil {
		return err
	}
	if err := c.send(cmd); err != nil {
		return err
	}

	c.logger.Info("go to zero")
	return nil
}

// JointAngles returns the most recently reported joint angles
// (index = joint id). ok is false until the first sample arrives.
func (c *Controller) JointAngles() (angles [protocol.NumJoints]float32, ok bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.angles, c.haveAngles
}

// Feedback returns the most recent arm status string.
// ok is false until the first sample arrives.
func (c *Controller) Feedback() (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.feedback, c.haveFeedback
}

// Close releases the transport. Further commands return ErrClosed.
func (c *Controller) Close() error {
	c.sendMu.Lock()
	defer c.sendMu.Unlock()

	if c.closed {
		return nil
	}
	c.closed = true
	return c.transport.Close()
}

func (c *Controller) handleServoAngles(data []byte) {
	sample, err := protocol.DecodeServoAngles(data)
	if err != nil {
		c.logger.Warn("bad servo angle sample", "error", err)
		return
	}

	angles := sample.AsList()

	c.mu.Lock()
	c.angles = angles
	c.haveAngles = true
	cb := c.OnAngles
	c.mu.Unlock()

	if cb != nil {
		cb(angles)
	}
}

func (c *Controller) handleFeedback(data []byte) {
	status, err := protocol.DecodeFeedback(data)
	if err != nil {
		c.logger.Warn("bad feedback sample", "error", err)
		return
	}

	c.mu.Lock()
	c.feedback = status
	c.haveFeedback = true
	c.mu.Unlock()
}

// Ensure the bus client satisfies the transport contract.
var _ Transport = (*bus.Client)(nil)
