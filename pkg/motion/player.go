package motion

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"
)

// Commander is the slice of the arm controller the player needs.
type Commander interface {
	MoveAllJoints(angles []float64) error
}

// Player runs sequences against an arm controller, one at a time.
type Player struct {
	arm    Commander
	logger *slog.Logger

	mu      sync.Mutex
	playing string

	// Diagnostics
	stepCount  uint64
	errorCount uint64
}

// NewPlayer creates a player for the given controller.
func NewPlayer(arm Commander, logger *slog.Logger) *Player {
	if logger == nil {
		logger = slog.Default()
	}
	return &Player{arm: arm, logger: logger}
}

// Play runs the sequence to completion, blocking between steps.
// It stops early when the context is cancelled or a send fails.
func (p *Player) Play(ctx context.Context, seq Sequence) error {
	p.mu.Lock()
	if p.playing != "" {
		current := p.playing
		p.mu.Unlock()
		return fmt.Errorf("sequence %q already playing", current)
	}
	p.playing = seq.Name
	p.mu.Unlock()

	defer func() {
		p.mu.Lock()
		p.playing = ""
		p.mu.Unlock()
	}()

	p.logger.Info("sequence started", "name", seq.Name, "steps", len(seq.Steps), "duration", seq.Duration())

	for i, step := range seq.Steps {
		if err := p.arm.MoveAllJoints(step.Angles[:]); err != nil {
			p.errorCount++
			return fmt.Errorf("sequence %q step %d: %w", seq.Name, i, err)
		}
		p.stepCount++

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(step.Hold):
		}
	}

	p.logger.Info("sequence completed", "name", seq.Name)
	return nil
}

// Playing returns the name of the running sequence, or empty when idle.
func (p *Player) Playing() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.playing
}
