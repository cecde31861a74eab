package motion

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"
)

// mockCommander records every pose it is asked to reach.
type mockCommander struct {
	mu    sync.Mutex
	calls [][]float64
	err   error
}

func (m *mockCommander) MoveAllJoints(angles []float64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	cp := make([]float64, len(angles))
	copy(cp, angles)
	m.calls = append(m.calls, cp)
	return nil
}

func (m *mockCommander) callCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.calls)
}

func TestPlayerStepsThroughSequence(t *testing.T) {
	mock := &mockCommander{}
	player := NewPlayer(mock, nil)

	seq := Sequence{
		Name: "test",
		Steps: []Step{
			{Angles: [7]float64{1, 0, 0, 0, 0, 0, 0}, Hold: time.Millisecond},
			{Angles: [7]float64{2, 0, 0, 0, 0, 0, 0}, Hold: time.Millisecond},
			{Angles: [7]float64{3, 0, 0, 0, 0, 0, 0}, Hold: time.Millisecond},
		},
	}

	if err := player.Play(context.Background(), seq); err != nil {
		t.Fatalf("Play() error = %v", err)
	}

	if mock.callCount() != 3 {
		t.Fatalf("calls = %d, want 3", mock.callCount())
	}
	for i, want := range []float64{1, 2, 3} {
		if mock.calls[i][0] != want {
			t.Errorf("step %d angle0 = %v, want %v", i, mock.calls[i][0], want)
		}
	}
	if player.Playing() != "" {
		t.Errorf("Playing() = %q after completion, want empty", player.Playing())
	}
}

func TestPlayerStopsOnCommandError(t *testing.T) {
	mock := &mockCommander{err: errors.New("broker down")}
	player := NewPlayer(mock, nil)

	err := player.Play(context.Background(), Wave())
	if err == nil {
		t.Fatal("Play() expected error")
	}
}

func TestPlayerHonorsCancellation(t *testing.T) {
	mock := &mockCommander{}
	player := NewPlayer(mock, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	seq := Sequence{
		Name:  "slow",
		Steps: []Step{{Hold: time.Minute}},
	}

	done := make(chan error, 1)
	go func() {
		done <- player.Play(ctx, seq)
	}()

	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("Play() error = %v, want context.Canceled", err)
		}
	case <-time.After(time.Second):
		t.Fatal("Play() did not stop on cancellation")
	}
}

func TestSequenceDuration(t *testing.T) {
	seq := Sequence{
		Steps: []Step{
			{Hold: time.Second},
			{Hold: 500 * time.Millisecond},
		},
	}
	if got := seq.Duration(); got != 1500*time.Millisecond {
		t.Errorf("Duration() = %v, want 1.5s", got)
	}
}

func TestByName(t *testing.T) {
	for _, name := range []string{"home", "wave", "gripper-pulse"} {
		seq, ok := ByName(name)
		if !ok {
			t.Errorf("ByName(%q) not found", name)
			continue
		}
		if seq.Name != name {
			t.Errorf("ByName(%q).Name = %q", name, seq.Name)
		}
	}
	if _, ok := ByName("backflip"); ok {
		t.Error("ByName(backflip) should not exist")
	}
}
