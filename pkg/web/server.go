// Package web provides a real-time dashboard for the D1 arm: current
// joint angles, firmware feedback, and bus statistics.
package web

import (
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/websocket/v2"

	"github.com/armlabs/go-d1/internal/log"
	"github.com/armlabs/go-d1/pkg/bus"
	"github.com/armlabs/go-d1/pkg/hub"
	"github.com/armlabs/go-d1/pkg/protocol"
)

// StateSource is the telemetry surface of the arm controller.
type StateSource interface {
	JointAngles() ([protocol.NumJoints]float32, bool)
	Feedback() (string, bool)
}

// ArmState is the dashboard state payload.
type ArmState struct {
	Joints    []JointReading  `json:"joints"`
	HasAngles bool            `json:"has_angles"`
	Feedback  string          `json:"feedback,omitempty"`
	Bus       bus.ClientStats `json:"bus"`
	UpdatedAt string          `json:"updated_at"`
}

// JointReading is one joint's latest reported angle.
type JointReading struct {
	ID    int     `json:"id"`
	Name  string  `json:"name"`
	Angle float32 `json:"angle"`
}

// Server is the web dashboard server.
type Server struct {
	app  *fiber.App
	port string

	arm      StateSource
	busStats func() bus.ClientStats

	stateHub *hub.Hub

	mu         sync.Mutex
	lastUpdate time.Time
}

// NewServer creates a dashboard server reading from the given sources.
// busStats may be nil when no bus statistics are available.
func NewServer(port string, arm StateSource, busStats func() bus.ClientStats) *Server {
	s := &Server{
		port:     port,
		arm:      arm,
		busStats: busStats,
		stateHub: hub.New("state"),
	}

	app := fiber.New(fiber.Config{
		AppName:               "D1 Dashboard",
		DisableStartupMessage: true,
	})

	// CORS for local development
	app.Use(cors.New())

	api := app.Group("/api")
	api.Get("/state", s.handleState)
	api.Get("/joints", s.handleJoints)

	// WebSocket upgrade middleware
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})
	app.Get("/ws/state", websocket.New(s.handleStateWS))

	s.app = app
	return s
}

// Start starts the web server. Blocks.
func (s *Server) Start() error {
	log.Info("dashboard listening", "port", s.port)
	go s.stateHub.Run()
	return s.app.Listen(":" + s.port)
}

// StartAsync starts the web server in a goroutine.
func (s *Server) StartAsync() {
	go func() {
		if err := s.Start(); err != nil {
			log.Error("dashboard server error", "error", err)
		}
	}()
}

// PublishAngles broadcasts a fresh angle sample to websocket clients.
// Wire it to the controller's OnAngles callback.
func (s *Server) PublishAngles(angles [protocol.NumJoints]float32) {
	s.mu.Lock()
	s.lastUpdate = time.Now()
	s.mu.Unlock()

	s.stateHub.BroadcastJSON(s.currentState())
}

// currentState assembles the full dashboard state from the sources.
func (s *Server) currentState() ArmState {
	angles, ok := s.arm.JointAngles()

	joints := make([]JointReading, protocol.NumJoints)
	for _, j := range protocol.Joints() {
		joints[j] = JointReading{
			ID:    int(j),
			Name:  j.String(),
			Angle: angles[j],
		}
	}

	state := ArmState{
		Joints:    joints,
		HasAngles: ok,
	}
	if fb, ok := s.arm.Feedback(); ok {
		state.Feedback = fb
	}
	if s.busStats != nil {
		state.Bus = s.busStats()
	}

	s.mu.Lock()
	if !s.lastUpdate.IsZero() {
		state.UpdatedAt = s.lastUpdate.Format(time.RFC3339)
	}
	s.mu.Unlock()

	return state
}

// Shutdown gracefully stops the web server.
func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}
