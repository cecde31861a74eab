package web

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"

	"github.com/armlabs/go-d1/pkg/hub"
	"github.com/armlabs/go-d1/pkg/protocol"
)

// handleState returns the latest arm state.
func (s *Server) handleState(c *fiber.Ctx) error {
	return c.JSON(s.currentState())
}

// JointInfo describes one joint of the arm.
type JointInfo struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// handleJoints returns the fixed joint enumeration.
func (s *Server) handleJoints(c *fiber.Ctx) error {
	joints := make([]JointInfo, 0, protocol.NumJoints)
	for _, j := range protocol.Joints() {
		joints = append(joints, JointInfo{ID: int(j), Name: j.String()})
	}
	return c.JSON(joints)
}

// handleStateWS streams state updates to a websocket client.
func (s *Server) handleStateWS(conn *websocket.Conn) {
	client := hub.NewClient(s.stateHub, conn)
	client.Run()
}
