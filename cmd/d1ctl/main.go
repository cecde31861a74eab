// d1ctl - command line control for the Unitree D1 arm.
//
// Usage:
//
//	d1ctl zero
//	d1ctl enable | disable
//	d1ctl move <joint 0-6> <angle-deg> [delay-ms]
//	d1ctl move-all <a0> <a1> <a2> <a3> <a4> <a5> <a6>
//	d1ctl play <home|wave|gripper-pulse>
//	d1ctl watch
//
// Configuration comes from D1_* env vars or the YAML file named by
// D1_CONFIG (see internal/config).
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/armlabs/go-d1/internal/config"
	"github.com/armlabs/go-d1/internal/log"
	"github.com/armlabs/go-d1/pkg/arm"
	"github.com/armlabs/go-d1/pkg/motion"
	"github.com/armlabs/go-d1/pkg/protocol"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	cfg, err := config.Resolve()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}
	log.Init(cfg.LogLevel, cfg.LogFile)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	armCfg := arm.DefaultConfig()
	armCfg.Bus.Broker = cfg.Broker
	armCfg.Bus.ClientID = cfg.ClientID
	armCfg.Bus.DomainID = cfg.DomainID

	ctrl, err := arm.Connect(ctx, armCfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "connect failed: %v\n", err)
		os.Exit(1)
	}
	defer ctrl.Close()

	if err := run(ctx, ctrl, os.Args[1], os.Args[2:]); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, ctrl *arm.Controller, command string, args []string) error {
	switch command {
	case "zero":
		return ctrl.GoToZero()

	case "enable":
		return ctrl.EnableJoints()

	case "disable":
		return ctrl.DisableJoints()

	case "move":
		if len(args) < 2 {
			return fmt.Errorf("usage: d1ctl move <joint 0-6> <angle-deg> [delay-ms]")
		}
		joint, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("bad joint id %q", args[0])
		}
		angle, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return fmt.Errorf("bad angle %q", args[1])
		}
		delayMS := 0
		if len(args) > 2 {
			delayMS, err = strconv.Atoi(args[2])
			if err != nil {
				return fmt.Errorf("bad delay %q", args[2])
			}
		}
		return ctrl.MoveJoint(protocol.Joint(joint), angle, delayMS)

	case "move-all":
		if len(args) != protocol.NumJoints {
			return fmt.Errorf("usage: d1ctl move-all <a0> ... <a6>")
		}
		angles := make([]float64, protocol.NumJoints)
		for i, a := range args {
			v, err := strconv.ParseFloat(a, 64)
			if err != nil {
				return fmt.Errorf("bad angle %q", a)
			}
			angles[i] = v
		}
		return ctrl.MoveAllJoints(angles)

	case "play":
		if len(args) != 1 {
			return fmt.Errorf("usage: d1ctl play <home|wave|gripper-pulse>")
		}
		seq, ok := motion.ByName(args[0])
		if !ok {
			return fmt.Errorf("unknown sequence %q", args[0])
		}
		return motion.NewPlayer(ctrl, log.L()).Play(ctx, seq)

	case "watch":
		return watch(ctx, ctrl)

	default:
		usage()
		return fmt.Errorf("unknown command %q", command)
	}
}

// watch prints joint angles and feedback until interrupted.
func watch(ctx context.Context, ctrl *arm.Controller) error {
	fmt.Println("watching arm telemetry (ctrl-c to stop)")

	ticker := time.NewTicker(500 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			angles, ok := ctrl.JointAngles()
			if !ok {
				fmt.Println("  (no angle samples yet)")
				continue
			}
			for _, j := range protocol.Joints() {
				fmt.Printf("  %-15s %8.2f°\n", j.String(), angles[j])
			}
			if fb, ok := ctrl.Feedback(); ok {
				fmt.Printf("  feedback: %s\n", fb)
			}
			fmt.Println()
		}
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `d1ctl - Unitree D1 arm control

Commands:
  zero                                 move arm to zero position
  enable | disable                     enable/disable joint motors
  move <joint 0-6> <angle> [delay-ms]  move a single joint (degrees)
  move-all <a0> ... <a6>               move all seven joints
  play <home|wave|gripper-pulse>       run a canned sequence
  watch                                print live telemetry

Environment:
  D1_BROKER     broker URL (default tcp://localhost:1883)
  D1_DOMAIN     domain id (default 0)
  D1_CONFIG     path to YAML config file`)
}
