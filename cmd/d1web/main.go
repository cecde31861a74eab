// d1web - live dashboard for the Unitree D1 arm.
//
// Connects to the arm's pub/sub bus and serves joint angles, feedback,
// and bus statistics over HTTP and websocket.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/armlabs/go-d1/internal/config"
	"github.com/armlabs/go-d1/internal/log"
	"github.com/armlabs/go-d1/pkg/arm"
	"github.com/armlabs/go-d1/pkg/bus"
	"github.com/armlabs/go-d1/pkg/web"
)

func main() {
	cfg, err := config.Resolve()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}
	log.Init(cfg.LogLevel, cfg.LogFile)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	busCfg := bus.DefaultConfig()
	busCfg.Broker = cfg.Broker
	busCfg.ClientID = cfg.ClientID
	busCfg.DomainID = cfg.DomainID

	client, err := bus.New(busCfg, log.L())
	if err != nil {
		fmt.Fprintf(os.Stderr, "bus error: %v\n", err)
		os.Exit(1)
	}
	if err := client.ConnectWithRetry(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "connect failed: %v\n", err)
		os.Exit(1)
	}
	defer client.Close()

	ctrl := arm.NewController(client, busCfg.DomainID, log.L())

	server := web.NewServer(cfg.WebPort, ctrl, client.Stats)
	ctrl.OnAngles = server.PublishAngles

	if err := ctrl.Start(); err != nil {
		fmt.Fprintf(os.Stderr, "telemetry error: %v\n", err)
		os.Exit(1)
	}

	server.StartAsync()
	log.Info("d1web running", "port", cfg.WebPort, "broker", cfg.Broker, "domain", cfg.DomainID)

	<-ctx.Done()
	server.Shutdown()
}
