// cmd/simulator/main.go
//
// Command simulator serves the demonstration register map over Modbus TCP
// so the telemetry reader can be exercised without a real device.
package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/tamzrod/modbus-telemetry/internal/config"
	"github.com/tamzrod/modbus-telemetry/internal/poller"
	"github.com/tamzrod/modbus-telemetry/internal/registermap"
	"github.com/tamzrod/modbus-telemetry/internal/simulator"
)

func main() {
	cfgPath := flag.String("config", "", "YAML configuration file")
	listen := flag.String("listen", "", "listen address (default "+config.DefaultListen+")")
	flag.Parse()

	// --------------------
	// Load + validate config
	// --------------------

	cfg := config.Default()
	if *cfgPath != "" {
		var err error
		if cfg, err = config.Load(*cfgPath); err != nil {
			log.Fatalf("config load failed: %v", err)
		}
	}
	if *listen != "" {
		cfg.Telemetry.Simulator.Listen = *listen
	}

	if err := config.ValidateSimulator(cfg); err != nil {
		log.Fatalf("config validation failed: %v", err)
	}

	// --------------------
	// Serve
	// --------------------

	snap := poller.DemoSnapshot()

	srv, err := simulator.New(simulator.Config{
		Listen:     cfg.Telemetry.Simulator.Listen,
		MaxClients: cfg.Telemetry.Simulator.MaxClients,
	}, snap)
	if err != nil {
		log.Fatalf("simulator build failed: %v", err)
	}

	if err := srv.Start(); err != nil {
		log.Fatalf("simulator start failed: %v", err)
	}

	log.Printf("serving %d holding registers and %d coils on %s", snap.NumWords(), snap.NumBits(), srv.Addr())
	for _, line := range simulator.Listing(snap, registermap.Default()) {
		log.Printf("%s", line)
	}

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	<-sig

	log.Printf("shutting down")
	if err := srv.Stop(); err != nil {
		log.Printf("simulator stop failed: %v", err)
	}
}
