// internal/simulator/server.go
package simulator

import (
	"errors"
	"fmt"
	"time"

	"github.com/simonvetter/modbus"

	"github.com/tamzrod/modbus-telemetry/internal/poller"
)

// clientIdleTimeout drops clients that stay silent this long.
const clientIdleTimeout = 30 * time.Second

// Server is a Modbus TCP device exposing a fixed register image.
type Server struct {
	listen string
	srv    *modbus.ModbusServer
}

// Config is the minimal server config.
type Config struct {
	Listen     string // host:port
	MaxClients uint
}

// New builds a server for snap. Nothing listens until Start.
func New(cfg Config, snap poller.Snapshot) (*Server, error) {
	if cfg.Listen == "" {
		return nil, errors.New("simulator: listen address required")
	}
	if cfg.MaxClients == 0 {
		cfg.MaxClients = 1
	}

	srv, err := modbus.NewServer(&modbus.ServerConfiguration{
		URL:        "tcp://" + cfg.Listen,
		Timeout:    clientIdleTimeout,
		MaxClients: cfg.MaxClients,
	}, NewHandler(snap))
	if err != nil {
		return nil, fmt.Errorf("simulator: %w", err)
	}

	return &Server{listen: cfg.Listen, srv: srv}, nil
}

// Start binds the listener and serves in the background.
func (s *Server) Start() error {
	if err := s.srv.Start(); err != nil {
		return fmt.Errorf("simulator: listen %s: %w", s.listen, err)
	}
	return nil
}

// Stop closes the listener and every client connection.
func (s *Server) Stop() error {
	return s.srv.Stop()
}

// Addr is the configured listen address.
func (s *Server) Addr() string { return s.listen }
