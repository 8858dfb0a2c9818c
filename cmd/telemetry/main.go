// cmd/telemetry/main.go
//
// Command telemetry reads the register map from a Modbus TCP device once
// (or on an interval), decodes it into engineering units and writes the
// document to stdout and to a file.
//
// Usage:
//
//	telemetry [-config telemetry.yaml] [-host localhost] [-port 502] [-unit 1]
//	          [-timeout 1000] [-demo] [-format json|text|cbor|raw] [-out path]
//	          [-interval 0]
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"

	"github.com/tamzrod/modbus-telemetry/internal/config"
	"github.com/tamzrod/modbus-telemetry/internal/decoder"
	"github.com/tamzrod/modbus-telemetry/internal/exporter"
	"github.com/tamzrod/modbus-telemetry/internal/poller"
	"github.com/tamzrod/modbus-telemetry/internal/registermap"
)

// Exit codes.
const (
	exitOK            = 0
	exitUsage         = 1 // bad flags or config
	exitTransport     = 2 // no snapshot could be read
	exitSerialization = 3 // document produced but not persisted
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run executes one read cycle, or in interval mode keeps cycling until ctx
// is cancelled. An interval run exits non-zero when no cycle ever exported
// a document.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	log.SetOutput(stderr)

	// --------------------
	// Load + validate config
	// --------------------

	cfg, err := loadConfig(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		log.Printf("config: %v", err)
		return exitUsage
	}

	if err := config.Validate(cfg); err != nil {
		log.Printf("config validation failed: %v", err)
		return exitUsage
	}
	config.Normalize(cfg)

	// --------------------
	// Build pipeline
	// --------------------

	m := registermap.Default()

	p, err := poller.Build(cfg, m)
	if err != nil {
		log.Printf("poller build failed: %v", err)
		return exitUsage
	}
	defer p.Close()

	exp, err := exporter.New(exporter.Format(cfg.Telemetry.Output.Format), cfg.Telemetry.Output.Path, stdout)
	if err != nil {
		log.Printf("exporter build failed: %v", err)
		return exitUsage
	}

	// --------------------
	// Single read cycle
	// --------------------

	if cfg.Telemetry.Poll.IntervalMs == 0 {
		return cycle(p.PollOnce(), m, exp)
	}

	// --------------------
	// Interval mode, until interrupted
	// --------------------

	out := make(chan poller.PollResult)
	done := make(chan struct{})
	go func() {
		defer close(done)
		p.Run(ctx, out)
	}()

	var o outcome
	for {
		select {
		case <-ctx.Done():
			<-done // poller must be idle before the deferred Close
			return o.code()
		case res := <-out:
			// failures are logged and the next tick retries
			o.record(cycle(res, m, exp))
		}
	}
}

// outcome folds the cycle codes of an interval run into one exit code.
type outcome struct {
	exported bool // some cycle wrote everywhere
	decoded  bool // some cycle produced a document
}

func (o *outcome) record(code int) {
	switch code {
	case exitOK:
		o.exported = true
		o.decoded = true
	case exitSerialization:
		o.decoded = true
	}
}

func (o *outcome) code() int {
	switch {
	case o.exported:
		return exitOK
	case o.decoded:
		return exitSerialization
	default:
		return exitTransport
	}
}

// cycle turns one poll result into one exported document.
func cycle(res poller.PollResult, m *registermap.Map, exp *exporter.Exporter) int {
	id := uuid.NewString()

	if res.Err != nil {
		log.Printf("cycle=%s read failed: %v", id, res.Err)
		return exitTransport
	}

	doc := decoder.Decode(res.Snapshot, m)
	if n := doc.InvalidCount(); n > 0 {
		log.Printf("cycle=%s %d of %d channels invalid", id, n, m.Len())
	}

	if err := exp.Export(doc); err != nil {
		log.Printf("cycle=%s export failed: %v", id, err)
		return exitSerialization
	}

	log.Printf("cycle=%s document written to %s", id, exp.Path())
	return exitOK
}

// loadConfig reads -config (if given) and applies explicitly set flags on top.
func loadConfig(args []string, stderr io.Writer) (*config.Config, error) {
	fs := flag.NewFlagSet("telemetry", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var (
		cfgPath  = fs.String("config", "", "YAML configuration file")
		host     = fs.String("host", config.DefaultHost, "Modbus TCP host")
		port     = fs.Int("port", config.DefaultPort, "Modbus TCP port")
		unit     = fs.Uint("unit", config.DefaultUnitID, "Modbus unit id (1-255)")
		timeout  = fs.Int("timeout", config.DefaultTimeoutMs, "connect and read timeout in milliseconds")
		demo     = fs.Bool("demo", false, "serve the built-in demonstration snapshot instead of dialing")
		format   = fs.String("format", config.DefaultFormat, "output format: json, text, cbor, raw")
		outPath  = fs.String("out", "", "output file (default depends on -format)")
		interval = fs.Int("interval", 0, "poll interval in milliseconds; 0 reads once")
	)

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	cfg := config.Default()
	if *cfgPath != "" {
		var err error
		if cfg, err = config.Load(*cfgPath); err != nil {
			return nil, err
		}
	}

	var flagErr error
	fs.Visit(func(f *flag.Flag) {
		src := &cfg.Telemetry.Source
		switch f.Name {
		case "host":
			src.Host = *host
		case "port":
			src.Port = *port
		case "unit":
			if *unit > 255 {
				flagErr = fmt.Errorf("-unit %d out of range 1-255", *unit)
				return
			}
			src.UnitID = uint8(*unit)
		case "timeout":
			src.TimeoutMs = *timeout
		case "demo":
			src.Demo = *demo
		case "format":
			cfg.Telemetry.Output.Format = *format
		case "out":
			cfg.Telemetry.Output.Path = *outPath
		case "interval":
			cfg.Telemetry.Poll.IntervalMs = *interval
		}
	})
	if flagErr != nil {
		return nil, flagErr
	}

	return cfg, nil
}
