// internal/config/validate.go
package config

import (
	"fmt"
)

// Validate checks configuration correctness.
// It performs declarative validation only.
// It MUST NOT mutate configuration.
func Validate(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("config: nil")
	}

	t := cfg.Telemetry

	// ------------------------------------------------------------
	// SOURCE
	// ------------------------------------------------------------

	if !t.Source.Demo {
		if t.Source.Host == "" {
			return fmt.Errorf("source: host required")
		}
		if t.Source.Port < 1 || t.Source.Port > 65535 {
			return fmt.Errorf("source: port %d out of range 1-65535", t.Source.Port)
		}
		if t.Source.UnitID == 0 {
			return fmt.Errorf("source: unit_id must be 1-255")
		}
	}
	if t.Source.TimeoutMs <= 0 {
		return fmt.Errorf("source: timeout_ms must be > 0 (got %d)", t.Source.TimeoutMs)
	}

	// ------------------------------------------------------------
	// OUTPUT
	// ------------------------------------------------------------

	if _, ok := DefaultFileNames[t.Output.Format]; !ok {
		return fmt.Errorf(
			"output: unknown format %q (want %s, %s, %s or %s)",
			t.Output.Format, FormatJSON, FormatText, FormatCBOR, FormatRaw,
		)
	}

	// ------------------------------------------------------------
	// POLL
	// ------------------------------------------------------------

	if t.Poll.IntervalMs < 0 {
		return fmt.Errorf("poll: interval_ms must be >= 0 (got %d)", t.Poll.IntervalMs)
	}
	if t.Poll.IntervalMs > 0 && t.Poll.IntervalMs < t.Source.TimeoutMs {
		return fmt.Errorf(
			"poll: interval_ms %d shorter than source timeout_ms %d",
			t.Poll.IntervalMs, t.Source.TimeoutMs,
		)
	}

	return nil
}

// ValidateSimulator checks only what the simulator command uses.
func ValidateSimulator(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("config: nil")
	}
	if cfg.Telemetry.Simulator.Listen == "" {
		return fmt.Errorf("simulator: listen address required")
	}
	if cfg.Telemetry.Simulator.MaxClients == 0 {
		return fmt.Errorf("simulator: max_clients must be > 0")
	}
	return nil
}
