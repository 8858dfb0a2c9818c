// internal/config/config.go
package config

import (
	"bytes"
	"fmt"
	"net"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Telemetry TelemetryConfig `yaml:"telemetry"`
}

type TelemetryConfig struct {
	Source    SourceConfig    `yaml:"source"`
	Output    OutputConfig    `yaml:"output"`
	Poll      PollConfig      `yaml:"poll"`
	Simulator SimulatorConfig `yaml:"simulator"`
}

// ---- SOURCE ----

type SourceConfig struct {
	Host      string `yaml:"host"`
	Port      int    `yaml:"port"`
	UnitID    uint8  `yaml:"unit_id"`
	TimeoutMs int    `yaml:"timeout_ms"`

	// Demo serves the built-in demonstration snapshot instead of dialing.
	Demo bool `yaml:"demo"`
}

// Endpoint is host:port for the transport.
func (s SourceConfig) Endpoint() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

// ---- OUTPUT ----

type OutputConfig struct {
	Path   string `yaml:"path"`
	Format string `yaml:"format"` // json | text | cbor | raw
}

// ---- POLL ----

type PollConfig struct {
	IntervalMs int `yaml:"interval_ms"` // 0 = single read cycle
}

// ---- SIMULATOR ----

type SimulatorConfig struct {
	Listen     string `yaml:"listen"`
	MaxClients uint   `yaml:"max_clients"`
}

// Output formats.
const (
	FormatJSON = "json"
	FormatText = "text"
	FormatCBOR = "cbor"
	FormatRaw  = "raw"
)

// Defaults.
const (
	DefaultHost       = "localhost"
	DefaultPort       = 502
	DefaultUnitID     = 1
	DefaultTimeoutMs  = 1000
	DefaultFormat     = FormatJSON
	DefaultListen     = "localhost:502"
	DefaultMaxClients = 5
)

// DefaultFileNames maps each format to its stable output file name.
var DefaultFileNames = map[string]string{
	FormatJSON: "telemetry.json",
	FormatText: "telemetry.txt",
	FormatCBOR: "telemetry.cbor",
	FormatRaw:  "telemetry.raw.txt",
}

// Default returns a config with every default applied.
func Default() *Config {
	return &Config{
		Telemetry: TelemetryConfig{
			Source: SourceConfig{
				Host:      DefaultHost,
				Port:      DefaultPort,
				UnitID:    DefaultUnitID,
				TimeoutMs: DefaultTimeoutMs,
			},
			Output: OutputConfig{
				Format: DefaultFormat,
			},
			Simulator: SimulatorConfig{
				Listen:     DefaultListen,
				MaxClients: DefaultMaxClients,
			},
		},
	}
}

// Load reads a YAML file on top of Default().
// Unknown keys are rejected.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes YAML bytes on top of Default().
func Parse(data []byte) (*Config, error) {
	cfg := Default()

	if len(bytes.TrimSpace(data)) == 0 {
		return cfg, nil
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("config: decode: %w", err)
	}
	return cfg, nil
}
