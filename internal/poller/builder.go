// internal/poller/builder.go
package poller

import (
	"time"

	cfg "github.com/tamzrod/modbus-telemetry/internal/config"
	pmodbus "github.com/tamzrod/modbus-telemetry/internal/poller/modbus"
	"github.com/tamzrod/modbus-telemetry/internal/registermap"
)

// Build constructs a Poller for the configured source and register map.
// No connection is made here: the first PollOnce dials, so a dead endpoint
// surfaces as a TransportError from the cycle like any other fault.
// Demo mode serves DemoSnapshot through the same pipeline.
func Build(c *cfg.Config, m *registermap.Map) (*Poller, error) {
	src := c.Telemetry.Source

	var factory Factory
	if src.Demo {
		factory = func() (Client, error) {
			return NewDemoClient(nil), nil
		}
	} else {
		factory = func() (Client, error) {
			return pmodbus.New(pmodbus.Config{
				Endpoint: src.Endpoint(),
				UnitID:   src.UnitID,
				Timeout:  time.Duration(src.TimeoutMs) * time.Millisecond,
			})
		}
	}

	endpoint := src.Endpoint()
	if src.Demo {
		endpoint = "demo"
	}

	return New(
		Config{
			Endpoint: endpoint,
			Words:    uint16(m.WordCount()),
			Bits:     uint16(m.BitCount()),
			Interval: time.Duration(c.Telemetry.Poll.IntervalMs) * time.Millisecond,
		},
		nil,
		factory,
	)
}
