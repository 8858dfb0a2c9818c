// internal/simulator/listing.go
package simulator

import (
	"strings"

	"github.com/tamzrod/modbus-telemetry/internal/decoder"
	"github.com/tamzrod/modbus-telemetry/internal/exporter"
	"github.com/tamzrod/modbus-telemetry/internal/poller"
	"github.com/tamzrod/modbus-telemetry/internal/registermap"
)

// Listing describes what the server is about to serve: for every channel
// of m, its offset, the raw word or bit in snap and the engineering value.
func Listing(snap poller.Snapshot, m *registermap.Map) []string {
	raw := exporter.MarshalRaw(decoder.Decode(snap, m))

	var lines []string
	for _, line := range strings.Split(string(raw), "\n") {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
