// internal/simulator/listing_test.go
package simulator

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tamzrod/modbus-telemetry/internal/poller"
	"github.com/tamzrod/modbus-telemetry/internal/registermap"
)

func TestListing_OneLinePerChannel(t *testing.T) {
	m := registermap.Default()
	lines := Listing(poller.DemoSnapshot(), m)

	ids := map[string]string{}
	for _, line := range lines {
		if f := strings.Fields(line); len(f) >= 4 {
			ids[f[2]] = line
		}
	}
	assert.Len(t, ids, m.Len())

	f := strings.Fields(ids["voltage.L1"])
	assert.Equal(t, []string{"09", "2201", "voltage.L1", "220.1", "V"}, f)

	f = strings.Fields(ids["discrete.door-open"])
	assert.Equal(t, []string{"09", "0", "discrete.door-open", "off"}, f)
}

func TestListing_ShortImage(t *testing.T) {
	lines := Listing(poller.NewSnapshot([]uint16{235}, nil), registermap.Default())

	var motor string
	for _, line := range lines {
		if strings.Contains(line, " temperature.motor ") {
			motor = line
		}
	}
	assert.Equal(t, []string{"01", "-", "temperature.motor", "N/A"}, strings.Fields(motor))
}
