// internal/poller/demo.go
package poller

import "errors"

// Demonstration register contents. Same values the simulator serves.
var (
	demoWords = []uint16{
		235, 452, 189, // temperatures x10
		1250, 850, // pressures x100
		45, 23, // flows
		78, 92, // levels
		2201, 2198, 2203, // voltages x10
		152, 148, 155, // currents x10
		1,     // general status (alarm)
		0,     // temperature alarm
		12547, // production counter
		89,    // fault counter
		1456,  // run hours
	}

	demoBits = []bool{true, false, true, false, true, false, true, false, true, false}
)

// DemoSnapshot returns the fixed demonstration snapshot.
func DemoSnapshot() Snapshot {
	return NewSnapshot(demoWords, demoBits)
}

// DemoClient serves a fixed snapshot through the Client contract.
type DemoClient struct {
	snap Snapshot
}

// NewDemoClient serves snap; nil selects DemoSnapshot.
func NewDemoClient(snap *Snapshot) *DemoClient {
	if snap == nil {
		s := DemoSnapshot()
		snap = &s
	}
	return &DemoClient{snap: *snap}
}

// ReadHoldingRegisters serves words from the snapshot.
func (d *DemoClient) ReadHoldingRegisters(addr, qty uint16) ([]uint16, error) {
	words := d.snap.Words()
	end := int(addr) + int(qty)
	if end > len(words) {
		return nil, errors.New("demo: illegal data address")
	}
	return words[addr:end], nil
}

// ReadCoils serves bits from the snapshot.
func (d *DemoClient) ReadCoils(addr, qty uint16) ([]bool, error) {
	bits := d.snap.Bits()
	end := int(addr) + int(qty)
	if end > len(bits) {
		return nil, errors.New("demo: illegal data address")
	}
	return bits[addr:end], nil
}

// Close is a no-op.
func (d *DemoClient) Close() error { return nil }
