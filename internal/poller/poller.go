// internal/poller/poller.go
package poller

import (
	"errors"
	"time"
)

// Client abstracts the Modbus reads the poller needs.
type Client interface {
	ReadHoldingRegisters(addr, qty uint16) ([]uint16, error) // FC 3
	ReadCoils(addr, qty uint16) ([]bool, error)              // FC 1
	Close() error
}

// Factory creates a connected client. ONE attempt per call.
type Factory func() (Client, error)

// Config is the minimal runtime config the poller needs.
type Config struct {
	Endpoint string
	Words    uint16 // holding registers starting at 0
	Bits     uint16 // coils starting at 0
	Interval time.Duration
}

// Poller is a dumb reader: one call, one snapshot or one error.
type Poller struct {
	cfg     Config
	client  Client
	factory Factory
}

// New creates a poller with immutable config.
// client may be nil when factory is set; the first cycle dials.
func New(cfg Config, client Client, factory Factory) (*Poller, error) {
	if cfg.Words == 0 && cfg.Bits == 0 {
		return nil, errors.New("poller: nothing to read")
	}
	if client == nil && factory == nil {
		return nil, errors.New("poller: client or factory required")
	}
	return &Poller{cfg: cfg, client: client, factory: factory}, nil
}

// PollOnce performs exactly one read cycle.
// All-or-nothing: any failure aborts the cycle and no snapshot is produced.
// A client that failed is closed and discarded; the factory replaces it next cycle.
func (p *Poller) PollOnce() PollResult {
	res := PollResult{At: time.Now()}

	if p.client == nil {
		if p.factory == nil {
			res.Err = p.fail("connect", errors.New("no client"))
			return res
		}
		c, err := p.factory()
		if err != nil {
			res.Err = p.fail("connect", err)
			return res
		}
		p.client = c
	}

	var (
		words []uint16
		bits  []bool
		err   error
	)

	if p.cfg.Words > 0 {
		words, err = p.client.ReadHoldingRegisters(0, p.cfg.Words)
		if err != nil {
			res.Err = p.fail("read holding registers", err)
			return res
		}
	}

	if p.cfg.Bits > 0 {
		bits, err = p.client.ReadCoils(0, p.cfg.Bits)
		if err != nil {
			res.Err = p.fail("read coils", err)
			return res
		}
	}

	// Commit only if every read succeeded
	res.Snapshot = NewSnapshot(words, bits)
	return res
}

// Close releases the current client, if any.
func (p *Poller) Close() error {
	if p.client == nil {
		return nil
	}
	err := p.client.Close()
	p.client = nil
	return err
}

func (p *Poller) fail(op string, err error) error {
	if p.client != nil && p.factory != nil {
		_ = p.client.Close()
		p.client = nil
	}
	return &TransportError{
		Op:       op,
		Endpoint: p.cfg.Endpoint,
		Err:      err,
	}
}
