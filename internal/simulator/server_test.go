// internal/simulator/server_test.go
package simulator

import (
	"net"
	"testing"
	"time"

	gmodbus "github.com/goburrow/modbus"
	"github.com/simonvetter/modbus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tamzrod/modbus-telemetry/internal/decoder"
	"github.com/tamzrod/modbus-telemetry/internal/poller"
	pmodbus "github.com/tamzrod/modbus-telemetry/internal/poller/modbus"
	"github.com/tamzrod/modbus-telemetry/internal/registermap"
)

func freeAddr(t *testing.T) string {
	t.Helper()
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := l.Addr().String()
	require.NoError(t, l.Close())
	return addr
}

func startServer(t *testing.T, snap poller.Snapshot) string {
	t.Helper()
	addr := freeAddr(t)

	s, err := New(Config{Listen: addr, MaxClients: 2}, snap)
	require.NoError(t, err)
	require.NoError(t, s.Start())
	t.Cleanup(func() { _ = s.Stop() })

	return addr
}

// ---- handler ----

func TestHandler_Reads(t *testing.T) {
	h := NewHandler(poller.DemoSnapshot())

	regs, err := h.HandleHoldingRegisters(&modbus.HoldingRegistersRequest{Addr: 3, Quantity: 2})
	require.NoError(t, err)
	assert.Equal(t, []uint16{1250, 850}, regs)

	bits, err := h.HandleCoils(&modbus.CoilsRequest{Addr: 0, Quantity: 3})
	require.NoError(t, err)
	assert.Equal(t, []bool{true, false, true}, bits)
}

func TestHandler_Rejects(t *testing.T) {
	h := NewHandler(poller.DemoSnapshot())

	_, err := h.HandleHoldingRegisters(&modbus.HoldingRegistersRequest{Addr: 10, Quantity: 11})
	assert.Equal(t, modbus.ErrIllegalDataAddress, err)

	_, err = h.HandleHoldingRegisters(&modbus.HoldingRegistersRequest{Addr: 0, Quantity: 1, IsWrite: true, Args: []uint16{1}})
	assert.Equal(t, modbus.ErrIllegalFunction, err)

	_, err = h.HandleCoils(&modbus.CoilsRequest{Addr: 9, Quantity: 2})
	assert.Equal(t, modbus.ErrIllegalDataAddress, err)

	_, err = h.HandleInputRegisters(&modbus.InputRegistersRequest{Addr: 0, Quantity: 1})
	assert.Equal(t, modbus.ErrIllegalFunction, err)

	_, err = h.HandleDiscreteInputs(&modbus.DiscreteInputsRequest{Addr: 0, Quantity: 1})
	assert.Equal(t, modbus.ErrIllegalFunction, err)
}

// ---- end to end over TCP ----

func TestServer_PollAndDecode(t *testing.T) {
	addr := startServer(t, poller.DemoSnapshot())
	m := registermap.Default()

	factory := func() (poller.Client, error) {
		return pmodbus.New(pmodbus.Config{Endpoint: addr, UnitID: 1, Timeout: 2 * time.Second})
	}

	p, err := poller.New(poller.Config{
		Endpoint: addr,
		Words:    uint16(m.WordCount()),
		Bits:     uint16(m.BitCount()),
		Interval: time.Second,
	}, nil, factory)
	require.NoError(t, err)
	defer p.Close()

	res := p.PollOnce()
	require.NoError(t, res.Err)
	assert.Equal(t, poller.DemoSnapshot(), res.Snapshot)

	doc := decoder.Decode(res.Snapshot, m)
	assert.Zero(t, doc.InvalidCount())

	r, _ := doc.Lookup("temperature.ambient")
	v, _ := r.Float()
	assert.Equal(t, 23.5, v)
}

func TestServer_ShortImageFailsRead(t *testing.T) {
	short := poller.NewSnapshot(poller.DemoSnapshot().Words()[:19], poller.DemoSnapshot().Bits())
	addr := startServer(t, short)

	c, err := pmodbus.New(pmodbus.Config{Endpoint: addr, UnitID: 1, Timeout: 2 * time.Second})
	require.NoError(t, err)
	defer c.Close()

	_, err = c.ReadHoldingRegisters(0, 20)
	assert.Error(t, err, "reading past the image is an exception, not a short read")
}

func TestServer_RejectsWrites(t *testing.T) {
	addr := startServer(t, poller.DemoSnapshot())

	h := gmodbus.NewTCPClientHandler(addr)
	h.Timeout = 2 * time.Second
	h.SlaveId = 1
	require.NoError(t, h.Connect())
	defer h.Close()

	_, err := gmodbus.NewClient(h).WriteSingleRegister(0, 999)
	assert.Error(t, err)
}

func TestNew_RequiresListen(t *testing.T) {
	_, err := New(Config{}, poller.DemoSnapshot())
	assert.Error(t, err)
}
