// internal/simulator/handler.go
package simulator

import (
	"github.com/simonvetter/modbus"

	"github.com/tamzrod/modbus-telemetry/internal/poller"
)

// Handler serves one fixed snapshot as holding registers and coils.
// The register image is read-only: writes are refused.
type Handler struct {
	words []uint16
	bits  []bool
}

// NewHandler serves snap.
func NewHandler(snap poller.Snapshot) *Handler {
	return &Handler{
		words: snap.Words(),
		bits:  snap.Bits(),
	}
}

func (h *Handler) HandleCoils(req *modbus.CoilsRequest) ([]bool, error) {
	if req.IsWrite {
		return nil, modbus.ErrIllegalFunction
	}
	end := int(req.Addr) + int(req.Quantity)
	if end > len(h.bits) {
		return nil, modbus.ErrIllegalDataAddress
	}
	out := make([]bool, req.Quantity)
	copy(out, h.bits[req.Addr:end])
	return out, nil
}

func (h *Handler) HandleDiscreteInputs(req *modbus.DiscreteInputsRequest) ([]bool, error) {
	return nil, modbus.ErrIllegalFunction
}

func (h *Handler) HandleHoldingRegisters(req *modbus.HoldingRegistersRequest) ([]uint16, error) {
	if req.IsWrite {
		return nil, modbus.ErrIllegalFunction
	}
	end := int(req.Addr) + int(req.Quantity)
	if end > len(h.words) {
		return nil, modbus.ErrIllegalDataAddress
	}
	out := make([]uint16, req.Quantity)
	copy(out, h.words[req.Addr:end])
	return out, nil
}

func (h *Handler) HandleInputRegisters(req *modbus.InputRegistersRequest) ([]uint16, error) {
	return nil, modbus.ErrIllegalFunction
}
