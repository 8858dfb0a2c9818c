// internal/poller/types.go
package poller

import (
	"fmt"
	"time"
)

// Snapshot is one atomic capture of holding registers and coils.
// Immutable: constructors and accessors copy.
type Snapshot struct {
	words []uint16
	bits  []bool
}

// NewSnapshot copies words and bits into a new Snapshot.
// Short inputs are kept short; nothing is padded.
func NewSnapshot(words []uint16, bits []bool) Snapshot {
	s := Snapshot{
		words: make([]uint16, len(words)),
		bits:  make([]bool, len(bits)),
	}
	copy(s.words, words)
	copy(s.bits, bits)
	return s
}

// Word returns the register at index i and whether it is present.
func (s Snapshot) Word(i int) (uint16, bool) {
	if i < 0 || i >= len(s.words) {
		return 0, false
	}
	return s.words[i], true
}

// Bit returns the coil at index i and whether it is present.
func (s Snapshot) Bit(i int) (bool, bool) {
	if i < 0 || i >= len(s.bits) {
		return false, false
	}
	return s.bits[i], true
}

// NumWords is the number of registers captured.
func (s Snapshot) NumWords() int { return len(s.words) }

// NumBits is the number of coils captured.
func (s Snapshot) NumBits() int { return len(s.bits) }

// Words returns a copy of the captured registers.
func (s Snapshot) Words() []uint16 {
	out := make([]uint16, len(s.words))
	copy(out, s.words)
	return out
}

// Bits returns a copy of the captured coils.
func (s Snapshot) Bits() []bool {
	out := make([]bool, len(s.bits))
	copy(out, s.bits)
	return out
}

// PollResult is produced by one read cycle.
// Snapshot is meaningful only when Err is nil.
type PollResult struct {
	At       time.Time
	Snapshot Snapshot
	Err      error // non-nil means the cycle failed and no snapshot exists
}

// TransportError is a connection or read fault at the transport boundary.
type TransportError struct {
	Op       string // "connect", "read holding registers", "read coils"
	Endpoint string
	Err      error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport: %s %s: %v", e.Op, e.Endpoint, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }
