// internal/decoder/decode.go
package decoder

import (
	"github.com/tamzrod/modbus-telemetry/internal/poller"
	"github.com/tamzrod/modbus-telemetry/internal/registermap"
)

// KindOf maps a channel category to the kind of reading it produces.
func KindOf(c registermap.Category) Kind {
	switch {
	case c == registermap.Discrete:
		return KindDiscrete
	case c == registermap.Status:
		return KindCounter
	default:
		return KindAnalog
	}
}

// Decode applies the register map to one snapshot.
// Pure and total: every channel gets a reading, and a missing or
// out-of-range value degrades only its own channel to Invalid.
func Decode(s poller.Snapshot, m *registermap.Map) Document {
	groups := m.Enumerate()
	sections := make([]Section, 0, len(groups))

	for _, g := range groups {
		sec := Section{
			Category: g.Category,
			Entries:  make([]Entry, 0, len(g.Channels)),
		}
		for _, ch := range g.Channels {
			sec.Entries = append(sec.Entries, Entry{
				Channel: ch,
				Reading: DecodeChannel(s, ch),
			})
		}
		sections = append(sections, sec)
	}

	return Document{sections: sections, source: &s}
}

// DecodeChannel decodes a single channel.
func DecodeChannel(s poller.Snapshot, ch registermap.ChannelSpec) Reading {
	switch KindOf(ch.Category) {
	case KindDiscrete:
		b, ok := s.Bit(ch.Offset)
		if !ok {
			return Invalid(KindDiscrete)
		}
		return Discrete(b)

	case KindCounter:
		w, ok := s.Word(ch.Offset)
		if !ok {
			return Invalid(KindCounter)
		}
		return Counter(w)

	default:
		w, ok := s.Word(ch.Offset)
		if !ok || ch.Scale <= 0 {
			return Invalid(KindAnalog)
		}
		scaled := float64(w) / ch.Scale
		if ch.Range != nil && !ch.Range.Contains(scaled) {
			return Invalid(KindAnalog)
		}
		return Analog(scaled)
	}
}
