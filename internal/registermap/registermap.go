// internal/registermap/registermap.go
package registermap

import (
	"errors"
	"fmt"
)

// Range is an inclusive validity window in scaled units.
type Range struct {
	Min float64
	Max float64
}

// Contains reports whether v lies within [Min, Max].
func (r Range) Contains(v float64) bool {
	return r.Min <= v && v <= r.Max
}

// ChannelSpec binds one named value to a register offset or coil index.
type ChannelSpec struct {
	Name     string
	Category Category
	Offset   int
	Scale    float64
	Unit     string
	Range    *Range // nil means unvalidated
}

// ID is the process-wide channel identifier, "<category>.<name>".
func (c ChannelSpec) ID() string {
	return c.Category.String() + "." + c.Name
}

// Group is one category with its channels in table order.
type Group struct {
	Category Category
	Channels []ChannelSpec
}

// Map is the read-only register schema.
// It is built once and shared; nothing mutates it after construction.
type Map struct {
	groups []Group
	byID   map[string]ChannelSpec
	words  int
	bits   int
}

var defaultMap = mustNew(canonical)

// Default returns the canonical register map.
func Default() *Map {
	return defaultMap
}

// New builds a Map from a channel table.
// Channels are grouped by category in canonical order; table order is kept inside a group.
func New(specs []ChannelSpec) (*Map, error) {
	if len(specs) == 0 {
		return nil, errors.New("registermap: at least one channel required")
	}

	m := &Map{byID: make(map[string]ChannelSpec, len(specs))}
	perCat := make(map[Category][]ChannelSpec)

	for _, s := range specs {
		if s.Name == "" {
			return nil, fmt.Errorf("registermap: %s channel at offset %d has no name", s.Category, s.Offset)
		}
		if int(s.Category) >= len(Categories) {
			return nil, fmt.Errorf("registermap: channel %q has unknown category %d", s.Name, s.Category)
		}
		if s.Offset < 0 {
			return nil, fmt.Errorf("registermap: channel %q has negative offset %d", s.ID(), s.Offset)
		}
		if s.Category != Discrete && s.Scale <= 0 {
			return nil, fmt.Errorf("registermap: channel %q scale must be > 0", s.ID())
		}
		if s.Range != nil && s.Range.Min > s.Range.Max {
			return nil, fmt.Errorf("registermap: channel %q range min %v > max %v", s.ID(), s.Range.Min, s.Range.Max)
		}
		if _, dup := m.byID[s.ID()]; dup {
			return nil, fmt.Errorf("registermap: duplicate channel %q", s.ID())
		}

		// private copy of the range so callers cannot mutate the map through it
		if s.Range != nil {
			r := *s.Range
			s.Range = &r
		}

		m.byID[s.ID()] = s
		perCat[s.Category] = append(perCat[s.Category], s)

		if s.Category == Discrete {
			if s.Offset+1 > m.bits {
				m.bits = s.Offset + 1
			}
		} else if s.Offset+1 > m.words {
			m.words = s.Offset + 1
		}
	}

	for _, c := range Categories {
		if chs, ok := perCat[c]; ok {
			m.groups = append(m.groups, Group{Category: c, Channels: chs})
		}
	}

	return m, nil
}

func mustNew(specs []ChannelSpec) *Map {
	m, err := New(specs)
	if err != nil {
		panic(err)
	}
	return m
}

// Lookup returns the channel with the given id.
func (m *Map) Lookup(id string) (ChannelSpec, bool) {
	s, ok := m.byID[id]
	if ok && s.Range != nil {
		r := *s.Range
		s.Range = &r
	}
	return s, ok
}

// Enumerate returns every channel grouped by category in document order.
// The returned slices are copies.
func (m *Map) Enumerate() []Group {
	out := make([]Group, len(m.groups))
	for i, g := range m.groups {
		chs := make([]ChannelSpec, len(g.Channels))
		for j, s := range g.Channels {
			if s.Range != nil {
				r := *s.Range
				s.Range = &r
			}
			chs[j] = s
		}
		out[i] = Group{Category: g.Category, Channels: chs}
	}
	return out
}

// Len is the total channel count.
func (m *Map) Len() int {
	return len(m.byID)
}

// WordCount is the number of holding registers a read cycle must fetch.
func (m *Map) WordCount() int {
	return m.words
}

// BitCount is the number of coils a read cycle must fetch.
func (m *Map) BitCount() int {
	return m.bits
}
