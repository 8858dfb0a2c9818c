// internal/exporter/cbor.go
package exporter

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"

	"github.com/tamzrod/modbus-telemetry/internal/decoder"
	"github.com/tamzrod/modbus-telemetry/internal/registermap"
)

// cborEncMode is deterministic: the same document always yields the same bytes.
// Map keys follow CBOR canonical order, not document order.
var cborEncMode cbor.EncMode

var cborDecMode cbor.DecMode

func init() {
	var err error

	encOpts := cbor.EncOptions{
		Sort:          cbor.SortCanonical,
		IndefLength:   cbor.IndefLengthForbidden,
		NilContainers: cbor.NilContainerAsNull,
	}
	cborEncMode, err = encOpts.EncMode()
	if err != nil {
		panic(fmt.Sprintf("failed to create telemetry CBOR encoder mode: %v", err))
	}

	decOpts := cbor.DecOptions{
		DupMapKey: cbor.DupMapKeyEnforcedAPF,
	}
	cborDecMode, err = decOpts.DecMode()
	if err != nil {
		panic(fmt.Sprintf("failed to create telemetry CBOR decoder mode: %v", err))
	}
}

// MarshalCBOR renders the compact binary form. Invalid encodes as CBOR null.
func MarshalCBOR(doc decoder.Document) ([]byte, error) {
	out := make(map[string]map[string]any)

	for _, sec := range doc.Sections() {
		values := make(map[string]any, len(sec.Entries))
		for _, e := range sec.Entries {
			values[e.Channel.Name] = cborValue(e.Reading)
		}
		out[sec.Category.Key()] = values
	}

	data, err := cborEncMode.Marshal(out)
	if err != nil {
		return nil, fmt.Errorf("exporter: cbor: %w", err)
	}
	return data, nil
}

func cborValue(r decoder.Reading) any {
	if v, ok := r.Float(); ok {
		return v
	}
	if v, ok := r.Raw(); ok {
		return uint64(v)
	}
	if v, ok := r.Bool(); ok {
		return v
	}
	return nil
}

// ParseCBOR decodes the binary form back into a Document laid out by m.
func ParseCBOR(data []byte, m *registermap.Map) (decoder.Document, error) {
	var top map[string]map[string]any
	if err := cborDecMode.Unmarshal(data, &top); err != nil {
		return decoder.Document{}, fmt.Errorf("exporter: parse cbor: %w", err)
	}

	groups := m.Enumerate()
	sections := make([]decoder.Section, 0, len(groups))

	for _, g := range groups {
		values, ok := top[g.Category.Key()]
		if !ok {
			return decoder.Document{}, fmt.Errorf("exporter: parse cbor: section %q missing", g.Category.Key())
		}

		sec := decoder.Section{Category: g.Category}
		kind := decoder.KindOf(g.Category)

		for _, ch := range g.Channels {
			v, ok := values[ch.Name]
			if !ok {
				return decoder.Document{}, fmt.Errorf("exporter: parse cbor: channel %q missing", ch.ID())
			}
			r, err := readingFromCBOR(kind, v)
			if err != nil {
				return decoder.Document{}, fmt.Errorf("exporter: parse cbor: channel %q: %w", ch.ID(), err)
			}
			sec.Entries = append(sec.Entries, decoder.Entry{Channel: ch, Reading: r})
		}

		sections = append(sections, sec)
	}

	return decoder.NewDocument(sections), nil
}

func readingFromCBOR(k decoder.Kind, v any) (decoder.Reading, error) {
	if v == nil {
		return decoder.Invalid(k), nil
	}

	switch k {
	case decoder.KindAnalog:
		switch n := v.(type) {
		case float64:
			return decoder.Analog(n), nil
		case uint64:
			return decoder.Analog(float64(n)), nil
		case int64:
			return decoder.Analog(float64(n)), nil
		}
	case decoder.KindCounter:
		if n, ok := v.(uint64); ok && n <= 0xFFFF {
			return decoder.Counter(uint16(n)), nil
		}
	case decoder.KindDiscrete:
		if b, ok := v.(bool); ok {
			return decoder.Discrete(b), nil
		}
	}

	return decoder.Reading{}, fmt.Errorf("unexpected value %v (%T)", v, v)
}
