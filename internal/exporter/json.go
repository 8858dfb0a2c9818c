// internal/exporter/json.go
package exporter

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/tamzrod/modbus-telemetry/internal/decoder"
	"github.com/tamzrod/modbus-telemetry/internal/registermap"
)

// MarshalJSON renders the canonical JSON form: sections and channels in
// register map order, 2-space indent, Invalid as null, trailing newline.
func MarshalJSON(doc decoder.Document) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteByte('{')
	for i, sec := range doc.Sections() {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := writeKey(&buf, sec.Category.Key()); err != nil {
			return nil, err
		}

		buf.WriteByte('{')
		for j, e := range sec.Entries {
			if j > 0 {
				buf.WriteByte(',')
			}
			if err := writeKey(&buf, e.Channel.Name); err != nil {
				return nil, err
			}
			v, err := json.Marshal(e.Reading)
			if err != nil {
				return nil, fmt.Errorf("exporter: %s: %w", e.Channel.ID(), err)
			}
			buf.Write(v)
		}
		buf.WriteByte('}')
	}
	buf.WriteByte('}')

	var out bytes.Buffer
	if err := json.Indent(&out, buf.Bytes(), "", "  "); err != nil {
		return nil, fmt.Errorf("exporter: indent: %w", err)
	}
	out.WriteByte('\n')

	return out.Bytes(), nil
}

func writeKey(buf *bytes.Buffer, key string) error {
	k, err := json.Marshal(key)
	if err != nil {
		return err
	}
	buf.Write(k)
	buf.WriteByte(':')
	return nil
}

// Parse decodes the canonical JSON form back into a Document laid out by m.
// Every section and channel of m must be present; null decodes to Invalid.
func Parse(data []byte, m *registermap.Map) (decoder.Document, error) {
	var top map[string]json.RawMessage
	if err := json.Unmarshal(data, &top); err != nil {
		return decoder.Document{}, fmt.Errorf("exporter: parse: %w", err)
	}

	groups := m.Enumerate()
	sections := make([]decoder.Section, 0, len(groups))

	for _, g := range groups {
		raw, ok := top[g.Category.Key()]
		if !ok {
			return decoder.Document{}, fmt.Errorf("exporter: parse: section %q missing", g.Category.Key())
		}

		var values map[string]json.RawMessage
		if err := json.Unmarshal(raw, &values); err != nil {
			return decoder.Document{}, fmt.Errorf("exporter: parse: section %q: %w", g.Category.Key(), err)
		}

		sec := decoder.Section{Category: g.Category}
		kind := decoder.KindOf(g.Category)

		for _, ch := range g.Channels {
			v, ok := values[ch.Name]
			if !ok {
				return decoder.Document{}, fmt.Errorf("exporter: parse: channel %q missing", ch.ID())
			}
			r, err := decoder.ParseJSON(kind, v)
			if err != nil {
				return decoder.Document{}, fmt.Errorf("exporter: parse: channel %q: %w", ch.ID(), err)
			}
			sec.Entries = append(sec.Entries, decoder.Entry{Channel: ch, Reading: r})
		}

		sections = append(sections, sec)
	}

	return decoder.NewDocument(sections), nil
}

// Load reads a persisted JSON document.
// Call it from an entry point; nothing in this package loads on import.
func Load(path string, m *registermap.Map) (decoder.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return decoder.Document{}, fmt.Errorf("exporter: load %s: %w", path, err)
	}
	return Parse(data, m)
}
