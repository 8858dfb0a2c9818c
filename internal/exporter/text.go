// internal/exporter/text.go
package exporter

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/tamzrod/modbus-telemetry/internal/decoder"
	"github.com/tamzrod/modbus-telemetry/internal/status"
)

const notAvailable = "N/A"

// MarshalText renders the operator-facing form of a document.
func MarshalText(doc decoder.Document) []byte {
	var buf bytes.Buffer

	buf.WriteString("=== TELEMETRY ===\n")

	for _, sec := range doc.Sections() {
		buf.WriteByte('\n')
		buf.WriteString(sectionTitle(sec))
		buf.WriteByte('\n')

		for _, e := range sec.Entries {
			fmt.Fprintf(&buf, "  %s: %s\n", e.Channel.Name, formatEntry(e))
		}
	}

	return buf.Bytes()
}

func sectionTitle(sec decoder.Section) string {
	key := sec.Category.Key()
	title := strings.ToUpper(key[:1]) + key[1:]

	if sec.Category.Analog() && len(sec.Entries) > 0 && sec.Entries[0].Channel.Unit != "" {
		return fmt.Sprintf("%s (%s)", title, sec.Entries[0].Channel.Unit)
	}
	return title
}

func formatEntry(e decoder.Entry) string {
	r := e.Reading
	if !r.Valid() {
		return notAvailable
	}

	ch := e.Channel

	if v, ok := r.Float(); ok {
		return withUnit(strconv.FormatFloat(v, 'f', decimals(ch.Scale), 64), ch.Unit)
	}
	if v, ok := r.Raw(); ok {
		s := withUnit(strconv.FormatUint(uint64(v), 10), ch.Unit)
		if label := status.Label(ch.ID(), v); label != "" {
			s += " (" + label + ")"
		}
		return s
	}
	if v, ok := r.Bool(); ok {
		return status.OnOff(v)
	}
	return notAvailable
}

// decimals is the precision a divisor carries: ÷10 -> 1, ÷100 -> 2, ÷1 -> 0.
func decimals(scale float64) int {
	n := 0
	for s := scale; s > 1; s /= 10 {
		n++
	}
	return n
}

func withUnit(v, unit string) string {
	if unit == "" {
		return v
	}
	return v + " " + unit
}
