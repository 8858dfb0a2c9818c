// internal/exporter/raw.go
package exporter

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/tamzrod/modbus-telemetry/internal/decoder"
	"github.com/tamzrod/modbus-telemetry/internal/poller"
)

const rawAbsent = "-"

// MarshalRaw renders the register capture behind a document: one line per
// channel with its offset, the raw word or bit, and the scaled value.
// Raw columns read "-" when the snapshot did not carry the address or the
// document was read back from a file.
func MarshalRaw(doc decoder.Document) []byte {
	src, hasSrc := doc.Source()

	var holding, coils []decoder.Entry
	for _, sec := range doc.Sections() {
		if decoder.KindOf(sec.Category) == decoder.KindDiscrete {
			coils = append(coils, sec.Entries...)
		} else {
			holding = append(holding, sec.Entries...)
		}
	}

	var buf bytes.Buffer
	buf.WriteString("=== RAW REGISTERS ===\n")

	buf.WriteString("\nHolding registers\n")
	for _, e := range holding {
		raw := rawAbsent
		if hasSrc {
			raw = rawWord(src, e.Channel.Offset)
		}
		writeRawLine(&buf, e, raw)
	}

	buf.WriteString("\nCoils\n")
	for _, e := range coils {
		raw := rawAbsent
		if hasSrc {
			raw = rawBit(src, e.Channel.Offset)
		}
		writeRawLine(&buf, e, raw)
	}

	return buf.Bytes()
}

func writeRawLine(buf *bytes.Buffer, e decoder.Entry, raw string) {
	fmt.Fprintf(buf, "  %02d  %5s  %-24s %s\n", e.Channel.Offset, raw, e.Channel.ID(), formatEntry(e))
}

func rawWord(s poller.Snapshot, offset int) string {
	w, ok := s.Word(offset)
	if !ok {
		return rawAbsent
	}
	return strconv.FormatUint(uint64(w), 10)
}

func rawBit(s poller.Snapshot, offset int) string {
	b, ok := s.Bit(offset)
	switch {
	case !ok:
		return rawAbsent
	case b:
		return "1"
	default:
		return "0"
	}
}
