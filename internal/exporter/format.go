// internal/exporter/format.go
package exporter

import (
	"fmt"

	"github.com/tamzrod/modbus-telemetry/internal/decoder"
)

// Format selects one output variant of the same document.
type Format string

const (
	FormatJSON Format = "json"
	FormatText Format = "text"
	FormatCBOR Format = "cbor"
	FormatRaw  Format = "raw"
)

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case FormatJSON, FormatText, FormatCBOR, FormatRaw:
		return f, nil
	default:
		return "", fmt.Errorf("exporter: unknown format %q", s)
	}
}

// Serialize renders doc in the given format.
func Serialize(doc decoder.Document, f Format) ([]byte, error) {
	switch f {
	case FormatJSON:
		return MarshalJSON(doc)
	case FormatText:
		return MarshalText(doc), nil
	case FormatCBOR:
		return MarshalCBOR(doc)
	case FormatRaw:
		return MarshalRaw(doc), nil
	default:
		return nil, fmt.Errorf("exporter: unknown format %q", f)
	}
}
