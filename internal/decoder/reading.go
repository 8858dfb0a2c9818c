// internal/decoder/reading.go
package decoder

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Kind tells which value a Reading carries.
type Kind uint8

const (
	KindAnalog   Kind = iota // scaled engineering value
	KindCounter              // raw register, unvalidated
	KindDiscrete             // coil
)

// Reading is one decoded channel value or the Invalid sentinel.
// An Invalid reading never carries a value, so it cannot pass for zero.
type Reading struct {
	kind  Kind
	valid bool
	num   float64
	raw   uint16
	bit   bool
}

// Analog returns a valid scaled reading.
func Analog(v float64) Reading { return Reading{kind: KindAnalog, valid: true, num: v} }

// Counter returns a valid raw register reading.
func Counter(v uint16) Reading { return Reading{kind: KindCounter, valid: true, raw: v} }

// Discrete returns a valid coil reading.
func Discrete(v bool) Reading { return Reading{kind: KindDiscrete, valid: true, bit: v} }

// Invalid returns the sentinel for a channel of the given kind.
func Invalid(k Kind) Reading { return Reading{kind: k} }

// Kind reports which accessor carries the value.
func (r Reading) Kind() Kind { return r.kind }

// Valid is false for the Invalid sentinel.
func (r Reading) Valid() bool { return r.valid }

// Float returns the analog value.
func (r Reading) Float() (float64, bool) {
	return r.num, r.valid && r.kind == KindAnalog
}

// Raw returns the counter value.
func (r Reading) Raw() (uint16, bool) {
	return r.raw, r.valid && r.kind == KindCounter
}

// Bool returns the discrete value.
func (r Reading) Bool() (bool, bool) {
	return r.bit, r.valid && r.kind == KindDiscrete
}

// String is for logs only.
func (r Reading) String() string {
	if !r.valid {
		return "invalid"
	}
	switch r.kind {
	case KindAnalog:
		return strconv.FormatFloat(r.num, 'f', -1, 64)
	case KindCounter:
		return strconv.FormatUint(uint64(r.raw), 10)
	default:
		return strconv.FormatBool(r.bit)
	}
}

// MarshalJSON encodes Invalid as null.
func (r Reading) MarshalJSON() ([]byte, error) {
	if !r.valid {
		return []byte("null"), nil
	}
	switch r.kind {
	case KindAnalog:
		return json.Marshal(r.num)
	case KindCounter:
		return []byte(strconv.FormatUint(uint64(r.raw), 10)), nil
	case KindDiscrete:
		return json.Marshal(r.bit)
	default:
		return nil, fmt.Errorf("decoder: unknown reading kind %d", r.kind)
	}
}

// ParseJSON decodes one JSON value into a reading of kind k.
// null becomes Invalid.
func ParseJSON(k Kind, data []byte) (Reading, error) {
	if string(data) == "null" {
		return Invalid(k), nil
	}

	switch k {
	case KindAnalog:
		var v float64
		if err := json.Unmarshal(data, &v); err != nil {
			return Reading{}, err
		}
		return Analog(v), nil
	case KindCounter:
		var v uint16
		if err := json.Unmarshal(data, &v); err != nil {
			return Reading{}, err
		}
		return Counter(v), nil
	case KindDiscrete:
		var v bool
		if err := json.Unmarshal(data, &v); err != nil {
			return Reading{}, err
		}
		return Discrete(v), nil
	default:
		return Reading{}, fmt.Errorf("decoder: unknown reading kind %d", k)
	}
}
