// internal/registermap/constants.go
package registermap

// Register block geometry.
// These values define the device layout and MUST NOT be configurable.

// ---- BLOCK GEOMETRY ----

// HoldingWords is the number of holding registers in the map, read from address 0.
const HoldingWords = 20

// CoilBits is the number of coils in the map, read from address 0.
const CoilBits = 10

// ---- SCALE FACTORS ----

const (
	ScaleTenths     = 10
	ScaleHundredths = 100
	ScaleUnit       = 1
)

// ---- CATEGORIES ----

// Category groups channels that share a unit and a document section.
type Category uint8

const (
	Temperature Category = iota
	Pressure
	Flow
	Level
	Voltage
	Current
	Status
	Discrete
)

// Categories lists every category in canonical document order.
var Categories = []Category{
	Temperature,
	Pressure,
	Flow,
	Level,
	Voltage,
	Current,
	Status,
	Discrete,
}

// Key is the document section name.
func (c Category) Key() string {
	switch c {
	case Temperature:
		return "temperatures"
	case Pressure:
		return "pressures"
	case Flow:
		return "flows"
	case Level:
		return "levels"
	case Voltage:
		return "voltages"
	case Current:
		return "currents"
	case Status:
		return "status"
	case Discrete:
		return "discretes"
	default:
		return "unknown"
	}
}

// String returns the singular category name.
func (c Category) String() string {
	switch c {
	case Temperature:
		return "temperature"
	case Pressure:
		return "pressure"
	case Flow:
		return "flow"
	case Level:
		return "level"
	case Voltage:
		return "voltage"
	case Current:
		return "current"
	case Status:
		return "status"
	case Discrete:
		return "discrete"
	default:
		return "unknown"
	}
}

// Analog reports whether channels of this category are scaled and range-checked.
func (c Category) Analog() bool {
	return c <= Current
}
