// internal/registermap/table.go
package registermap

// canonical is the one register layout this module understands.
// Offsets are holding-register indices for analog and status channels,
// coil indices for discretes.
var canonical = []ChannelSpec{
	// temperatures (°C)
	{Name: "ambient", Category: Temperature, Offset: 0, Scale: ScaleTenths, Unit: "°C", Range: &Range{Min: -50, Max: 150}},
	{Name: "motor", Category: Temperature, Offset: 1, Scale: ScaleTenths, Unit: "°C", Range: &Range{Min: -50, Max: 150}},
	{Name: "external", Category: Temperature, Offset: 2, Scale: ScaleTenths, Unit: "°C", Range: &Range{Min: -50, Max: 150}},

	// pressures (bar)
	{Name: "system", Category: Pressure, Offset: 3, Scale: ScaleHundredths, Unit: "bar", Range: &Range{Min: 0, Max: 50}},
	{Name: "line", Category: Pressure, Offset: 4, Scale: ScaleHundredths, Unit: "bar", Range: &Range{Min: 0, Max: 50}},

	// flows (L/min)
	{Name: "primary", Category: Flow, Offset: 5, Scale: ScaleUnit, Unit: "L/min", Range: &Range{Min: 0, Max: 1000}},
	{Name: "secondary", Category: Flow, Offset: 6, Scale: ScaleUnit, Unit: "L/min", Range: &Range{Min: 0, Max: 1000}},

	// levels (%)
	{Name: "tank1", Category: Level, Offset: 7, Scale: ScaleUnit, Unit: "%", Range: &Range{Min: 0, Max: 100}},
	{Name: "tank2", Category: Level, Offset: 8, Scale: ScaleUnit, Unit: "%", Range: &Range{Min: 0, Max: 100}},

	// voltages (V)
	{Name: "L1", Category: Voltage, Offset: 9, Scale: ScaleTenths, Unit: "V", Range: &Range{Min: 100, Max: 300}},
	{Name: "L2", Category: Voltage, Offset: 10, Scale: ScaleTenths, Unit: "V", Range: &Range{Min: 100, Max: 300}},
	{Name: "L3", Category: Voltage, Offset: 11, Scale: ScaleTenths, Unit: "V", Range: &Range{Min: 100, Max: 300}},

	// currents (A)
	{Name: "L1", Category: Current, Offset: 12, Scale: ScaleTenths, Unit: "A", Range: &Range{Min: 0, Max: 100}},
	{Name: "L2", Category: Current, Offset: 13, Scale: ScaleTenths, Unit: "A", Range: &Range{Min: 0, Max: 100}},
	{Name: "L3", Category: Current, Offset: 14, Scale: ScaleTenths, Unit: "A", Range: &Range{Min: 0, Max: 100}},

	// status and counters (raw, unvalidated)
	{Name: "general", Category: Status, Offset: 15, Scale: ScaleUnit},
	{Name: "temp-alarm", Category: Status, Offset: 16, Scale: ScaleUnit},
	{Name: "production-count", Category: Status, Offset: 17, Scale: ScaleUnit},
	{Name: "fault-count", Category: Status, Offset: 18, Scale: ScaleUnit},
	{Name: "run-hours", Category: Status, Offset: 19, Scale: ScaleUnit, Unit: "h"},

	// discretes (coils)
	{Name: "pump-main", Category: Discrete, Offset: 0},
	{Name: "pump-standby", Category: Discrete, Offset: 1},
	{Name: "valve-in", Category: Discrete, Offset: 2},
	{Name: "valve-out", Category: Discrete, Offset: 3},
	{Name: "auto-mode", Category: Discrete, Offset: 4},
	{Name: "manual-mode", Category: Discrete, Offset: 5},
	{Name: "alarm-active", Category: Discrete, Offset: 6},
	{Name: "maintenance", Category: Discrete, Offset: 7},
	{Name: "presence-sensor", Category: Discrete, Offset: 8},
	{Name: "door-open", Category: Discrete, Offset: 9},
}
