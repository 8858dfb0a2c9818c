// internal/status/constants.go
package status

// Status word codes as reported by the device.
// These values define the device protocol and MUST NOT be configurable.

// ---- GENERAL STATUS (status.general) ----

// GeneralOK means the plant runs normally.
const GeneralOK uint16 = 0

// GeneralAlarm means at least one alarm is raised.
const GeneralAlarm uint16 = 1

// GeneralFault means the plant is stopped on a fault.
const GeneralFault uint16 = 2

// ---- TEMPERATURE ALARM (status.temp-alarm) ----

// TempAlarmOK means no temperature alarm.
const TempAlarmOK uint16 = 0

// TempAlarmActive means a temperature alarm is active.
const TempAlarmActive uint16 = 1

// ---- CHANNEL IDS ----

const (
	ChannelGeneral   = "status.general"
	ChannelTempAlarm = "status.temp-alarm"
)
