// internal/status/labels.go
package status

// Label returns the operator-facing meaning of a coded status word.
// Counters and unknown codes have no label and return "".
func Label(channelID string, raw uint16) string {
	switch channelID {
	case ChannelGeneral:
		switch raw {
		case GeneralOK:
			return "ok"
		case GeneralAlarm:
			return "alarm"
		case GeneralFault:
			return "fault"
		}
	case ChannelTempAlarm:
		switch raw {
		case TempAlarmOK:
			return "ok"
		case TempAlarmActive:
			return "active"
		}
	}
	return ""
}

// OnOff renders a discrete.
func OnOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
