package hours

import (
	"bytes"
	"encoding/json"
	"strings"
)

// SlotTime is a timeslot boundary as stored by the admin panel. Legacy rows
// hold strings, numbers or null; all of them decode to a trimmed string.
type SlotTime string

func (s *SlotTime) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*s = ""
		return nil
	}

	if data[0] == '"' {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		*s = SlotTime(strings.TrimSpace(str))
		return nil
	}

	var num json.Number
	if err := json.Unmarshal(data, &num); err != nil {
		// objects, arrays and booleans carry no usable time
		*s = ""
		return nil
	}
	*s = SlotTime(num.String())
	return nil
}

type TimeSlot struct {
	From SlotTime `json:"from"`
	To   SlotTime `json:"to"`
}

// Complete reports whether both boundaries are present.
func (t TimeSlot) Complete() bool {
	return strings.TrimSpace(string(t.From)) != "" && strings.TrimSpace(string(t.To)) != ""
}

type DaySchedule struct {
	Day      string     `json:"day"`
	Timeslot []TimeSlot `json:"timeslot"`
}

// WorkingHours is the weekly schedule of a vendor.
type WorkingHours []DaySchedule

// HasAnySlot reports whether at least one day has a slot with both boundaries.
func (w WorkingHours) HasAnySlot() bool {
	for _, day := range w {
		for _, slot := range day.Timeslot {
			if slot.Complete() {
				return true
			}
		}
	}
	return false
}

// ParseWorkingHours decodes a stored workingHours value. Anything that is not
// a list of day objects yields an empty schedule.
func ParseWorkingHours(raw []byte) WorkingHours {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return nil
	}

	// some rows were double encoded as a JSON string
	if raw[0] == '"' {
		var inner string
		if err := json.Unmarshal(raw, &inner); err != nil {
			return nil
		}
		return ParseWorkingHours([]byte(inner))
	}

	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil
	}

	schedule := make(WorkingHours, 0, len(items))
	for _, item := range items {
		var day DaySchedule
		if err := json.Unmarshal(item, &day); err != nil {
			continue
		}
		day.Day = strings.TrimSpace(day.Day)
		schedule = append(schedule, day)
	}
	return schedule
}

// ManualOverride normalizes the raw isOpen column. NULL means the vendor was
// never closed by hand; false, 0, "0" and "false" mean closed; anything else
// means open.
func ManualOverride(raw any) bool {
	switch v := raw.(type) {
	case nil:
		return true
	case bool:
		return v
	case int:
		return v != 0
	case int64:
		return v != 0
	case float64:
		return v != 0
	case []byte:
		return ManualOverride(string(v))
	case string:
		s := strings.ToLower(strings.TrimSpace(v))
		return s != "0" && s != "false"
	default:
		return true
	}
}
