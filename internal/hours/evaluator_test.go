package hours

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// 2024-01-01 is a Monday.
func at(day, hour, minute int) func() time.Time {
	return func() time.Time {
		return time.Date(2024, 1, day, hour, minute, 0, 0, Kolkata)
	}
}

func mondayNineToFive() WorkingHours {
	return WorkingHours{{Day: "Monday", Timeslot: []TimeSlot{{From: "09:00", To: "17:00"}}}}
}

func TestIsOpen(t *testing.T) {
	tests := []struct {
		name     string
		manual   bool
		schedule WorkingHours
		clock    func() time.Time
		want     bool
	}{
		{"inside slot", true, mondayNineToFive(), at(1, 10, 0), true},
		{"after slot", true, mondayNineToFive(), at(1, 18, 0), false},
		{"slot boundaries are inclusive", true, mondayNineToFive(), at(1, 17, 0), true},
		{"manually closed", false, mondayNineToFive(), at(1, 10, 0), false},
		{"other day", true, mondayNineToFive(), at(2, 10, 0), false},
		{"no schedule", true, nil, at(1, 10, 0), false},
		{
			"empty timeslots",
			true,
			WorkingHours{{Day: "Monday", Timeslot: []TimeSlot{{From: "", To: "17:00"}}}, {Day: "Tuesday"}},
			at(1, 10, 0),
			false,
		},
		{
			"midnight crossing before midnight",
			true,
			WorkingHours{{Day: "Monday", Timeslot: []TimeSlot{{From: "22:00", To: "02:00"}}}},
			at(1, 23, 30),
			true,
		},
		{
			"midnight crossing next day",
			true,
			WorkingHours{{Day: "Monday", Timeslot: []TimeSlot{{From: "22:00", To: "02:00"}}}},
			at(2, 3, 0),
			false,
		},
		{
			"second slot matches",
			true,
			WorkingHours{{Day: "Monday", Timeslot: []TimeSlot{
				{From: "07:00", To: "10:00"},
				{From: "12:00", To: "15:00"},
			}}},
			at(1, 13, 15),
			true,
		},
		{
			"twelve hour format",
			true,
			WorkingHours{{Day: " Monday ", Timeslot: []TimeSlot{{From: "9:00 am", To: "5:30 PM"}}}},
			at(1, 17, 15),
			true,
		},
		{
			"malformed slot is skipped",
			true,
			WorkingHours{{Day: "Monday", Timeslot: []TimeSlot{
				{From: "lunch", To: "later"},
				{From: "08:00", To: "11:00"},
			}}},
			at(1, 10, 0),
			true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := NewEvaluator().WithClock(tt.clock)
			assert.Equal(t, tt.want, e.IsOpen(tt.manual, tt.schedule))
		})
	}
}

func TestIsOpenUsesReferenceZone(t *testing.T) {
	// 04:45 UTC on Monday is 10:15 in Kolkata
	e := NewEvaluator().WithClock(func() time.Time {
		return time.Date(2024, 1, 1, 4, 45, 0, 0, time.UTC)
	})
	assert.True(t, e.IsOpen(true, mondayNineToFive()))
}

func TestManuallyClosedIgnoresSchedule(t *testing.T) {
	schedules := []WorkingHours{nil, mondayNineToFive(), {{Day: "Monday", Timeslot: []TimeSlot{{From: "00:00", To: "23:59"}}}}}
	for _, s := range schedules {
		assert.False(t, NewEvaluator().WithClock(at(1, 12, 0)).IsOpen(false, s))
	}
}

func TestParseMinutes(t *testing.T) {
	tests := []struct {
		in   string
		want int
		ok   bool
	}{
		{"09:00", 540, true},
		{"9:05", 545, true},
		{" 23:59 ", 1439, true},
		{"24:00", 0, false},
		{"12:60", 0, false},
		{"9:30 AM", 570, true},
		{"09:30 pm", 1290, true},
		{"12:00 AM", 0, true},
		{"18:45:30", 1125, true},
		{"7:15:00 PM", 1155, true},
		{"7PM", 1140, true},
		{"", 0, false},
		{"noonish", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseMinutes(tt.in)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestManualOverride(t *testing.T) {
	tests := []struct {
		raw  any
		want bool
	}{
		{nil, true},
		{true, true},
		{false, false},
		{int64(0), false},
		{int64(1), true},
		{"0", false},
		{" FALSE ", false},
		{"false", false},
		{"1", true},
		{"yes", true},
		{"", true},
		{[]byte("0"), false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ManualOverride(tt.raw), "raw=%v", tt.raw)
	}
}

func TestParseWorkingHours(t *testing.T) {
	raw := []byte(`[{"timeslot":[{"to":"17:00","from":"09:00"}],"day":"Monday "},{"day":"Sunday","timeslot":[{"from":900,"to":null}]}]`)
	wh := ParseWorkingHours(raw)

	if assert.Len(t, wh, 2) {
		assert.Equal(t, "Monday", wh[0].Day)
		assert.Equal(t, SlotTime("09:00"), wh[0].Timeslot[0].From)
		assert.Equal(t, SlotTime("900"), wh[1].Timeslot[0].From)
		assert.False(t, wh[1].Timeslot[0].Complete())
	}
	assert.True(t, wh.HasAnySlot())

	assert.Nil(t, ParseWorkingHours([]byte(`{"day":"Monday"}`)))
	assert.Nil(t, ParseWorkingHours(nil))

	encoded := []byte(`"[{\"day\":\"Friday\",\"timeslot\":[{\"from\":\"10:00\",\"to\":\"11:00\"}]}]"`)
	assert.Len(t, ParseWorkingHours(encoded), 1)
}
