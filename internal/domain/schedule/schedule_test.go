package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barber-saas/internal/httperr"
)

func mustTime(t *testing.T, s string) time.Time {
	t.Helper()
	at, err := ParseDateTime(s)
	require.NoError(t, err)
	return at
}

// 2024-01-01 é segunda, 2024-01-07 é domingo.
const (
	monday = "2024-01-01T"
	sunday = "2024-01-07T"
)

func TestDefaultWeek(t *testing.T) {
	w := Default()

	require.Len(t, w, 7)

	for _, day := range []string{"monday", "tuesday", "wednesday", "thursday", "friday"} {
		rule := w[day]
		assert.True(t, rule.Active, day)
		assert.Equal(t, "09:00", rule.Open, day)
		assert.Equal(t, "18:00", rule.Close, day)
		assert.Empty(t, rule.BreakStart, day)
		assert.Empty(t, rule.BreakEnd, day)
	}

	assert.True(t, w["saturday"].Active)
	assert.Equal(t, "14:00", w["saturday"].Close)

	assert.False(t, w["sunday"].Active)
}

func TestSerializeParseRoundTrip(t *testing.T) {
	orig := Default()
	orig["monday"] = DayRule{
		Open: "08:30", Close: "19:00",
		BreakStart: "12:00", BreakEnd: "13:00",
		Active: true,
	}

	raw, err := Serialize(orig)
	require.NoError(t, err)

	parsed, err := Parse(raw)
	require.NoError(t, err)

	assert.Equal(t, orig, parsed)
}

func TestValidateSlotBusinessHours(t *testing.T) {
	raw, err := Serialize(Week{
		"monday": {Open: "09:00", Close: "18:00", Active: true},
	})
	require.NoError(t, err)

	tests := []struct {
		name string
		at   string
		code string
	}{
		{"exactly at open is allowed", monday + "09:00", ""},
		{"inside the window", monday + "12:30", ""},
		{"last minute before close", monday + "17:59", ""},
		{"exactly at close is rejected", monday + "18:00", "outside_business_hours"},
		{"before open", monday + "08:59", "outside_business_hours"},
		{"after close", monday + "20:00", "outside_business_hours"},
		{"weekday missing from config", sunday + "10:00", "closed_this_day"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSlot(raw, mustTime(t, tt.at))
			if tt.code == "" {
				assert.NoError(t, err)
				return
			}
			assert.True(t, httperr.IsBusiness(err, tt.code), "want %s, got %v", tt.code, err)
		})
	}
}

func TestValidateSlotInactiveDayRejectsEverything(t *testing.T) {
	raw, err := Serialize(Week{
		"sunday": {Open: "00:00", Close: "23:59", Active: false},
	})
	require.NoError(t, err)

	for _, hm := range []string{"00:00", "09:00", "12:00", "23:58"} {
		err := ValidateSlot(raw, mustTime(t, sunday+hm))
		assert.True(t, httperr.IsBusiness(err, "closed_this_day"), hm)
	}
}

func TestValidateSlotBreakWindow(t *testing.T) {
	raw, err := Serialize(Week{
		"monday": {
			Open: "09:00", Close: "18:00",
			BreakStart: "12:00", BreakEnd: "13:00",
			Active: true,
		},
	})
	require.NoError(t, err)

	tests := []struct {
		at   string
		code string
	}{
		{monday + "11:59", ""},
		{monday + "12:00", "inside_break_window"},
		{monday + "12:30", "inside_break_window"},
		{monday + "12:59", "inside_break_window"},
		{monday + "13:00", ""},
	}

	for _, tt := range tests {
		err := ValidateSlot(raw, mustTime(t, tt.at))
		if tt.code == "" {
			assert.NoError(t, err, tt.at)
			continue
		}
		assert.True(t, httperr.IsBusiness(err, tt.code), tt.at)
	}
}

func TestValidateSlotMalformedJSONFallsBack(t *testing.T) {
	for _, raw := range []string{"", "{broken", `"not an object"`, "[1,2]"} {
		// regra padrão 09:00-18:00 ativa em qualquer dia
		assert.NoError(t, ValidateSlot(raw, mustTime(t, monday+"09:00")), raw)
		assert.NoError(t, ValidateSlot(raw, mustTime(t, sunday+"10:00")), raw)

		err := ValidateSlot(raw, mustTime(t, monday+"18:00"))
		assert.True(t, httperr.IsBusiness(err, "outside_business_hours"), raw)

		err = ValidateSlot(raw, mustTime(t, monday+"08:00"))
		assert.True(t, httperr.IsBusiness(err, "outside_business_hours"), raw)
	}
}

func TestValidateSlotBadTimeStringsInRuleFallBack(t *testing.T) {
	raw, err := Serialize(Week{
		"monday": {Open: "9am", Close: "late", Active: true},
	})
	require.NoError(t, err)

	// regra ilegível cai na janela padrão 09:00-18:00
	assert.NoError(t, ValidateSlot(raw, mustTime(t, monday+"10:00")))

	badHour := ValidateSlot(raw, mustTime(t, monday+"08:00"))
	assert.True(t, httperr.IsBusiness(badHour, "outside_business_hours"))
}

func TestValidateWeek(t *testing.T) {
	ok := Week{
		"monday": {Open: "09:00", Close: "18:00", Active: true},
		"friday": {Open: "10:00", Close: "20:00", BreakStart: "14:00", BreakEnd: "15:00", Active: true},
	}
	assert.NoError(t, ValidateWeek(ok))

	badDay := Week{"funday": {Open: "09:00", Close: "18:00", Active: true}}
	assert.True(t, httperr.IsBusiness(ValidateWeek(badDay), "unknown_weekday"))

	badTime := Week{"monday": {Open: "25:00", Close: "18:00", Active: true}}
	assert.True(t, httperr.IsBusiness(ValidateWeek(badTime), "invalid_time_format"))

	halfBreak := Week{"monday": {Open: "09:00", Close: "18:00", BreakStart: "12:00", Active: true}}
	assert.True(t, httperr.IsBusiness(ValidateWeek(halfBreak), "invalid_time_format"))
}

func TestParseDateTime(t *testing.T) {
	at, err := ParseDateTime("2024-01-01T09:00")
	require.NoError(t, err)
	assert.Equal(t, time.Monday, at.Weekday())
	assert.Equal(t, "monday", WeekdayName(at))

	withSeconds, err := ParseDateTime("2024-01-01T09:00:30")
	require.NoError(t, err)
	assert.Equal(t, 9, withSeconds.Hour())

	_, err = ParseDateTime("01/01/2024 9h")
	assert.Error(t, err)
}
