package schedule

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeekdayOf(t *testing.T) {
	// 2024-01-01 is a Monday
	cases := []struct {
		date time.Time
		want Weekday
	}{
		{time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), Monday},
		{time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC), Tuesday},
		{time.Date(2024, 1, 6, 0, 0, 0, 0, time.UTC), Saturday},
		{time.Date(2024, 1, 7, 0, 0, 0, 0, time.UTC), Sunday},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, WeekdayOf(c.date), "date %s", c.date.Format("2006-01-02"))
	}
}

func TestParseTimeOfDay(t *testing.T) {
	got, err := ParseTimeOfDay("09:05")
	require.NoError(t, err)
	assert.Equal(t, TimeOfDay{Hour: 9, Minute: 5}, got)
	assert.Equal(t, "09:05", got.String())

	_, err = ParseTimeOfDay("24:00")
	assert.Error(t, err)
	_, err = ParseTimeOfDay("9am")
	assert.Error(t, err)
}

func TestTimeOfDayAt(t *testing.T) {
	loc := time.FixedZone("UTC+5", 5*3600)
	date := time.Date(2024, 3, 15, 0, 0, 0, 0, loc)
	got := TimeOfDay{Hour: 9, Minute: 30}.At(date, loc)
	assert.Equal(t, time.Date(2024, 3, 15, 9, 30, 0, 0, loc), got)
}

func TestResolveWorkDayWithConfiguredTimes(t *testing.T) {
	week := WeekSchedule{
		Monday: {Start: TimeOfDay{Hour: 8}, End: TimeOfDay{Hour: 17}},
	}
	workDays := []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday}

	monday := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	got, err := Resolve(workDays, week, monday)
	require.NoError(t, err)
	assert.True(t, got.IsWorkDay)
	assert.Equal(t, TimeOfDay{Hour: 8}, got.Start)
	assert.Equal(t, TimeOfDay{Hour: 17}, got.End)
}

func TestResolveWorkDayMissingEntryDefaults(t *testing.T) {
	// Tuesday is a work day but has no schedule entry: defaults apply,
	// it is not an error.
	week := WeekSchedule{
		Monday: {Start: TimeOfDay{Hour: 8}, End: TimeOfDay{Hour: 17}},
	}
	workDays := []Weekday{Monday, Tuesday}

	tuesday := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	got, err := Resolve(workDays, week, tuesday)
	require.NoError(t, err)
	assert.True(t, got.IsWorkDay)
	assert.Equal(t, DefaultStart, got.Start)
	assert.Equal(t, DefaultEnd, got.End)
}

func TestResolveNonWorkDay(t *testing.T) {
	workDays := []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday}

	saturday := time.Date(2024, 1, 6, 0, 0, 0, 0, time.UTC)
	got, err := Resolve(workDays, nil, saturday)
	require.NoError(t, err)
	assert.False(t, got.IsWorkDay)
	assert.Equal(t, DefaultStart, got.Start)
	assert.Equal(t, DefaultEnd, got.End)
}

func TestResolveZeroDate(t *testing.T) {
	_, err := Resolve([]Weekday{Monday}, nil, time.Time{})
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestWeekScheduleJSONRoundTrip(t *testing.T) {
	raw := `{"monday":{"start":"09:00","end":"18:00"},"saturday":{"start":"10:00","end":"14:00"}}`

	var week WeekSchedule
	require.NoError(t, json.Unmarshal([]byte(raw), &week))
	assert.Equal(t, TimeOfDay{Hour: 9}, week[Monday].Start)
	assert.Equal(t, TimeOfDay{Hour: 14}, week[Saturday].End)

	out, err := json.Marshal(week)
	require.NoError(t, err)
	assert.JSONEq(t, raw, string(out))
}
