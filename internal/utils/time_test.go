package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/julianstephens/teetime/internal/errors"
)

func TestTo24Hour(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"12:00am", "00:00"},
		{"12:30am", "00:30"},
		{"1:00pm", "13:00"},
		{"12:00pm", "12:00"},
		{"8:00am", "08:00"},
		{"11:59pm", "23:59"},
		{"7:15 AM", "07:15"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := To24Hour(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTo24HourInvalid(t *testing.T) {
	for _, in := range []string{"", "13:00pm", "0:00am", "8:60am", "8:00", "eight am", "8am"} {
		t.Run(in, func(t *testing.T) {
			_, err := To24Hour(in)
			require.Error(t, err)
			assert.ErrorIs(t, err, apperrors.ErrInvalidTimeFormat)
		})
	}
}

func TestTo12Hour(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"00:00", "12:00am"},
		{"13:05", "1:05pm"},
		{"12:00", "12:00pm"},
		{"08:00", "8:00am"},
		{"8:30", "8:30am"},
		{"23:59", "11:59pm"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := To12Hour(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTo12HourInvalid(t *testing.T) {
	for _, in := range []string{"", "24:00", "12:60", "noon", "1pm"} {
		_, err := To12Hour(in)
		assert.ErrorIs(t, err, apperrors.ErrInvalidTimeFormat, in)
	}
}

func TestTimeRoundTrip(t *testing.T) {
	for h := 0; h < 24; h++ {
		for _, m := range []int{0, 1, 30, 59} {
			t24 := Time24{Hour: h, Minute: m}.String()
			t12, err := To12Hour(t24)
			require.NoError(t, err)
			back, err := To24Hour(t12)
			require.NoError(t, err)
			assert.Equal(t, t24, back)
		}
	}
}

func TestIsValidDateAt(t *testing.T) {
	now := time.Date(2026, 2, 13, 15, 30, 0, 0, time.Local)

	tests := []struct {
		in   string
		want bool
	}{
		{"2026-02-13", true},
		{"2026-02-14", true},
		{"2027-01-01", true},
		{"2026-02-12", false},
		{"2026-13-01", false},
		{"2026-02-30", false},
		{"2026-2-14", false},
		{"02/14/2026", false},
		{"", false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidDateAt(tt.in, now))
		})
	}
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2028-02-29", time.UTC)
	require.NoError(t, err)
	assert.Equal(t, time.February, d.Month())
	assert.Equal(t, 29, d.Day())

	_, err = ParseDate("2027-02-29", time.UTC)
	assert.ErrorIs(t, err, apperrors.ErrInvalidDateFormat)
}

func TestFormatDateToMD(t *testing.T) {
	assert.Equal(t, "3/1", FormatDateToMD("2026-03-01"))
	assert.Equal(t, "11/30", FormatDateToMD("2026-11-30"))
	assert.Equal(t, "not a date", FormatDateToMD("not a date"))
}

func TestFormatMDToDate(t *testing.T) {
	got, err := FormatMDToDate("3/1", 2026)
	require.NoError(t, err)
	assert.Equal(t, "2026-03-01", got)

	got, err = FormatMDToDate("11/30", 2026)
	require.NoError(t, err)
	assert.Equal(t, "2026-11-30", got)

	got, err = FormatMDToDate("3/1", 0)
	require.NoError(t, err)
	assert.Equal(t, time.Now().Format("2006")+"-03-01", got)

	for _, in := range []string{"", "3", "3/1/2026", "13/1", "0/5", "3/32", "a/b"} {
		_, err := FormatMDToDate(in, 2026)
		assert.ErrorIs(t, err, apperrors.ErrInvalidDateFormat, in)
	}
}

func TestFormatMDToDate_CalendarDays(t *testing.T) {
	got, err := FormatMDToDate("2/29", 2026)
	require.NoError(t, err)
	assert.Equal(t, "2026-02-28", got)

	got, err = FormatMDToDate("2/29", 2028)
	require.NoError(t, err)
	assert.Equal(t, "2028-02-29", got)

	got, err = FormatMDToDate("2/29", 2100)
	require.NoError(t, err)
	assert.Equal(t, "2100-02-28", got)

	for _, in := range []string{"2/30", "4/31", "6/31", "9/31", "11/31"} {
		_, err := FormatMDToDate(in, 2028)
		assert.ErrorIs(t, err, apperrors.ErrInvalidDateFormat, in)
	}

	for _, md := range []string{"2/28", "2/29", "4/30", "12/31"} {
		iso, err := FormatMDToDate(md, 2026)
		require.NoError(t, err)
		_, err = ParseDate(iso, time.UTC)
		assert.NoError(t, err, md)
	}
}

func TestMDRoundTrip(t *testing.T) {
	for _, md := range []string{"1/1", "3/1", "7/4", "12/31"} {
		iso, err := FormatMDToDate(md, 2026)
		require.NoError(t, err)
		assert.Equal(t, md, FormatDateToMD(iso))
	}
}

func TestNormalizeDate(t *testing.T) {
	assert.Equal(t, "2026-07-04", NormalizeDate("7/4/2026"))
	assert.Equal(t, "2026-07-04", NormalizeDate(" 2026-07-04 "))
	assert.Equal(t, "", NormalizeDate(""))
	assert.Equal(t, "garbage", NormalizeDate("garbage"))
}

func TestClock(t *testing.T) {
	fixed := time.Date(2026, 2, 13, 9, 0, 0, 0, time.UTC)
	var c Clock = FixedClock(fixed)
	assert.True(t, c.Now().Equal(fixed))
	assert.Equal(t, time.Date(2026, 2, 13, 0, 0, 0, 0, time.UTC), StartOfDay(fixed))

	assert.WithinDuration(t, time.Now(), SystemClock{}.Now(), time.Second)
}
