package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClock(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"00:00", 0},
		{"07:05", 425},
		{"7:05", 425},
		{"23:59", 1439},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			c, err := ParseClock(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.want, c.Minutes())
		})
	}
}

func TestParseClock_Invalid(t *testing.T) {
	for _, in := range []string{"", "24:00", "12:60", "1230", "ab:cd", "12:5", "-1:30", "123:00"} {
		t.Run(in, func(t *testing.T) {
			_, err := ParseClock(in)
			assert.Error(t, err)
		})
	}
}

func TestClockTime_AddWrapsMidnight(t *testing.T) {
	cases := []struct {
		start string
		delta int
		want  string
	}{
		{"09:00", -90, "07:30"},
		{"00:30", -90, "23:00"},
		{"23:00", 120, "01:00"},
		{"22:30", 90 + 30, "00:30"},
		{"12:00", 1440, "12:00"},
		{"12:00", -2880, "12:00"},
	}
	for _, tc := range cases {
		t.Run(tc.start, func(t *testing.T) {
			got := MustParseClock(tc.start).Add(tc.delta)
			assert.Equal(t, tc.want, got.String())
		})
	}
}

func TestClockTime_StringZeroPadded(t *testing.T) {
	assert.Equal(t, "05:07", ClockTime(307).String())
	assert.Equal(t, "00:00", ClockTime(0).String())
}

func TestRoundHalfUp(t *testing.T) {
	assert.Equal(t, 3, RoundHalfUp(2.5))
	assert.Equal(t, -2, RoundHalfUp(-2.5))
	assert.Equal(t, 2, RoundHalfUp(2.49))
	assert.Equal(t, 0, RoundHalfUp(-0.4))
}

func TestRoundTenth(t *testing.T) {
	assert.Equal(t, 3.3, RoundTenth(3.25))
	assert.Equal(t, 4.6, RoundTenth(4.6400001))
}
