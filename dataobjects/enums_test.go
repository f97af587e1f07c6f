package dataobjects

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWeekdayFromInt(t *testing.T) {
	cases := []struct {
		day      int
		expected Weekday
	}{
		{1, WeekdayMonday},
		{2, WeekdayTuesday},
		{3, WeekdayWednesday},
		{4, WeekdayThursday},
		{5, WeekdayFriday},
		{6, WeekdaySaturday},
		{7, WeekdaySunday},
		// out of range falls back to Monday
		{0, WeekdayMonday},
		{8, WeekdayMonday},
		{-3, WeekdayMonday},
	}
	for _, c := range cases {
		assert.Equal(t, c.expected, WeekdayFromInt(c.day), "day %d", c.day)
	}
}

func TestWeekdayFromTime(t *testing.T) {
	// 2024-01-01 was a Monday
	monday := time.Date(2024, time.January, 1, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, WeekdayMonday, WeekdayFromTime(monday))
	assert.Equal(t, WeekdaySaturday, WeekdayFromTime(monday.AddDate(0, 0, 5)))
	assert.Equal(t, WeekdaySunday, WeekdayFromTime(monday.AddDate(0, 0, 6)))
	assert.Equal(t, WeekdayMonday, WeekdayFromTime(monday.AddDate(0, 0, 7)))
}
