package booking

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateCatalogSevenDays(t *testing.T) {
	now := time.Date(2026, time.March, 10, 15, 30, 0, 0, time.UTC)
	dates := DateCatalog(now)

	require.Len(t, dates, 7)
	assert.Equal(t, "Today", dates[0].Label)
	assert.Equal(t, "Tomorrow", dates[1].Label)
	for i := 2; i < len(dates); i++ {
		assert.Equal(t, dates[i].Date.Format("Mon, Jan 2"), dates[i].Label)
	}
	for i, opt := range dates {
		want := time.Date(2026, time.March, 10+i, 0, 0, 0, 0, time.UTC)
		assert.True(t, opt.Date.Equal(want), "date %d should be midnight %s", i, want)
	}
}

func TestDateLabelAcrossMonthBoundary(t *testing.T) {
	now := time.Date(2026, time.January, 31, 9, 0, 0, 0, time.UTC)
	dates := DateCatalog(now)
	assert.Equal(t, "Tomorrow", dates[1].Label)
	assert.Equal(t, "Mon, Feb 2", dates[2].Label)
}

func TestDateLabelAcrossDaylightSavingTransition(t *testing.T) {
	// US clocks spring forward on 2026-03-08, making that calendar day 23
	// wall-clock hours long.
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	now := time.Date(2026, time.March, 7, 12, 0, 0, 0, loc)
	dates := DateCatalog(now)
	assert.Equal(t, "Today", dates[0].Label)
	assert.Equal(t, "Tomorrow", dates[1].Label)
	assert.Equal(t, "Mon, Mar 9", dates[2].Label, "the day after the transition keeps its weekday label")
	assert.Equal(t, "Tue, Mar 10", dates[3].Label)
}

func TestTimeCatalogHalfHourGrid(t *testing.T) {
	times := TimeCatalog()

	require.NotEmpty(t, times)
	assert.Equal(t, "9:00", times[0])
	assert.Equal(t, "18:00", times[len(times)-1])
	// 9:00 through 17:30 on the half hour, plus the 18:00 closer.
	assert.Len(t, times, 19)

	prev := -1
	for _, slot := range times {
		hour, minute, err := parseTimeSlot(slot)
		require.NoError(t, err, "slot %q", slot)
		assert.GreaterOrEqual(t, hour, 9)
		assert.LessOrEqual(t, hour, 18)
		cur := hour*60 + minute
		assert.Greater(t, cur, prev, "catalog must be strictly increasing at %q", slot)
		prev = cur
	}
	assert.NotContains(t, times, "18:30")
	assert.NotContains(t, times, "09:00", "hours are not zero padded")
}

func TestIntersectTimesPreservesCatalogOrder(t *testing.T) {
	catalog := TimeCatalog()
	available := []string{"17:30", "9:00", "14:00", "6:00"}

	got := IntersectTimes(catalog, available)
	assert.Equal(t, []string{"9:00", "14:00", "17:30"}, got)

	assert.Empty(t, IntersectTimes(catalog, nil))
}

func TestOnGridMatchesCatalogExactly(t *testing.T) {
	for _, slot := range TimeCatalog() {
		assert.True(t, onGrid(slot), "catalog entry %q must be on the grid", slot)
	}
	for _, slot := range []string{"8:00", "8:30", "18:30", "19:00", "23:30", "09:00", "9:0", "0:00"} {
		assert.False(t, onGrid(slot), "%q is never offered by the catalog", slot)
	}
}

func TestParseTimeSlot(t *testing.T) {
	cases := []struct {
		slot   string
		hour   int
		minute int
		ok     bool
	}{
		{"9:00", 9, 0, true},
		{"9:30", 9, 30, true},
		{"18:00", 18, 0, true},
		{"9:15", 0, 0, false},
		{"25:00", 0, 0, false},
		{"noon", 0, 0, false},
		{"", 0, 0, false},
	}
	for _, tc := range cases {
		t.Run(fmt.Sprintf("slot_%s", tc.slot), func(t *testing.T) {
			hour, minute, err := parseTimeSlot(tc.slot)
			if !tc.ok {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.hour, hour)
			assert.Equal(t, tc.minute, minute)
		})
	}
}
