package saleclock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func at(h, m, s int) time.Time {
	return time.Date(2024, 6, 15, h, m, s, 0, time.UTC)
}

func TestPhaseAt(t *testing.T) {
	window := DefaultWindow()

	tests := []struct {
		now  time.Time
		want Phase
	}{
		{at(0, 0, 0), PhaseBeforeListing},
		{at(9, 59, 59), PhaseBeforeListing},
		{at(10, 0, 0), PhaseListing},
		{at(10, 29, 59), PhaseListing},
		{at(10, 30, 0), PhaseFlashSale},
		{at(15, 0, 0), PhaseFlashSale},
		{at(23, 59, 59), PhaseFlashSale},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, PhaseAt(tt.now, window), "at %s", tt.now.Format("15:04:05"))
	}
}

func TestCountdown(t *testing.T) {
	window := DefaultWindow()

	assert.Equal(t, "02:30:00", Countdown(at(7, 30, 0), window))
	assert.Equal(t, "00:00:01", Countdown(at(10, 29, 59), window))
	assert.Equal(t, "", Countdown(at(10, 30, 0), window), "no countdown during the flash sale")
}

func TestCountdown_ZeroAtBoundary(t *testing.T) {
	window := DefaultWindow()
	// Exactly at the listing start the next target is the flash-sale start.
	assert.Equal(t, "00:30:00", Countdown(at(10, 0, 0), window))
}

func TestParseWindow_RejectsInvertedBounds(t *testing.T) {
	_, err := ParseWindow("10:30", "10:00")
	require.Error(t, err)

	_, err = ParseWindow("10:00", "10:00")
	require.Error(t, err)
}

func TestParseWindow_RejectsMalformed(t *testing.T) {
	_, err := ParseWindow("25:00", "10:30")
	require.Error(t, err)

	_, err = ParseWindow("10:00", "abc")
	require.Error(t, err)
}

func TestParseWindow_AcceptsSecondsPrecision(t *testing.T) {
	window, err := ParseWindow("10:00:30", "10:30")
	require.NoError(t, err)
	assert.Equal(t, 30, window.ListingStart.Second)
}

func TestDayBounds(t *testing.T) {
	loc, err := time.LoadLocation("Asia/Shanghai")
	require.NoError(t, err)

	// 18:00 UTC is already the next day in Shanghai (+8).
	now := time.Date(2024, 6, 15, 18, 0, 0, 0, time.UTC)
	start, end := DayBounds(now, loc)

	assert.Equal(t, time.Date(2024, 6, 16, 0, 0, 0, 0, loc).Unix(), start.Unix())
	assert.Equal(t, time.Date(2024, 6, 17, 0, 0, 0, 0, loc).Unix(), end.Unix())
	assert.Equal(t, 24*time.Hour, end.Sub(start))
}

func TestTimeOfDayString(t *testing.T) {
	tod, err := ParseTimeOfDay("09:05")
	require.NoError(t, err)
	assert.Equal(t, "09:05", tod.String())
}
