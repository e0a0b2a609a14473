package saleclock

import (
	"fmt"
	"strings"
	"time"
)

type Phase string

const (
	PhaseBeforeListing Phase = "before_listing"
	PhaseListing       Phase = "listing"
	PhaseFlashSale     Phase = "flash_sale"
)

// Default window served when the sale config is unavailable.
const (
	DefaultListingStart   = "10:00"
	DefaultFlashSaleStart = "10:30"
)

// Window is a daily sale window: both bounds are venue-local times of day.
type Window struct {
	ListingStart   TimeOfDay
	FlashSaleStart TimeOfDay
}

// ParseWindow parses "HH:MM" (or "HH:MM:SS") bounds and checks the
// listing start precedes the flash-sale start.
func ParseWindow(listingStart, flashSaleStart string) (Window, error) {
	ls, err := ParseTimeOfDay(listingStart)
	if err != nil {
		return Window{}, fmt.Errorf("listing start: %w", err)
	}
	fs, err := ParseTimeOfDay(flashSaleStart)
	if err != nil {
		return Window{}, fmt.Errorf("flash sale start: %w", err)
	}
	if !ls.Before(fs) {
		return Window{}, fmt.Errorf("listing start %s must precede flash sale start %s", listingStart, flashSaleStart)
	}
	return Window{ListingStart: ls, FlashSaleStart: fs}, nil
}

// DefaultWindow is the hardcoded fallback window.
func DefaultWindow() Window {
	w, _ := ParseWindow(DefaultListingStart, DefaultFlashSaleStart)
	return w
}

// PhaseAt derives the sale phase from wall-clock time of day. It is a pure
// re-derivation: the phase holds flash_sale until the calendar day rolls
// over, at which point the same computation yields before_listing again.
func PhaseAt(now time.Time, w Window) Phase {
	tod := timeOfDayOf(now)
	switch {
	case tod.Before(w.ListingStart):
		return PhaseBeforeListing
	case tod.Before(w.FlashSaleStart):
		return PhaseListing
	default:
		return PhaseFlashSale
	}
}

// Countdown returns the time remaining until the next phase transition,
// formatted HH:MM:SS. During flash_sale there is no next transition and
// the result is empty. A target already in the past yields "00:00:00".
func Countdown(now time.Time, w Window) string {
	var target TimeOfDay
	switch PhaseAt(now, w) {
	case PhaseBeforeListing:
		target = w.ListingStart
	case PhaseListing:
		target = w.FlashSaleStart
	default:
		return ""
	}

	remaining := target.At(now).Sub(now)
	if remaining < 0 {
		remaining = 0
	}
	return formatCountdown(remaining)
}

// DayBounds returns the venue-local calendar day [start, end) containing now.
// Quota counting uses this window, not a rolling 24h one.
func DayBounds(now time.Time, loc *time.Location) (time.Time, time.Time) {
	local := now.In(loc)
	y, m, d := local.Date()
	start := time.Date(y, m, d, 0, 0, 0, 0, loc)
	return start, start.AddDate(0, 0, 1)
}

func formatCountdown(d time.Duration) string {
	total := int(d.Seconds())
	return fmt.Sprintf("%02d:%02d:%02d", total/3600, (total%3600)/60, total%60)
}

// TimeOfDay is a wall-clock time within a day, seconds precision.
type TimeOfDay struct {
	Hour, Minute, Second int
}

func ParseTimeOfDay(s string) (TimeOfDay, error) {
	layout := "15:04"
	if strings.Count(s, ":") == 2 {
		layout = "15:04:05"
	}
	t, err := time.Parse(layout, s)
	if err != nil {
		return TimeOfDay{}, fmt.Errorf("invalid time of day %q: %w", s, err)
	}
	return TimeOfDay{Hour: t.Hour(), Minute: t.Minute(), Second: t.Second()}, nil
}

func (t TimeOfDay) Before(other TimeOfDay) bool {
	return t.seconds() < other.seconds()
}

// At anchors the time of day on the calendar date of ref, in ref's location.
func (t TimeOfDay) At(ref time.Time) time.Time {
	y, m, d := ref.Date()
	return time.Date(y, m, d, t.Hour, t.Minute, t.Second, 0, ref.Location())
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

func (t TimeOfDay) seconds() int {
	return t.Hour*3600 + t.Minute*60 + t.Second
}

func timeOfDayOf(t time.Time) TimeOfDay {
	return TimeOfDay{Hour: t.Hour(), Minute: t.Minute(), Second: t.Second()}
}
