package usecase

import (
	"fmt"
	"strconv"
	"time"

	"buildcard/internal/domain/ports"
)

const (
	oneDay   = 24 * time.Hour
	oneMonth = 30 * oneDay
	oneYear  = 365 * oneDay
)

// FormatTimeSpan renders a duration the way Jenkins does, e.g. "3 hr 12 min".
// The smaller unit is only shown while the larger one is below 10.
func FormatTimeSpan(d time.Duration) string {
	if d < 0 {
		d = 0
	}

	years := d / oneYear
	d %= oneYear
	months := d / oneMonth
	d %= oneMonth
	days := d / oneDay
	d %= oneDay
	hours := d / time.Hour
	d %= time.Hour
	minutes := d / time.Minute
	d %= time.Minute
	seconds := d / time.Second
	d %= time.Second
	millis := d / time.Millisecond

	switch {
	case years > 0:
		return pairSpan(int64(years), "yr", int64(months), "mo")
	case months > 0:
		return pairSpan(int64(months), "mo", int64(days), dayLabel(int64(days)))
	case days > 0:
		return pairSpan(int64(days), dayLabel(int64(days)), int64(hours), "hr")
	case hours > 0:
		return pairSpan(int64(hours), "hr", int64(minutes), "min")
	case minutes > 0:
		return pairSpan(int64(minutes), "min", int64(seconds), "sec")
	case seconds >= 10:
		return fmt.Sprintf("%d sec", int64(seconds))
	case seconds >= 1:
		return formatSeconds(float64(seconds) + float64(millis/100)/10)
	case millis >= 100:
		return formatSeconds(float64(millis/10) / 100)
	default:
		return fmt.Sprintf("%d ms", int64(millis))
	}
}

func pairSpan(big int64, bigLabel string, small int64, smallLabel string) string {
	text := fmt.Sprintf("%d %s", big, bigLabel)
	if big < 10 {
		text += fmt.Sprintf(" %d %s", small, smallLabel)
	}
	return text
}

func dayLabel(n int64) string {
	if n == 1 {
		return "day"
	}
	return "days"
}

func formatSeconds(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + " sec"
}

// DurationString is the elapsed time of a run. Runs still in progress are
// measured against now.
func DurationString(run ports.Run, now time.Time) string {
	if run.Building() {
		return FormatTimeSpan(now.Sub(run.StartTime())) + " and counting"
	}
	return FormatTimeSpan(run.Duration())
}
