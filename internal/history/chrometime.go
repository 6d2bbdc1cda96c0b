package history

import "time"

// Chromium stores visit times as microseconds since 1601-01-01 UTC.
const (
	// EpochOffsetSeconds is the number of seconds between 1601-01-01 and
	// 1970-01-01.
	EpochOffsetSeconds int64 = 11_644_473_600

	// EpochOffsetMicros is EpochOffsetSeconds in microseconds.
	EpochOffsetMicros int64 = EpochOffsetSeconds * 1_000_000
)

// ToUnixMicros converts a Chromium timestamp to microseconds since the Unix epoch.
func ToUnixMicros(chromium int64) int64 {
	return chromium - EpochOffsetMicros
}

// FromUnixMicros converts microseconds since the Unix epoch to a Chromium timestamp.
func FromUnixMicros(unixMicros int64) int64 {
	return unixMicros + EpochOffsetMicros
}

// CutoffFor returns the Chromium timestamp for days before now, truncated
// to whole seconds.
func CutoffFor(now time.Time, days int) int64 {
	cutoff := now.AddDate(0, 0, -days)
	return FromTime(cutoff)
}

// FromTime converts t, truncated to whole seconds, to a Chromium timestamp.
func FromTime(t time.Time) int64 {
	return (t.Unix() + EpochOffsetSeconds) * 1_000_000
}

// ToTime converts a Chromium timestamp to a local time with second precision.
func ToTime(chromium int64) time.Time {
	return time.Unix(chromium/1_000_000-EpochOffsetSeconds, 0)
}
