package utils

import "time"

// CooldownWindow is the minimum interval between two credited completions
// of the same task by the same user.
const CooldownWindow = 24 * time.Hour

func NowUnixSeconds() int64 { return time.Now().Unix() }

// DayStartUnix truncates a unix-second timestamp to UTC midnight. Daily
// earnings buckets are keyed by this value.
func DayStartUnix(ts int64) int64 {
	return time.Unix(ts, 0).UTC().Truncate(24 * time.Hour).Unix()
}

// NextAvailableUnix is the unix second a task unlocks after a completion.
func NextAvailableUnix(completedAt int64) int64 {
	return completedAt + int64(CooldownWindow/time.Second)
}

// Returns zero time if t<=0 to let callers decide how to render.
func FromUnixSeconds(t int64) time.Time {
	if t <= 0 {
		return time.Time{}
	}
	return time.Unix(t, 0).UTC()
}

func FormatRFC3339(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}
