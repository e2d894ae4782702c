package filters

import "time"

// ClampTime returns a filter constraining times to [earliest, latest].
func ClampTime(earliest, latest time.Time) func(time.Time) time.Time {
	return func(t time.Time) time.Time {
		if t.Before(earliest) {
			return earliest
		}
		if t.After(latest) {
			return latest
		}
		return t
	}
}

// NotBefore returns a filter that raises times before the bound to the bound.
func NotBefore(bound time.Time) func(time.Time) time.Time {
	return func(t time.Time) time.Time {
		if t.Before(bound) {
			return bound
		}
		return t
	}
}

// NotAfter returns a filter that lowers times after the bound to the bound.
func NotAfter(bound time.Time) func(time.Time) time.Time {
	return func(t time.Time) time.Time {
		if t.After(bound) {
			return bound
		}
		return t
	}
}

// TruncateTime returns a filter rounding times down to a multiple of d.
func TruncateTime(d time.Duration) func(time.Time) time.Time {
	return func(t time.Time) time.Time {
		return t.Truncate(d)
	}
}

// InUTC converts a time to UTC.
func InUTC(t time.Time) time.Time {
	return t.UTC()
}

// DateOnly strips the time-of-day component, keeping the location.
func DateOnly(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}
