package builtin

import (
	"strconv"
	"time"

	"github.com/aalemi-dev/convert-lab/converter"
)

// Text converts between strings and the basic scalar types. It implements
// converter.Provider.
//
// Parse failures are returned as converter.Fail errors, so they reach the
// caller with their own message rather than as a generic failure.
type Text struct {
	// Location is used by ParseTime for layouts without a zone.
	// Nil means UTC.
	Location *time.Location
}

// NewText creates a Text parsing zone-less times in loc.
func NewText(loc *time.Location) *Text {
	return &Text{Location: loc}
}

// ConverterDescriptors implements converter.Provider.
func (t *Text) ConverterDescriptors() []converter.Descriptor {
	return []converter.Descriptor{
		converter.Func("ParseInt", t.ParseInt),
		converter.Func("FormatInt", t.FormatInt),
		converter.Func("ParseFloat", t.ParseFloat),
		converter.Func("FormatFloat", t.FormatFloat),
		converter.Func("ParseBool", t.ParseBool),
		converter.Func("FormatBool", t.FormatBool),
		converter.Func("ParseDuration", t.ParseDuration),
		converter.Func("FormatDuration", t.FormatDuration),
		converter.Func("ParseTime", t.ParseTime),
		converter.Func("FormatTime", t.FormatTime),
	}
}

// ParseInt parses a base-10 int64.
func (t *Text) ParseInt(s string) (int64, error) {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, converter.Fail("int64 conversion failed", err)
	}
	return n, nil
}

// FormatInt formats n in base 10.
func (t *Text) FormatInt(n int64) string {
	return strconv.FormatInt(n, 10)
}

// ParseFloat parses a float64.
func (t *Text) ParseFloat(s string) (float64, error) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, converter.Fail("float64 conversion failed", err)
	}
	return f, nil
}

// FormatFloat formats f with the fewest digits that round-trip.
func (t *Text) FormatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// ParseBool accepts the spellings of strconv.ParseBool.
func (t *Text) ParseBool(s string) (bool, error) {
	b, err := strconv.ParseBool(s)
	if err != nil {
		return false, converter.Fail("bool conversion failed", err)
	}
	return b, nil
}

// FormatBool formats b as "true" or "false".
func (t *Text) FormatBool(b bool) string {
	return strconv.FormatBool(b)
}

// ParseDuration parses a Go duration such as "1h30m".
func (t *Text) ParseDuration(s string) (time.Duration, error) {
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, converter.Fail("duration conversion failed", err)
	}
	return d, nil
}

// FormatDuration formats d as time.Duration.String does.
func (t *Text) FormatDuration(d time.Duration) string {
	return d.String()
}

// ParseTime parses s with layout, which is passed as the extra conversion
// argument. An empty layout means time.RFC3339.
//
//	ts, err := converter.To[time.Time](registry, "2024-05-01", time.DateOnly)
func (t *Text) ParseTime(s string, layout string) (time.Time, error) {
	if layout == "" {
		layout = time.RFC3339
	}
	loc := t.Location
	if loc == nil {
		loc = time.UTC
	}

	ts, err := time.ParseInLocation(layout, s, loc)
	if err != nil {
		return time.Time{}, converter.Fail("time conversion failed", err)
	}
	return ts, nil
}

// FormatTime formats ts with layout, time.RFC3339 when empty.
func (t *Text) FormatTime(ts time.Time, layout string) string {
	if layout == "" {
		layout = time.RFC3339
	}
	return ts.Format(layout)
}
