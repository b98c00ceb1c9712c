// Package wire holds encoding helpers shared by the ACL translators.
package wire

import "time"

// Layout is the zone-free timestamp format of the remote API. Fractional
// seconds are emitted only when present.
const Layout = "2006-01-02T15:04:05.999999999"

// layouts the remote API is known to emit. Timestamps without a zone are
// UTC.
var layouts = []string{
	time.RFC3339Nano,
	Layout,
	"2006-01-02T15:04:05.999999999Z0700",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02",
}

// ParseTime parses a remote timestamp. Unparseable or empty input yields the
// zero time.
func ParseTime(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	for _, layout := range layouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t
		}
	}
	return time.Time{}
}

// ParseTimePtr parses an optional remote timestamp. Null, empty and
// unparseable input yield nil.
func ParseTimePtr(s *string) *time.Time {
	if s == nil {
		return nil
	}
	t := ParseTime(*s)
	if t.IsZero() {
		return nil
	}
	return &t
}

// Unparsed reports whether s holds a timestamp ParseTimePtr cannot read.
// Such a date is lost on the next full-model update.
func Unparsed(s *string) bool {
	return s != nil && *s != "" && ParseTime(*s).IsZero()
}

// FormatTimePtr renders an optional timestamp in Layout, in UTC and at full
// precision, so a parsed server value is sent back unchanged. Nil is sent as
// JSON null.
func FormatTimePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.UTC().Format(Layout)
	return &s
}
