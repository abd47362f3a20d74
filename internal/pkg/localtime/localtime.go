// Package localtime handles the zone-less ISO date-time form ("2020-06-14T10:00:00") used by
// the API and the seed files. Zone-less values are read as UTC.
package localtime

import (
	"fmt"
	"strings"
	"time"
)

const Layout = "2006-01-02T15:04:05"

// Parse accepts the zone-less layout or RFC3339. RFC3339 input is converted to UTC.
func Parse(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.ParseInLocation(Layout, s, time.UTC); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date-time %q: expected %s or RFC3339", s, Layout)
	}
	return t.UTC(), nil
}

func Format(t time.Time) string {
	return t.UTC().Format(Layout)
}

// DateTime is a JSON-friendly wrapper reading and writing the zone-less layout.
type DateTime time.Time

func (d DateTime) Time() time.Time {
	return time.Time(d)
}

func (d DateTime) MarshalJSON() ([]byte, error) {
	return []byte(`"` + Format(time.Time(d)) + `"`), nil
}

func (d *DateTime) UnmarshalJSON(b []byte) error {
	s := string(b)
	if s == "null" {
		return nil
	}
	t, err := Parse(strings.Trim(s, `"`))
	if err != nil {
		return err
	}
	*d = DateTime(t)
	return nil
}
