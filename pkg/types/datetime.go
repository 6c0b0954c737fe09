// Package types shared wire-level types.
package types

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// Wire formats for reservation timestamps. Seconds are optional on input,
// always present on output.
const (
	DateTimeLayout        = "2006-01-02 15:04:05"
	DateTimeLayoutMinutes = "2006-01-02 15:04"
)

// DateTime is a reservation timestamp with second precision, exchanged as
// "YYYY-MM-DD HH:MM[:SS]" text. Sub-second components are dropped on parse
// so equality comparisons stay exact.
type DateTime struct {
	t time.Time
}

// NewDateTime builds a DateTime from a time.Time, truncated to seconds.
func NewDateTime(t time.Time) DateTime {
	return DateTime{t: t.Truncate(time.Second)}
}

// ParseDateTime parses "YYYY-MM-DD HH:MM:SS" or "YYYY-MM-DD HH:MM".
func ParseDateTime(s string) (DateTime, error) {
	for _, layout := range []string{DateTimeLayout, DateTimeLayoutMinutes} {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return DateTime{t: t}, nil
		}
	}
	return DateTime{}, fmt.Errorf("types: invalid datetime %q, expected YYYY-MM-DD HH:MM[:SS]", s)
}

// Time returns the underlying time.Time.
func (d DateTime) Time() time.Time {
	return d.t
}

// IsZero reports whether the value is unset.
func (d DateTime) IsZero() bool {
	return d.t.IsZero()
}

// Equal compares two DateTime values at second precision.
func (d DateTime) Equal(other DateTime) bool {
	return d.t.Equal(other.t)
}

// String formats the value as "YYYY-MM-DD HH:MM:SS".
func (d DateTime) String() string {
	return d.t.Format(DateTimeLayout)
}

// MarshalJSON implements json.Marshaler.
func (d DateTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *DateTime) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseDateTime(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Value implements driver.Valuer.
func (d DateTime) Value() (driver.Value, error) {
	return d.t, nil
}

// Scan implements sql.Scanner.
func (d *DateTime) Scan(src interface{}) error {
	switch v := src.(type) {
	case time.Time:
		d.t = v.Truncate(time.Second)
		return nil
	case []byte:
		parsed, err := ParseDateTime(string(v))
		if err != nil {
			return err
		}
		*d = parsed
		return nil
	case string:
		parsed, err := ParseDateTime(v)
		if err != nil {
			return err
		}
		*d = parsed
		return nil
	default:
		return fmt.Errorf("types: cannot scan %T into DateTime", src)
	}
}
