package model

import (
	"encoding/json"
	"time"
)

const (
	dateTimeLayout = "2006-01-02 15:04:05"
	dateLayout     = "2006-01-02"
)

// DateTime is a wall-clock timestamp serialized as "yyyy-MM-dd HH:mm:ss".
// The zero value serializes as null.
type DateTime time.Time

// NewDateTime wraps t.
func NewDateTime(t time.Time) DateTime { return DateTime(t) }

// Time returns the underlying time.
func (d DateTime) Time() time.Time { return time.Time(d) }

// MarshalJSON implements json.Marshaler.
func (d DateTime) MarshalJSON() ([]byte, error) {
	t := time.Time(d)
	if t.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(t.Format(dateTimeLayout))
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *DateTime) UnmarshalJSON(b []byte) error {
	t, err := parseLayout(b, dateTimeLayout)
	if err != nil {
		return err
	}
	*d = DateTime(t)
	return nil
}

// Date is a calendar date serialized as "yyyy-MM-dd".
type Date time.Time

// Time returns the underlying time.
func (d Date) Time() time.Time { return time.Time(d) }

// MarshalJSON implements json.Marshaler.
func (d Date) MarshalJSON() ([]byte, error) {
	t := time.Time(d)
	if t.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(t.Format(dateLayout))
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *Date) UnmarshalJSON(b []byte) error {
	t, err := parseLayout(b, dateLayout)
	if err != nil {
		return err
	}
	*d = Date(t)
	return nil
}

func parseLayout(b []byte, layout string) (time.Time, error) {
	if string(b) == "null" {
		return time.Time{}, nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return time.Time{}, err
	}
	return time.ParseInLocation(layout, s, time.Local)
}
