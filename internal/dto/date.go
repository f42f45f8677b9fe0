package dto

import (
	"fmt"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// Date is a calendar date serialized as "YYYY-MM-DD" on the wire.
type Date struct {
	time.Time
}

func NewDate(t time.Time) Date {
	return Date{Time: t.Truncate(24 * time.Hour)}
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + d.Format(dateLayout) + `"`), nil
}

func (d *Date) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "null" || s == "" {
		d.Time = time.Time{}
		return nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return fmt.Errorf("invalid date %q, expected YYYY-MM-DD", s)
	}
	d.Time = t
	return nil
}

func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Format(dateLayout)
}

// DatePtr converts a nullable time to a wire date pointer.
func DatePtr(t *time.Time) *Date {
	if t == nil {
		return nil
	}
	d := Date{Time: *t}
	return &d
}

// TimePtr converts a wire date pointer back to a nullable time.
func TimePtr(d *Date) *time.Time {
	if d == nil {
		return nil
	}
	t := d.Time
	return &t
}
