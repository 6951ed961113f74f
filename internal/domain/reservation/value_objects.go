package reservation

import (
	"strings"
	"time"
)

type Status string

const (
	StatusActive    Status = "aktivna"
	StatusCanceled  Status = "otkazana"
	StatusCompleted Status = "završena"
)

// DefaultStatus is stored when a reservation arrives without one.
const DefaultStatus = StatusActive

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusActive, StatusCanceled, StatusCompleted:
		return true
	default:
		return false
	}
}

func statusOrDefault(s Status) Status {
	if s == "" {
		return DefaultStatus
	}
	return s
}

// Date is a calendar day without time of day or zone.
type Date struct {
	t time.Time
}

const DateLayout = time.DateOnly

func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return Date{}, ErrInvalidDate
	}
	return Date{t: t}, nil
}

// DateOf takes the calendar day of t as seen in t's own location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{t: time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

func (d Date) Time() time.Time        { return d.t }
func (d Date) IsZero() bool           { return d.t.IsZero() }
func (d Date) Before(other Date) bool { return d.t.Before(other.t) }
func (d Date) After(other Date) bool  { return d.t.After(other.t) }
func (d Date) Equal(other Date) bool  { return d.t.Equal(other.t) }

func (d Date) AddDays(n int) Date {
	return Date{t: d.t.AddDate(0, 0, n)}
}

func (d Date) String() string {
	if d.t.IsZero() {
		return ""
	}
	return d.t.Format(DateLayout)
}
