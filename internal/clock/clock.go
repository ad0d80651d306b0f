package clock

import (
	"time"

	"github.com/Hshshshsh454/Highway-delight/internal/models"
)

// Clock allows injecting "today" into catalog and booking logic.
type Clock interface {
	Now() time.Time
	Today() models.Date
}

type systemClock struct {
	loc *time.Location
}

// NewSystem returns a clock backed by time.Now, reading civil dates in loc.
func NewSystem(loc *time.Location) Clock {
	if loc == nil {
		loc = time.UTC
	}
	return systemClock{loc: loc}
}

func (c systemClock) Now() time.Time {
	return time.Now().In(c.loc)
}

func (c systemClock) Today() models.Date {
	return models.DateOf(c.Now())
}

type fixedClock struct {
	now time.Time
}

// NewFixed returns a clock that always returns the same instant (useful for tests).
func NewFixed(t time.Time) Clock {
	return fixedClock{now: t}
}

// NewFixedDate pins the clock to midnight UTC of d.
func NewFixedDate(d models.Date) Clock {
	return fixedClock{now: d.Time()}
}

func (f fixedClock) Now() time.Time {
	return f.now
}

func (f fixedClock) Today() models.Date {
	return models.DateOf(f.now)
}
