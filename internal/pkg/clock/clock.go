package clock

import "time"

// DateLayout is the calendar-date wire format used for stays (YYYY-MM-DD).
const DateLayout = "2006-01-02"

type Clock interface {
	Now() time.Time
}

type RealClock struct{}

func NewRealClock() Clock {
	return &RealClock{}
}

func (c *RealClock) Now() time.Time {
	return time.Now()
}

// Today returns the current UTC calendar date in DateLayout.
func Today(c Clock) string {
	return c.Now().UTC().Format(DateLayout)
}

type MockClock struct {
	currentTime time.Time
}

func NewMockClock(t time.Time) *MockClock {
	return &MockClock{currentTime: t}
}

// NewMockClockOnDate pins the clock to midday UTC of a YYYY-MM-DD date.
func NewMockClockOnDate(date string) *MockClock {
	t, err := time.Parse(DateLayout, date)
	if err != nil {
		panic("clock: invalid date " + date)
	}
	return &MockClock{currentTime: t.Add(12 * time.Hour)}
}

func (c *MockClock) Now() time.Time {
	return c.currentTime
}

func (c *MockClock) Set(t time.Time) {
	c.currentTime = t
}

func (c *MockClock) Add(d time.Duration) {
	c.currentTime = c.currentTime.Add(d)
}
