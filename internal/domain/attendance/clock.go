package attendance

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

var ErrInvalidClock = errors.New("time must be in HH:MM format")

// Clock is a time of day with minute precision.
type Clock struct {
	Hour   int
	Minute int
}

func NewClock(hour, minute int) Clock {
	return Clock{Hour: hour, Minute: minute}
}

// ParseClock accepts HH:MM or HH:MM:SS. Seconds are dropped.
func ParseClock(value string) (Clock, error) {
	parts := strings.Split(strings.TrimSpace(value), ":")
	if len(parts) < 2 || len(parts) > 3 {
		return Clock{}, ErrInvalidClock
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return Clock{}, ErrInvalidClock
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return Clock{}, ErrInvalidClock
	}
	if len(parts) == 3 {
		second, err := strconv.Atoi(parts[2])
		if err != nil || second < 0 || second > 59 {
			return Clock{}, ErrInvalidClock
		}
	}
	return Clock{Hour: hour, Minute: minute}, nil
}

func ClockFromDuration(d time.Duration) Clock {
	minutes := int(d / time.Minute)
	return Clock{Hour: minutes / 60 % 24, Minute: minutes % 60}
}

func (c Clock) SinceMidnight() time.Duration {
	return time.Duration(c.Hour)*time.Hour + time.Duration(c.Minute)*time.Minute
}

func (c Clock) Before(other Clock) bool {
	return c.SinceMidnight() < other.SinceMidnight()
}

func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute)
}

func (c Clock) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(c.String())), nil
}

func (c *Clock) UnmarshalJSON(data []byte) error {
	raw, err := strconv.Unquote(string(data))
	if err != nil {
		return ErrInvalidClock
	}
	parsed, err := ParseClock(raw)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
