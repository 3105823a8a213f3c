package clock

import "time"

// UTCClock отдаёт текущее время в UTC с точностью до микросекунд,
// так время совпадает с тем, что вернёт timestamptz.
type UTCClock struct{}

func New() *UTCClock {
	return &UTCClock{}
}

func (c *UTCClock) Now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}
