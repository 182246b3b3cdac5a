package game

import "time"

type PeriodicTickerChannelCreator interface {
	Create(duration time.Duration) <-chan time.Time
}

type TimeTickerCreator struct{}

func (TimeTickerCreator) Create(duration time.Duration) <-chan time.Time {
	return time.NewTicker(duration).C
}
