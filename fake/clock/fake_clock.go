package clock

import (
	"sync"
	"time"

	"github.com/adammck/legsim/clock"
	"github.com/sirupsen/logrus"
)

var log = logrus.WithFields(logrus.Fields{
	"pkg": "fake/clock",
})

// FakeClock hands out tickers which fire as fast as they're read, each tick
// exactly one interval after the last. The wall clock is never consulted.
type FakeClock struct {
	start time.Time
}

func New(start time.Time) *FakeClock {
	return &FakeClock{start}
}

func (fc *FakeClock) NewTicker(d time.Duration) clock.Ticker {
	ft := &FakeTicker{
		c:    make(chan time.Time),
		stop: make(chan struct{}),
		done: make(chan struct{}),
	}

	go ft.run(fc.start, d)
	return ft
}

type FakeTicker struct {
	c    chan time.Time
	stop chan struct{}
	done chan struct{}
	once sync.Once
}

func (ft *FakeTicker) run(now time.Time, d time.Duration) {
	defer close(ft.done)

	for {
		now = now.Add(d)

		select {
		case ft.c <- now:
		case <-ft.stop:
			log.Debugf("stopped at %s", now)
			return
		}
	}
}

func (ft *FakeTicker) C() <-chan time.Time {
	return ft.c
}

// Stop stops the ticker, and waits for it to finish. It's safe to call more
// than once.
func (ft *FakeTicker) Stop() {
	ft.once.Do(func() {
		close(ft.stop)
	})

	<-ft.done
}
