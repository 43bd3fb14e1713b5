package backend

import (
	"context"
	"sync"
	"time"
)

// DefaultInterval matches the input poll timeout of the event loop.
const DefaultInterval = 200 * time.Millisecond

// Tick is one heartbeat of the ticker.
type Tick struct {
	Seq int
	At  time.Time
}

// Ticker publishes heartbeats at a fixed interval so the event loop
// re-evaluates state without waiting for input.
type Ticker struct {
	interval time.Duration

	ctx    context.Context
	cancel context.CancelFunc

	ticks chan Tick
	wg    sync.WaitGroup
}

// NewTicker starts a ticker. Non-positive intervals use DefaultInterval.
func NewTicker(interval time.Duration) *Ticker {
	if interval <= 0 {
		interval = DefaultInterval
	}
	ctx, cancel := context.WithCancel(context.Background())
	t := &Ticker{
		interval: interval,
		ctx:      ctx,
		cancel:   cancel,
		ticks:    make(chan Tick, 1),
	}

	t.wg.Add(1)
	go t.run()

	go func() {
		t.wg.Wait()
		close(t.ticks)
	}()

	return t
}

// Ticks returns the heartbeat channel. It is closed once the ticker stops.
func (t *Ticker) Ticks() <-chan Tick {
	return t.ticks
}

// Interval returns the heartbeat period.
func (t *Ticker) Interval() time.Duration {
	return t.interval
}

// Stop cancels the ticker.
func (t *Ticker) Stop() {
	t.cancel()
}

// Wait blocks until the ticker goroutine has exited and the channel is
// closed.
func (t *Ticker) Wait() {
	t.wg.Wait()
}

func (t *Ticker) run() {
	defer t.wg.Done()

	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()

	seq := 0
	for {
		select {
		case <-t.ctx.Done():
			return
		case now := <-ticker.C:
			seq++
			select {
			case <-t.ctx.Done():
				return
			case t.ticks <- Tick{Seq: seq, At: now}:
			}
		}
	}
}
