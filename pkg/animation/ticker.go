// Package animation drives time-based work for the pull engine on the
// host's frame loop.
//
// Nothing in this package starts goroutines. Tickers register themselves in
// a process-wide set and are advanced by [StepTickers], which the host calls
// once per frame from the same loop that delivers pointer events. This keeps
// the engine single-threaded: animation updates, deferred callbacks and
// gesture handling never interleave.
//
// # Components
//
//   - [Ticker]: frame callback receiving the elapsed time since start.
//   - [After]: one-shot callback fired on the first frame after a delay.
//   - [AnimationController]: interpolates a value between two bounds over a
//     duration with an easing curve.
//   - [ScrollAnimator]: animates an integer scroll offset; the default
//     smooth-return backend of the pull engine.
//
// # Frame loop
//
//	for range frames {
//	    animation.StepTickers()
//	    render()
//	}
package animation

import (
	"sync"
	"time"
)

var (
	tickerMu      sync.Mutex
	activeTickers = make(map[*Ticker]struct{})
)

// Ticker calls a callback on each frame while active.
type Ticker struct {
	callback func(elapsed time.Duration)
	isActive bool
	start    time.Time
}

// NewTicker creates a new ticker with the given callback.
func NewTicker(callback func(elapsed time.Duration)) *Ticker {
	return &Ticker{
		callback: callback,
	}
}

// Start activates the ticker. Elapsed time is measured from this call.
func (t *Ticker) Start() {
	if t.isActive {
		return
	}
	t.isActive = true
	t.start = Now()
	tickerMu.Lock()
	activeTickers[t] = struct{}{}
	tickerMu.Unlock()
}

// Stop deactivates the ticker.
func (t *Ticker) Stop() {
	if !t.isActive {
		return
	}
	t.isActive = false
	tickerMu.Lock()
	delete(activeTickers, t)
	tickerMu.Unlock()
}

// IsActive returns whether the ticker is currently running.
func (t *Ticker) IsActive() bool {
	return t.isActive
}

// Elapsed returns the time since the ticker started.
func (t *Ticker) Elapsed() time.Duration {
	if !t.isActive {
		return 0
	}
	return Now().Sub(t.start)
}

// After runs fn on the first frame at least delay after the call.
// The returned ticker can be stopped to cancel the callback.
func After(delay time.Duration, fn func()) *Ticker {
	var t *Ticker
	t = NewTicker(func(elapsed time.Duration) {
		if elapsed < delay {
			return
		}
		t.Stop()
		if fn != nil {
			fn()
		}
	})
	t.Start()
	return t
}

// StepTickers advances all active tickers.
// This should be called once per frame from the host's event loop.
func StepTickers() {
	tickerMu.Lock()
	if len(activeTickers) == 0 {
		tickerMu.Unlock()
		return
	}
	// Copy so callbacks can start and stop tickers without holding the lock.
	tickers := make([]*Ticker, 0, len(activeTickers))
	for ticker := range activeTickers {
		tickers = append(tickers, ticker)
	}
	tickerMu.Unlock()

	now := Now()
	for _, ticker := range tickers {
		if ticker.isActive && ticker.callback != nil {
			ticker.callback(now.Sub(ticker.start))
		}
	}
}

// HasActiveTickers returns true if any tickers are active.
func HasActiveTickers() bool {
	tickerMu.Lock()
	defer tickerMu.Unlock()
	return len(activeTickers) > 0
}

// StopAllTickers deactivates every active ticker. Test harnesses call it
// during cleanup so animations never leak between tests.
func StopAllTickers() {
	tickerMu.Lock()
	tickers := make([]*Ticker, 0, len(activeTickers))
	for ticker := range activeTickers {
		tickers = append(tickers, ticker)
	}
	tickerMu.Unlock()
	for _, ticker := range tickers {
		ticker.Stop()
	}
}
