package blockfall

import "time"

// DefaultDropInterval is how long a piece hangs before falling one row.
const DefaultDropInterval = 500 * time.Millisecond

// TickResult reports what one driver tick did.
type TickResult struct {
	Dropped bool       // an automatic descent happened
	Drop    DropResult // details of that descent
	Running bool       // false once the session is over
}

// Driver performs automatic descent on a fixed interval. It is fed
// timestamps by its host (a frame callback, a ticker, a test) and never
// blocks or schedules anything itself.
type Driver struct {
	session  *Session
	interval time.Duration
	lastDrop time.Time
	started  bool
}

// NewDriver creates a driver for session. A non-positive interval selects
// DefaultDropInterval.
func NewDriver(session *Session, interval time.Duration) *Driver {
	if interval <= 0 {
		interval = DefaultDropInterval
	}
	return &Driver{session: session, interval: interval}
}

// Interval returns the drop interval.
func (d *Driver) Interval() time.Duration {
	return d.interval
}

// Session returns the driven session.
func (d *Driver) Session() *Session {
	return d.session
}

// Start sets the reference time for the first automatic descent.
func (d *Driver) Start(now time.Time) {
	d.lastDrop = now
	d.started = true
}

// Running returns false once the session is over.
func (d *Driver) Running() bool {
	return !d.session.GameOver()
}

// Tick drops the piece one row if more than the interval has passed since
// the previous automatic descent. The first Tick of an unstarted driver only
// records the time. After game over Tick does nothing.
func (d *Driver) Tick(now time.Time) TickResult {
	if d.session.GameOver() {
		return TickResult{}
	}
	if !d.started {
		d.Start(now)
		return TickResult{Running: true}
	}
	if now.Sub(d.lastDrop) <= d.interval {
		return TickResult{Running: true}
	}

	d.lastDrop = now
	drop := d.session.SoftDrop()
	return TickResult{
		Dropped: true,
		Drop:    drop,
		Running: !d.session.GameOver(),
	}
}

// Restart resets the session and the descent timer.
func (d *Driver) Restart(now time.Time) {
	d.session.Reset()
	d.Start(now)
}
