package blockfall

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var t0 = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

func pieceY(t *testing.T, s *Session) int {
	t.Helper()
	p, ok := s.Piece()
	require.True(t, ok)
	return p.Y
}

func TestDriverDefaultInterval(t *testing.T) {
	s := NewSession(20, 10, DefaultCatalog(), always(pieceO))
	assert.Equal(t, DefaultDropInterval, NewDriver(s, 0).Interval())
	assert.Equal(t, 100*time.Millisecond, NewDriver(s, 100*time.Millisecond).Interval())
}

func TestDriverDropsAfterInterval(t *testing.T) {
	s := NewSession(20, 10, DefaultCatalog(), always(pieceO))
	d := NewDriver(s, 500*time.Millisecond)

	// First tick only records the reference time
	res := d.Tick(t0)
	assert.False(t, res.Dropped)
	assert.True(t, res.Running)

	res = d.Tick(t0.Add(500 * time.Millisecond))
	assert.False(t, res.Dropped, "exactly one interval is not enough")
	assert.Equal(t, 0, pieceY(t, s))

	res = d.Tick(t0.Add(501 * time.Millisecond))
	assert.True(t, res.Dropped)
	assert.True(t, res.Drop.Moved)
	assert.Equal(t, 1, pieceY(t, s))

	// The timer restarts from the last drop
	assert.False(t, d.Tick(t0.Add(900*time.Millisecond)).Dropped)
	assert.True(t, d.Tick(t0.Add(1002*time.Millisecond)).Dropped)
	assert.Equal(t, 2, pieceY(t, s))
}

func TestDriverOneDropPerTick(t *testing.T) {
	s := NewSession(20, 10, DefaultCatalog(), always(pieceO))
	d := NewDriver(s, 500*time.Millisecond)
	d.Start(t0)

	assert.True(t, d.Tick(t0.Add(5*time.Second)).Dropped)
	assert.Equal(t, 1, pieceY(t, s))
}

func TestDriverStopsOnGameOver(t *testing.T) {
	s := NewSession(2, 4, DefaultCatalog(), always(pieceO))
	d := NewDriver(s, 500*time.Millisecond)
	d.Start(t0)

	res := d.Tick(t0.Add(time.Second))
	require.True(t, res.Dropped)
	assert.True(t, res.Drop.Locked)
	assert.True(t, res.Drop.GameOver)
	assert.False(t, res.Running)
	assert.False(t, d.Running())

	res = d.Tick(t0.Add(10 * time.Second))
	assert.Equal(t, TickResult{}, res)
}

func TestDriverRestart(t *testing.T) {
	s := NewSession(20, 10, DefaultCatalog(), always(pieceO))
	d := NewDriver(s, 500*time.Millisecond)
	s.DeclareGameOver()
	require.False(t, d.Running())

	restartAt := t0.Add(time.Minute)
	d.Restart(restartAt)

	assert.True(t, d.Running())
	assert.Same(t, s, d.Session())
	assert.Equal(t, 0, pieceY(t, s))
	assert.False(t, d.Tick(restartAt.Add(500*time.Millisecond)).Dropped)
	assert.True(t, d.Tick(restartAt.Add(501*time.Millisecond)).Dropped)
}
