package blockfall

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/blockfall/internal/core"
)

// RandomSource picks catalog indices. *rand.Rand satisfies it.
type RandomSource interface {
	// Intn returns a uniformly distributed int in [0, n).
	Intn(n int) int
}

// DropResult describes what a single downward step did.
type DropResult struct {
	Moved        bool // the piece moved down one row
	Locked       bool // the piece could not move and was committed to the grid
	LinesCleared int  // rows removed by the lock
	GameOver     bool // the session ended during this step
}

// Session owns one game: the grid, the active piece and the game-over flag.
// It is not safe for concurrent use; callers serialize input and ticks.
type Session struct {
	id       string
	grid     *Grid
	catalog  *Catalog
	rng      RandomSource
	piece    *ActivePiece
	gameOver bool
	logger   *log.Logger
}

// SessionOption configures a Session.
type SessionOption func(*Session)

// WithLogger sets the logger used for lifecycle events.
func WithLogger(l *log.Logger) SessionOption {
	return func(s *Session) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithID sets the identifier attached to every log line.
func WithID(id string) SessionOption {
	return func(s *Session) {
		s.id = id
	}
}

// NewSession creates a session with an empty rows×cols grid and spawns the
// first piece.
func NewSession(rows, cols int, catalog *Catalog, rng RandomSource, opts ...SessionOption) *Session {
	s := &Session{
		grid:    NewGrid(rows, cols),
		catalog: catalog,
		rng:     rng,
		logger:  log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.id != "" {
		s.logger = s.logger.With("session", s.id)
	}
	s.Spawn()
	return s
}

// ID returns the session identifier (may be empty).
func (s *Session) ID() string {
	return s.id
}

// Grid returns the live grid.
func (s *Session) Grid() *Grid {
	return s.grid
}

// Catalog returns the catalog pieces are drawn from.
func (s *Session) Catalog() *Catalog {
	return s.catalog
}

// GameOver returns true once the session has ended.
func (s *Session) GameOver() bool {
	return s.gameOver
}

// Piece returns a copy of the active piece. ok is false when there is none.
func (s *Session) Piece() (piece ActivePiece, ok bool) {
	if s.piece == nil {
		return ActivePiece{}, false
	}
	return s.piece.Clone(), true
}

// Spawn replaces the active piece with a random catalog piece centered at the
// top of the grid. If that position is already blocked the session ends
// instead. Returns true if a piece was installed.
func (s *Session) Spawn() bool {
	if s.gameOver {
		return false
	}

	p := s.catalog.At(s.rng.Intn(s.catalog.Size()))
	next := &ActivePiece{
		Name:  p.Name,
		Shape: p.Shape,
		Color: p.Color,
		X:     spawnColumn(s.grid.Columns(), p.Shape.Width()),
		Y:     0,
	}

	if Collides(next.Shape, next.X, next.Y, s.grid) {
		s.logger.Info("spawn blocked", "piece", next.Name, "x", next.X)
		s.DeclareGameOver()
		return false
	}

	s.piece = next
	s.logger.Debug("spawned", "piece", next.Name, "x", next.X)
	return true
}

// MoveLeft shifts the piece one column left. Returns false if rejected.
func (s *Session) MoveLeft() bool {
	return s.shift(-1)
}

// MoveRight shifts the piece one column right. Returns false if rejected.
func (s *Session) MoveRight() bool {
	return s.shift(1)
}

func (s *Session) shift(dx int) bool {
	if s.gameOver || s.piece == nil {
		return false
	}
	if Collides(s.piece.Shape, s.piece.X+dx, s.piece.Y, s.grid) {
		return false
	}
	s.piece.X += dx
	return true
}

// Rotate turns the piece a quarter in place. There are no wall kicks: if the
// rotated shape does not fit at the current position it is discarded.
// Returns false if rejected.
func (s *Session) Rotate() bool {
	if s.gameOver || s.piece == nil {
		return false
	}
	rotated := Rotate(s.piece.Shape)
	if Collides(rotated, s.piece.X, s.piece.Y, s.grid) {
		return false
	}
	s.piece.Shape = rotated
	return true
}

// SoftDrop moves the piece down one row, or locks it if the row below is
// blocked. Locking writes the piece into the grid, clears full rows and spawns
// the next piece.
func (s *Session) SoftDrop() DropResult {
	if s.gameOver || s.piece == nil {
		return DropResult{}
	}
	if !Collides(s.piece.Shape, s.piece.X, s.piece.Y+1, s.grid) {
		s.piece.Y++
		return DropResult{Moved: true}
	}
	return s.lock()
}

func (s *Session) lock() DropResult {
	p := s.piece
	s.piece = nil
	cells := p.Cells()

	for _, c := range cells {
		if c.Y < 0 {
			s.logger.Info("locked above the top row", "piece", p.Name, "y", p.Y)
			s.DeclareGameOver()
			return DropResult{Locked: true, GameOver: true}
		}
	}

	for _, c := range cells {
		s.grid.SetCell(c.Y, c.X, p.Color)
	}
	cleared := s.grid.ClearFullRows()
	if cleared > 0 {
		s.logger.Info("lines cleared", "count", cleared)
	}
	s.logger.Debug("locked", "piece", p.Name, "x", p.X, "y", p.Y)

	spawned := s.Spawn()
	return DropResult{Locked: true, LinesCleared: cleared, GameOver: !spawned}
}

// DeclareGameOver ends the session: the flag is set, the grid is emptied and
// the active piece removed. Only Reset brings the session back.
func (s *Session) DeclareGameOver() {
	s.gameOver = true
	s.piece = nil
	s.grid.Reset()
	s.logger.Info("game over")
}

// Reset starts the session over on an empty grid with a fresh piece.
func (s *Session) Reset() {
	s.gameOver = false
	s.piece = nil
	s.grid.Reset()
	s.logger.Info("session reset")
	s.Spawn()
}

// BoardSnapshot is a read-only copy of a session for renderers.
type BoardSnapshot struct {
	Rows     int
	Columns  int
	Cells    [][]core.Color
	Piece    *ActivePiece
	GameOver bool
}

// Snapshot copies the current session state.
func (s *Session) Snapshot() BoardSnapshot {
	snap := BoardSnapshot{
		Rows:     s.grid.Rows(),
		Columns:  s.grid.Columns(),
		Cells:    s.grid.Cells(),
		GameOver: s.gameOver,
	}
	if s.piece != nil {
		p := s.piece.Clone()
		snap.Piece = &p
	}
	return snap
}
