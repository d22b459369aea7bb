// Package config provides YAML-based configuration loading for the game:
// board size, drop timing, the piece catalog and the coin wallet.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/blockfall/internal/core"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// BlockfallConfig contains all configuration for the game.
type BlockfallConfig struct {
	Board  BoardConfig   `yaml:"board"`
	Timing TimingConfig  `yaml:"timing"`
	Pieces []PieceConfig `yaml:"pieces"`
	Wallet WalletConfig  `yaml:"wallet"`
}

// BoardConfig defines the playfield size.
type BoardConfig struct {
	Rows    int `yaml:"rows"`
	Columns int `yaml:"columns"`
}

// TimingConfig defines automatic descent timing.
type TimingConfig struct {
	DropIntervalMS int `yaml:"drop_interval_ms"`
}

// PieceConfig defines one catalog piece.
// Shape rows use 'X' or '#' for occupied cells and '.' for empty ones.
type PieceConfig struct {
	Name  string   `yaml:"name"`
	Color string   `yaml:"color"`
	Shape []string `yaml:"shape"`
}

// WalletConfig defines the cosmetic coin economy.
type WalletConfig struct {
	StartCoins       int          `yaml:"start_coins"`
	EarnAmount       int          `yaml:"earn_amount"`
	EarnEverySeconds int          `yaml:"earn_every_seconds"`
	Skins            []SkinConfig `yaml:"skins"`
}

// SkinConfig defines a block skin. Glyph is drawn once per board cell and
// must be two columns wide.
type SkinConfig struct {
	ID    string `yaml:"id"`
	Name  string `yaml:"name"`
	Glyph string `yaml:"glyph"`
	Cost  int    `yaml:"cost"`
}

// DropInterval returns the automatic descent interval.
func (c BlockfallConfig) DropInterval() time.Duration {
	return time.Duration(c.Timing.DropIntervalMS) * time.Millisecond
}

// EarnEvery returns how much play time earns one coin payout.
func (w WalletConfig) EarnEvery() time.Duration {
	return time.Duration(w.EarnEverySeconds) * time.Second
}

// Validate checks the config and returns every problem found, each wrapping
// ErrInvalidConfig.
func (c BlockfallConfig) Validate() error {
	var errs []error
	fail := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: %s", ErrInvalidConfig, fmt.Sprintf(format, args...)))
	}

	if c.Board.Rows <= 0 {
		fail("board.rows must be positive, got %d", c.Board.Rows)
	}
	if c.Board.Columns <= 0 {
		fail("board.columns must be positive, got %d", c.Board.Columns)
	}
	if c.Timing.DropIntervalMS <= 0 {
		fail("timing.drop_interval_ms must be positive, got %d", c.Timing.DropIntervalMS)
	}

	if len(c.Pieces) == 0 {
		fail("pieces must not be empty")
	}
	for i, p := range c.Pieces {
		if err := p.validate(c.Board); err != nil {
			fail("pieces[%d] (%s): %v", i, p.Name, err)
		}
	}

	if err := c.Wallet.validate(); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

func (p PieceConfig) validate(board BoardConfig) error {
	color, ok := core.ParseColor(p.Color)
	if !ok {
		return fmt.Errorf("unknown color %q", p.Color)
	}
	if color == core.ColorDefault {
		return fmt.Errorf("color %q is reserved for empty cells", p.Color)
	}
	if len(p.Shape) == 0 {
		return fmt.Errorf("shape has no rows")
	}

	width := len(p.Shape[0])
	occupied := 0
	for y, row := range p.Shape {
		if len(row) != width {
			return fmt.Errorf("shape row %d has width %d, expected %d", y, len(row), width)
		}
		for _, ch := range row {
			switch ch {
			case 'X', 'x', '#':
				occupied++
			case '.', ' ':
			default:
				return fmt.Errorf("shape row %d has invalid character %q", y, ch)
			}
		}
	}
	if occupied == 0 {
		return fmt.Errorf("shape has no occupied cells")
	}
	if board.Columns > 0 && width > board.Columns {
		return fmt.Errorf("shape width %d exceeds board width %d", width, board.Columns)
	}
	return nil
}

func (w WalletConfig) validate() error {
	var errs []error
	fail := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: %s", ErrInvalidConfig, fmt.Sprintf(format, args...)))
	}

	if w.StartCoins < 0 {
		fail("wallet.start_coins must not be negative")
	}
	if w.EarnAmount < 0 {
		fail("wallet.earn_amount must not be negative")
	}
	if w.EarnAmount > 0 && w.EarnEverySeconds <= 0 {
		fail("wallet.earn_every_seconds must be positive when earn_amount is set")
	}
	if len(w.Skins) == 0 {
		fail("wallet.skins must not be empty")
	}

	seen := make(map[string]bool, len(w.Skins))
	for i, s := range w.Skins {
		if s.ID == "" {
			fail("wallet.skins[%d] has no id", i)
		}
		if seen[s.ID] {
			fail("wallet.skins[%d] duplicates id %q", i, s.ID)
		}
		seen[s.ID] = true
		if len([]rune(s.Glyph)) != 2 {
			fail("wallet.skins[%d] glyph %q must be two characters", i, s.Glyph)
		}
		if s.Cost < 0 {
			fail("wallet.skins[%d] cost must not be negative", i)
		}
	}
	return errors.Join(errs...)
}
