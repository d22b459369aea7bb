package blockfall

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/blockfall/internal/config"
	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/registry"
	"github.com/vovakirdan/blockfall/internal/wallet"
)

// GameID is the registry identifier.
const GameID = "blockfall"

// noticeDuration is how long a shop message stays on screen, in ticks.
const noticeDuration = 120

// Package-level settings used by New. The CLI sets them before creating the
// game through the registry.
var (
	gameConfig = config.DefaultBlockfallConfig()
	gameLogger = log.New(io.Discard)
)

// SetConfig sets the configuration used by games created afterwards.
func SetConfig(cfg config.BlockfallConfig) {
	gameConfig = cfg
}

// SetLogger sets the logger used by games created afterwards.
func SetLogger(l *log.Logger) {
	if l != nil {
		gameLogger = l
	}
}

// Game adapts a Session to the platform: it maps actions onto the engine,
// runs the drop Driver on a virtual clock derived from the tick count and
// owns the coin wallet.
type Game struct {
	cfg     config.BlockfallConfig
	catalog *Catalog
	logger  *log.Logger

	rng     *rand.Rand
	session *Session
	driver  *Driver
	wallet  *wallet.Wallet

	tick     uint64
	tickRate int
	elapsed  time.Duration // unpaused play time, drives the Driver clock

	screenW int
	screenH int

	paused   bool
	tooSmall bool

	notice      string
	noticeTicks int
}

func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
}

// New creates a game using the package-level config and logger. A config
// whose pieces cannot be built falls back to the default catalog.
func New() *Game {
	g, err := NewWithConfig(gameConfig, gameLogger)
	if err != nil {
		gameLogger.Warn("invalid piece catalog, using defaults", "err", err)
		g, _ = NewWithConfig(config.DefaultBlockfallConfig(), gameLogger)
	}
	return g
}

// NewWithConfig creates a game from an explicit config.
func NewWithConfig(cfg config.BlockfallConfig, logger *log.Logger) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	catalog, err := CatalogFromConfig(cfg.Pieces)
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Game{
		cfg:     cfg,
		catalog: catalog,
		logger:  logger,
		wallet:  wallet.New(wallet.OptionsFromConfig(cfg.Wallet)),
	}, nil
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Blockfall"
}

// Reset starts a new session. The wallet survives resets.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tick = 0
	g.elapsed = 0
	g.tickRate = cfg.TickRate
	if g.tickRate <= 0 {
		g.tickRate = core.DefaultConfig().TickRate
	}
	g.paused = false
	g.notice = ""
	g.noticeTicks = 0
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.checkScreenSize()

	opts := []SessionOption{WithLogger(g.logger)}
	if id, err := uuid.NewRandomFromReader(g.rng); err == nil {
		opts = append(opts, WithID(id.String()))
	}
	g.session = NewSession(g.cfg.Board.Rows, g.cfg.Board.Columns, g.catalog, g.rng, opts...)
	g.driver = NewDriver(g.session, g.cfg.DropInterval())
	g.driver.Start(g.now())
	g.logger.Debug("game reset", "seed", cfg.Seed, "session", g.session.ID())
}

// Resize adapts to a new terminal size without restarting the session.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.checkScreenSize()
}

func (g *Game) checkScreenSize() {
	minW, minH := g.layoutSize()
	g.tooSmall = g.screenW < minW || g.screenH < minH
}

// frame returns the play time covered by one tick.
func (g *Game) frame() time.Duration {
	return time.Second / time.Duration(g.tickRate)
}

// now is the Driver clock: a fixed epoch plus unpaused play time.
func (g *Game) now() time.Time {
	return time.Unix(0, 0).Add(g.elapsed)
}

// Step advances the game by one tick, applying this frame's actions in order.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++
	if g.noticeTicks > 0 {
		g.noticeTicks--
	}

	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if g.session.GameOver() {
		if in.Has(core.ActionRestart) {
			g.paused = false
			g.driver.Restart(g.now())
		}
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	for _, a := range in.Actions {
		switch a {
		case core.ActionLeft:
			g.session.MoveLeft()
		case core.ActionRight:
			g.session.MoveRight()
		case core.ActionRotate:
			g.session.Rotate()
		case core.ActionSoftDrop:
			g.session.SoftDrop()
		case core.ActionBuySkin:
			g.buySkin()
		}
	}

	if !g.session.GameOver() {
		g.elapsed += g.frame()
		if earned := g.wallet.Accrue(g.frame()); earned > 0 {
			g.logger.Debug("coins earned", "amount", earned, "coins", g.wallet.Coins())
		}
		g.driver.Tick(g.now())
	}

	return core.StepResult{State: g.State()}
}

func (g *Game) buySkin() {
	skin, err := g.wallet.BuyNext()
	switch {
	case err == nil:
		g.setNotice(fmt.Sprintf("Bought %s skin!", skin.Name))
		g.logger.Info("skin bought", "skin", skin.ID, "coins", g.wallet.Coins())
	case errors.Is(err, wallet.ErrInsufficientCoins):
		g.setNotice(fmt.Sprintf("Need %d coins", skin.Cost))
	case errors.Is(err, wallet.ErrAlreadyOwned):
		g.setNotice("All skins owned")
	default:
		g.logger.Error("skin purchase failed", "err", err)
	}
}

func (g *Game) setNotice(msg string) {
	g.notice = msg
	g.noticeTicks = noticeDuration
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.session == nil {
		return core.GameState{}
	}
	return core.GameState{
		GameOver: g.session.GameOver(),
		Paused:   g.paused || g.tooSmall,
	}
}

// Session returns the running session.
func (g *Game) Session() *Session {
	return g.session
}

// Wallet returns the coin wallet.
func (g *Game) Wallet() *wallet.Wallet {
	return g.wallet
}

// Snapshot captures the game for determinism testing and headless output.
type Snapshot struct {
	Tick    uint64
	Board   BoardSnapshot
	Coins   int
	Skin    string
	Paused  bool
	Session string
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:    g.tick,
		Board:   g.session.Snapshot(),
		Coins:   g.wallet.Coins(),
		Skin:    g.wallet.Active().ID,
		Paused:  g.paused,
		Session: g.session.ID(),
	}
}
