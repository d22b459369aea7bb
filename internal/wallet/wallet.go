// Package wallet tracks the cosmetic coin balance and the block skins bought
// with it. Coins are earned for time spent playing; they are not a score.
package wallet

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/blockfall/internal/config"
)

var (
	// ErrInsufficientCoins is returned when a purchase costs more than the balance.
	ErrInsufficientCoins = errors.New("insufficient coins")
	// ErrUnknownSkin is returned for skin ids that are not on offer.
	ErrUnknownSkin = errors.New("unknown skin")
	// ErrAlreadyOwned is returned when buying a skin twice, or when nothing is left to buy.
	ErrAlreadyOwned = errors.New("skin already owned")
	// ErrNotOwned is returned when selecting a skin that was never bought.
	ErrNotOwned = errors.New("skin not owned")
)

// Skin is a purchasable block style. Glyph is drawn once per board cell.
type Skin struct {
	ID    string
	Name  string
	Glyph string
	Cost  int
}

// Options configures a Wallet.
type Options struct {
	StartCoins int
	EarnAmount int
	EarnEvery  time.Duration
	Skins      []Skin // the first skin is owned and active from the start
}

// OptionsFromConfig converts the wallet section of the game config.
func OptionsFromConfig(cfg config.WalletConfig) Options {
	skins := make([]Skin, len(cfg.Skins))
	for i, s := range cfg.Skins {
		skins[i] = Skin{ID: s.ID, Name: s.Name, Glyph: s.Glyph, Cost: s.Cost}
	}
	return Options{
		StartCoins: cfg.StartCoins,
		EarnAmount: cfg.EarnAmount,
		EarnEvery:  cfg.EarnEvery(),
		Skins:      skins,
	}
}

// Wallet holds coins and owned skins.
type Wallet struct {
	coins      int
	earnAmount int
	earnEvery  time.Duration
	played     time.Duration // play time not yet paid out
	skins      []Skin
	owned      map[string]bool
	active     int
}

// New creates a wallet. Panics if opts has no skins.
func New(opts Options) *Wallet {
	if len(opts.Skins) == 0 {
		panic("wallet: at least one skin is required")
	}
	w := &Wallet{
		coins:      opts.StartCoins,
		earnAmount: opts.EarnAmount,
		earnEvery:  opts.EarnEvery,
		skins:      append([]Skin(nil), opts.Skins...),
		owned:      make(map[string]bool, len(opts.Skins)),
	}
	w.owned[w.skins[0].ID] = true
	return w
}

// Coins returns the current balance.
func (w *Wallet) Coins() int {
	return w.coins
}

// Earn adds n coins. Non-positive amounts are ignored.
func (w *Wallet) Earn(n int) {
	if n > 0 {
		w.coins += n
	}
}

// Accrue records d of play time and pays EarnAmount for every full EarnEvery
// period completed so far. Returns the coins paid by this call.
func (w *Wallet) Accrue(d time.Duration) int {
	if w.earnAmount <= 0 || w.earnEvery <= 0 || d <= 0 {
		return 0
	}
	w.played += d
	periods := int(w.played / w.earnEvery)
	if periods == 0 {
		return 0
	}
	w.played -= time.Duration(periods) * w.earnEvery
	earned := periods * w.earnAmount
	w.coins += earned
	return earned
}

// Buy purchases the skin with the given id and makes it active.
func (w *Wallet) Buy(id string) error {
	i := w.index(id)
	if i < 0 {
		return fmt.Errorf("%w: %q", ErrUnknownSkin, id)
	}
	return w.buy(i)
}

// BuyNext purchases the first skin not yet owned and makes it active.
func (w *Wallet) BuyNext() (Skin, error) {
	for i, s := range w.skins {
		if !w.owned[s.ID] {
			return s, w.buy(i)
		}
	}
	return Skin{}, fmt.Errorf("%w: every skin is owned", ErrAlreadyOwned)
}

func (w *Wallet) buy(i int) error {
	s := w.skins[i]
	if w.owned[s.ID] {
		return fmt.Errorf("%w: %q", ErrAlreadyOwned, s.ID)
	}
	if w.coins < s.Cost {
		return fmt.Errorf("%w: %q costs %d, have %d", ErrInsufficientCoins, s.ID, s.Cost, w.coins)
	}
	w.coins -= s.Cost
	w.owned[s.ID] = true
	w.active = i
	return nil
}

// Select makes an owned skin active.
func (w *Wallet) Select(id string) error {
	i := w.index(id)
	if i < 0 {
		return fmt.Errorf("%w: %q", ErrUnknownSkin, id)
	}
	if !w.owned[id] {
		return fmt.Errorf("%w: %q", ErrNotOwned, id)
	}
	w.active = i
	return nil
}

// Active returns the skin used for drawing blocks.
func (w *Wallet) Active() Skin {
	return w.skins[w.active]
}

// Owns reports whether the skin has been bought.
func (w *Wallet) Owns(id string) bool {
	return w.owned[id]
}

// Skins returns every skin on offer, in order.
func (w *Wallet) Skins() []Skin {
	return append([]Skin(nil), w.skins...)
}

func (w *Wallet) index(id string) int {
	for i, s := range w.skins {
		if s.ID == id {
			return i
		}
	}
	return -1
}
