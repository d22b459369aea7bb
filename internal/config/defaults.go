package config

import (
	_ "embed"
)

//go:embed defaults/blockfall.yaml
var defaultBlockfallYAML []byte

// DefaultBlockfallConfig returns the default configuration.
func DefaultBlockfallConfig() BlockfallConfig {
	return BlockfallConfig{
		Board: BoardConfig{
			Rows:    20,
			Columns: 10,
		},
		Timing: TimingConfig{
			DropIntervalMS: 500,
		},
		Pieces: []PieceConfig{
			{Name: "I", Color: "cyan", Shape: []string{"XXXX"}},
			{Name: "O", Color: "blue", Shape: []string{"XX", "XX"}},
			{Name: "S", Color: "orange", Shape: []string{".XX", "XX."}},
			{Name: "Z", Color: "red", Shape: []string{"XX.", ".XX"}},
			{Name: "T", Color: "green", Shape: []string{"XXX", ".X."}},
			{Name: "L", Color: "yellow", Shape: []string{"X..", "XXX"}},
			{Name: "J", Color: "magenta", Shape: []string{"..X", "XXX"}},
		},
		Wallet: WalletConfig{
			StartCoins:       100,
			EarnAmount:       5,
			EarnEverySeconds: 10,
			Skins: []SkinConfig{
				{ID: "classic", Name: "Classic", Glyph: "[]", Cost: 0},
				{ID: "solid", Name: "Solid", Glyph: "██", Cost: 50},
			},
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultBlockfallYAML
}
