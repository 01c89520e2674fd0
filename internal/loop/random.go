package loop

import (
	"github.com/randomizedcoder/namegen/internal/config"
	"github.com/randomizedcoder/namegen/internal/dice"
	"github.com/randomizedcoder/namegen/internal/picker"
)

// NewDice returns the index source selected by cfg, bound to sides.
func NewDice(cfg *config.Config, sides int) dice.Roller {
	switch {
	case cfg.Dice == config.DiceSequential:
		return dice.NewSequential(sides)
	case cfg.Seed != 0:
		return dice.NewSeeded(sides, cfg.Seed)
	default:
		return dice.NewRandom(sides)
	}
}

// NewPicker returns a picker over names using the dice selected by cfg.
func NewPicker(cfg *config.Config, names []string) *picker.Picker[string] {
	return picker.New(names, NewDice(cfg, len(names)))
}
