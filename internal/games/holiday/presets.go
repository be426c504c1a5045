package holiday

import (
	"github.com/vovakirdan/snowfall-arcade/internal/config"
	"github.com/vovakirdan/snowfall-arcade/internal/core"
)

// Preset holds the presentation of one mini-game. Gameplay values live in
// the YAML config under the same ID.
type Preset struct {
	ID          string
	Title       string
	PlayerGlyph rune
	PlayerColor core.Color
	Variants    [2]core.Color // Collectible colors by variant
}

// Sleigh is the free-roaming sleigh ride.
var Sleigh = Preset{
	ID:          config.SleighID,
	Title:       "Santa's Sleigh Ride",
	PlayerGlyph: '◘',
	PlayerColor: core.ColorBrightRed,
	Variants:    [2]core.Color{core.ColorBrightCyan, core.ColorBrightRed},
}

// Gifts is the lane-based gift grab with a tree and pickup chimes.
var Gifts = Preset{
	ID:          config.GiftsID,
	Title:       "Gift Grab",
	PlayerGlyph: '@',
	PlayerColor: core.ColorBrightWhite,
	Variants:    [2]core.Color{core.ColorBrightRed, core.ColorCyan},
}
