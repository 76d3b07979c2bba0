package t2048

import (
	"github.com/vovakirdan/tui48/internal/core"
	"github.com/vovakirdan/tui48/internal/engine"
)

// tilePalette is indexed by tile exponent (2 = 1, 4 = 2, ...).
var tilePalette = [...]core.Color{
	core.ColorDefault,
	core.ColorWhite,         // 2
	core.ColorBrightWhite,   // 4
	core.ColorYellow,        // 8
	core.ColorOrange,        // 16
	core.ColorRed,           // 32
	core.ColorBrightRed,     // 64
	core.ColorBrightYellow,  // 128
	core.ColorGreen,         // 256
	core.ColorBrightGreen,   // 512
	core.ColorCyan,          // 1024
	core.ColorBrightCyan,    // 2048
	core.ColorBlue,          // 4096
	core.ColorBrightBlue,    // 8192
	core.ColorMagenta,       // 16384
	core.ColorBrightMagenta, // 32768 and up
}

// TileColor returns the display color for a tile value.
func TileColor(v engine.Tile) core.Color {
	if v.IsEmpty() {
		return core.ColorDefault
	}
	exp := v.Exponent()
	if exp >= len(tilePalette) {
		return tilePalette[len(tilePalette)-1]
	}
	return tilePalette[exp]
}
