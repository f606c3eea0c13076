package term

import (
	"github.com/charmbracelet/lipgloss"
	lru "github.com/hashicorp/golang-lru"

	"github.com/arloliu/hoverline/internal/hash"
)

// DefaultPalette is the series color rotation.
var DefaultPalette = []lipgloss.Color{
	lipgloss.Color("39"),  // blue
	lipgloss.Color("208"), // orange
	lipgloss.Color("76"),  // green
	lipgloss.Color("170"), // magenta
	lipgloss.Color("220"), // yellow
	lipgloss.Color("45"),  // cyan
	lipgloss.Color("203"), // red
	lipgloss.Color("141"), // purple
}

// slotCache maps series names to their hash so colors stay stable across
// renders without rehashing.
var slotCache, _ = lru.New(128)

// paletteSlot returns the palette index of a series name.
func paletteSlot(name string, paletteLen int) int {
	if paletteLen <= 0 {
		return 0
	}
	if sum, ok := slotCache.Get(name); ok {
		return int(sum.(uint64) % uint64(paletteLen))
	}

	sum := hash.ID(name)
	slotCache.Add(name, sum)

	return int(sum % uint64(paletteLen))
}
