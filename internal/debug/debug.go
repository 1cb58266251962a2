package debug

import rl "github.com/gen2brain/raylib-go/raylib"

const (
	statsFontSize   = 10
	statsPadding    = 4
	statsLineHeight = statsFontSize + 2
)

// Overlay draws scene statistics in the top-left corner. Hidden by default.
type Overlay struct {
	ShowStats bool
	lines     []string
}

// New returns an Overlay with the stats hidden.
func New() *Overlay {
	return &Overlay{}
}

// SetShowStats sets whether the stats are drawn.
func (o *Overlay) SetShowStats(show bool) {
	o.ShowStats = show
}

// SetStats sets the overlay text. The scene is static so it is set once, not per frame.
func (o *Overlay) SetStats(lines []string) {
	o.lines = lines
}

// Draw renders the stats when enabled. Call after the scene.
func (o *Overlay) Draw() {
	if !o.ShowStats {
		return
	}
	y := int32(statsPadding)
	for _, line := range o.lines {
		rl.DrawText(line, statsPadding, y, statsFontSize, rl.RayWhite)
		y += statsLineHeight
	}
}
