package viz

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/nkubana0/brainiac/internal/snapshot"
)

const (
	headerHeight = 80
	panelMargin  = 50
	columnGap    = 30
	rowGap       = 20

	buttonWidth  = 180
	buttonHeight = 120
	buttonMargin = 20

	barWidth  = 400
	barHeight = 30
)

// Layout holds the fixed panel geometry for a window size. Panels are
// anchored to the window edges so that the default 1200×800 reproduces the
// reference positions exactly.
type Layout struct {
	Width, Height int

	Header  rl.Rectangle
	Lesson  rl.Rectangle
	AAC     rl.Rectangle
	Metrics rl.Rectangle
	Agent   rl.Rectangle

	Buttons [snapshot.NumAACButtons]rl.Rectangle
}

// NewLayout computes panel rectangles and the 2×3 AAC button grid for the
// given window size.
func NewLayout(width, height int) Layout {
	w := float32(width)
	h := float32(height)

	topY := float32(headerHeight + rowGap)
	bottomY := h - 330
	topH := bottomY - topY - rowGap
	bottomH := h - bottomY - panelMargin

	rightX := w - 520
	rightW := w - rightX - panelMargin
	leftW := rightX - panelMargin - columnGap

	l := Layout{
		Width:   width,
		Height:  height,
		Header:  rl.NewRectangle(0, 0, w, headerHeight),
		Lesson:  rl.NewRectangle(panelMargin, topY, leftW, topH),
		AAC:     rl.NewRectangle(panelMargin, bottomY, leftW, bottomH),
		Metrics: rl.NewRectangle(rightX, topY, rightW, topH),
		Agent:   rl.NewRectangle(rightX, bottomY, rightW, bottomH),
	}

	startX := float32(panelMargin)
	startY := bottomY + 30
	for i := range l.Buttons {
		row := i / 3
		col := i % 3
		l.Buttons[i] = rl.NewRectangle(
			startX+float32(col)*(buttonWidth+buttonMargin),
			startY+float32(row)*(buttonHeight+buttonMargin),
			buttonWidth,
			buttonHeight,
		)
	}

	return l
}
