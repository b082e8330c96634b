package viz

import (
	"errors"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/nkubana0/brainiac/internal/snapshot"
)

const windowTitle = "Adaptive E-Learning & AAC Platform"

// Font sizes, large for accessibility.
const (
	fontLarge  = 48
	fontMedium = 36
	fontSmall  = 28
	fontTiny   = 20
)

const (
	DefaultWidth         = 1200
	DefaultHeight        = 800
	DefaultFPS           = 4
	DefaultEpisodeLength = 200
)

// Options configures a Visualizer. Zero values fall back to the defaults
// above; a nil ActionNames uses the agent's assumed action table.
type Options struct {
	Width         int
	Height        int
	FPS           int
	EpisodeLength int
	ActionNames   []string
}

func (o Options) withDefaults() Options {
	if o.Width <= 0 {
		o.Width = DefaultWidth
	}
	if o.Height <= 0 {
		o.Height = DefaultHeight
	}
	if o.FPS <= 0 {
		o.FPS = DefaultFPS
	}
	if o.EpisodeLength <= 0 {
		o.EpisodeLength = DefaultEpisodeLength
	}
	if o.ActionNames == nil {
		o.ActionNames = snapshot.DefaultActionNames()
	}
	return o
}

// Visualizer owns the dashboard window. It is single-threaded: Render and
// Close must be called from the goroutine that called New.
type Visualizer struct {
	opts    Options
	layout  Layout
	font    rl.Font
	ownFont bool
	frame   int
	display actionDisplay
}

// New opens the dashboard window, loads the font, sets the frame pacing
// target, and precomputes the panel layout. The returned Visualizer must
// be released with Close.
func New(opts Options) (*Visualizer, error) {
	opts = opts.withDefaults()

	rl.InitWindow(int32(opts.Width), int32(opts.Height), windowTitle)
	if !rl.IsWindowReady() {
		return nil, errors.New("viz: failed to open window")
	}
	rl.SetTargetFPS(int32(opts.FPS))
	// ESC is handled in Render rather than by raylib's default exit key.
	rl.SetExitKey(0)

	v := &Visualizer{
		opts:   opts,
		layout: NewLayout(opts.Width, opts.Height),
	}
	v.font, v.ownFont = loadFont()
	return v, nil
}

func loadFont() (rl.Font, bool) {
	font := rl.LoadFontEx("/usr/share/fonts/liberation/LiberationSans-Regular.ttf", fontLarge, nil, 0)
	if font.Texture.ID == 0 {
		return rl.GetFontDefault(), false
	}
	rl.SetTextureFilter(font.Texture, rl.FilterBilinear)
	return font, true
}

// Render draws one frame of the dashboard for the given snapshot and
// per-step context, presents it, and blocks until the frame interval has
// elapsed. It returns false once the user has requested exit via the
// window close button, ESC, or Q.
func (v *Visualizer) Render(s snapshot.Snapshot, info snapshot.StepInfo) bool {
	action, showAction := v.display.Observe(info.Action, 2*v.opts.FPS)

	rl.BeginDrawing()
	rl.ClearBackground(ColBackground)

	v.drawLessonPanel(s)
	v.drawAACPanel(s)
	v.drawMetricsPanel(s, info)
	v.drawAgentPanel(action, showAction, info.Episode)
	v.drawHeader()

	// EndDrawing presents the frame, paces to the target FPS, and polls
	// pending input events.
	rl.EndDrawing()
	v.frame++

	if rl.WindowShouldClose() || rl.IsKeyPressed(rl.KeyQ) || rl.IsKeyPressed(rl.KeyEscape) {
		return false
	}
	return true
}

// Frame returns the number of frames rendered so far.
func (v *Visualizer) Frame() int { return v.frame }

// Close releases the font and window. Expected to be called exactly once.
func (v *Visualizer) Close() {
	if v.ownFont {
		rl.UnloadFont(v.font)
	}
	rl.CloseWindow()
}
