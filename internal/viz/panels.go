package viz

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/nkubana0/brainiac/internal/snapshot"
)

// Placeholder lesson content; real lesson state is owned by the external
// environment.
var lessonItems = []string{
	"Topic: Colors and Shapes",
	"Activity: Match the shape",
	"Progress: 60% Complete",
}

func (v *Visualizer) drawText(text string, x, y float32, size float32, col rl.Color) {
	rl.DrawTextEx(v.font, text, rl.NewVector2(x, y), size, 1, col)
}

func (v *Visualizer) drawTextCentered(text string, cx, cy float32, size float32, col rl.Color) {
	dim := rl.MeasureTextEx(v.font, text, size, 1)
	rl.DrawTextEx(v.font, text, rl.NewVector2(cx-dim.X/2, cy-dim.Y/2), size, 1, col)
}

func (v *Visualizer) drawHeader() {
	rl.DrawRectangleRec(v.layout.Header, ColPanel)

	cx := float32(v.layout.Width) / 2
	v.drawTextCentered(windowTitle, cx, 30, fontLarge, ColAccent)
	v.drawTextCentered("For Children with Physical Disabilities", cx, 60, fontSmall, ColTextSecondary)
}

func (v *Visualizer) drawLessonPanel(s snapshot.Snapshot) {
	p := v.layout.Lesson
	rl.DrawRectangleRec(p, ColPanel)

	v.drawText("Current Lesson", p.X+20, p.Y+20, fontMedium, ColAccent)

	difficulty := s.Difficulty()
	v.drawText(DifficultyCaption(difficulty), p.X+20, p.Y+60, fontSmall, DifficultyColor(difficulty))

	y := p.Y + 100
	for _, item := range lessonItems {
		v.drawText(item, p.X+40, y, fontSmall, ColText)
		y += 40
	}

	v.drawText(fmt.Sprintf("Hints Used: %d", s.Hints()), p.X+20, p.Y+280, fontSmall, ColTextSecondary)
	v.drawText(fmt.Sprintf("Time: %d steps", s.TimeOnLesson()), p.X+300, p.Y+280, fontSmall, ColTextSecondary)
}

func (v *Visualizer) drawAACPanel(s snapshot.Snapshot) {
	p := v.layout.AAC
	rl.DrawRectangleRec(p, ColPanel)

	v.drawText("AAC Communication", p.X+20, p.Y+15, fontMedium, ColAccent)

	usage := s.ButtonUsage()
	for i, symbol := range snapshot.AACSymbols {
		btn := v.layout.Buttons[i]
		rl.DrawRectangleRec(btn, ButtonUsageTier(usage[i]).Color())
		rl.DrawRectangleLinesEx(btn, 2, ColText)

		cx := btn.X + btn.Width/2
		v.drawTextCentered(symbol, cx, btn.Y+btn.Height/2-10, fontMedium, ColText)
		v.drawTextCentered(Percent(usage[i]), cx, btn.Y+btn.Height-20, fontTiny, ColTextSecondary)
	}
}

func (v *Visualizer) drawMetricsPanel(s snapshot.Snapshot, info snapshot.StepInfo) {
	p := v.layout.Metrics
	rl.DrawRectangleRec(p, ColPanel)

	v.drawText("Performance Metrics", p.X+20, p.Y+20, fontMedium, ColAccent)

	v.drawMetricBar("Student Accuracy", s.Accuracy(), p.X+20, p.Y+70, ColSuccess)

	engagement := s.Engagement()
	v.drawMetricBar("Engagement", engagement, p.X+20, p.Y+120, EngagementTierOf(engagement).Color())

	v.drawMetricBar("Interface Efficiency", s.Efficiency(), p.X+20, p.Y+170, ColButton)

	if info.Reward != nil {
		col := ColError
		if *info.Reward > 0 {
			col = ColSuccess
		}
		v.drawText("Last Reward: "+SignedReward(*info.Reward), p.X+20, p.Y+230, fontSmall, col)
	}
	if info.TotalReward != nil {
		v.drawText(fmt.Sprintf("Episode Reward: %.1f", *info.TotalReward), p.X+20, p.Y+270, fontSmall, ColText)
	}

	v.drawText("Step: "+StepProgress(s.Step(), v.opts.EpisodeLength), p.X+20, p.Y+310, fontSmall, ColTextSecondary)
}

func (v *Visualizer) drawAgentPanel(action int, showAction bool, episode *int) {
	p := v.layout.Agent
	rl.DrawRectangleRec(p, ColPanel)

	v.drawText("Agent Actions", p.X+20, p.Y+15, fontMedium, ColAccent)

	if episode != nil {
		v.drawText(fmt.Sprintf("Episode: %d", *episode), p.X+20, p.Y+60, fontSmall, ColTextSecondary)
	}

	if showAction && action >= 0 && action < len(v.opts.ActionNames) {
		callout := rl.NewRectangle(p.X+20, p.Y+100, p.Width-50, 80)
		rl.DrawRectangleRec(callout, ColButton)

		v.drawText("Current Action:", p.X+40, p.Y+115, fontSmall, ColAccent)
		v.drawTextCentered(v.opts.ActionNames[action], callout.X+callout.Width/2, p.Y+150, fontMedium, ColText)
	} else {
		v.drawText("Waiting for agent action...", p.X+40, p.Y+115, fontSmall, ColTextSecondary)
	}

	v.drawText("Press ESC or Q to quit", p.X+20, p.Y+240, fontTiny, ColTextSecondary)
}

// drawMetricBar draws a labeled horizontal bar: a background track, a fill
// scaled linearly by value, a border, and the percentage to the right of
// the track. The value is not clamped; out-of-range inputs overflow or
// undershoot the track.
func (v *Visualizer) drawMetricBar(label string, value float64, x, y float32, col rl.Color) {
	v.drawText(label, x, y-25, fontSmall, ColText)

	track := rl.NewRectangle(x, y, barWidth, barHeight)
	rl.DrawRectangleRec(track, ColBarTrack)
	rl.DrawRectangleRec(rl.NewRectangle(x, y, float32(barWidth*value), barHeight), col)
	rl.DrawRectangleLinesEx(track, 2, ColText)

	v.drawTextCentered(Percent(value), x+barWidth+40, y+barHeight/2, fontSmall, ColText)
}
