package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/nkubana0/brainiac/internal/snapshot"
	"github.com/nkubana0/brainiac/internal/viz"
)

func (m Model) View() string {
	left := lipgloss.JoinVertical(lipgloss.Left, m.lessonView(), m.aacView())
	right := lipgloss.JoinVertical(lipgloss.Left, m.metricsView(), m.agentView())
	body := lipgloss.JoinHorizontal(lipgloss.Top, left, " ", right)

	var b strings.Builder
	b.WriteString(headerStyle.Render("ADAPTIVE E-LEARNING & AAC PLATFORM") + "\n")
	b.WriteString(body)
	b.WriteString(helpStyle.Render("\nq/esc: quit"))
	return b.String()
}

func (m Model) lessonView() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Current Lesson") + "\n\n")

	difficulty := m.snap.Difficulty()
	diffStyle := warningStyle
	if viz.InComfortBand(difficulty) {
		diffStyle = successStyle
	}
	b.WriteString(diffStyle.Render(viz.DifficultyCaption(difficulty)) + "\n\n")

	b.WriteString(valueStyle.Render("Topic: Colors and Shapes") + "\n")
	b.WriteString(valueStyle.Render("Activity: Match the shape") + "\n")
	b.WriteString(valueStyle.Render("Progress: 60% Complete") + "\n\n")

	b.WriteString(secondaryStyle.Render(fmt.Sprintf("Hints Used: %d   Time: %d steps",
		m.snap.Hints(), m.snap.TimeOnLesson())))
	return panelStyle.Render(b.String())
}

func (m Model) aacView() string {
	usage := m.snap.ButtonUsage()

	buttons := make([]string, snapshot.NumAACButtons)
	for i, symbol := range snapshot.AACSymbols {
		style := buttonBase
		switch viz.ButtonUsageTier(usage[i]) {
		case viz.TierActive:
			style = buttonActive
		case viz.TierHover:
			style = buttonHover
		}
		buttons[i] = style.Render(symbol + "\n" + viz.Percent(usage[i]))
	}

	top := lipgloss.JoinHorizontal(lipgloss.Top, buttons[0], buttons[1], buttons[2])
	bottom := lipgloss.JoinHorizontal(lipgloss.Top, buttons[3], buttons[4], buttons[5])

	content := titleStyle.Render("AAC Communication") + "\n\n" +
		lipgloss.JoinVertical(lipgloss.Left, top, bottom)
	return panelStyle.Render(content)
}

func (m Model) metricsView() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Performance Metrics") + "\n\n")

	b.WriteString(labelStyle.Render("Accuracy") +
		successStyle.Render(textBar(m.snap.Accuracy(), 20)) +
		valueStyle.Render(" "+viz.Percent(m.snap.Accuracy())) + "\n")

	engagement := m.snap.Engagement()
	engStyle := errorStyle
	switch viz.EngagementTierOf(engagement) {
	case viz.EngagementHigh:
		engStyle = successStyle
	case viz.EngagementMedium:
		engStyle = warningStyle
	}
	b.WriteString(labelStyle.Render("Engagement") +
		engStyle.Render(textBar(engagement, 20)) +
		valueStyle.Render(" "+viz.Percent(engagement)) + "\n")

	b.WriteString(labelStyle.Render("Efficiency") +
		valueStyle.Render(textBar(m.snap.Efficiency(), 20)) +
		valueStyle.Render(" "+viz.Percent(m.snap.Efficiency())) + "\n")

	if len(m.engagementHist) > 1 {
		chart := asciigraph.Plot(m.engagementHist,
			asciigraph.Height(4),
			asciigraph.Width(30),
			asciigraph.Caption("engagement"),
		)
		b.WriteString("\n" + graphStyle.Render(chart) + "\n")
	}

	b.WriteString("\n")
	if m.info.Reward != nil {
		rewardStyle := errorStyle
		if *m.info.Reward > 0 {
			rewardStyle = successStyle
		}
		b.WriteString(labelStyle.Render("Last Reward") +
			rewardStyle.Render(viz.SignedReward(*m.info.Reward)) + "\n")
	}
	if m.info.TotalReward != nil {
		b.WriteString(labelStyle.Render("Episode Reward") +
			valueStyle.Render(fmt.Sprintf("%.1f", *m.info.TotalReward)) + "\n")
	}
	b.WriteString(labelStyle.Render("Step") +
		secondaryStyle.Render(viz.StepProgress(m.snap.Step(), m.opts.EpisodeLength)))
	return panelStyle.Render(b.String())
}

func (m Model) agentView() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Agent Actions") + "\n\n")

	if m.info.Episode != nil {
		b.WriteString(secondaryStyle.Render(fmt.Sprintf("Episode: %d", *m.info.Episode)) + "\n\n")
	}

	if m.showAction && m.lastAction >= 0 && m.lastAction < len(m.opts.ActionNames) {
		b.WriteString(labelStyle.Render("Current Action") + "\n")
		b.WriteString(calloutStyle.Render(m.opts.ActionNames[m.lastAction]))
	} else {
		b.WriteString(secondaryStyle.Render("Waiting for agent action..."))
	}
	return panelStyle.Render(b.String())
}
