package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/blaisecz/stress-detector/internal/domain"
	"github.com/blaisecz/stress-detector/internal/wellness"
)

const barWidth = 20

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#667eea"))
	labelStyle = lipgloss.NewStyle().Width(20)
	dimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#718096"))
	okStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#2ed573"))
	warnStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#ffa502"))
	boxStyle   = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#4ca1af")).
			Padding(0, 2)
)

func levelStyle(level domain.StressLevel) lipgloss.Style {
	g := wellness.GaugeFor(level)
	return lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(g.Color))
}

func renderLevel(level domain.StressLevel) string {
	g := wellness.GaugeFor(level)
	line := fmt.Sprintf("%s Predicted Stress Level: %s", g.Emoji, levelStyle(level).Render(string(level)))
	return boxStyle.BorderForeground(lipgloss.Color(g.Color)).Render(line)
}

func renderBar(score float64) string {
	filled := int(score/100*barWidth + 0.5)
	filled = max(0, min(barWidth, filled))
	return strings.Repeat("█", filled) + dimStyle.Render(strings.Repeat("░", barWidth-filled))
}

func renderRadar(axes []domain.RadarAxis) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("📊 Your Lifestyle Analysis"))
	b.WriteString("\n")
	for _, a := range axes {
		fmt.Fprintf(&b, "%s %s %3.0f\n", labelStyle.Render(a.Name), renderBar(a.Score), a.Score)
	}
	return b.String()
}

func renderMetrics(metrics []domain.HealthMetric) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("📈 Your Health Metrics"))
	b.WriteString("\n")
	for _, m := range metrics {
		style := okStyle
		if !m.Ok {
			style = warnStyle
		}
		fmt.Fprintf(&b, "%s %s\n", labelStyle.Render(m.Label), style.Render(m.Value))
	}
	return b.String()
}

func renderRecommendation(rec domain.Recommendation) string {
	var b strings.Builder
	b.WriteString(levelStyle(rec.Level).Render(rec.Title))
	b.WriteString("\n")
	b.WriteString(rec.Intro)
	b.WriteString("\n")
	for _, item := range rec.Items {
		fmt.Fprintf(&b, "  %s %s: %s\n", item.Icon, lipgloss.NewStyle().Bold(true).Render(item.Heading), item.Text)
	}
	fmt.Fprintf(&b, "%s %s", lipgloss.NewStyle().Bold(true).Render(rec.NoteLabel), rec.Note)
	return boxStyle.Render(b.String())
}
