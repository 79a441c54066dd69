package ui

import (
	"fmt"
	"math"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/Keobu/Audio-Extractor-Emhancer/internal/analysis"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#5F5FD7"))

	subtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888")).
			Italic(true)

	doneIconStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#00AA00"))
	runningIconStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFA500"))
	pendingIconStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))
	errorStyle       = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#D70000"))
	warnStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFA500"))

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#888888")).
			Padding(0, 1).
			Width(60)
)

// renderRunView renders the in-progress view: header, stage list, footer.
func renderRunView(m Model) string {
	var b strings.Builder

	b.WriteString(renderHeader(m))
	b.WriteString("\n\n")
	b.WriteString(renderStageList(m))

	for _, w := range m.Warnings {
		b.WriteString(warnStyle.Render("⚠ " + w))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	elapsed := time.Since(m.StartTime).Seconds()
	b.WriteString(boxStyle.Render(fmt.Sprintf("⏱  Elapsed: %.1fs | q to quit", elapsed)))

	return b.String()
}

func renderHeader(m Model) string {
	title := headerStyle.Render("Audio Enhancer 🎵")
	subtitle := subtitleStyle.Render(fmt.Sprintf("%s → %s",
		filepath.Base(m.InputPath), filepath.Base(m.OutputPath)))
	return title + "\n" + subtitle
}

// renderStageList renders one line per stage with a status icon.
func renderStageList(m Model) string {
	var b strings.Builder

	for _, stage := range m.Stages {
		switch stage.Status {
		case StatusDone:
			icon := doneIconStyle.Render("✓")
			b.WriteString(fmt.Sprintf(" %s %-9s %.1fs\n", icon, stage.Stage, stage.Duration.Seconds()))
		case StatusRunning:
			icon := runningIconStyle.Render("⚙")
			elapsed := time.Since(stage.StartTime).Seconds()
			b.WriteString(fmt.Sprintf(" %s %-9s %.1fs...\n", icon, stage.Stage, elapsed))
		default:
			icon := pendingIconStyle.Render("○")
			b.WriteString(fmt.Sprintf(" %s %-9s queued\n", icon, stage.Stage))
		}
	}

	return b.String()
}

// renderCompletionSummary renders the final view after the run ends.
func renderCompletionSummary(m Model) string {
	var b strings.Builder

	if m.Err != nil {
		b.WriteString(errorStyle.Render("✗ Enhancement failed"))
		b.WriteString("\n\n")
		b.WriteString(fmt.Sprintf("   %v\n", m.Err))
		return b.String()
	}

	b.WriteString(doneIconStyle.Render("✨ Enhancement complete!"))
	b.WriteString("\n\n")

	for _, stage := range m.Stages {
		if stage.Status == StatusDone {
			icon := doneIconStyle.Render("✓")
			b.WriteString(fmt.Sprintf(" %s %-9s %.1fs\n", icon, stage.Stage, stage.Duration.Seconds()))
		}
	}

	if m.Result != nil {
		b.WriteString("\n")
		b.WriteString(renderMeasurements(m.Result.Input, m.Result.Output))
		b.WriteString("\n")
		b.WriteString(fmt.Sprintf("Music stem: %s\n", m.Result.OutputPath))
		if m.Result.VocalsPath != "" {
			b.WriteString(fmt.Sprintf("Vocal stem: %s\n", m.Result.VocalsPath))
		}
	}

	for _, w := range m.Warnings {
		b.WriteString(warnStyle.Render("⚠ " + w))
		b.WriteString("\n")
	}

	return b.String()
}

// renderMeasurements shows the before/after level and spectral summary.
func renderMeasurements(in, out analysis.Summary) string {
	return fmt.Sprintf(
		"   RMS:      %s → %s\n"+
			"   Peak:     %s → %s\n"+
			"   Centroid: %.0f Hz → %.0f Hz",
		formatDbfs(in.RMS), formatDbfs(out.RMS),
		formatDbfs(in.Peak), formatDbfs(out.Peak),
		in.CentroidHz, out.CentroidHz)
}

func formatDbfs(linear float64) string {
	if linear <= 0 {
		return "-∞ dBFS"
	}
	return fmt.Sprintf("%.1f dBFS", 20*math.Log10(linear))
}
