package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/t2048/internal/autoplay"
)

var (
	reportTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("229"))
	reportBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
)

// RenderReport lays out a benchmark report as a summary followed by a
// max-tile table.
func RenderReport(r autoplay.BenchReport) string {
	var b strings.Builder

	b.WriteString(reportTitleStyle.Render("BENCHMARK"))
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "Games:   %d\n", r.Games)
	fmt.Fprintf(&b, "Wins:    %d (%.1f%%)\n", r.Wins, 100*r.WinRate())
	fmt.Fprintf(&b, "Mean:    %.1f\n", r.MeanScore)
	fmt.Fprintf(&b, "Best:    %d (seed %d)\n", r.BestScore, r.BestSeed)
	fmt.Fprintf(&b, "Elapsed: %s\n\n", r.Elapsed.Round(time.Millisecond))

	b.WriteString(reportBoxStyle.Render(histogramTable(r).View()))
	return b.String()
}

// histogramTable builds a static table with one row per max tile.
func histogramTable(r autoplay.BenchReport) table.Model {
	columns := []table.Column{
		{Title: "Max tile", Width: 10},
		{Title: "Games", Width: 8},
		{Title: "Share", Width: 8},
	}

	rows := make([]table.Row, len(r.Histogram))
	for i, bucket := range r.Histogram {
		share := 0.0
		if r.Games > 0 {
			share = 100 * float64(bucket.Games) / float64(r.Games)
		}
		rows[i] = table.Row{
			bucket.MaxTile.String(),
			fmt.Sprintf("%d", bucket.Games),
			fmt.Sprintf("%.1f%%", share),
		}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(false),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = lipgloss.NewStyle()
	t.SetStyles(s)
	// Header plus its bottom border
	t.SetHeight(len(rows) + 2)

	return t
}
