// Package render turns parse results into terminal and file output: a
// styled field listing for single parses, JSON for scripting, and
// timestamped batch report files.
package render

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/Nomadcxx/sceneparse/internal/parser"
)

var (
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#8d99ae")).Width(12)
	valueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#edf2f4"))
	typeStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#ef233c")).Bold(true)
	warnStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#f39c12"))
)

// Text renders one release as an aligned field listing. With colored set,
// lipgloss styles are applied; otherwise the same layout is emitted plain.
func Text(r *parser.Release, colored bool) string {
	var b strings.Builder

	write := func(label, value string) {
		if value == "" {
			return
		}
		if colored {
			b.WriteString(labelStyle.Render(label) + " " + valueStyle.Render(value) + "\n")
		} else {
			fmt.Fprintf(&b, "%-12s %s\n", label, value)
		}
	}

	write("Name", r.Raw)
	if colored {
		b.WriteString(labelStyle.Render("Type") + " " + typeStyle.Render(r.Type.String()) + "\n")
	} else {
		fmt.Fprintf(&b, "%-12s %s\n", "Type", r.Type)
	}
	write("Title", r.Title)
	write("Extra", r.TitleExtra)
	write("Group", r.Group)
	write("Year", r.Year)
	if r.Date != nil {
		write("Date", r.Date.Format("2006-01-02"))
	}
	if r.Season != 0 {
		write("Season", fmt.Sprintf("%d", r.Season))
	}
	write("Episode", r.Episode)
	if r.Disc != 0 {
		write("Disc", fmt.Sprintf("%d", r.Disc))
	}
	write("Source", r.Source)
	write("Format", r.Format)
	write("Resolution", r.Resolution)
	write("Audio", strings.Join(r.Audio, ", "))
	write("Device", r.Device)
	write("OS", r.OS)
	write("Version", r.Version)
	write("Country", r.Country)
	write("Flags", strings.Join(r.Flags, ", "))
	write("Languages", languageList(r))

	for _, w := range r.Warnings {
		if colored {
			b.WriteString(warnStyle.Render("warning: "+w) + "\n")
		} else {
			fmt.Fprintf(&b, "warning: %s\n", w)
		}
	}

	return b.String()
}

// JSON renders one release as indented JSON.
func JSON(r *parser.Release) (string, error) {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode release: %w", err)
	}
	return string(data), nil
}

func languageList(r *parser.Release) string {
	names := make([]string, 0, len(r.Languages))
	for _, l := range r.Languages {
		names = append(names, l.Name)
	}
	return strings.Join(names, ", ")
}

// Summary builds the header block for a batch report: counts per type and
// how many names parsed without a group or with warnings.
func Summary(results []*parser.Release, generated time.Time) string {
	counts := make(map[string]int)
	noGroup, warned := 0, 0
	for _, r := range results {
		counts[r.Type.String()]++
		if r.Group == parser.NoGroup {
			noGroup++
		}
		if len(r.Warnings) > 0 {
			warned++
		}
	}

	var b strings.Builder
	b.WriteString("SCENEPARSE BATCH REPORT\n")
	b.WriteString(strings.Repeat("=", 60) + "\n")
	fmt.Fprintf(&b, "Generated: %s\n", generated.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(&b, "Names parsed: %d\n", len(results))
	fmt.Fprintf(&b, "Without group: %d\n", noGroup)
	fmt.Fprintf(&b, "With warnings: %d\n", warned)
	b.WriteString("\nBY TYPE\n")
	b.WriteString(strings.Repeat("=", 60) + "\n")
	for _, t := range typeOrder {
		if n := counts[t]; n > 0 {
			fmt.Fprintf(&b, "%-12s %d\n", t, n)
		}
	}
	return b.String()
}

// typeOrder fixes the summary ordering so reports diff cleanly.
var typeOrder = []string{
	"Movie", "TV", "Anime", "Music", "MusicVideo", "Game", "App",
	"eBook", "ABook", "Bookware", "Font", "Sports", "Docu", "XXX",
}
