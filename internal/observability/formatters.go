// Package observability provides formatted output utilities for verbose CLI
// mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/chalinh/jobmatch/internal/education"
	"github.com/chalinh/jobmatch/internal/extraction"
	"github.com/chalinh/jobmatch/internal/matching"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 10
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintExtraction outputs the per-strategy and per-stage diagnostics of one
// extraction.
func (p *Printer) PrintExtraction(stats extraction.Stats) {
	var sb strings.Builder

	sb.WriteString("Strategy candidates:\n")
	for _, name := range []string{
		extraction.StrategyKnownTerms,
		extraction.StrategyDirectScan,
		extraction.StrategySections,
		extraction.StrategyKeyphrase,
		extraction.StrategyEntities,
		extraction.StrategySoftSkills,
	} {
		sb.WriteString(fmt.Sprintf("  %-12s %d\n", name, len(stats.ByStrategy[name])))
	}
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Fused:      %d\n", stats.Fused))
	sb.WriteString(fmt.Sprintf("Normalized: %d\n", stats.Normalized))
	sb.WriteString(fmt.Sprintf("Validated:  %d\n", stats.Validated))
	sb.WriteString(fmt.Sprintf("Final:      %d\n", stats.Final))

	if len(stats.Skills) > 0 {
		sb.WriteString("\nSkills:\n")
		for i, skill := range stats.Skills {
			if i >= maxItemsToShow {
				sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(stats.Skills)-maxItemsToShow))
				break
			}
			sb.WriteString(fmt.Sprintf("  - %s\n", skill))
		}
	}

	p.printBox("Skill Extraction", strings.TrimRight(sb.String(), "\n"))
}

// PrintEducation outputs a resolved education requirement.
func (p *Printer) PrintEducation(edu education.Education) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Level: %s\n", orDash(edu.Level)))
	sb.WriteString(fmt.Sprintf("Major: %s", orDash(edu.Major)))
	p.printBox("Education Requirement", sb.String())
}

// PrintMatches outputs ranked matches with their component scores.
func (p *Printer) PrintMatches(matches []matching.Match) {
	var sb strings.Builder

	for i, m := range matches {
		sb.WriteString(fmt.Sprintf("%d. %s at %s (%.2f)\n",
			i+1, m.Posting.Title, orDash(m.Posting.Company), m.Score))
		sb.WriteString(fmt.Sprintf("   skills %.2f | edu %.2f | exp %.2f | lang %.2f | loc %.2f\n",
			m.SkillScore, m.EducationScore, m.ExperienceScore, m.LanguageScore, m.LocationScore))
		if len(m.MissingSkills) > 0 {
			missing := m.MissingSkills
			if len(missing) > maxItemsToShow {
				missing = missing[:maxItemsToShow]
			}
			sb.WriteString(fmt.Sprintf("   missing: %s\n", strings.Join(missing, ", ")))
		}
	}

	p.printBox(fmt.Sprintf("Top %d Matches", len(matches)), strings.TrimRight(sb.String(), "\n"))
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
