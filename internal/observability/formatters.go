// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/dossier-builder/internal/merge"
	"github.com/jonathan/dossier-builder/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 8
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

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintBundleSummary outputs a human-readable summary of the loaded bundle.
func (p *Printer) PrintBundleSummary(bundle *types.ExportBundle) {
	if bundle == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Name:      %s\n", bundle.Profile.Name))
	if bundle.Profile.Class != "" {
		sb.WriteString(fmt.Sprintf("Class:     %s\n", bundle.Profile.Class))
	}
	sb.WriteString(fmt.Sprintf("Sections:  %d (%d enabled)\n", len(bundle.Sections), len(types.EnabledSorted(bundle.Sections))))
	sb.WriteString(fmt.Sprintf("Documents: %d\n", len(bundle.Documents)))
	sb.WriteString(fmt.Sprintf("Projects:  %d (%d in working set)\n", len(bundle.Projects), len(bundle.WorkingProjects())))
	sb.WriteString(fmt.Sprintf("Grades:    %d", len(bundle.Grades)))

	p.printBox("EXPORT BUNDLE", sb.String())
}

// PrintSectionPlan outputs the enabled sections in merge order.
func (p *Printer) PrintSectionPlan(sections []types.DossierSection) {
	enabled := types.EnabledSorted(sections)
	if len(enabled) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d sections enabled:\n\n", len(enabled)))

	count := min(len(enabled), maxItemsToShow)
	for i := 0; i < count; i++ {
		s := enabled[i]
		label := s.Label
		if label == "" {
			label = string(s.SectionType)
		}
		if len(label) > 35 {
			label = label[:32] + "..."
		}
		sb.WriteString(fmt.Sprintf("#%d  %s\n", i+1, label))
		sb.WriteString(fmt.Sprintf("    %s/%s", s.Kind, s.SectionType))
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(enabled) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more sections", len(enabled)-maxItemsToShow))
	}

	p.printBox("SECTION PLAN", sb.String())
}

// PrintMergeResult outputs the per-section page counts and any issues.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintMergeResult(result *merge.Result) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Total pages: %d\n\n", result.PageCount))

	count := min(len(result.Sections), maxItemsToShow)
	for i := 0; i < count; i++ {
		s := result.Sections[i]
		label := s.Label
		if len(label) > 40 {
			label = label[:37] + "..."
		}
		noun := "pages"
		if s.Pages == 1 {
			noun = "page"
		}
		sb.WriteString(fmt.Sprintf("• %s (%d %s)\n", label, s.Pages, noun))
	}
	if len(result.Sections) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("... and %d more sections\n", len(result.Sections)-maxItemsToShow))
	}

	p.printBox("MERGE RESULT", strings.TrimSuffix(sb.String(), "\n"))

	if len(result.Issues) == 0 {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, "✅ NO SECTIONS SKIPPED")
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	var issues strings.Builder
	issues.WriteString(fmt.Sprintf("Skipped %d sections:\n\n", len(result.Issues)))
	for i, issue := range result.Issues {
		reason := issue.Reason
		if len(reason) > 45 {
			reason = reason[:42] + "..."
		}
		issues.WriteString(fmt.Sprintf("⚠ %s\n", issue.Label))
		issues.WriteString(fmt.Sprintf("  %s", reason))
		if i < len(result.Issues)-1 {
			issues.WriteString("\n\n")
		}
	}

	p.printBox("SKIPPED SECTIONS", issues.String())
}
