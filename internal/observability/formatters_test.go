package observability

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/dossier-builder/internal/merge"
	"github.com/jonathan/dossier-builder/internal/types"
)

func TestPrintBundleSummary(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	bundle := &types.ExportBundle{
		Profile: types.Profile{Name: "Frodo Beutlin", Class: "3a"},
		Sections: []types.DossierSection{
			{ID: "s1", Kind: types.KindGenerated, SectionType: types.SectionCover, Enabled: true},
			{ID: "s2", Kind: types.KindGenerated, SectionType: types.SectionProfile, Enabled: false},
		},
		Projects: []types.Project{
			{ID: "p1", Title: "Solarofen", Status: types.StatusActive},
		},
	}

	p.PrintBundleSummary(bundle)

	output := buf.String()
	assert.Contains(t, output, "EXPORT BUNDLE")
	assert.Contains(t, output, "Frodo Beutlin")
	assert.Contains(t, output, "2 (1 enabled)")
}

func TestPrintBundleSummary_Nil(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintBundleSummary(nil)

	assert.Empty(t, buf.String())
}

func TestPrintSectionPlan(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintSectionPlan([]types.DossierSection{
		{ID: "s1", Kind: types.KindGenerated, SectionType: types.SectionCover, Label: "Deckblatt", Enabled: true, Order: 0},
		{ID: "s2", Kind: types.KindGenerated, SectionType: types.SectionProfile, Enabled: true, Order: 1},
		{ID: "s3", Kind: types.KindUploaded, SectionType: types.SectionUploaded, Label: "Zeugnis", Enabled: false, Order: 2},
	})

	output := buf.String()
	assert.Contains(t, output, "SECTION PLAN")
	assert.Contains(t, output, "2 sections enabled")
	assert.Contains(t, output, "#1  Deckblatt")
	// Unlabeled sections fall back to the section type
	assert.Contains(t, output, "#2  profile")
	assert.NotContains(t, output, "Zeugnis")
}

func TestPrintSectionPlan_NoneEnabled(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintSectionPlan([]types.DossierSection{
		{ID: "s1", Kind: types.KindGenerated, SectionType: types.SectionCover, Enabled: false},
	})

	assert.Empty(t, buf.String())
}

func TestPrintMergeResult_WithIssues(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintMergeResult(&merge.Result{
		PageCount: 4,
		Sections: []merge.SectionPages{
			{SectionID: "s1", Label: "Deckblatt", Pages: 1},
			{SectionID: "s2", Label: "Zeugnis", Pages: 3},
		},
		Issues: []merge.Issue{
			{SectionID: "s3", Label: "Empfehlungsschreiben", Reason: "document has no payload"},
		},
	})

	output := buf.String()
	assert.Contains(t, output, "MERGE RESULT")
	assert.Contains(t, output, "Total pages: 4")
	assert.Contains(t, output, "Deckblatt (1 page)")
	assert.Contains(t, output, "Zeugnis (3 pages)")
	assert.Contains(t, output, "SKIPPED SECTIONS")
	assert.Contains(t, output, "Empfehlungsschreiben")
}

func TestPrintMergeResult_NoIssues(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintMergeResult(&merge.Result{
		PageCount: 1,
		Sections: []merge.SectionPages{
			{SectionID: "s1", Label: "Deckblatt", Pages: 1},
		},
	})

	assert.Contains(t, buf.String(), "NO SECTIONS SKIPPED")
}
