package pages

import (
	"github.com/go-pdf/fpdf"

	"github.com/jonathan/dossier-builder/internal/types"
)

// statusLabels maps project statuses to their printed German labels
var statusLabels = map[types.ProjectStatus]string{
	types.StatusCompleted: "Abgeschlossen",
	types.StatusActive:    "In Bearbeitung",
	types.StatusPlanning:  "Planung",
}

// Project generates a one-page project summary with title, status tag,
// guiding question and milestone checklist.
func (g *Generator) Project(project types.Project) ([]byte, error) {
	pdf, tr := newA4()
	y := 18.0

	pdf.SetFont("Helvetica", "", 6.5)
	setText(pdf, colorGray600)
	textRight(pdf, pageW-margin, 10, tr("Projektdokumentation"))

	title := "Projekt: " + project.Title
	pdf.SetFont("Times", "B", 11)
	setText(pdf, colorPrimary)
	pdf.Text(margin, y, tr(title))
	titleW := pdf.GetStringWidth(tr(title))

	label, ok := statusLabels[project.Status]
	if !ok {
		label = string(project.Status)
	}
	pdf.SetFont("Helvetica", "", 7)
	if project.Status == types.StatusCompleted {
		setText(pdf, colorSuccess)
	} else {
		setText(pdf, colorGray600)
	}
	pdf.Text(margin+titleW+3, y, tr("["+label+"]"))

	y += 3
	setDraw(pdf, colorPrimary)
	pdf.SetLineWidth(0.4)
	pdf.Line(margin, y, margin+25, y)
	y += 6

	if project.GuidingQuestion != "" {
		pdf.SetFont("Helvetica", "B", 7.5)
		setText(pdf, colorGray700)
		pdf.Text(margin, y, tr("Leitfrage:"))
		y += 3.5
		pdf.SetFont("Helvetica", "I", 7.5)
		setText(pdf, colorBlack)
		y = wrapText(pdf, margin, y, contentW, 3.5, tr(project.GuidingQuestion)) + 4
	}

	if len(project.Milestones) > 0 {
		pdf.SetFont("Helvetica", "B", 7.5)
		setText(pdf, colorGray700)
		pdf.Text(margin, y, tr("Meilensteine:"))
		y += 4

		pdf.SetFont("Helvetica", "", 7)
		for _, m := range project.Milestones {
			if m.Completed {
				setText(pdf, colorSuccess)
			} else {
				setText(pdf, colorGray600)
			}
			drawCheckbox(pdf, margin+2, y-2.2, 2.5, m.Completed)
			y = wrapText(pdf, margin+6, y, contentW-6, 4, tr(m.Text))
		}
	}

	setDraw(pdf, colorGray400)
	pdf.SetLineWidth(0.2)
	pdf.Line(margin, pageH-10, pageW-margin, pageH-10)

	return output(pdf, "project")
}

// drawCheckbox draws a small square checkbox, ticked when completed.
func drawCheckbox(pdf *fpdf.Fpdf, x, y, size float64, completed bool) {
	if completed {
		setDraw(pdf, colorSuccess)
	} else {
		setDraw(pdf, colorGray600)
	}
	pdf.SetLineWidth(0.25)
	pdf.Rect(x, y, size, size, "D")
	if completed {
		pdf.Line(x+size*0.2, y+size*0.55, x+size*0.42, y+size*0.8)
		pdf.Line(x+size*0.42, y+size*0.8, x+size*0.85, y+size*0.22)
	}
}
