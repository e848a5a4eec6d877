package pages

import (
	"bytes"
	"fmt"
	"image/png"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/jonathan/dossier-builder/internal/types"
)

// Profile generates the combined competency-radar and grades sheet. The top
// half centers the radar image (a neutral placeholder box when no image is
// supplied) flanked by short competency explanations; the bottom half is the
// grades table with average footer and signature lines. An empty grade list
// falls back to the layout's illustrative grade set.
func (g *Generator) Profile(profile types.Profile, _ []types.Skill, grades []types.Grade, radarPNG []byte) ([]byte, error) {
	pdf, tr := newA4()

	// Header line, right aligned
	pdf.SetFont("Helvetica", "", 6.5)
	setText(pdf, colorGray600)
	textRight(pdf, pageW-margin, 10, tr(profile.Name))
	textRight(pdf, pageW-margin, 13, tr("Seite 2"))

	y := 18.0

	pdf.SetFont("Times", "B", 12)
	setText(pdf, colorPrimary)
	pdf.Text(margin, y, tr("Kompetenzraster"))
	setDraw(pdf, colorPrimary)
	pdf.SetLineWidth(0.6)
	pdf.Line(margin, y+2, margin+35, y+2)
	y += 8

	radarSize := g.layout.RadarSizeMM
	radarX := margin + (contentW-radarSize)/2
	const gap = 5.0
	leftColW := radarX - margin - gap
	rightColX := radarX + radarSize + gap
	rightColW := pageW - margin - rightColX

	g.drawRadarSlot(pdf, tr, radarX, y, radarSize, radarPNG)

	// Flanking explanations, vertically centered on the radar
	const lineH = 10.0
	blockH := float64(len(g.layout.LeftCompetencies)) * lineH
	textStartY := y + (radarSize-blockH)/2

	drawNotes := func(notes []CompetencyNote, x, width float64) {
		for i, note := range notes {
			rowY := textStartY + float64(i)*lineH
			pdf.SetFont("Helvetica", "B", 6.5)
			setText(pdf, colorPrimary)
			pdf.Text(x, rowY, tr(note.Name))
			pdf.SetFont("Helvetica", "", 6)
			setText(pdf, colorGray700)
			lines := pdf.SplitText(tr(note.Description), width-1)
			if len(lines) > 0 {
				pdf.Text(x, rowY+4, lines[0])
			}
		}
	}
	drawNotes(g.layout.LeftCompetencies, margin, leftColW)
	drawNotes(g.layout.RightCompetencies, rightColX, rightColW)

	y += radarSize + 6

	setDraw(pdf, colorGray200)
	pdf.SetLineWidth(0.3)
	pdf.Line(margin, y, pageW-margin, y)
	y += 6

	y = g.drawGradesSection(pdf, tr, grades, y)
	y = drawSignatureLines(pdf, tr, y)

	// Footer
	setDraw(pdf, colorGray200)
	pdf.SetLineWidth(0.2)
	pdf.Line(margin, pageH-10, pageW-margin, pageH-10)
	pdf.SetFont("Helvetica", "", 6.5)
	setText(pdf, colorGray600)
	pdf.Text(margin, pageH-6, tr(fmt.Sprintf("%s, %s", g.layout.SchoolPlace, time.Now().Format("02.01.2006"))))
	textRight(pdf, pageW-margin, pageH-6, tr(g.layout.SchoolName))

	return output(pdf, "profile")
}

// Grades generates the standalone grades page used when no profile section
// is part of the export. It reuses the grades-table layout in isolation.
func (g *Generator) Grades(grades []types.Grade) ([]byte, error) {
	pdf, tr := newA4()

	y := 18.0
	y = g.drawGradesSection(pdf, tr, grades, y)
	drawSignatureLines(pdf, tr, y)

	setDraw(pdf, colorGray200)
	pdf.SetLineWidth(0.2)
	pdf.Line(margin, pageH-10, pageW-margin, pageH-10)
	pdf.SetFont("Helvetica", "", 6.5)
	setText(pdf, colorGray600)
	textRight(pdf, pageW-margin, pageH-6, tr(g.layout.SchoolName))

	return output(pdf, "grades")
}

// drawRadarSlot embeds the radar PNG, or renders the neutral placeholder
// box when the image is missing or not decodable.
func (g *Generator) drawRadarSlot(pdf *fpdf.Fpdf, tr func(string) string, x, y, size float64, radarPNG []byte) {
	if len(radarPNG) > 0 {
		if _, err := png.DecodeConfig(bytes.NewReader(radarPNG)); err == nil {
			opt := fpdf.ImageOptions{ImageType: "PNG"}
			pdf.RegisterImageOptionsReader("competency-radar", opt, bytes.NewReader(radarPNG))
			pdf.ImageOptions("competency-radar", x, y, size, size, false, opt, 0, "")
			return
		}
	}
	setFill(pdf, colorGray100)
	pdf.Rect(x, y, size, size, "F")
	pdf.SetFont("Helvetica", "", 8)
	setText(pdf, colorGray400)
	textCenter(pdf, x+size/2, y+size/2, tr("Kompetenzradar"))
}

// drawGradesSection renders the grades heading and table, substituting the
// fallback grade set for an empty list. Returns the y below the table.
func (g *Generator) drawGradesSection(pdf *fpdf.Fpdf, tr func(string) string, grades []types.Grade, y float64) float64 {
	pdf.SetFont("Times", "B", 12)
	setText(pdf, colorPrimary)
	pdf.Text(margin, y, tr("Semesterzeugnis"))
	pdf.SetFont("Helvetica", "", 7)
	setText(pdf, colorGray600)
	pdf.Text(margin+38, y, tr(g.layout.SemesterLabel))
	setDraw(pdf, colorPrimary)
	pdf.SetLineWidth(0.5)
	pdf.Line(margin, y+2, margin+32, y+2)
	y += 8

	if len(grades) == 0 {
		grades = g.layout.FallbackGrades
	}
	return drawGradesTable(pdf, tr, grades, y)
}
