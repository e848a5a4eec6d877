package pages

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"

	"github.com/jonathan/dossier-builder/internal/types"
)

// newA4 creates a portrait A4 document in millimeter units with one page
// added and returns it together with the cp1252 text translator for the
// core fonts.
func newA4() (*fpdf.Fpdf, func(string) string) {
	pdf := fpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()
	return pdf, tr
}

// output serializes the document, surfacing any sticky fpdf error.
func output(pdf *fpdf.Fpdf, page string) ([]byte, error) {
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, &GenerateError{Page: page, Message: "serializing document", Cause: err}
	}
	return buf.Bytes(), nil
}

func setText(pdf *fpdf.Fpdf, c rgb) { pdf.SetTextColor(c.r, c.g, c.b) }
func setFill(pdf *fpdf.Fpdf, c rgb) { pdf.SetFillColor(c.r, c.g, c.b) }
func setDraw(pdf *fpdf.Fpdf, c rgb) { pdf.SetDrawColor(c.r, c.g, c.b) }

// textRight places s so that it ends at x.
func textRight(pdf *fpdf.Fpdf, x, y float64, s string) {
	pdf.Text(x-pdf.GetStringWidth(s), y, s)
}

// textCenter places s centered on x.
func textCenter(pdf *fpdf.Fpdf, x, y float64, s string) {
	pdf.Text(x-pdf.GetStringWidth(s)/2, y, s)
}

// wrapText places s word-wrapped into a column of the given width starting
// at (x, y) and returns the y coordinate below the last line. Text wider
// than the column must always pass through here; unwrapped placement clips
// silently.
func wrapText(pdf *fpdf.Fpdf, x, y, width, lineH float64, s string) float64 {
	for _, line := range pdf.SplitText(s, width) {
		pdf.Text(x, y, line)
		y += lineH
	}
	return y
}

// gradeColor returns the band color for a grade value: success from 5.5 up,
// danger below 4, primary otherwise.
func gradeColor(value float64) rgb {
	switch {
	case value >= 5.5:
		return colorSuccess
	case value < 4:
		return colorDanger
	default:
		return colorPrimary
	}
}

// formatGrade renders a grade value with one decimal place.
func formatGrade(value float64) string {
	return fmt.Sprintf("%.1f", value)
}

// drawGradesTable renders the full-width grades table: header row,
// alternating row fills, color-banded right-aligned values and the average
// footer. Returns the y coordinate below the average row.
func drawGradesTable(pdf *fpdf.Fpdf, tr func(string) string, grades []types.Grade, y float64) float64 {
	pdf.SetFont("Helvetica", "B", 7)
	setText(pdf, colorGray700)
	pdf.Text(margin, y, tr("Fachbereich"))
	textRight(pdf, pageW-margin-12, y, tr("Note"))
	y += 2
	setDraw(pdf, colorPrimary)
	pdf.SetLineWidth(0.4)
	pdf.Line(margin, y, pageW-margin, y)
	y += 5

	const rowH = 6.0
	for i, grade := range grades {
		if i%2 == 1 {
			setFill(pdf, colorGray100)
			pdf.Rect(margin, y-4, contentW, rowH, "F")
		}
		pdf.SetFont("Helvetica", "", 8)
		setText(pdf, colorBlack)
		pdf.Text(margin, y, tr(grade.Subject))
		pdf.SetFont("Helvetica", "B", 8)
		setText(pdf, gradeColor(grade.Value))
		textRight(pdf, pageW-margin, y, formatGrade(grade.Value))
		setDraw(pdf, colorGray200)
		pdf.SetLineWidth(0.15)
		pdf.Line(margin, y+2, pageW-margin, y+2)
		y += rowH
	}

	y += 4
	setDraw(pdf, colorGray700)
	pdf.SetLineWidth(0.4)
	pdf.Line(margin, y, pageW-margin, y)

	avg := types.AverageGrade(grades)
	pdf.SetFont("Helvetica", "B", 9)
	setText(pdf, colorBlack)
	pdf.Text(margin, y+5, tr("Durchschnitt"))
	pdf.SetFont("Helvetica", "B", 11)
	setText(pdf, gradeColor(avg))
	textRight(pdf, pageW-margin, y+5, fmt.Sprintf("%.2f", avg))

	return y + 14
}

// drawSignatureLines renders the two signature placeholders and the stamp
// circle between them. Returns the y coordinate below the captions.
func drawSignatureLines(pdf *fpdf.Fpdf, tr func(string) string, y float64) float64 {
	const sigW = 50.0
	setDraw(pdf, colorGray400)
	pdf.SetLineWidth(0.25)
	pdf.Line(margin, y, margin+sigW, y)
	pdf.Line(pageW-margin-sigW, y, pageW-margin, y)
	pdf.SetFont("Helvetica", "", 6.5)
	setText(pdf, colorGray600)
	pdf.Text(margin, y+4, tr("Klassenlehrperson"))
	pdf.Text(pageW-margin-sigW, y+4, tr("Schulleitung"))
	pdf.Circle(pageW/2, y-6, 7, "D")
	pdf.SetFont("Helvetica", "", 5)
	setText(pdf, colorGray400)
	textCenter(pdf, pageW/2, y-4, tr("Stempel"))
	return y + 6
}
