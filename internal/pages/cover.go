package pages

import (
	"fmt"
	"strings"

	"github.com/go-pdf/fpdf"

	"github.com/jonathan/dossier-builder/internal/types"
)

// Cover generates the one-page resume sheet: a gray sidebar with contact
// info, skill bars, languages, certificates and soft skills, and a main
// column with the name header, bio, labeled info rows, education timeline,
// job targets and references. Missing optional profile fields fall back to
// the layout placeholders; the page always renders.
func (g *Generator) Cover(profile types.Profile, skills []types.Skill) ([]byte, error) {
	pdf, tr := newA4()

	sidebarX := margin
	sidebarEndX := margin + sidebarW
	mainX := sidebarEndX + 6
	mainW := pageW - margin - mainX

	// Sidebar background
	setFill(pdf, colorGray100)
	pdf.Rect(0, 0, sidebarEndX+2, pageH, "F")

	sideY := 15.0

	// Photo placeholder disc with initials
	const photoR = 14.0
	photoX := sidebarX + sidebarW/2
	setFill(pdf, colorPrimary)
	pdf.Circle(photoX, sideY+photoR, photoR, "F")

	pdf.SetFont("Helvetica", "B", 14)
	setText(pdf, colorWhite)
	textCenter(pdf, photoX, sideY+photoR+4, tr(initials(profile.Name)))

	sideY += photoR*2 + 8

	pdf.SetFont("Times", "B", 10)
	setText(pdf, colorPrimary)
	pdf.Text(sidebarX, sideY, tr(profile.Name))
	sideY += 6

	sideY = g.sidebarHeading(pdf, tr, sidebarX, sideY, "KONTAKT")
	pdf.SetFont("Helvetica", "", 7)
	setText(pdf, colorBlack)
	for _, line := range g.layout.ContactLines {
		if line == "" {
			sideY += 2
			continue
		}
		sideY = wrapText(pdf, sidebarX, sideY, sidebarW-2, 3, tr(line))
	}
	sideY += 4

	// Skill bars
	sideY = g.sidebarHeading(pdf, tr, sidebarX, sideY, "EDV-KENNTNISSE")
	if len(skills) == 0 {
		skills = g.layout.DefaultSkills
	}
	for _, skill := range skills {
		pdf.SetFont("Helvetica", "", 7)
		setText(pdf, colorBlack)
		pdf.Text(sidebarX, sideY, tr(skill.Subject))
		barW := sidebarW - 2
		const barH = 2.5
		setFill(pdf, colorGray200)
		pdf.Rect(sidebarX, sideY+1, barW, barH, "F")
		setFill(pdf, colorPrimary)
		pdf.Rect(sidebarX, sideY+1, barW*skill.Ratio(), barH, "F")
		sideY += 7
	}
	sideY += 2

	sideY = g.sidebarHeading(pdf, tr, sidebarX, sideY, "SPRACHEN")
	for _, lang := range g.layout.Languages {
		pdf.SetFont("Helvetica", "", 7)
		setText(pdf, colorBlack)
		pdf.Text(sidebarX, sideY, tr(lang.Name))
		setText(pdf, colorGray600)
		textRight(pdf, sidebarX+sidebarW-2, sideY, tr(lang.Level))
		sideY += 4
	}
	sideY += 4

	sideY = g.sidebarHeading(pdf, tr, sidebarX, sideY, "ZERTIFIKATE")
	pdf.SetFont("Helvetica", "", 6.5)
	setText(pdf, colorBlack)
	for _, cert := range g.layout.Certificates {
		pdf.Text(sidebarX, sideY, tr("• "+cert))
		sideY += 3.5
	}
	sideY += 2.5

	sideY = g.sidebarHeading(pdf, tr, sidebarX, sideY, "SOFT SKILLS")
	pdf.SetFont("Helvetica", "", 6.5)
	setText(pdf, colorBlack)
	for _, soft := range g.layout.SoftSkills {
		pdf.Text(sidebarX, sideY, tr("• "+soft))
		sideY += 3.5
	}

	// Main column
	mainY := 15.0

	pdf.SetFont("Helvetica", "", 8)
	setText(pdf, colorGray600)
	pdf.Text(mainX, mainY, tr("BEWERBUNGSDOSSIER"))
	mainY += 6

	pdf.SetFont("Times", "B", 18)
	setText(pdf, colorPrimary)
	pdf.Text(mainX, mainY, tr(strings.ToUpper(profile.Name)))
	mainY += 5

	role := g.layout.FallbackRole
	if len(profile.JobTargets) > 0 {
		role = profile.JobTargets[0]
	}
	pdf.SetFont("Helvetica", "", 9)
	setText(pdf, colorGray700)
	pdf.Text(mainX, mainY, tr("Angehende/r "+role))

	setDraw(pdf, colorPrimary)
	pdf.SetLineWidth(0.6)
	pdf.Line(mainX, mainY+2, mainX+40, mainY+2)
	mainY += 10

	pdf.SetFont("Helvetica", "B", 8)
	setText(pdf, colorPrimary)
	pdf.Text(mainX, mainY, tr("PROFIL"))
	mainY += 4

	bio := profile.Bio
	if bio == "" {
		bio = g.layout.FallbackBio
	}
	pdf.SetFont("Helvetica", "", 8)
	setText(pdf, colorBlack)
	mainY = wrapText(pdf, mainX, mainY, mainW, 3.5, tr(bio)) + 4

	mainY = g.infoRow(pdf, tr, mainX, mainY, mainW, "Stärken:", listOr(profile.Strengths, []string{"Ausdauer", "Zuverlässigkeit", "Reflexionsfähigkeit"}))
	mainY = g.infoRow(pdf, tr, mainX, mainY, mainW, "Interessen:", listOr(profile.Interests, []string{"Natur", "Storytelling", "Fotografie"}))
	mainY = g.infoRow(pdf, tr, mainX, mainY, mainW, "Werte:", listOr(profile.Values, []string{"Verantwortung", "Respekt", "Durchhalten"}))
	mainY += 5

	pdf.SetFont("Helvetica", "B", 8)
	setText(pdf, colorPrimary)
	pdf.Text(mainX, mainY, tr("AUSBILDUNG"))
	mainY += 5

	// Vertical timeline
	tlX := mainX + 1.5
	setDraw(pdf, colorGray400)
	pdf.SetLineWidth(0.25)
	pdf.Line(tlX, mainY, tlX, mainY+float64(len(g.layout.Education))*13-4)

	for i, edu := range g.layout.Education {
		if i == 0 {
			setFill(pdf, colorPrimary)
		} else {
			setFill(pdf, colorGray400)
		}
		pdf.Circle(tlX, mainY+1, 1.2, "F")

		pdf.SetFont("Helvetica", "", 6.5)
		setText(pdf, colorGray600)
		pdf.Text(mainX+6, mainY, tr(edu.Period))
		mainY += 3.5

		pdf.SetFont("Helvetica", "B", 8)
		setText(pdf, colorBlack)
		pdf.Text(mainX+6, mainY, tr(edu.Title))
		mainY += 3

		pdf.SetFont("Helvetica", "", 7)
		setText(pdf, colorGray600)
		pdf.Text(mainX+6, mainY, tr(edu.Place))
		mainY += 6.5
	}
	mainY += 3

	pdf.SetFont("Helvetica", "B", 8)
	setText(pdf, colorPrimary)
	pdf.Text(mainX, mainY, tr("BERUFSZIELE"))
	mainY += 4

	goals := profile.JobTargets
	if len(goals) == 0 {
		goals = []string{g.layout.FallbackRole, "Kaufmann/Kauffrau EFZ"}
	}
	pdf.SetFont("Helvetica", "", 7.5)
	setText(pdf, colorBlack)
	for i, goal := range goals {
		mainY = wrapText(pdf, mainX+3, mainY, mainW-3, 4, tr(fmt.Sprintf("%d. %s", i+1, goal)))
	}
	mainY += 5

	pdf.SetFont("Helvetica", "B", 8)
	setText(pdf, colorPrimary)
	pdf.Text(mainX, mainY, tr("REFERENZEN"))
	mainY += 4

	pdf.SetFont("Helvetica", "", 7)
	setText(pdf, colorBlack)
	for _, ref := range g.layout.References {
		pdf.Text(mainX+3, mainY, tr(ref))
		mainY += 3.5
	}

	// Footer
	setDraw(pdf, colorGray400)
	pdf.SetLineWidth(0.2)
	pdf.Line(margin, pageH-10, pageW-margin, pageH-10)
	pdf.SetFont("Helvetica", "", 6.5)
	setText(pdf, colorGray600)
	pdf.Text(margin, pageH-6, tr(g.layout.FooterContact))
	textRight(pdf, pageW-margin, pageH-6, tr("Seite 1"))

	return output(pdf, "cover")
}

// sidebarHeading renders an uppercase section heading with its short
// underline and returns the y below it.
func (g *Generator) sidebarHeading(pdf *fpdf.Fpdf, tr func(string) string, x, y float64, title string) float64 {
	pdf.SetFont("Helvetica", "B", 7)
	setText(pdf, colorGray700)
	pdf.Text(x, y, tr(title))
	setDraw(pdf, colorPrimary)
	pdf.SetLineWidth(0.4)
	pdf.Line(x, y+1, x+15, y+1)
	return y + 5
}

// infoRow renders a bold label with wrapped value text to its right.
func (g *Generator) infoRow(pdf *fpdf.Fpdf, tr func(string) string, x, y, width float64, label, value string) float64 {
	pdf.SetFont("Helvetica", "B", 7)
	setText(pdf, colorGray700)
	pdf.Text(x, y, tr(label))
	pdf.SetFont("Helvetica", "", 7)
	setText(pdf, colorBlack)
	end := wrapText(pdf, x+22, y, width-22, 3, tr(value))
	if end < y+3.5 {
		end = y + 3.5
	}
	return end + 1.5
}

// initials derives up to two uppercase initials from a full name.
func initials(name string) string {
	var runes []rune
	for _, part := range strings.Fields(name) {
		runes = append(runes, []rune(part)[0])
		if len(runes) == 2 {
			break
		}
	}
	return strings.ToUpper(string(runes))
}

// listOr joins the list with commas, falling back when it is empty.
func listOr(list, fallback []string) string {
	if len(list) == 0 {
		list = fallback
	}
	return strings.Join(list, ", ")
}
