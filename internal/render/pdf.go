package render

import (
	"strings"

	"github.com/jung-kurt/gofpdf"

	"github.com/cocohazell1/planfeedback/internal/scores"
)

// WritePDF renders the feedback text and a drawn score chart into a PDF file.
// Layout is intentionally simple: headings get a larger bold face, body lines
// wrap, and each category gets a horizontal bar scaled against its maximum.
func WritePDF(title string, feedback string, set scores.Set, fontPath string, outPath string) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	family := "Helvetica"
	if strings.TrimSpace(fontPath) != "" {
		// A UTF-8 TTF is required for Korean output; Helvetica only covers
		// Latin text.
		family = "report"
		pdf.AddUTF8Font(family, "", fontPath)
		pdf.AddUTF8Font(family, "B", fontPath)
	}
	pdf.SetFont(family, "B", 16)
	pdf.AddPage()
	pdf.CellFormat(0, 10, title, "", 1, "L", false, 0, "")
	pdf.Ln(2)

	pdf.SetFont(family, "", 11)
	for _, line := range strings.Split(feedback, "\n") {
		s := strings.TrimSpace(line)
		if s == "" {
			pdf.Ln(4)
			continue
		}
		if strings.HasPrefix(s, "#") {
			level := 0
			for level < len(s) && s[level] == '#' {
				level++
			}
			text := strings.TrimSpace(s[level:])
			if text == "" {
				continue
			}
			size := 14.0
			if level >= 2 {
				size = 12.0
			}
			pdf.SetFont(family, "B", size)
			pdf.CellFormat(0, 8, text, "", 1, "L", false, 0, "")
			pdf.SetFont(family, "", 11)
			continue
		}
		pdf.MultiCell(0, 5, s, "", "L", false)
	}

	pdf.Ln(6)
	pdf.SetFont(family, "B", 13)
	pdf.CellFormat(0, 8, "점수 요약", "", 1, "L", false, 0, "")
	pdf.SetFont(family, "", 10)

	const barMax = 90.0
	for _, name := range set.Categories() {
		e, _ := set.Entry(name)
		ratio := 0.0
		if e.Max > 0 {
			ratio = e.Score / e.Max
		}
		if ratio > 1 {
			ratio = 1
		}
		if ratio < 0 {
			ratio = 0
		}
		pdf.CellFormat(55, 6, name, "", 0, "L", false, 0, "")
		x, y := pdf.GetXY()
		pdf.SetFillColor(66, 133, 244)
		pdf.Rect(x, y+1, barMax*ratio, 4, "F")
		pdf.SetDrawColor(180, 180, 180)
		pdf.Rect(x, y+1, barMax, 4, "D")
		pdf.SetXY(x+barMax+3, y)
		pdf.CellFormat(0, 6, formatScore(e.Score)+"/"+formatScore(e.Max), "", 1, "L", false, 0, "")
	}

	return pdf.OutputFileAndClose(outPath)
}
