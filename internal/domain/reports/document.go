package reports

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"
)

// Layout in points on A4 portrait.
const (
	pageMargin    = 25.0
	bodyFontSize  = 10.0
	titleFontSize = 16.0
	cellPadding   = 4.0
	lineHeight    = 12.0
	footerHeight  = 20.0
	fontFamily    = "Helvetica"
)

// RenderDocument lays the table out as a paginated A4 PDF. Every page gets
// the title and the bold header row; the footer carries the UTC generation
// time and the page number.
func RenderDocument(t Table, generatedAt time.Time) ([]byte, error) {
	pdf := layoutDocument(t, generatedAt)
	if err := pdf.Error(); err != nil {
		return nil, fmt.Errorf("layout document: %w", err)
	}
	buf := new(bytes.Buffer)
	if err := pdf.Output(buf); err != nil {
		return nil, fmt.Errorf("write document: %w", err)
	}
	return buf.Bytes(), nil
}

func layoutDocument(t Table, generatedAt time.Time) *gofpdf.Fpdf {
	pdf := gofpdf.New("P", "pt", "A4", "")
	pdf.SetMargins(pageMargin, pageMargin, pageMargin)
	pdf.SetAutoPageBreak(false, pageMargin)
	pdf.SetTitle(t.Title, true)
	pdf.AliasNbPages("")
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pageW, pageH := pdf.GetPageSize()
	widths := columnWidths(t.Columns, pageW-2*pageMargin)
	bottom := pageH - pageMargin - footerHeight
	stamp := "Generated: " + generatedAt.UTC().Format("2006-01-02 15:04") + " UTC"

	pdf.SetHeaderFunc(func() {
		pdf.SetFont(fontFamily, "B", titleFontSize)
		pdf.CellFormat(0, titleFontSize+4, tr(t.Title), "", 1, "L", false, 0, "")
		pdf.Ln(6)
		pdf.SetFont(fontFamily, "B", bodyFontSize)
		drawRow(pdf, widths, wrapRow(pdf, widths, t.Headers(), tr))
		pdf.SetFont(fontFamily, "", bodyFontSize)
	})
	pdf.SetFooterFunc(func() {
		pdf.SetY(pageH - pageMargin - lineHeight)
		pdf.SetFont(fontFamily, "", bodyFontSize-2)
		pdf.CellFormat(0, lineHeight, fmt.Sprintf("Page %d of {nb}", pdf.PageNo()), "", 0, "L", false, 0, "")
		pdf.SetX(pageMargin)
		pdf.CellFormat(0, lineHeight, stamp, "", 0, "R", false, 0, "")
	})

	pdf.SetDrawColor(224, 224, 224)
	pdf.AddPage()
	pdf.SetFont(fontFamily, "", bodyFontSize)

	for _, row := range t.Rows {
		lines := wrapRow(pdf, widths, row, tr)
		if pdf.GetY()+rowHeight(lines) > bottom {
			pdf.AddPage()
		}
		drawRow(pdf, widths, lines)
	}
	return pdf
}

func columnWidths(cols []Column, available float64) []float64 {
	total := 0.0
	for _, col := range cols {
		total += weightOf(col)
	}
	out := make([]float64, len(cols))
	for i, col := range cols {
		out[i] = available * weightOf(col) / total
	}
	return out
}

func weightOf(col Column) float64 {
	if col.Weight <= 0 {
		return 1
	}
	return col.Weight
}

func wrapRow(pdf *gofpdf.Fpdf, widths []float64, cells []string, tr func(string) string) [][]string {
	out := make([][]string, len(widths))
	for i := range widths {
		value := ""
		if i < len(cells) {
			value = tr(cells[i])
		}
		if value == "" {
			out[i] = []string{""}
			continue
		}
		out[i] = wrapText(pdf, value, widths[i]-2*cellPadding-2*pdf.GetCellMargin())
	}
	return out
}

// wrapText breaks already translated single-byte text into lines no wider
// than width. Words longer than a line are cut at byte boundaries.
func wrapText(pdf *gofpdf.Fpdf, text string, width float64) []string {
	var lines []string
	line := ""
	for _, word := range strings.Split(text, " ") {
		if word == "" {
			continue
		}
		candidate := word
		if line != "" {
			candidate = line + " " + word
		}
		if pdf.GetStringWidth(candidate) <= width {
			line = candidate
			continue
		}
		if line != "" {
			lines = append(lines, line)
		}
		line = word
		for len(line) > 1 && pdf.GetStringWidth(line) > width {
			cut := len(line) - 1
			for cut > 1 && pdf.GetStringWidth(line[:cut]) > width {
				cut--
			}
			lines = append(lines, line[:cut])
			line = line[cut:]
		}
	}
	if line != "" || len(lines) == 0 {
		lines = append(lines, line)
	}
	return lines
}

func rowHeight(lines [][]string) float64 {
	most := 1
	for _, cell := range lines {
		if len(cell) > most {
			most = len(cell)
		}
	}
	return float64(most)*lineHeight + 2*cellPadding
}

func drawRow(pdf *gofpdf.Fpdf, widths []float64, lines [][]string) {
	h := rowHeight(lines)
	x, y := pdf.GetXY()
	for i, w := range widths {
		pdf.Rect(x, y, w, h, "D")
		for n, line := range lines[i] {
			pdf.SetXY(x+cellPadding, y+cellPadding+float64(n)*lineHeight)
			pdf.CellFormat(w-2*cellPadding, lineHeight, line, "", 0, "L", false, 0, "")
		}
		x += w
	}
	pdf.SetXY(pageMargin, y+h)
}
