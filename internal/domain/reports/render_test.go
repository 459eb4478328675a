package reports

import (
	"bytes"
	"fmt"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"
)

func sampleTable(rows int) Table {
	table := Table{
		Title: "Departments",
		Sheet: "Departments",
		Columns: []Column{
			{Header: "Name", Weight: 2},
			{Header: "Description", Weight: 5},
		},
	}
	for i := 0; i < rows; i++ {
		table.Rows = append(table.Rows, []string{fmt.Sprintf("Dept %03d", i), "Café and other things"})
	}
	return table
}

func TestRenderSpreadsheet(t *testing.T) {
	body, err := RenderSpreadsheet(sampleTable(3))
	if err != nil {
		t.Fatalf("render error: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(body))
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}
	defer f.Close()

	if sheets := f.GetSheetList(); !reflect.DeepEqual(sheets, []string{"Departments"}) {
		t.Fatalf("unexpected sheets %v", sheets)
	}

	rows, err := f.GetRows("Departments")
	if err != nil {
		t.Fatalf("read rows: %v", err)
	}
	if len(rows) != 4 {
		t.Fatalf("expected header plus 3 rows, got %d", len(rows))
	}
	if !reflect.DeepEqual(rows[0], []string{"Name", "Description"}) {
		t.Fatalf("unexpected header %v", rows[0])
	}
	if rows[1][0] != "Dept 000" || rows[1][1] != "Café and other things" {
		t.Fatalf("unexpected first row %v", rows[1])
	}

	styleID, err := f.GetCellStyle("Departments", "A1")
	if err != nil {
		t.Fatalf("cell style: %v", err)
	}
	style, err := f.GetStyle(styleID)
	if err != nil {
		t.Fatalf("style: %v", err)
	}
	if style.Font == nil || !style.Font.Bold {
		t.Fatal("expected bold header")
	}

	width, err := f.GetColWidth("Departments", "B")
	if err != nil {
		t.Fatalf("col width: %v", err)
	}
	if width < float64(len("Café and other things")) {
		t.Fatalf("expected column sized to content, got %v", width)
	}
}

func TestRenderSpreadsheetHeaderOnly(t *testing.T) {
	body, err := RenderSpreadsheet(sampleTable(0))
	if err != nil {
		t.Fatalf("render error: %v", err)
	}
	f, err := excelize.OpenReader(bytes.NewReader(body))
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("Departments")
	if err != nil {
		t.Fatalf("read rows: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected header only, got %d rows", len(rows))
	}
}

func TestRenderDocument(t *testing.T) {
	body, err := RenderDocument(sampleTable(5), time.Date(2025, 1, 1, 9, 30, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("render error: %v", err)
	}
	if !bytes.HasPrefix(body, []byte("%PDF-")) {
		t.Fatalf("expected pdf header, got %q", body[:8])
	}
}

func TestRenderDocumentAccentedText(t *testing.T) {
	table := ProjectDepartments([]DepartmentRow{
		{Name: "Développement", Description: "Zoë's team, Señor Müller and the €uro desk"},
		{Name: "财务", Description: "Ωmega"},
	})

	body, err := RenderDocument(table, time.Date(2025, 1, 1, 9, 30, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("render error: %v", err)
	}
	if !bytes.HasPrefix(body, []byte("%PDF-")) {
		t.Fatal("expected pdf output")
	}
}

func TestWrapTextFitsWidth(t *testing.T) {
	pdf := layoutDocument(sampleTable(0), time.Now())
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	text := tr("Équipe café très longue description with many words and Überlongwordwithoutanybreaksatall")

	lines := wrapText(pdf, text, 60)
	if len(lines) < 2 {
		t.Fatalf("expected wrapping, got %q", lines)
	}
	for _, line := range lines {
		if len(line) > 1 && pdf.GetStringWidth(line) > 60 {
			t.Fatalf("line %q is wider than 60pt", line)
		}
	}
	joined := strings.ReplaceAll(strings.Join(lines, ""), " ", "")
	if joined != strings.ReplaceAll(text, " ", "") {
		t.Fatalf("wrapping lost characters: %q", lines)
	}
}

func TestRenderDocumentPaginates(t *testing.T) {
	at := time.Date(2025, 1, 1, 9, 30, 0, 0, time.UTC)

	short := layoutDocument(sampleTable(0), at)
	if short.Error() != nil {
		t.Fatalf("layout error: %v", short.Error())
	}
	if short.PageCount() != 1 {
		t.Fatalf("expected a single page for an empty table, got %d", short.PageCount())
	}

	long := layoutDocument(sampleTable(200), at)
	if long.Error() != nil {
		t.Fatalf("layout error: %v", long.Error())
	}
	if long.PageCount() < 2 {
		t.Fatalf("expected rows to overflow onto more pages, got %d", long.PageCount())
	}
}

func TestColumnWidthsFillPage(t *testing.T) {
	widths := columnWidths([]Column{{Weight: 1}, {Weight: 3}, {}}, 500)
	if widths[0] != 100 || widths[1] != 300 || widths[2] != 100 {
		t.Fatalf("unexpected widths %v", widths)
	}
}
