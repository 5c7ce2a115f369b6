package reports

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/xuri/excelize/v2"

	"github.com/mwhitfield/wedding-website-backend/internal/rsvp"
)

const (
	FormatCSV   = "csv"
	FormatExcel = "excel"
	FormatPDF   = "pdf"
)

// Exporter renders the guest list in a downloadable format. Returns the file
// bytes, a suggested filename, and the content type.
type Exporter interface {
	Export(format string, records []rsvp.RSVP) ([]byte, string, string, error)
}

type exporter struct{}

func NewExporter() Exporter {
	return &exporter{}
}

func (e *exporter) Export(format string, records []rsvp.RSVP) ([]byte, string, string, error) {
	timestamp := time.Now().Format("20060102_150405")

	switch format {
	case FormatCSV:
		return e.exportCSV(timestamp, records)
	case FormatExcel:
		return e.exportExcel(timestamp, records)
	case FormatPDF:
		return e.exportPDF(timestamp, records)
	default:
		return nil, "", "", fmt.Errorf("unsupported export format: %s", format)
	}
}

func (e *exporter) exportCSV(timestamp string, records []rsvp.RSVP) ([]byte, string, string, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	headers := []string{"Name", "Email", "Phone", "Attending", "Plus One", "Guest Name", "Dietary", "Accommodations", "Song", "Message", "Approved", "Submitted At"}
	if err := writer.Write(headers); err != nil {
		return nil, "", "", err
	}

	for _, r := range records {
		record := []string{
			r.Name,
			r.Email,
			r.Phone,
			yesNo(r.Attending),
			yesNo(r.Guests),
			r.GuestName,
			dietarySummary(r.DietaryRestrictions),
			accommodationsSummary(r),
			r.Song,
			r.Message,
			yesNo(r.Approved),
			r.CreatedAt.Format("2006-01-02 15:04:05"),
		}
		if err := writer.Write(record); err != nil {
			return nil, "", "", err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, "", "", err
	}

	filename := fmt.Sprintf("guest_list_%s.csv", timestamp)
	return buf.Bytes(), filename, "text/csv", nil
}

func (e *exporter) exportExcel(timestamp string, records []rsvp.RSVP) ([]byte, string, string, error) {
	f := excelize.NewFile()
	sheetName := "Guest List"
	f.SetSheetName("Sheet1", sheetName)

	headers := []string{"Name", "Email", "Phone", "Attending", "Plus One", "Guest Name", "Dietary", "Accommodations", "Song", "Message", "Approved", "Submitted At"}
	for i, header := range headers {
		cell := fmt.Sprintf("%c1", 'A'+i)
		f.SetCellValue(sheetName, cell, header)
	}

	for i, r := range records {
		row := i + 2
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), r.Name)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), r.Email)
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), r.Phone)
		f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), yesNo(r.Attending))
		f.SetCellValue(sheetName, fmt.Sprintf("E%d", row), yesNo(r.Guests))
		f.SetCellValue(sheetName, fmt.Sprintf("F%d", row), r.GuestName)
		f.SetCellValue(sheetName, fmt.Sprintf("G%d", row), dietarySummary(r.DietaryRestrictions))
		f.SetCellValue(sheetName, fmt.Sprintf("H%d", row), accommodationsSummary(r))
		f.SetCellValue(sheetName, fmt.Sprintf("I%d", row), r.Song)
		f.SetCellValue(sheetName, fmt.Sprintf("J%d", row), r.Message)
		f.SetCellValue(sheetName, fmt.Sprintf("K%d", row), yesNo(r.Approved))
		f.SetCellValue(sheetName, fmt.Sprintf("L%d", row), r.CreatedAt.Format("2006-01-02 15:04:05"))
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, "", "", err
	}

	filename := fmt.Sprintf("guest_list_%s.xlsx", timestamp)
	return buf.Bytes(), filename, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", nil
}

func (e *exporter) exportPDF(timestamp string, records []rsvp.RSVP) ([]byte, string, string, error) {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(40, 10, "Wedding Guest List")
	pdf.Ln(10)

	pdf.SetFont("Arial", "B", 10)
	headers := []string{"Name", "Email", "Phone", "Attending", "Plus One", "Guest Name", "Dietary", "Approved", "Submitted"}
	widths := []float64{38, 50, 28, 20, 18, 32, 42, 18, 24}

	for i, h := range headers {
		pdf.CellFormat(widths[i], 7, h, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 8)
	for _, r := range records {
		pdf.CellFormat(widths[0], 6, r.Name, "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[1], 6, r.Email, "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[2], 6, r.Phone, "1", 0, "C", false, 0, "")
		pdf.CellFormat(widths[3], 6, yesNo(r.Attending), "1", 0, "C", false, 0, "")
		pdf.CellFormat(widths[4], 6, yesNo(r.Guests), "1", 0, "C", false, 0, "")
		pdf.CellFormat(widths[5], 6, r.GuestName, "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[6], 6, dietarySummary(r.DietaryRestrictions), "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[7], 6, yesNo(r.Approved), "1", 0, "C", false, 0, "")
		pdf.CellFormat(widths[8], 6, r.CreatedAt.Format("2006-01-02"), "1", 0, "C", false, 0, "")
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", "", err
	}

	filename := fmt.Sprintf("guest_list_%s.pdf", timestamp)
	return buf.Bytes(), filename, "application/pdf", nil
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

// dietarySummary flattens the flag set into a readable comma list
func dietarySummary(d rsvp.DietaryRestrictions) string {
	var parts []string
	if d.None {
		parts = append(parts, "None")
	}
	if d.Vegetarian {
		parts = append(parts, "Vegetarian")
	}
	if d.Vegan {
		parts = append(parts, "Vegan")
	}
	if d.GlutenFree {
		parts = append(parts, "Gluten-free")
	}
	if d.NutAllergy {
		parts = append(parts, "Nut allergy")
	}
	if d.ShellfishAllergy {
		parts = append(parts, "Shellfish allergy")
	}
	if d.Other != "" {
		parts = append(parts, d.Other)
	}
	return strings.Join(parts, ", ")
}

func accommodationsSummary(r rsvp.RSVP) string {
	if !r.Accommodations {
		return "No"
	}
	if r.AccommodationsText == "" {
		return "Yes"
	}
	return r.AccommodationsText
}
