package reports

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/mwhitfield/wedding-website-backend/internal/rsvp"
)

func sampleRecords() []rsvp.RSVP {
	created := time.Date(2026, 3, 14, 18, 30, 0, 0, time.UTC)
	return []rsvp.RSVP{
		{
			Name:      "Alex Rivera",
			Email:     "alex@example.com",
			Phone:     "555-0100",
			Attending: true,
			Guests:    true,
			GuestName: "Sam Ortiz",
			DietaryRestrictions: rsvp.DietaryRestrictions{
				Vegan:      true,
				GlutenFree: true,
				Other:      "no cilantro",
			},
			Accommodations:     true,
			AccommodationsText: "Two nights near the venue",
			Song:               "September",
			Approved:           true,
			CreatedAt:          created,
		},
		{
			Name:      "Jordan Lee",
			Email:     "jordan@example.com",
			Phone:     "555-0101",
			Attending: false,
			CreatedAt: created.Add(time.Hour),
		},
	}
}

func TestExportUnsupportedFormat(t *testing.T) {
	e := NewExporter()
	if _, _, _, err := e.Export("xml", nil); err == nil {
		t.Fatal("expected an error for unsupported format")
	}
}

func TestExportCSV(t *testing.T) {
	e := NewExporter()
	data, filename, contentType, err := e.Export(FormatCSV, sampleRecords())
	if err != nil {
		t.Fatalf("export failed: %v", err)
	}
	if contentType != "text/csv" {
		t.Errorf("unexpected content type %q", contentType)
	}
	if !strings.HasPrefix(filename, "guest_list_") || !strings.HasSuffix(filename, ".csv") {
		t.Errorf("unexpected filename %q", filename)
	}

	rows, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	if err != nil {
		t.Fatalf("export is not parseable CSV: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected header + 2 rows, got %d", len(rows))
	}
	if rows[0][0] != "Name" || rows[0][3] != "Attending" {
		t.Errorf("unexpected header row: %v", rows[0])
	}

	alex := rows[1]
	if alex[0] != "Alex Rivera" || alex[3] != "Yes" || alex[5] != "Sam Ortiz" {
		t.Errorf("unexpected first record: %v", alex)
	}
	if alex[6] != "Vegan, Gluten-free, no cilantro" {
		t.Errorf("unexpected dietary summary: %q", alex[6])
	}
	if alex[7] != "Two nights near the venue" {
		t.Errorf("unexpected accommodations summary: %q", alex[7])
	}
	if alex[11] != "2026-03-14 18:30:00" {
		t.Errorf("unexpected timestamp: %q", alex[11])
	}

	jordan := rows[2]
	if jordan[3] != "No" || jordan[6] != "" || jordan[7] != "No" {
		t.Errorf("unexpected second record: %v", jordan)
	}
}

func TestExportCSVEmptyList(t *testing.T) {
	e := NewExporter()
	data, _, _, err := e.Export(FormatCSV, nil)
	if err != nil {
		t.Fatalf("export failed: %v", err)
	}
	rows, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	if err != nil || len(rows) != 1 {
		t.Fatalf("expected header-only CSV, got %v rows (err %v)", len(rows), err)
	}
}

func TestExportExcel(t *testing.T) {
	e := NewExporter()
	data, filename, contentType, err := e.Export(FormatExcel, sampleRecords())
	if err != nil {
		t.Fatalf("export failed: %v", err)
	}
	if contentType != "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet" {
		t.Errorf("unexpected content type %q", contentType)
	}
	if !strings.HasSuffix(filename, ".xlsx") {
		t.Errorf("unexpected filename %q", filename)
	}
	// xlsx is a zip container
	if len(data) < 4 || data[0] != 'P' || data[1] != 'K' {
		t.Errorf("output does not look like an xlsx file")
	}
}

func TestExportPDF(t *testing.T) {
	e := NewExporter()
	data, filename, contentType, err := e.Export(FormatPDF, sampleRecords())
	if err != nil {
		t.Fatalf("export failed: %v", err)
	}
	if contentType != "application/pdf" {
		t.Errorf("unexpected content type %q", contentType)
	}
	if !strings.HasSuffix(filename, ".pdf") {
		t.Errorf("unexpected filename %q", filename)
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Errorf("output does not look like a PDF file")
	}
}

func TestDietarySummary(t *testing.T) {
	tests := []struct {
		name string
		in   rsvp.DietaryRestrictions
		want string
	}{
		{"empty", rsvp.DietaryRestrictions{}, ""},
		{"none flag", rsvp.DietaryRestrictions{None: true}, "None"},
		{"single", rsvp.DietaryRestrictions{Vegetarian: true}, "Vegetarian"},
		{"multiple", rsvp.DietaryRestrictions{NutAllergy: true, ShellfishAllergy: true}, "Nut allergy, Shellfish allergy"},
		{"other only", rsvp.DietaryRestrictions{Other: "kosher"}, "kosher"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := dietarySummary(tt.in); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}
