package pdf

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/phpdave11/gofpdf"

	"github.com/broccolitours/itinerary-api/internal/types"
)

// Mode selects how much of the itinerary ends up in the document.
type Mode string

const (
	// ModeDetailed renders every day with stops, activities and tips.
	ModeDetailed Mode = "detailed"
	// ModeBrochure renders a one-page overview: title, summary, day titles.
	ModeBrochure Mode = "brochure"
)

// ParseMode maps a query value to a Mode, defaulting to detailed.
func ParseMode(s string) Mode {
	if strings.EqualFold(s, string(ModeBrochure)) {
		return ModeBrochure
	}
	return ModeDetailed
}

// Generate renders the itinerary as a PDF document.
func Generate(itin *types.Itinerary, mode Mode) ([]byte, error) {
	doc := gofpdf.New("P", "mm", "A4", "")
	// Provider text is UTF-8; the core fonts are cp1252.
	tr := doc.UnicodeTranslatorFromDescriptor("")
	doc.SetTitle(itin.Title, true)
	doc.AddPage()

	doc.SetFont("Helvetica", "B", 20)
	doc.MultiCell(0, 10, tr(itin.Title), "", "L", false)

	doc.SetFont("Helvetica", "", 10)
	doc.SetTextColor(90, 90, 90)
	doc.MultiCell(0, 5, tr(fmt.Sprintf("Broccoli Tours | %s | generated %s",
		periodLabel(itin.Period), itin.GeneratedAtUTC.Format("2006-01-02"))), "", "L", false)
	doc.Ln(4)

	doc.SetTextColor(0, 0, 0)
	if itin.Summary != "" {
		doc.SetFont("Helvetica", "I", 11)
		doc.MultiCell(0, 6, tr(itin.Summary), "", "L", false)
		doc.Ln(4)
	}

	switch mode {
	case ModeBrochure:
		writeBrochure(doc, tr, itin)
	default:
		writeDetailed(doc, tr, itin)
	}

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func writeBrochure(doc *gofpdf.Fpdf, tr func(string) string, itin *types.Itinerary) {
	doc.SetFont("Helvetica", "B", 12)
	doc.CellFormat(0, 8, "Route at a glance", "", 1, "L", false, 0, "")
	doc.SetFont("Helvetica", "", 11)
	for _, day := range itin.Days {
		doc.CellFormat(0, 6, tr(fmt.Sprintf("Day %d: %s", day.DayNumber, day.Title)), "", 1, "L", false, 0, "")
	}
}

func writeDetailed(doc *gofpdf.Fpdf, tr func(string) string, itin *types.Itinerary) {
	for _, day := range itin.Days {
		doc.SetFont("Helvetica", "B", 13)
		header := fmt.Sprintf("Day %d: %s", day.DayNumber, day.Title)
		if day.Date != nil {
			header += fmt.Sprintf(" (%s)", day.Date.String())
		}
		doc.MultiCell(0, 7, tr(header), "", "L", false)

		doc.SetFont("Helvetica", "", 10)
		for _, stop := range day.Stops {
			line := fmt.Sprintf("  * [%s] %s (%.4f, %.4f)", stop.Type, stop.Name, stop.Latitude, stop.Longitude)
			doc.MultiCell(0, 5, tr(line), "", "L", false)
			if stop.Description != "" {
				doc.SetTextColor(90, 90, 90)
				doc.MultiCell(0, 5, tr("      "+stop.Description), "", "L", false)
				doc.SetTextColor(0, 0, 0)
			}
		}
		for _, act := range day.Activities {
			doc.MultiCell(0, 5, tr("  - "+act), "", "L", false)
		}
		if day.DriveHoursEstimate != nil {
			doc.MultiCell(0, 5, fmt.Sprintf("  Driving: ~%.1f h", *day.DriveHoursEstimate), "", "L", false)
		}
		if day.OvernightStopRecommendation != nil {
			doc.MultiCell(0, 5, tr("  Overnight: "+*day.OvernightStopRecommendation), "", "L", false)
		}
		doc.Ln(3)
	}

	if len(itin.Tips) > 0 {
		doc.SetFont("Helvetica", "B", 12)
		doc.CellFormat(0, 8, "Tips", "", 1, "L", false, 0, "")
		doc.SetFont("Helvetica", "", 10)
		for _, tip := range itin.Tips {
			doc.MultiCell(0, 5, tr("  * "+tip), "", "L", false)
		}
	}
}

func periodLabel(p types.TravelPeriod) string {
	switch p.Type {
	case types.PeriodFixedDates:
		if p.StartDate != nil && p.EndDate != nil {
			return fmt.Sprintf("%s to %s", p.StartDate.String(), p.EndDate.String())
		}
		return "fixed dates"
	case types.PeriodMonth:
		if p.Month != nil && p.Year != nil {
			return fmt.Sprintf("%04d-%02d", *p.Year, *p.Month)
		}
		return "monthly trip"
	default:
		return "best period"
	}
}
