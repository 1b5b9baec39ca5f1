package services

import (
	"bytes"
	"fmt"
	"net/url"

	"github.com/phpdave11/gofpdf"
	qrcode "github.com/skip2/go-qrcode"

	"trailmix/internal/models/response_models"
)

type ShareInfo struct {
	ShareURL    string `json:"share_url"`
	Text        string `json:"text"`
	TwitterURL  string `json:"twitter_url"`
	FacebookURL string `json:"facebook_url"`
	MailtoURL   string `json:"mailto_url"`
	QRImagePath string `json:"qr_image_path"`
}

type ExportServiceInterface interface {
	RenderPDF(trip *response_models.TripResponse) ([]byte, error)
	ShareLinks(trip *response_models.TripResponse) ShareInfo
	ShareQRCode(tripId string) ([]byte, error)
}

type ExportService struct {
	baseURL string
}

func NewExportService(baseURL string) ExportServiceInterface {
	return &ExportService{baseURL: baseURL}
}

// RenderPDF lays out the whole itinerary: trip header, one section per day
// with its stop rows, and the trip total.
func (s *ExportService) RenderPDF(trip *response_models.TripResponse) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(fmt.Sprintf("%s Itinerary", trip.City), true)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 20)
	pdf.CellFormat(0, 12, fmt.Sprintf("%s Itinerary", trip.City), "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(0, 7, fmt.Sprintf("%s to %s", trip.StartDate, trip.EndDate), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 7, fmt.Sprintf("Budget: %s  |  Pace: %s", trip.BudgetBand, trip.Pace), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	var tripTotal float64
	for _, day := range trip.Days {
		pdf.SetFont("Helvetica", "B", 14)
		pdf.SetFillColor(240, 240, 240)
		pdf.CellFormat(0, 9, fmt.Sprintf("Day %d: %s", day.DayIndex, day.Theme), "", 1, "L", true, 0, "")
		pdf.Ln(1)

		for _, stop := range day.Stops {
			pdf.SetFont("Helvetica", "B", 11)
			pdf.CellFormat(18, 6, stop.StartTime, "", 0, "L", false, 0, "")
			pdf.CellFormat(0, 6, stop.Title, "", 1, "L", false, 0, "")

			pdf.SetFont("Helvetica", "", 10)
			detail := fmt.Sprintf("%s  |  %s  |  %s",
				stop.Address, formatDuration(stop.DurationMins), formatCost(stop.EstCost))
			pdf.CellFormat(18, 5, "", "", 0, "L", false, 0, "")
			pdf.CellFormat(0, 5, detail, "", 1, "L", false, 0, "")
			pdf.Ln(1)
		}

		pdf.SetFont("Helvetica", "I", 10)
		pdf.CellFormat(0, 6, fmt.Sprintf("Day total: %s", formatCost(day.TotalCost)), "", 1, "R", false, 0, "")
		pdf.Ln(3)
		tripTotal += day.TotalCost
	}

	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 8, fmt.Sprintf("Estimated trip total: %s", formatCost(tripTotal)), "T", 1, "R", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (s *ExportService) ShareLinks(trip *response_models.TripResponse) ShareInfo {
	shareURL := s.shareURL(trip.ID)
	text := fmt.Sprintf("Check out my %s itinerary created with TrailMix!", trip.City)

	encodedURL := url.QueryEscape(shareURL)
	encodedText := url.QueryEscape(text)

	return ShareInfo{
		ShareURL:    shareURL,
		Text:        text,
		TwitterURL:  fmt.Sprintf("https://twitter.com/intent/tweet?text=%s&url=%s", encodedText, encodedURL),
		FacebookURL: fmt.Sprintf("https://www.facebook.com/sharer/sharer.php?u=%s", encodedURL),
		MailtoURL: fmt.Sprintf("mailto:?subject=%s&body=%s%%0A%%0A%s",
			url.QueryEscape(fmt.Sprintf("My %s Travel Itinerary", trip.City)), encodedText, encodedURL),
		QRImagePath: fmt.Sprintf("/trips/%s/share/qr", trip.ID),
	}
}

func (s *ExportService) ShareQRCode(tripId string) ([]byte, error) {
	return qrcode.Encode(s.shareURL(tripId), qrcode.Medium, 256)
}

func (s *ExportService) shareURL(tripId string) string {
	return fmt.Sprintf("%s/trip/%s", s.baseURL, tripId)
}

func formatDuration(mins int) string {
	if mins < 60 {
		return fmt.Sprintf("%dmin", mins)
	}
	hours := mins / 60
	rest := mins % 60
	if rest > 0 {
		return fmt.Sprintf("%dh %dmin", hours, rest)
	}
	return fmt.Sprintf("%dh", hours)
}

func formatCost(cost float64) string {
	if cost <= 0 {
		return "Free"
	}
	return fmt.Sprintf("$%.0f", cost)
}
