// README: Pure itinerary export formatters (JSON, plain text, HTML).
package export

import (
	"encoding/json"
	"fmt"
	"html"
	"strings"
	"time"

	"roady/internal/trip"
)

// Document wraps an itinerary with the trip endpoints for the JSON export.
type Document struct {
	Trip struct {
		Departure   string `json:"departure"`
		Destination string `json:"destination"`
		GeneratedAt string `json:"generatedAt"`
	} `json:"trip"`
	Itinerary trip.Itinerary `json:"itinerary"`
}

// AsJSON renders the itinerary as an indented JSON document.
func AsJSON(itin trip.Itinerary, departure, destination string, now time.Time) ([]byte, error) {
	var doc Document
	doc.Trip.Departure = departure
	doc.Trip.Destination = destination
	doc.Trip.GeneratedAt = now.UTC().Format(time.RFC3339)
	doc.Itinerary = itin
	return json.MarshalIndent(doc, "", "  ")
}

// AsText renders the itinerary as a printable plain-text document.
func AsText(itin trip.Itinerary, departure, destination string, now time.Time) string {
	rule := strings.Repeat("=", 60)
	thin := strings.Repeat("-", 60)

	var b strings.Builder
	fmt.Fprintf(&b, "ROAD TRIP ITINERARY\n%s to %s\nGenerated: %s\n%s\n\n",
		departure, destination, now.Format("2006-01-02 15:04"), rule)

	if itin.Note != "" {
		fmt.Fprintf(&b, "IMPORTANT NOTES:\n%s\n\n%s\n\n", itin.Note, rule)
	}

	for _, day := range itin.Days {
		fmt.Fprintf(&b, "DAY %d: %s\n%s\n", day.Day, day.Title, thin)
		if day.DrivingDistance != "" {
			fmt.Fprintf(&b, "Distance: %s", day.DrivingDistance)
			if day.DrivingTime != "" {
				fmt.Fprintf(&b, " (%s)", day.DrivingTime)
			}
			b.WriteString("\n")
		}
		b.WriteString("Activities:\n")
		for _, act := range day.Activities {
			fmt.Fprintf(&b, "  - %s\n", act)
		}
		fmt.Fprintf(&b, "Accommodation: %s\n", day.Accommodation)
		fmt.Fprintf(&b, "Estimated Cost: %.0f\n\n", day.EstimatedCost)
	}

	fmt.Fprintf(&b, "%s\nTOTAL ESTIMATED COST: %.0f\n", rule, itin.TotalEstimatedCost)

	if itin.BudgetBreakdown != nil {
		bd := itin.BudgetBreakdown
		fmt.Fprintf(&b, "\nBUDGET BREAKDOWN:\n")
		fmt.Fprintf(&b, "  Accommodation: %.0f\n", bd.Accommodation)
		fmt.Fprintf(&b, "  Food:          %.0f\n", bd.Food)
		fmt.Fprintf(&b, "  Activities:    %.0f\n", bd.Activities)
		fmt.Fprintf(&b, "  Transport:     %.0f\n", bd.Transport)
	}

	if len(itin.BudgetTips) > 0 {
		b.WriteString("\nBUDGET TIPS:\n")
		for _, tip := range itin.BudgetTips {
			fmt.Fprintf(&b, "  * %s\n", tip)
		}
	}
	return b.String()
}

// AsHTML renders the itinerary as a standalone HTML page.
func AsHTML(itin trip.Itinerary, departure, destination string, now time.Time) string {
	esc := html.EscapeString

	var b strings.Builder
	fmt.Fprintf(&b, "<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n<title>%s to %s</title>\n</head>\n<body>\n",
		esc(departure), esc(destination))
	fmt.Fprintf(&b, "<h1>Road Trip Itinerary</h1>\n<h2>%s to %s</h2>\n<p>Generated: %s</p>\n",
		esc(departure), esc(destination), now.Format("2006-01-02 15:04"))

	if itin.Note != "" {
		fmt.Fprintf(&b, "<p><strong>Notes:</strong> %s</p>\n", esc(itin.Note))
	}

	for _, day := range itin.Days {
		fmt.Fprintf(&b, "<h3>Day %d: %s</h3>\n", day.Day, esc(day.Title))
		if day.DrivingDistance != "" {
			fmt.Fprintf(&b, "<p>%s", esc(day.DrivingDistance))
			if day.DrivingTime != "" {
				fmt.Fprintf(&b, " &mdash; %s", esc(day.DrivingTime))
			}
			b.WriteString("</p>\n")
		}
		b.WriteString("<ul>\n")
		for _, act := range day.Activities {
			fmt.Fprintf(&b, "<li>%s</li>\n", esc(act))
		}
		b.WriteString("</ul>\n")
		fmt.Fprintf(&b, "<p>Accommodation: %s<br>Estimated cost: %.0f</p>\n",
			esc(day.Accommodation), day.EstimatedCost)
	}

	fmt.Fprintf(&b, "<p><strong>Total estimated cost: %.0f</strong></p>\n", itin.TotalEstimatedCost)

	if itin.BudgetBreakdown != nil {
		bd := itin.BudgetBreakdown
		fmt.Fprintf(&b, "<h3>Budget Breakdown</h3>\n<ul>\n<li>Accommodation: %.0f</li>\n<li>Food: %.0f</li>\n<li>Activities: %.0f</li>\n<li>Transport: %.0f</li>\n</ul>\n",
			bd.Accommodation, bd.Food, bd.Activities, bd.Transport)
	}

	if len(itin.BudgetTips) > 0 {
		b.WriteString("<h3>Budget Tips</h3>\n<ul>\n")
		for _, tip := range itin.BudgetTips {
			fmt.Fprintf(&b, "<li>%s</li>\n", esc(tip))
		}
		b.WriteString("</ul>\n")
	}

	b.WriteString("</body>\n</html>\n")
	return b.String()
}
