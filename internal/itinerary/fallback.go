// README: Deterministic offline itinerary used when no API key is configured.
package itinerary

import (
	"fmt"

	"roady/internal/trip"
)

// Budget breakdown proportions used by the offline generator. The live
// prompt suggests the same split to the backend, but only the fallback is
// bound to it.
const (
	shareAccommodation = 0.40
	shareFood          = 0.30
	shareActivities    = 0.20
	shareTransport     = 0.10
)

// Mock produces a schema-valid placeholder itinerary without calling any
// backend: one entry per requested day, the budget split evenly across days
// and 40/30/20/10 across categories (floor division throughout). It cannot
// fail on a validated request.
func Mock(req trip.Request) trip.Itinerary {
	costPerDay := float64(int(req.Budget) / req.Days)

	days := make([]trip.ItineraryDay, req.Days)
	for i := range days {
		n := i + 1
		days[i] = trip.ItineraryDay{
			Day:             n,
			Title:           mockTitle(req, n),
			DrivingDistance: "180 km",
			DrivingTime:     "3.5 hours",
			Activities:      mockActivities(req, n),
			Accommodation:   "Mid-range hotel or motel",
			EstimatedCost:   costPerDay,
		}
	}

	return trip.Itinerary{
		Days:               days,
		TotalEstimatedCost: req.Budget,
		BudgetBreakdown: &trip.BudgetBreakdown{
			Accommodation: floorShare(req.Budget, shareAccommodation),
			Food:          floorShare(req.Budget, shareFood),
			Activities:    floorShare(req.Budget, shareActivities),
			Transport:     floorShare(req.Budget, shareTransport),
		},
		BudgetTips: []string{
			"Pack snacks and drinks to save on roadside purchases",
			"Consider camping or budget motels to reduce accommodation costs",
			"Look for free attractions and scenic viewpoints",
		},
		Note: "This is a placeholder itinerary. Configure a Gemini API key for generated itineraries.",
	}
}

func floorShare(budget, share float64) float64 {
	return float64(int(budget * share))
}

func mockTitle(req trip.Request, day int) string {
	switch {
	case req.Days == 1:
		return fmt.Sprintf("Day 1: %s to %s", req.Departure, req.Destination)
	case day == 1:
		return fmt.Sprintf("Day 1: %s to First Stop", req.Departure)
	case day == req.Days:
		return fmt.Sprintf("Day %d: Arriving in %s", day, req.Destination)
	default:
		return fmt.Sprintf("Day %d: Continuing towards %s", day, req.Destination)
	}
}

func mockActivities(req trip.Request, day int) []string {
	if day == 1 {
		return []string{
			fmt.Sprintf("Depart from %s (8:00 AM)", req.Departure),
			"Coffee break and fuel stop (30 minutes)",
			"Lunch at scenic roadside location (1 hour)",
			fmt.Sprintf("Visit local attractions related to %s (2 hours)", req.Interests),
			"Check into accommodation (5:00 PM)",
		}
	}
	return []string{
		"Early morning departure (7:30 AM)",
		"Stop at interesting landmark (1.5 hours)",
		"Lunch in local town (1 hour)",
		"Visit scenic viewpoint for photos (45 minutes)",
		"Arrive at accommodation (6:00 PM)",
	}
}
