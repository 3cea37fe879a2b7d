// README: Deterministic prompt construction for itinerary generation.
package itinerary

import (
	"encoding/json"
	"fmt"
	"strings"

	"roady/internal/trip"
)

// outputSchema is the exact JSON shape the backend must reproduce. The
// extractor depends on the "return ONLY valid JSON" contract, so both prompt
// modes embed this block verbatim.
const outputSchema = `{
  "days": [
    {
      "day": 1,
      "title": "Day 1: [Departure City] to [Destination City]",
      "drivingDistance": "245 km",
      "drivingTime": "4.5 hours",
      "activities": [
        "Depart from [City] (8:00 AM)",
        "Stop at [Landmark] (1 hour)",
        "Lunch at [Location] (1 hour)",
        "Visit [Attraction] (2 hours)",
        "Check into hotel (6:00 PM)"
      ],
      "accommodation": "Mid-range hotel in [City]",
      "estimatedCost": 150
    }
  ],
  "totalEstimatedCost": 500,
  "budgetBreakdown": {
    "accommodation": 200,
    "food": 150,
    "activities": 100,
    "transport": 50
  },
  "budgetTips": [
    "Pack snacks and drinks to reduce meal costs",
    "Book accommodations in advance for better rates"
  ],
  "note": "Best time to visit is spring or fall. Book popular attractions in advance."
}`

// routeGuidance returns the mode-specific route planning requirements. One
// parameterized template replaces per-mode prompt variants.
func routeGuidance(mode trip.TransportMode) string {
	switch mode {
	case trip.ModeBike:
		return `   - Plan cycling-friendly routes and keep stages to 60-100 km per day
   - Estimate riding time at a relaxed touring pace with rest stops
   - Prefer quieter roads and dedicated cycle routes where available`
	case trip.ModeBus:
		return `   - Build the route around intercity bus connections and realistic timetables
   - Include transfer times and terminal locations in the schedule
   - Keep daily travel segments under 6 hours where possible`
	case trip.ModeTrain:
		return `   - Build the route around rail connections between the cities on the way
   - Name the stations used and allow buffer time for connections
   - Prefer daytime journeys so the scenery is part of the trip`
	case trip.ModeFlight:
		return `   - Use flights for the long legs and local transport at each stop
   - Account for airport transfer and check-in time in the daily schedule
   - Keep the number of flight segments to the minimum that fits the route`
	case trip.ModeMixed:
		return `   - Combine transport modes (drive, rail, bus) choosing the best fit per leg
   - State which mode each leg uses and its realistic duration
   - Keep total daily travel time under 6 hours including transfers`
	default: // car, rental_car
		return `   - Calculate realistic driving distances between each location (in kilometers)
   - Estimate actual driving time (in hours, considering rest stops)
   - Suggest logical stopping points based on 4-6 hours of driving per day
   - Consider scenic routes that match the traveler's interests
   - Focus on Indian road conditions, highways (NH), and state highways`
	}
}

// BuildPrompt renders the initial-generation instruction for req. It is a
// pure function of its input: the same request always yields the same text.
func BuildPrompt(req trip.Request) string {
	perPerson := int(req.Budget) / req.People

	var b strings.Builder
	fmt.Fprintf(&b, `Create a detailed, realistic day-by-day road trip itinerary with the following parameters:

TRIP DETAILS:
- Departure: %s
- Destination: %s
- Duration: %d days
- Number of People: %d
- Transport Mode: %s
- Total Budget: ₹%d INR (₹%d per person)
- Interests: %s

REQUIREMENTS - You MUST provide:

1. ROUTE PLANNING:
%s

2. DAILY ACTIVITIES:
   - Provide 3-7 specific activities per day with approximate durations
   - Format: "Activity name (duration)" e.g., "Visit Grand Canyon (3 hours)"
   - Include rest/meal breaks in the schedule
   - Match activities to stated interests
   - Mix free/low-cost activities with paid attractions

3. ACCOMMODATION:
   - Suggest specific types of lodging appropriate for the budget
   - Include city/town name where you'll stay
   - Scale room requirements to a group of %d
   - Estimate per-night costs

4. BUDGET BREAKDOWN:
   - Provide realistic costs in INR for the ENTIRE GROUP of %d people
   - Calculate costs for: accommodation (total for group), food (total for group), activities (total for group), transport (fuel/tolls/fares)
   - All costs should be scaled for %d people
   - Add a "budgetTips" field with 2-3 money-saving suggestions if total cost is within 10%% of budget
   - Remember: accommodation costs scale with room requirements, food scales per person, activities may have group discounts

5. PRACTICAL INFORMATION:
   - Best times to visit each location
   - Weather considerations for the route
   - Important notes (e.g., "Book accommodation in advance during peak season")

IMPORTANT: Return ONLY valid JSON in this EXACT format (no additional text):
%s

VALIDATION RULES:
- Total estimated cost should be close to (but can slightly exceed) the provided budget
- Travel distances and times must be realistic and achievable
- Activities must include time estimates
- Each day should have 3-7 activities
- Budget tips only needed if budget is tight or costs are near limit`,
		req.Departure,
		req.Destination,
		req.Days,
		req.People,
		req.TransportMode,
		int(req.Budget), perPerson,
		req.Interests,
		routeGuidance(req.TransportMode),
		req.People,
		req.People,
		req.People,
		outputSchema,
	)
	return b.String()
}

// BuildRefinementPrompt renders the instruction for editing an existing
// itinerary. The full conversation history is replayed as numbered context
// lines (original first) so the backend sees every prior turn; the current
// itinerary is serialized as-is, even if the caller handed over a malformed
// one.
func BuildRefinementPrompt(req trip.Request, current *trip.Itinerary, editRequest string, history []trip.ConversationEntry) string {
	perPerson := int(req.Budget) / req.People

	var historyContext strings.Builder
	if len(history) > 0 {
		historyContext.WriteString("\nCONVERSATION HISTORY:\n")
		for i, entry := range history {
			label := "Edit Request"
			if entry.Type == trip.EntryOriginal {
				label = "Original Request"
			}
			fmt.Fprintf(&historyContext, "%d. %s: %s\n", i+1, label, entry.Request)
		}
	}

	currentJSON, err := json.MarshalIndent(current, "", "  ")
	if err != nil {
		currentJSON = []byte("{}")
	}

	var b strings.Builder
	fmt.Fprintf(&b, `You are refining an existing road trip itinerary based on user feedback.
%s
CURRENT ITINERARY:
%s

LATEST EDIT REQUEST:
%s

ORIGINAL TRIP PARAMETERS:
- Departure: %s
- Destination: %s
- Days: %d
- Number of People: %d
- Transport Mode: %s
- Total Budget: ₹%d INR
- Budget Per Person: ₹%d INR
- Interests: %s

MODIFICATION REQUIREMENTS:
1. Apply the user's requested changes precisely
2. Maintain realistic trip logistics (travel times, distances)
3. Keep activities with time estimates in format: "Activity (duration)"
4. Update budget breakdown to reflect any cost changes
5. Preserve all elements not mentioned in the edit request
6. Keep the same number of days unless the edit explicitly changes it
7. If adding activities, include duration estimates
8. If budget changes significantly, update budgetTips accordingly

IMPORTANT: Return ONLY valid JSON in this EXACT format (no additional text):
%s

CONSISTENCY RULES:
- Maintain the same JSON structure as the current itinerary
- Keep days not touched by the edit request unchanged
- Update all affected fields (costs, times, activities) consistently
- Ensure total costs match the sum of daily costs`,
		historyContext.String(),
		currentJSON,
		editRequest,
		req.Departure,
		req.Destination,
		req.Days,
		req.People,
		req.TransportMode,
		int(req.Budget),
		perPerson,
		req.Interests,
		outputSchema,
	)
	return b.String()
}
