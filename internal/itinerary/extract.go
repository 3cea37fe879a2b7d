// README: Extraction and validation of itinerary JSON from raw model output.
package itinerary

import (
	"encoding/json"
	"fmt"
	"strings"

	"roady/internal/trip"
)

// previewLen bounds how much of an unparsable reply ends up in error
// messages and logs.
const previewLen = 160

// Extract converts raw generation output into a validated Itinerary. The
// backend is instructed to emit bare JSON, but replies wrapped in markdown
// fences or padded with prose are tolerated: fences are stripped and the
// outermost JSON object is located before parsing. Field values pass through
// unchanged — totals are never recomputed here.
func Extract(raw string) (trip.Itinerary, error) {
	text := stripFences(raw)

	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start == -1 || end == -1 || end < start {
		return trip.Itinerary{}, fmt.Errorf("%w: no JSON object found (raw: %s)", ErrParse, preview(text))
	}
	text = text[start : end+1]

	var itin trip.Itinerary
	if err := json.Unmarshal([]byte(text), &itin); err != nil {
		return trip.Itinerary{}, fmt.Errorf("%w: %v (raw: %s)", ErrParse, err, preview(text))
	}

	if err := checkShape([]byte(text)); err != nil {
		return trip.Itinerary{}, err
	}
	return itin, nil
}

// checkShape verifies the minimum structure the rest of the system relies
// on: a non-empty days array whose entries each carry a day number, and a
// present totalEstimatedCost. Optional fields may be absent.
func checkShape(data []byte) error {
	var probe struct {
		Days []struct {
			Day *int `json:"day"`
		} `json:"days"`
		TotalEstimatedCost *float64 `json:"totalEstimatedCost"`
	}
	// Cannot fail: data already parsed as the same object above.
	if err := json.Unmarshal(data, &probe); err != nil {
		return fmt.Errorf("%w: %v", ErrParse, err)
	}

	if len(probe.Days) == 0 {
		return fmt.Errorf("%w: days must be a non-empty array", ErrSchema)
	}
	for i, d := range probe.Days {
		if d.Day == nil {
			return fmt.Errorf("%w: days[%d] has no day number", ErrSchema, i)
		}
	}
	if probe.TotalEstimatedCost == nil {
		return fmt.Errorf("%w: totalEstimatedCost missing", ErrSchema)
	}
	return nil
}

// stripFences removes markdown code-fence markers (```json and bare ```)
// anywhere in the text.
func stripFences(s string) string {
	s = strings.ReplaceAll(s, "```json", "")
	s = strings.ReplaceAll(s, "```", "")
	return strings.TrimSpace(s)
}

func preview(s string) string {
	if len(s) > previewLen {
		return s[:previewLen] + "..."
	}
	return s
}
