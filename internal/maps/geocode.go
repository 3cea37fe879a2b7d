// README: Geocoding of itinerary location names via Google Maps.
package maps

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"googlemaps.github.io/maps"

	"roady/internal/trip"
)

// GeocodeService resolves location names to coordinates for map display.
// Failures here degrade the map only; itinerary data never depends on it.
type GeocodeService struct {
	client *maps.Client
}

// NewGeocodeService creates a GeocodeService with the given API key.
func NewGeocodeService(apiKey string) (*GeocodeService, error) {
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create maps client: %w", err)
	}
	return &GeocodeService{client: client}, nil
}

// Coordinates is a geocoded point.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Locate geocodes a free-text location name to coordinates.
func (s *GeocodeService) Locate(ctx context.Context, name string) (Coordinates, error) {
	results, err := s.client.Geocode(ctx, &maps.GeocodingRequest{Address: name})
	if err != nil {
		return Coordinates{}, fmt.Errorf("maps api error: %w", err)
	}
	if len(results) == 0 {
		return Coordinates{}, fmt.Errorf("no match for %q", name)
	}
	loc := results[0].Geometry.Location
	return Coordinates{Lat: loc.Lat, Lng: loc.Lng}, nil
}

// dayTitle matches titles like "Day 3: Jaipur to Udaipur".
var dayTitle = regexp.MustCompile(`^Day \d+:\s*(.+?)\s+to\s+(.+)$`)

// StopNames extracts the distinct place names mentioned in day titles, in
// itinerary order. Titles that don't follow the "Day N: X to Y" pattern are
// skipped.
func StopNames(itin trip.Itinerary) []string {
	seen := make(map[string]bool)
	var names []string
	add := func(name string) {
		name = strings.TrimSpace(name)
		if name == "" || seen[name] {
			return
		}
		seen[name] = true
		names = append(names, name)
	}

	for _, day := range itin.Days {
		m := dayTitle.FindStringSubmatch(day.Title)
		if m == nil {
			continue
		}
		add(m[1])
		add(m[2])
	}
	return names
}
