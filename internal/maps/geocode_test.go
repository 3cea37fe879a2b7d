package maps

import (
	"reflect"
	"testing"

	"roady/internal/trip"
)

func TestStopNames(t *testing.T) {
	tests := []struct {
		name   string
		titles []string
		want   []string
	}{
		{
			name:   "simple route",
			titles: []string{"Day 1: Mumbai to Pune", "Day 2: Pune to Goa"},
			want:   []string{"Mumbai", "Pune", "Goa"},
		},
		{
			name:   "multi-word places",
			titles: []string{"Day 1: New Delhi to Agra", "Day 2: Agra to Jaipur City"},
			want:   []string{"New Delhi", "Agra", "Jaipur City"},
		},
		{
			name:   "non-matching titles skipped",
			titles: []string{"Day 1: Exploring the coast", "Day 2: Pune to Goa"},
			want:   []string{"Pune", "Goa"},
		},
		{
			name:   "no matches",
			titles: []string{"Rest day", "Beach day"},
			want:   nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			itin := trip.Itinerary{}
			for i, title := range tt.titles {
				itin.Days = append(itin.Days, trip.ItineraryDay{Day: i + 1, Title: title})
			}
			got := StopNames(itin)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("StopNames() = %v, want %v", got, tt.want)
			}
		})
	}
}
