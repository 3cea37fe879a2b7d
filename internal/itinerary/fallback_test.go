package itinerary

import (
	"strings"
	"testing"

	"roady/internal/trip"
)

// Scenario from the reference behavior: Mumbai→Goa, 2 days, ₹10000, 2 people.
func TestMock_ReferenceScenario(t *testing.T) {
	req := trip.Request{
		Departure:     "Mumbai",
		Destination:   "Goa",
		Days:          2,
		Budget:        10000,
		People:        2,
		TransportMode: trip.ModeCar,
	}
	itin := Mock(req)

	if len(itin.Days) != 2 {
		t.Fatalf("days = %d, want 2", len(itin.Days))
	}
	if itin.TotalEstimatedCost != 10000 {
		t.Errorf("total = %v, want 10000", itin.TotalEstimatedCost)
	}

	bd := itin.BudgetBreakdown
	if bd == nil {
		t.Fatal("breakdown missing")
	}
	if bd.Accommodation != 4000 || bd.Food != 3000 || bd.Activities != 2000 || bd.Transport != 1000 {
		t.Errorf("breakdown = %+v, want 4000/3000/2000/1000", *bd)
	}
}

// The mock must scale to the requested day count, not a fixed template size.
func TestMock_OneEntryPerRequestedDay(t *testing.T) {
	for _, days := range []int{1, 2, 5, 14, 30} {
		req := trip.Request{
			Departure: "Delhi", Destination: "Leh",
			Days: days, Budget: 60000, People: 4,
			TransportMode: trip.ModeCar,
		}
		itin := Mock(req)
		if len(itin.Days) != days {
			t.Errorf("days=%d: got %d entries", days, len(itin.Days))
			continue
		}
		for i, d := range itin.Days {
			if d.Day != i+1 {
				t.Errorf("days=%d: entry %d has day number %d", days, i, d.Day)
			}
			if len(d.Activities) == 0 {
				t.Errorf("days=%d: entry %d has no activities", days, i)
			}
		}
	}
}

// Floor division may under-allocate, but the four categories must stay
// within 3 currency units of the total.
func TestMock_BreakdownSumsCloseToBudget(t *testing.T) {
	for _, budget := range []float64{10000, 9999, 7, 12345, 100001} {
		req := trip.Request{
			Departure: "A", Destination: "B",
			Days: 3, Budget: budget, People: 2,
			TransportMode: trip.ModeCar,
		}
		bd := Mock(req).BudgetBreakdown
		sum := bd.Accommodation + bd.Food + bd.Activities + bd.Transport
		if sum > budget || budget-sum > 3 {
			t.Errorf("budget %v: categories sum to %v", budget, sum)
		}
	}
}

func TestMock_MentionsPlacesAndPlaceholderNote(t *testing.T) {
	req := trip.Request{
		Departure: "Mumbai", Destination: "Goa",
		Days: 3, Budget: 9000, People: 2,
		Interests:     "beaches",
		TransportMode: trip.ModeCar,
	}
	itin := Mock(req)

	if !strings.Contains(itin.Days[0].Title, "Mumbai") {
		t.Errorf("first day title = %q", itin.Days[0].Title)
	}
	if !strings.Contains(itin.Days[2].Title, "Goa") {
		t.Errorf("last day title = %q", itin.Days[2].Title)
	}
	if !strings.Contains(itin.Note, "placeholder") {
		t.Errorf("note = %q, want placeholder disclaimer", itin.Note)
	}
}

func TestMock_SplitsCostPerDay(t *testing.T) {
	req := trip.Request{
		Departure: "A", Destination: "B",
		Days: 3, Budget: 10000, People: 2,
		TransportMode: trip.ModeCar,
	}
	itin := Mock(req)
	for _, d := range itin.Days {
		if d.EstimatedCost != 3333 { // floor(10000/3)
			t.Errorf("day %d cost = %v, want 3333", d.Day, d.EstimatedCost)
		}
	}
}
