package trip

import (
	"errors"
	"testing"
)

func validForm() Form {
	return Form{
		Departure:     "Mumbai",
		Destination:   "Goa",
		Days:          "3",
		Budget:        "15000",
		People:        "2",
		Interests:     "beaches, food",
		TransportMode: "car",
	}
}

func TestParse_Valid(t *testing.T) {
	req, err := Parse(validForm())
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if req.Departure != "Mumbai" || req.Destination != "Goa" {
		t.Errorf("endpoints = %q → %q", req.Departure, req.Destination)
	}
	if req.Days != 3 || req.People != 2 || req.Budget != 15000 {
		t.Errorf("numbers = days %d, people %d, budget %v", req.Days, req.People, req.Budget)
	}
	if req.TransportMode != ModeCar {
		t.Errorf("mode = %q", req.TransportMode)
	}
}

func TestParse_DefaultsTransportMode(t *testing.T) {
	f := validForm()
	f.TransportMode = ""
	req, err := Parse(f)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if req.TransportMode != DefaultMode {
		t.Errorf("mode = %q, want %q", req.TransportMode, DefaultMode)
	}
}

func TestParse_TrimsWhitespace(t *testing.T) {
	f := validForm()
	f.Departure = "  Mumbai  "
	f.Days = " 3 "
	req, err := Parse(f)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if req.Departure != "Mumbai" {
		t.Errorf("departure = %q", req.Departure)
	}
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*Form)
		wantField string
	}{
		{"empty departure", func(f *Form) { f.Departure = "   " }, "departure"},
		{"empty destination", func(f *Form) { f.Destination = "" }, "destination"},
		{"days not a number", func(f *Form) { f.Days = "three" }, "days"},
		{"days too small", func(f *Form) { f.Days = "0" }, "days"},
		{"days too large", func(f *Form) { f.Days = "31" }, "days"},
		{"budget not a number", func(f *Form) { f.Budget = "lots" }, "budget"},
		{"budget negative", func(f *Form) { f.Budget = "-1" }, "budget"},
		{"people not a number", func(f *Form) { f.People = "" }, "people"},
		{"people too small", func(f *Form) { f.People = "0" }, "people"},
		{"people too large", func(f *Form) { f.People = "21" }, "people"},
		{"unknown transport mode", func(f *Form) { f.TransportMode = "teleport" }, "transportMode"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := validForm()
			tt.mutate(&f)
			_, err := Parse(f)
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("Parse() error = %v, want ValidationError", err)
			}
			if verr.Field != tt.wantField {
				t.Errorf("field = %q, want %q", verr.Field, tt.wantField)
			}
		})
	}
}

// Validation reports the first invalid field in declaration order.
func TestParse_FirstInvalidFieldWins(t *testing.T) {
	f := validForm()
	f.Departure = ""
	f.Days = "0"
	_, err := Parse(f)
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("Parse() error = %v, want ValidationError", err)
	}
	if verr.Field != "departure" {
		t.Errorf("field = %q, want departure", verr.Field)
	}
}

func TestParse_ZeroBudgetAllowed(t *testing.T) {
	f := validForm()
	f.Budget = "0"
	if _, err := Parse(f); err != nil {
		t.Errorf("Parse() error = %v, want nil", err)
	}
}
