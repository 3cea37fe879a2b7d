// README: Form coercion and validation for trip requests.
package trip

import (
	"fmt"
	"strconv"
	"strings"
)

// Form carries the raw string-typed parameters exactly as the client sends
// them. Numeric coercion happens in Parse, not at the transport layer.
type Form struct {
	Departure     string `json:"departure"`
	Destination   string `json:"destination"`
	Days          string `json:"days"`
	Budget        string `json:"budget"`
	People        string `json:"people"`
	Interests     string `json:"interests"`
	TransportMode string `json:"transportMode"`
}

// ValidationError reports the first form field that failed validation.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func invalid(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// Parse coerces and validates a raw form into a Request. Fields are checked
// in declaration order and the first failure wins. No side effects.
func Parse(f Form) (Request, error) {
	var req Request

	req.Departure = strings.TrimSpace(f.Departure)
	if req.Departure == "" {
		return Request{}, invalid("departure", "must not be empty")
	}

	req.Destination = strings.TrimSpace(f.Destination)
	if req.Destination == "" {
		return Request{}, invalid("destination", "must not be empty")
	}

	days, err := strconv.Atoi(strings.TrimSpace(f.Days))
	if err != nil {
		return Request{}, invalid("days", "must be an integer")
	}
	if days < MinDays || days > MaxDays {
		return Request{}, invalid("days", fmt.Sprintf("must be between %d and %d", MinDays, MaxDays))
	}
	req.Days = days

	budget, err := strconv.ParseFloat(strings.TrimSpace(f.Budget), 64)
	if err != nil {
		return Request{}, invalid("budget", "must be a number")
	}
	if budget < 0 {
		return Request{}, invalid("budget", "must not be negative")
	}
	req.Budget = budget

	people, err := strconv.Atoi(strings.TrimSpace(f.People))
	if err != nil {
		return Request{}, invalid("people", "must be an integer")
	}
	if people < MinPeople || people > MaxPeople {
		return Request{}, invalid("people", fmt.Sprintf("must be between %d and %d", MinPeople, MaxPeople))
	}
	req.People = people

	req.Interests = strings.TrimSpace(f.Interests)

	mode := TransportMode(strings.TrimSpace(f.TransportMode))
	if mode == "" {
		mode = DefaultMode
	}
	if !validModes[mode] {
		return Request{}, invalid("transportMode", "unknown transport mode")
	}
	req.TransportMode = mode

	return req, nil
}
