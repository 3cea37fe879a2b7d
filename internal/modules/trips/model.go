// README: Saved-trip record and error definitions.
package trips

import (
	"errors"
	"time"

	"roady/internal/trip"
)

// ErrNotFound is returned when no saved trip matches the requested id.
var ErrNotFound = errors.New("trip not found")

// Record is a saved trip as stored in Postgres. The itinerary itself lives
// in a JSONB column so refinements replace it wholesale.
type Record struct {
	ID          string         `json:"id"`
	UserID      string         `json:"userId"`
	Title       string         `json:"title"`
	Departure   string         `json:"departure"`
	Destination string         `json:"destination"`
	Days        int            `json:"days"`
	Budget      float64        `json:"budget"`
	Interests   string         `json:"interests"`
	Itinerary   trip.Itinerary `json:"itinerary"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
}
