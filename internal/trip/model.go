// README: Trip request, conversation history, and itinerary definitions.
package trip

// TransportMode is how the group travels between stops.
type TransportMode string

const (
	ModeCar       TransportMode = "car"
	ModeRentalCar TransportMode = "rental_car"
	ModeBike      TransportMode = "bike"
	ModeBus       TransportMode = "bus"
	ModeTrain     TransportMode = "train"
	ModeFlight    TransportMode = "flight"
	ModeMixed     TransportMode = "mixed"
)

// DefaultMode is assumed when the form omits the transport mode.
const DefaultMode = ModeCar

var validModes = map[TransportMode]bool{
	ModeCar:       true,
	ModeRentalCar: true,
	ModeBike:      true,
	ModeBus:       true,
	ModeTrain:     true,
	ModeFlight:    true,
	ModeMixed:     true,
}

// Limits on the request parameters.
const (
	MinDays   = 1
	MaxDays   = 30
	MinPeople = 1
	MaxPeople = 20
)

// Request is a validated set of trip parameters. Immutable once built;
// refinements construct a new Request rather than mutating this one.
type Request struct {
	Departure     string
	Destination   string
	Days          int
	Budget        float64
	People        int
	Interests     string
	TransportMode TransportMode
}

// EntryType distinguishes the first request from follow-up edits.
type EntryType string

const (
	EntryOriginal EntryType = "original"
	EntryEdit     EntryType = "edit"
)

// ConversationEntry is one turn of the planning conversation. The sequence
// is append-only and ordered; the first entry is always the original request.
type ConversationEntry struct {
	Type      EntryType `json:"type"`
	Request   string    `json:"request"`
	Timestamp string    `json:"timestamp"`
}

// ItineraryDay is a single day of the plan.
type ItineraryDay struct {
	Day             int      `json:"day"`
	Title           string   `json:"title"`
	DrivingDistance string   `json:"drivingDistance,omitempty"`
	DrivingTime     string   `json:"drivingTime,omitempty"`
	Activities      []string `json:"activities"`
	Accommodation   string   `json:"accommodation"`
	EstimatedCost   float64  `json:"estimatedCost"`
}

// BudgetBreakdown splits the total cost into four categories for the whole
// group. The categories should sum close to TotalEstimatedCost but the
// backend's arithmetic is not verified here.
type BudgetBreakdown struct {
	Accommodation float64 `json:"accommodation"`
	Food          float64 `json:"food"`
	Activities    float64 `json:"activities"`
	Transport     float64 `json:"transport"`
}

// Itinerary is the structured day-by-day plan returned to the caller.
type Itinerary struct {
	Days               []ItineraryDay   `json:"days"`
	TotalEstimatedCost float64          `json:"totalEstimatedCost"`
	BudgetBreakdown    *BudgetBreakdown `json:"budgetBreakdown,omitempty"`
	BudgetTips         []string         `json:"budgetTips,omitempty"`
	Note               string           `json:"note,omitempty"`
}
