// README: Saved-trip service (titles, ids, timestamps over the store).
package trips

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"roady/internal/trip"
)

// Service owns the saved-trip lifecycle on top of the Store.
type Service struct {
	store *Store
}

func NewService(store *Store) *Service {
	return &Service{store: store}
}

// SaveCommand carries everything needed to persist a generated itinerary.
type SaveCommand struct {
	UserID    string
	Request   trip.Request
	Itinerary trip.Itinerary
}

// Save persists a new record with a generated id and a derived title.
func (s *Service) Save(ctx context.Context, cmd SaveCommand) (*Record, error) {
	now := time.Now().UTC()
	rec := &Record{
		ID:          uuid.NewString(),
		UserID:      cmd.UserID,
		Title:       fmt.Sprintf("%s to %s", cmd.Request.Departure, cmd.Request.Destination),
		Departure:   cmd.Request.Departure,
		Destination: cmd.Request.Destination,
		Days:        cmd.Request.Days,
		Budget:      cmd.Request.Budget,
		Interests:   cmd.Request.Interests,
		Itinerary:   cmd.Itinerary,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.store.Create(ctx, rec); err != nil {
		return nil, err
	}
	return rec, nil
}

// Update replaces an existing record's parameters and itinerary. The stored
// itinerary is superseded wholesale; there is no partial merge.
func (s *Service) Update(ctx context.Context, id string, cmd SaveCommand) (*Record, error) {
	rec, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	rec.Title = fmt.Sprintf("%s to %s", cmd.Request.Departure, cmd.Request.Destination)
	rec.Departure = cmd.Request.Departure
	rec.Destination = cmd.Request.Destination
	rec.Days = cmd.Request.Days
	rec.Budget = cmd.Request.Budget
	rec.Interests = cmd.Request.Interests
	rec.Itinerary = cmd.Itinerary
	if err := s.store.Update(ctx, rec); err != nil {
		return nil, err
	}
	return rec, nil
}

func (s *Service) Get(ctx context.Context, id string) (*Record, error) {
	return s.store.Get(ctx, id)
}

func (s *Service) ListByUser(ctx context.Context, userID string) ([]*Record, error) {
	return s.store.ListByUser(ctx, userID)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.store.Delete(ctx, id)
}
