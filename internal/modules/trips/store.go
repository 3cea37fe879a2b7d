// README: Saved-trip store backed by PostgreSQL.
package trips

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"roady/internal/trip"
)

type Store struct {
	db *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

func (s *Store) Create(ctx context.Context, rec *Record) error {
	itinJSON, err := json.Marshal(rec.Itinerary)
	if err != nil {
		return fmt.Errorf("marshal itinerary: %w", err)
	}
	_, err = s.db.Exec(ctx, `
		INSERT INTO trips (
			id, user_id, title, departure, destination,
			days, budget, interests, itinerary_data, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		rec.ID, rec.UserID, rec.Title, rec.Departure, rec.Destination,
		rec.Days, rec.Budget, rec.Interests, itinJSON, rec.CreatedAt, rec.UpdatedAt,
	)
	return err
}

func (s *Store) Update(ctx context.Context, rec *Record) error {
	itinJSON, err := json.Marshal(rec.Itinerary)
	if err != nil {
		return fmt.Errorf("marshal itinerary: %w", err)
	}
	tag, err := s.db.Exec(ctx, `
		UPDATE trips SET
			title = $2, departure = $3, destination = $4,
			days = $5, budget = $6, interests = $7,
			itinerary_data = $8, updated_at = $9
		WHERE id = $1`,
		rec.ID, rec.Title, rec.Departure, rec.Destination,
		rec.Days, rec.Budget, rec.Interests, itinJSON, time.Now().UTC(),
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) Get(ctx context.Context, id string) (*Record, error) {
	row := s.db.QueryRow(ctx, `
		SELECT id, user_id, title, departure, destination,
		       days, budget, interests, itinerary_data, created_at, updated_at
		FROM trips
		WHERE id = $1`, id,
	)
	return scanRecord(row)
}

// ListByUser returns the user's saved trips, newest first.
func (s *Store) ListByUser(ctx context.Context, userID string) ([]*Record, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, user_id, title, departure, destination,
		       days, budget, interests, itinerary_data, created_at, updated_at
		FROM trips
		WHERE user_id = $1
		ORDER BY created_at DESC`, userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

func (s *Store) Delete(ctx context.Context, id string) error {
	tag, err := s.db.Exec(ctx, `DELETE FROM trips WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func scanRecord(row pgx.Row) (*Record, error) {
	var rec Record
	var itinJSON []byte
	err := row.Scan(
		&rec.ID, &rec.UserID, &rec.Title, &rec.Departure, &rec.Destination,
		&rec.Days, &rec.Budget, &rec.Interests, &itinJSON, &rec.CreatedAt, &rec.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	var itin trip.Itinerary
	if err := json.Unmarshal(itinJSON, &itin); err != nil {
		return nil, fmt.Errorf("unmarshal itinerary: %w", err)
	}
	rec.Itinerary = itin
	return &rec, nil
}
