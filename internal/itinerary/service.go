// README: Orchestrates prompt building, generation, and extraction.
package itinerary

import (
	"context"
	"log"

	"roady/internal/trip"
)

// Refinement carries the optional edit context for a generate call. A nil
// Current (or empty EditRequest) selects initial-generation mode.
type Refinement struct {
	EditRequest string
	Current     *trip.Itinerary
	History     []trip.ConversationEntry
}

// Service runs the generation pipeline. The live/fallback decision is made
// once, at construction: a nil Generator selects the offline mock path.
// The service holds no per-call state; concurrent calls are independent and
// the caller replays conversation history on every refinement.
type Service struct {
	gen Generator
}

// NewService builds a Service around gen. Pass nil when no generation
// credential is configured; the service then serves deterministic
// placeholder itineraries instead of calling a backend.
func NewService(gen Generator) *Service {
	return &Service{gen: gen}
}

// Offline reports whether this service runs the credential-free mock path.
func (s *Service) Offline() bool {
	return s.gen == nil
}

// Generate produces an itinerary for req. With a refinement present, the
// prior itinerary and conversation history are folded into the prompt and
// the backend is asked to apply only the requested change. On any failure
// the inputs are untouched and a typed error is returned — a configured but
// failing backend is surfaced, never silently replaced with mock data.
func (s *Service) Generate(ctx context.Context, req trip.Request, ref *Refinement) (trip.Itinerary, error) {
	if s.gen == nil {
		return Mock(req), nil
	}

	var prompt string
	if ref != nil && ref.EditRequest != "" && ref.Current != nil {
		prompt = BuildRefinementPrompt(req, ref.Current, ref.EditRequest, ref.History)
	} else {
		prompt = BuildPrompt(req)
	}

	raw, err := s.gen.Generate(ctx, prompt)
	if err != nil {
		return trip.Itinerary{}, err
	}

	itin, err := Extract(raw)
	if err != nil {
		// Diagnostic detail (including the raw preview) stays server-side.
		log.Printf("itinerary extraction failed: %v", err)
		return trip.Itinerary{}, err
	}
	return itin, nil
}
