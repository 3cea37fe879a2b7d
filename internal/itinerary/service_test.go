package itinerary

import (
	"context"
	"errors"
	"strings"
	"testing"

	"roady/internal/trip"
)

// stubGenerator is a test double for the Gemini client.
type stubGenerator struct {
	reply  string
	err    error
	prompt string // captured
}

func (s *stubGenerator) Generate(_ context.Context, prompt string) (string, error) {
	s.prompt = prompt
	return s.reply, s.err
}

// Without a configured credential the service serves the deterministic mock
// and never calls a backend.
func TestService_OfflinePath(t *testing.T) {
	svc := NewService(nil)
	if !svc.Offline() {
		t.Error("Offline() = false for nil generator")
	}

	req := testRequest()
	itin, err := svc.Generate(context.Background(), req, nil)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if len(itin.Days) != req.Days {
		t.Errorf("days = %d, want %d", len(itin.Days), req.Days)
	}
}

func TestService_LivePathParsesReply(t *testing.T) {
	gen := &stubGenerator{reply: "```json\n" + validReply + "\n```"}
	svc := NewService(gen)
	if svc.Offline() {
		t.Error("Offline() = true for live generator")
	}

	itin, err := svc.Generate(context.Background(), testRequest(), nil)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if itin.TotalEstimatedCost != 5000 {
		t.Errorf("total = %v", itin.TotalEstimatedCost)
	}
	if !strings.Contains(gen.prompt, "Mumbai") {
		t.Error("generator did not receive the built prompt")
	}
}

// A configured but failing backend surfaces the error — no silent fallback
// to mock data.
func TestService_LiveFailureIsNotMasked(t *testing.T) {
	gen := &stubGenerator{err: ErrUpstream}
	svc := NewService(gen)

	_, err := svc.Generate(context.Background(), testRequest(), nil)
	if !errors.Is(err, ErrUpstream) {
		t.Errorf("Generate() error = %v, want ErrUpstream", err)
	}
}

func TestService_UnparsableReply(t *testing.T) {
	gen := &stubGenerator{reply: "I cannot help with that."}
	svc := NewService(gen)

	_, err := svc.Generate(context.Background(), testRequest(), nil)
	if !errors.Is(err, ErrParse) {
		t.Errorf("Generate() error = %v, want ErrParse", err)
	}
}

func TestService_SchemaViolationReply(t *testing.T) {
	gen := &stubGenerator{reply: `{"note":"oops"}`}
	svc := NewService(gen)

	_, err := svc.Generate(context.Background(), testRequest(), nil)
	if !errors.Is(err, ErrSchema) {
		t.Errorf("Generate() error = %v, want ErrSchema", err)
	}
}

// A refinement call folds the prior itinerary and history into the prompt.
func TestService_RefinementPrompt(t *testing.T) {
	gen := &stubGenerator{reply: validReply}
	svc := NewService(gen)

	current := &trip.Itinerary{
		Days:               []trip.ItineraryDay{{Day: 1, Title: "Day 1: Mumbai to Pune"}},
		TotalEstimatedCost: 5000,
	}
	ref := &Refinement{
		EditRequest: "add a museum visit on day 1",
		Current:     current,
		History: []trip.ConversationEntry{
			{Type: trip.EntryOriginal, Request: "trip to Goa"},
		},
	}

	if _, err := svc.Generate(context.Background(), testRequest(), ref); err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	for _, want := range []string{"refining an existing road trip itinerary", "add a museum visit on day 1", "trip to Goa", "Day 1: Mumbai to Pune"} {
		if !strings.Contains(gen.prompt, want) {
			t.Errorf("refinement prompt missing %q", want)
		}
	}
}

// An edit request without a current itinerary falls back to initial mode.
func TestService_EditWithoutCurrentUsesInitialMode(t *testing.T) {
	gen := &stubGenerator{reply: validReply}
	svc := NewService(gen)

	ref := &Refinement{EditRequest: "cheaper hotels"}
	if _, err := svc.Generate(context.Background(), testRequest(), ref); err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if strings.Contains(gen.prompt, "refining an existing") {
		t.Error("initial mode expected without a current itinerary")
	}
}

// The caller's inputs are never mutated, so a failed refinement leaves the
// displayed itinerary intact.
func TestService_FailureLeavesInputsUntouched(t *testing.T) {
	gen := &stubGenerator{err: ErrUpstream}
	svc := NewService(gen)

	current := &trip.Itinerary{
		Days:               []trip.ItineraryDay{{Day: 1, Title: "Day 1: original"}},
		TotalEstimatedCost: 123,
	}
	ref := &Refinement{EditRequest: "change it", Current: current}
	_, _ = svc.Generate(context.Background(), testRequest(), ref)

	if current.Days[0].Title != "Day 1: original" || current.TotalEstimatedCost != 123 {
		t.Errorf("input itinerary mutated: %+v", current)
	}
}
