// README: Typed failures of the generation pipeline.
package itinerary

import "errors"

// Pipeline failures. All are terminal for the current call — the service
// never retries and never substitutes mock data for a failing live backend.
var (
	// ErrUpstream covers a reachable backend that returned a failure status.
	ErrUpstream = errors.New("generation backend error")

	// ErrEmptyResponse means the backend answered without any candidates.
	ErrEmptyResponse = errors.New("generation backend returned no candidates")

	// ErrMalformedResponse means the candidate carried no usable text part.
	ErrMalformedResponse = errors.New("generation backend returned no text")

	// ErrParse means the reply text is not valid JSON after extraction.
	ErrParse = errors.New("itinerary response is not valid JSON")

	// ErrSchema means the JSON parsed but lacks the required itinerary shape.
	ErrSchema = errors.New("itinerary response missing required fields")
)
