// README: Shared handler utilities (envelopes, error mapping).
package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"roady/internal/itinerary"
	"roady/internal/modules/lastplan"
	"roady/internal/modules/trips"
	"roady/internal/trip"
)

// statusEnvelope is the outward-facing error shape. Internal error kinds and
// diagnostic detail stay in the server log.
type statusEnvelope struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

func writeJSON(c *gin.Context, status int, v any) {
	c.JSON(status, v)
}

func writeError(c *gin.Context, status int, msg string) {
	writeJSON(c, status, statusEnvelope{Status: "error", Message: msg})
}

// writeGenerateError maps pipeline failures onto the error envelope. Only
// validation failures carry detail back to the caller.
func writeGenerateError(c *gin.Context, err error) {
	var verr *trip.ValidationError
	if errors.As(err, &verr) {
		writeError(c, http.StatusBadRequest, verr.Error())
		return
	}

	log.Printf("generate failed: %v", err)
	switch {
	case errors.Is(err, itinerary.ErrParse), errors.Is(err, itinerary.ErrSchema):
		writeError(c, http.StatusInternalServerError, "Failed to parse the generated itinerary. Please try again.")
	default:
		writeError(c, http.StatusInternalServerError, "Failed to generate itinerary. Please try again.")
	}
}

func writeTripsError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, trips.ErrNotFound), errors.Is(err, lastplan.ErrNotFound):
		writeError(c, http.StatusNotFound, err.Error())
	default:
		log.Printf("trips error: %v", err)
		writeError(c, http.StatusInternalServerError, "internal error")
	}
}
