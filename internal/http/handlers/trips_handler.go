// README: Saved-trip CRUD and export endpoints.
package handlers

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"roady/internal/export"
	"roady/internal/modules/trips"
	"roady/internal/trip"
)

type TripsHandler struct {
	svc *trips.Service
}

func NewTripsHandler(svc *trips.Service) *TripsHandler {
	return &TripsHandler{svc: svc}
}

type saveTripReq struct {
	UserID      string         `json:"userId"`
	Departure   string         `json:"departure"`
	Destination string         `json:"destination"`
	Days        int            `json:"days"`
	Budget      float64        `json:"budget"`
	People      int            `json:"people"`
	Interests   string         `json:"interests"`
	Itinerary   trip.Itinerary `json:"itinerary"`
}

func (r *saveTripReq) command() (trips.SaveCommand, error) {
	r.UserID = strings.TrimSpace(r.UserID)
	r.Departure = strings.TrimSpace(r.Departure)
	r.Destination = strings.TrimSpace(r.Destination)

	switch {
	case r.UserID == "":
		return trips.SaveCommand{}, fmt.Errorf("missing userId")
	case r.Departure == "" || r.Destination == "":
		return trips.SaveCommand{}, fmt.Errorf("missing departure or destination")
	case len(r.Itinerary.Days) == 0:
		return trips.SaveCommand{}, fmt.Errorf("itinerary has no days")
	}

	return trips.SaveCommand{
		UserID: r.UserID,
		Request: trip.Request{
			Departure:   r.Departure,
			Destination: r.Destination,
			Days:        r.Days,
			Budget:      r.Budget,
			People:      r.People,
			Interests:   r.Interests,
		},
		Itinerary: r.Itinerary,
	}, nil
}

// Save handles POST /api/trips.
func (h *TripsHandler) Save(c *gin.Context) {
	var req saveTripReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	cmd, err := req.command()
	if err != nil {
		writeError(c, http.StatusBadRequest, err.Error())
		return
	}

	rec, err := h.svc.Save(c.Request.Context(), cmd)
	if err != nil {
		writeTripsError(c, err)
		return
	}
	writeJSON(c, http.StatusCreated, rec)
}

// Update handles PUT /api/trips/:id.
func (h *TripsHandler) Update(c *gin.Context) {
	var req saveTripReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	cmd, err := req.command()
	if err != nil {
		writeError(c, http.StatusBadRequest, err.Error())
		return
	}

	rec, err := h.svc.Update(c.Request.Context(), c.Param("id"), cmd)
	if err != nil {
		writeTripsError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, rec)
}

// List handles GET /api/trips?user_id= (newest first).
func (h *TripsHandler) List(c *gin.Context) {
	userID := c.Query("user_id")
	if userID == "" {
		writeError(c, http.StatusBadRequest, "missing user_id")
		return
	}
	records, err := h.svc.ListByUser(c.Request.Context(), userID)
	if err != nil {
		writeTripsError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, records)
}

// Get handles GET /api/trips/:id.
func (h *TripsHandler) Get(c *gin.Context) {
	rec, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeTripsError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, rec)
}

// Delete handles DELETE /api/trips/:id.
func (h *TripsHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeTripsError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Export handles GET /api/trips/:id/export?format=json|text|html.
func (h *TripsHandler) Export(c *gin.Context) {
	rec, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeTripsError(c, err)
		return
	}

	now := time.Now()
	switch c.DefaultQuery("format", "json") {
	case "json":
		data, err := export.AsJSON(rec.Itinerary, rec.Departure, rec.Destination, now)
		if err != nil {
			writeTripsError(c, err)
			return
		}
		c.Data(http.StatusOK, "application/json", data)
	case "text":
		c.Data(http.StatusOK, "text/plain; charset=utf-8",
			[]byte(export.AsText(rec.Itinerary, rec.Departure, rec.Destination, now)))
	case "html":
		c.Data(http.StatusOK, "text/html; charset=utf-8",
			[]byte(export.AsHTML(rec.Itinerary, rec.Departure, rec.Destination, now)))
	default:
		writeError(c, http.StatusBadRequest, "unknown format")
	}
}
