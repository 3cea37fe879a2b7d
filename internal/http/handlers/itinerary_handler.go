// README: Itinerary generation endpoint.
package handlers

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"roady/internal/itinerary"
	"roady/internal/modules/lastplan"
	"roady/internal/trip"
)

// generateTimeout bounds the upstream call so a stalled backend fails
// instead of hanging the request.
const generateTimeout = 60 * time.Second

type ItineraryHandler struct {
	svc   *itinerary.Service
	cache *lastplan.Store
}

// NewItineraryHandler wires the generation service and the optional
// last-plan cache (nil disables caching).
func NewItineraryHandler(svc *itinerary.Service, cache *lastplan.Store) *ItineraryHandler {
	return &ItineraryHandler{svc: svc, cache: cache}
}

type generateReq struct {
	trip.Form
	UserID              string                   `json:"userId"`
	EditRequest         string                   `json:"editRequest"`
	CurrentItinerary    *trip.Itinerary          `json:"currentItinerary"`
	ConversationHistory []trip.ConversationEntry `json:"conversationHistory"`
}

type generateResp struct {
	Status    string         `json:"status"`
	Itinerary trip.Itinerary `json:"itinerary"`
	Message   string         `json:"message"`
}

// Generate handles POST /api/itineraries/generate.
func (h *ItineraryHandler) Generate(c *gin.Context) {
	var req generateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}

	parsed, err := trip.Parse(req.Form)
	if err != nil {
		writeGenerateError(c, err)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), generateTimeout)
	defer cancel()

	var ref *itinerary.Refinement
	if req.EditRequest != "" && req.CurrentItinerary != nil {
		ref = &itinerary.Refinement{
			EditRequest: req.EditRequest,
			Current:     req.CurrentItinerary,
			History:     req.ConversationHistory,
		}
	}

	itin, err := h.svc.Generate(ctx, parsed, ref)
	if err != nil {
		writeGenerateError(c, err)
		return
	}

	// Best effort: cache failures must not fail a successful generation.
	if h.cache != nil && req.UserID != "" {
		entry := lastplan.Entry{Request: parsed, Itinerary: itin, SavedAt: time.Now().UTC()}
		if err := h.cache.Put(ctx, req.UserID, entry); err != nil {
			log.Printf("lastplan cache put failed: %v", err)
		}
	}

	msg := "Itinerary generated successfully"
	if h.svc.Offline() {
		msg = "Mock itinerary generated (API key not configured)"
	}
	writeJSON(c, http.StatusOK, generateResp{
		Status:    "success",
		Itinerary: itin,
		Message:   msg,
	})
}

// Last handles GET /api/trips/last?user_id= and returns the cached
// {request, itinerary} pair from the user's most recent generation.
func (h *ItineraryHandler) Last(c *gin.Context) {
	userID := c.Query("user_id")
	if userID == "" {
		writeError(c, http.StatusBadRequest, "missing user_id")
		return
	}
	if h.cache == nil {
		writeError(c, http.StatusServiceUnavailable, "cache not configured")
		return
	}

	entry, err := h.cache.Get(c.Request.Context(), userID)
	if err != nil {
		writeTripsError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, entry)
}
