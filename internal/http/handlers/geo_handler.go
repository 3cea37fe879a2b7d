// README: Geocoding endpoints for map display.
package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"roady/internal/maps"
	"roady/internal/modules/trips"
)

type GeoHandler struct {
	geo   *maps.GeocodeService
	trips *trips.Service
}

// NewGeoHandler wires the geocode service (nil when no maps key is
// configured) and the trip store used for stop extraction.
func NewGeoHandler(geo *maps.GeocodeService, tripsSvc *trips.Service) *GeoHandler {
	return &GeoHandler{geo: geo, trips: tripsSvc}
}

// Locate handles GET /api/geo/locate?q=.
func (h *GeoHandler) Locate(c *gin.Context) {
	if h.geo == nil {
		writeError(c, http.StatusServiceUnavailable, "geocoding not configured")
		return
	}
	q := c.Query("q")
	if q == "" {
		writeError(c, http.StatusBadRequest, "missing q")
		return
	}

	coords, err := h.geo.Locate(c.Request.Context(), q)
	if err != nil {
		log.Printf("geocode %q failed: %v", q, err)
		writeError(c, http.StatusNotFound, "location not found")
		return
	}
	writeJSON(c, http.StatusOK, coords)
}

type stopResp struct {
	Name        string            `json:"name"`
	Coordinates *maps.Coordinates `json:"coordinates,omitempty"`
}

// Stops handles GET /api/trips/:id/stops. It extracts the place names from
// the saved itinerary's day titles and, when geocoding is available,
// resolves each to coordinates. Geocoding failures leave coordinates unset
// rather than failing the response.
func (h *GeoHandler) Stops(c *gin.Context) {
	rec, err := h.trips.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeTripsError(c, err)
		return
	}

	names := maps.StopNames(rec.Itinerary)
	stops := make([]stopResp, 0, len(names))
	for _, name := range names {
		stop := stopResp{Name: name}
		if h.geo != nil {
			if coords, err := h.geo.Locate(c.Request.Context(), name); err == nil {
				stop.Coordinates = &coords
			} else {
				log.Printf("geocode stop %q failed: %v", name, err)
			}
		}
		stops = append(stops, stop)
	}
	writeJSON(c, http.StatusOK, stops)
}
