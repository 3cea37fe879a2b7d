// README: HTTP router registration.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"roady/internal/http/handlers"
	"roady/internal/http/middleware"
	"roady/internal/itinerary"
	"roady/internal/maps"
	"roady/internal/modules/lastplan"
	"roady/internal/modules/trips"
)

// RouterDeps carries everything the router wires into handlers. Cache and
// Geo may be nil; the corresponding endpoints degrade instead of the server
// failing to start.
type RouterDeps struct {
	Itinerary *itinerary.Service
	Trips     *trips.Service
	Cache     *lastplan.Store
	Geo       *maps.GeocodeService
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()
	r.Use(middleware.Logging(), middleware.Recovery(), middleware.CORS())

	itineraryHandler := handlers.NewItineraryHandler(deps.Itinerary, deps.Cache)
	r.POST("/api/itineraries/generate", itineraryHandler.Generate)
	r.GET("/api/itineraries/last", itineraryHandler.Last)

	tripsHandler := handlers.NewTripsHandler(deps.Trips)
	r.POST("/api/trips", tripsHandler.Save)
	r.GET("/api/trips", tripsHandler.List)
	r.GET("/api/trips/:id", tripsHandler.Get)
	r.PUT("/api/trips/:id", tripsHandler.Update)
	r.DELETE("/api/trips/:id", tripsHandler.Delete)
	r.GET("/api/trips/:id/export", tripsHandler.Export)

	geoHandler := handlers.NewGeoHandler(deps.Geo, deps.Trips)
	r.GET("/api/trips/:id/stops", geoHandler.Stops)
	r.GET("/api/geo/locate", geoHandler.Locate)

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	return r
}
