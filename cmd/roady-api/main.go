// README: Entry point; loads config, wires services, starts the HTTP server.
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"roady/internal/config"
	httptransport "roady/internal/http"
	"roady/internal/infra"
	"roady/internal/itinerary"
	"roady/internal/maps"
	"roady/internal/modules/lastplan"
	"roady/internal/modules/trips"
)

func main() {
	// Missing .env is fine; real deployments use the environment directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dbPool, err := infra.NewDB(ctx, cfg.DB.DSN)
	if err != nil {
		log.Fatal(err)
	}
	defer dbPool.Close()

	redisClient := infra.NewRedis(cfg.Redis.Addr)

	var gen itinerary.Generator
	if cfg.HasGeminiKey() {
		gemini, err := itinerary.NewGeminiClient(ctx, cfg.AI.GeminiKey)
		if err != nil {
			log.Fatalf("gemini init: %v", err)
		}
		defer gemini.Close()
		gen = gemini
	} else {
		log.Print("GEMINI_API_KEY not configured; serving mock itineraries")
	}
	itinerarySvc := itinerary.NewService(gen)

	tripsStore := trips.NewStore(dbPool)
	tripsSvc := trips.NewService(tripsStore)

	cache := lastplan.NewStore(redisClient)

	var geo *maps.GeocodeService
	if cfg.Maps.APIKey != "" {
		geo, err = maps.NewGeocodeService(cfg.Maps.APIKey)
		if err != nil {
			log.Fatalf("maps init: %v", err)
		}
	} else {
		log.Print("MAPS_API_KEY not configured; geocoding disabled")
	}

	router := httptransport.NewRouter(httptransport.RouterDeps{
		Itinerary: itinerarySvc,
		Trips:     tripsSvc,
		Cache:     cache,
		Geo:       geo,
	})

	server := &http.Server{Addr: cfg.HTTP.Addr, Handler: router}

	go func() {
		<-ctx.Done()
		_ = server.Shutdown(context.Background())
	}()

	log.Printf("listening on %s", cfg.HTTP.Addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}
