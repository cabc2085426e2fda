package main

import (
	"context"
	"delivery-dispatch-service/internal/adapters/cache"
	"delivery-dispatch-service/internal/adapters/repositories"
	"delivery-dispatch-service/internal/api"
	"delivery-dispatch-service/internal/api/handlers"
	"delivery-dispatch-service/internal/config"
	"delivery-dispatch-service/internal/domain"
	"delivery-dispatch-service/internal/platform/db"
	"delivery-dispatch-service/internal/ports"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"golang.org/x/time/rate"
)

// main is the application composition root.
// It picks the client repository and plan store from the environment and
// starts the HTTP server.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()
	checks := map[string]handlers.Check{}

	var (
		repo  ports.ClientRepository
		store ports.PlanStore
	)

	if cfg.DatabaseURL != "" {
		conn, err := db.Open(ctx, cfg.DatabaseURL, db.DefaultPoolConfig())
		if err != nil {
			log.Fatal(err)
		}
		defer conn.Close()

		if err := repositories.InitSchema(ctx, conn); err != nil {
			log.Fatal(err)
		}

		repo = repositories.NewPostgresClientRepository(conn)
		store = cache.NewSQLPlanStore(conn)
		checks["postgres"] = conn.PingContext
		log.Printf("client repository=postgres")
	} else {
		repo, err = memoryRepository(cfg.SeedPath)
		if err != nil {
			log.Fatal(err)
		}
		store = cache.NewMemoryPlanStore()
		log.Printf("client repository=memory seed=%s", cfg.SeedPath)
	}

	// Redis takes over plan storage when configured; plans then expire after PLAN_TTL.
	if cfg.RedisURL != "" {
		redisStore, err := cache.NewRedisPlanStoreFromURL(cfg.RedisURL, cfg.PlanTTL)
		if err != nil {
			log.Fatal(err)
		}
		defer redisStore.Close()

		if err := redisStore.Ping(ctx); err != nil {
			log.Fatal(err)
		}

		store = redisStore
		checks["redis"] = redisStore.Ping
		log.Printf("plan store=redis ttl=%s", cfg.PlanTTL)
	}

	var limiter *rate.Limiter
	if cfg.RateLimitRPS > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.RateLimitRPS), cfg.RateLimitBurst)
	}

	router := api.NewRouter(api.Deps{
		Repo:           repo,
		Store:          store,
		DefaultDepot:   domain.Point{X: cfg.DepotX, Y: cfg.DepotY},
		DefaultVehicle: domain.Vehicle{CapacityMax: cfg.DefaultCapacity, RangeMax: cfg.DefaultRange},
		Checks:         checks,
		Limiter:        limiter,
	})

	log.Printf("Server listening addr=:%s", cfg.Port)
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}

// memoryRepository loads the seed file into memory. A missing file starts the
// service with no stored clients.
func memoryRepository(seedPath string) (*repositories.MemoryClientRepository, error) {
	clients, err := repositories.LoadSeedFile(seedPath)
	if errors.Is(err, os.ErrNotExist) {
		log.Printf("seed file not found, starting without clients: path=%s", seedPath)
		return repositories.NewMemoryClientRepository(nil), nil
	}
	if err != nil {
		return nil, fmt.Errorf("memory repository: %w", err)
	}
	return repositories.NewMemoryClientRepository(clients), nil
}
