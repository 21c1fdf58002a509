package app

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Edonabdullahu1/city-sub002/internal/api"
	"github.com/Edonabdullahu1/city-sub002/internal/auth"
	"github.com/Edonabdullahu1/city-sub002/internal/availability"
	"github.com/Edonabdullahu1/city-sub002/internal/catalog"
	"github.com/Edonabdullahu1/city-sub002/internal/pricing"
)

// Config holds the dependencies and settings required to start the application.
type Config struct {
	IsProduction bool
	ProdOrigins  string
	DBPool       *pgxpool.Pool
	JWTSecret    string
	JWTTTL       time.Duration
	Policy       pricing.Policy
}

// Container holds the initialized components that are needed externally.
type Container struct {
	Router     *gin.Engine
	JWTManager *auth.JWTManager
}

// NewContainer initializes all modules and returns the container.
// When cfg.DBPool is nil the repositories fall back to in-memory stores,
// which is what the test harness and local development use.
func NewContainer(cfg Config) *Container {
	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.JWTTTL)

	// Catalog Module (read-only: the back office owns the write side)
	var catalogRepo catalog.Repository
	var availRepo availability.Repository
	if cfg.DBPool != nil {
		catalogRepo = catalog.NewPgxRepository(cfg.DBPool)
		availRepo = availability.NewPgxRepository(cfg.DBPool)
	} else {
		catalogRepo = catalog.NewMemoryRepository()
		availRepo = availability.NewMemoryRepository()
	}
	catalogService := catalog.NewService(catalogRepo)

	// Availability Module
	availService := availability.NewService(availRepo, catalogRepo)

	// Pricing Module
	resolver := pricing.NewResolver(availRepo)
	aggregator := pricing.NewAggregator(catalogRepo, resolver, cfg.Policy)

	// API Router Config
	routerParams := api.Config{
		IsProduction:        cfg.IsProduction,
		ProdOrigins:         cfg.ProdOrigins,
		CatalogService:      catalogService,
		AvailabilityService: availService,
		Aggregator:          aggregator,
		JWTManager:          jwtManager,
	}

	// Router
	router := api.NewRouter(routerParams)

	return &Container{
		Router:     router,
		JWTManager: jwtManager,
	}
}
