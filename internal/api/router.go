package api

import (
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/Edonabdullahu1/city-sub002/internal/auth"
	"github.com/Edonabdullahu1/city-sub002/internal/availability"
	availHttp "github.com/Edonabdullahu1/city-sub002/internal/availability/http"
	"github.com/Edonabdullahu1/city-sub002/internal/catalog"
	catalogHttp "github.com/Edonabdullahu1/city-sub002/internal/catalog/http"
	"github.com/Edonabdullahu1/city-sub002/internal/pricing"
	pricingHttp "github.com/Edonabdullahu1/city-sub002/internal/pricing/http"
)

// Config holds the services and settings the router needs.
type Config struct {
	IsProduction bool
	ProdOrigins  string

	CatalogService      catalog.Service
	AvailabilityService availability.Service
	Aggregator          *pricing.Aggregator
	JWTManager          *auth.JWTManager
}

// NewRouter initializes the HTTP router engine.
// It is responsible for assembling middleware (CORS, Logger, Auth) and registering routes for various modules.
func NewRouter(cfg Config) *gin.Engine {
	r := gin.New()

	// Global Middleware:
	// - Logger: Logs request information to the console.
	// - Recovery: Captures panics to prevent server crashes and returns a 500 error.
	r.Use(gin.Logger(), gin.Recovery())

	// Configure CORS (Cross-Origin Resource Sharing).
	corsConfig := cors.DefaultConfig()
	if cfg.IsProduction && cfg.ProdOrigins != "" {
		corsConfig.AllowOrigins = strings.Split(cfg.ProdOrigins, ",")
	} else {
		corsConfig.AllowOrigins = []string{
			"http://localhost:3000", // Next.js UI
		}
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization"}
	r.Use(cors.New(corsConfig))

	// authMiddleware: Validates if the request contains a valid JWT.
	authMiddleware := auth.AuthRequired(cfg.JWTManager)
	// adminMiddleware: Back-office mutations.
	adminMiddleware := RequireRole(auth.RoleAdmin)
	// agentMiddleware: Agent portal booking confirmation.
	agentMiddleware := RequireRole(auth.RoleAgent)

	// Initialize HTTP Handlers for each module (injecting Service dependencies).
	catalogHandler := catalogHttp.NewHandler(cfg.CatalogService)
	availHandler := availHttp.NewHandler(cfg.AvailabilityService)
	pricingHandler := pricingHttp.NewHandler(cfg.Aggregator)

	// Register API routes under /v1
	v1 := r.Group("/v1")
	{
		catalogHttp.RegisterRoutes(v1, catalogHandler)
		pricingHttp.RegisterRoutes(v1, pricingHandler)
		availHttp.RegisterRoutes(v1, availHandler, authMiddleware, adminMiddleware, agentMiddleware)
	}

	return r
}
