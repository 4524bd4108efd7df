package api

import (
	"net/http"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/roomdesk/meeting-room-backend/internal/auth"
	"github.com/roomdesk/meeting-room-backend/internal/booking"
	bookingHttp "github.com/roomdesk/meeting-room-backend/internal/booking/http"
	"github.com/roomdesk/meeting-room-backend/internal/mirror"
	mirrorHttp "github.com/roomdesk/meeting-room-backend/internal/mirror/http"
	"github.com/roomdesk/meeting-room-backend/internal/room"
	roomHttp "github.com/roomdesk/meeting-room-backend/internal/room/http"
)

// Config holds everything the router needs from the rest of the application.
type Config struct {
	IsProduction bool
	ProdOrigins  string

	Username     string
	PasswordHash string
	Hasher       auth.PasswordHasher

	RoomService    room.Service
	BookingService booking.Service
	Mirror         mirror.Mirror
}

// NewRouter initializes the HTTP router engine.
// It is responsible for assembling middleware (CORS, Logger, Auth) and
// registering routes for the room, booking and audit modules.
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
		corsConfig.AllowOrigins = []string{"http://localhost:8081"}
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization"}
	r.Use(cors.New(corsConfig))

	// Liveness probe, kept outside the credential gate.
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Meeting Room API is running!"})
	})

	// authMiddleware: pass/fail Basic credential gate for every API route.
	authMiddleware := auth.BasicGate(cfg.Username, cfg.PasswordHash, cfg.Hasher)

	// Initialize HTTP Handlers for each module (injecting Service dependencies).
	roomHandler := roomHttp.NewHandler(cfg.RoomService)
	bookingHandler := bookingHttp.NewHandler(cfg.BookingService)
	auditHandler := mirrorHttp.NewHandler(cfg.Mirror)

	// Register API routes under /v1
	v1 := r.Group("/v1")
	{
		roomHttp.RegisterRoutes(v1, roomHandler, authMiddleware)
		bookingHttp.RegisterRoutes(v1, bookingHandler, authMiddleware)
		mirrorHttp.RegisterRoutes(v1, auditHandler, authMiddleware)
	}

	return r
}
