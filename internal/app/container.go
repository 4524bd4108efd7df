package app

import (
	"github.com/gin-gonic/gin"

	"github.com/roomdesk/meeting-room-backend/internal/api"
	"github.com/roomdesk/meeting-room-backend/internal/auth"
	"github.com/roomdesk/meeting-room-backend/internal/booking"
	"github.com/roomdesk/meeting-room-backend/internal/mirror"
	"github.com/roomdesk/meeting-room-backend/internal/room"
)

// Config holds the dependencies and settings required to start the application.
type Config struct {
	IsProduction bool
	ProdOrigins  string
	Username     string
	PasswordHash string
	// Mirror receives an audit record after each committed mutation.
	// When nil, an in-memory mirror is used.
	Mirror mirror.Mirror
}

// Container holds the initialized components that are needed externally.
// The two stores are owned here and injected into the handlers; there are no
// package-level singletons.
type Container struct {
	Router         *gin.Engine
	RoomService    room.Service
	BookingService booking.Service
	Mirror         mirror.Mirror
}

// NewContainer initializes all modules and returns the container.
func NewContainer(cfg Config) *Container {
	if cfg.Mirror == nil {
		cfg.Mirror = mirror.NewMemoryMirror()
	}

	// Room Module
	roomRepo := room.NewMemoryRepository()
	roomService := room.NewService(roomRepo, cfg.Mirror)

	// Booking Module
	bookingRepo := booking.NewMemoryRepository()
	bookingService := booking.NewService(bookingRepo, roomService, cfg.Mirror)

	// Router
	router := api.NewRouter(api.Config{
		IsProduction:   cfg.IsProduction,
		ProdOrigins:    cfg.ProdOrigins,
		Username:       cfg.Username,
		PasswordHash:   cfg.PasswordHash,
		Hasher:         auth.NewBcryptPasswordHasher(0),
		RoomService:    roomService,
		BookingService: bookingService,
		Mirror:         cfg.Mirror,
	})

	return &Container{
		Router:         router,
		RoomService:    roomService,
		BookingService: bookingService,
		Mirror:         cfg.Mirror,
	}
}
