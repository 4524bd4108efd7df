package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/roomdesk/meeting-room-backend/internal/pkg/response"
	"github.com/roomdesk/meeting-room-backend/internal/room"
)

type Handler struct {
	service room.Service
}

func NewHandler(service room.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Create(c *gin.Context) {
	var body CreateRoomRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	result, err := h.service.Register(c.Request.Context(), room.RegisterRequest{
		Name:      body.Name,
		Capacity:  body.Capacity,
		Amenities: body.Amenities,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, CreateRoomResponse{
		RoomResponse: NewRoomResponse(result.Room),
		Mirrored:     result.Mirrored,
	})
}

func (h *Handler) List(c *gin.Context) {
	rooms, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make(map[string]RoomResponse, len(rooms))
	for name, r := range rooms {
		items[name] = NewRoomResponse(r)
	}
	c.JSON(http.StatusOK, items)
}
