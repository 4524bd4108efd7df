package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/roomdesk/meeting-room-backend/internal/booking"
	"github.com/roomdesk/meeting-room-backend/internal/pkg/response"
)

type Handler struct {
	service booking.Service
}

func NewHandler(service booking.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Create(c *gin.Context) {
	var body CreateBookingRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}
	if err := body.Validate(); err != nil {
		response.Error(c, err)
		return
	}

	result, err := h.service.Create(c.Request.Context(), booking.CreateRequest{
		RoomName:  body.RoomName,
		StartTime: body.StartTime,
		EndTime:   body.EndTime,
		BookedBy:  body.BookedBy,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, CreateBookingResponse{
		BookingResponse: NewBookingResponse(result.Booking),
		Mirrored:        result.Mirrored,
	})
}

func (h *Handler) List(c *gin.Context) {
	bookings, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]BookingResponse, len(bookings))
	for i, b := range bookings {
		items[i] = NewBookingResponse(b)
	}
	c.JSON(http.StatusOK, items)
}
