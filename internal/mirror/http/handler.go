package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/roomdesk/meeting-room-backend/internal/mirror"
	"github.com/roomdesk/meeting-room-backend/internal/pkg/response"
)

type Handler struct {
	mirror mirror.Mirror
}

func NewHandler(m mirror.Mirror) *Handler {
	return &Handler{mirror: m}
}

// List returns every audit record the mirror holds, in append order.
func (h *Handler) List(c *gin.Context) {
	records, err := h.mirror.Records(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]RecordResponse, len(records))
	for i, rec := range records {
		items[i] = NewRecordResponse(rec)
	}
	c.JSON(http.StatusOK, items)
}
