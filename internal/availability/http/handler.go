package http

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Edonabdullahu1/city-sub002/internal/availability"
	"github.com/Edonabdullahu1/city-sub002/internal/daterange"
	"github.com/Edonabdullahu1/city-sub002/internal/pkg/request"
	"github.com/Edonabdullahu1/city-sub002/internal/pkg/response"
)

type Handler struct {
	service availability.Service
}

func NewHandler(service availability.Service) *Handler {
	return &Handler{service: service}
}

// parseRange turns validated YYYY-MM-DD strings into a day range.
// Binding already checked the format; the range check (end after start)
// happens here so the caller gets the domain error.
func parseRange(start, end string) (daterange.Range, error) {
	s, err := daterange.ParseDay(start)
	if err != nil {
		return daterange.Range{}, err
	}
	e, err := daterange.ParseDay(end)
	if err != nil {
		return daterange.Range{}, err
	}
	return daterange.New(s, e)
}

func roomID(c *gin.Context) (string, bool) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid room UUID"})
		return "", false
	}
	return id, true
}

// GetCalendar handles GET /rooms/:id/availability?start=...&end=...
func (h *Handler) GetCalendar(c *gin.Context) {
	id, ok := roomID(c)
	if !ok {
		return
	}

	var query request.DayRangeQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters", "details": err.Error()})
		return
	}

	rng, err := parseRange(query.Start, query.End)
	if err != nil {
		response.Error(c, err)
		return
	}

	calendar, err := h.service.GetCalendar(c.Request.Context(), id, rng)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]DayResponse, len(calendar))
	for i, d := range calendar {
		items[i] = NewDayResponse(d)
	}
	c.JSON(http.StatusOK, gin.H{"days": items})
}

// Mutate handles POST /rooms/:id/availability for the admin back office.
func (h *Handler) Mutate(c *gin.Context) {
	id, ok := roomID(c)
	if !ok {
		return
	}

	var body MutateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	rng, err := parseRange(body.Start, body.End)
	if err != nil {
		response.Error(c, err)
		return
	}

	ctx := c.Request.Context()
	switch body.Action {
	case ActionInitialize:
		if body.TotalRooms == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "total_rooms is required for initialize"})
			return
		}
		err = h.service.Initialize(ctx, id, rng, *body.TotalRooms)
	case ActionUpdatePricing:
		err = h.service.UpdatePricing(ctx, id, rng, body.Price)
	case ActionSetBlocked:
		if body.IsBlocked == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "is_blocked is required for setBlocked"})
			return
		}
		err = h.service.SetBlocked(ctx, id, rng, *body.IsBlocked)
	}
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// Book handles POST /rooms/:id/availability/book (agent payment confirm).
func (h *Handler) Book(c *gin.Context) {
	h.adjust(c, h.service.ConfirmBooking)
}

// Release handles POST /rooms/:id/availability/release (cancellation).
func (h *Handler) Release(c *gin.Context) {
	h.adjust(c, h.service.ReleaseBooking)
}

func (h *Handler) adjust(c *gin.Context, op func(ctx context.Context, roomID string, rng daterange.Range) error) {
	id, ok := roomID(c)
	if !ok {
		return
	}

	var body BookRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	rng, err := parseRange(body.Start, body.End)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := op(c.Request.Context(), id, rng); err != nil {
		response.Error(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
