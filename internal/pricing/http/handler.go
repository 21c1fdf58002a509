package http

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Edonabdullahu1/city-sub002/internal/daterange"
	"github.com/Edonabdullahu1/city-sub002/internal/occupancy"
	"github.com/Edonabdullahu1/city-sub002/internal/pkg/response"
	"github.com/Edonabdullahu1/city-sub002/internal/pricing"
)

type Handler struct {
	aggregator *pricing.Aggregator
}

func NewHandler(aggregator *pricing.Aggregator) *Handler {
	return &Handler{aggregator: aggregator}
}

// Calculate handles GET /packages/calculate.
func (h *Handler) Calculate(c *gin.Context) {
	var query CalculateQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters", "details": err.Error()})
		return
	}

	checkIn, err := daterange.ParseDay(query.CheckIn)
	if err != nil {
		response.Error(c, err)
		return
	}
	checkOut, err := daterange.ParseDay(query.CheckOut)
	if err != nil {
		response.Error(c, err)
		return
	}
	stay, err := daterange.New(checkIn, checkOut)
	if err != nil {
		response.Error(c, err)
		return
	}

	childAges, err := parseChildAges(query.ChildAges)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid child_ages, expected comma-separated ages"})
		return
	}

	quotes, err := h.aggregator.Calculate(c.Request.Context(), pricing.CalculateRequest{
		HotelID:         query.HotelID,
		CityID:          query.CityID,
		FlightBlockID:   query.FlightBlockID,
		Board:           query.Board,
		Stay:            stay,
		Parties:         []occupancy.Party{{Adults: query.Adults, ChildAges: childAges}},
		IncludeTransfer: query.Transfer,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]QuoteResponse, len(quotes))
	for i, q := range quotes {
		items[i] = NewQuoteResponse(q)
	}
	c.JSON(http.StatusOK, gin.H{"quotes": items})
}

func parseChildAges(raw string) ([]int, error) {
	if raw == "" {
		return nil, nil
	}
	parts := strings.Split(raw, ",")
	ages := make([]int, 0, len(parts))
	for _, p := range parts {
		age, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, err
		}
		ages = append(ages, age)
	}
	return ages, nil
}
