package pricing

import (
	"context"
	"errors"
	"net/http"

	"github.com/Edonabdullahu1/city-sub002/internal/catalog"
	"github.com/Edonabdullahu1/city-sub002/internal/daterange"
	"github.com/Edonabdullahu1/city-sub002/internal/occupancy"
	"github.com/Edonabdullahu1/city-sub002/internal/pkg/apperror"
)

var (
	// ErrMissingFlightSelection aborts the whole calculation: a package
	// without a flight is not a package, so no partial quotes go out.
	ErrMissingFlightSelection = apperror.New(http.StatusBadRequest, "no flight block selected for the destination")

	ErrNoDestination = apperror.New(http.StatusBadRequest, "either hotel_id or city_id is required")
	ErrNoOccupancy   = apperror.New(http.StatusBadRequest, "at least one occupancy configuration is required")
)

// CalculateRequest describes one pricing run. Either HotelID or CityID
// must be set; CityID prices every hotel in the city.
type CalculateRequest struct {
	HotelID         string
	CityID          string
	FlightBlockID   string // resolved from the destination city when empty
	Board           string // defaults to bed & breakfast
	Stay            daterange.Range
	Parties         []occupancy.Party
	IncludeTransfer bool
}

// PackageQuote is a computed flight+hotel+transfer price for one occupancy
// configuration at one hotel. Quotes are transient: recomputed on every
// request, never stored.
type PackageQuote struct {
	HotelID        string
	HotelName      string
	OccupancyLabel string
	Adults         int
	Children       int
	RoomType       string
	Board          string
	Nights         int
	FlightCost     int64
	HotelCost      int64
	TransferCost   int64
	TotalCost      int64
	Currency       string
}

// Aggregator bundles flight, hotel and transfer costs into package quotes.
type Aggregator struct {
	catalogRepo catalog.Repository
	resolver    *Resolver
	policy      Policy
}

func NewAggregator(catalogRepo catalog.Repository, resolver *Resolver, policy Policy) *Aggregator {
	return &Aggregator{
		catalogRepo: catalogRepo,
		resolver:    resolver,
		policy:      policy,
	}
}

// Calculate produces one quote per (hotel, occupancy configuration).
// Hotels that do not sell a fitting room type, or have no rate card for
// the requested board, are skipped rather than failing the batch; the
// admin calculator wants the priceable results, not an all-or-nothing
// answer. A missing flight block, by contrast, aborts everything.
func (a *Aggregator) Calculate(ctx context.Context, req CalculateRequest) ([]PackageQuote, error) {
	if len(req.Parties) == 0 {
		return nil, ErrNoOccupancy
	}
	board := req.Board
	if board == "" {
		board = catalog.BoardBreakfast
	}

	// Classify every party up front: a malformed party is a validation
	// error and must fail before any store access.
	assignments := make([]occupancy.Assignment, len(req.Parties))
	for i, party := range req.Parties {
		asg, err := occupancy.Classify(party, a.policy.AgeBands)
		if err != nil {
			return nil, err
		}
		assignments[i] = asg
	}

	hotels, err := a.hotels(ctx, req)
	if err != nil {
		return nil, err
	}

	flight, err := a.flightBlock(ctx, req, hotels)
	if err != nil {
		return nil, err
	}
	// An unpriced block (SeatPrice 0) falls back to the policy default;
	// see catalog.FlightBlock.
	seatPrice := flight.SeatPrice
	if seatPrice == 0 {
		seatPrice = a.policy.FlightSeatPrice
	}

	// Quotes are keyed by (hotel, occupancy label); a repeated
	// configuration overwrites its slot instead of duplicating it.
	var quotes []PackageQuote
	index := make(map[string]int)

	for _, hotel := range hotels {
		for i, party := range req.Parties {
			quote, err := a.quote(ctx, hotel, party, assignments[i], board, req.Stay, seatPrice, req.IncludeTransfer)
			if err != nil {
				if errors.Is(err, catalog.ErrRoomNotFound) || errors.Is(err, catalog.ErrRateNotFound) {
					// Deliberate: this hotel simply has nothing to offer
					// for the configuration, exclude it from results.
					continue
				}
				return nil, err
			}

			k := quote.HotelID + "|" + quote.OccupancyLabel
			if at, ok := index[k]; ok {
				quotes[at] = *quote
				continue
			}
			index[k] = len(quotes)
			quotes = append(quotes, *quote)
		}
	}

	return quotes, nil
}

func (a *Aggregator) hotels(ctx context.Context, req CalculateRequest) ([]*catalog.Hotel, error) {
	if req.HotelID != "" {
		hotel, err := a.catalogRepo.GetHotel(ctx, req.HotelID)
		if err != nil {
			return nil, err
		}
		return []*catalog.Hotel{hotel}, nil
	}
	if req.CityID == "" {
		return nil, ErrNoDestination
	}
	hotels, _, err := a.catalogRepo.ListHotels(ctx, catalog.HotelFilter{CityID: req.CityID, PageSize: 100})
	if err != nil {
		return nil, err
	}
	return hotels, nil
}

func (a *Aggregator) flightBlock(ctx context.Context, req CalculateRequest, hotels []*catalog.Hotel) (*catalog.FlightBlock, error) {
	if req.FlightBlockID != "" {
		return a.catalogRepo.GetFlightBlock(ctx, req.FlightBlockID)
	}

	cityID := req.CityID
	if cityID == "" && len(hotels) > 0 {
		cityID = hotels[0].CityID
	}
	if cityID == "" {
		return nil, ErrMissingFlightSelection
	}

	fb, err := a.catalogRepo.FindFlightBlock(ctx, cityID)
	if err != nil {
		if errors.Is(err, catalog.ErrFlightBlockNotFound) {
			return nil, ErrMissingFlightSelection
		}
		return nil, err
	}
	return fb, nil
}

func (a *Aggregator) quote(
	ctx context.Context,
	hotel *catalog.Hotel,
	party occupancy.Party,
	asg occupancy.Assignment,
	board string,
	stay daterange.Range,
	seatPrice int64,
	includeTransfer bool,
) (*PackageQuote, error) {
	room, err := a.catalogRepo.FindRoom(ctx, hotel.ID, asg.RoomType)
	if err != nil {
		return nil, err
	}
	rc, err := a.catalogRepo.GetRateCard(ctx, room.ID, board)
	if err != nil {
		return nil, err
	}

	hotelCost, err := a.resolver.StayPrice(ctx, rc, party, asg, stay)
	if err != nil {
		return nil, err
	}

	// Flights charge per head with no age discount; infants pay the same
	// seat price as adults, unlike hotel beds.
	flightCost := int64(party.TotalPeople()) * seatPrice

	var transferCost int64
	if includeTransfer {
		transferCost = a.policy.TransferCost(party.TotalPeople())
	}

	return &PackageQuote{
		HotelID:        hotel.ID,
		HotelName:      hotel.Name,
		OccupancyLabel: party.Label(),
		Adults:         party.Adults,
		Children:       len(party.ChildAges),
		RoomType:       asg.RoomType,
		Board:          board,
		Nights:         stay.Nights(),
		FlightCost:     flightCost,
		HotelCost:      hotelCost,
		TransferCost:   transferCost,
		TotalCost:      flightCost + hotelCost + transferCost,
		Currency:       rc.Currency,
	}, nil
}
