package pricing

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Edonabdullahu1/city-sub002/internal/availability"
	"github.com/Edonabdullahu1/city-sub002/internal/catalog"
	"github.com/Edonabdullahu1/city-sub002/internal/occupancy"
)

type fixture struct {
	catalog *catalog.MemoryRepository
	avail   availability.Repository
	agg     *Aggregator
	hotel   *catalog.Hotel
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	catalogRepo := catalog.NewMemoryRepository()
	avail := availability.NewMemoryRepository()

	hotel := catalogRepo.AddHotel(catalog.Hotel{CityID: "city-1", Name: "Hotel Adria", Stars: 4})

	for roomType, prices := range map[string][4]int64{
		occupancy.RoomSingle:         {10000, 16000, 6000, 4000},
		occupancy.RoomDouble:         {10000, 16000, 6000, 4000},
		occupancy.RoomDoubleExtraBed: {11000, 18000, 7000, 5000},
	} {
		room := catalogRepo.AddRoom(catalog.Room{HotelID: hotel.ID, RoomType: roomType, TotalRooms: 10})
		catalogRepo.AddRateCard(catalog.RateCard{
			RoomID:     room.ID,
			Board:      catalog.BoardBreakfast,
			Single:     prices[0],
			Double:     prices[1],
			ExtraBed:   prices[2],
			ChildPrice: prices[3],
			Currency:   "EUR",
		})
	}

	catalogRepo.AddFlightBlock(catalog.FlightBlock{CityID: "city-1", Name: "Summer block", SeatPrice: 12000, Seats: 180})

	return &fixture{
		catalog: catalogRepo,
		avail:   avail,
		agg:     NewAggregator(catalogRepo, NewResolver(avail), DefaultPolicy()),
		hotel:   hotel,
	}
}

func TestCalculateSingleOccupancy(t *testing.T) {
	f := newFixture(t)

	quotes, err := f.agg.Calculate(context.Background(), CalculateRequest{
		HotelID: f.hotel.ID,
		Stay:    mustRange(t, "2024-06-01", "2024-06-04"),
		Parties: []occupancy.Party{{Adults: 2}},
	})
	require.NoError(t, err)
	require.Len(t, quotes, 1)

	q := quotes[0]
	assert.Equal(t, "2 Adults", q.OccupancyLabel)
	assert.Equal(t, occupancy.RoomDouble, q.RoomType)
	assert.Equal(t, catalog.BoardBreakfast, q.Board)
	assert.Equal(t, 3, q.Nights)
	assert.Equal(t, int64(24000), q.FlightCost) // 2 x 12000
	assert.Equal(t, int64(48000), q.HotelCost)  // 3 x 16000
	assert.Equal(t, int64(0), q.TransferCost)
	assert.Equal(t, int64(72000), q.TotalCost)
	assert.Equal(t, "EUR", q.Currency)
}

func TestCalculateFlightChargesEveryHead(t *testing.T) {
	f := newFixture(t)

	// 2 adults + 1 infant: the hotel beds the infant for free, the flight does not.
	quotes, err := f.agg.Calculate(context.Background(), CalculateRequest{
		HotelID:         f.hotel.ID,
		Stay:            mustRange(t, "2024-06-01", "2024-06-03"),
		Parties:         []occupancy.Party{{Adults: 2, ChildAges: []int{1}}},
		IncludeTransfer: true,
	})
	require.NoError(t, err)
	require.Len(t, quotes, 1)

	q := quotes[0]
	assert.Equal(t, int64(36000), q.FlightCost) // 3 seats x 12000, infant included
	// 2 nights double+extra-bed room at 18000, infant free.
	assert.Equal(t, int64(36000), q.HotelCost)
	// 3 people fit a sedan: 4000 each way.
	assert.Equal(t, int64(8000), q.TransferCost)
	assert.Equal(t, int64(80000), q.TotalCost)
}

func TestCalculateTransferTiers(t *testing.T) {
	policy := DefaultPolicy()

	assert.Equal(t, int64(8000), policy.TransferCost(1))   // sedan
	assert.Equal(t, int64(8000), policy.TransferCost(3))   // sedan, boundary
	assert.Equal(t, int64(14000), policy.TransferCost(4))  // van
	assert.Equal(t, int64(14000), policy.TransferCost(7))  // van, boundary
	assert.Equal(t, int64(24000), policy.TransferCost(8))  // minibus
	assert.Equal(t, int64(24000), policy.TransferCost(30)) // minibus takes the rest
}

func TestCalculateUnpricedFlightBlockUsesPolicyDefault(t *testing.T) {
	catalogRepo := catalog.NewMemoryRepository()
	hotel := catalogRepo.AddHotel(catalog.Hotel{CityID: "city-3", Name: "Hotel Lido", Stars: 4})
	room := catalogRepo.AddRoom(catalog.Room{HotelID: hotel.ID, RoomType: occupancy.RoomDouble, TotalRooms: 5})
	catalogRepo.AddRateCard(catalog.RateCard{RoomID: room.ID, Board: catalog.BoardBreakfast, Double: 16000, Currency: "EUR"})

	// Block negotiated without a price of its own.
	catalogRepo.AddFlightBlock(catalog.FlightBlock{CityID: "city-3", Name: "Charter block", Seats: 120})

	agg := NewAggregator(catalogRepo, NewResolver(availability.NewMemoryRepository()), DefaultPolicy())

	quotes, err := agg.Calculate(context.Background(), CalculateRequest{
		HotelID: hotel.ID,
		Stay:    mustRange(t, "2024-06-01", "2024-06-03"),
		Parties: []occupancy.Party{{Adults: 2}},
	})
	require.NoError(t, err)
	require.Len(t, quotes, 1)
	assert.Equal(t, int64(24000), quotes[0].FlightCost) // 2 seats at the 12000 default
}

func TestCalculateIdempotent(t *testing.T) {
	f := newFixture(t)

	req := CalculateRequest{
		HotelID: f.hotel.ID,
		Stay:    mustRange(t, "2024-06-01", "2024-06-04"),
		// The same configuration twice: deduplicated by occupancy label.
		Parties: []occupancy.Party{{Adults: 2}, {Adults: 1}, {Adults: 2}},
	}

	first, err := f.agg.Calculate(context.Background(), req)
	require.NoError(t, err)
	second, err := f.agg.Calculate(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	require.Len(t, first, 2)
	assert.Equal(t, "2 Adults", first[0].OccupancyLabel)
	assert.Equal(t, "1 Adult", first[1].OccupancyLabel)
}

func TestCalculateMissingFlightAbortsEverything(t *testing.T) {
	catalogRepo := catalog.NewMemoryRepository()
	hotel := catalogRepo.AddHotel(catalog.Hotel{CityID: "city-2", Name: "Hotel Orphan", Stars: 3})
	room := catalogRepo.AddRoom(catalog.Room{HotelID: hotel.ID, RoomType: occupancy.RoomDouble, TotalRooms: 5})
	catalogRepo.AddRateCard(catalog.RateCard{RoomID: room.ID, Board: catalog.BoardBreakfast, Double: 16000, Currency: "EUR"})

	agg := NewAggregator(catalogRepo, NewResolver(availability.NewMemoryRepository()), DefaultPolicy())

	quotes, err := agg.Calculate(context.Background(), CalculateRequest{
		HotelID: hotel.ID,
		Stay:    mustRange(t, "2024-06-01", "2024-06-04"),
		Parties: []occupancy.Party{{Adults: 2}},
	})
	assert.ErrorIs(t, err, ErrMissingFlightSelection)
	assert.Nil(t, quotes)
}

func TestCalculateSkipsUnpriceableHotels(t *testing.T) {
	f := newFixture(t)

	// Second hotel in the city sells no Single room: the 1-adult quote for
	// it is skipped, the rest of the batch survives.
	other := f.catalog.AddHotel(catalog.Hotel{CityID: "city-1", Name: "Hotel Zeta", Stars: 5})
	room := f.catalog.AddRoom(catalog.Room{HotelID: other.ID, RoomType: occupancy.RoomDouble, TotalRooms: 8})
	f.catalog.AddRateCard(catalog.RateCard{RoomID: room.ID, Board: catalog.BoardBreakfast, Double: 30000, Currency: "EUR"})

	quotes, err := f.agg.Calculate(context.Background(), CalculateRequest{
		CityID:  "city-1",
		Stay:    mustRange(t, "2024-06-01", "2024-06-04"),
		Parties: []occupancy.Party{{Adults: 1}, {Adults: 2}},
	})
	require.NoError(t, err)

	labels := make(map[string][]string)
	for _, q := range quotes {
		labels[q.HotelName] = append(labels[q.HotelName], q.OccupancyLabel)
	}
	assert.ElementsMatch(t, []string{"1 Adult", "2 Adults"}, labels["Hotel Adria"])
	assert.ElementsMatch(t, []string{"2 Adults"}, labels["Hotel Zeta"])
}

func TestCalculateInvalidPartyRejectedUpFront(t *testing.T) {
	f := newFixture(t)

	_, err := f.agg.Calculate(context.Background(), CalculateRequest{
		HotelID: f.hotel.ID,
		Stay:    mustRange(t, "2024-06-01", "2024-06-04"),
		Parties: []occupancy.Party{{Adults: 0, ChildAges: []int{5}}},
	})
	assert.ErrorIs(t, err, occupancy.ErrInvalidParty)

	_, err = f.agg.Calculate(context.Background(), CalculateRequest{
		HotelID: f.hotel.ID,
		Stay:    mustRange(t, "2024-06-01", "2024-06-04"),
	})
	assert.ErrorIs(t, err, ErrNoOccupancy)
}
