package catalog

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"
)

// MemoryRepository is an in-memory catalog used by unit tests and local
// development. Seed it with the Add* helpers.
type MemoryRepository struct {
	mu           sync.RWMutex
	hotels       map[string]*Hotel
	rooms        map[string]*Room
	rateCards    map[string]*RateCard // key roomID + "/" + board
	flightBlocks map[string]*FlightBlock
}

// NewMemoryRepository creates an empty in-memory catalog.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		hotels:       make(map[string]*Hotel),
		rooms:        make(map[string]*Room),
		rateCards:    make(map[string]*RateCard),
		flightBlocks: make(map[string]*FlightBlock),
	}
}

// AddHotel seeds a hotel, assigning an ID when missing.
func (r *MemoryRepository) AddHotel(h Hotel) *Hotel {
	r.mu.Lock()
	defer r.mu.Unlock()
	if h.ID == "" {
		h.ID = uuid.NewString()
	}
	r.hotels[h.ID] = &h
	return &h
}

// AddRoom seeds a room, assigning an ID when missing.
func (r *MemoryRepository) AddRoom(room Room) *Room {
	r.mu.Lock()
	defer r.mu.Unlock()
	if room.ID == "" {
		room.ID = uuid.NewString()
	}
	r.rooms[room.ID] = &room
	return &room
}

// AddRateCard seeds a rate card for an existing room.
func (r *MemoryRepository) AddRateCard(rc RateCard) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if room, ok := r.rooms[rc.RoomID]; ok {
		rc.RoomType = room.RoomType
	}
	r.rateCards[rc.RoomID+"/"+rc.Board] = &rc
}

// AddFlightBlock seeds a flight block, assigning an ID when missing.
func (r *MemoryRepository) AddFlightBlock(fb FlightBlock) *FlightBlock {
	r.mu.Lock()
	defer r.mu.Unlock()
	if fb.ID == "" {
		fb.ID = uuid.NewString()
	}
	r.flightBlocks[fb.ID] = &fb
	return &fb
}

func (r *MemoryRepository) GetHotel(_ context.Context, id string) (*Hotel, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	h, ok := r.hotels[id]
	if !ok {
		return nil, ErrHotelNotFound
	}
	copied := *h
	return &copied, nil
}

func (r *MemoryRepository) ListHotels(_ context.Context, filter HotelFilter) ([]*Hotel, int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var hotels []*Hotel
	for _, h := range r.hotels {
		if filter.CityID != "" && h.CityID != filter.CityID {
			continue
		}
		copied := *h
		hotels = append(hotels, &copied)
	}
	sort.Slice(hotels, func(i, j int) bool { return hotels[i].Name < hotels[j].Name })

	total := len(hotels)
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = 20
	}
	start := (filter.Page - 1) * filter.PageSize
	if start > total {
		start = total
	}
	end := start + filter.PageSize
	if end > total {
		end = total
	}
	return hotels[start:end], total, nil
}

func (r *MemoryRepository) GetRoom(_ context.Context, id string) (*Room, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	room, ok := r.rooms[id]
	if !ok {
		return nil, ErrRoomNotFound
	}
	copied := *room
	return &copied, nil
}

func (r *MemoryRepository) ListRooms(_ context.Context, hotelID string) ([]*Room, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var rooms []*Room
	for _, room := range r.rooms {
		if room.HotelID == hotelID {
			copied := *room
			rooms = append(rooms, &copied)
		}
	}
	sort.Slice(rooms, func(i, j int) bool { return rooms[i].RoomType < rooms[j].RoomType })
	return rooms, nil
}

func (r *MemoryRepository) FindRoom(_ context.Context, hotelID, roomType string) (*Room, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, room := range r.rooms {
		if room.HotelID == hotelID && room.RoomType == roomType {
			copied := *room
			return &copied, nil
		}
	}
	return nil, ErrRoomNotFound
}

func (r *MemoryRepository) GetRateCard(_ context.Context, roomID, board string) (*RateCard, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rc, ok := r.rateCards[roomID+"/"+board]
	if !ok {
		return nil, ErrRateNotFound
	}
	copied := *rc
	return &copied, nil
}

func (r *MemoryRepository) GetFlightBlock(_ context.Context, id string) (*FlightBlock, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	fb, ok := r.flightBlocks[id]
	if !ok {
		return nil, ErrFlightBlockNotFound
	}
	copied := *fb
	return &copied, nil
}

func (r *MemoryRepository) FindFlightBlock(_ context.Context, cityID string) (*FlightBlock, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var best *FlightBlock
	for _, fb := range r.flightBlocks {
		if fb.CityID != cityID {
			continue
		}
		if best == nil || fb.SeatPrice < best.SeatPrice {
			best = fb
		}
	}
	if best == nil {
		return nil, ErrFlightBlockNotFound
	}
	copied := *best
	return &copied, nil
}
