package availability

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/Edonabdullahu1/city-sub002/internal/daterange"
)

// memoryRepository keeps availability rows in process memory. One mutex
// guards the whole store, which also serializes racing bookings the way
// row locks do in postgres. Used by unit tests and local development.
type memoryRepository struct {
	mu   sync.Mutex
	days map[string]*Day // key roomID + "/" + YYYY-MM-DD
}

// NewMemoryRepository creates an empty in-memory availability store.
func NewMemoryRepository() Repository {
	return &memoryRepository{days: make(map[string]*Day)}
}

func key(roomID string, day time.Time) string {
	return roomID + "/" + day.Format(daterange.DayFormat)
}

func (r *memoryRepository) GetRange(_ context.Context, roomID string, rng daterange.Range) ([]*Day, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var days []*Day
	for _, d := range rng.Days() {
		if stored, ok := r.days[key(roomID, d)]; ok {
			copied := *stored
			days = append(days, &copied)
		}
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Date.Before(days[j].Date) })
	return days, nil
}

func (r *memoryRepository) GetDay(_ context.Context, roomID string, day time.Time) (*Day, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.days[key(roomID, daterange.Truncate(day))]
	if !ok {
		return nil, nil
	}
	copied := *stored
	return &copied, nil
}

func (r *memoryRepository) Initialize(_ context.Context, roomID string, rng daterange.Range, totalRooms int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	// Validate the whole range before touching anything.
	for _, d := range rng.Days() {
		if stored, ok := r.days[key(roomID, d)]; ok && stored.BookedRooms > totalRooms {
			return ErrCapacityConflict
		}
	}

	for _, d := range rng.Days() {
		k := key(roomID, d)
		if stored, ok := r.days[k]; ok {
			stored.TotalRooms = totalRooms
			continue
		}
		r.days[k] = &Day{RoomID: roomID, Date: d, TotalRooms: totalRooms}
	}
	return nil
}

// ensureLocked materializes a day row with defaults. Callers must hold mu.
func (r *memoryRepository) ensureLocked(roomID string, day time.Time, defaultTotal int) *Day {
	k := key(roomID, day)
	if stored, ok := r.days[k]; ok {
		return stored
	}
	d := &Day{RoomID: roomID, Date: day, TotalRooms: defaultTotal}
	r.days[k] = d
	return d
}

func (r *memoryRepository) SetOverride(_ context.Context, roomID string, rng daterange.Range, override *int64, defaultTotal int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, day := range rng.Days() {
		d := r.ensureLocked(roomID, day, defaultTotal)
		if override == nil {
			d.PriceOverride = nil
		} else {
			v := *override
			d.PriceOverride = &v
		}
	}
	return nil
}

func (r *memoryRepository) SetBlocked(_ context.Context, roomID string, rng daterange.Range, blocked bool, defaultTotal int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, day := range rng.Days() {
		d := r.ensureLocked(roomID, day, defaultTotal)
		d.IsBlocked = blocked
	}
	return nil
}

func (r *memoryRepository) Book(_ context.Context, roomID string, rng daterange.Range, defaultTotal int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	// Check every day first so a failed booking leaves nothing half-taken.
	for _, day := range rng.Days() {
		d := r.ensureLocked(roomID, day, defaultTotal)
		if d.IsBlocked || d.BookedRooms >= d.TotalRooms {
			return ErrConcurrencyConflict
		}
	}

	for _, day := range rng.Days() {
		r.days[key(roomID, day)].BookedRooms++
	}
	return nil
}

func (r *memoryRepository) Release(_ context.Context, roomID string, rng daterange.Range) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, day := range rng.Days() {
		stored, ok := r.days[key(roomID, day)]
		if !ok || stored.BookedRooms == 0 {
			return ErrReleaseConflict
		}
	}

	for _, day := range rng.Days() {
		r.days[key(roomID, day)].BookedRooms--
	}
	return nil
}
