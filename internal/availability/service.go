package availability

import (
	"context"

	"github.com/Edonabdullahu1/city-sub002/internal/catalog"
	"github.com/Edonabdullahu1/city-sub002/internal/daterange"
)

type Service interface {
	// GetCalendar returns one record per day in the range. Days nobody has
	// touched come back synthesized from the room's configured capacity:
	// absence means "untouched", never "unavailable".
	GetCalendar(ctx context.Context, roomID string, rng daterange.Range) ([]Day, error)

	Initialize(ctx context.Context, roomID string, rng daterange.Range, totalRooms int) error
	UpdatePricing(ctx context.Context, roomID string, rng daterange.Range, override *int64) error
	SetBlocked(ctx context.Context, roomID string, rng daterange.Range, blocked bool) error

	// ConfirmBooking takes one room per night, atomically across the stay.
	ConfirmBooking(ctx context.Context, roomID string, rng daterange.Range) error

	// ReleaseBooking gives the rooms back on cancellation.
	ReleaseBooking(ctx context.Context, roomID string, rng daterange.Range) error
}

type service struct {
	repo        Repository
	catalogRepo catalog.Repository
}

func NewService(repo Repository, catalogRepo catalog.Repository) Service {
	return &service{
		repo:        repo,
		catalogRepo: catalogRepo,
	}
}

// room validates the room exists and yields its configured capacity for
// synthesizing untouched days. Validation runs before any calendar write.
func (s *service) room(ctx context.Context, roomID string) (*catalog.Room, error) {
	return s.catalogRepo.GetRoom(ctx, roomID)
}

func (s *service) GetCalendar(ctx context.Context, roomID string, rng daterange.Range) ([]Day, error) {
	room, err := s.room(ctx, roomID)
	if err != nil {
		return nil, err
	}

	stored, err := s.repo.GetRange(ctx, roomID, rng)
	if err != nil {
		return nil, err
	}

	byDay := make(map[string]*Day, len(stored))
	for _, d := range stored {
		byDay[d.Date.Format(daterange.DayFormat)] = d
	}

	calendar := make([]Day, 0, rng.Nights())
	for _, day := range rng.Days() {
		if d, ok := byDay[day.Format(daterange.DayFormat)]; ok {
			calendar = append(calendar, *d)
			continue
		}
		calendar = append(calendar, Day{
			RoomID:     roomID,
			Date:       day,
			TotalRooms: room.TotalRooms,
		})
	}
	return calendar, nil
}

func (s *service) Initialize(ctx context.Context, roomID string, rng daterange.Range, totalRooms int) error {
	if totalRooms < 0 {
		return ErrInvalidTotalRooms
	}
	if _, err := s.room(ctx, roomID); err != nil {
		return err
	}
	return s.repo.Initialize(ctx, roomID, rng, totalRooms)
}

func (s *service) UpdatePricing(ctx context.Context, roomID string, rng daterange.Range, override *int64) error {
	if override != nil && *override < 0 {
		return ErrInvalidPriceOverride
	}
	room, err := s.room(ctx, roomID)
	if err != nil {
		return err
	}
	return s.repo.SetOverride(ctx, roomID, rng, override, room.TotalRooms)
}

func (s *service) SetBlocked(ctx context.Context, roomID string, rng daterange.Range, blocked bool) error {
	room, err := s.room(ctx, roomID)
	if err != nil {
		return err
	}
	return s.repo.SetBlocked(ctx, roomID, rng, blocked, room.TotalRooms)
}

func (s *service) ConfirmBooking(ctx context.Context, roomID string, rng daterange.Range) error {
	room, err := s.room(ctx, roomID)
	if err != nil {
		return err
	}
	return s.repo.Book(ctx, roomID, rng, room.TotalRooms)
}

func (s *service) ReleaseBooking(ctx context.Context, roomID string, rng daterange.Range) error {
	if _, err := s.room(ctx, roomID); err != nil {
		return err
	}
	return s.repo.Release(ctx, roomID, rng)
}
