package catalog

import (
	"context"
)

type Service interface {
	GetHotel(ctx context.Context, id string) (*Hotel, error)
	ListHotels(ctx context.Context, filter HotelFilter) ([]*Hotel, int, error)
	GetRoom(ctx context.Context, id string) (*Room, error)
	ListRooms(ctx context.Context, hotelID string) ([]*Room, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) GetHotel(ctx context.Context, id string) (*Hotel, error) {
	return s.repo.GetHotel(ctx, id)
}

func (s *service) ListHotels(ctx context.Context, filter HotelFilter) ([]*Hotel, int, error) {
	return s.repo.ListHotels(ctx, filter)
}

func (s *service) GetRoom(ctx context.Context, id string) (*Room, error) {
	return s.repo.GetRoom(ctx, id)
}

func (s *service) ListRooms(ctx context.Context, hotelID string) ([]*Room, error) {
	// Hotel must exist; an unknown hotel is a 404, not an empty list.
	if _, err := s.repo.GetHotel(ctx, hotelID); err != nil {
		return nil, err
	}
	return s.repo.ListRooms(ctx, hotelID)
}
