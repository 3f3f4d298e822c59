package repository

import (
	"context"

	"github.com/maheshrc27/marketing-hub/internal/models"
	"github.com/maheshrc27/marketing-hub/internal/store"
)

type BookingRepository interface {
	Create(ctx context.Context, booking *models.Booking) error
	ListByUserID(ctx context.Context, userID string) ([]*models.Booking, error)
}

type bookingRepository struct {
	rs store.RecordStore
}

func NewBookingRepository(rs store.RecordStore) BookingRepository {
	return &bookingRepository{rs: rs}
}

func (r *bookingRepository) Create(ctx context.Context, booking *models.Booking) error {
	if booking.ID == "" {
		booking.ID = newID()
	}
	_, err := r.rs.Save(ctx, store.Private, bookingToRecord(booking))
	return err
}

func (r *bookingRepository) ListByUserID(ctx context.Context, userID string) ([]*models.Booking, error) {
	return fetchAll(ctx, r.rs, store.Private, store.Query{
		Type:  RecordBooking,
		Where: userScope(userID, nil),
		Sort:  []store.Sort{{Field: "requestedTime"}},
	}, bookingFromRecord)
}
