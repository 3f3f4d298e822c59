package service

import (
	"context"
	"slices"
	"strings"
	"time"

	"github.com/maheshrc27/marketing-hub/internal/models"
	"github.com/maheshrc27/marketing-hub/internal/repository"
	"github.com/maheshrc27/marketing-hub/internal/transfer"
)

const MsgBookingReceived = "Booking received! We'll confirm via email."

type BookingService interface {
	Submit(ctx context.Context, userID string, req *transfer.BookingRequest) (*models.Booking, error)
	List(ctx context.Context, userID string) ([]*models.Booking, error)
}

type bookingService struct {
	b   repository.BookingRepository
	now func() time.Time
}

func NewBookingService(b repository.BookingRepository) BookingService {
	return &bookingService{
		b:   b,
		now: time.Now,
	}
}

func (s *bookingService) Submit(ctx context.Context, userID string, req *transfer.BookingRequest) (*models.Booking, error) {
	if req == nil {
		return nil, logErr(invalid("Choose a service to book."))
	}
	serviceType := strings.TrimSpace(req.ServiceType)
	if serviceType == "" {
		serviceType = models.ServiceTypes[0]
	}
	if !slices.Contains(models.ServiceTypes, serviceType) {
		return nil, logErr(invalid("Choose a service to book."))
	}

	now := s.now().UTC()
	booking := &models.Booking{
		UserID:        userID,
		ServiceType:   serviceType,
		RequestedTime: req.RequestedTime,
		Notes:         req.Notes,
		CreatedAt:     now,
	}
	if booking.RequestedTime.IsZero() {
		booking.RequestedTime = now
	}
	if err := s.b.Create(ctx, booking); err != nil {
		return nil, err
	}
	return booking, nil
}

func (s *bookingService) List(ctx context.Context, userID string) ([]*models.Booking, error) {
	return s.b.ListByUserID(ctx, userID)
}
