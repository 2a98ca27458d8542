package usecase

import (
	"context"
	"strings"

	"nightcare/internal/data/entity"
	"nightcare/internal/data/repository"
	"nightcare/internal/dto/request"
	"nightcare/internal/dto/response"
	"nightcare/pkg/apperrors"
	"nightcare/pkg/utils"

	"go.uber.org/zap"
)

const bookedMessage = "Ambulance booked, driver will contact you shortly."

type AmbulanceService interface {
	Book(ctx context.Context, req *request.BookAmbulanceRequest) (*response.BookAmbulanceResponse, error)
}

type ambulanceService struct {
	ambulanceRepo repository.AmbulanceRepository
	config        *utils.Config
	log           *zap.Logger
}

func NewAmbulanceService(
	ambulanceRepo repository.AmbulanceRepository,
	config *utils.Config,
	log *zap.Logger,
) AmbulanceService {
	return &ambulanceService{
		ambulanceRepo: ambulanceRepo,
		config:        config,
		log:           log,
	}
}

// Book records a booking for any caller, registered or not. Phone and
// destination are optional and default to empty strings; the status is
// always BOOKED and the ETA is a fixed placeholder.
func (s *ambulanceService) Book(ctx context.Context, req *request.BookAmbulanceRequest) (*response.BookAmbulanceResponse, error) {
	req.Phone = strings.TrimSpace(req.Phone)
	req.PickupLocation = strings.TrimSpace(req.PickupLocation)
	req.Destination = strings.TrimSpace(req.Destination)
	phone, pickup, destination := req.Phone, req.PickupLocation, req.Destination

	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Booking rejected, no pickup location", zap.Any("errors", errs))
		return nil, apperrors.NewValidation("pickup_location required")
	}

	booking := &entity.AmbulanceBooking{
		UserPhone:      phone,
		PickupLocation: pickup,
		Destination:    destination,
		Status:         entity.BookingStatusBooked,
	}

	bookingID, err := s.ambulanceRepo.Create(ctx, booking)
	if err != nil {
		s.log.Error("Failed to book ambulance",
			zap.Error(err),
			zap.String("pickup_location", pickup))
		return nil, apperrors.NewStore("create booking", err)
	}

	s.log.Info("Ambulance booked",
		zap.Int64("booking_id", bookingID),
		zap.String("pickup_location", pickup))

	return &response.BookAmbulanceResponse{
		Status:     "ok",
		BookingID:  bookingID,
		ETAMinutes: s.config.Ambulance.ETAMinutes,
		Message:    bookedMessage,
	}, nil
}
