package usecase

import (
	"context"
	"testing"

	"nightcare/internal/data/entity"
	"nightcare/internal/dto/request"
	"nightcare/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func sequentialAmbulanceRepo() *MockAmbulanceRepository {
	nextID := int64(0)

	repo := &MockAmbulanceRepository{}
	repo.CreateFunc = func(_ context.Context, booking *entity.AmbulanceBooking) (int64, error) {
		nextID++
		return nextID, nil
	}
	return repo
}

func TestBookAmbulance(t *testing.T) {
	repo := sequentialAmbulanceRepo()
	var captured *entity.AmbulanceBooking
	inner := repo.CreateFunc
	repo.CreateFunc = func(ctx context.Context, booking *entity.AmbulanceBooking) (int64, error) {
		captured = booking
		return inner(ctx, booking)
	}

	service := NewAmbulanceService(repo, testConfig(), zap.NewNop())

	resp, err := service.Book(context.Background(), &request.BookAmbulanceRequest{
		Phone:          "9876543210",
		PickupLocation: "12 MG Road",
		Destination:    "City Hospital",
	})

	assert.NoError(t, err)
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, int64(1), resp.BookingID)
	assert.Equal(t, 5, resp.ETAMinutes)
	assert.Equal(t, "Ambulance booked, driver will contact you shortly.", resp.Message)

	assert.Equal(t, entity.BookingStatusBooked, captured.Status)
	assert.Equal(t, "12 MG Road", captured.PickupLocation)
}

func TestBookAmbulanceIncreasingIDs(t *testing.T) {
	repo := sequentialAmbulanceRepo()
	service := NewAmbulanceService(repo, testConfig(), zap.NewNop())
	ctx := context.Background()

	var lastID int64
	for i := 0; i < 3; i++ {
		resp, err := service.Book(ctx, &request.BookAmbulanceRequest{PickupLocation: "12 MG Road"})
		assert.NoError(t, err)
		assert.Greater(t, resp.BookingID, lastID)
		lastID = resp.BookingID
	}
}

func TestBookAmbulanceOptionalFieldsDefaultEmpty(t *testing.T) {
	repo := sequentialAmbulanceRepo()
	var captured *entity.AmbulanceBooking
	inner := repo.CreateFunc
	repo.CreateFunc = func(ctx context.Context, booking *entity.AmbulanceBooking) (int64, error) {
		captured = booking
		return inner(ctx, booking)
	}

	service := NewAmbulanceService(repo, testConfig(), zap.NewNop())

	_, err := service.Book(context.Background(), &request.BookAmbulanceRequest{
		PickupLocation: "12 MG Road",
	})

	assert.NoError(t, err)
	assert.Equal(t, "", captured.UserPhone)
	assert.Equal(t, "", captured.Destination)
}

func TestBookAmbulanceRequiresPickup(t *testing.T) {
	repo := sequentialAmbulanceRepo()
	service := NewAmbulanceService(repo, testConfig(), zap.NewNop())
	ctx := context.Background()

	for _, pickup := range []string{"", "   "} {
		_, err := service.Book(ctx, &request.BookAmbulanceRequest{PickupLocation: pickup})

		var validationErr *apperrors.ValidationError
		assert.ErrorAs(t, err, &validationErr)
	}

	// no row was inserted for either attempt
	assert.Equal(t, int32(0), repo.CreateCallCount)
}
