package repository

import (
	"context"
	"fmt"

	"nightcare/internal/data/entity"
	"nightcare/pkg/database"

	"go.uber.org/zap"
)

type AmbulanceRepository interface {
	Create(ctx context.Context, booking *entity.AmbulanceBooking) (int64, error)
	CountAll(ctx context.Context) (int64, error)
}

type ambulanceRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewAmbulanceRepository(db database.PgxIface, log *zap.Logger) AmbulanceRepository {
	return &ambulanceRepository{
		db:  db,
		log: log.With(zap.String("repository", "ambulance")),
	}
}

// Create appends a booking row and returns the generated id.
// Validation happened in the caller; nothing is re-checked here.
func (r *ambulanceRepository) Create(ctx context.Context, booking *entity.AmbulanceBooking) (int64, error) {
	query := `
		INSERT INTO ambulance_bookings (user_phone, pickup_location, destination, status, created_at)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING id
	`

	var id int64
	err := r.db.QueryRow(ctx, query,
		booking.UserPhone,
		booking.PickupLocation,
		booking.Destination,
		booking.Status,
	).Scan(&id)

	if err != nil {
		r.log.Error("Failed to create ambulance booking",
			zap.Error(err),
			zap.String("pickup_location", booking.PickupLocation),
		)
		return 0, fmt.Errorf("create ambulance booking: %w", err)
	}

	return id, nil
}

func (r *ambulanceRepository) CountAll(ctx context.Context) (int64, error) {
	query := `SELECT COUNT(*) FROM ambulance_bookings`

	var count int64
	err := r.db.QueryRow(ctx, query).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count ambulance bookings", zap.Error(err))
		return 0, fmt.Errorf("count all ambulance bookings: %w", err)
	}

	return count, nil
}
