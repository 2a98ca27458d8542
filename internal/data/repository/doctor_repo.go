package repository

import (
	"context"
	"fmt"

	"nightcare/internal/data/entity"
	"nightcare/pkg/database"

	"go.uber.org/zap"
)

type DoctorRepository interface {
	FindAll(ctx context.Context) ([]*entity.Doctor, error)
	CountAll(ctx context.Context) (int64, error)
	CreateBatch(ctx context.Context, doctors []*entity.Doctor) error
}

type doctorRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewDoctorRepository(db database.PgxIface, log *zap.Logger) DoctorRepository {
	return &doctorRepository{
		db:  db,
		log: log.With(zap.String("repository", "doctor")),
	}
}

// FindAll returns every doctor, nearest first; ties keep insertion order.
func (r *doctorRepository) FindAll(ctx context.Context) ([]*entity.Doctor, error) {
	query := `
		SELECT id, name, speciality, rating, distance_km
		FROM doctors
		ORDER BY distance_km ASC, id ASC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find doctors", zap.Error(err))
		return nil, fmt.Errorf("find all doctors: %w", err)
	}
	defer rows.Close()

	var doctors []*entity.Doctor
	for rows.Next() {
		var doctor entity.Doctor
		err := rows.Scan(
			&doctor.ID,
			&doctor.Name,
			&doctor.Speciality,
			&doctor.Rating,
			&doctor.DistanceKm,
		)
		if err != nil {
			r.log.Error("Failed to scan doctor row", zap.Error(err))
			return nil, fmt.Errorf("scan doctor row: %w", err)
		}
		doctors = append(doctors, &doctor)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate doctor rows: %w", err)
	}

	return doctors, nil
}

func (r *doctorRepository) CountAll(ctx context.Context) (int64, error) {
	query := `SELECT COUNT(*) FROM doctors`

	var count int64
	err := r.db.QueryRow(ctx, query).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count doctors", zap.Error(err))
		return 0, fmt.Errorf("count all doctors: %w", err)
	}

	return count, nil
}

// CreateBatch inserts reference doctors; used by the seeder only.
func (r *doctorRepository) CreateBatch(ctx context.Context, doctors []*entity.Doctor) error {
	query := `
		INSERT INTO doctors (name, speciality, rating, distance_km)
		VALUES ($1, $2, $3, $4)
	`

	for _, doctor := range doctors {
		_, err := r.db.Exec(ctx, query,
			doctor.Name,
			doctor.Speciality,
			doctor.Rating,
			doctor.DistanceKm,
		)
		if err != nil {
			r.log.Error("Failed to insert doctor",
				zap.Error(err),
				zap.String("name", doctor.Name),
			)
			return fmt.Errorf("insert doctor %s: %w", doctor.Name, err)
		}
	}

	return nil
}
