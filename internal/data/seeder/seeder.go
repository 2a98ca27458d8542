package seeder

import (
	"context"
	"fmt"

	"nightcare/internal/data/entity"
	"nightcare/internal/data/repository"

	"go.uber.org/zap"
)

// referenceDoctors is the fixed demo directory.
var referenceDoctors = []*entity.Doctor{
	{Name: "Dr. Aditi Rao", Speciality: "emergency", Rating: 4.9, DistanceKm: 1.2},
	{Name: "Dr. Karan Mehta", Speciality: "cardio", Rating: 4.8, DistanceKm: 2.1},
	{Name: "Dr. Sana Ali", Speciality: "pediatrics", Rating: 4.7, DistanceKm: 0.9},
}

// referenceBloodBanks lists demo availability; a bank may appear once per
// blood group, and zero units is a valid (out of stock) entry.
var referenceBloodBanks = []*entity.BloodBank{
	{Name: "City Blood Center", BloodGroup: "A+", UnitsAvailable: 6, DistanceKm: 2.1},
	{Name: "City Blood Center", BloodGroup: "O+", UnitsAvailable: 4, DistanceKm: 2.1},
	{Name: "Metro Blood Bank", BloodGroup: "A+", UnitsAvailable: 3, DistanceKm: 3.4},
	{Name: "Metro Blood Bank", BloodGroup: "O+", UnitsAvailable: 2, DistanceKm: 3.4},
	{Name: "Govt. Blood Bank", BloodGroup: "A+", UnitsAvailable: 0, DistanceKm: 4.1},
}

// Run populates the reference collections once. Each collection is guarded by
// a count check, so re-running at every process start never duplicates rows.
func Run(ctx context.Context, repo *repository.Repository, log *zap.Logger) error {
	if err := seedDoctors(ctx, repo.Doctor, log); err != nil {
		return err
	}

	if err := seedBloodBanks(ctx, repo.BloodBank, log); err != nil {
		return err
	}

	return nil
}

func seedDoctors(ctx context.Context, repo repository.DoctorRepository, log *zap.Logger) error {
	count, err := repo.CountAll(ctx)
	if err != nil {
		return fmt.Errorf("check doctors before seeding: %w", err)
	}

	if count > 0 {
		log.Info("Doctors already seeded, skipping", zap.Int64("count", count))
		return nil
	}

	if err := repo.CreateBatch(ctx, referenceDoctors); err != nil {
		return fmt.Errorf("seed doctors: %w", err)
	}

	log.Info("Seeded doctors", zap.Int("count", len(referenceDoctors)))
	return nil
}

func seedBloodBanks(ctx context.Context, repo repository.BloodBankRepository, log *zap.Logger) error {
	count, err := repo.CountAll(ctx)
	if err != nil {
		return fmt.Errorf("check blood banks before seeding: %w", err)
	}

	if count > 0 {
		log.Info("Blood banks already seeded, skipping", zap.Int64("count", count))
		return nil
	}

	if err := repo.CreateBatch(ctx, referenceBloodBanks); err != nil {
		return fmt.Errorf("seed blood banks: %w", err)
	}

	log.Info("Seeded blood banks", zap.Int("count", len(referenceBloodBanks)))
	return nil
}
