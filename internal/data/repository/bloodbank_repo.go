package repository

import (
	"context"
	"fmt"

	"nightcare/internal/data/entity"
	"nightcare/pkg/database"

	"go.uber.org/zap"
)

type BloodBankRepository interface {
	FindByGroup(ctx context.Context, bloodGroup string) ([]*entity.BloodBank, error)
	CountAll(ctx context.Context) (int64, error)
	CreateBatch(ctx context.Context, banks []*entity.BloodBank) error
}

type bloodBankRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBloodBankRepository(db database.PgxIface, log *zap.Logger) BloodBankRepository {
	return &bloodBankRepository{
		db:  db,
		log: log.With(zap.String("repository", "blood_bank")),
	}
}

// FindByGroup returns entries exactly matching the (already case-normalized)
// blood group, nearest first; an empty result is not an error.
func (r *bloodBankRepository) FindByGroup(ctx context.Context, bloodGroup string) ([]*entity.BloodBank, error) {
	query := `
		SELECT id, name, blood_group, units_available, distance_km
		FROM blood_banks
		WHERE blood_group = $1
		ORDER BY distance_km ASC, id ASC
	`

	rows, err := r.db.Query(ctx, query, bloodGroup)
	if err != nil {
		r.log.Error("Failed to find blood banks",
			zap.Error(err),
			zap.String("blood_group", bloodGroup),
		)
		return nil, fmt.Errorf("find blood banks for group %s: %w", bloodGroup, err)
	}
	defer rows.Close()

	var banks []*entity.BloodBank
	for rows.Next() {
		var bank entity.BloodBank
		err := rows.Scan(
			&bank.ID,
			&bank.Name,
			&bank.BloodGroup,
			&bank.UnitsAvailable,
			&bank.DistanceKm,
		)
		if err != nil {
			r.log.Error("Failed to scan blood bank row", zap.Error(err))
			return nil, fmt.Errorf("scan blood bank row: %w", err)
		}
		banks = append(banks, &bank)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate blood bank rows: %w", err)
	}

	return banks, nil
}

func (r *bloodBankRepository) CountAll(ctx context.Context) (int64, error) {
	query := `SELECT COUNT(*) FROM blood_banks`

	var count int64
	err := r.db.QueryRow(ctx, query).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count blood banks", zap.Error(err))
		return 0, fmt.Errorf("count all blood banks: %w", err)
	}

	return count, nil
}

// CreateBatch inserts reference blood bank rows; used by the seeder only.
func (r *bloodBankRepository) CreateBatch(ctx context.Context, banks []*entity.BloodBank) error {
	query := `
		INSERT INTO blood_banks (name, blood_group, units_available, distance_km)
		VALUES ($1, $2, $3, $4)
	`

	for _, bank := range banks {
		_, err := r.db.Exec(ctx, query,
			bank.Name,
			bank.BloodGroup,
			bank.UnitsAvailable,
			bank.DistanceKm,
		)
		if err != nil {
			r.log.Error("Failed to insert blood bank",
				zap.Error(err),
				zap.String("name", bank.Name),
				zap.String("blood_group", bank.BloodGroup),
			)
			return fmt.Errorf("insert blood bank %s %s: %w", bank.Name, bank.BloodGroup, err)
		}
	}

	return nil
}
