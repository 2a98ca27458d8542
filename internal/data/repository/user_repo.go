package repository

import (
	"context"
	"fmt"

	"nightcare/internal/data/entity"
	"nightcare/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type UserRepository interface {
	CreateIfAbsent(ctx context.Context, phone string) (*entity.User, error)
	FindByPhone(ctx context.Context, phone string) (*entity.User, error)
	CountAll(ctx context.Context) (int64, error)
}

type userRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewUserRepository(db database.PgxIface, log *zap.Logger) UserRepository {
	return &userRepository{
		db:  db,
		log: log.With(zap.String("repository", "user")),
	}
}

// CreateIfAbsent inserts a user row only if the phone is not registered yet,
// then reads the row back. Idempotent on phone: a re-login returns the
// existing record. Returns (nil, nil) only if the read-after-write finds
// nothing, which the caller treats as a storage invariant violation.
func (ur *userRepository) CreateIfAbsent(ctx context.Context, phone string) (*entity.User, error) {
	query := `
		INSERT INTO users (phone, created_at)
		VALUES ($1, NOW())
		ON CONFLICT (phone) DO NOTHING
	`

	_, err := ur.db.Exec(ctx, query, phone)
	if err != nil {
		ur.log.Error("Failed to create user",
			zap.Error(err),
			zap.String("phone", phone),
		)
		return nil, fmt.Errorf("create user %s: %w", phone, err)
	}

	return ur.FindByPhone(ctx, phone)
}

func (ur *userRepository) FindByPhone(ctx context.Context, phone string) (*entity.User, error) {
	query := `
		SELECT id, phone, created_at
		FROM users
		WHERE phone = $1
	`

	var user entity.User
	// QueryRow returns at most one row
	err := ur.db.QueryRow(ctx, query, phone).Scan(
		&user.ID,
		&user.Phone,
		&user.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		ur.log.Error("Failed to find user by phone",
			zap.Error(err),
			zap.String("phone", phone),
		)
		return nil, fmt.Errorf("find user by phone %s: %w", phone, err)
	}

	return &user, nil
}

func (ur *userRepository) CountAll(ctx context.Context) (int64, error) {
	query := `SELECT COUNT(*) FROM users`

	var count int64
	err := ur.db.QueryRow(ctx, query).Scan(&count)
	if err != nil {
		ur.log.Error("Failed to count users", zap.Error(err))
		return 0, fmt.Errorf("count all users: %w", err)
	}

	return count, nil
}
