package repository

import (
	"context"
	"errors"
	"time"

	"boxarena/internal/domain/user"
	"boxarena/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

func (r *UserRepository) Create(ctx context.Context, u *user.User) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO users
			(id, name, email, phone, password_hash, role, email_verified,
			 is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, now(), now())
	`,
		u.ID(), u.Name(), u.Email().String(), nullable(u.Phone().String()),
		u.PasswordHash(), u.Role().String(), u.IsEmailVerified(), u.IsActive(),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return infra.WrapRepoErr("email already registered", err, infra.KindDuplicateKey)
		}
		return infra.WrapRepoErr("failed to create user", err)
	}
	return nil
}

func (r *UserRepository) RecordLogin(ctx context.Context, id uuid.UUID, at time.Time) error {
	_, err := r.pool.Exec(ctx, `
		UPDATE users
		SET last_login = $2, updated_at = now()
		WHERE id = $1
	`, id, at)
	if err != nil {
		return infra.WrapRepoErr("failed to record login", err)
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
