package readstore

import (
	"context"
	"errors"

	"boxarena/internal/infra"
	"boxarena/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type UserReadStore struct {
	pool *pgxpool.Pool
}

func NewUserReadStore(pool *pgxpool.Pool) *UserReadStore {
	return &UserReadStore{pool: pool}
}

const userColumns = `
	id, name, email, COALESCE(phone, ''), role,
	email_verified, is_active, last_login, created_at
`

func (s *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.UserView, error) {
	row := s.pool.QueryRow(ctx, `
		SELECT `+userColumns+`
		FROM users
		WHERE id = $1
	`, id)
	return scanUser(row, "failed to find user by id")
}

func (s *UserReadStore) FindCredentials(ctx context.Context, email string) (*queries.CredentialRecord, error) {
	var rec queries.CredentialRecord
	err := s.pool.QueryRow(ctx, `
		SELECT id, password_hash, role, is_active
		FROM users
		WHERE email = $1
	`, email).Scan(&rec.ID, &rec.PasswordHash, &rec.Role, &rec.IsActive)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user credentials", err)
	}
	return &rec, nil
}

func scanUser(row pgx.Row, failMsg string) (*queries.UserView, error) {
	var v queries.UserView
	err := row.Scan(
		&v.ID,
		&v.Name,
		&v.Email,
		&v.Phone,
		&v.Role,
		&v.EmailVerified,
		&v.IsActive,
		&v.LastLogin,
		&v.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr(failMsg, err)
	}
	return &v, nil
}
