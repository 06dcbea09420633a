package readstore

import (
	"context"
	"errors"

	"boxarena/internal/domain/facility"
	"boxarena/internal/infra"
	"boxarena/internal/infra/converter"
	"boxarena/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type FacilityReadStore struct {
	pool *pgxpool.Pool
}

func NewFacilityReadStore(pool *pgxpool.Pool) *FacilityReadStore {
	return &FacilityReadStore{pool: pool}
}

const facilityColumns = `
	id, name, type, COALESCE(description, ''), capacity,
	day_rate, night_rate, slot_duration, operating_hours,
	COALESCE(amenities, '{}'), is_active, created_at
`

func (s *FacilityReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.FacilityView, error) {
	row := s.pool.QueryRow(ctx, `
		SELECT `+facilityColumns+`
		FROM facilities
		WHERE id = $1
	`, id)

	view, err := scanFacility(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("facility not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find facility by id", err)
	}
	return view, nil
}

// FindEntityByID loads a facility and rebuilds the domain entity from it.
func (s *FacilityReadStore) FindEntityByID(ctx context.Context, id uuid.UUID) (*facility.Facility, error) {
	view, err := s.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	fac, err := converter.FacilityFromView(view)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to rebuild facility entity", err)
	}
	return fac, nil
}

// ListActive returns active facilities, optionally filtered by type, ordered
// the way the catalogue page shows them.
func (s *FacilityReadStore) ListActive(ctx context.Context, ftype string) ([]*queries.FacilityView, error) {
	query := `
		SELECT ` + facilityColumns + `
		FROM facilities
		WHERE is_active
	`
	args := []any{}
	if ftype != "" {
		query += ` AND type = $1`
		args = append(args, ftype)
	}
	query += ` ORDER BY type, name`

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list facilities", err)
	}
	defer rows.Close()

	var views []*queries.FacilityView
	for rows.Next() {
		view, err := scanFacility(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan facility row", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate facility rows", err)
	}
	return views, nil
}

func scanFacility(row pgx.Row) (*queries.FacilityView, error) {
	var v queries.FacilityView
	err := row.Scan(
		&v.ID,
		&v.Name,
		&v.Type,
		&v.Description,
		&v.Capacity,
		&v.DayRate,
		&v.NightRate,
		&v.SlotDuration,
		&v.Hours,
		&v.Amenities,
		&v.IsActive,
		&v.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
