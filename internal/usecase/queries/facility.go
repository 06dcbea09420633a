package queries

import (
	"context"

	"boxarena/internal/domain/facility"
	"boxarena/internal/infra"
	"boxarena/internal/pkg/errs"

	"github.com/google/uuid"
)

type FacilityQueries interface {
	GetFacility(ctx context.Context, id uuid.UUID) (*FacilityView, error)
	ListFacilities(ctx context.Context, ftype string) ([]*FacilityView, error)
	ListFacilitiesGrouped(ctx context.Context) (map[string][]*FacilityView, error)
}

type facilityQueriesImpl struct {
	facilities FacilityReadStore
}

func NewFacilityQueries(facilities FacilityReadStore) FacilityQueries {
	return &facilityQueriesImpl{facilities: facilities}
}

func (q *facilityQueriesImpl) GetFacility(ctx context.Context, id uuid.UUID) (*FacilityView, error) {
	view, err := q.facilities.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrFacilityNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return view, nil
}

func (q *facilityQueriesImpl) ListFacilities(ctx context.Context, ftype string) ([]*FacilityView, error) {
	if ftype != "" && !facility.Type(ftype).IsValid() {
		return nil, errs.ErrDomainValidation
	}
	views, err := q.facilities.ListActive(ctx, ftype)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return views, nil
}

// ListFacilitiesGrouped buckets the active catalogue by facility type for the
// landing page.
func (q *facilityQueriesImpl) ListFacilitiesGrouped(ctx context.Context) (map[string][]*FacilityView, error) {
	views, err := q.facilities.ListActive(ctx, "")
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	grouped := make(map[string][]*FacilityView)
	for _, v := range views {
		grouped[v.Type] = append(grouped[v.Type], v)
	}
	return grouped, nil
}
