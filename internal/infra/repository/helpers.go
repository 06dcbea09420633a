package repository

import (
	"errors"

	"boxarena/internal/domain/booking"
	"boxarena/internal/domain/facility"
	"boxarena/internal/infra"

	"github.com/jackc/pgx/v5"
)

func parseTimeRange(start, end string) (booking.TimeRange, error) {
	startTime, err := facility.ParseTimeOfDay(start)
	if err != nil {
		return booking.TimeRange{}, infra.WrapRepoErr("stored start time is malformed", err)
	}
	endTime, err := facility.ParseTimeOfDay(end)
	if err != nil {
		return booking.TimeRange{}, infra.WrapRepoErr("stored end time is malformed", err)
	}
	timeRange, err := booking.NewTimeRange(startTime, endTime)
	if err != nil {
		return booking.TimeRange{}, infra.WrapRepoErr("stored time range is invalid", err)
	}
	return timeRange, nil
}

func translateNotFound(err error, notFoundMsg, failMsg string) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return infra.WrapRepoErr(notFoundMsg, err, infra.KindNotFound)
	}
	return infra.WrapRepoErr(failMsg, err)
}
