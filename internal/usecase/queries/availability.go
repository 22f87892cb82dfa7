package queries

import (
	"context"
	"time"

	"rental-booking/internal/domain/reservation"

	"github.com/google/uuid"
)

//go:generate mockgen -source=availability.go -destination=../../../tests/mock/queries/mock_availability.go -package=queriesmock

type AvailabilityQueries interface {
	IsAvailable(ctx context.Context, propertyID uuid.UUID, startDate, endDate time.Time) (bool, error)
	UnavailableRanges(ctx context.Context, propertyID uuid.UUID) ([]DateRangeView, error)
}

type ActiveRangeReadStore interface {
	FindActiveRanges(ctx context.Context, propertyID uuid.UUID) ([]DateRangeView, error)
}

type availabilityQueriesImpl struct {
	properties PropertyQueries
	ranges     ActiveRangeReadStore
}

func NewAvailabilityQueries(properties PropertyQueries, ranges ActiveRangeReadStore) AvailabilityQueries {
	return &availabilityQueriesImpl{properties: properties, ranges: ranges}
}

func (q *availabilityQueriesImpl) IsAvailable(ctx context.Context, propertyID uuid.UUID, startDate, endDate time.Time) (bool, error) {
	requested, err := reservation.NewDateRange(startDate, endDate)
	if err != nil {
		return false, err
	}

	p, err := q.properties.GetByID(ctx, propertyID)
	if err != nil {
		return false, err
	}
	if !p.IsAvailable {
		return false, nil
	}

	active, err := q.activeRanges(ctx, propertyID)
	if err != nil {
		return false, err
	}
	return reservation.IsAvailable(true, active, requested), nil
}

func (q *availabilityQueriesImpl) UnavailableRanges(ctx context.Context, propertyID uuid.UUID) ([]DateRangeView, error) {
	p, err := q.properties.GetByID(ctx, propertyID)
	if err != nil {
		return nil, err
	}

	var active []reservation.DateRange
	if p.IsAvailable {
		if active, err = q.activeRanges(ctx, propertyID); err != nil {
			return nil, err
		}
	}

	ranges := reservation.UnavailableRanges(p.IsAvailable, active)
	out := make([]DateRangeView, len(ranges))
	for i, r := range ranges {
		out[i] = DateRangeView{StartDate: r.Start(), EndDate: r.End()}
	}
	return out, nil
}

func (q *availabilityQueriesImpl) activeRanges(ctx context.Context, propertyID uuid.UUID) ([]reservation.DateRange, error) {
	views, err := q.ranges.FindActiveRanges(ctx, propertyID)
	if err != nil {
		return nil, err
	}
	out := make([]reservation.DateRange, 0, len(views))
	for _, v := range views {
		r, err := reservation.NewDateRange(v.StartDate, v.EndDate)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, nil
}
