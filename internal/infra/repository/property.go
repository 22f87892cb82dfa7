package repository

import (
	"context"

	"rental-booking/internal/domain/property"
	"rental-booking/internal/infra"
	"rental-booking/internal/infra/pgquery"
	"rental-booking/internal/infra/repository/converter"

	"github.com/google/uuid"
)

type PropertyWriteQueries interface {
	CreateProperty(ctx context.Context, db pgquery.DBTX, arg pgquery.CreatePropertyParams) (pgquery.Property, error)
	UpdateProperty(ctx context.Context, db pgquery.DBTX, arg pgquery.UpdatePropertyParams) (pgquery.Property, error)
	DeleteProperty(ctx context.Context, db pgquery.DBTX, id uuid.UUID) (int64, error)
	CountActiveReservationsForProperty(ctx context.Context, db pgquery.DBTX, propertyID uuid.UUID) (int64, error)
}

type PropertyRepository struct {
	queries PropertyWriteQueries
}

func NewPropertyRepository(queries PropertyWriteQueries) *PropertyRepository {
	return &PropertyRepository{queries: queries}
}

func (r *PropertyRepository) Create(ctx context.Context, tx pgquery.DBTX, p *property.Property) (*property.Property, error) {
	row, err := r.queries.CreateProperty(ctx, tx, converter.PropertyToCreateParams(p))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to create property", err)
	}
	return converter.PropertyToDomain(row)
}

func (r *PropertyRepository) Update(ctx context.Context, tx pgquery.DBTX, p *property.Property) (*property.Property, error) {
	row, err := r.queries.UpdateProperty(ctx, tx, converter.PropertyToUpdateParams(p))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to update property", err)
	}
	return converter.PropertyToDomain(row)
}

func (r *PropertyRepository) Delete(ctx context.Context, tx pgquery.DBTX, id uuid.UUID) error {
	n, err := r.queries.DeleteProperty(ctx, tx, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete property", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("property not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *PropertyRepository) CountActiveReservations(ctx context.Context, tx pgquery.DBTX, id uuid.UUID) (int64, error) {
	n, err := r.queries.CountActiveReservationsForProperty(ctx, tx, id)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count active reservations", err)
	}
	return n, nil
}
