package readstore

import (
	"context"

	"rental-booking/internal/infra"
	"rental-booking/internal/infra/pgquery"
	"rental-booking/internal/pkg/pgconv"
	"rental-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type PropertyReadQueries interface {
	GetProperty(ctx context.Context, db pgquery.DBTX, id uuid.UUID) (pgquery.Property, error)
	ListProperties(ctx context.Context, db pgquery.DBTX) ([]pgquery.Property, error)
}

type PropertyReadStore struct {
	queries PropertyReadQueries
	db      pgquery.DBTX
}

func NewPropertyReadStore(queries PropertyReadQueries, db pgquery.DBTX) *PropertyReadStore {
	return &PropertyReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *PropertyReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.PropertyView, error) {
	row, err := r.queries.GetProperty(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("property not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find property by ID", err)
	}
	return toPropertyView(row), nil
}

func (r *PropertyReadStore) FindAll(ctx context.Context) ([]*queries.PropertyView, error) {
	rows, err := r.queries.ListProperties(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list properties", err)
	}
	result := make([]*queries.PropertyView, len(rows))
	for i, row := range rows {
		result[i] = toPropertyView(row)
	}
	return result, nil
}

func toPropertyView(row pgquery.Property) *queries.PropertyView {
	return &queries.PropertyView{
		ID:                 row.ID,
		Name:               row.Name,
		Description:        row.Description,
		Capacity:           int(row.Capacity),
		PricePerNightCents: row.PricePerNightCents,
		Images:             nonNil(row.Images),
		Amenities:          nonNil(row.Amenities),
		IsAvailable:        row.IsAvailable,
		CreatedAt:          pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:          pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
