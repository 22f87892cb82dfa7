package queries

import (
	"context"

	"rental-booking/internal/domain/property"
	"rental-booking/internal/infra"

	"github.com/google/uuid"
)

//go:generate mockgen -source=property.go -destination=../../../tests/mock/queries/mock_property.go -package=queriesmock

type PropertyQueries interface {
	List(ctx context.Context) ([]*PropertyView, error)
	GetByID(ctx context.Context, id uuid.UUID) (*PropertyView, error)
}

type PropertyReadStore interface {
	FindAll(ctx context.Context) ([]*PropertyView, error)
	FindByID(ctx context.Context, id uuid.UUID) (*PropertyView, error)
}

type propertyQueriesImpl struct {
	readStore PropertyReadStore
}

func NewPropertyQueries(readStore PropertyReadStore) PropertyQueries {
	return &propertyQueriesImpl{readStore: readStore}
}

func (q *propertyQueriesImpl) List(ctx context.Context) ([]*PropertyView, error) {
	return q.readStore.FindAll(ctx)
}

func (q *propertyQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*PropertyView, error) {
	p, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, property.ErrNotFound
		}
		return nil, err
	}
	return p, nil
}
