package pgquery

import (
	"context"

	"github.com/google/uuid"
)

const propertyColumns = `id, name, description, capacity, price_per_night_cents, images, amenities,
	is_available, created_at, updated_at`

type CreatePropertyParams struct {
	ID                 uuid.UUID
	Name               string
	Description        string
	Capacity           int32
	PricePerNightCents int64
	Images             []string
	Amenities          []string
	IsAvailable        bool
}

const createProperty = `
INSERT INTO properties (id, name, description, capacity, price_per_night_cents, images, amenities, is_available)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING ` + propertyColumns

func (q *Queries) CreateProperty(ctx context.Context, db DBTX, arg CreatePropertyParams) (Property, error) {
	return queryOne[Property](ctx, db, createProperty,
		arg.ID, arg.Name, arg.Description, arg.Capacity, arg.PricePerNightCents,
		arg.Images, arg.Amenities, arg.IsAvailable)
}

const getProperty = `SELECT ` + propertyColumns + ` FROM properties WHERE id = $1`

func (q *Queries) GetProperty(ctx context.Context, db DBTX, id uuid.UUID) (Property, error) {
	return queryOne[Property](ctx, db, getProperty, id)
}

const listProperties = `SELECT ` + propertyColumns + ` FROM properties ORDER BY created_at DESC, id`

func (q *Queries) ListProperties(ctx context.Context, db DBTX) ([]Property, error) {
	return queryMany[Property](ctx, db, listProperties)
}

type UpdatePropertyParams struct {
	ID                 uuid.UUID
	Name               string
	Description        string
	Capacity           int32
	PricePerNightCents int64
	Images             []string
	Amenities          []string
	IsAvailable        bool
}

const updateProperty = `
UPDATE properties
SET name = $2, description = $3, capacity = $4, price_per_night_cents = $5,
    images = $6, amenities = $7, is_available = $8, updated_at = now()
WHERE id = $1
RETURNING ` + propertyColumns

func (q *Queries) UpdateProperty(ctx context.Context, db DBTX, arg UpdatePropertyParams) (Property, error) {
	return queryOne[Property](ctx, db, updateProperty,
		arg.ID, arg.Name, arg.Description, arg.Capacity, arg.PricePerNightCents,
		arg.Images, arg.Amenities, arg.IsAvailable)
}

const deleteProperty = `DELETE FROM properties WHERE id = $1`

func (q *Queries) DeleteProperty(ctx context.Context, db DBTX, id uuid.UUID) (int64, error) {
	return execRows(ctx, db, deleteProperty, id)
}

const countActiveReservationsForProperty = `
SELECT count(*) FROM reservations
WHERE property_id = $1 AND status IN ('PENDING', 'CONFIRMED')`

func (q *Queries) CountActiveReservationsForProperty(ctx context.Context, db DBTX, propertyID uuid.UUID) (int64, error) {
	var n int64
	err := db.QueryRow(ctx, countActiveReservationsForProperty, propertyID).Scan(&n)
	return n, err
}
