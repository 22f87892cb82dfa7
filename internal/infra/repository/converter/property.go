package converter

import (
	"rental-booking/internal/domain/money"
	"rental-booking/internal/domain/property"
	"rental-booking/internal/infra/pgquery"
	"rental-booking/internal/pkg/pgconv"
)

func PropertyToCreateParams(p *property.Property) pgquery.CreatePropertyParams {
	return pgquery.CreatePropertyParams{
		ID:                 p.ID(),
		Name:               p.Name(),
		Description:        p.Description(),
		Capacity:           int32(p.Capacity()), // #nosec G115 -- validated positive, bound by request validation
		PricePerNightCents: p.PricePerNight().Cents(),
		Images:             nonNil(p.Images()),
		Amenities:          nonNil(p.Amenities()),
		IsAvailable:        p.IsAvailable(),
	}
}

func PropertyToUpdateParams(p *property.Property) pgquery.UpdatePropertyParams {
	return pgquery.UpdatePropertyParams(PropertyToCreateParams(p))
}

func PropertyToDomain(row pgquery.Property) (*property.Property, error) {
	price, err := money.FromCents(row.PricePerNightCents)
	if err != nil {
		return nil, err
	}
	return property.ReconstructProperty(
		row.ID,
		row.Name,
		row.Description,
		int(row.Capacity),
		price,
		nonNil(row.Images),
		nonNil(row.Amenities),
		row.IsAvailable,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
