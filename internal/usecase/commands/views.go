package commands

import (
	"rental-booking/internal/domain/property"
	"rental-booking/internal/domain/siteconfig"
	"rental-booking/internal/usecase/queries"
)

// Write paths answer with the same views the read side serves.

func propertyToView(p *property.Property) *queries.PropertyView {
	return &queries.PropertyView{
		ID:                 p.ID(),
		Name:               p.Name(),
		Description:        p.Description(),
		Capacity:           p.Capacity(),
		PricePerNightCents: p.PricePerNight().Cents(),
		Images:             p.Images(),
		Amenities:          p.Amenities(),
		IsAvailable:        p.IsAvailable(),
		CreatedAt:          p.CreatedAt(),
		UpdatedAt:          p.UpdatedAt(),
	}
}

func siteConfigToView(c *siteconfig.SiteConfig) *queries.SiteConfigView {
	return &queries.SiteConfigView{
		SinglePropertyMode: c.SinglePropertyMode(),
		MainPropertyID:     c.MainPropertyID(),
		UpdatedAt:          c.UpdatedAt(),
	}
}
