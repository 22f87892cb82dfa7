//go:build unit || e2e

package builder

import (
	"time"

	"rental-booking/internal/domain/money"
	"rental-booking/internal/domain/property"
	reqdto "rental-booking/internal/handler/dto/request"
	"rental-booking/internal/infra/pgquery"
	"rental-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type PropertyBuilder struct {
	ID                 uuid.UUID
	Name               string
	Description        string
	Capacity           int
	PricePerNightCents int64
	Images             []string
	Amenities          []string
	IsAvailable        bool
}

func NewPropertyBuilder() *PropertyBuilder {
	return &PropertyBuilder{
		ID:                 uuid.New(),
		Name:               "Villa Azur",
		Description:        "Sea view villa with private pool",
		Capacity:           6,
		PricePerNightCents: 20000,
		Images:             []string{"https://img.example.com/villa-1.jpg"},
		Amenities:          []string{"pool", "wifi"},
		IsAvailable:        true,
	}
}

func (p *PropertyBuilder) With(mutate func(*PropertyBuilder)) *PropertyBuilder {
	mutate(p)
	return p
}

// Build methods
func (p *PropertyBuilder) BuildDomain() *property.Property {
	price, err := money.FromCents(p.PricePerNightCents)
	if err != nil {
		panic(err)
	}
	now := time.Now()
	return property.ReconstructProperty(p.ID, p.Name, p.Description, p.Capacity, price, p.Images, p.Amenities, p.IsAvailable, now, now)
}

func (p *PropertyBuilder) BuildInfra() pgquery.Property {
	now := time.Now()
	return pgquery.Property{
		ID:                 p.ID,
		Name:               p.Name,
		Description:        p.Description,
		Capacity:           int32(p.Capacity),
		PricePerNightCents: p.PricePerNightCents,
		Images:             p.Images,
		Amenities:          p.Amenities,
		IsAvailable:        p.IsAvailable,
		CreatedAt:          pgtype.Timestamptz{Time: now, Valid: true},
		UpdatedAt:          pgtype.Timestamptz{Time: now, Valid: true},
	}
}

func (p *PropertyBuilder) BuildView() *queries.PropertyView {
	now := time.Now()
	return &queries.PropertyView{
		ID:                 p.ID,
		Name:               p.Name,
		Description:        p.Description,
		Capacity:           p.Capacity,
		PricePerNightCents: p.PricePerNightCents,
		Images:             p.Images,
		Amenities:          p.Amenities,
		IsAvailable:        p.IsAvailable,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
}

func (p *PropertyBuilder) BuildCreateDTO() reqdto.CreatePropertyRequest {
	available := p.IsAvailable
	return reqdto.CreatePropertyRequest{
		Name:          p.Name,
		Description:   p.Description,
		Capacity:      p.Capacity,
		PricePerNight: float64(p.PricePerNightCents) / 100,
		Images:        p.Images,
		Amenities:     p.Amenities,
		IsAvailable:   &available,
	}
}

// Fluent builder methods
func (p *PropertyBuilder) WithPricePerNight(cents int64) *PropertyBuilder {
	p.PricePerNightCents = cents
	return p
}

func (p *PropertyBuilder) WithCapacity(capacity int) *PropertyBuilder {
	p.Capacity = capacity
	return p
}

func (p *PropertyBuilder) AsUnavailable() *PropertyBuilder {
	p.IsAvailable = false
	return p
}
