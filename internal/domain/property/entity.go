package property

import (
	"strings"
	"time"

	"rental-booking/internal/domain/money"
	"rental-booking/internal/pkg/errs"
	"rental-booking/internal/pkg/patch"

	"github.com/google/uuid"
)

var (
	ErrNotFound            = errs.Define("Property not found", errs.ErrNotFound)
	ErrHasActiveBookings   = errs.Define("Property has active reservations", errs.ErrConflict)
	ErrIsMainProperty      = errs.Define("Property is the main property of the site; disable single property mode first", errs.ErrConflict)
	ErrNameRequired        = errs.Define("property name is required", errs.ErrValidation)
	ErrDescriptionRequired = errs.Define("property description is required", errs.ErrValidation)
	ErrInvalidCapacity     = errs.Define("capacity must be at least 1", errs.ErrValidation)
	ErrInvalidPrice        = errs.Define("price per night must be positive", errs.ErrValidation)
)

type Property struct {
	id            uuid.UUID
	name          string
	description   string
	capacity      int
	pricePerNight money.Money
	images        []string
	amenities     []string
	isAvailable   bool
	createdAt     time.Time
	updatedAt     time.Time
}

type Params struct {
	Name          string
	Description   string
	Capacity      int
	PricePerNight money.Money
	Images        []string
	Amenities     []string
	IsAvailable   *bool
}

// Patch holds a partial update; nil fields are left untouched.
type Patch struct {
	Name          *string
	Description   *string
	Capacity      *int
	PricePerNight *money.Money
	Images        *[]string
	Amenities     *[]string
	IsAvailable   *bool
}

func NewProperty(p Params) (*Property, error) {
	prop := &Property{
		id:            uuid.New(),
		name:          strings.TrimSpace(p.Name),
		description:   strings.TrimSpace(p.Description),
		capacity:      p.Capacity,
		pricePerNight: p.PricePerNight,
		images:        cleanList(p.Images),
		amenities:     cleanList(p.Amenities),
		isAvailable:   true,
	}
	if p.IsAvailable != nil {
		prop.isAvailable = *p.IsAvailable
	}
	if err := prop.validate(); err != nil {
		return nil, err
	}
	return prop, nil
}

func ReconstructProperty(
	id uuid.UUID,
	name, description string,
	capacity int,
	pricePerNight money.Money,
	images, amenities []string,
	isAvailable bool,
	createdAt, updatedAt time.Time,
) *Property {
	return &Property{
		id:            id,
		name:          name,
		description:   description,
		capacity:      capacity,
		pricePerNight: pricePerNight,
		images:        images,
		amenities:     amenities,
		isAvailable:   isAvailable,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
}

// Apply merges the patch and re-validates. The property is unchanged on error.
func (p *Property) Apply(in Patch) error {
	next := *p
	next.name = strings.TrimSpace(patch.Coalesce(in.Name, p.name))
	next.description = strings.TrimSpace(patch.Coalesce(in.Description, p.description))
	next.capacity = patch.Coalesce(in.Capacity, p.capacity)
	next.pricePerNight = patch.Coalesce(in.PricePerNight, p.pricePerNight)
	next.isAvailable = patch.Coalesce(in.IsAvailable, p.isAvailable)
	if in.Images != nil {
		next.images = cleanList(*in.Images)
	}
	if in.Amenities != nil {
		next.amenities = cleanList(*in.Amenities)
	}
	if err := next.validate(); err != nil {
		return err
	}
	*p = next
	return nil
}

func (p *Property) Fits(guests int) bool {
	return guests >= 1 && guests <= p.capacity
}

func (p *Property) validate() error {
	if p.name == "" {
		return ErrNameRequired
	}
	if p.description == "" {
		return ErrDescriptionRequired
	}
	if p.capacity < 1 {
		return ErrInvalidCapacity
	}
	if p.pricePerNight.Cents() <= 0 {
		return ErrInvalidPrice
	}
	return nil
}

func (p *Property) ID() uuid.UUID              { return p.id }
func (p *Property) Name() string               { return p.name }
func (p *Property) Description() string        { return p.description }
func (p *Property) Capacity() int              { return p.capacity }
func (p *Property) PricePerNight() money.Money { return p.pricePerNight }
func (p *Property) Images() []string           { return p.images }
func (p *Property) Amenities() []string        { return p.amenities }
func (p *Property) IsAvailable() bool          { return p.isAvailable }
func (p *Property) CreatedAt() time.Time       { return p.createdAt }
func (p *Property) UpdatedAt() time.Time       { return p.updatedAt }

func cleanList(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
