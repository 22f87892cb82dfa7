package request

import (
	"rental-booking/internal/domain/money"
	"rental-booking/internal/domain/property"

	"github.com/google/uuid"
)

// Prices travel as decimal amounts (199.99) and are stored in cents.
type CreatePropertyRequest struct {
	Name          string   `json:"name" binding:"required,notblank"`
	Description   string   `json:"description" binding:"required,notblank"`
	Capacity      int      `json:"capacity" binding:"required,min=1"`
	PricePerNight float64  `json:"pricePerNight" binding:"required,gt=0"`
	Images        []string `json:"images"`
	Amenities     []string `json:"amenities"`
	IsAvailable   *bool    `json:"isAvailable"`
}

func (r *CreatePropertyRequest) ToDomain() (property.Params, error) {
	price, err := money.FromAmount(r.PricePerNight)
	if err != nil {
		return property.Params{}, err
	}
	return property.Params{
		Name:          r.Name,
		Description:   r.Description,
		Capacity:      r.Capacity,
		PricePerNight: price,
		Images:        r.Images,
		Amenities:     r.Amenities,
		IsAvailable:   r.IsAvailable,
	}, nil
}

type UpdatePropertyRequest struct {
	Name          *string   `json:"name" binding:"omitempty,notblank"`
	Description   *string   `json:"description" binding:"omitempty,notblank"`
	Capacity      *int      `json:"capacity" binding:"omitempty,min=1"`
	PricePerNight *float64  `json:"pricePerNight" binding:"omitempty,gt=0"`
	Images        *[]string `json:"images"`
	Amenities     *[]string `json:"amenities"`
	IsAvailable   *bool     `json:"isAvailable"`
}

func (r *UpdatePropertyRequest) ToDomain() (property.Patch, error) {
	patch := property.Patch{
		Name:        r.Name,
		Description: r.Description,
		Capacity:    r.Capacity,
		Images:      r.Images,
		Amenities:   r.Amenities,
		IsAvailable: r.IsAvailable,
	}
	if r.PricePerNight != nil {
		price, err := money.FromAmount(*r.PricePerNight)
		if err != nil {
			return property.Patch{}, err
		}
		patch.PricePerNight = &price
	}
	return patch, nil
}

type CheckAvailabilityRequest struct {
	PropertyID uuid.UUID `json:"propertyId" binding:"required"`
	StartDate  *Date     `json:"startDate" binding:"required"`
	EndDate    *Date     `json:"endDate" binding:"required"`
}
