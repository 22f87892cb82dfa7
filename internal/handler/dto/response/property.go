package response

import (
	"time"

	"rental-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type PropertyResponse struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	Capacity      int       `json:"capacity"`
	PricePerNight float64   `json:"pricePerNight"`
	Images        []string  `json:"images"`
	Amenities     []string  `json:"amenities"`
	IsAvailable   bool      `json:"isAvailable"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

type AvailabilityResponse struct {
	IsAvailable bool `json:"isAvailable"`
}

type DateRangeResponse struct {
	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

func FromPropertyView(v *queries.PropertyView) *PropertyResponse {
	out := PropertyResponse{
		ID:            v.ID,
		Name:          v.Name,
		Description:   v.Description,
		Capacity:      v.Capacity,
		PricePerNight: centsToAmount(v.PricePerNightCents),
		Images:        v.Images,
		Amenities:     v.Amenities,
		IsAvailable:   v.IsAvailable,
		CreatedAt:     v.CreatedAt,
		UpdatedAt:     v.UpdatedAt,
	}
	if out.Images == nil {
		out.Images = []string{}
	}
	if out.Amenities == nil {
		out.Amenities = []string{}
	}
	return &out
}

func FromPropertyViews(vs []*queries.PropertyView) []*PropertyResponse {
	out := make([]*PropertyResponse, len(vs))
	for i, v := range vs {
		out[i] = FromPropertyView(v)
	}
	return out
}

func FromDateRanges(rs []queries.DateRangeView) []DateRangeResponse {
	out := make([]DateRangeResponse, len(rs))
	for i, r := range rs {
		out[i] = DateRangeResponse{StartDate: r.StartDate, EndDate: r.EndDate}
	}
	return out
}

func centsToAmount(cents int64) float64 {
	return float64(cents) / 100.0
}
