package response

import (
	"time"

	"rental-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type SiteConfigResponse struct {
	SinglePropertyMode bool       `json:"singlePropertyMode"`
	MainPropertyID     *uuid.UUID `json:"mainPropertyId"`
	UpdatedAt          time.Time  `json:"updatedAt"`
}

func FromSiteConfigView(v *queries.SiteConfigView) *SiteConfigResponse {
	return &SiteConfigResponse{
		SinglePropertyMode: v.SinglePropertyMode,
		MainPropertyID:     v.MainPropertyID,
		UpdatedAt:          v.UpdatedAt,
	}
}
