package request

import "github.com/google/uuid"

type SetSiteConfigRequest struct {
	SinglePropertyMode *bool      `json:"singlePropertyMode" binding:"required"`
	MainPropertyID     *uuid.UUID `json:"mainPropertyId"`
}
