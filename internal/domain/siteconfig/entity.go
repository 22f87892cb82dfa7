package siteconfig

import (
	"time"

	"rental-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

const SingletonID = "default"

var ErrMainPropertyRequired = errs.Define("mainPropertyId is required when singlePropertyMode is enabled", errs.ErrValidation)

// SiteConfig is the single site-wide settings row.
type SiteConfig struct {
	singlePropertyMode bool
	mainPropertyID     *uuid.UUID
	updatedAt          time.Time
}

func Default() *SiteConfig {
	return &SiteConfig{}
}

func Reconstruct(singlePropertyMode bool, mainPropertyID *uuid.UUID, updatedAt time.Time) *SiteConfig {
	return &SiteConfig{
		singlePropertyMode: singlePropertyMode,
		mainPropertyID:     mainPropertyID,
		updatedAt:          updatedAt,
	}
}

// Apply sets the mode. Disabling single-property mode clears the main property.
func (c *SiteConfig) Apply(singlePropertyMode bool, mainPropertyID *uuid.UUID) error {
	if !singlePropertyMode {
		c.singlePropertyMode = false
		c.mainPropertyID = nil
		return nil
	}
	if mainPropertyID == nil || *mainPropertyID == uuid.Nil {
		return ErrMainPropertyRequired
	}
	id := *mainPropertyID
	c.singlePropertyMode = true
	c.mainPropertyID = &id
	return nil
}

// Pins reports whether single-property mode points the site at the given property.
func (c *SiteConfig) Pins(propertyID uuid.UUID) bool {
	return c.singlePropertyMode && c.mainPropertyID != nil && *c.mainPropertyID == propertyID
}

func (c *SiteConfig) SinglePropertyMode() bool   { return c.singlePropertyMode }
func (c *SiteConfig) MainPropertyID() *uuid.UUID { return c.mainPropertyID }
func (c *SiteConfig) UpdatedAt() time.Time       { return c.updatedAt }
