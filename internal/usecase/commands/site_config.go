package commands

import (
	"context"

	"rental-booking/internal/domain/siteconfig"
	"rental-booking/internal/usecase/queries"
	"rental-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

//go:generate mockgen -source=site_config.go -destination=../../../tests/mock/commands/mock_site_config.go -package=commandsmock

type SiteConfigCommands interface {
	// Set leaves the stored row untouched when validation fails or the main property is unknown.
	Set(ctx context.Context, singlePropertyMode bool, mainPropertyID *uuid.UUID) (*queries.SiteConfigView, error)
}

type siteConfigCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewSiteConfigCommands(uow shared.UnitOfWork) SiteConfigCommands {
	return &siteConfigCommandsImpl{uow: uow}
}

func (c *siteConfigCommandsImpl) Set(ctx context.Context, singlePropertyMode bool, mainPropertyID *uuid.UUID) (*queries.SiteConfigView, error) {
	var saved *siteconfig.SiteConfig
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		cfg, err := tx.Reads().SiteConfig(ctx)
		if err != nil {
			return err
		}
		if err := cfg.Apply(singlePropertyMode, mainPropertyID); err != nil {
			return err
		}

		if id := cfg.MainPropertyID(); id != nil {
			if _, err := tx.Reads().PropertyByID(ctx, *id); err != nil {
				return mapPropertyNotFound(err)
			}
		}

		saved, err = tx.SiteConfig().Save(ctx, tx.DB(), cfg)
		return err
	})
	if err != nil {
		return nil, err
	}

	return siteConfigToView(saved), nil
}
