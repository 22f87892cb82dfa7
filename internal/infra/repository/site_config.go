package repository

import (
	"context"

	"rental-booking/internal/domain/siteconfig"
	"rental-booking/internal/infra"
	"rental-booking/internal/infra/pgquery"
	"rental-booking/internal/infra/repository/converter"
)

type SiteConfigWriteQueries interface {
	UpsertSiteConfig(ctx context.Context, db pgquery.DBTX, arg pgquery.UpsertSiteConfigParams) (pgquery.SiteConfig, error)
}

type SiteConfigRepository struct {
	queries SiteConfigWriteQueries
}

func NewSiteConfigRepository(queries SiteConfigWriteQueries) *SiteConfigRepository {
	return &SiteConfigRepository{queries: queries}
}

func (r *SiteConfigRepository) Save(ctx context.Context, tx pgquery.DBTX, cfg *siteconfig.SiteConfig) (*siteconfig.SiteConfig, error) {
	row, err := r.queries.UpsertSiteConfig(ctx, tx, converter.SiteConfigToParams(cfg))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to save site config", err)
	}
	return converter.SiteConfigToDomain(row), nil
}
