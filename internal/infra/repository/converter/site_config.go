package converter

import (
	"rental-booking/internal/domain/siteconfig"
	"rental-booking/internal/infra/pgquery"
	"rental-booking/internal/pkg/pgconv"
)

func SiteConfigToParams(cfg *siteconfig.SiteConfig) pgquery.UpsertSiteConfigParams {
	return pgquery.UpsertSiteConfigParams{
		SinglePropertyMode: cfg.SinglePropertyMode(),
		MainPropertyID:     pgconv.UUIDPtrToPgtype(cfg.MainPropertyID()),
	}
}

func SiteConfigToDomain(row pgquery.SiteConfig) *siteconfig.SiteConfig {
	return siteconfig.Reconstruct(
		row.SinglePropertyMode,
		pgconv.UUIDPtrFromPgtype(row.MainPropertyID),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	)
}
