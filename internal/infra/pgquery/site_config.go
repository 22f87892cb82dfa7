package pgquery

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

const siteConfigColumns = `id, single_property_mode, main_property_id, updated_at`

const ensureSiteConfig = `INSERT INTO site_config (id) VALUES ('default') ON CONFLICT (id) DO NOTHING`

func (q *Queries) EnsureSiteConfig(ctx context.Context, db DBTX) error {
	_, err := db.Exec(ctx, ensureSiteConfig)
	return err
}

const getSiteConfig = `SELECT ` + siteConfigColumns + ` FROM site_config WHERE id = 'default'`

func (q *Queries) GetSiteConfig(ctx context.Context, db DBTX) (SiteConfig, error) {
	return queryOne[SiteConfig](ctx, db, getSiteConfig)
}

type UpsertSiteConfigParams struct {
	SinglePropertyMode bool
	MainPropertyID     pgtype.UUID
}

const upsertSiteConfig = `
INSERT INTO site_config (id, single_property_mode, main_property_id)
VALUES ('default', $1, $2)
ON CONFLICT (id) DO UPDATE
SET single_property_mode = EXCLUDED.single_property_mode,
    main_property_id = EXCLUDED.main_property_id,
    updated_at = now()
RETURNING ` + siteConfigColumns

func (q *Queries) UpsertSiteConfig(ctx context.Context, db DBTX, arg UpsertSiteConfigParams) (SiteConfig, error) {
	return queryOne[SiteConfig](ctx, db, upsertSiteConfig, arg.SinglePropertyMode, arg.MainPropertyID)
}
