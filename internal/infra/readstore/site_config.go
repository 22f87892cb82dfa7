package readstore

import (
	"context"

	"rental-booking/internal/infra"
	"rental-booking/internal/infra/pgquery"
	"rental-booking/internal/pkg/pgconv"
	"rental-booking/internal/usecase/queries"
)

type SiteConfigReadQueries interface {
	EnsureSiteConfig(ctx context.Context, db pgquery.DBTX) error
	GetSiteConfig(ctx context.Context, db pgquery.DBTX) (pgquery.SiteConfig, error)
}

type SiteConfigReadStore struct {
	queries SiteConfigReadQueries
	db      pgquery.DBTX
}

func NewSiteConfigReadStore(queries SiteConfigReadQueries, db pgquery.DBTX) *SiteConfigReadStore {
	return &SiteConfigReadStore{
		queries: queries,
		db:      db,
	}
}

// Get inserts the default row when the table is still empty.
func (r *SiteConfigReadStore) Get(ctx context.Context) (*queries.SiteConfigView, error) {
	row, err := r.queries.GetSiteConfig(ctx, r.db)
	if pgconv.IsNoRows(err) {
		if err = r.queries.EnsureSiteConfig(ctx, r.db); err != nil {
			return nil, infra.WrapRepoErr("failed to create default site config", err)
		}
		row, err = r.queries.GetSiteConfig(ctx, r.db)
	}
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get site config", err)
	}

	return &queries.SiteConfigView{
		SinglePropertyMode: row.SinglePropertyMode,
		MainPropertyID:     pgconv.UUIDPtrFromPgtype(row.MainPropertyID),
		UpdatedAt:          pgconv.TimeFromPgtype(row.UpdatedAt),
	}, nil
}
