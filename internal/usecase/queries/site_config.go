package queries

import "context"

//go:generate mockgen -source=site_config.go -destination=../../../tests/mock/queries/mock_site_config.go -package=queriesmock

type SiteConfigQueries interface {
	Get(ctx context.Context) (*SiteConfigView, error)
}

// SiteConfigReadStore creates the default row on first read.
type SiteConfigReadStore interface {
	Get(ctx context.Context) (*SiteConfigView, error)
}

type siteConfigQueriesImpl struct {
	readStore SiteConfigReadStore
}

func NewSiteConfigQueries(readStore SiteConfigReadStore) SiteConfigQueries {
	return &siteConfigQueriesImpl{readStore: readStore}
}

func (q *siteConfigQueriesImpl) Get(ctx context.Context) (*SiteConfigView, error) {
	return q.readStore.Get(ctx)
}
