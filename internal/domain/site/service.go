package site

import "context"

type SiteService interface {
	Create(ctx context.Context, req CreateSiteRequest) (SiteResponse, error)
	List(ctx context.Context) ([]SiteResponse, error)
	Delete(ctx context.Context, id string) error
}
