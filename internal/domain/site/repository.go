package site

import "context"

type SiteRepository interface {
	Create(ctx context.Context, s Site) (Site, error)
	List(ctx context.Context) ([]Site, error)
	GetByID(ctx context.Context, id string) (Site, error)
	Delete(ctx context.Context, id string) error
}
