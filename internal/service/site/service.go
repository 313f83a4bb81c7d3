package site

import (
	"context"
	"strings"
	"time"

	"github.com/buildcrew/sitepulse-backend-go/internal/domain/site"
)

type SiteServiceImpl struct {
	site.SiteRepository
}

func NewSiteService(siteRepo site.SiteRepository) site.SiteService {
	return &SiteServiceImpl{SiteRepository: siteRepo}
}

// Create implements site.SiteService.
func (s *SiteServiceImpl) Create(ctx context.Context, req site.CreateSiteRequest) (site.SiteResponse, error) {
	if err := req.Validate(); err != nil {
		return site.SiteResponse{}, err
	}

	created, err := s.SiteRepository.Create(ctx, site.Site{
		Name:        strings.TrimSpace(req.Name),
		Location:    req.Location,
		Description: req.Description,
	})
	if err != nil {
		return site.SiteResponse{}, err
	}

	return toResponse(created), nil
}

// List implements site.SiteService.
func (s *SiteServiceImpl) List(ctx context.Context) ([]site.SiteResponse, error) {
	sites, err := s.SiteRepository.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]site.SiteResponse, 0, len(sites))
	for _, st := range sites {
		responses = append(responses, toResponse(st))
	}
	return responses, nil
}

// Delete implements site.SiteService.
func (s *SiteServiceImpl) Delete(ctx context.Context, id string) error {
	return s.SiteRepository.Delete(ctx, id)
}

func toResponse(st site.Site) site.SiteResponse {
	return site.SiteResponse{
		ID:          st.ID,
		Name:        st.Name,
		Location:    st.Location,
		Description: st.Description,
		CreatedAt:   st.CreatedAt.Format(time.RFC3339),
	}
}
