package rpc

import (
	"context"
	"errors"

	"github.com/vmkteam/zenrpc/v2"

	"github.com/daniilsolovey/community-portal/internal/domain"
	"github.com/daniilsolovey/community-portal/internal/portal"
)

//go:generate zenrpc

// PortalService exposes the community read layer over JSON-RPC.
type PortalService struct {
	zenrpc.Service
	manager *portal.Manager
}

func NewPortalService(manager *portal.Manager) *PortalService {
	return &PortalService{manager: manager}
}

// Homepage composes the homepage of a community: featured and latest news,
// today's events, top announcements and featured businesses.
//
//zenrpc:communityId community identifier
//zenrpc:return homepage aggregate
//zenrpc:400 communityId is required
//zenrpc:503 temporarily unavailable
func (s *PortalService) Homepage(ctx context.Context, communityID string) (*domain.Homepage, error) {
	if communityID == "" {
		return nil, zenrpc.NewStringError(400, "communityId is required")
	}

	hp, err := s.manager.Homepage(ctx, communityID)
	if err != nil {
		return nil, newError(err)
	}

	return hp, nil
}

// Search runs a federated search over news, events, businesses and announcements.
//
//zenrpc:params search parameters
//zenrpc:return merged and paginated results
//zenrpc:400 invalid search parameters
func (s *PortalService) Search(ctx context.Context, params SearchParams) (*domain.SearchResponse, error) {
	resp, err := s.manager.Search(ctx, params.ToDomain())
	if err != nil {
		return nil, newError(err)
	}

	return resp, nil
}

// Article retrieves a published news article by slug.
//
//zenrpc:slug article slug
//zenrpc:return news article with author
//zenrpc:404 article not found
//zenrpc:503 temporarily unavailable
func (s *PortalService) Article(ctx context.Context, slug string) (*domain.NewsArticle, error) {
	article, err := s.manager.NewsBySlug(ctx, slug)
	if err != nil {
		return nil, newError(err)
	}

	return article, nil
}

func newError(err error) *zenrpc.Error {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return zenrpc.NewStringError(404, "not found")
	case errors.Is(err, domain.ErrInvalidParams):
		return zenrpc.NewStringError(400, err.Error())
	default:
		return zenrpc.NewStringError(503, "temporarily unavailable")
	}
}
