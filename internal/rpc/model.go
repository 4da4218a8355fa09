package rpc

import "github.com/daniilsolovey/community-portal/internal/domain"

type SearchParams struct {
	//query text to match, empty matches everything
	Query string `json:"query"`
	//scope=all one of all, news, events, businesses, announcements
	Scope string `json:"scope,omitempty"`
	//timeFilter=any one of any, today, week, month, year
	TimeFilter string `json:"timeFilter,omitempty"`
	//sortBy=relevance one of relevance, recent, popular
	SortBy string `json:"sortBy,omitempty"`
	//page=1 page number (1-based)
	Page int `json:"page,omitempty"`
	//limit=20 page size per category
	Limit int `json:"limit,omitempty"`
	//communityId optional community filter
	CommunityID *string `json:"communityId,omitempty"`
}

func (p SearchParams) ToDomain() domain.SearchParams {
	return domain.SearchParams{
		Query:       p.Query,
		Scope:       domain.SearchScope(p.Scope),
		TimeFilter:  domain.TimeFilter(p.TimeFilter),
		SortBy:      domain.SortBy(p.SortBy),
		Page:        p.Page,
		Limit:       p.Limit,
		CommunityID: p.CommunityID,
	}
}
