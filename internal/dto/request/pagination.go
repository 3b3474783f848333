package request

import (
	"net/url"

	"flight-booking/pkg/utils"
)

const (
	defaultPerPage = 10
	maxPerPage     = 100
)

type PaginatedRequest struct {
	Page    int `json:"page" validate:"min=1"`
	PerPage int `json:"per_page" validate:"min=1,max=100"`
}

// BindForm reads page and per_page, falling back to the defaults on bad input
func (p *PaginatedRequest) BindForm(form url.Values) error {
	p.Page = utils.ParseInt(form.Get("page"), 1)
	p.PerPage = min(utils.ParseInt(form.Get("per_page"), defaultPerPage), maxPerPage)
	return nil
}

func (p PaginatedRequest) Offset() int {
	return utils.CalculateOffset(p.Page, p.Limit())
}

func (p PaginatedRequest) Limit() int {
	if p.PerPage < 1 {
		return defaultPerPage
	}
	if p.PerPage > maxPerPage {
		return maxPerPage
	}
	return p.PerPage
}
