package site

import "context"

// Service assembles the aggregate portfolio view.
type Service interface {
	Build(ctx context.Context) *PortfolioView
}
