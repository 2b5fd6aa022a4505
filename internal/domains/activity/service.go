package activity

import "context"

// Service builds the merged external activity feed.
type Service interface {
	Feed(ctx context.Context) (*FeedView, error)
}

// ReposLister lists recently updated repositories for a username.
type ReposLister interface {
	ListRepos(ctx context.Context, username string) ([]Project, error)
}

// ProjectsLister lists recently active public projects for a username.
type ProjectsLister interface {
	ListProjects(ctx context.Context, username string) ([]Project, error)
}
