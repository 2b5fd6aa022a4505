package activity

import "time"

// Project is the normalized record both platforms are mapped into.
// It is derived at render time and never persisted.
type Project struct {
	Source      string    `json:"source"` // "GitHub" or "GitLab"
	Icon        string    `json:"icon"`
	Name        string    `json:"name"`
	URL         string    `json:"url"`
	Description string    `json:"description,omitempty"`
	Stars       int       `json:"stars"`
	Forks       int       `json:"forks"`
	UpdatedAt   time.Time `json:"updated_at"`
	// Language is absent for GitLab projects; the listing API has no
	// language field.
	Language string `json:"language,omitempty"`
}

// ProjectView adds the preformatted date shown on the card.
type ProjectView struct {
	Project
	UpdatedLabel string `json:"updated_label"`
}

// FeedView is the activity section. When both platforms yield nothing the
// feed renders a single placeholder element instead of an empty list.
type FeedView struct {
	Projects    []ProjectView `json:"projects"`
	Placeholder string        `json:"placeholder,omitempty"`
}
