package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"portfolio-backend/internal/domains/activity"
)

// GitLabClient lists projects through the public GitLab REST API.
// GitLab addresses users by numeric id, so listing takes two calls:
// resolve the username, then list that id's public projects.
type GitLabClient struct {
	baseURL string
	http    *http.Client
}

func NewGitLabClient(baseURL string) *GitLabClient {
	return &GitLabClient{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 30 * time.Second},
	}
}

type gitlabUser struct {
	ID int64 `json:"id"`
}

type gitlabProject struct {
	Name           string    `json:"name"`
	WebURL         string    `json:"web_url"`
	Description    string    `json:"description"`
	StarCount      int       `json:"star_count"`
	ForksCount     int       `json:"forks_count"`
	LastActivityAt time.Time `json:"last_activity_at"`
}

// ListProjects resolves the username and fetches the 10 most recently
// active public projects. An unknown username yields an empty list.
func (c *GitLabClient) ListProjects(ctx context.Context, username string) ([]activity.Project, error) {
	lookupURL := fmt.Sprintf("%s/users?username=%s", c.baseURL, url.QueryEscape(username))

	var users []gitlabUser
	if err := c.getJSON(ctx, lookupURL, &users); err != nil {
		return nil, err
	}
	if len(users) == 0 {
		return nil, nil
	}

	listURL := fmt.Sprintf(
		"%s/users/%d/projects?order_by=last_activity_at&sort=desc&per_page=10&visibility=public",
		c.baseURL, users[0].ID,
	)

	var repos []gitlabProject
	if err := c.getJSON(ctx, listURL, &repos); err != nil {
		return nil, err
	}

	projects := make([]activity.Project, 0, len(repos))
	for _, repo := range repos {
		projects = append(projects, activity.Project{
			Source:      "GitLab",
			Icon:        "logo-gitlab",
			Name:        repo.Name,
			URL:         repo.WebURL,
			Description: repo.Description,
			Stars:       repo.StarCount,
			Forks:       repo.ForksCount,
			UpdatedAt:   repo.LastActivityAt,
			// Language left absent: the listing API does not carry one.
		})
	}

	return projects, nil
}

func (c *GitLabClient) getJSON(ctx context.Context, url string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("GET %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("GET %s: unexpected status %d", url, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("GET %s: decode response: %w", url, err)
	}
	return nil
}
