// Package client holds the REST clients for the two Git-hosting platforms.
// Both are unauthenticated, read-only and rate-limit-unaware; a non-2xx
// response is an error the caller logs and treats as an empty contribution.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"portfolio-backend/internal/domains/activity"
)

const userAgent = "portfolio-backend/1.0"

// GitHubClient lists repositories through the public GitHub REST API.
type GitHubClient struct {
	baseURL string
	http    *http.Client
}

func NewGitHubClient(baseURL string) *GitHubClient {
	return &GitHubClient{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 30 * time.Second},
	}
}

type githubRepo struct {
	Name            string    `json:"name"`
	HTMLURL         string    `json:"html_url"`
	Description     string    `json:"description"`
	StargazersCount int       `json:"stargazers_count"`
	ForksCount      int       `json:"forks_count"`
	UpdatedAt       time.Time `json:"updated_at"`
	Language        string    `json:"language"`
	Fork            bool      `json:"fork"`
}

// ListRepos fetches the 10 most recently updated repositories. Forked
// repositories are skipped.
func (c *GitHubClient) ListRepos(ctx context.Context, username string) ([]activity.Project, error) {
	url := fmt.Sprintf("%s/users/%s/repos?sort=updated&per_page=10", c.baseURL, username)

	var repos []githubRepo
	if err := c.getJSON(ctx, url, &repos); err != nil {
		return nil, err
	}

	projects := make([]activity.Project, 0, len(repos))
	for _, repo := range repos {
		if repo.Fork {
			continue
		}
		projects = append(projects, activity.Project{
			Source:      "GitHub",
			Icon:        "logo-github",
			Name:        repo.Name,
			URL:         repo.HTMLURL,
			Description: repo.Description,
			Stars:       repo.StargazersCount,
			Forks:       repo.ForksCount,
			UpdatedAt:   repo.UpdatedAt,
			Language:    repo.Language,
		})
	}

	return projects, nil
}

func (c *GitHubClient) getJSON(ctx context.Context, url string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/vnd.github+json")

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
