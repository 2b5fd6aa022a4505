package service

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"portfolio-backend/internal/docstore"
	"portfolio-backend/internal/domains/activity"
	"portfolio-backend/pkg/logger"
)

type activityService struct {
	store  docstore.Store
	github activity.ReposLister
	gitlab activity.ProjectsLister
	// gitlabUsername is configured; GitHub's username is data-driven,
	// derived from the stored contacts document.
	gitlabUsername string
}

func NewActivityService(
	store docstore.Store,
	github activity.ReposLister,
	gitlab activity.ProjectsLister,
	gitlabUsername string,
) activity.Service {
	return &activityService{
		store:          store,
		github:         github,
		gitlab:         gitlab,
		gitlabUsername: gitlabUsername,
	}
}

// Feed fetches both platforms concurrently, merges the results and sorts
// them by last update, newest first. A failure on either platform is
// logged and contributes nothing; only the merged-empty case renders the
// placeholder.
func (s *activityService) Feed(ctx context.Context) (*activity.FeedView, error) {
	githubUser := s.githubUsername(ctx)

	var (
		mu       sync.Mutex
		projects []activity.Project
		wg       sync.WaitGroup
	)

	collect := func(found []activity.Project) {
		mu.Lock()
		projects = append(projects, found...)
		mu.Unlock()
	}

	if githubUser != "" {
		wg.Add(1)
		go func() {
			defer wg.Done()
			found, err := s.github.ListRepos(ctx, githubUser)
			if err != nil {
				logger.Error("GitHub repos fetch error", err)
				return
			}
			collect(found)
		}()
	}

	if s.gitlabUsername != "" {
		wg.Add(1)
		go func() {
			defer wg.Done()
			found, err := s.gitlab.ListProjects(ctx, s.gitlabUsername)
			if err != nil {
				logger.Error("GitLab repos fetch error", err)
				return
			}
			collect(found)
		}()
	}

	wg.Wait()

	sort.SliceStable(projects, func(i, j int) bool {
		return projects[i].UpdatedAt.After(projects[j].UpdatedAt)
	})

	if len(projects) == 0 {
		return &activity.FeedView{Placeholder: "No projects found."}, nil
	}

	views := make([]activity.ProjectView, 0, len(projects))
	for _, p := range projects {
		views = append(views, activity.ProjectView{
			Project:      p,
			UpdatedLabel: p.UpdatedAt.Format("Jan 2, 2006"),
		})
	}

	return &activity.FeedView{Projects: views}, nil
}

// githubUsername derives the GitHub username from the contacts document's
// github URL: the last non-empty path segment. Any failure here just means
// the GitHub side contributes nothing.
func (s *activityService) githubUsername(ctx context.Context) string {
	doc, err := s.store.Get(ctx, "contacts", "data")
	if err != nil {
		if !errors.Is(err, docstore.ErrNotFound) {
			logger.Error("load contacts for github username", err)
		}
		return ""
	}

	githubURL := doc.String("github")
	if githubURL == "" {
		return ""
	}

	segments := strings.FieldsFunc(githubURL, func(r rune) bool { return r == '/' })
	if len(segments) == 0 {
		return ""
	}
	return segments[len(segments)-1]
}
