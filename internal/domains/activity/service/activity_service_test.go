package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio-backend/internal/docstore"
	"portfolio-backend/internal/domains/activity"
)

type fakeStore struct {
	contacts map[string]interface{}
}

func (f *fakeStore) Get(_ context.Context, collection, id string) (docstore.Document, error) {
	if collection == "contacts" && id == "data" && f.contacts != nil {
		return docstore.Document{ID: id, Fields: f.contacts}, nil
	}
	return docstore.Document{}, docstore.ErrNotFound
}

func (f *fakeStore) List(_ context.Context, _ string) ([]docstore.Document, error) {
	return nil, nil
}

type fakeRepos struct {
	projects []activity.Project
	err      error
	gotUser  string
}

func (f *fakeRepos) ListRepos(_ context.Context, username string) ([]activity.Project, error) {
	f.gotUser = username
	return f.projects, f.err
}

type fakeProjects struct {
	projects []activity.Project
	err      error
	gotUser  string
}

func (f *fakeProjects) ListProjects(_ context.Context, username string) ([]activity.Project, error) {
	f.gotUser = username
	return f.projects, f.err
}

func at(day int) time.Time {
	return time.Date(2024, 6, day, 0, 0, 0, 0, time.UTC)
}

func project(source, name string, updated time.Time) activity.Project {
	return activity.Project{Source: source, Name: name, UpdatedAt: updated}
}

func contactsWithGithub(url string) map[string]interface{} {
	return map[string]interface{}{"github": url}
}

func TestFeedMergeSortedAcrossPlatforms(t *testing.T) {
	github := &fakeRepos{projects: []activity.Project{
		project("GitHub", "gh-new", at(20)),
		project("GitHub", "gh-old", at(2)),
	}}
	gitlab := &fakeProjects{projects: []activity.Project{
		project("GitLab", "gl-newest", at(25)),
		project("GitLab", "gl-mid", at(10)),
		project("GitLab", "gl-oldest", at(1)),
	}}
	store := &fakeStore{contacts: contactsWithGithub("https://github.com/someuser")}

	svc := NewActivityService(store, github, gitlab, "someuser")

	feed, err := svc.Feed(context.Background())
	require.NoError(t, err)
	require.Len(t, feed.Projects, 5)

	names := make([]string, 0, len(feed.Projects))
	for _, p := range feed.Projects {
		names = append(names, p.Name)
	}
	assert.Equal(t, []string{"gl-newest", "gh-new", "gl-mid", "gh-old", "gl-oldest"}, names,
		"strictly descending by update time across both sources")

	assert.Equal(t, "someuser", github.gotUser, "username derived from the contacts github URL")
}

func TestFeedGithubUsernameFromURLWithTrailingSlash(t *testing.T) {
	github := &fakeRepos{}
	gitlab := &fakeProjects{}
	store := &fakeStore{contacts: contactsWithGithub("https://github.com/dwiheru/")}

	svc := NewActivityService(store, github, gitlab, "x")
	_, err := svc.Feed(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "dwiheru", github.gotUser)
}

func TestFeedOnePlatformFailingStillRendersOther(t *testing.T) {
	github := &fakeRepos{err: errors.New("rate limited")}
	gitlab := &fakeProjects{projects: []activity.Project{
		project("GitLab", "survivor", at(5)),
	}}
	store := &fakeStore{contacts: contactsWithGithub("https://github.com/u")}

	svc := NewActivityService(store, github, gitlab, "u")

	feed, err := svc.Feed(context.Background())
	require.NoError(t, err)
	require.Len(t, feed.Projects, 1)
	assert.Equal(t, "survivor", feed.Projects[0].Name)
	assert.Empty(t, feed.Placeholder)
}

func TestFeedEmptyRendersSinglePlaceholder(t *testing.T) {
	svc := NewActivityService(&fakeStore{}, &fakeRepos{}, &fakeProjects{}, "")

	feed, err := svc.Feed(context.Background())
	require.NoError(t, err)

	assert.Empty(t, feed.Projects)
	assert.Equal(t, "No projects found.", feed.Placeholder)
}

func TestFeedNoGithubContactSkipsGithub(t *testing.T) {
	github := &fakeRepos{projects: []activity.Project{project("GitHub", "x", at(1))}}
	gitlab := &fakeProjects{}
	store := &fakeStore{contacts: map[string]interface{}{"email": "a@b.c"}}

	svc := NewActivityService(store, github, gitlab, "")

	feed, err := svc.Feed(context.Background())
	require.NoError(t, err)
	assert.Empty(t, github.gotUser, "GitHub is never called without a username")
	assert.Equal(t, "No projects found.", feed.Placeholder)
}

func TestFeedUpdatedLabelFormat(t *testing.T) {
	github := &fakeRepos{projects: []activity.Project{
		project("GitHub", "repo", time.Date(2023, 11, 5, 14, 0, 0, 0, time.UTC)),
	}}
	store := &fakeStore{contacts: contactsWithGithub("https://github.com/u")}

	svc := NewActivityService(store, github, &fakeProjects{}, "")

	feed, err := svc.Feed(context.Background())
	require.NoError(t, err)
	require.Len(t, feed.Projects, 1)
	assert.Equal(t, "Nov 5, 2023", feed.Projects[0].UpdatedLabel)
}
