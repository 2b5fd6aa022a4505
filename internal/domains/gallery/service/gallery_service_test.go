package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio-backend/internal/docstore"
	"portfolio-backend/internal/domains/gallery"
)

type fakeStore struct {
	works []docstore.Document
	err   error
}

func (f *fakeStore) Get(_ context.Context, _, _ string) (docstore.Document, error) {
	return docstore.Document{}, docstore.ErrNotFound
}

func (f *fakeStore) List(_ context.Context, collection string) ([]docstore.Document, error) {
	if f.err != nil {
		return nil, f.err
	}
	if collection == "works" {
		return f.works, nil
	}
	return nil, nil
}

func proj(name, role, desc, image string) map[string]interface{} {
	return map[string]interface{}{
		"name": name, "role": role, "desc": desc, "image": image,
	}
}

func workDoc(id, company, logo string, projects ...interface{}) docstore.Document {
	return docstore.Document{
		ID: id,
		Fields: map[string]interface{}{
			"company":  company,
			"logo":     logo,
			"projects": projects,
		},
	}
}

func TestViewFlattensProjectsAcrossWorks(t *testing.T) {
	store := &fakeStore{works: []docstore.Document{
		workDoc("w1", "Acme", "./acme.png",
			proj("Dashboard", "Web development", "internal tool", "./dash.jpg"),
			proj("Landing", "Web design", "", ""),
		),
		workDoc("w2", "Beta", "",
			proj("Pipeline", "Backend", "etl", ""),
		),
	}}

	svc := NewGalleryService(store)

	view, err := svc.View(context.Background(), "")
	require.NoError(t, err)
	require.NotNil(t, view)
	require.Len(t, view.Tiles, 3)

	assert.Equal(t, "Dashboard", view.Tiles[0].Name)
	assert.Equal(t, "web development", view.Tiles[0].Category)
	assert.Equal(t, "Web development", view.Tiles[0].CategoryLabel)
	assert.Equal(t, "./dash.jpg", view.Tiles[0].Image)

	// project image -> company logo -> default
	assert.Equal(t, "./acme.png", view.Tiles[1].Image)
	assert.Equal(t, "./assets/images/project-1.jpg", view.Tiles[2].Image)
}

func TestViewControlsAllFirstThenFirstAppearance(t *testing.T) {
	store := &fakeStore{works: []docstore.Document{
		workDoc("w1", "Acme", "",
			proj("A", "Web development", "", ""),
			proj("B", "Web design", "", ""),
			proj("C", "Web development", "", ""),
		),
	}}

	svc := NewGalleryService(store)

	view, err := svc.View(context.Background(), "")
	require.NoError(t, err)

	categories := make([]string, 0, len(view.Filters))
	for _, c := range view.Filters {
		categories = append(categories, c.Category)
	}
	assert.Equal(t, []string{"all", "web development", "web design"}, categories)
	assert.Equal(t, "All", view.Filters[0].Label)
	assert.Equal(t, "Web development", view.Filters[1].Label)
	assert.Equal(t, view.Filters, view.SelectItems, "both control groups carry the same categories")
}

func TestViewCategoryFilterApplied(t *testing.T) {
	store := &fakeStore{works: []docstore.Document{
		workDoc("w1", "Acme", "",
			proj("A", "Web development", "", ""),
			proj("B", "Web design", "", ""),
		),
	}}

	svc := NewGalleryService(store)

	view, err := svc.View(context.Background(), "Web Design")
	require.NoError(t, err)

	assert.Equal(t, "web design", view.ActiveFilter)
	assert.False(t, view.Tiles[0].Active)
	assert.True(t, view.Tiles[1].Active)
}

func TestViewMissingRoleDefaultsToProject(t *testing.T) {
	store := &fakeStore{works: []docstore.Document{
		workDoc("w1", "Acme", "", proj("A", "", "", "")),
	}}

	svc := NewGalleryService(store)

	view, err := svc.View(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, "project", view.Tiles[0].Category)
	assert.Equal(t, "Project", view.Tiles[0].CategoryLabel)
}

func TestViewNoProjects(t *testing.T) {
	svc := NewGalleryService(&fakeStore{})

	view, err := svc.View(context.Background(), "")
	require.NoError(t, err)
	assert.Nil(t, view)
}

func TestViewStoreError(t *testing.T) {
	svc := NewGalleryService(&fakeStore{err: errors.New("boom")})

	_, err := svc.View(context.Background(), "")
	assert.Error(t, err)
}

func TestModalPopulatedFromTile(t *testing.T) {
	store := &fakeStore{works: []docstore.Document{
		workDoc("w1", "Acme", "",
			proj("Dashboard", "Web development", "internal tool", "./dash.jpg"),
			proj("Landing", "Web design", "", ""),
		),
	}}

	svc := NewGalleryService(store)

	modal, err := svc.Modal(context.Background(), 1)
	require.NoError(t, err)
	require.NotNil(t, modal)
	assert.Equal(t, "Landing", modal.Title)
	assert.Equal(t, "Web design", modal.Category)
	assert.Equal(t, "No description available.", modal.Description)
	assert.False(t, modal.ImageShown)

	var wrong *gallery.Modal
	wrong, err = svc.Modal(context.Background(), 5)
	assert.Error(t, err)
	assert.Nil(t, wrong)
}
