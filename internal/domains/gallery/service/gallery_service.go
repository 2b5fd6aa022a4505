package service

import (
	"context"
	"fmt"
	"strings"

	"portfolio-backend/internal/docstore"
	"portfolio-backend/internal/domains/gallery"
	resumeService "portfolio-backend/internal/domains/resume/service"
)

// defaultTileImage is the fallback when neither the project nor its
// company has an image.
const defaultTileImage = "./assets/images/project-1.jpg"

type galleryService struct {
	store docstore.Store
}

func NewGalleryService(store docstore.Store) gallery.Service {
	return &galleryService{store: store}
}

func (s *galleryService) View(ctx context.Context, category string) (*gallery.View, error) {
	tiles, err := s.loadTiles(ctx)
	if err != nil {
		return nil, err
	}
	if len(tiles) == 0 {
		return nil, nil
	}

	state := gallery.NewState(tiles)
	if category != "" {
		state.Filter(strings.ToLower(category))
	}

	filters := buildControls(tiles)

	return &gallery.View{
		Tiles:        state.Tiles(),
		Filters:      filters,
		SelectItems:  filters,
		ActiveFilter: state.ActiveFilter(),
	}, nil
}

func (s *galleryService) Modal(ctx context.Context, tileIndex int) (*gallery.Modal, error) {
	tiles, err := s.loadTiles(ctx)
	if err != nil {
		return nil, err
	}

	state := gallery.NewState(tiles)
	if err := state.OpenTile(tileIndex); err != nil {
		return nil, fmt.Errorf("open tile: %w", err)
	}

	modal := state.Modal()
	return &modal, nil
}

// loadTiles flattens the projects nested under the work records. The
// tile image falls back project image -> company logo -> default.
func (s *galleryService) loadTiles(ctx context.Context) ([]gallery.Tile, error) {
	works, err := resumeService.LoadWorks(ctx, s.store)
	if err != nil {
		return nil, err
	}

	var tiles []gallery.Tile
	for _, work := range works {
		for _, proj := range work.Projects {
			label := proj.Role
			if label == "" {
				label = "Project"
			}

			image := proj.Image
			if image == "" {
				image = work.Logo
			}
			if image == "" {
				image = defaultTileImage
			}

			tiles = append(tiles, gallery.Tile{
				Name:          proj.Name,
				Category:      strings.ToLower(label),
				CategoryLabel: label,
				Description:   proj.Description,
				Image:         image,
			})
		}
	}

	return tiles, nil
}

// buildControls derives the filter controls: the synthetic "all" first,
// then each distinct category in order of first appearance.
func buildControls(tiles []gallery.Tile) []gallery.Control {
	controls := []gallery.Control{{Category: "all", Label: "All"}}
	seen := map[string]bool{"all": true}

	for _, tile := range tiles {
		if seen[tile.Category] {
			continue
		}
		seen[tile.Category] = true
		controls = append(controls, gallery.Control{
			Category: tile.Category,
			Label:    capitalize(tile.Category),
		})
	}

	return controls
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
