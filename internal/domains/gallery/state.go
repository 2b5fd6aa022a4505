package gallery

import (
	"errors"
	"fmt"
)

// ErrTileNotFound reports an activation index with no tile behind it.
// Callers translate it to a not-found response; any other modal error is
// a store failure.
var ErrTileNotFound = errors.New("tile not found")

// noDescription is shown in the modal when the source field is absent.
// A project description may legitimately contain this exact text; only the
// absence of the field triggers the substitution.
const noDescription = "No description available."

// State is the gallery's interaction state: tile visibility, the filter
// button group, and the modal. Two states exist, gallery-visible and
// modal-open; filtering is orthogonal to the modal. The state is a
// component-local object handed to whoever wires the controls, not a set
// of package-level variables.
type State struct {
	tiles   []Tile
	visible []bool

	// Both flags flip together in the same transition; they exist as a
	// pair because the page drives two separate CSS hooks (container and
	// overlay) from them.
	containerActive bool
	overlayActive   bool
	modal           Modal

	// lastClicked tracks the single active filter button; activation is
	// mutually exclusive across the group.
	lastClicked string
}

// NewState starts in gallery-visible with every tile active and the "all"
// filter selected.
func NewState(tiles []Tile) *State {
	visible := make([]bool, len(tiles))
	for i := range visible {
		visible[i] = true
	}
	return &State{
		tiles:       tiles,
		visible:     visible,
		lastClicked: "all",
	}
}

// OpenTile transitions to modal-open: populates the modal fields from the
// tile and sets both visibility flags. Activating another tile while the
// modal is open re-populates in place; there is no intermediate close.
func (s *State) OpenTile(index int) error {
	if index < 0 || index >= len(s.tiles) {
		return fmt.Errorf("%w: index %d", ErrTileNotFound, index)
	}
	tile := s.tiles[index]

	description := tile.Description
	if description == "" {
		description = noDescription
	}

	s.modal = Modal{
		Title:       tile.Name,
		Category:    tile.CategoryLabel,
		Description: description,
		Image:       tile.Image,
		ImageShown:  tile.Image != "",
	}
	s.containerActive = true
	s.overlayActive = true
	return nil
}

// CloseModal transitions back to gallery-visible, clearing both flags.
func (s *State) CloseModal() {
	s.containerActive = false
	s.overlayActive = false
}

// ModalOpen reports the modal state; open means both flags are set.
func (s *State) ModalOpen() bool {
	return s.containerActive && s.overlayActive
}

// Modal returns the currently populated modal fields.
func (s *State) Modal() Modal {
	return s.modal
}

// Filter activates a category control: a tile is active when the category
// is "all" or equals the tile's stored category. The activated control
// becomes the group's single active button.
func (s *State) Filter(category string) {
	for i, tile := range s.tiles {
		s.visible[i] = category == "all" || category == tile.Category
	}
	s.lastClicked = category
}

// ActiveFilter returns the category of the most recently activated button.
func (s *State) ActiveFilter() string {
	return s.lastClicked
}

// TileActive reports the visibility class of one tile.
func (s *State) TileActive(index int) bool {
	return index >= 0 && index < len(s.tiles) && s.visible[index]
}

// Tiles renders the tile list with current visibility classes.
func (s *State) Tiles() []TileView {
	views := make([]TileView, len(s.tiles))
	for i, tile := range s.tiles {
		views[i] = TileView{Tile: tile, Active: s.visible[i]}
	}
	return views
}
