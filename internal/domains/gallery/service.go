package gallery

import "context"

// Service renders the project gallery.
type Service interface {
	// View builds the gallery with the given filter applied; "" means the
	// initial "all" state.
	View(ctx context.Context, category string) (*View, error)
	// Modal returns the modal contents for one tile, as the open
	// transition would populate them.
	Modal(ctx context.Context, tileIndex int) (*Modal, error)
}
