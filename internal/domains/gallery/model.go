package gallery

// Tile is one project in the gallery, flattened from the projects nested
// under the work records.
type Tile struct {
	Name string `json:"name"`
	// Category is the derived, lower-cased grouping label used for
	// filtering. CategoryLabel keeps the original casing for display.
	Category      string `json:"category"`
	CategoryLabel string `json:"category_label"`
	Description   string `json:"description,omitempty"`
	Image         string `json:"image"`
}

// TileView is a tile plus its current visibility class.
type TileView struct {
	Tile
	Active bool `json:"active"`
}

// Control is one filter control. Every category gets two identically wired
// controls: a button for wide layouts and a select item for narrow ones.
type Control struct {
	Category string `json:"category"`
	Label    string `json:"label"`
}

// Modal holds the populated modal fields while it is open.
type Modal struct {
	Title       string `json:"title"`
	Category    string `json:"category"`
	Description string `json:"description"`
	Image       string `json:"image,omitempty"`
	ImageShown  bool   `json:"image_shown"`
}

// View is the rendered gallery section.
type View struct {
	Tiles        []TileView `json:"tiles"`
	Filters      []Control  `json:"filters"`
	SelectItems  []Control  `json:"select_items"`
	ActiveFilter string     `json:"active_filter"`
}
