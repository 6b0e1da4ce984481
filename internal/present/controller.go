package present

import "pokedex/internal/catalog"

// Surface is the host the controller draws into.
//
// ShowList replaces the list region entirely. ShowDetail fills the overlay,
// makes it visible and locks background scrolling; HideDetail undoes both.
type Surface interface {
	ShowList(Grid)
	ShowDetail(Panel)
	HideDetail()
}

type ViewState struct {
	Search   string
	Category string
	// DetailID is the record shown in the overlay, or 0 when it is closed.
	DetailID int
}

type CloseTrigger int

const (
	CloseButton CloseTrigger = iota
	CloseBackdrop
	CloseEscape
)

func (t CloseTrigger) String() string {
	switch t {
	case CloseButton:
		return "button"
	case CloseBackdrop:
		return "backdrop"
	case CloseEscape:
		return "escape"
	}
	return "unknown"
}

// Controller re-runs the filter and presenters in response to input events.
// It never mutates the catalog.
type Controller struct {
	cat     *catalog.Catalog
	surface Surface
	state   ViewState
	visible []catalog.Record
}

func NewController(cat *catalog.Catalog, surface Surface) *Controller {
	return &Controller{
		cat:     cat,
		surface: surface,
		state:   ViewState{Category: catalog.AllTypes},
	}
}

func (c *Controller) State() ViewState {
	return c.state
}

func (c *Controller) Options() []catalog.Option {
	return c.cat.Options()
}

// Visible returns the records currently rendered in the list region.
func (c *Controller) Visible() []catalog.Record {
	return c.visible
}

// Start renders the unfiltered list.
func (c *Controller) Start() {
	c.refresh()
}

func (c *Controller) SetSearch(search string) {
	c.state.Search = search
	c.refresh()
}

func (c *Controller) SetCategory(category string) {
	if category == "" {
		category = catalog.AllTypes
	}
	c.state.Category = category
	c.refresh()
}

// Open shows the detail overlay for id, replacing any open one. It reports
// false when id is not in the catalog.
func (c *Controller) Open(id int) bool {
	r, ok := c.cat.Lookup(id)
	if !ok {
		return false
	}
	c.state.DetailID = id
	c.surface.ShowDetail(RenderDetail(r))
	return true
}

// Close hides the overlay. Every trigger has the same effect, and closing
// an already closed overlay does nothing.
func (c *Controller) Close(CloseTrigger) {
	if c.state.DetailID == 0 {
		return
	}
	c.state.DetailID = 0
	c.surface.HideDetail()
}

func (c *Controller) refresh() {
	var grid Grid
	c.visible, grid = RenderResults(c.cat, c.state.Search, c.state.Category)
	c.surface.ShowList(grid)
}
