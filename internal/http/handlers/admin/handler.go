package admin

import "github.com/jusas-smoothie/api/internal/provider"

// Handler serves the back-office API: catalog management, order
// lifecycle and statistics.
type Handler struct {
	*provider.Container
}

// New creates the back-office handler.
func New(c *provider.Container) *Handler {
	return &Handler{Container: c}
}
