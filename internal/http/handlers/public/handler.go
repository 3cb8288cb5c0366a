package public

import "github.com/jusas-smoothie/api/internal/provider"

// Handler serves the storefront API: auth, catalog, cart, checkout.
type Handler struct {
	*provider.Container
}

// New creates the storefront handler.
func New(c *provider.Container) *Handler {
	return &Handler{Container: c}
}
