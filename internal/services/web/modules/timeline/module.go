// Package timeline serves the home page: the dated record of blocking events.
package timeline

import (
	"fmt"
	"net/http"

	"github.com/stoplaliga/stoplaliga.com/internal/services/web/content"
	module "github.com/stoplaliga/stoplaliga.com/internal/services/web/module"
	"github.com/stoplaliga/stoplaliga.com/internal/services/web/platform/httpx"
	"github.com/stoplaliga/stoplaliga.com/internal/services/web/platform/publichandler"
	"github.com/stoplaliga/stoplaliga.com/internal/services/web/routepath"
)

// Module mounts the timeline page.
type Module struct {
	library *content.Library
}

// New returns a timeline module backed by library.
func New(library *content.Library) Module {
	return Module{library: library}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "timeline" }

// Mount returns the module handler for the localized home path.
func (m Module) Mount() (module.Mount, error) {
	if m.library == nil {
		return module.Mount{}, fmt.Errorf("content library is required")
	}
	h := newHandlers(publichandler.NewBase(publichandler.WithUpdatedAt(m.library.UpdatedAt)), m.library)
	return module.Mount{
		Path:    routepath.Root,
		Handler: httpx.RequireMethod(http.MethodGet)(http.HandlerFunc(h.handleIndex)),
	}, nil
}
