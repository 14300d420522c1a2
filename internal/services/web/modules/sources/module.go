// Package sources serves the page of cited references.
package sources

import (
	"fmt"
	"net/http"

	"github.com/stoplaliga/stoplaliga.com/internal/services/web/content"
	module "github.com/stoplaliga/stoplaliga.com/internal/services/web/module"
	"github.com/stoplaliga/stoplaliga.com/internal/services/web/platform/httpx"
	"github.com/stoplaliga/stoplaliga.com/internal/services/web/platform/publichandler"
	"github.com/stoplaliga/stoplaliga.com/internal/services/web/routepath"
)

// Module mounts the sources page.
type Module struct {
	library *content.Library
}

// New returns a sources module backed by library.
func New(library *content.Library) Module {
	return Module{library: library}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "sources" }

// Mount returns the module handler.
func (m Module) Mount() (module.Mount, error) {
	if m.library == nil {
		return module.Mount{}, fmt.Errorf("content library is required")
	}
	h := newHandlers(publichandler.NewBase(publichandler.WithUpdatedAt(m.library.UpdatedAt)), m.library)
	return module.Mount{
		Path:    routepath.Sources,
		Handler: httpx.RequireMethod(http.MethodGet)(http.HandlerFunc(h.handleIndex)),
	}, nil
}
