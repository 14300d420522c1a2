// Package intro serves the animation demo page as static narration.
package intro

import (
	"fmt"
	"net/http"

	"github.com/stoplaliga/stoplaliga.com/internal/services/web/content"
	module "github.com/stoplaliga/stoplaliga.com/internal/services/web/module"
	"github.com/stoplaliga/stoplaliga.com/internal/services/web/platform/httpx"
	"github.com/stoplaliga/stoplaliga.com/internal/services/web/platform/publichandler"
	"github.com/stoplaliga/stoplaliga.com/internal/services/web/routepath"
)

// Module mounts the intro page.
type Module struct {
	library *content.Library
}

// New returns an intro module backed by library.
func New(library *content.Library) Module {
	return Module{library: library}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "intro" }

// Mount returns the module handler.
func (m Module) Mount() (module.Mount, error) {
	if m.library == nil {
		return module.Mount{}, fmt.Errorf("content library is required")
	}
	h := newHandlers(publichandler.NewBase(), m.library)
	return module.Mount{
		Path:    routepath.AnimationDemo,
		Handler: httpx.RequireMethod(http.MethodGet)(http.HandlerFunc(h.handleIndex)),
	}, nil
}
