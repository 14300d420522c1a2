// Package module defines the feature contract used by web composition.
package module

import "net/http"

// Mount describes a module page mount. Path is relative to the locale
// prefix: "/" is the localized home page, "/sources" is "/<locale>/sources".
type Mount struct {
	Path    string
	Handler http.Handler
}

// Module declares the minimum contract required by web composition.
type Module interface {
	ID() string
	Mount() (Mount, error)
}
