package app

import (
	"net/http"

	module "github.com/stoplaliga/stoplaliga.com/internal/services/web/module"
)

// Config captures the composition inputs for the web root handler.
type Config struct {
	Modules  []module.Module
	NotFound http.Handler
}
