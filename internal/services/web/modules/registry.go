package modules

import (
	"github.com/stoplaliga/stoplaliga.com/internal/services/web/modules/controversies"
	"github.com/stoplaliga/stoplaliga.com/internal/services/web/modules/intro"
	"github.com/stoplaliga/stoplaliga.com/internal/services/web/modules/sources"
	"github.com/stoplaliga/stoplaliga.com/internal/services/web/modules/timeline"
)

// DefaultModules returns the site's page modules in navigation order.
func DefaultModules(deps Dependencies) []Module {
	return []Module{
		timeline.New(deps.Content),
		controversies.New(deps.Content),
		sources.New(deps.Content),
		intro.New(deps.Content),
	}
}
