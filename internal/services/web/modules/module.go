// Package modules defines web module registry helpers.
package modules

import (
	"github.com/stoplaliga/stoplaliga.com/internal/services/web/content"
	module "github.com/stoplaliga/stoplaliga.com/internal/services/web/module"
)

// Mount aliases the module mount contract.
type Mount = module.Mount

// Module aliases the module interface contract.
type Module = module.Module

// Dependencies carries what page modules need to render.
type Dependencies struct {
	Content *content.Library
}
