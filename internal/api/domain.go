package api

import (
	"github.com/JaimeStill/promptlab/internal/collections"
	"github.com/JaimeStill/promptlab/internal/prompts"
	"github.com/JaimeStill/promptlab/pkg/routes"
)

// Domain holds all domain systems that comprise the API.
type Domain struct {
	Collections collections.System
	Prompts     prompts.System
}

// NewDomain creates all domain systems from the API runtime.
func NewDomain(runtime *Runtime) *Domain {
	maxBodySize := runtime.Config.API.MaxBodySizeBytes()

	promptsSystem := prompts.New(
		runtime.Store,
		runtime.Validator,
		runtime.Logger,
		prompts.Config{
			MaxBodySize:   maxBodySize,
			StrictContent: runtime.Config.API.StrictContent,
		},
	)

	collectionsSystem := collections.New(
		runtime.Store,
		runtime.Validator,
		runtime.Logger,
		maxBodySize,
	)

	return &Domain{
		Collections: collectionsSystem,
		Prompts:     promptsSystem,
	}
}

// Groups returns the route groups of every domain handler.
func (d *Domain) Groups() []routes.Group {
	return []routes.Group{
		d.Prompts.Handler().Routes(),
		d.Collections.Handler().Routes(),
	}
}
