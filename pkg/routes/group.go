// Package routes declares route groups and registers them on a chi router.
package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/JaimeStill/promptlab/pkg/openapi"
)

// Group organizes routes under a common prefix and documentation tag.
// Children without a tag inherit their parent's.
type Group struct {
	Prefix   string
	Tag      string
	Routes   []Route
	Children []Group
}

// Register adds all routes from the given groups to the router.
func Register(r chi.Router, groups ...Group) {
	Walk(groups, func(_ string, pattern string, route Route) {
		r.MethodFunc(route.Method, pattern, route.Handler)
	})
}

// Walk calls fn with the tag and full pattern of every route in groups.
func Walk(groups []Group, fn func(tag, pattern string, route Route)) {
	for _, group := range groups {
		walkGroup("", "", group, fn)
	}
}

func walkGroup(parentPrefix, parentTag string, group Group, fn func(tag, pattern string, route Route)) {
	fullPrefix := parentPrefix + group.Prefix
	tag := group.Tag
	if tag == "" {
		tag = parentTag
	}

	for _, route := range group.Routes {
		pattern := fullPrefix + route.Pattern
		if pattern == "" {
			pattern = "/"
		}
		fn(tag, pattern, route)
	}
	for _, child := range group.Children {
		walkGroup(fullPrefix, tag, child, fn)
	}
}

// Document adds every route that carries an OpenAPI operation to spec.
// Operations without tags take their group's tag.
func Document(spec *openapi.Spec, groups ...Group) {
	Walk(groups, func(tag, pattern string, route Route) {
		if route.OpenAPI == nil {
			return
		}
		op := *route.OpenAPI
		if len(op.Tags) == 0 && tag != "" {
			op.Tags = []string{tag}
		}
		spec.AddOperation(route.Method, pattern, &op)
	})
}
