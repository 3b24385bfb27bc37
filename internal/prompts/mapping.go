package prompts

import (
	"net/url"
	"slices"
	"strings"

	"github.com/JaimeStill/promptlab/internal/models"
)

// Filters contains optional criteria for prompt listings.
// Nil fields are ignored. CollectionID uses exact matching.
// Search uses case-insensitive contains matching on title and description.
type Filters struct {
	CollectionID *string `json:"collection_id,omitempty"`
	Search       *string `json:"search,omitempty"`
}

// Apply runs the listing pipeline: collection filter, search, then newest
// first. Input is ordered by id beforehand so equal timestamps sort the same
// way on every call.
func (f Filters) Apply(prompts []models.Prompt) []models.Prompt {
	out := slices.Clone(prompts)
	slices.SortFunc(out, func(a, b models.Prompt) int {
		return strings.Compare(a.ID, b.ID)
	})

	if f.CollectionID != nil {
		out = FilterByCollection(out, *f.CollectionID)
	}
	if f.Search != nil {
		out = Search(out, *f.Search)
	}

	return SortByDate(out, true)
}

// FiltersFromQuery extracts filter values from URL query parameters.
// Empty values are treated as absent.
func FiltersFromQuery(values url.Values) Filters {
	var f Filters

	if c := values.Get("collection_id"); c != "" {
		f.CollectionID = &c
	}

	if s := values.Get("search"); s != "" {
		f.Search = &s
	}

	return f
}
