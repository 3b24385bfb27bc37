package prompts_test

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JaimeStill/promptlab/internal/models"
	"github.com/JaimeStill/promptlab/internal/prompts"
)

func TestFiltersFromQuery(t *testing.T) {
	t.Run("empty values are absent", func(t *testing.T) {
		f := prompts.FiltersFromQuery(url.Values{"collection_id": {""}, "search": {""}})
		assert.Nil(t, f.CollectionID)
		assert.Nil(t, f.Search)
	})

	t.Run("values are captured", func(t *testing.T) {
		f := prompts.FiltersFromQuery(url.Values{"collection_id": {"c1"}, "search": {"Code"}})
		require.NotNil(t, f.CollectionID)
		require.NotNil(t, f.Search)
		assert.Equal(t, "c1", *f.CollectionID)
		assert.Equal(t, "Code", *f.Search)
	})
}

func TestFiltersApply(t *testing.T) {
	a := at("a", 1)
	a.Title = "Code review"
	a.CollectionID = ptr("c1")

	b := at("b", 2)
	b.Title = "Email"
	b.CollectionID = ptr("c1")

	c := at("c", 3)
	c.Title = "Code golf"

	all := []models.Prompt{c, a, b}

	t.Run("no filters sorts newest first", func(t *testing.T) {
		assert.Equal(t, []string{"c", "b", "a"}, ids(prompts.Filters{}.Apply(all)))
	})

	t.Run("collection then search", func(t *testing.T) {
		f := prompts.Filters{CollectionID: ptr("c1"), Search: ptr("code")}
		assert.Equal(t, []string{"a"}, ids(f.Apply(all)))
	})

	t.Run("equal timestamps resolve by id", func(t *testing.T) {
		x, y, z := at("x", 0), at("y", 0), at("z", 0)
		assert.Equal(t, []string{"x", "y", "z"}, ids(prompts.Filters{}.Apply([]models.Prompt{z, x, y})))
	})
}
