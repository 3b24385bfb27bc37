package models_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JaimeStill/promptlab/internal/models"
)

func ptr[T any](v T) *T { return &v }

func stored() models.Prompt {
	created := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	return models.Prompt{
		ID:           "p-1",
		Title:        "Summarize",
		Content:      "Summarize {{text}}",
		Description:  ptr("short summaries"),
		CollectionID: ptr("c-1"),
		Variables:    []string{"text"},
		CreatedAt:    created,
		UpdatedAt:    created,
	}
}

func TestPromptClone(t *testing.T) {
	p := stored()
	c := p.Clone()

	*c.Description = "changed"
	*c.CollectionID = "c-2"
	c.Variables[0] = "other"

	assert.Equal(t, "short summaries", *p.Description)
	assert.Equal(t, "c-1", *p.CollectionID)
	assert.Equal(t, "text", p.Variables[0])
}

func TestPromptCloneNilVariables(t *testing.T) {
	c := models.Prompt{}.Clone()
	assert.NotNil(t, c.Variables)
	assert.Empty(t, c.Variables)
}

func TestPromptInCollection(t *testing.T) {
	p := stored()
	assert.True(t, p.InCollection("c-1"))
	assert.False(t, p.InCollection("c-2"))

	p.CollectionID = nil
	assert.False(t, p.InCollection(""))
}

func TestPromptUpdateApply(t *testing.T) {
	t.Run("absent fields keep stored values", func(t *testing.T) {
		got := models.PromptUpdate{Title: models.Some("Renamed")}.Apply(stored())

		assert.Equal(t, "Renamed", got.Title)
		assert.Equal(t, "Summarize {{text}}", got.Content)
		require.NotNil(t, got.Description)
		assert.Equal(t, "short summaries", *got.Description)
		require.NotNil(t, got.CollectionID)
		assert.Equal(t, "c-1", *got.CollectionID)
	})

	t.Run("null clears optional fields", func(t *testing.T) {
		got := models.PromptUpdate{
			Description:  models.Null[string](),
			CollectionID: models.Null[string](),
		}.Apply(stored())

		assert.Nil(t, got.Description)
		assert.Nil(t, got.CollectionID)
		assert.Equal(t, "Summarize", got.Title)
	})

	t.Run("does not alias the input", func(t *testing.T) {
		current := stored()
		got := models.PromptUpdate{}.Apply(current)
		*got.Description = "mutated"

		assert.Equal(t, "short summaries", *current.Description)
	})
}

func TestPromptPatchApply(t *testing.T) {
	got := models.PromptPatch{Content: models.Some("New body")}.Apply(stored())

	assert.Equal(t, "Summarize", got.Title)
	assert.Equal(t, "New body", got.Content)
	assert.Equal(t, "c-1", *got.CollectionID)
}

func TestPromptUpdateReferencedCollection(t *testing.T) {
	assert.Nil(t, models.PromptUpdate{}.ReferencedCollection())
	assert.Nil(t, models.PromptUpdate{CollectionID: models.Null[string]()}.ReferencedCollection())

	ref := models.PromptUpdate{CollectionID: models.Some("c-9")}.ReferencedCollection()
	require.NotNil(t, ref)
	assert.Equal(t, "c-9", *ref)
}

func TestNewLists(t *testing.T) {
	pl := models.NewPromptList(nil)
	assert.NotNil(t, pl.Prompts)
	assert.Zero(t, pl.Total)

	cl := models.NewCollectionList([]models.Collection{{ID: "a"}, {ID: "b"}})
	assert.Equal(t, 2, cl.Total)
}

func TestNewID(t *testing.T) {
	a, b := models.NewID(), models.NewID()
	assert.Len(t, a, 36)
	assert.NotEqual(t, a, b)
}

func TestSystemClockIsUTC(t *testing.T) {
	assert.Equal(t, time.UTC, models.SystemClock().Location())
}
