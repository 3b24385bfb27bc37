package collections_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JaimeStill/promptlab/internal/collections"
	"github.com/JaimeStill/promptlab/internal/models"
	"github.com/JaimeStill/promptlab/internal/prompts"
	"github.com/JaimeStill/promptlab/internal/storage"
	"github.com/JaimeStill/promptlab/pkg/logging"
	"github.com/JaimeStill/promptlab/pkg/validation"
)

func ptr[T any](v T) *T { return &v }

type fixture struct {
	store       storage.System
	prompts     prompts.System
	collections collections.System
}

func newFixture() fixture {
	store := storage.New(logging.Nop(), nil)
	v := validation.New()
	return fixture{
		store:       store,
		prompts:     prompts.New(store, v, logging.Nop(), prompts.Config{}),
		collections: collections.New(store, v, logging.Nop(), 1<<20),
	}
}

func TestCreateAndFind(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	c, err := f.collections.Create(ctx, models.CollectionCreate{Name: ptr("Writing"), Description: ptr("drafts")})
	require.NoError(t, err)
	assert.NotEmpty(t, c.ID)
	assert.Equal(t, "Writing", c.Name)
	assert.False(t, c.CreatedAt.IsZero())

	found, err := f.collections.Find(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, *c, *found)

	_, err = f.collections.Find(ctx, "missing")
	assert.ErrorIs(t, err, collections.ErrNotFound)
}

func TestCreateValidation(t *testing.T) {
	f := newFixture()

	tests := []struct {
		name string
		cmd  models.CollectionCreate
		typ  string
	}{
		{"missing name", models.CollectionCreate{}, validation.TypeMissing},
		{"empty name", models.CollectionCreate{Name: ptr("")}, validation.TypeTooShort},
		{"long name", models.CollectionCreate{Name: ptr(strings.Repeat("n", 101))}, validation.TypeTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.collections.Create(context.Background(), tt.cmd)

			var verrs validation.Errors
			require.ErrorAs(t, err, &verrs)
			assert.Equal(t, []string{"body", "name"}, verrs[0].Loc)
			assert.Equal(t, tt.typ, verrs[0].Type)
		})
	}

	assert.Zero(t, f.store.Stats().Collections)
}

func TestListOrdersByCreation(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	for _, name := range []string{"first", "second", "third"} {
		_, err := f.collections.Create(ctx, models.CollectionCreate{Name: ptr(name)})
		require.NoError(t, err)
	}

	list, err := f.collections.List(ctx)
	require.NoError(t, err)
	require.Equal(t, 3, list.Total)
	for i := 1; i < len(list.Collections); i++ {
		assert.False(t, list.Collections[i].CreatedAt.Before(list.Collections[i-1].CreatedAt))
	}
}

func TestDeleteOrphansPrompts(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	keep, err := f.collections.Create(ctx, models.CollectionCreate{Name: ptr("keep")})
	require.NoError(t, err)
	drop, err := f.collections.Create(ctx, models.CollectionCreate{Name: ptr("drop")})
	require.NoError(t, err)

	inDrop, err := f.prompts.Create(ctx, models.PromptCreate{Title: ptr("a"), Content: ptr("c"), CollectionID: &drop.ID})
	require.NoError(t, err)
	inKeep, err := f.prompts.Create(ctx, models.PromptCreate{Title: ptr("b"), Content: ptr("c"), CollectionID: &keep.ID})
	require.NoError(t, err)

	require.NoError(t, f.collections.Delete(ctx, drop.ID))
	assert.ErrorIs(t, f.collections.Delete(ctx, drop.ID), collections.ErrNotFound)

	_, err = f.collections.Find(ctx, drop.ID)
	assert.ErrorIs(t, err, collections.ErrNotFound)

	orphan, err := f.prompts.Find(ctx, inDrop.ID)
	require.NoError(t, err)
	assert.Nil(t, orphan.CollectionID)
	assert.True(t, orphan.UpdatedAt.After(inDrop.UpdatedAt))

	kept, err := f.prompts.Find(ctx, inKeep.ID)
	require.NoError(t, err)
	assert.Equal(t, *inKeep, *kept)
}

func TestPrompts(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	c, err := f.collections.Create(ctx, models.CollectionCreate{Name: ptr("group")})
	require.NoError(t, err)

	for _, title := range []string{"one", "two"} {
		_, err := f.prompts.Create(ctx, models.PromptCreate{Title: ptr(title), Content: ptr("c"), CollectionID: &c.ID})
		require.NoError(t, err)
	}
	_, err = f.prompts.Create(ctx, models.PromptCreate{Title: ptr("loose"), Content: ptr("c")})
	require.NoError(t, err)

	list, err := f.collections.Prompts(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, list.Total)
	for _, p := range list.Prompts {
		assert.True(t, p.InCollection(c.ID))
	}

	_, err = f.collections.Prompts(ctx, "missing")
	assert.ErrorIs(t, err, collections.ErrNotFound)
}

func TestMapHTTPStatus(t *testing.T) {
	assert.Equal(t, 404, collections.MapHTTPStatus(collections.ErrNotFound))
	assert.Equal(t, 500, collections.MapHTTPStatus(context.DeadlineExceeded))
}
