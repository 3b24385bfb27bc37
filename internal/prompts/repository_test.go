package prompts_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JaimeStill/promptlab/internal/models"
	"github.com/JaimeStill/promptlab/internal/prompts"
	"github.com/JaimeStill/promptlab/internal/storage"
	"github.com/JaimeStill/promptlab/pkg/logging"
	"github.com/JaimeStill/promptlab/pkg/validation"
)

func newSystem(t *testing.T, cfg prompts.Config) (prompts.System, storage.System) {
	t.Helper()
	store := storage.New(logging.Nop(), nil)
	return prompts.New(store, validation.New(), logging.Nop(), cfg), store
}

func addCollection(t *testing.T, store storage.System, id string) {
	t.Helper()
	_, err := store.CreateCollection(models.Collection{ID: id, Name: id, CreatedAt: store.Now()})
	require.NoError(t, err)
}

func fieldErrors(t *testing.T, err error) validation.Errors {
	t.Helper()
	var verrs validation.Errors
	require.ErrorAs(t, err, &verrs)
	return verrs
}

func TestCreate(t *testing.T) {
	sys, store := newSystem(t, prompts.Config{})
	ctx := context.Background()

	p, err := sys.Create(ctx, models.PromptCreate{
		Title:       ptr("Greeting"),
		Content:     ptr("Hello {{name}}, welcome to {{ place }}"),
		Description: ptr("friendly"),
	})
	require.NoError(t, err)

	assert.NotEmpty(t, p.ID)
	assert.Equal(t, "Greeting", p.Title)
	assert.Equal(t, []string{"name", "place"}, p.Variables)
	assert.Nil(t, p.CollectionID)
	assert.Equal(t, p.CreatedAt, p.UpdatedAt)
	assert.Equal(t, time.UTC, p.CreatedAt.Location())

	found, err := sys.Find(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, *p, *found)
	assert.Equal(t, 1, store.Stats().Prompts)
}

func TestCreateValidation(t *testing.T) {
	sys, store := newSystem(t, prompts.Config{})

	tests := []struct {
		name  string
		cmd   models.PromptCreate
		field string
		typ   string
	}{
		{"missing title", models.PromptCreate{Content: ptr("body")}, "title", validation.TypeMissing},
		{"missing content", models.PromptCreate{Title: ptr("t")}, "content", validation.TypeMissing},
		{"empty title", models.PromptCreate{Title: ptr(""), Content: ptr("body")}, "title", validation.TypeTooShort},
		{"empty content", models.PromptCreate{Title: ptr("t"), Content: ptr("")}, "content", validation.TypeTooShort},
		{"long title", models.PromptCreate{Title: ptr(strings.Repeat("a", 201)), Content: ptr("body")}, "title", validation.TypeTooLong},
		{"long description", models.PromptCreate{Title: ptr("t"), Content: ptr("body"), Description: ptr(strings.Repeat("d", 501))}, "description", validation.TypeTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := sys.Create(context.Background(), tt.cmd)
			verrs := fieldErrors(t, err)

			require.Len(t, verrs, 1)
			assert.Equal(t, []string{"body", tt.field}, verrs[0].Loc)
			assert.Equal(t, tt.typ, verrs[0].Type)
		})
	}

	assert.Zero(t, store.Stats().Prompts)
}

func TestCreateValidationBounds(t *testing.T) {
	sys, _ := newSystem(t, prompts.Config{})

	_, err := sys.Create(context.Background(), models.PromptCreate{
		Title:       ptr(strings.Repeat("a", 200)),
		Content:     ptr("x"),
		Description: ptr(strings.Repeat("d", 500)),
	})
	assert.NoError(t, err)
}

func TestCreateReportsEveryField(t *testing.T) {
	sys, _ := newSystem(t, prompts.Config{})

	_, err := sys.Create(context.Background(), models.PromptCreate{})
	verrs := fieldErrors(t, err)

	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fe.Loc[1])
	}
	assert.ElementsMatch(t, []string{"title", "content"}, fields)
}

func TestCreateUnknownCollection(t *testing.T) {
	sys, store := newSystem(t, prompts.Config{})

	_, err := sys.Create(context.Background(), models.PromptCreate{
		Title:        ptr("t"),
		Content:      ptr("body"),
		CollectionID: ptr("missing"),
	})
	assert.ErrorIs(t, err, prompts.ErrCollectionNotFound)
	assert.Zero(t, store.Stats().Prompts)
}

func TestStrictContent(t *testing.T) {
	strict, _ := newSystem(t, prompts.Config{StrictContent: true})
	lenient, _ := newSystem(t, prompts.Config{})
	ctx := context.Background()
	short := models.PromptCreate{Title: ptr("t"), Content: ptr("  tiny  ")}

	_, err := strict.Create(ctx, short)
	verrs := fieldErrors(t, err)
	require.Len(t, verrs, 1)
	assert.Equal(t, validation.TypeContentTooShort, verrs[0].Type)

	_, err = lenient.Create(ctx, short)
	assert.NoError(t, err)

	p, err := strict.Create(ctx, models.PromptCreate{Title: ptr("t"), Content: ptr("long enough content")})
	require.NoError(t, err)

	_, err = strict.Patch(ctx, p.ID, models.PromptPatch{Content: models.Some("short")})
	verrs = fieldErrors(t, err)
	assert.Equal(t, validation.TypeContentTooShort, verrs[0].Type)
}

func TestUpdate(t *testing.T) {
	sys, store := newSystem(t, prompts.Config{})
	ctx := context.Background()
	addCollection(t, store, "c1")

	p, err := sys.Create(ctx, models.PromptCreate{
		Title:        ptr("Original"),
		Content:      ptr("Old {{a}}"),
		Description:  ptr("desc"),
		CollectionID: ptr("c1"),
	})
	require.NoError(t, err)

	t.Run("omitted fields fall back", func(t *testing.T) {
		got, err := sys.Update(ctx, p.ID, models.PromptUpdate{Content: models.Some("New {{b}}")})
		require.NoError(t, err)

		assert.Equal(t, "Original", got.Title)
		assert.Equal(t, "New {{b}}", got.Content)
		assert.Equal(t, []string{"b"}, got.Variables)
		assert.Equal(t, "desc", *got.Description)
		assert.Equal(t, "c1", *got.CollectionID)
		assert.Equal(t, p.CreatedAt, got.CreatedAt)
		assert.True(t, got.UpdatedAt.After(p.UpdatedAt))
	})

	t.Run("null clears description and collection", func(t *testing.T) {
		got, err := sys.Update(ctx, p.ID, models.PromptUpdate{
			Description:  models.Null[string](),
			CollectionID: models.Null[string](),
		})
		require.NoError(t, err)
		assert.Nil(t, got.Description)
		assert.Nil(t, got.CollectionID)
	})

	t.Run("null title is rejected", func(t *testing.T) {
		_, err := sys.Update(ctx, p.ID, models.PromptUpdate{Title: models.Null[string]()})
		verrs := fieldErrors(t, err)
		assert.Equal(t, validation.TypeString, verrs[0].Type)
		assert.Equal(t, []string{"body", "title"}, verrs[0].Loc)
	})

	t.Run("unknown collection is rejected without mutation", func(t *testing.T) {
		before, err := sys.Find(ctx, p.ID)
		require.NoError(t, err)

		_, err = sys.Update(ctx, p.ID, models.PromptUpdate{
			Title:        models.Some("Changed"),
			CollectionID: models.Some("missing"),
		})
		assert.ErrorIs(t, err, prompts.ErrCollectionNotFound)

		after, err := sys.Find(ctx, p.ID)
		require.NoError(t, err)
		assert.Equal(t, *before, *after)
	})

	t.Run("missing prompt", func(t *testing.T) {
		_, err := sys.Update(ctx, "missing", models.PromptUpdate{Title: models.Some("x")})
		assert.ErrorIs(t, err, prompts.ErrNotFound)
	})
}

func TestPatch(t *testing.T) {
	sys, _ := newSystem(t, prompts.Config{})
	ctx := context.Background()

	p, err := sys.Create(ctx, models.PromptCreate{
		Title:       ptr("Title"),
		Content:     ptr("Content"),
		Description: ptr("keep me"),
	})
	require.NoError(t, err)

	got, err := sys.Patch(ctx, p.ID, models.PromptPatch{Title: models.Some("Patched")})
	require.NoError(t, err)

	assert.Equal(t, "Patched", got.Title)
	assert.Equal(t, p.Content, got.Content)
	assert.Equal(t, *p.Description, *got.Description)
	assert.True(t, got.UpdatedAt.After(p.UpdatedAt))

	again, err := sys.Patch(ctx, p.ID, models.PromptPatch{})
	require.NoError(t, err)
	assert.True(t, again.UpdatedAt.After(got.UpdatedAt))

	_, err = sys.Patch(ctx, p.ID, models.PromptPatch{Content: models.Null[string]()})
	verrs := fieldErrors(t, err)
	assert.Equal(t, []string{"body", "content"}, verrs[0].Loc)
}

func TestListAndDelete(t *testing.T) {
	sys, _ := newSystem(t, prompts.Config{})
	ctx := context.Background()

	for _, title := range []string{"Alpha", "Beta", "Gamma"} {
		_, err := sys.Create(ctx, models.PromptCreate{Title: ptr(title), Content: ptr("body")})
		require.NoError(t, err)
	}

	list, err := sys.List(ctx, prompts.Filters{})
	require.NoError(t, err)
	assert.Equal(t, 3, list.Total)

	list, err = sys.List(ctx, prompts.Filters{Search: ptr("BETA")})
	require.NoError(t, err)
	require.Equal(t, 1, list.Total)

	id := list.Prompts[0].ID
	require.NoError(t, sys.Delete(ctx, id))
	assert.ErrorIs(t, sys.Delete(ctx, id), prompts.ErrNotFound)

	_, err = sys.Find(ctx, id)
	assert.ErrorIs(t, err, prompts.ErrNotFound)
}

func TestCancelledContext(t *testing.T) {
	sys, store := newSystem(t, prompts.Config{})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := sys.Create(ctx, models.PromptCreate{Title: ptr("t"), Content: ptr("c")})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, store.Stats().Prompts)
}

func TestMapHTTPStatus(t *testing.T) {
	assert.Equal(t, 404, prompts.MapHTTPStatus(prompts.ErrNotFound))
	assert.Equal(t, 400, prompts.MapHTTPStatus(prompts.ErrCollectionNotFound))
	assert.Equal(t, 500, prompts.MapHTTPStatus(context.Canceled))
}
