package collections

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/JaimeStill/promptlab/internal/models"
	"github.com/JaimeStill/promptlab/internal/prompts"
	"github.com/JaimeStill/promptlab/internal/storage"
	"github.com/JaimeStill/promptlab/pkg/validation"
)

type repo struct {
	store       storage.System
	validate    *validation.Validator
	logger      *slog.Logger
	maxBodySize int64
}

// New creates a collection system backed by the shared store.
func New(
	store storage.System,
	validate *validation.Validator,
	logger *slog.Logger,
	maxBodySize int64,
) System {
	return &repo{
		store:       store,
		validate:    validate,
		logger:      logger.With("system", "collections"),
		maxBodySize: maxBodySize,
	}
}

func (r *repo) Handler() *Handler {
	return NewHandler(r, r.logger, r.maxBodySize)
}

// List returns collections oldest first, ties broken by id.
func (r *repo) List(ctx context.Context) (models.CollectionList, error) {
	if err := ctx.Err(); err != nil {
		return models.CollectionList{}, err
	}

	out := r.store.ListCollections()
	slices.SortFunc(out, func(a, b models.Collection) int {
		if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
			return c
		}
		return strings.Compare(a.ID, b.ID)
	})
	return models.NewCollectionList(out), nil
}

func (r *repo) Find(ctx context.Context, id string) (*models.Collection, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	c, ok := r.store.GetCollection(id)
	if !ok {
		return nil, ErrNotFound
	}
	return &c, nil
}

func (r *repo) Create(ctx context.Context, cmd models.CollectionCreate) (*models.Collection, error) {
	if err := r.validate.Struct(cmd); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	c := models.Collection{
		ID:          models.NewID(),
		Name:        *cmd.Name,
		Description: cmd.Description,
		CreatedAt:   r.store.Now(),
	}

	created, err := r.store.CreateCollection(c)
	if err != nil {
		return nil, fmt.Errorf("store collection: %w", err)
	}

	r.logger.Info("collection created", "id", created.ID, "name", created.Name)
	return &created, nil
}

func (r *repo) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if !r.store.DeleteCollection(id) {
		return ErrNotFound
	}
	return nil
}

// Prompts lists the collection's prompts newest first.
func (r *repo) Prompts(ctx context.Context, id string) (models.PromptList, error) {
	if _, err := r.Find(ctx, id); err != nil {
		return models.PromptList{}, err
	}

	list := prompts.Filters{}.Apply(r.store.PromptsByCollection(id))
	return models.NewPromptList(list), nil
}
