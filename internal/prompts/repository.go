package prompts

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/JaimeStill/promptlab/internal/models"
	"github.com/JaimeStill/promptlab/internal/storage"
	"github.com/JaimeStill/promptlab/pkg/validation"
)

type repo struct {
	store    storage.System
	validate *validation.Validator
	logger   *slog.Logger
	cfg      Config
}

// New creates a prompt system backed by the shared store.
func New(
	store storage.System,
	validate *validation.Validator,
	logger *slog.Logger,
	cfg Config,
) System {
	return &repo{
		store:    store,
		validate: validate,
		logger:   logger.With("system", "prompts"),
		cfg:      cfg,
	}
}

func (r *repo) Handler() *Handler {
	return NewHandler(r, r.logger, r.cfg.MaxBodySize)
}

func (r *repo) List(ctx context.Context, filters Filters) (models.PromptList, error) {
	if err := ctx.Err(); err != nil {
		return models.PromptList{}, err
	}
	return models.NewPromptList(filters.Apply(r.store.ListPrompts())), nil
}

func (r *repo) Find(ctx context.Context, id string) (*models.Prompt, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	p, ok := r.store.GetPrompt(id)
	if !ok {
		return nil, ErrNotFound
	}
	return &p, nil
}

func (r *repo) Create(ctx context.Context, cmd models.PromptCreate) (*models.Prompt, error) {
	if err := r.validateCreate(cmd); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	now := r.store.Now()
	p := models.Prompt{
		ID:           models.NewID(),
		Title:        *cmd.Title,
		Content:      *cmd.Content,
		Description:  cmd.Description,
		CollectionID: cmd.CollectionID,
		Variables:    models.ExtractVariables(*cmd.Content),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := r.store.AddPrompt(p)
	if err != nil {
		return nil, mapStoreError(err)
	}

	r.logger.Info("prompt created", "id", created.ID, "title", created.Title)
	return &created, nil
}

func (r *repo) Update(ctx context.Context, id string, cmd models.PromptUpdate) (*models.Prompt, error) {
	p, err := r.modify(ctx, id, cmd)
	if err != nil {
		return nil, err
	}

	r.logger.Info("prompt updated", "id", p.ID)
	return p, nil
}

func (r *repo) Patch(ctx context.Context, id string, cmd models.PromptPatch) (*models.Prompt, error) {
	p, err := r.modify(ctx, id, models.PromptUpdate(cmd))
	if err != nil {
		return nil, err
	}

	r.logger.Info("prompt patched", "id", p.ID)
	return p, nil
}

func (r *repo) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if !r.store.DeletePrompt(id) {
		return ErrNotFound
	}

	r.logger.Info("prompt deleted", "id", id)
	return nil
}

func (r *repo) modify(ctx context.Context, id string, cmd models.PromptUpdate) (*models.Prompt, error) {
	if err := r.validateUpdate(cmd); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	p, err := r.store.ModifyPrompt(id, func(current models.Prompt) (models.Prompt, error) {
		next := cmd.Apply(current)
		next.Variables = models.ExtractVariables(next.Content)
		return next, nil
	})
	if err != nil {
		return nil, mapStoreError(err)
	}
	return &p, nil
}

func (r *repo) validateCreate(cmd models.PromptCreate) error {
	var errs validation.Errors
	if err := r.validate.Struct(cmd); err != nil && !errors.As(err, &errs) {
		return err
	}

	if cmd.Content != nil && *cmd.Content != "" {
		errs = append(errs, r.checkContent(*cmd.Content)...)
	}
	return errs.Err()
}

func (r *repo) validateUpdate(cmd models.PromptUpdate) error {
	var errs validation.Errors
	errs = append(errs, r.requiredString("title", cmd.Title, "min=1,max=200")...)
	errs = append(errs, r.requiredString("content", cmd.Content, "min=1")...)

	if cmd.Description.Value != nil {
		errs = append(errs, r.validate.Var("description", *cmd.Description.Value, "max=500")...)
	}

	if cmd.Content.Value != nil && *cmd.Content.Value != "" {
		errs = append(errs, r.checkContent(*cmd.Content.Value)...)
	}
	return errs.Err()
}

// requiredString validates a present non-nullable field. Absent passes.
func (r *repo) requiredString(field string, o models.Optional[string], tag string) validation.Errors {
	if !o.Set {
		return nil
	}
	if o.Value == nil {
		var errs validation.Errors
		errs.Add(field, "Input should be a valid string", validation.TypeString)
		return errs
	}
	return r.validate.Var(field, *o.Value, tag)
}

func (r *repo) checkContent(content string) validation.Errors {
	if !r.cfg.StrictContent || models.ValidateContent(content) {
		return nil
	}

	var errs validation.Errors
	errs.Add(
		"content",
		fmt.Sprintf("Content should have at least %d non-whitespace characters", models.MinContentLength),
		validation.TypeContentTooShort,
	)
	return errs
}

func mapStoreError(err error) error {
	switch {
	case errors.Is(err, storage.ErrPromptNotFound):
		return ErrNotFound
	case errors.Is(err, storage.ErrCollectionNotFound):
		return ErrCollectionNotFound
	default:
		return fmt.Errorf("store prompt: %w", err)
	}
}
