// Package collections manages named groupings of prompts. Deleting a
// collection orphans its prompts instead of removing them.
package collections

import (
	"context"

	"github.com/JaimeStill/promptlab/internal/models"
)

// System defines the public contract for collection domain operations.
type System interface {
	Handler() *Handler

	List(ctx context.Context) (models.CollectionList, error)
	Find(ctx context.Context, id string) (*models.Collection, error)
	Create(ctx context.Context, cmd models.CollectionCreate) (*models.Collection, error)
	Delete(ctx context.Context, id string) error
	Prompts(ctx context.Context, id string) (models.PromptList, error)
}
