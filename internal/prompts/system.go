package prompts

import (
	"context"

	"github.com/JaimeStill/promptlab/internal/models"
)

// System defines the public contract for prompt domain operations.
type System interface {
	Handler() *Handler

	List(ctx context.Context, filters Filters) (models.PromptList, error)
	Find(ctx context.Context, id string) (*models.Prompt, error)
	Create(ctx context.Context, cmd models.PromptCreate) (*models.Prompt, error)
	Update(ctx context.Context, id string, cmd models.PromptUpdate) (*models.Prompt, error)
	Patch(ctx context.Context, id string, cmd models.PromptPatch) (*models.Prompt, error)
	Delete(ctx context.Context, id string) error
}

// Config holds request handling options for the prompts domain.
type Config struct {
	// MaxBodySize caps request bodies in bytes. Zero disables the cap.
	MaxBodySize int64
	// StrictContent rejects content that fails models.ValidateContent.
	StrictContent bool
}
