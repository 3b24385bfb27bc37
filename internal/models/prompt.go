// Package models defines the prompt and collection entities shared by
// storage and the domain systems, along with their request shapes.
package models

import (
	"slices"
	"time"
)

// Prompt is a stored text template. Content may contain {{name}}
// placeholders; Variables lists them in order of first appearance.
type Prompt struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Content      string    `json:"content"`
	Description  *string   `json:"description"`
	CollectionID *string   `json:"collection_id"`
	Variables    []string  `json:"variables"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Clone returns a deep copy so callers never share pointers with the store.
func (p Prompt) Clone() Prompt {
	p.Description = clonePtr(p.Description)
	p.CollectionID = clonePtr(p.CollectionID)
	p.Variables = slices.Clone(p.Variables)
	if p.Variables == nil {
		p.Variables = []string{}
	}
	return p
}

// InCollection reports whether the prompt references the given collection.
func (p Prompt) InCollection(collectionID string) bool {
	return p.CollectionID != nil && *p.CollectionID == collectionID
}

// PromptCreate carries the data needed to create a prompt.
// Required fields are pointers so a missing key can be told apart from an
// empty string during validation.
type PromptCreate struct {
	Title        *string `json:"title" validate:"required,min=1,max=200"`
	Content      *string `json:"content" validate:"required,min=1"`
	Description  *string `json:"description" validate:"omitnil,max=500"`
	CollectionID *string `json:"collection_id"`
}

// PromptUpdate carries a PUT body. Omitted fields fall back to the stored
// values; a null description or collection_id clears the field.
type PromptUpdate struct {
	Title        Optional[string] `json:"title"`
	Content      Optional[string] `json:"content"`
	Description  Optional[string] `json:"description"`
	CollectionID Optional[string] `json:"collection_id"`
}

// PromptPatch carries a PATCH body. Only present fields are applied.
type PromptPatch PromptUpdate

// Apply merges the present fields onto current and returns the result.
// Identity and timestamps are left for the caller.
func (u PromptUpdate) Apply(current Prompt) Prompt {
	next := current.Clone()
	if u.Title.Set && u.Title.Value != nil {
		next.Title = *u.Title.Value
	}
	if u.Content.Set && u.Content.Value != nil {
		next.Content = *u.Content.Value
	}
	next.Description = clonePtr(u.Description.Or(next.Description))
	next.CollectionID = clonePtr(u.CollectionID.Or(next.CollectionID))
	return next
}

// Apply merges the present fields onto current and returns the result.
func (p PromptPatch) Apply(current Prompt) Prompt {
	return PromptUpdate(p).Apply(current)
}

// ReferencedCollection returns the collection id the update would assign,
// or nil when the update leaves the prompt unassigned or untouched.
func (u PromptUpdate) ReferencedCollection() *string {
	if !u.CollectionID.Set {
		return nil
	}
	return u.CollectionID.Value
}

// PromptList is the response body for prompt listings.
type PromptList struct {
	Prompts []Prompt `json:"prompts"`
	Total   int      `json:"total"`
}

// NewPromptList wraps prompts with their count, never encoding a null array.
func NewPromptList(prompts []Prompt) PromptList {
	if prompts == nil {
		prompts = []Prompt{}
	}
	return PromptList{Prompts: prompts, Total: len(prompts)}
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
