package storage

import "errors"

var (
	// ErrDuplicateID indicates an entity with the same id is already stored.
	ErrDuplicateID = errors.New("entity id already exists")
	// ErrPromptNotFound indicates a modify targeted a missing prompt.
	ErrPromptNotFound = errors.New("prompt not found")
	// ErrCollectionNotFound indicates a prompt referenced a missing collection.
	ErrCollectionNotFound = errors.New("collection not found")
)
