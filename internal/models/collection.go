package models

import "time"

// Collection is a named grouping that prompts may reference.
type Collection struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

// CollectionCreate carries the data needed to create a collection.
type CollectionCreate struct {
	Name        *string `json:"name" validate:"required,min=1,max=100"`
	Description *string `json:"description" validate:"omitnil,max=500"`
}

// CollectionList is the response body for collection listings.
type CollectionList struct {
	Collections []Collection `json:"collections"`
	Total       int          `json:"total"`
}

// NewCollectionList wraps collections with their count, never encoding a
// null array.
func NewCollectionList(collections []Collection) CollectionList {
	if collections == nil {
		collections = []Collection{}
	}
	return CollectionList{Collections: collections, Total: len(collections)}
}
