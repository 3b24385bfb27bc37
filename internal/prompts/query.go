package prompts

import (
	"slices"
	"strings"

	"github.com/JaimeStill/promptlab/internal/models"
)

// FilterByCollection returns the prompts assigned to collectionID.
func FilterByCollection(prompts []models.Prompt, collectionID string) []models.Prompt {
	out := make([]models.Prompt, 0, len(prompts))
	for _, p := range prompts {
		if p.InCollection(collectionID) {
			out = append(out, p)
		}
	}
	return out
}

// Search returns the prompts whose title or description contains query,
// ignoring case. Content is not searched. An empty query matches everything.
func Search(prompts []models.Prompt, query string) []models.Prompt {
	if query == "" {
		return prompts
	}

	needle := strings.ToLower(query)
	out := make([]models.Prompt, 0, len(prompts))
	for _, p := range prompts {
		if matches(p, needle) {
			out = append(out, p)
		}
	}
	return out
}

func matches(p models.Prompt, needle string) bool {
	if strings.Contains(strings.ToLower(p.Title), needle) {
		return true
	}
	return p.Description != nil && strings.Contains(strings.ToLower(*p.Description), needle)
}

// SortByDate returns a copy of prompts ordered by creation time.
// The sort is stable: prompts created at the same instant keep their input order.
func SortByDate(prompts []models.Prompt, descending bool) []models.Prompt {
	out := slices.Clone(prompts)
	slices.SortStableFunc(out, func(a, b models.Prompt) int {
		if descending {
			return b.CreatedAt.Compare(a.CreatedAt)
		}
		return a.CreatedAt.Compare(b.CreatedAt)
	})
	return out
}
