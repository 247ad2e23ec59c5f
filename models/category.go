package models

// Category is a fixed, read-only grouping. Categories are never created or
// mutated at runtime, so they are not persisted.
type Category struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}
