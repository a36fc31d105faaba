package model

import (
	"strings"
)

// Record is a single item fetched from the endpoint
type Record struct {
	ID      int     `json:"id"`
	GroupID int     `json:"listId"`
	Name    *string `json:"name"` // nil when the payload carries null
}

// NewRecord creates a record with a name; use a struct literal for a nil name
func NewRecord(id, groupID int, name string) Record {
	return Record{ID: id, GroupID: groupID, Name: &name}
}

// HasName reports whether the record carries a non-null, non-blank name
func (r Record) HasName() bool {
	return r.Name != nil && strings.TrimSpace(*r.Name) != ""
}

// DisplayName returns the name, or fallback when it is null
func (r Record) DisplayName(fallback string) string {
	if r.Name == nil {
		return fallback
	}
	return *r.Name
}
