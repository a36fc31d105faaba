package state

import "github.com/ytget/item-list/internal/model"

// Event is a state change request handled by Store.Dispatch
type Event interface {
	event()
}

// ToggleGroup flips the expansion of one group (user tapped a header)
type ToggleGroup struct {
	GroupID int
}

// ExpandAll expands every group of the current view
type ExpandAll struct{}

// CollapseAll collapses every group
type CollapseAll struct{}

// RecordsLoaded replaces the record set with the result of a fetch
type RecordsLoaded struct {
	Records []model.Record
}

func (ToggleGroup) event()   {}
func (ExpandAll) event()     {}
func (CollapseAll) event()   {}
func (RecordsLoaded) event() {}
