package pipeline

import (
	"cmp"
	"slices"

	"github.com/ytget/item-list/internal/model"
)

// Group holds the named records that share a group id, ordered by record id
type Group struct {
	ID      int
	Records []model.Record
}

// GroupedView is the filtered, sorted and grouped projection of a record set.
// Groups are ordered by ascending id. The zero value is an empty view.
type GroupedView struct {
	groups []Group
	index  map[int]int
}

// Project filters out records without a usable name, sorts the rest by
// (group id, id) and groups them by group id.
func Project(records []model.Record) GroupedView {
	kept := make([]model.Record, 0, len(records))
	for _, r := range records {
		if r.HasName() {
			kept = append(kept, r)
		}
	}

	slices.SortStableFunc(kept, compareRecords)

	view := GroupedView{index: make(map[int]int)}
	for _, r := range kept {
		pos, ok := view.index[r.GroupID]
		if !ok {
			pos = len(view.groups)
			view.index[r.GroupID] = pos
			view.groups = append(view.groups, Group{ID: r.GroupID})
		}
		view.groups[pos].Records = append(view.groups[pos].Records, r)
	}

	return view
}

func compareRecords(a, b model.Record) int {
	if c := cmp.Compare(a.GroupID, b.GroupID); c != 0 {
		return c
	}
	return cmp.Compare(a.ID, b.ID)
}

// Groups returns the groups in ascending id order. The slice must not be modified.
func (v GroupedView) Groups() []Group {
	return v.groups
}

// Keys returns the group ids in ascending order
func (v GroupedView) Keys() []int {
	keys := make([]int, len(v.groups))
	for i, g := range v.groups {
		keys[i] = g.ID
	}
	return keys
}

// Group returns the group with the given id
func (v GroupedView) Group(id int) (Group, bool) {
	pos, ok := v.index[id]
	if !ok {
		return Group{}, false
	}
	return v.groups[pos], true
}

// Len returns the number of groups
func (v GroupedView) Len() int {
	return len(v.groups)
}

// IsEmpty reports whether the view has no groups
func (v GroupedView) IsEmpty() bool {
	return len(v.groups) == 0
}

// RecordCount returns the number of records across all groups
func (v GroupedView) RecordCount() int {
	n := 0
	for _, g := range v.groups {
		n += len(g.Records)
	}
	return n
}
