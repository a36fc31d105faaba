// Package expansion tracks which groups of the list are currently expanded.
package expansion

import (
	"slices"
)

// State is the set of expanded group ids. The zero value is not usable; call New.
type State struct {
	expanded map[int]struct{}
}

// New creates an empty state with every group collapsed
func New() *State {
	return &State{expanded: make(map[int]struct{})}
}

// Toggle expands a collapsed group or collapses an expanded one
func (s *State) Toggle(groupID int) {
	if _, ok := s.expanded[groupID]; ok {
		delete(s.expanded, groupID)
		return
	}
	s.expanded[groupID] = struct{}{}
}

// ExpandAll replaces the state with exactly the given group ids
func (s *State) ExpandAll(known []int) {
	s.expanded = make(map[int]struct{}, len(known))
	for _, id := range known {
		s.expanded[id] = struct{}{}
	}
}

// CollapseAll collapses every group
func (s *State) CollapseAll() {
	clear(s.expanded)
}

// Retain drops expanded ids that are not in known
func (s *State) Retain(known []int) {
	for id := range s.expanded {
		if !slices.Contains(known, id) {
			delete(s.expanded, id)
		}
	}
}

// IsExpanded reports whether the group is expanded
func (s *State) IsExpanded(groupID int) bool {
	_, ok := s.expanded[groupID]
	return ok
}

// AllCollapsed reports whether no group is expanded
func (s *State) AllCollapsed() bool {
	return len(s.expanded) == 0
}

// AllExpanded reports whether the expanded set is exactly known.
// Computed on every call since known changes when data reloads.
func (s *State) AllExpanded(known []int) bool {
	if len(s.expanded) != len(known) {
		return false
	}
	for _, id := range known {
		if _, ok := s.expanded[id]; !ok {
			return false
		}
	}
	return true
}

// Len returns the number of expanded groups
func (s *State) Len() int {
	return len(s.expanded)
}

// Expanded returns the expanded ids in ascending order
func (s *State) Expanded() []int {
	ids := make([]int, 0, len(s.expanded))
	for id := range s.expanded {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}
