package ui

import (
	"github.com/ytget/item-list/internal/pipeline"
)

// RowKind distinguishes group headers from record rows
type RowKind int

const (
	RowHeader RowKind = iota
	RowItem
)

// Row is one visible line of the grouped list
type Row struct {
	Kind     RowKind
	GroupID  int
	RecordID int // zero for headers
	Text     string
	Expanded bool // header only
}

// BuildRows renders the grouped view into visible rows: a header per group,
// followed by the group's records when it is expanded.
func BuildRows(view pipeline.GroupedView, isExpanded func(groupID int) bool, loc *Localization) []Row {
	rows := make([]Row, 0, view.Len())
	unknown := loc.GetText(KeyUnknownName)

	for _, g := range view.Groups() {
		expanded := isExpanded(g.ID)
		rows = append(rows, Row{
			Kind:     RowHeader,
			GroupID:  g.ID,
			Text:     HeaderText(loc, g.ID, expanded),
			Expanded: expanded,
		})
		if !expanded {
			continue
		}
		for _, r := range g.Records {
			rows = append(rows, Row{
				Kind:     RowItem,
				GroupID:  g.ID,
				RecordID: r.ID,
				Text:     r.DisplayName(unknown),
			})
		}
	}

	return rows
}

// HeaderText returns the header label with its expand/collapse glyph
func HeaderText(loc *Localization, groupID int, expanded bool) string {
	glyph := IconCollapsed
	if expanded {
		glyph = IconExpanded
	}
	return glyph + " " + loc.Format(KeyListHeader, groupID)
}
