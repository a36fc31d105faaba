package ui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"go.uber.org/zap"
)

// GroupList shows the header and record rows of the grouped view
type GroupList struct {
	logger *zap.Logger

	rows []Row

	// Row heights by kind, measured once from template rows
	headerHeight float32
	itemHeight   float32

	// UI components
	container *fyne.Container
	list      *widget.List
	refresher *PullToRefresh

	// Callbacks
	onToggle  func(groupID int)
	onRefresh func()
}

// NewGroupList creates a new group list UI component
func NewGroupList(logger *zap.Logger) *GroupList {
	gl := &GroupList{
		rows:   make([]Row, 0),
		logger: logger,
	}

	gl.createUI()
	return gl
}

// createUI creates the user interface for the group list
func (gl *GroupList) createUI() {
	gl.list = widget.NewList(
		func() int {
			return len(gl.rows)
		},
		func() fyne.CanvasObject {
			return NewGroupRow(gl.toggle)
		},
		func(id widget.ListItemID, obj fyne.CanvasObject) {
			gl.updateRow(id, obj)
		},
	)
	gl.list.HideSeparators = true

	header := NewGroupRow(nil)
	header.SetRow(Row{Kind: RowHeader, Text: IconExpanded})
	gl.headerHeight = header.MinSize().Height

	item := NewGroupRow(nil)
	item.SetRow(Row{Kind: RowItem, Text: IconExpanded})
	gl.itemHeight = item.MinSize().Height

	gl.refresher = NewPullToRefresh(gl.list, gl.refresh)
	gl.container = container.NewStack(gl.refresher)
}

// updateRow binds a row widget to the row at id
func (gl *GroupList) updateRow(id widget.ListItemID, obj fyne.CanvasObject) {
	if id >= len(gl.rows) {
		gl.logger.Debug("updateRow called with stale id", zap.Int("id", id), zap.Int("rows", len(gl.rows)))
		return
	}

	groupRow, ok := obj.(*GroupRow)
	if !ok {
		gl.logger.Warn("unexpected list row type", zap.String("type", fmt.Sprintf("%T", obj)))
		return
	}
	groupRow.SetRow(gl.rows[id])
}

func (gl *GroupList) toggle(groupID int) {
	if gl.onToggle != nil {
		gl.onToggle(groupID)
	}
}

func (gl *GroupList) refresh() {
	if gl.onRefresh != nil {
		gl.onRefresh()
	}
}

// Container returns the main container of the group list
func (gl *GroupList) Container() *fyne.Container {
	return gl.container
}

// SetCallbacks sets the header toggle and pull-to-refresh callbacks
func (gl *GroupList) SetCallbacks(onToggle func(groupID int), onRefresh func()) {
	gl.onToggle = onToggle
	gl.onRefresh = onRefresh
}

// SetRows replaces the visible rows
func (gl *GroupList) SetRows(rows []Row) {
	gl.rows = rows
	for i, row := range rows {
		if row.Kind == RowHeader {
			gl.list.SetItemHeight(i, gl.headerHeight)
		} else {
			gl.list.SetItemHeight(i, gl.itemHeight)
		}
	}
	gl.list.Refresh()
}

// Rows returns the visible rows
func (gl *GroupList) Rows() []Row {
	return gl.rows
}
