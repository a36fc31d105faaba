package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"
)

// GroupRow is a list row that renders either a group header card or a record card
type GroupRow struct {
	widget.BaseWidget

	row Row

	background *canvas.Rectangle
	text       *canvas.Text

	onToggle func(groupID int)
}

// NewGroupRow creates a row widget; onToggle is called when a header is tapped
func NewGroupRow(onToggle func(groupID int)) *GroupRow {
	gr := &GroupRow{
		background: canvas.NewRectangle(DarkPurple),
		text:       canvas.NewText("", LightBackground),
		onToggle:   onToggle,
	}
	gr.background.CornerRadius = RowCornerRadius
	gr.ExtendBaseWidget(gr)
	gr.applyStyle()
	return gr
}

// SetRow updates the row contents
func (gr *GroupRow) SetRow(row Row) {
	gr.row = row
	gr.applyStyle()
	gr.Refresh()
}

// Row returns the row currently shown
func (gr *GroupRow) Row() Row {
	return gr.row
}

// Tapped toggles the group when the row is a header
func (gr *GroupRow) Tapped(*fyne.PointEvent) {
	if gr.row.Kind != RowHeader || gr.onToggle == nil {
		return
	}
	gr.onToggle(gr.row.GroupID)
}

func (gr *GroupRow) applyStyle() {
	gr.text.Text = gr.row.Text
	if gr.row.Kind == RowHeader {
		gr.background.FillColor = DarkPurple
		gr.background.StrokeColor = AccentColor
		gr.background.StrokeWidth = HeaderStrokeWidth
		gr.text.Color = LightBackground
		gr.text.TextSize = HeaderTextSize
		gr.text.TextStyle = fyne.TextStyle{Bold: true}
		return
	}
	gr.background.FillColor = LightBackground
	gr.background.StrokeWidth = 0
	gr.text.Color = DarkPurple
	gr.text.TextSize = ItemTextSize
	gr.text.TextStyle = fyne.TextStyle{}
}

// CreateRenderer creates the widget renderer
func (gr *GroupRow) CreateRenderer() fyne.WidgetRenderer {
	return &groupRowRenderer{row: gr}
}

// groupRowRenderer lays the card out with header/item spacing and item indent
type groupRowRenderer struct {
	row *GroupRow
}

func (r *groupRowRenderer) metrics() (indent, spacing, padding float32) {
	if r.row.row.Kind == RowHeader {
		return 0, HeaderRowSpacing, HeaderPadding
	}
	return ItemIndent, ItemRowSpacing, ItemPadding
}

// Layout arranges the card and its text
func (r *groupRowRenderer) Layout(size fyne.Size) {
	indent, spacing, padding := r.metrics()

	r.row.background.Move(fyne.NewPos(indent, spacing))
	r.row.background.Resize(fyne.NewSize(size.Width-indent, size.Height-2*spacing))

	textSize := r.row.text.MinSize()
	r.row.text.Move(fyne.NewPos(indent+padding, (size.Height-textSize.Height)/2))
	r.row.text.Resize(fyne.NewSize(size.Width-indent-2*padding, textSize.Height))
}

// MinSize returns the minimum size
func (r *groupRowRenderer) MinSize() fyne.Size {
	indent, spacing, padding := r.metrics()
	textSize := r.row.text.MinSize()

	width := textSize.Width + indent + 2*padding
	if width < RowMinWidth {
		width = RowMinWidth
	}
	return fyne.NewSize(width, textSize.Height+2*padding+2*spacing)
}

// Refresh repaints the card
func (r *groupRowRenderer) Refresh() {
	r.Layout(r.row.Size())
	r.row.background.Refresh()
	r.row.text.Refresh()
}

// Objects returns the canvas objects
func (r *groupRowRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.row.background, r.row.text}
}

// Destroy cleans up the renderer
func (r *groupRowRenderer) Destroy() {}
