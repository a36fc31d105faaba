package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/item-list/internal/model"
	"github.com/ytget/item-list/internal/pipeline"
)

func sampleView() pipeline.GroupedView {
	return pipeline.Project([]model.Record{
		model.NewRecord(1, 1, "A"),
		{ID: 2, GroupID: 1},
		model.NewRecord(3, 2, "B"),
		model.NewRecord(4, 1, "C"),
	})
}

func expandedSet(ids ...int) func(int) bool {
	set := make(map[int]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return func(id int) bool { return set[id] }
}

func TestBuildRows_AllCollapsed(t *testing.T) {
	rows := BuildRows(sampleView(), expandedSet(), NewLocalization())

	require.Len(t, rows, 2)
	assert.Equal(t, Row{Kind: RowHeader, GroupID: 1, Text: "▶ List ID: 1"}, rows[0])
	assert.Equal(t, Row{Kind: RowHeader, GroupID: 2, Text: "▶ List ID: 2"}, rows[1])
}

func TestBuildRows_OneExpanded(t *testing.T) {
	rows := BuildRows(sampleView(), expandedSet(1), NewLocalization())

	want := []Row{
		{Kind: RowHeader, GroupID: 1, Text: "▼ List ID: 1", Expanded: true},
		{Kind: RowItem, GroupID: 1, RecordID: 1, Text: "A"},
		{Kind: RowItem, GroupID: 1, RecordID: 4, Text: "C"},
		{Kind: RowHeader, GroupID: 2, Text: "▶ List ID: 2"},
	}
	assert.Equal(t, want, rows)
}

func TestBuildRows_AllExpanded(t *testing.T) {
	rows := BuildRows(sampleView(), expandedSet(1, 2), NewLocalization())

	var texts []string
	for _, r := range rows {
		texts = append(texts, r.Text)
	}
	assert.Equal(t, []string{"▼ List ID: 1", "A", "C", "▼ List ID: 2", "B"}, texts)
}

func TestBuildRows_EmptyView(t *testing.T) {
	assert.Empty(t, BuildRows(pipeline.GroupedView{}, expandedSet(1), NewLocalization()))
}

func TestBuildRows_StaleExpandedIDIgnored(t *testing.T) {
	rows := BuildRows(sampleView(), expandedSet(99), NewLocalization())

	require.Len(t, rows, 2)
	for _, r := range rows {
		assert.Equal(t, RowHeader, r.Kind)
		assert.False(t, r.Expanded)
	}
}

func TestHeaderText_Localized(t *testing.T) {
	loc := NewLocalization()
	loc.SetLanguage("ru")

	assert.Equal(t, "▼ Список №7", HeaderText(loc, 7, true))
	assert.Equal(t, "▶ Список №7", HeaderText(loc, 7, false))
}
