package pipeline

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/item-list/internal/model"
)

func named(id, groupID int, name string) model.Record {
	return model.NewRecord(id, groupID, name)
}

func unnamed(id, groupID int) model.Record {
	return model.Record{ID: id, GroupID: groupID}
}

func names(g Group) []string {
	out := make([]string, len(g.Records))
	for i, r := range g.Records {
		out[i] = *r.Name
	}
	return out
}

func TestProject_Example(t *testing.T) {
	records := []model.Record{
		named(1, 1, "A"),
		unnamed(2, 1),
		named(3, 2, "B"),
		named(4, 1, "C"),
	}

	view := Project(records)

	require.Equal(t, []int{1, 2}, view.Keys())

	g1, ok := view.Group(1)
	require.True(t, ok)
	assert.Equal(t, []string{"A", "C"}, names(g1))
	assert.Equal(t, 1, g1.Records[0].ID)
	assert.Equal(t, 4, g1.Records[1].ID)

	g2, ok := view.Group(2)
	require.True(t, ok)
	assert.Equal(t, []string{"B"}, names(g2))
	assert.Equal(t, 3, view.RecordCount())
}

func TestProject_EmptyInputs(t *testing.T) {
	tests := []struct {
		name    string
		records []model.Record
	}{
		{"nil input", nil},
		{"empty slice", []model.Record{}},
		{"all null names", []model.Record{unnamed(1, 1), unnamed(2, 2)}},
		{"all blank names", []model.Record{named(1, 1, ""), named(2, 1, "  "), named(3, 3, "\t")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			view := Project(tt.records)
			assert.True(t, view.IsEmpty())
			assert.Equal(t, 0, view.Len())
			assert.Empty(t, view.Keys())
			assert.Equal(t, 0, view.RecordCount())
			_, ok := view.Group(1)
			assert.False(t, ok)
		})
	}
}

func TestProject_ZeroValueView(t *testing.T) {
	var view GroupedView
	assert.True(t, view.IsEmpty())
	_, ok := view.Group(0)
	assert.False(t, ok)
}

func TestProject_SingleRecordGroups(t *testing.T) {
	view := Project([]model.Record{named(9, 4, "x"), named(2, 3, "y")})

	require.Equal(t, []int{3, 4}, view.Keys())
	for _, g := range view.Groups() {
		assert.Len(t, g.Records, 1)
	}
}

func TestProject_OrdersByIDNotByName(t *testing.T) {
	// "Item 28" sorts before "Item 276" only numerically by id
	view := Project([]model.Record{
		named(276, 1, "Item 276"),
		named(28, 1, "Item 28"),
		named(3, 1, "Item 3"),
	})

	g, ok := view.Group(1)
	require.True(t, ok)
	assert.Equal(t, []string{"Item 3", "Item 28", "Item 276"}, names(g))
}

func TestProject_KeepsDuplicateIDs(t *testing.T) {
	view := Project([]model.Record{named(5, 1, "first"), named(5, 1, "second")})

	g, ok := view.Group(1)
	require.True(t, ok)
	assert.Equal(t, []string{"first", "second"}, names(g))
}

func TestProject_DoesNotModifyInput(t *testing.T) {
	records := []model.Record{named(3, 2, "c"), named(1, 1, "a"), unnamed(2, 1)}
	before := fmt.Sprint(records[0].ID, records[1].ID, records[2].ID)

	Project(records)

	after := fmt.Sprint(records[0].ID, records[1].ID, records[2].ID)
	assert.Equal(t, before, after)
}

func TestProject_RandomizedOrderingAndFilter(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 7))
	pool := []string{"", " ", "Item", "  Item  ", "\t"}

	for round := 0; round < 50; round++ {
		records := make([]model.Record, rng.IntN(200))
		for i := range records {
			records[i] = model.Record{ID: rng.IntN(1000), GroupID: rng.IntN(5)}
			if rng.IntN(4) != 0 {
				name := pool[rng.IntN(len(pool))]
				records[i].Name = &name
			}
		}

		view := Project(records)

		total := 0
		prevGroup := -1
		for _, g := range view.Groups() {
			require.Greater(t, g.ID, prevGroup, "groups must be strictly ascending")
			prevGroup = g.ID
			require.NotEmpty(t, g.Records)

			prevID := -1
			for _, r := range g.Records {
				require.NotNil(t, r.Name)
				require.NotEmpty(t, strings.TrimSpace(*r.Name))
				require.Equal(t, g.ID, r.GroupID)
				require.GreaterOrEqual(t, r.ID, prevID)
				prevID = r.ID
			}
			total += len(g.Records)
		}

		expected := 0
		for _, r := range records {
			if r.HasName() {
				expected++
			}
		}
		require.Equal(t, expected, total)
	}
}
