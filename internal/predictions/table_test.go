package predictions

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValueString(t *testing.T) {
	tests := []struct {
		name    string
		value   Value
		missing bool
		want    string
	}{
		{name: "zero", value: Value{}, missing: true},
		{name: "empty text", value: TextValue(""), missing: true},
		{name: "whitespace text", value: TextValue("  "), want: "  "},
		{name: "integer", value: NumberValue(7), want: "7"},
		{name: "float", value: NumberValue(0.3456), want: "0.3456"},
		{name: "integral float", value: NumberValue(12.0), want: "12"},
		{name: "text kept verbatim", value: TextValue("East "), want: "East "},
		{name: "numeric looking text", value: TextValue("007"), want: "007"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.missing, tt.value.IsMissing())
			if !tt.missing {
				assert.Equal(t, tt.want, tt.value.String())
			}
		})
	}
}

func TestNewTablePadsRows(t *testing.T) {
	tbl := NewTable("t", []string{"a", "b", "c"}, [][]Value{
		{TextValue("x")},
		{TextValue("1"), TextValue("2"), TextValue("3"), TextValue("4")},
	})

	require.Equal(t, 2, tbl.Len())
	assert.Len(t, tbl.Rows[0], 3)
	assert.Len(t, tbl.Rows[1], 3)
	assert.True(t, tbl.Rows[0][2].IsMissing())
}

func TestDropColumn(t *testing.T) {
	tbl := NewTable("t", []string{"Team", "Round", "Seed"}, [][]Value{
		{TextValue("Duke"), TextValue("Champion"), NumberValue(1)},
	})

	dropped := tbl.DropColumn(ColumnRound)
	assert.Equal(t, []string{"Team", "Seed"}, dropped.Columns)
	assert.Equal(t, []Value{TextValue("Duke"), NumberValue(1)}, dropped.Rows[0])

	// source untouched
	assert.Equal(t, []string{"Team", "Round", "Seed"}, tbl.Columns)
	assert.Len(t, tbl.Rows[0], 3)

	same := dropped.DropColumn(ColumnRound)
	assert.Equal(t, dropped.Columns, same.Columns)
}

func TestCloneIsDeep(t *testing.T) {
	tbl := NewTable("t", []string{"Team"}, [][]Value{{TextValue("Duke")}})
	c := tbl.Clone()
	c.Rows[0][0] = TextValue("Houston")
	c.Columns[0] = "Name"

	assert.Equal(t, "Duke", tbl.Rows[0][0].Text)
	assert.Equal(t, "Team", tbl.Columns[0])
}

func TestDatasetRegionOptions(t *testing.T) {
	rounds := NewTable("rounds", []string{ColumnSeed, ColumnRegion}, [][]Value{
		{NumberValue(1), TextValue("West")},
		{NumberValue(2), TextValue("East")},
		{NumberValue(3), TextValue("West")},
		{NumberValue(4), Value{}},
	})
	ds := NewDataset(rounds, Table{}, Table{})

	opts := ds.RegionOptions()
	assert.Equal(t, []string{All, "East", "West"}, opts)

	opts[1] = "changed"
	assert.Equal(t, "East", ds.RegionOptions()[1])
	assert.False(t, ds.LoadedAt.IsZero())
}

func TestDisplay(t *testing.T) {
	tbl := NewTable("t", []string{"Team", "Seed", "Rating"}, [][]Value{
		{TextValue("Duke"), NumberValue(1), NumberValue(0.912)},
		{TextValue("Houston"), Value{}, NumberValue(0.894)},
	})

	d := Display(tbl)
	require.Equal(t, 2, d.Len())
	assert.Equal(t, []string{"Duke", "1", "0.912"}, d.Rows[0])
	assert.Equal(t, []string{"Houston", "", "0.894"}, d.Rows[1])
}
