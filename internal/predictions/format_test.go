package predictions

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatPercentage(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{in: 0.05, want: "5.0%"},
		{in: 0.999, want: "99.9%"},
		{in: 1.0, want: "100.0%"},
		{in: 0.3456, want: "34.6%"},
		{in: 0, want: "0.0%"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatPercentage(tt.in))
		})
	}
}

func TestFormatPercentages(t *testing.T) {
	tbl := NewTable("rounds", []string{"Team", ColumnSeed, "Round of 32", "Champion"}, [][]Value{
		{TextValue("Duke"), NumberValue(1), NumberValue(0.3456), NumberValue(1)},
		{TextValue("Houston"), NumberValue(1), Value{}, NumberValue(0.05)},
	})

	out := FormatPercentages(tbl)

	require.Equal(t, 2, out.Len())
	assert.Equal(t, tbl.Columns, out.Columns)
	assert.Equal(t, []string{"Duke", "1", "34.6%", "100.0%"}, out.Rows[0])
	assert.Equal(t, []string{"Houston", "1", "", "5.0%"}, out.Rows[1])

	// source keeps raw numbers
	assert.Equal(t, 0.3456, tbl.Rows[0][2].Number)
}

func TestFormatPercentagesWithoutRoundColumns(t *testing.T) {
	tbl := NewTable("ratings", []string{"Team", "Rating"}, [][]Value{
		{TextValue("Duke"), NumberValue(0.912)},
	})

	assert.Equal(t, Display(tbl), FormatPercentages(tbl))
}
