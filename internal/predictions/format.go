package predictions

import (
	"fmt"
)

// FormatPercentage renders a probability as a percentage with one decimal.
func FormatPercentage(p float64) string {
	return fmt.Sprintf("%.1f%%", p*100)
}

// FormatPercentages renders the round table for display. Each round
// column present is shown as a percentage with one decimal; missing cells
// are blank; every other cell keeps its natural text. The table itself is
// left untouched.
func FormatPercentages(t Table) DisplayTable {
	out := Display(t)

	for _, c := range RoundColumns {
		idx := t.ColumnIndex(c)
		if idx < 0 {
			continue
		}
		for i, row := range t.Rows {
			v := row[idx]
			switch {
			case v.IsMissing():
				out.Rows[i][idx] = ""
			case v.Numeric:
				out.Rows[i][idx] = FormatPercentage(v.Number)
			}
		}
	}

	return out
}
