package predictions

import (
	"math"
)

// Consolidate concatenates the sheets into one table in slice order.
// Rows keep their order within each sheet; nothing is deduplicated or
// sorted. The column set is the ordered union of the sheets that have rows,
// so an empty sheet never alters the result. When no sheet has rows the
// union of every header is used and the table is empty but keeps its
// schema.
func Consolidate(sheets []Sheet) Table {
	var columns []string
	seen := make(map[string]int)
	total := 0

	addColumns := func(t Table) {
		for _, c := range t.Columns {
			if _, ok := seen[c]; !ok {
				seen[c] = len(columns)
				columns = append(columns, c)
			}
		}
	}

	for _, s := range sheets {
		if s.Table.Len() == 0 {
			continue
		}
		total += s.Table.Len()
		addColumns(s.Table)
	}
	if total == 0 {
		for _, s := range sheets {
			addColumns(s.Table)
		}
	}

	out := Table{
		Columns: columns,
		Rows:    make([][]Value, 0, total),
	}
	if out.Columns == nil {
		out.Columns = []string{}
	}

	for _, s := range sheets {
		if s.Table.Len() == 0 {
			continue
		}
		// map source column position to output position
		positions := make([]int, len(s.Table.Columns))
		for i, c := range s.Table.Columns {
			positions[i] = seen[c]
		}
		for _, row := range s.Table.Rows {
			r := make([]Value, len(columns))
			for i, v := range row {
				if i < len(positions) {
					r[positions[i]] = v
				}
			}
			out.Rows = append(out.Rows, r)
		}
	}

	return out
}

// ValidateRounds checks the consolidated round table against the expected
// schema: Seed, Region and every round column must exist, seeds are
// integers in 1..16 and probabilities lie in [0,1]. Missing cells are
// allowed.
func ValidateRounds(t Table) error {
	required := append([]string{ColumnSeed, ColumnRegion}, RoundColumns...)
	for _, c := range required {
		if !t.HasColumn(c) {
			return schemaError("missing column %q", c)
		}
	}

	seedIdx := t.ColumnIndex(ColumnSeed)
	roundIdx := make([]int, len(RoundColumns))
	for i, c := range RoundColumns {
		roundIdx[i] = t.ColumnIndex(c)
	}

	for i, row := range t.Rows {
		seed := row[seedIdx]
		if !seed.IsMissing() {
			if !seed.Numeric || seed.Number != math.Trunc(seed.Number) {
				return schemaError("row %d: seed %q is not an integer", i+1, seed.Text)
			}
			if seed.Number < 1 || seed.Number > 16 {
				return schemaError("row %d: seed %s out of range 1-16", i+1, seed.String())
			}
		}
		for j, idx := range roundIdx {
			p := row[idx]
			if p.IsMissing() {
				continue
			}
			if !p.Numeric {
				return schemaError("row %d: %s value %q is not numeric", i+1, RoundColumns[j], p.Text)
			}
			if p.Number < 0 || p.Number > 1 {
				return schemaError("row %d: %s value %v outside [0,1]", i+1, RoundColumns[j], p.Number)
			}
		}
	}
	return nil
}
