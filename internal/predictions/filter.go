package predictions

import (
	"sort"
	"strconv"
)

// All disables a filter when present in a selection.
const All = "All"

// Selection holds the seed and region filter choices. Each list either
// contains All or is the set of accepted values.
type Selection struct {
	Seeds   []string `json:"seeds"`
	Regions []string `json:"regions"`
}

// DefaultSelection selects every row.
func DefaultSelection() Selection {
	return Selection{Seeds: []string{All}, Regions: []string{All}}
}

// Reset returns the selection to its default.
func (s Selection) Reset() Selection {
	return DefaultSelection()
}

// Unknown returns the selected values that are not among the given options.
func (s Selection) Unknown(seedOptions, regionOptions []string) []string {
	var unknown []string
	unknown = append(unknown, missingFrom(s.Seeds, seedOptions)...)
	unknown = append(unknown, missingFrom(s.Regions, regionOptions)...)
	return unknown
}

func missingFrom(values, options []string) []string {
	allowed := toSet(options)
	var out []string
	for _, v := range values {
		if _, ok := allowed[v]; !ok {
			out = append(out, v)
		}
	}
	return out
}

// FilterRounds derives the filtered view of the round table. Seed and
// region filters are applied independently and conjunctively; All turns a
// filter off and an empty selection matches nothing. The Round column is
// dropped. The input table is not modified.
func FilterRounds(t Table, sel Selection) Table {
	keepSeed := filterFunc(sel.Seeds, t.ColumnIndex(ColumnSeed))
	keepRegion := filterFunc(sel.Regions, t.ColumnIndex(ColumnRegion))

	rows := make([][]Value, 0, t.Len())
	for _, row := range t.Rows {
		if keepSeed(row) && keepRegion(row) {
			rows = append(rows, row)
		}
	}

	return NewTable(t.Name, t.Columns, rows).DropColumn(ColumnRound)
}

// filterFunc builds a row predicate comparing the string form of column idx
// to the selected values.
func filterFunc(selected []string, idx int) func([]Value) bool {
	set := toSet(selected)
	if _, ok := set[All]; ok {
		return func([]Value) bool { return true }
	}
	return func(row []Value) bool {
		if idx < 0 {
			return false
		}
		v := row[idx]
		if v.IsMissing() {
			return false
		}
		_, ok := set[v.String()]
		return ok
	}
}

func toSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}

// SeedOptions returns the fixed seed choices All, 1..16 regardless of the
// seeds present in the data.
func SeedOptions() []string {
	opts := make([]string, 0, 17)
	opts = append(opts, All)
	for i := 1; i <= 16; i++ {
		opts = append(opts, strconv.Itoa(i))
	}
	return opts
}

// RegionOptions returns All followed by the sorted distinct non-missing
// Region values of t.
func RegionOptions(t Table) []string {
	opts := []string{All}
	idx := t.ColumnIndex(ColumnRegion)
	if idx < 0 {
		return opts
	}

	seen := make(map[string]struct{})
	var regions []string
	for _, row := range t.Rows {
		v := row[idx]
		if v.IsMissing() {
			continue
		}
		s := v.String()
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		regions = append(regions, s)
	}
	sort.Strings(regions)
	return append(opts, regions...)
}
