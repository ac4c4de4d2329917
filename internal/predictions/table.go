package predictions

import (
	"strconv"
	"time"
)

// Column names of the round advancement schema
const (
	ColumnSeed   = "Seed"
	ColumnRegion = "Region"
	ColumnRound  = "Round"
)

// RoundColumns lists the probability columns in bracket order.
var RoundColumns = []string{
	"Round of 32",
	"Sweet 16",
	"Elite 8",
	"Final 4",
	"Title Game",
	"Champion",
}

// Value is a single spreadsheet cell.
type Value struct {
	Text    string  `json:"text"`
	Number  float64 `json:"number,omitempty"`
	Numeric bool    `json:"numeric,omitempty"`
}

// TextValue creates a string cell kept exactly as stored. Empty input
// yields a missing cell.
func TextValue(s string) Value {
	return Value{Text: s}
}

// NumberValue creates a numeric cell.
func NumberValue(f float64) Value {
	return Value{Text: strconv.FormatFloat(f, 'f', -1, 64), Number: f, Numeric: true}
}

// IsMissing reports whether the cell is empty.
func (v Value) IsMissing() bool {
	return !v.Numeric && v.Text == ""
}

// String renders the cell in its natural form. Integral numbers print
// without a fractional part.
func (v Value) String() string {
	if v.Numeric {
		if v.Number == float64(int64(v.Number)) {
			return strconv.FormatInt(int64(v.Number), 10)
		}
		return strconv.FormatFloat(v.Number, 'f', -1, 64)
	}
	return v.Text
}

// Table is a rectangular set of rows. Every row holds exactly len(Columns)
// cells.
type Table struct {
	Name    string    `json:"name,omitempty"`
	Columns []string  `json:"columns"`
	Rows    [][]Value `json:"rows"`
}

// NewTable creates a table, padding or truncating rows to the column count.
func NewTable(name string, columns []string, rows [][]Value) Table {
	t := Table{
		Name:    name,
		Columns: append([]string(nil), columns...),
		Rows:    make([][]Value, 0, len(rows)),
	}
	for _, row := range rows {
		t.Rows = append(t.Rows, fitRow(row, len(columns)))
	}
	return t
}

// Len returns the number of rows.
func (t Table) Len() int {
	return len(t.Rows)
}

// ColumnIndex returns the position of the named column or -1.
func (t Table) ColumnIndex(name string) int {
	for i, c := range t.Columns {
		if c == name {
			return i
		}
	}
	return -1
}

// HasColumn reports whether the named column exists.
func (t Table) HasColumn(name string) bool {
	return t.ColumnIndex(name) >= 0
}

// Clone returns a deep copy.
func (t Table) Clone() Table {
	return NewTable(t.Name, t.Columns, t.Rows)
}

// DropColumn returns a copy of the table without the named column. A
// missing column is not an error; the copy is returned unchanged.
func (t Table) DropColumn(name string) Table {
	idx := t.ColumnIndex(name)
	if idx < 0 {
		return t.Clone()
	}

	columns := make([]string, 0, len(t.Columns)-1)
	columns = append(columns, t.Columns[:idx]...)
	columns = append(columns, t.Columns[idx+1:]...)

	rows := make([][]Value, len(t.Rows))
	for i, row := range t.Rows {
		r := make([]Value, 0, len(columns))
		r = append(r, row[:idx]...)
		r = append(r, row[idx+1:]...)
		rows[i] = r
	}
	return Table{Name: t.Name, Columns: columns, Rows: rows}
}

func fitRow(row []Value, width int) []Value {
	out := make([]Value, width)
	copy(out, row)
	return out
}

// Sheet is one named sheet of a workbook.
type Sheet struct {
	Name  string
	Table Table
}

// Dataset holds the three loaded tables. It is immutable after Load.
type Dataset struct {
	Rounds   Table     `json:"rounds"`
	Matchups Table     `json:"matchups"`
	Ratings  Table     `json:"ratings"`
	LoadedAt time.Time `json:"loaded_at"`

	regionOptions []string
}

// NewDataset assembles a dataset and precomputes the region option list.
func NewDataset(rounds, matchups, ratings Table) *Dataset {
	return &Dataset{
		Rounds:        rounds,
		Matchups:      matchups,
		Ratings:       ratings,
		LoadedAt:      time.Now(),
		regionOptions: RegionOptions(rounds),
	}
}

// RegionOptions returns the region filter choices of the full round table.
func (d *Dataset) RegionOptions() []string {
	return append([]string(nil), d.regionOptions...)
}

// DisplayTable is a table rendered to strings for presentation.
type DisplayTable struct {
	Columns []string   `json:"columns"`
	Rows    [][]string `json:"rows"`
}

// Len returns the number of rows.
func (d DisplayTable) Len() int {
	return len(d.Rows)
}

// Display renders a table in its natural form without numeric formatting.
func Display(t Table) DisplayTable {
	out := DisplayTable{
		Columns: append([]string(nil), t.Columns...),
		Rows:    make([][]string, len(t.Rows)),
	}
	for i, row := range t.Rows {
		cells := make([]string, len(row))
		for j, v := range row {
			cells[j] = v.String()
		}
		out.Rows[i] = cells
	}
	return out
}
