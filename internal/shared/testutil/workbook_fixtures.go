package testutil

import (
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"
)

// SheetData describes one sheet of a fixture workbook. The first row is
// the header.
type SheetData struct {
	Name string
	Rows [][]any
}

// RoundsHeader is the header row of a round advancement sheet
var RoundsHeader = []any{"Team", "Seed", "Region", "Round", "Round of 32", "Sweet 16", "Elite 8", "Final 4", "Title Game", "Champion"}

// WriteWorkbook saves the sheets to path as an xlsx file.
func WriteWorkbook(t *testing.T, path string, sheets ...SheetData) {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	for i, s := range sheets {
		if i == 0 {
			if err := f.SetSheetName(f.GetSheetName(0), s.Name); err != nil {
				t.Fatalf("rename sheet: %v", err)
			}
		} else if _, err := f.NewSheet(s.Name); err != nil {
			t.Fatalf("create sheet %s: %v", s.Name, err)
		}

		for r, row := range s.Rows {
			cell, err := excelize.CoordinatesToCellName(1, r+1)
			if err != nil {
				t.Fatalf("cell name: %v", err)
			}
			values := row
			if err := f.SetSheetRow(s.Name, cell, &values); err != nil {
				t.Fatalf("write row %d of %s: %v", r+1, s.Name, err)
			}
		}
	}

	if err := f.SaveAs(path); err != nil {
		t.Fatalf("save workbook %s: %v", path, err)
	}
}

// RoundsSheet builds a round advancement sheet from data rows.
func RoundsSheet(name string, rows ...[]any) SheetData {
	all := make([][]any, 0, len(rows)+1)
	all = append(all, RoundsHeader)
	all = append(all, rows...)
	return SheetData{Name: name, Rows: all}
}

// RoundRow builds one data row for RoundsSheet.
func RoundRow(team string, seed int, region, round string, probs ...float64) []any {
	row := []any{team, seed, region, round}
	for _, p := range probs {
		row = append(row, p)
	}
	return row
}

// Fixture paths of a complete prediction dataset
type Fixture struct {
	Dir          string
	RoundsPath   string
	MatchupsPath string
	RatingsPath  string
}

// Default fixture file names
const (
	RoundsFile   = "aggregated_round_win_percentages.xlsx"
	MatchupsFile = "test_with_predictions.xlsx"
	RatingsFile  = "test_with_predictionselo.xlsx"
)

// WritePredictionFixture writes a small but complete dataset into a temp
// directory: two round sheets across East and West, three matchups and
// four ratings.
func WritePredictionFixture(t *testing.T) Fixture {
	t.Helper()

	dir := t.TempDir()
	fx := Fixture{
		Dir:          dir,
		RoundsPath:   filepath.Join(dir, RoundsFile),
		MatchupsPath: filepath.Join(dir, MatchupsFile),
		RatingsPath:  filepath.Join(dir, RatingsFile),
	}

	WriteWorkbook(t, fx.RoundsPath,
		RoundsSheet("East",
			RoundRow("Duke", 1, "East", "Champion", 0.98, 0.85, 0.70, 0.50, 0.33, 0.20),
			RoundRow("Alabama", 2, "East", "Champion", 0.95, 0.70, 0.45, 0.25, 0.12, 0.05),
		),
		RoundsSheet("West",
			RoundRow("Florida", 1, "West", "Champion", 0.97, 0.80, 0.62, 0.41, 0.25, 0.15),
		),
	)

	WriteWorkbook(t, fx.MatchupsPath, SheetData{
		Name: "Sheet1",
		Rows: [][]any{
			{"Team A", "Team B", "Predicted Winner", "Win Probability"},
			{"Duke", "Mount St. Mary's", "Duke", 0.97},
			{"Alabama", "Robert Morris", "Alabama", 0.93},
			{"Florida", "Norfolk St.", "Florida", 0.96},
		},
	})

	WriteWorkbook(t, fx.RatingsPath, SheetData{
		Name: "Sheet1",
		Rows: [][]any{
			{"Team", "Rating"},
			{"Duke", 0.912},
			{"Florida", 0.887},
			{"Alabama", 0.801},
			{"Houston", 0.894},
		},
	})

	return fx
}
