package predictions

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/xuri/excelize/v2"
	"golang.org/x/sync/errgroup"
)

// Source names used in errors and logs
const (
	SourceRounds   = "round win percentages"
	SourceMatchups = "matchup predictions"
	SourceRatings  = "team ratings"
)

// Sources locates the three prediction workbooks.
type Sources struct {
	RoundsPath   string
	MatchupsPath string
	RatingsPath  string
}

// Load reads all three workbooks and returns the immutable dataset. The
// files are read concurrently; the first failure cancels the others and is
// returned as a *DataLoadError.
func Load(ctx context.Context, src Sources, logger *slog.Logger) (*Dataset, error) {
	if logger == nil {
		logger = slog.Default()
	}
	start := time.Now()

	var (
		roundSheets []Sheet
		matchups    Table
		ratings     Table
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		sheets, err := ReadWorkbook(gctx, SourceRounds, src.RoundsPath)
		roundSheets = sheets
		return err
	})
	g.Go(func() error {
		t, err := ReadFirstSheet(gctx, SourceMatchups, src.MatchupsPath)
		matchups = t
		return err
	})
	g.Go(func() error {
		t, err := ReadFirstSheet(gctx, SourceRatings, src.RatingsPath)
		ratings = t
		return err
	})
	if err := g.Wait(); err != nil {
		logger.ErrorContext(ctx, "prediction data load failed", slog.String("error", err.Error()))
		return nil, err
	}

	rounds := Consolidate(roundSheets)
	rounds.Name = "rounds"
	if err := ValidateRounds(rounds); err != nil {
		return nil, &DataLoadError{Source: SourceRounds, Path: src.RoundsPath, Err: err}
	}

	ds := NewDataset(rounds, matchups, ratings)

	logger.InfoContext(ctx, "prediction data loaded",
		slog.Int("round_sheets", len(roundSheets)),
		slog.Int("round_rows", rounds.Len()),
		slog.Int("matchup_rows", matchups.Len()),
		slog.Int("rating_rows", ratings.Len()),
		slog.Duration("duration", time.Since(start)))

	return ds, nil
}

// ReadWorkbook reads every sheet of the workbook at path in workbook order.
func ReadWorkbook(ctx context.Context, source, path string) ([]Sheet, error) {
	f, err := openWorkbook(source, path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	names := f.GetSheetList()
	if len(names) == 0 {
		return nil, &DataLoadError{Source: source, Path: path, Err: fmt.Errorf("%w: workbook has no sheets", ErrMalformedSource)}
	}

	sheets := make([]Sheet, 0, len(names))
	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return nil, &DataLoadError{Source: source, Path: path, Err: err}
		}
		t, err := readSheet(f, name)
		if err != nil {
			return nil, &DataLoadError{Source: source, Path: path, Sheet: name, Err: err}
		}
		sheets = append(sheets, Sheet{Name: name, Table: t})
	}
	return sheets, nil
}

// ReadFirstSheet reads the first sheet of a single-table workbook. The sheet
// must have a header row.
func ReadFirstSheet(ctx context.Context, source, path string) (Table, error) {
	f, err := openWorkbook(source, path)
	if err != nil {
		return Table{}, err
	}
	defer f.Close()

	if err := ctx.Err(); err != nil {
		return Table{}, &DataLoadError{Source: source, Path: path, Err: err}
	}

	name := f.GetSheetName(0)
	if name == "" {
		return Table{}, &DataLoadError{Source: source, Path: path, Err: fmt.Errorf("%w: workbook has no sheets", ErrMalformedSource)}
	}
	t, err := readSheet(f, name)
	if err != nil {
		return Table{}, &DataLoadError{Source: source, Path: path, Sheet: name, Err: err}
	}
	if len(t.Columns) == 0 {
		return Table{}, &DataLoadError{Source: source, Path: path, Sheet: name, Err: fmt.Errorf("%w: no header row", ErrMalformedSource)}
	}
	return t, nil
}

func openWorkbook(source, path string) (*excelize.File, error) {
	if path == "" {
		return nil, &DataLoadError{Source: source, Err: fmt.Errorf("%w: no path configured", ErrSourceMissing)}
	}
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, &DataLoadError{Source: source, Path: path, Err: ErrSourceMissing}
		}
		return nil, &DataLoadError{Source: source, Path: path, Err: err}
	}
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, &DataLoadError{Source: source, Path: path, Err: fmt.Errorf("%w: %v", ErrMalformedSource, err)}
	}
	return f, nil
}

// readSheet converts a sheet into a table. The first non-blank row is the
// header and fully blank rows are skipped. Only cells stored as numbers
// become numeric values; text cells are kept verbatim.
func readSheet(f *excelize.File, sheet string) (Table, error) {
	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return Table{}, fmt.Errorf("%w: %v", ErrMalformedSource, err)
	}

	headerRow := -1
	for i, row := range rows {
		if !blankRow(row) {
			headerRow = i
			break
		}
	}
	if headerRow < 0 {
		return NewTable(sheet, nil, nil), nil
	}

	columns := headerNames(rows[headerRow])
	var values [][]Value
	for i := headerRow + 1; i < len(rows); i++ {
		row := rows[i]
		if blankRow(row) {
			continue
		}
		cells := make([]Value, len(columns))
		for j := 0; j < len(columns) && j < len(row); j++ {
			if row[j] == "" {
				continue
			}
			ref, err := excelize.CoordinatesToCellName(j+1, i+1)
			if err != nil {
				return Table{}, fmt.Errorf("%w: %v", ErrMalformedSource, err)
			}
			typ, err := f.GetCellType(sheet, ref)
			if err != nil {
				return Table{}, fmt.Errorf("%w: cell %s: %v", ErrMalformedSource, ref, err)
			}
			cells[j] = cellValue(row[j], typ)
		}
		values = append(values, cells)
	}

	return NewTable(sheet, columns, values), nil
}

// cellValue converts the raw text of a cell of the given type.
func cellValue(raw string, typ excelize.CellType) Value {
	switch typ {
	case excelize.CellTypeUnset, excelize.CellTypeNumber:
		if n, err := strconv.ParseFloat(raw, 64); err == nil {
			return NumberValue(n)
		}
	}
	return TextValue(raw)
}

// headerNames trims header cells, names blank headers by position and
// suffixes duplicates so every column name is unique.
func headerNames(row []string) []string {
	// trailing blank headers carry no column
	end := len(row)
	for end > 0 && strings.TrimSpace(row[end-1]) == "" {
		end--
	}

	names := make([]string, end)
	counts := make(map[string]int)
	for i := 0; i < end; i++ {
		name := strings.TrimSpace(row[i])
		if name == "" {
			name = fmt.Sprintf("Unnamed: %d", i)
		}
		if n := counts[name]; n > 0 {
			counts[name] = n + 1
			name = fmt.Sprintf("%s.%d", name, n)
		} else {
			counts[name] = 1
		}
		names[i] = name
	}
	return names
}

func blankRow(row []string) bool {
	for _, cell := range row {
		if cell != "" {
			return false
		}
	}
	return true
}

// Loader memoizes Load for the process lifetime. The first call reads
// storage; every later call returns the same dataset or the same error.
type Loader struct {
	sources Sources
	logger  *slog.Logger

	once sync.Once
	ds   *Dataset
	err  error
}

// NewLoader creates a loader for the given sources.
func NewLoader(src Sources, logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Loader{
		sources: src,
		logger:  logger.With(slog.String("component", "prediction_loader")),
	}
}

// Load returns the cached dataset, reading it on first use.
func (l *Loader) Load(ctx context.Context) (*Dataset, error) {
	l.once.Do(func() {
		l.ds, l.err = Load(ctx, l.sources, l.logger)
	})
	return l.ds, l.err
}

// Sources returns the configured workbook locations.
func (l *Loader) Sources() Sources {
	return l.sources
}
