// Package predictions loads the precomputed tournament prediction workbooks
// and derives the views the dashboard displays.
//
// # Data Sources
//
// Three spreadsheet files are read once at startup:
//
//	1. Round advancement probabilities (one sheet per simulated grouping)
//	2. Predicted matchups (first sheet only)
//	3. Team ratings (first sheet only)
//
// The round sheets are consolidated into a single table whose schema is
// Seed, Region, Round and the six round probability columns. The other two
// tables are opaque and shown as-is.
//
// # Usage
//
//	loader := predictions.NewLoader(sources, logger)
//	ds, err := loader.Load(ctx)
//	if err != nil {
//	    // *DataLoadError, startup must stop
//	}
//
//	view := predictions.FilterRounds(ds.Rounds, predictions.Selection{
//	    Seeds:   []string{"1"},
//	    Regions: []string{"East"},
//	})
//	display := predictions.FormatPercentages(view)
//
// # Immutability
//
// A Dataset is never modified after Load returns. FilterRounds and
// FormatPercentages always build new values, so a single Dataset can be
// shared by every request without locking.
package predictions
