// Package shared holds code used across packages that belongs to no single
// layer.
//
// # Test Utilities
//
// The testutil subpackage provides:
//
//   - BufferedSlogHandler and NewTestLogger for asserting on log output
//   - WriteWorkbook and RoundsSheet for building xlsx files in tests
//   - WritePredictionFixture for a complete three-workbook dataset
//
// Example usage:
//
//	func TestSomething(t *testing.T) {
//	    fx := testutil.WritePredictionFixture(t)
//	    logger, handler := testutil.NewTestLogger(t)
//
//	    ds, err := predictions.Load(ctx, predictions.Sources{RoundsPath: fx.RoundsPath, ...}, logger)
//	    require.NoError(t, err)
//	    testutil.AssertNoErrors(t, handler)
//	}
package shared
