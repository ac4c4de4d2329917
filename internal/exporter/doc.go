// Package exporter provides CSV export of prediction tables.
//
// CSVWriter writes a display table with its header row, optionally prefixed
// with a UTF-8 BOM so Excel recognizes the encoding. Tables can be written to
// any io.Writer (an HTTP response, stdout) or to a file resolved against the
// writer's base directory.
//
// Example usage:
//
//	writer := exporter.NewCSVWriter(paths.BaseDir, logger)
//
//	// Stream the filtered round table to a response
//	err := writer.WriteTable(w, view.Display, exporter.WriteOptions{BOMPrefix: true})
//
//	// Save it as a report
//	err = writer.WriteFile("reports/rounds.csv", view.Display, exporter.WriteOptions{})
package exporter
