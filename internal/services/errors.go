package services

import "errors"

// Dashboard service errors
var (
	ErrDatasetMissing = errors.New("prediction dataset not loaded")
	ErrExportFailed   = errors.New("round table export failed")
)
