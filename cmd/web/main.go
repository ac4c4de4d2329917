package main

import (
	"log/slog"
	"os"

	"bracketboard/internal/app"
	"bracketboard/internal/infrastructure"
)

func main() {
	// Create application instance; a dataset that cannot be loaded halts here
	application, err := app.NewApplication()
	if err != nil {
		slog.Error("Failed to initialize application", slog.String("error", err.Error()))
		_ = infrastructure.CloseLogFile()
		os.Exit(1)
	}

	// Start application
	if err := application.Run(); err != nil {
		slog.Error("Application error", slog.String("error", err.Error()))
		_ = infrastructure.CloseLogFile()
		os.Exit(1)
	}

	_ = infrastructure.CloseLogFile()
}
