// Package app provides application initialization and lifecycle management
// for the bracket dashboard. It wires configuration, logging, telemetry, the
// prediction dataset, services and the HTTP router together at startup.
//
// # Initialization Flow
//
//	1. Load configuration from defaults, file and environment
//	2. Initialize logging and OpenTelemetry
//	3. Load the three prediction workbooks once
//	4. Initialize services over the immutable dataset
//	5. Set up HTTP handlers and middleware
//	6. Configure the HTTP server
//
// A dataset that cannot be loaded aborts startup; there is no partial
// dashboard.
//
// # Usage
//
//	application, err := app.NewApplication()
//	if err != nil {
//	    os.Exit(1)
//	}
//	if err := application.Run(); err != nil {
//	    os.Exit(1)
//	}
//
// # Graceful Shutdown
//
// Run handles SIGINT and SIGTERM: active requests are completed and final
// metrics are flushed before it returns.
//
// # Error Handling
//
// All initialization errors are returned to the caller. The app does not
// call os.Exit() directly, allowing the main function to control the exit
// process.
package app
