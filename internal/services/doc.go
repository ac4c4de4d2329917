// Package services implements the business logic layer of the bracket
// dashboard. It sits between the HTTP handlers and the loaded prediction
// dataset so that filtering, formatting and export rules live in one place.
//
// # Architecture
//
// Services follow these principles:
//
//	1. Constructed once at startup from the immutable dataset
//	2. Context propagation for cancellation and tracing
//	3. Dependency injection of logger and metrics
//	4. Pure recomputation of every view per call
//
// # Available Services
//
//	- DashboardService: round table filtering, option lists, matchups,
//	  ratings and CSV export
//	- HealthService: health, readiness, liveness and version information
//
// # Common Service Pattern
//
//	func (s *DashboardService) Rounds(ctx context.Context, sel predictions.Selection) (RoundsView, error) {
//	    if err := ctx.Err(); err != nil {
//	        return RoundsView{}, err
//	    }
//	    filtered := predictions.FilterRounds(s.dataset.Rounds, sel)
//	    s.metrics.RecordFilter(ctx, filtered.Len(), true)
//	    return RoundsView{Filtered: filtered, Display: predictions.FormatPercentages(filtered)}, nil
//	}
//
// # Testing
//
// Services are tested against datasets built in memory or loaded from
// workbooks written by the testutil fixtures.
package services
