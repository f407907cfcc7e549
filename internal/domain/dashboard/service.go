package dashboard

import "context"

// DashboardService serves the HR overview screen.
type DashboardService interface {
	// Today returns the live attendance board for the current server date
	// plus the current month's net salary total.
	Today(ctx context.Context) (TodayResponse, error)
}
