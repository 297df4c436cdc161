package queries

import (
	"errors"
	"time"

	"fleet/internal/pkg/guard"
)

var ErrOpenMaintenanceReportQueryIsNotConstructed = errors.New(
	"OpenMaintenanceReportQuery must be created via NewOpenMaintenanceReportQuery constructor",
)

// OpenMaintenanceReportQuery requests maintenance records that are still open
// and were created before a cutoff. Used by the watchdog job to surface
// visits that have been sitting in progress or waiting for parts too long.
type OpenMaintenanceReportQuery struct {
	olderThan time.Time

	guard guard.ConstructorGuard
}

// NewOpenMaintenanceReportQuery creates a report query with the given cutoff.
func NewOpenMaintenanceReportQuery(olderThan time.Time) OpenMaintenanceReportQuery {
	return OpenMaintenanceReportQuery{
		olderThan: olderThan,
		guard:     guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
func (q OpenMaintenanceReportQuery) Validate() error {
	return q.guard.Validate(ErrOpenMaintenanceReportQueryIsNotConstructed)
}

// OlderThan returns the creation-time cutoff.
func (q OpenMaintenanceReportQuery) OlderThan() time.Time {
	return q.olderThan
}

// OpenMaintenanceReportResponse is one long-open maintenance record.
type OpenMaintenanceReportResponse struct {
	ID         int64
	VehicleID  int64
	Technician string
	StatusID   int
	CreatedOn  time.Time
}
