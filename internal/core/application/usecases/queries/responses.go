// Package queries contains read operations over the fleet store. Implements
// the Query side of the CQRS architecture: handlers read the database
// directly and return flat response structs, bypassing the domain aggregates.
package queries

import "time"

// VehicleResponse is the read model for a single vehicle row.
type VehicleResponse struct {
	ID              int64
	VIN             string
	Color           string
	Make            string
	Model           string
	Year            int
	IsActive        bool
	IsRetired       bool
	LastServiceDate *time.Time
}

// MaintenanceResponse is the read model for a single maintenance row.
// Type and status are exposed as their integer wire codes.
type MaintenanceResponse struct {
	ID                int64
	VehicleID         int64
	Technician        string
	MaintenanceTypeID int
	StatusID          int
	NotesOpen         string
	NotesClose        *string
	CreatedOn         time.Time
	CompletedOn       *time.Time
}

// PartOrderResponse is the read model for a single part order row.
type PartOrderResponse struct {
	ID              int64
	MaintenanceID   int64
	PurchaseCardNum string
	TotalAmount     float64
	PurchasedOn     time.Time
	InstalledOn     *time.Time
}
