package commands

import (
	"errors"
	"fmt"

	"fleet/internal/pkg/errs"
	"fleet/internal/pkg/guard"
)

var (
	ErrCompleteMaintenanceCommandIsNotConstructed = errors.New(
		"CompleteMaintenanceCommand must be created via NewCompleteMaintenanceCommand constructor",
	)
)

// CompleteMaintenanceCommand represents a request to close out a maintenance
// record. Close notes are optional.
type CompleteMaintenanceCommand struct {
	maintenanceID int64
	notesClose    *string

	guard guard.ConstructorGuard
}

// NewCompleteMaintenanceCommand creates a command to complete the identified
// maintenance record.
func NewCompleteMaintenanceCommand(maintenanceID int64, notesClose *string) (CompleteMaintenanceCommand, error) {
	if maintenanceID <= 0 {
		return CompleteMaintenanceCommand{}, errs.NewValueIsInvalidErrorWithCause(
			"maintenanceId",
			fmt.Errorf("%d is not a valid identifier", maintenanceID),
		)
	}

	return CompleteMaintenanceCommand{
		maintenanceID: maintenanceID,
		notesClose:    notesClose,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CompleteMaintenanceCommand) Validate() error {
	return c.guard.Validate(ErrCompleteMaintenanceCommandIsNotConstructed)
}

// MaintenanceID returns the identifier of the maintenance record to complete.
func (c CompleteMaintenanceCommand) MaintenanceID() int64 {
	return c.maintenanceID
}

// NotesClose returns the optional close notes.
func (c CompleteMaintenanceCommand) NotesClose() *string {
	return c.notesClose
}
