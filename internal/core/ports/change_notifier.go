package ports

import "context"

// ChangeSet identifies the records touched by one committed mutation,
// grouped by entity type.
type ChangeSet struct {
	VehicleIDs     []int64
	MaintenanceIDs []int64
	PartOrderIDs   []int64
}

// IsEmpty reports whether the change set carries no ids at all.
func (c ChangeSet) IsEmpty() bool {
	return len(c.VehicleIDs) == 0 && len(c.MaintenanceIDs) == 0 && len(c.PartOrderIDs) == 0
}

// ChangeNotifier pushes changed-record ids to the external orchestrator after
// a mutation commits. Delivery is best-effort and at-most-once: implementations
// must never block the caller on network latency and must swallow delivery
// failures. The orchestrator reconciles misses by polling the query surface.
type ChangeNotifier interface {
	Notify(ctx context.Context, changes ChangeSet)
}
