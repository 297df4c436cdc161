package vehicle

// State is the lifecycle state of a vehicle, derived from its active and
// retired flags. It is not persisted; the flags are the source of truth.
//
//	Active ──(begin service)──> InMaintenance ──(return from service)──> Active
//	Active ──(retire)──> Retired
//	InMaintenance ──(retire)──> Retired
//
// Retired is terminal.
type State int

const (
	// Active means the vehicle is available for dispatch.
	Active State = iota

	// InMaintenance means the vehicle has an open maintenance record.
	InMaintenance

	// Retired means the vehicle was permanently withdrawn from the fleet.
	Retired
)

// String returns the human-readable name of the state.
func (s State) String() string {
	switch s {
	case Active:
		return "Active"
	case InMaintenance:
		return "InMaintenance"
	case Retired:
		return "Retired"
	default:
		return "Unknown"
	}
}
