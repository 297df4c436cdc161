// Package vehicle contains the Vehicle aggregate root and its lifecycle state.
// A vehicle moves between the active pool, maintenance, and terminal retirement;
// the aggregate enforces that a retired vehicle is never active and that service
// can only start against an active vehicle.
package vehicle
