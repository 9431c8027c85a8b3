// Package kernel provides the shared primitives of the logistics domain.
//
// The package includes:
//   - ID: positive integer identity of organizations, users, orders, shipments and warehouses
//   - UUID: random identity of notification records and tracking checkpoints
//   - Principal: the (user, organization) pair a caller or subscriber acts as
//   - GeoPoint: a validated latitude/longitude pair attached to checkpoints
//
// Values are immutable once constructed and safe for concurrent use.
package kernel
