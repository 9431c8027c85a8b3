// Package services provides domain services of the logistics core: decisions
// that read one or more aggregates but belong to none of them.
//
// The package includes:
//   - NotificationPolicy: decides whether a status change deserves a persisted notification
package services
