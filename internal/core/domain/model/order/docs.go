// Package order holds the Order aggregate of the logistics domain.
//
// An order belongs to one organization, carries a human-readable number issued
// from the "order" sequence family (ORD-00001) and moves through a closed set
// of statuses: pending, processing, fulfilled, shipped, cancelled.
//
// Status changes are validated against that vocabulary only. Any member may be
// set from any other member; IsTerminal reports the statuses after which
// callers usually stop offering transitions.
package order
