// Package shipment holds the Shipment aggregate: a physical consignment moving
// from an origin to a destination, optionally carried by a driver and
// optionally fulfilling an order.
//
// Every status change of a shipment is recorded in the tracking log together
// with the location label returned by LocationLabel.
package shipment
