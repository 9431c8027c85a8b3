// Package notification holds the persisted, user-facing notification record.
//
// A record always belongs to an organization. A nil user scope makes it
// visible to every member of that organization; otherwise only the named user
// sees it. Records are created by the notification policy and afterwards only
// change their read state.
package notification
