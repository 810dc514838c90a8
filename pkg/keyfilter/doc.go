// Package keyfilter implements the key allow-list used to silence every
// logger except the ones a developer is currently interested in.
//
// The allow-list comes from a single free-form string split on commas,
// colons or slashes:
//
//	keys := keyfilter.Parse("auth,cache:db/queue") // [auth cache db queue]
//	keyfilter.Allowed("auth", keys)                 // true
//	keyfilter.Allowed("Auth", keys)                 // false, matching is exact
//
// An empty allow-list allows every key.
package keyfilter
