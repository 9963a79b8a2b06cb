// Package occupancy stores who occupies board vertices and edges.
//
// The topology never reads this layer. A Ledger is owned and written by
// the turn engine; it records claims by id and answers lookups, but it does
// not judge whether a placement is legal. Unset ids report (zero, false).
//
// Ledger methods are safe for concurrent use.
package occupancy
