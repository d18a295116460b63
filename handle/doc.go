// Package handle implements the integer handle table the bridge is built
// on: a growable slot store with LIFO id recycling and opportunistic
// compaction.
//
// A Table hands out small, dense integer handles for refs it never owns.
// Ids are recycled after removal through a free list, the highest occupied
// index is tracked so sparse tables can be compacted down to their
// occupied prefix, and a reverse index resolves ref→handle without
// scanning.
//
// Each foreign object category gets its own Table instance; handles are
// meaningless outside the table that issued them.
package handle
