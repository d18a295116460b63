// Package bridge exposes a foreign layout tree through integer handles.
//
// A Session pairs a flexbridge.Backend with two independent handle
// tables, one for nodes and one for configs. Callers hold only small
// integers; the session resolves each to its foreign ref, forwards the
// operation, and keeps the tables consistent as the foreign tree is
// mutated and destroyed.
//
// # Handle Lifecycle
//
// A node acquires its handle either when it is created through the
// session or lazily the first time it is observed through Child; both
// paths converge on one handle per live foreign node. A handle dies when
// the node is freed explicitly (FreeNode) or when any ancestor's subtree
// is freed (FreeSubtree), which walks the foreign tree and scrubs every
// aliased handle before the native recursive free runs.
//
// # Error Contract
//
// No operation fails loudly on a bad handle: mutators become no-ops,
// accessors return zeros, allocators return None. This mirrors a boundary
// that can only carry primitive values, and it makes cross-namespace
// mistakes (a config handle passed to a node operation) indistinguishable
// from stale handles: both resolve to nothing and do nothing.
package bridge
