// Package engine runs a flexbox layout library compiled to WebAssembly
// and exposes it as a flexbridge.Backend.
//
// The guest module owns the layout tree in its linear memory; refs
// crossing the boundary are guest pointers and mean nothing to the Go
// garbage collector. Every exported function the backend needs is
// resolved once at construction into a capability table. Required
// exports that are absent fail construction with a
// MissingExportsError naming all of them at once; optional exports
// (percent and auto unit variants, web defaults) degrade to logged
// no-ops.
//
// A Backend is NOT safe for concurrent use. Give each goroutine its
// own Backend, or synchronize externally.
package engine
