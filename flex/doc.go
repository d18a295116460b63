// Package flex is the in-process layout backend.
//
// Engine keeps a retained tree of nodes in arena slots and implements
// flexbridge.Backend with the same ownership rules a foreign library
// has: refs are opaque slot numbers, freed slots are recycled, and a
// stale ref silently resolves to nothing. It is the default backend for
// bridge.Session and the reference implementation the wasm-backed
// engine is checked against.
//
// The layout algorithm is a single-line flexbox: main-axis stacking
// with grow/shrink distribution, justify and align placement, margins,
// padding, borders, percent units, and relative/absolute positioning.
// Wrapping and baseline alignment are not implemented.
package flex
