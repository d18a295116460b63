// Package flexbridge bridges a foreign, retained-mode flexbox layout
// library to callers that can only hold small integer handles.
//
// The foreign library owns every node and config; this module never
// allocates or frees foreign memory itself. What it owns is the mapping
// from integer handles to foreign refs, and the bookkeeping needed to keep
// that mapping consistent as the foreign tree is mutated and destroyed.
//
// # Architecture Overview
//
//	flexbridge/        Root package with boundary types and the Backend surface
//	├── handle/        Generic handle table: slot store, free list, compaction
//	├── bridge/        Session: the public handle-based API over a Backend
//	├── flex/          In-process layout tree, the default Backend
//	├── engine/        wazero-backed Backend for a WebAssembly layout library
//	├── scene/         Declarative TOML scene files built into a live tree
//	├── snapshot/      Computed-geometry capture and CBOR encoding
//	└── errors/        Structured error types
//
// # Quick Start
//
// Build a two-column layout with the in-process backend:
//
//	s, _ := bridge.NewSession(flex.New())
//	defer s.Close()
//
//	root := s.CreateNode()
//	s.SetFlexDirection(root, flexbridge.FlexDirectionRow)
//	s.SetWidth(root, flexbridge.Points(80))
//	s.SetHeight(root, flexbridge.Points(24))
//
//	left := s.CreateNode()
//	s.SetFlexGrow(left, 1)
//	s.InsertChild(root, left, 0)
//
//	right := s.CreateNode()
//	s.SetFlexGrow(right, 2)
//	s.InsertChild(root, right, 1)
//
//	s.CalculateLayout(root, 80, 24, flexbridge.DirectionLTR)
//	fmt.Println(s.LayoutWidth(right)) // 53.333332
//
// # Handles
//
// A handle is a small signed integer valid within one namespace of one
// Session. Node and config handles are drawn from independent tables; a
// handle from one namespace resolves to nothing in the other. Every
// operation is total over the integer domain: an invalid handle makes
// mutators no-ops, accessors return zero values, and allocators return
// handle.None. Nothing panics on a malformed handle.
//
// # Thread Safety
//
// Sessions are single-threaded by contract. Operations are synchronous
// in-memory bookkeeping plus a forwarded foreign call; callers that share
// a Session across goroutines must synchronize externally.
package flexbridge
