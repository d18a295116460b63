// Package scene builds layout trees from TOML descriptions.
//
// A scene is a flat list of [[node]] tables. The first node with no
// parent is the root; every other node names a previously declared
// parent by id. Styles live inline on the node table, with dimension
// values written as strings ("120", "50%", "auto") and per-edge
// properties as sub-tables keyed by edge name.
//
//	[config]
//	use_web_defaults = true
//
//	[[node]]
//	id = "root"
//	flex_direction = "row"
//	padding = { all = "1" }
//
//	[[node]]
//	id = "sidebar"
//	parent = "root"
//	width = "30%"
//
// Build runs the description through a bridge.Session, so the result
// is ordinary session handles the caller styles, lays out, and frees
// like any others.
package scene
