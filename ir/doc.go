// Package ir provides the in-memory representation of JSON-like values.
//
// # Overview
//
// All documents handled by shapely (whether decoded from YAML/JSON or
// created programmatically) are represented as ir.Value trees. The IR is a
// recursive tagged union: the Kind field selects the payload fields that
// are meaningful for a given node.
//
// # Kinds
//
//   - NullKind: null value
//   - BoolKind: boolean (true/false)
//   - NumberKind: double precision number
//   - TextKind: text value
//   - ArrayKind: ordered list of values
//   - ObjectKind: ordered key-value pairs (Keys and Values are parallel)
//
// # Creating Values
//
// Use constructor functions to create values:
//
//	v := ir.FromText("hello")
//	n := ir.FromFloat(42)
//	obj := ir.FromKeyVals([]ir.KeyVal{
//	    {Key: "key", Val: ir.FromText("value")},
//	})
//	arr := ir.FromSlice([]*ir.Value{ir.FromFloat(1), ir.FromFloat(2)})
//
// # Objects
//
// Object keys live in Keys, in pair order; Values[i] is the value for
// Keys[i]. Keys are not deduplicated at construction time. Lookup and Get
// resolve duplicates with last-write-wins, so the pair sequence and the
// mapping built from it can never disagree. Lookup distinguishes an absent
// key from a key bound to null; Get does not. Both panic when the receiver
// is not an object: that is a caller bug, not a recoverable condition.
//
// # Rendering
//
// Render produces canonical literal text: arrays as [e1, e2], objects as
// {k: v} with bare identifier keys and quoted non-identifier keys,
// preserving pair order. The rendering is deterministic and is part of the
// diagnostic surface of the schema packages.
//
// # Comparison
//
// Compare orders values structurally (Null < Bool < Number < Text < Array
// < Object); Equal is Compare == 0.
//
// # Thread Safety
//
// Value trees are immutable by convention but not enforced; share them
// across goroutines only if no one mutates.
//
// # Related Packages
//
//   - github.com/shapely-lang/shapely/schema - schema algebra over values
//   - github.com/shapely-lang/shapely - matching and mismatch explanation
package ir
