// Package schema provides the shapely schema algebra: a generic recursive
// description of the shapes a JSON-like value may take, together with the
// traversal, shape-derivation and example-synthesis machinery built on it.
//
// # Phases
//
// The algebra is one generic type, Node[R, P, C], instantiated at three
// phases:
//
//   - Spec: a schema as authored. References are raw names, refinement
//     predicates are real functions, alternatives carry no disambiguation.
//   - Checked: a Spec whose every Alt node has been annotated with a
//     ChoiceMaker by the (external) disambiguation checker, via CheckWith.
//   - Shape: the structural view. References are resolved or truncated,
//     refinements stripped, disambiguation erased. Shapes never contain
//     Ref or Refined nodes; DeriveShape guarantees that by construction.
//
// # Traversal
//
// MapNode, FoldChildren and MapChildren are the one-level traversal
// operations phase transformations are written with. They agree on child
// order: tuple and named-tuple fields left to right, then the element
// slot, then left before right.
//
// # Shape Derivation
//
// DeriveShape walks a spec against an Env of named definitions, carrying
// the set of names currently being expanded. A reference to a name in
// that set truncates to Anything, so recursive and mutually recursive
// definitions always terminate. Refinements derive as their base; they
// constrain values at runtime, not structure.
//
// # Examples
//
// Example synthesizes a deterministic sample value from a shape. The left
// branch of an alternative always wins; that tie-break is observable
// behavior and must not change.
//
// # Predicates
//
// Predicates are opaque functions. CompilePredicate builds one from an
// expr-lang expression for callers that author refinements as text.
//
// # Concurrency
//
// Everything here is a pure structural recursion over immutable trees. An
// Env may be shared across concurrent derivations as long as nothing
// mutates it; the cycle guard is local to one derivation call.
//
// # Related Packages
//
//   - github.com/shapely-lang/shapely/ir - the value trees schemas describe
//   - github.com/shapely-lang/shapely - matching and mismatch explanation
package schema
