// Package shapely is the structural core of a schema language for
// JSON-like data: the match-result algebra, the mismatch explanation
// machinery, and the reference matching traversal over checked specs.
//
// # Results and Causes
//
// Comparing a value against a checked spec yields a Result: Matched, or
// UnMatched wrapping a Cause. A Cause carries the path of traversal steps
// from the top-level comparison, outer to inner, down to the direct cause
// (the atomic Reason plus the schema node and value node at the failure
// point). Combine folds sub-results left-biased: the first failure wins.
//
// # Explanation
//
// Explain turns a Cause into an Explanation: the direct cause plus two
// independently rendered access paths, one in schema-navigation syntax
// ((a)[2], <left>, {name}) and one in value-navigation syntax (.a[2]).
// RenderExplanation assembles a human-readable message; English and
// Spanish renderers share the same structural inputs, and more languages
// plug in behind the Renderer interface without touching path logic.
// Explanation.Hint adds a diff from the failing value to a conforming
// example.
//
// # Matching
//
// Match is the plain recursive traversal: it consults choice makers at
// alternatives, predicates at refinements, resolves references against a
// checked environment, honors Strict/Tolerant field handling, and builds
// exactly the cause chains Explain consumes. Domain mismatches are data,
// never panics; panics are reserved for caller bugs.
//
// # Related Packages
//
//   - github.com/shapely-lang/shapely/ir - the value model
//   - github.com/shapely-lang/shapely/schema - the schema algebra
package shapely
