// Package lir defines structural types used to describe statements and
// expressions as the detection engine sees them.
//
// The entities in this package provide a consistent vocabulary for
// representing result-discarding constructs, such as expression
// statements, try-propagation matches, and unwrap-family method calls,
// independently of the surface syntax they were lowered from. Frontends translate their
// source trees into these nodes; the engine classifies the nodes and never
// looks back at the original syntax.
//
// Nodes carry no source positions. Position bookkeeping belongs to the
// span context of the lint package, which maps registered nodes back to
// their spans when a diagnostic has to be attached.
package lir
