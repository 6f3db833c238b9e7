// Package iorules defines the canonical rule codes (IOA-series) enforced by ioful.
//
// Each rule represents one (capability interface, operation) pair whose
// transfer count got discarded. The IOA-series provides a stable numeric and
// textual identity for every rule, ensuring that violations can be reported,
// filtered, and traced consistently across the lowering, the engine, and
// whatever driver renders the output.
//
// # Structure
//
// Rule codes follow the format “IOA<NNN>: <Name>” and are grouped by capability:
//
//	000–009  Read capability operations
//	010–019  Write capability operations
//	100–109  Directive and usage discipline
//
// Example:
//
//	iorules.IOA000ReadAmountUnused.String()      → "IOA000: ReadAmountUnused"
//	iorules.IOA000ReadAmountUnused.Description() → "read amount is not handled. Use the exact-fill read operation instead"
//
// Severity is fixed per rule, never computed: amount rules are correctness
// issues (silent truncation or data corruption under partial transfer),
// directive rules are usage issues.
//
// # Notes
//
//   - Rule identifiers are stable; never renumber existing codes.
//   - New rules must follow the next available IOA-range slot.
package iorules
