package iorules

import "fmt"

// Rule represents an ioful rule code (IOA-series).
type Rule int

const (
	ruleInvalid Rule = iota

	IOA000ReadAmountUnused
	IOA001ReadVectoredAmountUnused
	IOA010WriteAmountUnused
	IOA011WriteVectoredAmountUnused
	IOA100UnknownDirective
)

// String returns the canonical code and short name of the rule.
// Example: "IOA000: ReadAmountUnused"
func (r Rule) String() string {
	switch r {
	case IOA000ReadAmountUnused:
		return "IOA000: ReadAmountUnused"
	case IOA001ReadVectoredAmountUnused:
		return "IOA001: ReadVectoredAmountUnused"
	case IOA010WriteAmountUnused:
		return "IOA010: WriteAmountUnused"
	case IOA011WriteVectoredAmountUnused:
		return "IOA011: WriteVectoredAmountUnused"
	case IOA100UnknownDirective:
		return "IOA100: UnknownDirective"
	default:
		return fmt.Sprintf("rule-unknown(%d)", r)
	}
}

// Description returns the diagnostic text of the rule. The texts are part
// of the tool's contract and must not be reworded casually.
func (r Rule) Description() string {
	switch r {
	case IOA000ReadAmountUnused:
		return "read amount is not handled. Use the exact-fill read operation instead"
	case IOA001ReadVectoredAmountUnused:
		return "read amount is not handled"
	case IOA010WriteAmountUnused:
		return "written amount is not handled. Use the exact-fill write operation instead"
	case IOA011WriteVectoredAmountUnused:
		return "written amount is not handled"
	case IOA100UnknownDirective:
		return "Unknown ioful directive in a comment."
	default:
		return fmt.Sprintf("unknown-rule(%d)", r)
	}
}

// Severity classifies how bad a violation of the rule is.
type Severity int

const (
	severityInvalid Severity = iota

	// SeverityCorrectness means the flagged code silently corrupts or
	// truncates data under partial transfer.
	SeverityCorrectness

	// SeverityUsage means the tool itself is being driven wrong: a
	// malformed directive, not a bug in the analyzed code.
	SeverityUsage
)

// String returns the string representation of a Severity value.
func (s Severity) String() string {
	switch s {
	case SeverityCorrectness:
		return "correctness"
	case SeverityUsage:
		return "usage"
	default:
		return fmt.Sprintf("severity-unknown(%d)", s)
	}
}

// Severity returns the fixed severity of the rule. Every amount rule is a
// correctness issue; severity is never computed dynamically.
func (r Rule) Severity() Severity {
	if r == IOA100UnknownDirective {
		return SeverityUsage
	}
	return SeverityCorrectness
}

// Canonical constructors — for readability and stable call sites.

func ReadAmountUnused() Rule          { return IOA000ReadAmountUnused }
func ReadVectoredAmountUnused() Rule  { return IOA001ReadVectoredAmountUnused }
func WriteAmountUnused() Rule         { return IOA010WriteAmountUnused }
func WriteVectoredAmountUnused() Rule { return IOA011WriteVectoredAmountUnused }
func UnknownDirective() Rule          { return IOA100UnknownDirective }
