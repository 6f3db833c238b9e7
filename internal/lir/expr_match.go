package lir

import "fmt"

// ExprMatch represents a construct that takes the outcome of a fallible
// expression apart: success payload one way, failure the other. Source
// records where the construct came from, since only desugared forms count
// as discarding the payload.
//
//	_, err := w.Write(data) // Subject: <ExprMethodCall>, Source: MatchSourceTryDesugar
type ExprMatch struct {
	Subject Expr
	Source  MatchSource
}

// MatchSource tells an ordinary outcome inspection apart from forms the
// lowering produced itself while canonicalizing discard idioms.
type MatchSource int

const (
	// MatchSourceNormal is an ordinary match written by the user. Its
	// payload may well be inspected inside, so it is never a discard.
	MatchSourceNormal MatchSource = iota

	// MatchSourceTryDesugar marks the propagate-and-discard idiom: the
	// failure is passed upward, the success payload is dropped.
	MatchSourceTryDesugar

	// MatchSourceStmtDiscard marks a statement that drops the entire
	// outcome on the floor with no propagation at all.
	MatchSourceStmtDiscard
)

// String returns the string representation of a MatchSource value.
func (s MatchSource) String() string {
	switch s {
	case MatchSourceNormal:
		return "normal"
	case MatchSourceTryDesugar:
		return "try-desugar"
	case MatchSourceStmtDiscard:
		return "stmt-discard"
	default:
		return fmt.Sprintf("unknown(%d)", int(s))
	}
}

func (*ExprMatch) isNode() {}
func (*ExprMatch) isExpr() {}
