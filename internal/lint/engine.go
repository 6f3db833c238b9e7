package lint

import (
	"github.com/sirkon/ioful/internal/iorules"
	"github.com/sirkon/ioful/internal/lir"
)

// Canonical operation names the classifier keys on. Frontends assign these
// during lowering instead of carrying surface spellings around.
const (
	OpRead          = "read"
	OpReadVectored  = "read_vectored"
	OpWrite         = "write"
	OpWriteVectored = "write_vectored"
)

// Unwrap-family method names: calls that force the success payload out of
// a fallible outcome and let the caller drop it.
const (
	ForceExpect       = "expect"
	ForceUnwrap       = "unwrap"
	ForceUnwrapOr     = "unwrap_or"
	ForceUnwrapOrElse = "unwrap_or_else"
)

// IsForceMethod reports whether name belongs to the unwrap family.
func IsForceMethod(name string) bool {
	switch name {
	case ForceExpect, ForceUnwrap, ForceUnwrapOr, ForceUnwrapOrElse:
		return true
	default:
		return false
	}
}

// Paths is the table of known interface paths the engine matches against.
// It is fixed for the lifetime of an engine.
type Paths struct {
	// ReadTrait is the capability interface of partial-transfer reads.
	ReadTrait lir.Reference

	// WriteTrait is the capability interface of partial-transfer writes.
	WriteTrait lir.Reference

	// OutcomeAdapter is the conversion function the propagation desugaring
	// may wrap the real call into before taking the outcome apart. Leave
	// zero when the frontend has no such helper.
	OutcomeAdapter lir.Reference
}

// TraitResolver answers whether a method call is statically dispatched
// through a given capability interface. Implementations must reflect true
// dispatch resolution, never method-name matching alone.
type TraitResolver interface {
	Dispatches(call *lir.ExprMethodCall, trait lir.Reference) bool
}

// TryDetector tells a genuine try-propagation construct apart from an
// ordinary match that merely looks similar.
type TryDetector interface {
	IsTryDesugar(m *lir.ExprMatch) bool
}

// Sink receives diagnostics. Emit is invoked at most once per checked
// statement, with the outer discarding expression as the location anchor.
type Sink interface {
	Emit(outer lir.Node, rule iorules.Rule)
}

// SourceTryDetector answers from the match node's recorded source alone.
type SourceTryDetector struct {
	// AllowStmtDiscard additionally accepts matches the lowering
	// synthesized for statements dropping their whole outcome.
	AllowStmtDiscard bool
}

// IsTryDesugar implements TryDetector.
func (d SourceTryDetector) IsTryDesugar(m *lir.ExprMatch) bool {
	switch m.Source {
	case lir.MatchSourceTryDesugar:
		return true
	case lir.MatchSourceStmtDiscard:
		return d.AllowStmtDiscard
	default:
		return false
	}
}

// Engine runs the filter → shape → classify pipeline over statements.
type Engine struct {
	paths  Paths
	traits TraitResolver
	try    TryDetector
	sink   Sink
}

// NewEngine builds an engine over the given collaborators.
func NewEngine(paths Paths, traits TraitResolver, try TryDetector, sink Sink) *Engine {
	return &Engine{
		paths:  paths,
		traits: traits,
		try:    try,
		sink:   sink,
	}
}

// CheckStmt classifies a single statement. It is total: unrecognized
// shapes mean no diagnostic, never an error.
func (e *Engine) CheckStmt(s lir.Stmt) {
	x, ok := stmtExpr(s)
	if !ok {
		return
	}

	inner, ok := e.matchShape(x)
	if !ok {
		return
	}

	e.classify(inner, x)
}

// stmtExpr yields the statement's expression when the statement's sole
// purpose is evaluating it for a side effect. Bindings keep their result
// reachable by name and are out of scope, whether or not the name is ever
// read later.
func stmtExpr(s lir.Stmt) (lir.Expr, bool) {
	switch v := s.(type) {
	case *lir.StmtExpr:
		return v.X, true
	case *lir.StmtBinding, *lir.StmtItem, *lir.StmtOther:
		return nil, false
	default:
		return nil, false
	}
}

// matchShape recognizes the two discard shapes and extracts the inner
// call whose transfer count gets dropped. Anything else is a deliberate
// no-match: chained and stored-then-ignored results stay undetected.
func (e *Engine) matchShape(x lir.Expr) (lir.Expr, bool) {
	switch v := x.(type) {
	case *lir.ExprMatch:
		// Propagate-and-discard. Only desugared propagation counts; an
		// ordinary match may inspect the payload inside its arms.
		if !e.try.IsTryDesugar(v) {
			return nil, false
		}

		// The desugaring may have wrapped the real call into the outcome
		// adapter. Look through a single-argument adapter call.
		if call, ok := v.Subject.(*lir.ExprCall); ok {
			path, ok := call.Callee.(*lir.ExprPath)
			if ok && e.paths.OutcomeAdapter != (lir.Reference{}) &&
				path.Ref == e.paths.OutcomeAdapter && len(call.Args) == 1 {
				return call.Args[0], true
			}
		}

		return v.Subject, true

	case *lir.ExprMethodCall:
		// Unwrap-family-and-discard: the call's first argument is the
		// candidate inner call.
		if IsForceMethod(v.Method) {
			return v.Recv, true
		}

		return nil, false

	default:
		return nil, false
	}
}

// classify resolves the inner call against the known capability
// interfaces and emits at most one diagnostic, anchored at the outer
// expression. A non-method-call inner expression is legal and produces
// nothing.
func (e *Engine) classify(inner, outer lir.Expr) {
	call, ok := inner.(*lir.ExprMethodCall)
	if !ok {
		return
	}

	// Resolved independently: a type could in principle implement both.
	isRead := e.traits.Dispatches(call, e.paths.ReadTrait)
	isWrite := e.traits.Dispatches(call, e.paths.WriteTrait)

	switch {
	case isRead && call.Method == OpRead:
		e.sink.Emit(outer, iorules.ReadAmountUnused())
	case isRead && call.Method == OpReadVectored:
		e.sink.Emit(outer, iorules.ReadVectoredAmountUnused())
	case isWrite && call.Method == OpWrite:
		e.sink.Emit(outer, iorules.WriteAmountUnused())
	case isWrite && call.Method == OpWriteVectored:
		e.sink.Emit(outer, iorules.WriteVectoredAmountUnused())
	}
}
