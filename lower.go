package main

import (
	"fmt"
	"go/ast"
	"go/token"
	"go/types"
	"strings"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/types/typeutil"

	"github.com/sirkon/ioful/internal/iorules"
	"github.com/sirkon/ioful/internal/lint"
	"github.com/sirkon/ioful/internal/lir"
)

const directivePrefix = "//ioful:"

// lowerEngine translates Go statements into the engine's view. Go has no
// try sugar and no unwrap methods, so the lowering canonicalizes the
// local discard idioms instead:
//
//   - `_, err := r.Read(buf)`, count blanked with the error propagated,
//     becomes the try-desugar match shape;
//   - `r.Read(buf)` and `_, _ = r.Read(buf)`, the whole outcome dropped,
//     become the stmt-discard match shape;
//   - `must(w.Write(data))` with a registered must-style helper becomes
//     the unwrap-family method call shape.
//
// Statements that bind the count to a name are lowered as bindings and
// never flagged.
type lowerEngine struct {
	pass    *analysis.Pass
	ctx     *lint.Context
	caps    *knownCapabilities
	forces  *knownForceFuncs
	adapter lir.Reference // zero when no outcome adapter is configured
	r       *lint.ReporterPhase

	// calls maps lowered method calls back to their syntax for the
	// resolver.
	calls map[*lir.ExprMethodCall]*ast.CallExpr
}

func newLowerEngine(
	pass *analysis.Pass,
	ctx *lint.Context,
	caps *knownCapabilities,
	forces *knownForceFuncs,
	adapter lir.Reference,
	r *lint.ReporterPhase,
) *lowerEngine {
	return &lowerEngine{
		pass:    pass,
		ctx:     ctx,
		caps:    caps,
		forces:  forces,
		adapter: adapter,
		r:       r,
		calls:   map[*lir.ExprMethodCall]*ast.CallExpr{},
	}
}

// lowerStmt lowers one candidate statement. Statements without a
// candidate partial-transfer call inside are skipped entirely.
func (e *lowerEngine) lowerStmt(node ast.Node) (lir.Stmt, bool) {
	switch n := node.(type) {
	case *ast.ExprStmt:
		return e.lowerExprStmt(n)
	case *ast.AssignStmt:
		return e.lowerAssign(n)
	default:
		return nil, false
	}
}

func (e *lowerEngine) lowerExprStmt(stmt *ast.ExprStmt) (lir.Stmt, bool) {
	call, ok := stmt.X.(*ast.CallExpr)
	if !ok {
		return nil, false
	}

	// Force helper: must(w.Write(data)) forces the payload out and drops it.
	if kind, ok := e.forceKind(call); ok {
		if len(call.Args) < 1 {
			return nil, false
		}
		innerCall, ok := call.Args[0].(*ast.CallExpr)
		if !ok {
			return nil, false
		}
		inner, ok := e.lowerMethodCall(innerCall)
		if !ok {
			return nil, false
		}

		x := &lir.ExprMethodCall{
			Method: kind.Method(),
			Recv:   inner,
		}
		e.register(x, stmt)
		return &lir.StmtExpr{X: x}, true
	}

	// Bare call: Go drops the whole outcome at statement level.
	subject, ok := e.lowerSubject(call)
	if !ok {
		return nil, false
	}

	x := &lir.ExprMatch{
		Subject: subject,
		Source:  lir.MatchSourceStmtDiscard,
	}
	e.register(x, stmt)
	return &lir.StmtExpr{X: x}, true
}

func (e *lowerEngine) lowerAssign(stmt *ast.AssignStmt) (lir.Stmt, bool) {
	if len(stmt.Rhs) != 1 {
		return nil, false
	}
	call, ok := stmt.Rhs[0].(*ast.CallExpr)
	if !ok {
		return nil, false
	}

	countBlank := false
	allBlank := true
	var names []string
	for i, lh := range stmt.Lhs {
		id, ok := lh.(*ast.Ident)
		if !ok {
			// Assignments into fields or elements are out of scope.
			return nil, false
		}
		if id.Name == "_" {
			if i == 0 {
				countBlank = true
			}
			continue
		}
		allBlank = false
		names = append(names, id.Name)
	}

	subject, ok := e.lowerSubject(call)
	if !ok {
		return nil, false
	}

	switch {
	case allBlank:
		x := &lir.ExprMatch{
			Subject: subject,
			Source:  lir.MatchSourceStmtDiscard,
		}
		e.register(x, stmt)
		return &lir.StmtExpr{X: x, Discard: true}, true

	case countBlank:
		// `_, err := r.Read(buf)`: the count is discarded, the error
		// propagates. This is Go's spelling of try-propagation.
		x := &lir.ExprMatch{
			Subject: subject,
			Source:  lir.MatchSourceTryDesugar,
		}
		e.register(x, stmt)
		return &lir.StmtExpr{X: x, Discard: true}, true

	default:
		return &lir.StmtBinding{Names: names, X: subject}, true
	}
}

// lowerSubject lowers the fallible call a discarding construct is built
// around: either a capability method call, or the configured outcome
// adapter wrapping one.
func (e *lowerEngine) lowerSubject(call *ast.CallExpr) (lir.Expr, bool) {
	if e.isAdapter(call) && len(call.Args) == 1 {
		innerCall, ok := call.Args[0].(*ast.CallExpr)
		if !ok {
			return nil, false
		}
		inner, ok := e.lowerMethodCall(innerCall)
		if !ok {
			return nil, false
		}

		return &lir.ExprCall{
			Callee: &lir.ExprPath{Ref: e.adapter},
			Args:   []lir.Expr{inner},
		}, true
	}

	return e.lowerMethodCall(call)
}

// lowerMethodCall lowers a call going through a real method selection.
// Package-qualified calls and methods no capability declares are not
// candidates.
func (e *lowerEngine) lowerMethodCall(call *ast.CallExpr) (*lir.ExprMethodCall, bool) {
	sel, ok := call.Fun.(*ast.SelectorExpr)
	if !ok {
		return nil, false
	}
	s, ok := e.pass.TypesInfo.Selections[sel]
	if !ok || s.Kind() != types.MethodVal {
		return nil, false
	}

	op, ok := e.caps.operation(sel.Sel.Name)
	if !ok {
		return nil, false
	}

	m := &lir.ExprMethodCall{
		Method: op,
		Recv:   lowerRecv(sel.X),
		Args:   make([]lir.Expr, len(call.Args)),
	}
	for i := range call.Args {
		m.Args[i] = &lir.ExprOther{}
	}

	e.calls[m] = call
	return m, true
}

func lowerRecv(x ast.Expr) lir.Expr {
	if id, ok := x.(*ast.Ident); ok {
		return &lir.ExprVar{Name: id.Name}
	}
	return &lir.ExprOther{}
}

func (e *lowerEngine) forceKind(call *ast.CallExpr) (ForceKind, bool) {
	fn, ok := typeutil.Callee(e.pass.TypesInfo, call).(*types.Func)
	if !ok || fn.Pkg() == nil {
		return ForceKindInvalid, false
	}
	if sig, ok := fn.Type().(*types.Signature); !ok || sig.Recv() != nil {
		return ForceKindInvalid, false
	}

	return e.forces.kindOf(packagedFunc{
		pkgPath: fn.Pkg().Path(),
		name:    fn.Name(),
	})
}

func (e *lowerEngine) isAdapter(call *ast.CallExpr) bool {
	if e.adapter == (lir.Reference{}) || e.adapter.Type != "" {
		return false
	}

	fn, ok := typeutil.Callee(e.pass.TypesInfo, call).(*types.Func)
	if !ok || fn.Pkg() == nil {
		return false
	}

	return fn.Pkg().Path() == e.adapter.Package && fn.Name() == e.adapter.Name
}

// register records the outer discarding expression with its statement's
// span, the end extended to the end of line so a trailing same-line
// directive comment still falls inside.
func (e *lowerEngine) register(node lir.Node, stmt ast.Node) {
	e.ctx.Add(node, lint.ContextSpan{
		Start: stmt.Pos(),
		End:   e.lineEnd(stmt.End()),
	})
}

func (e *lowerEngine) lineEnd(pos token.Pos) token.Pos {
	f := e.pass.Fset.File(pos)
	if f == nil {
		return pos
	}

	line := f.Line(pos)
	if line >= f.LineCount() {
		return token.Pos(f.Base() + f.Size())
	}

	return f.LineStart(line+1) - 1
}

// collectIgnored scans file comments for //ioful:ignore directives and
// resolves each to the innermost registered statement covering it.
// Directives pointing at nothing are fine; unknown directives are not.
func (e *lowerEngine) collectIgnored() map[lir.Node]bool {
	out := map[lir.Node]bool{}
	for _, file := range e.pass.Files {
		for _, cg := range file.Comments {
			for _, c := range cg.List {
				if !strings.HasPrefix(c.Text, directivePrefix) {
					continue
				}

				name, _, _ := strings.Cut(strings.TrimPrefix(c.Text, directivePrefix), " ")
				if name != "ignore" {
					e.r.Report(
						iorules.UnknownDirective(),
						fmt.Sprintf("unknown directive %s%s", directivePrefix, name),
						c.Pos(),
					)
					e.pass.Reportf(c.Pos(), "unknown directive %s%s", directivePrefix, name)
					continue
				}

				if node := e.ctx.GetByPos(c.Pos()); node != nil {
					out[node] = true
				}
			}
		}
	}

	return out
}
