package lint

import (
	"reflect"
	"testing"

	"github.com/sirkon/deepequal"

	"github.com/sirkon/ioful/internal/iorules"
	"github.com/sirkon/ioful/internal/lir"
)

var (
	testReadTrait  = lir.Reference{Package: "io", Name: "Reader"}
	testWriteTrait = lir.Reference{Package: "io", Name: "Writer"}
	testAdapterRef = lir.Reference{Package: "example.com/outcome", Name: "Into"}
)

type fakeResolver struct {
	read  map[*lir.ExprMethodCall]bool
	write map[*lir.ExprMethodCall]bool
}

func newFakeResolver() *fakeResolver {
	return &fakeResolver{
		read:  map[*lir.ExprMethodCall]bool{},
		write: map[*lir.ExprMethodCall]bool{},
	}
}

func (f *fakeResolver) Dispatches(call *lir.ExprMethodCall, trait lir.Reference) bool {
	switch trait {
	case testReadTrait:
		return f.read[call]
	case testWriteTrait:
		return f.write[call]
	default:
		return false
	}
}

type emitted struct {
	Outer lir.Node
	Rule  iorules.Rule
}

type fakeSink struct {
	emits []emitted
}

func (s *fakeSink) Emit(outer lir.Node, rule iorules.Rule) {
	s.emits = append(s.emits, emitted{Outer: outer, Rule: rule})
}

func methodCall(op string) *lir.ExprMethodCall {
	return &lir.ExprMethodCall{
		Method: op,
		Recv:   &lir.ExprVar{Name: "x"},
		Args:   []lir.Expr{&lir.ExprOther{}},
	}
}

func TestEngineCheckStmt(t *testing.T) {
	tests := []struct {
		name      string
		allowStmt bool
		build     func(res *fakeResolver) (lir.Stmt, []emitted)
	}{
		{
			name: "binding is never flagged even with a dispatching call",
			build: func(res *fakeResolver) (lir.Stmt, []emitted) {
				call := methodCall(OpRead)
				res.read[call] = true
				return &lir.StmtBinding{Names: []string{"n", "err"}, X: call}, nil
			},
		},
		{
			name: "item statement yields nothing",
			build: func(res *fakeResolver) (lir.Stmt, []emitted) {
				return &lir.StmtItem{Ref: lir.Reference{Package: "p", Name: "helper"}}, nil
			},
		},
		{
			name: "other statement yields nothing",
			build: func(res *fakeResolver) (lir.Stmt, []emitted) {
				return &lir.StmtOther{}, nil
			},
		},
		{
			name: "propagated read",
			build: func(res *fakeResolver) (lir.Stmt, []emitted) {
				call := methodCall(OpRead)
				res.read[call] = true
				x := &lir.ExprMatch{Subject: call, Source: lir.MatchSourceTryDesugar}
				return &lir.StmtExpr{X: x},
					[]emitted{{Outer: x, Rule: iorules.ReadAmountUnused()}}
			},
		},
		{
			name: "unwrapped write",
			build: func(res *fakeResolver) (lir.Stmt, []emitted) {
				call := methodCall(OpWrite)
				res.write[call] = true
				x := &lir.ExprMethodCall{Method: ForceUnwrap, Recv: call}
				return &lir.StmtExpr{X: x},
					[]emitted{{Outer: x, Rule: iorules.WriteAmountUnused()}}
			},
		},
		{
			name: "vectored read omits the suggestion rule",
			build: func(res *fakeResolver) (lir.Stmt, []emitted) {
				call := methodCall(OpReadVectored)
				res.read[call] = true
				x := &lir.ExprMatch{Subject: call, Source: lir.MatchSourceTryDesugar}
				return &lir.StmtExpr{X: x},
					[]emitted{{Outer: x, Rule: iorules.ReadVectoredAmountUnused()}}
			},
		},
		{
			name: "vectored write under unwrap_or_else",
			build: func(res *fakeResolver) (lir.Stmt, []emitted) {
				call := methodCall(OpWriteVectored)
				res.write[call] = true
				x := &lir.ExprMethodCall{
					Method: ForceUnwrapOrElse,
					Recv:   call,
					Args:   []lir.Expr{&lir.ExprOther{}},
				}
				return &lir.StmtExpr{X: x},
					[]emitted{{Outer: x, Rule: iorules.WriteVectoredAmountUnused()}}
			},
		},
		{
			name: "same method name without capability dispatch",
			build: func(res *fakeResolver) (lir.Stmt, []emitted) {
				call := methodCall(OpRead) // never marked in the resolver
				x := &lir.ExprMatch{Subject: call, Source: lir.MatchSourceTryDesugar}
				return &lir.StmtExpr{X: x}, nil
			},
		},
		{
			name: "ordinary match is not a discard",
			build: func(res *fakeResolver) (lir.Stmt, []emitted) {
				call := methodCall(OpRead)
				res.read[call] = true
				x := &lir.ExprMatch{Subject: call, Source: lir.MatchSourceNormal}
				return &lir.StmtExpr{X: x}, nil
			},
		},
		{
			name: "stmt discard rejected without permission",
			build: func(res *fakeResolver) (lir.Stmt, []emitted) {
				call := methodCall(OpRead)
				res.read[call] = true
				x := &lir.ExprMatch{Subject: call, Source: lir.MatchSourceStmtDiscard}
				return &lir.StmtExpr{X: x}, nil
			},
		},
		{
			name:      "stmt discard accepted when allowed",
			allowStmt: true,
			build: func(res *fakeResolver) (lir.Stmt, []emitted) {
				call := methodCall(OpRead)
				res.read[call] = true
				x := &lir.ExprMatch{Subject: call, Source: lir.MatchSourceStmtDiscard}
				return &lir.StmtExpr{X: x},
					[]emitted{{Outer: x, Rule: iorules.ReadAmountUnused()}}
			},
		},
		{
			name: "adapter wrap is looked through",
			build: func(res *fakeResolver) (lir.Stmt, []emitted) {
				call := methodCall(OpRead)
				res.read[call] = true
				x := &lir.ExprMatch{
					Subject: &lir.ExprCall{
						Callee: &lir.ExprPath{Ref: testAdapterRef},
						Args:   []lir.Expr{call},
					},
					Source: lir.MatchSourceTryDesugar,
				}
				return &lir.StmtExpr{X: x},
					[]emitted{{Outer: x, Rule: iorules.ReadAmountUnused()}}
			},
		},
		{
			name: "adapter with wrong arity stays opaque",
			build: func(res *fakeResolver) (lir.Stmt, []emitted) {
				call := methodCall(OpRead)
				res.read[call] = true
				x := &lir.ExprMatch{
					Subject: &lir.ExprCall{
						Callee: &lir.ExprPath{Ref: testAdapterRef},
						Args:   []lir.Expr{call, &lir.ExprOther{}},
					},
					Source: lir.MatchSourceTryDesugar,
				}
				return &lir.StmtExpr{X: x}, nil
			},
		},
		{
			name: "foreign plain call subject produces nothing",
			build: func(res *fakeResolver) (lir.Stmt, []emitted) {
				x := &lir.ExprMatch{
					Subject: &lir.ExprCall{
						Callee: &lir.ExprPath{Ref: lir.Reference{Package: "p", Name: "fetch"}},
						Args:   []lir.Expr{&lir.ExprOther{}},
					},
					Source: lir.MatchSourceTryDesugar,
				}
				return &lir.StmtExpr{X: x}, nil
			},
		},
		{
			name: "unwrap over a non-call is silently ignored",
			build: func(res *fakeResolver) (lir.Stmt, []emitted) {
				x := &lir.ExprMethodCall{Method: ForceUnwrap, Recv: &lir.ExprVar{Name: "res"}}
				return &lir.StmtExpr{X: x}, nil
			},
		},
		{
			name: "bare capability call is not a recognized discard shape",
			build: func(res *fakeResolver) (lir.Stmt, []emitted) {
				call := methodCall(OpRead)
				res.read[call] = true
				return &lir.StmtExpr{X: call}, nil
			},
		},
		{
			name: "read row wins when both capabilities dispatch",
			build: func(res *fakeResolver) (lir.Stmt, []emitted) {
				call := methodCall(OpRead)
				res.read[call] = true
				res.write[call] = true
				x := &lir.ExprMatch{Subject: call, Source: lir.MatchSourceTryDesugar}
				return &lir.StmtExpr{X: x},
					[]emitted{{Outer: x, Rule: iorules.ReadAmountUnused()}}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := newFakeResolver()
			stmt, want := tt.build(res)

			var sink fakeSink
			engine := NewEngine(
				Paths{
					ReadTrait:      testReadTrait,
					WriteTrait:     testWriteTrait,
					OutcomeAdapter: testAdapterRef,
				},
				res,
				SourceTryDetector{AllowStmtDiscard: tt.allowStmt},
				&sink,
			)

			engine.CheckStmt(stmt)

			if !reflect.DeepEqual(want, sink.emits) {
				deepequal.SideBySide(t, "emissions", want, sink.emits)
			}
		})
	}
}

func TestEngineIdempotence(t *testing.T) {
	res := newFakeResolver()
	call := methodCall(OpWrite)
	res.write[call] = true
	x := &lir.ExprMatch{Subject: call, Source: lir.MatchSourceTryDesugar}
	stmt := &lir.StmtExpr{X: x}

	var sink fakeSink
	engine := NewEngine(
		Paths{ReadTrait: testReadTrait, WriteTrait: testWriteTrait},
		res,
		SourceTryDetector{},
		&sink,
	)

	engine.CheckStmt(stmt)
	engine.CheckStmt(stmt)

	want := []emitted{
		{Outer: x, Rule: iorules.WriteAmountUnused()},
		{Outer: x, Rule: iorules.WriteAmountUnused()},
	}
	if !reflect.DeepEqual(want, sink.emits) {
		deepequal.SideBySide(t, "emissions", want, sink.emits)
	}
}
