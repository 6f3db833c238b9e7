package lir

// StmtExpr represents a statement whose only purpose is evaluating an
// expression for its side effect. The value of X is not bound anywhere.
//
//	r.Read(buf)         // X: <method call>, Discard: false
//	_, _ = r.Read(buf)  // X: <match over the call>, Discard: true
//
// Discard distinguishes the form with an explicit trailing discard marker
// from the plain form. Both are in scope for the engine.
type StmtExpr struct {
	X       Expr
	Discard bool
}

// StmtBinding represents a statement that binds results to names. Even if
// a bound name is never read afterwards, the statement is out of scope:
// tracking bindings past the statement is not done here.
//
//	n, err := r.Read(buf) // Names: ["n", "err"]
type StmtBinding struct {
	Names []string
	X     Expr
}

// StmtItem represents a nested declaration (a type, a function, a
// constant) appearing in statement position.
type StmtItem struct {
	Ref Reference
}

// StmtOther represents any statement kind the lowering does not model.
type StmtOther struct{}

func (*StmtExpr) isNode()    {}
func (*StmtExpr) isStmt()    {}
func (*StmtBinding) isNode() {}
func (*StmtBinding) isStmt() {}
func (*StmtItem) isNode()    {}
func (*StmtItem) isStmt()    {}
func (*StmtOther) isNode()   {}
func (*StmtOther) isStmt()   {}
