package lir

// ExprMethodCall represents a method call with a receiver.
//
//	w.Write(data) // Method: "write", Recv: <ExprFor>(w), Args: [<ExprFor>(data)]
//
// Method names are canonical operation names assigned by the lowering, not
// necessarily the spelling used in the surface syntax.
type ExprMethodCall struct {
	Method string
	Recv   Expr
	Args   []Expr
}

// ExprCall represents a plain function call without a receiver.
//
//	adapt(w.Write(data)) // Callee: <ExprPath>, Args: [<ExprMethodCall>]
type ExprCall struct {
	Callee Expr
	Args   []Expr
}

func (*ExprMethodCall) isNode() {}
func (*ExprMethodCall) isExpr() {}
func (*ExprCall) isNode()       {}
func (*ExprCall) isExpr()       {}
