package lir

// ExprPath represents a reference to a declared entity used as an
// expression, typically the callee of a plain call.
//
//	adapt(…) // the callee is ExprPath{Ref: "example.com/pkg"."adapt"}
type ExprPath struct {
	Ref Reference
}

// ExprVar represents a plain variable reference, such as a call receiver.
type ExprVar struct {
	Name string
}

// ExprOther represents any expression kind the lowering does not model.
type ExprOther struct{}

func (*ExprPath) isNode()  {}
func (*ExprPath) isExpr()  {}
func (*ExprVar) isNode()   {}
func (*ExprVar) isExpr()   {}
func (*ExprOther) isNode() {}
func (*ExprOther) isExpr() {}
