package lir

// Node is the base interface implemented by all lir node types.
// Each node denotes a single construct identified in analyzed source code
// (e.g., an expression statement, a method call, a propagation match).
type Node interface {
	isNode()
}

// Stmt marks nodes that represent statements.
type Stmt interface {
	Node
	isStmt()
}

// Expr marks nodes that represent expressions.
type Expr interface {
	Node
	isExpr()
}

// Reference identifies a declared entity in analyzed source code, such as
// an interface, a function, or a method. It is used to match calls against
// the known capability interfaces and helper functions.
type Reference struct {
	// Package is the import path of the package that declares the entity
	// (e.g., "io", or "example.com/project/module").
	Package string

	// Type is the package-local type name. It is needed when a method of
	// a type should be referenced. Empty for free functions.
	Type string

	// Name is the declared identifier of the entity within its package.
	Name string
}
