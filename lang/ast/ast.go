// Package ast defines the abstract syntax tree produced by the parser and
// annotated in place by the resolver.
package ast

// SiteID uniquely identifies one occurrence of a variable, self or super
// reference in the tree. The resolver uses it as the key into its distance
// table so that two occurrences of the same name are resolved independently.
type SiteID int

// Node is implemented by every AST node.
type Node interface {
	// Line returns the source line the node starts on, for diagnostics.
	Line() int

	// Walk lets v visit the node's children, implementing the Visitor pattern.
	Walk(v Visitor)
}

// Expr is implemented by every expression node.
type Expr interface {
	Node
	exprNode()
}

// Stmt is implemented by every statement node.
type Stmt interface {
	Node
	stmtNode()
}

// Program is the root of a parsed chunk: a flat sequence of declarations.
type Program struct {
	Stmts []Stmt
}
