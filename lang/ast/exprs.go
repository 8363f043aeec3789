package ast

import "github.com/ferronlang/lox/lang/token"

type (
	// LiteralExpr is a number, string, boolean or nil literal.
	LiteralExpr struct {
		LineNo int
		Value  any // float64 | string | bool | nil
	}

	// GroupingExpr is a parenthesized expression.
	GroupingExpr struct {
		LineNo int
		Inner  Expr
	}

	// UnaryExpr is a prefix operator applied to a single operand, e.g. -x, !x.
	UnaryExpr struct {
		LineNo   int
		Operator token.Token
		Operand  Expr
	}

	// BinaryExpr is an arithmetic, comparison or equality operator.
	BinaryExpr struct {
		LineNo   int
		Left     Expr
		Operator token.Token
		Right    Expr
	}

	// LogicalExpr is 'and' or 'or', which short-circuit unlike BinaryExpr.
	LogicalExpr struct {
		LineNo   int
		Left     Expr
		Operator token.Token
		Right    Expr
	}

	// VariableExpr reads the value bound to Name. Site is filled by the parser
	// and keys the resolver's distance table.
	VariableExpr struct {
		LineNo int
		Name   string
		Site   SiteID
	}

	// AssignExpr assigns Value to the variable Name.
	AssignExpr struct {
		LineNo int
		Name   string
		Value  Expr
		Site   SiteID
	}

	// CallExpr invokes Callee with Args. ParenLine is the line of the closing
	// paren, used to report arity errors at the call site.
	CallExpr struct {
		LineNo    int
		Callee    Expr
		Args      []Expr
		ParenLine int
	}

	// GetExpr reads a field or bound method from an instance.
	GetExpr struct {
		LineNo int
		Object Expr
		Name   string
	}

	// SetExpr assigns a field on an instance.
	SetExpr struct {
		LineNo int
		Object Expr
		Name   string
		Value  Expr
	}

	// SelfExpr is a reference to the receiver inside a method body.
	SelfExpr struct {
		LineNo int
		Site   SiteID
	}

	// SuperExpr is a `super.method` reference inside a subclass method.
	SuperExpr struct {
		LineNo int
		Method string
		Site   SiteID
	}
)

func (n *LiteralExpr) Line() int  { return n.LineNo }
func (n *LiteralExpr) Walk(Visitor) {}
func (n *LiteralExpr) exprNode()  {}

func (n *GroupingExpr) Line() int         { return n.LineNo }
func (n *GroupingExpr) Walk(v Visitor)    { Walk(v, n.Inner) }
func (n *GroupingExpr) exprNode()         {}

func (n *UnaryExpr) Line() int      { return n.LineNo }
func (n *UnaryExpr) Walk(v Visitor) { Walk(v, n.Operand) }
func (n *UnaryExpr) exprNode()      {}

func (n *BinaryExpr) Line() int {
	return n.LineNo
}
func (n *BinaryExpr) Walk(v Visitor) {
	Walk(v, n.Left)
	Walk(v, n.Right)
}
func (n *BinaryExpr) exprNode() {}

func (n *LogicalExpr) Line() int { return n.LineNo }
func (n *LogicalExpr) Walk(v Visitor) {
	Walk(v, n.Left)
	Walk(v, n.Right)
}
func (n *LogicalExpr) exprNode() {}

func (n *VariableExpr) Line() int      { return n.LineNo }
func (n *VariableExpr) Walk(Visitor)   {}
func (n *VariableExpr) exprNode()      {}

func (n *AssignExpr) Line() int      { return n.LineNo }
func (n *AssignExpr) Walk(v Visitor) { Walk(v, n.Value) }
func (n *AssignExpr) exprNode()      {}

func (n *CallExpr) Line() int { return n.LineNo }
func (n *CallExpr) Walk(v Visitor) {
	Walk(v, n.Callee)
	for _, a := range n.Args {
		Walk(v, a)
	}
}
func (n *CallExpr) exprNode() {}

func (n *GetExpr) Line() int      { return n.LineNo }
func (n *GetExpr) Walk(v Visitor) { Walk(v, n.Object) }
func (n *GetExpr) exprNode()      {}

func (n *SetExpr) Line() int { return n.LineNo }
func (n *SetExpr) Walk(v Visitor) {
	Walk(v, n.Object)
	Walk(v, n.Value)
}
func (n *SetExpr) exprNode() {}

func (n *SelfExpr) Line() int    { return n.LineNo }
func (n *SelfExpr) Walk(Visitor) {}
func (n *SelfExpr) exprNode()    {}

func (n *SuperExpr) Line() int    { return n.LineNo }
func (n *SuperExpr) Walk(Visitor) {}
func (n *SuperExpr) exprNode()    {}
