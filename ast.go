package crabculator

import "strings"

// Expr is a node in the abstract syntax tree of an expression. Every
// implementation carries the source span covering it, used exclusively for
// diagnostics; a parent's span always covers its children's spans (and, for
// unary, factorial and call nodes, also the operator or name and parens).
type Expr interface {
	Span() Span
	String() string
}

// UnaryOp identifies the operator of a UnaryExpr.
type UnaryOp int8

const (
	UnaryNeg  UnaryOp = iota // -x
	UnaryPlus                // +x
)

func (op UnaryOp) String() string {
	if op == UnaryNeg {
		return "-"
	}
	return "+"
}

// BinaryOp identifies the operator of a BinaryExpr.
type BinaryOp int8

const (
	BinaryAdd BinaryOp = iota
	BinarySub
	BinaryMul
	BinaryDiv
	BinaryMod
	BinaryPow
)

func (op BinaryOp) String() string {
	switch op {
	case BinaryAdd:
		return "+"
	case BinarySub:
		return "-"
	case BinaryMul:
		return "*"
	case BinaryDiv:
		return "/"
	case BinaryMod:
		return "%"
	case BinaryPow:
		return "^"
	default:
		return "?"
	}
}

// NumberExpr is a numeric literal.
type NumberExpr struct {
	Value float64
	Sp    Span
}

func (n *NumberExpr) Span() Span     { return n.Sp }
func (n *NumberExpr) String() string { return formatFloat(n.Value) }

// VariableExpr is a reference to a name resolved against the evaluation
// context.
type VariableExpr struct {
	Name string
	Sp   Span
}

func (n *VariableExpr) Span() Span    { return n.Sp }
func (n *VariableExpr) String() string { return n.Name }

// UnaryExpr is a prefix `+` or `-` applied to Child.
type UnaryExpr struct {
	Op    UnaryOp
	Child Expr
	Sp    Span
}

func (n *UnaryExpr) Span() Span      { return n.Sp }
func (n *UnaryExpr) String() string { return n.Op.String() + n.Child.String() }

// BinaryExpr is a left/right operator application. OpSpan covers just the
// operator token (not the whole expression); DivisionByZeroError and
// similar diagnostics point at OpSpan rather than Sp.
type BinaryExpr struct {
	Op     BinaryOp
	Left   Expr
	Right  Expr
	OpSpan Span
	Sp     Span
}

func (n *BinaryExpr) Span() Span { return n.Sp }
func (n *BinaryExpr) String() string {
	return "(" + n.Left.String() + " " + n.Op.String() + " " + n.Right.String() + ")"
}

// FactorialExpr is the postfix `!` operator.
type FactorialExpr struct {
	Child Expr
	Sp    Span
}

func (n *FactorialExpr) Span() Span      { return n.Sp }
func (n *FactorialExpr) String() string { return n.Child.String() + "!" }

// CallExpr is a function call with zero or more argument expressions.
type CallExpr struct {
	Name     string
	NameSpan Span
	Args     []Expr
	Sp       Span
}

func (n *CallExpr) Span() Span { return n.Sp }
func (n *CallExpr) String() string {
	var b strings.Builder
	b.WriteString(n.Name)
	b.WriteByte('(')
	for i, a := range n.Args {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(a.String())
	}
	b.WriteByte(')')
	return b.String()
}

var (
	_ Expr = (*NumberExpr)(nil)
	_ Expr = (*VariableExpr)(nil)
	_ Expr = (*UnaryExpr)(nil)
	_ Expr = (*BinaryExpr)(nil)
	_ Expr = (*FactorialExpr)(nil)
	_ Expr = (*CallExpr)(nil)
)

// Line is the parse result of one source line: exactly one of the three
// kinds spec.md §4.2 defines.
type Line struct {
	Kind LineKind

	// Name/NameSpan are valid only when Kind == LineAssignment.
	Name     string
	NameSpan Span

	// Expr is the expression to evaluate. Valid when Kind != LineEmpty.
	Expr Expr
}

// LineKind classifies a parsed line.
type LineKind int8

const (
	LineEmpty LineKind = iota
	LineAssignment
	LineExpression
)
