package ast

import "iter"

// Visitor defines the interface for AST traversal. If Visit returns nil,
// children of the node are not visited. Otherwise, the returned Visitor
// is used to visit children.
type Visitor interface {
	Visit(node Node) (w Visitor)
}

// Walk traverses an AST in depth-first order. It starts by calling
// v.Visit(node); if the returned visitor w is not nil, Walk is invoked
// recursively with visitor w for each of the non-nil children of node.
func Walk(v Visitor, node Node) {
	if v = v.Visit(node); v == nil {
		return
	}
	for _, child := range Children(node) {
		Walk(v, child)
	}
}

// Children returns the non-nil direct children of node in source order.
func Children(node Node) []Node {
	var out []Node
	// A nil *Block converts to a non-nil Node, so those are checked below.
	add := func(n Node) {
		if n != nil {
			out = append(out, n)
		}
	}
	switch n := node.(type) {
	case *Program:
		for _, s := range n.Statements {
			add(s)
		}

	// Statements
	case *Let:
		add(n.Value)
	case *Const:
		add(n.Value)
	case *Function:
		if n.Body != nil {
			add(n.Body)
		}
	case *If:
		add(n.Condition)
		if n.Then != nil {
			add(n.Then)
		}
		add(n.Else)
	case *Return:
		add(n.Value)
	case *Block:
		for _, s := range n.Statements {
			add(s)
		}
	case *ExpressionStmt:
		add(n.Expr)
	case *Export:
		add(n.Statement)
	case *While:
		add(n.Condition)
		if n.Body != nil {
			add(n.Body)
		}
	case *For:
		add(n.Init)
		add(n.Condition)
		add(n.Update)
		if n.Body != nil {
			add(n.Body)
		}

	// Expressions
	case *Binary:
		add(n.Left)
		add(n.Right)
	case *Unary:
		add(n.Operand)
	case *Group:
		add(n.Inner)
	case *Call:
		add(n.Callee)
		for _, a := range n.Args {
			add(a)
		}
	case *Member:
		add(n.Object)
	case *Index:
		add(n.Object)
		add(n.Index)
	case *Array:
		for _, e := range n.Elements {
			add(e)
		}
	case *Assignment:
		add(n.Target)
		add(n.Value)
	case *CompoundAssignment:
		add(n.Target)
		add(n.Value)
	case *PreIncrement:
		add(n.Operand)
	case *PostIncrement:
		add(n.Operand)
	case *PreDecrement:
		add(n.Operand)
	case *PostDecrement:
		add(n.Operand)
	}
	return out
}

// Inspect traverses an AST in depth-first order. It calls f(node) for each
// node; if f returns true, Inspect invokes f recursively for each of the
// non-nil children of node.
func Inspect(node Node, f func(Node) bool) {
	Walk(inspector(f), node)
}

type inspector func(Node) bool

func (f inspector) Visit(node Node) Visitor {
	if f(node) {
		return f
	}
	return nil
}

// Preorder returns an iterator over all the nodes of the AST rooted at node
// in depth-first preorder.
func Preorder(root Node) iter.Seq[Node] {
	return func(yield func(Node) bool) {
		var visit func(Node) bool
		visit = func(n Node) bool {
			if !yield(n) {
				return false
			}
			for _, child := range Children(n) {
				if !visit(child) {
					return false
				}
			}
			return true
		}
		visit(root)
	}
}
