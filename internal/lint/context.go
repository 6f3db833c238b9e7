package lint

import (
	"go/token"

	"github.com/sirkon/rbtree"

	"github.com/sirkon/ioful/internal/lir"
)

func NewContext() *Context {
	return &Context{
		tree:  rbtree.New[*contextNodeSpan](),
		spans: map[lir.Node]ContextSpan{},
	}
}

// Context holds registered lowered nodes with their source spans for a
// single analysis scope. It answers two questions: which node covers a
// given position (for suppression directive attachment), and which span a
// node was registered with (for diagnostic placement).
type Context struct {
	tree  *rbtree.Tree[*contextNodeSpan]
	spans map[lir.Node]ContextSpan
}

// ContextSpan is a [Start, End] token range.
type ContextSpan struct {
	Start token.Pos
	End   token.Pos
}

// GetByPos returns the most specific (innermost) node covering pos.
func (c *Context) GetByPos(pos token.Pos) lir.Node {
	probe := &contextNodeSpan{start: pos, end: pos}
	res := c.tree.Search(probe)
	if res == nil {
		return nil
	}
	return descendSearch(res, pos)
}

// Span returns the span the node was registered with.
func (c *Context) Span(node lir.Node) (ContextSpan, bool) {
	s, ok := c.spans[node]
	return s, ok
}

// Add registers a node with its [start,end] token span.
// The RB-tree orders only disjoint spans; any overlap is reported back via
// InsertReturn, and we resolve it into a strict containment hierarchy.
// All ordering/balancing is handled by the underlying rbtree.
func (c *Context) Add(node lir.Node, s ContextSpan) {
	span := &contextNodeSpan{start: s.Start, end: s.End, node: node}
	attachInto(c.tree, span)
	c.spans[node] = s
}
