// Package memdom is an in-memory host-node adapter for the Reflow
// renderer. It maintains a concrete node tree and records every mutation
// it is asked to perform, which makes it the reference host for tests and
// benchmarks.
package memdom

import (
	"fmt"
	"sort"
	"strings"
)

// NodeKind discriminates the in-memory node types.
type NodeKind uint8

const (
	NodeElement NodeKind = iota
	NodeText
	NodeComment
)

// Node is an in-memory host node.
type Node struct {
	Kind     NodeKind
	Tag      string
	Text     string
	Attrs    map[string]any
	Handlers map[string]any
	Children []*Node

	parent *Node
}

// Parent returns the node's current parent, or nil when detached.
func (n *Node) Parent() *Node {
	return n.parent
}

// Index returns the node's position among its siblings, or -1.
func (n *Node) Index() int {
	if n.parent == nil {
		return -1
	}
	for i, c := range n.parent.Children {
		if c == n {
			return i
		}
	}
	return -1
}

// String renders the subtree as HTML-ish text for assertions and
// debugging. Attributes print in sorted order; handlers are omitted.
func (n *Node) String() string {
	var b strings.Builder
	n.writeTo(&b)
	return b.String()
}

func (n *Node) writeTo(b *strings.Builder) {
	switch n.Kind {
	case NodeText:
		b.WriteString(n.Text)
	case NodeComment:
		b.WriteString("<!--")
		b.WriteString(n.Text)
		b.WriteString("-->")
	default:
		b.WriteByte('<')
		b.WriteString(n.Tag)
		keys := make([]string, 0, len(n.Attrs))
		for k := range n.Attrs {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Fprintf(b, " %s=%q", k, fmt.Sprint(n.Attrs[k]))
		}
		b.WriteByte('>')
		if n.Text != "" {
			b.WriteString(n.Text)
		}
		for _, c := range n.Children {
			c.writeTo(b)
		}
		b.WriteString("</")
		b.WriteString(n.Tag)
		b.WriteByte('>')
	}
}

// detach removes the node from its parent's child list.
func (n *Node) detach() {
	p := n.parent
	if p == nil {
		return
	}
	for i, c := range p.Children {
		if c == n {
			p.Children = append(p.Children[:i], p.Children[i+1:]...)
			break
		}
	}
	n.parent = nil
}

// Call records one host mutation.
type Call struct {
	Op     string
	Target *Node
	Key    string
	Value  any
}

// Adapter implements the renderer's host adapter over an in-memory tree.
type Adapter struct {
	calls []Call
}

// New creates an adapter.
func New() *Adapter {
	return &Adapter{}
}

// NewContainer returns a detached element usable as a render container.
func (a *Adapter) NewContainer() *Node {
	return &Node{Kind: NodeElement, Tag: "#root", Attrs: map[string]any{}}
}

// Calls returns the mutations recorded so far.
func (a *Adapter) Calls() []Call {
	return a.calls
}

// CallOps returns just the operation names, in order.
func (a *Adapter) CallOps() []string {
	ops := make([]string, len(a.calls))
	for i, c := range a.calls {
		ops[i] = c.Op
	}
	return ops
}

// ResetCalls clears the recorded mutations.
func (a *Adapter) ResetCalls() {
	a.calls = nil
}

func (a *Adapter) record(op string, target *Node, key string, value any) {
	a.calls = append(a.calls, Call{Op: op, Target: target, Key: key, Value: value})
}

// CreateElement implements renderer.Adapter.
func (a *Adapter) CreateElement(tag string) any {
	n := &Node{Kind: NodeElement, Tag: tag, Attrs: map[string]any{}}
	a.record("createElement", n, tag, nil)
	return n
}

// CreateText implements renderer.Adapter.
func (a *Adapter) CreateText(text string) any {
	n := &Node{Kind: NodeText, Text: text}
	a.record("createText", n, "", text)
	return n
}

// CreateComment implements renderer.Adapter.
func (a *Adapter) CreateComment(text string) any {
	n := &Node{Kind: NodeComment, Text: text}
	a.record("createComment", n, "", text)
	return n
}

// Insert implements renderer.Adapter. An insert of an attached node is a
// move: it detaches first.
func (a *Adapter) Insert(node, parent, anchor any) {
	n := node.(*Node)
	p := parent.(*Node)

	n.detach()
	n.parent = p

	if anchor == nil {
		p.Children = append(p.Children, n)
	} else {
		at := anchor.(*Node)
		idx := len(p.Children)
		for i, c := range p.Children {
			if c == at {
				idx = i
				break
			}
		}
		p.Children = append(p.Children, nil)
		copy(p.Children[idx+1:], p.Children[idx:])
		p.Children[idx] = n
	}

	a.record("insert", n, "", anchor)
}

// Remove implements renderer.Adapter. Handlers registered through
// PatchProp die with the node.
func (a *Adapter) Remove(node any) {
	n := node.(*Node)
	n.detach()
	n.Handlers = nil
	a.record("remove", n, "", nil)
}

// SetText implements renderer.Adapter.
func (a *Adapter) SetText(node any, text string) {
	n := node.(*Node)
	n.Text = text
	a.record("setText", n, "", text)
}

// SetElementText implements renderer.Adapter.
func (a *Adapter) SetElementText(el any, text string) {
	n := el.(*Node)
	for _, c := range n.Children {
		c.parent = nil
	}
	n.Children = nil
	n.Text = text
	a.record("setElementText", n, "", text)
}

// PatchProp implements renderer.Adapter. Keys starting with "on" bind
// event handlers; a nil next removes.
func (a *Adapter) PatchProp(el any, key string, prev, next any) {
	n := el.(*Node)

	if len(key) > 2 && strings.EqualFold(key[:2], "on") {
		if n.Handlers == nil {
			n.Handlers = map[string]any{}
		}
		if next == nil {
			delete(n.Handlers, key)
		} else {
			n.Handlers[key] = next
		}
	} else if next == nil {
		delete(n.Attrs, key)
	} else {
		n.Attrs[key] = next
	}

	a.record("patchProp", n, key, next)
}

// Fire invokes a bound handler on a node, simulating a host event.
// Returns false when no handler is bound.
func (a *Adapter) Fire(node *Node, event string, args ...any) bool {
	if node == nil || node.Handlers == nil {
		return false
	}
	key := "on" + strings.ToUpper(event[:1]) + event[1:]
	h, ok := node.Handlers[key]
	if !ok {
		return false
	}
	switch fn := h.(type) {
	case func():
		fn()
	case func(...any):
		fn(args...)
	case func(any):
		var first any
		if len(args) > 0 {
			first = args[0]
		}
		fn(first)
	default:
		return false
	}
	return true
}
