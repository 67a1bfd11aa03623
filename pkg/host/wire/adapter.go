package wire

import (
	"reflect"
	"sync"
)

// NodeRef is the host-node stand-in on the sending side: an opaque,
// comparable handle carrying only the wire ID.
type NodeRef struct {
	id uint64
}

// ID returns the node's wire ID.
func (n *NodeRef) ID() uint64 {
	return n.id
}

// Adapter implements the renderer's host adapter by buffering mutations
// as wire ops. Flush drains the buffer into an encoded frame; a receiver
// replays it with an Applier.
type Adapter struct {
	mu     sync.Mutex
	nextID uint64
	seq    uint64
	ops    []Op
}

// NewAdapter creates a wire adapter.
func NewAdapter() *Adapter {
	return &Adapter{}
}

// NewContainer allocates a container node. Its ID must be bound on the
// receiving Applier before the first frame is applied.
func (a *Adapter) NewContainer() *NodeRef {
	return a.alloc()
}

func (a *Adapter) alloc() *NodeRef {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.nextID++
	return &NodeRef{id: a.nextID}
}

func (a *Adapter) push(op Op) {
	a.mu.Lock()
	a.ops = append(a.ops, op)
	a.mu.Unlock()
}

// Pending returns the number of buffered ops.
func (a *Adapter) Pending() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.ops)
}

// Flush encodes the buffered ops as a frame and clears the buffer.
// Returns nil when nothing is buffered.
func (a *Adapter) Flush() []byte {
	a.mu.Lock()
	defer a.mu.Unlock()

	if len(a.ops) == 0 {
		return nil
	}
	a.seq++
	frame := &Frame{Seq: a.seq, Ops: a.ops}
	a.ops = nil
	return EncodeFrame(frame)
}

// FlushTo flushes the buffered ops into conn, if any.
func (a *Adapter) FlushTo(conn *Conn) error {
	frame := a.Flush()
	if frame == nil {
		return nil
	}
	return conn.WriteFrame(frame)
}

func refID(v any) uint64 {
	if v == nil {
		return 0
	}
	if ref, ok := v.(*NodeRef); ok && ref != nil {
		return ref.id
	}
	return 0
}

// CreateElement implements the renderer adapter.
func (a *Adapter) CreateElement(tag string) any {
	ref := a.alloc()
	a.push(Op{Code: OpCreateElement, Node: ref.id, Tag: tag})
	return ref
}

// CreateText implements the renderer adapter.
func (a *Adapter) CreateText(text string) any {
	ref := a.alloc()
	a.push(Op{Code: OpCreateText, Node: ref.id, Value: text})
	return ref
}

// CreateComment implements the renderer adapter.
func (a *Adapter) CreateComment(text string) any {
	ref := a.alloc()
	a.push(Op{Code: OpCreateComment, Node: ref.id, Value: text})
	return ref
}

// Insert implements the renderer adapter.
func (a *Adapter) Insert(node, parent, anchor any) {
	a.push(Op{
		Code:   OpInsert,
		Node:   refID(node),
		Parent: refID(parent),
		Anchor: refID(anchor),
	})
}

// Remove implements the renderer adapter.
func (a *Adapter) Remove(node any) {
	a.push(Op{Code: OpRemove, Node: refID(node)})
}

// SetText implements the renderer adapter.
func (a *Adapter) SetText(node any, text string) {
	a.push(Op{Code: OpSetText, Node: refID(node), Value: text})
}

// SetElementText implements the renderer adapter.
func (a *Adapter) SetElementText(el any, text string) {
	a.push(Op{Code: OpSetElementText, Node: refID(el), Value: text})
}

// PatchProp implements the renderer adapter. Handler values cannot cross
// the wire; they are sent as a Handler-flagged SetProp so the receiving
// side can bind its own delegation, with events traveling back out of
// band.
func (a *Adapter) PatchProp(el any, key string, prev, next any) {
	node := refID(el)

	if next == nil {
		a.push(Op{Code: OpRemoveProp, Node: node, Key: key})
		return
	}
	if reflect.ValueOf(next).Kind() == reflect.Func {
		a.push(Op{Code: OpSetProp, Node: node, Key: key, Handler: true})
		return
	}
	a.push(Op{Code: OpSetProp, Node: node, Key: key, Value: valueString(next)})
}
