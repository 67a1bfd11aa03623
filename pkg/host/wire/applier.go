package wire

import (
	"github.com/reflow-ui/reflow/internal/errors"
	"github.com/reflow-ui/reflow/pkg/renderer"
)

// HandlerStub stands in for an event handler on the receiving side of the
// wire. The real callback lives with the sender; the receiving host binds
// delegation for the key and routes events back out of band.
type HandlerStub struct {
	Key string
}

// Applier replays decoded frames onto a local host adapter, translating
// wire IDs back into host nodes.
type Applier struct {
	target renderer.Adapter
	nodes  map[uint64]any
}

// NewApplier creates an applier over the given host adapter.
func NewApplier(target renderer.Adapter) *Applier {
	return &Applier{
		target: target,
		nodes:  make(map[uint64]any),
	}
}

// Bind associates a wire ID with an existing host node. Container IDs
// from the sending adapter must be bound before the first Apply.
func (ap *Applier) Bind(id uint64, host any) {
	ap.nodes[id] = host
}

// Apply decodes one frame and replays its ops in order.
func (ap *Applier) Apply(data []byte) error {
	frame, err := DecodeFrame(data)
	if err != nil {
		return errors.New("E060").Wrap(err)
	}
	return ap.ApplyFrame(frame)
}

// ApplyFrame replays an already decoded frame.
func (ap *Applier) ApplyFrame(frame *Frame) error {
	for i := range frame.Ops {
		if err := ap.applyOp(&frame.Ops[i]); err != nil {
			return err
		}
	}
	return nil
}

func (ap *Applier) lookup(id uint64) (any, error) {
	if id == 0 {
		return nil, nil
	}
	node, ok := ap.nodes[id]
	if !ok {
		return nil, errors.New("E061")
	}
	return node, nil
}

func (ap *Applier) applyOp(op *Op) error {
	switch op.Code {
	case OpCreateElement:
		ap.nodes[op.Node] = ap.target.CreateElement(op.Tag)
		return nil

	case OpCreateText:
		ap.nodes[op.Node] = ap.target.CreateText(op.Value)
		return nil

	case OpCreateComment:
		ap.nodes[op.Node] = ap.target.CreateComment(op.Value)
		return nil

	case OpInsert:
		node, err := ap.lookup(op.Node)
		if err != nil {
			return err
		}
		parent, err := ap.lookup(op.Parent)
		if err != nil {
			return err
		}
		anchor, err := ap.lookup(op.Anchor)
		if err != nil {
			return err
		}
		ap.target.Insert(node, parent, anchor)
		return nil

	case OpRemove:
		node, err := ap.lookup(op.Node)
		if err != nil {
			return err
		}
		ap.target.Remove(node)
		delete(ap.nodes, op.Node)
		return nil

	case OpSetText:
		node, err := ap.lookup(op.Node)
		if err != nil {
			return err
		}
		ap.target.SetText(node, op.Value)
		return nil

	case OpSetElementText:
		node, err := ap.lookup(op.Node)
		if err != nil {
			return err
		}
		ap.target.SetElementText(node, op.Value)
		return nil

	case OpSetProp:
		node, err := ap.lookup(op.Node)
		if err != nil {
			return err
		}
		if op.Handler {
			ap.target.PatchProp(node, op.Key, nil, HandlerStub{Key: op.Key})
		} else {
			ap.target.PatchProp(node, op.Key, nil, op.Value)
		}
		return nil

	case OpRemoveProp:
		node, err := ap.lookup(op.Node)
		if err != nil {
			return err
		}
		ap.target.PatchProp(node, op.Key, nil, nil)
		return nil
	}

	return errors.New("E060")
}
