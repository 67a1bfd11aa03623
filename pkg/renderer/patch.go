package renderer

import "github.com/reflow-ui/reflow/pkg/vdom"

// patch reconciles a (old, new) vnode pair inside container, dispatching
// on the new node's kind. A node-type mismatch unmounts the old tree and
// treats the new one as a pure mount. anchor is the host node new nodes
// are inserted before; nil appends.
func (r *Renderer) patch(old, new *vdom.VNode, container any, anchor any) {
	if old == new {
		return
	}
	if old != nil && !old.SameType(new) {
		r.unmount(old)
		old = nil
	}

	switch new.Kind {
	case vdom.KindElement:
		if old == nil {
			r.mountElement(new, container, anchor)
		} else {
			r.patchElement(old, new)
		}

	case vdom.KindText:
		if old == nil {
			el := r.adapter.CreateText(new.Text)
			new.El = el
			r.insert(el, container, anchor)
		} else {
			new.El = old.El
			if old.Text != new.Text {
				r.hostOp("set_text")
				r.adapter.SetText(new.El, new.Text)
			}
		}

	case vdom.KindComment:
		if old == nil {
			el := r.adapter.CreateComment(new.Text)
			new.El = el
			r.insert(el, container, anchor)
		} else {
			new.El = old.El
			if old.Text != new.Text {
				r.hostOp("set_text")
				r.adapter.SetText(new.El, new.Text)
			}
		}

	case vdom.KindFragment:
		if old == nil {
			for _, child := range new.Children {
				r.patch(nil, child, container, anchor)
			}
		} else {
			r.patchChildren(old, new, container)
		}

	case vdom.KindComponent, vdom.KindFunc:
		if old == nil {
			r.mountComponent(new, container, anchor)
		} else {
			r.patchComponent(old, new)
		}
	}
}

// insert routes a host insert through the adapter, counting it.
func (r *Renderer) insert(node, container, anchor any) {
	r.hostOp("insert")
	r.adapter.Insert(node, container, anchor)
}

// hostEl resolves the host node that anchors a vnode: its own el, a
// component's subtree el, or a fragment's first materialised child.
func hostEl(vn *vdom.VNode) any {
	if vn == nil {
		return nil
	}
	if vn.El != nil {
		return vn.El
	}
	switch vn.Kind {
	case vdom.KindComponent, vdom.KindFunc:
		if inst, ok := vn.Inst.(*Instance); ok && inst != nil {
			return hostEl(inst.subTree)
		}
	case vdom.KindFragment:
		for _, child := range vn.Children {
			if el := hostEl(child); el != nil {
				return el
			}
		}
	}
	return nil
}
