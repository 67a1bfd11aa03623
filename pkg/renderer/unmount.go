package renderer

import (
	"github.com/reflow-ui/reflow/internal/errors"
	"github.com/reflow-ui/reflow/pkg/vdom"
)

// unmount tears a subtree down: components stop their render effect and
// recurse into their subtree, fragments recurse into children, host nodes
// recurse into children and then leave the host tree. Handler and
// attribute release is the adapter's contract when a node is removed.
func (r *Renderer) unmount(vn *vdom.VNode) {
	if vn == nil {
		return
	}

	switch vn.Kind {
	case vdom.KindComponent, vdom.KindFunc:
		inst, ok := vn.Inst.(*Instance)
		if !ok || inst == nil {
			return
		}
		if inst.effect != nil {
			inst.effect.Stop()
		}
		if inst.def.BeforeUnmount != nil {
			inst.def.BeforeUnmount(inst.scope)
		}
		if inst.subTree != nil {
			r.unmount(inst.subTree)
		}
		if inst.def.Unmounted != nil {
			inst.def.Unmounted(inst.scope)
		}
		r.metrics.countComponentUnmount()
		// Break the vnode→instance→subtree chain so the instance is
		// collectible.
		inst.subTree = nil
		inst.vnode = nil
		vn.Inst = nil

	case vdom.KindFragment:
		for _, child := range vn.Children {
			r.safeUnmount(child)
		}

	default:
		for _, child := range vn.Children {
			r.safeUnmount(child)
		}
		if vn.El != nil {
			r.metrics.countUnmount()
			r.hostOp("remove")
			r.adapter.Remove(vn.El)
			vn.El = nil
		}
	}
}

// safeUnmount isolates one child's teardown: a panic is reported and the
// caller proceeds with the remaining siblings.
func (r *Renderer) safeUnmount(vn *vdom.VNode) {
	defer func() {
		if rec := recover(); rec != nil {
			r.diag(errors.New("E021").Wrap(errors.Newf(errors.CategoryRuntime, "%v", rec)))
		}
	}()
	r.unmount(vn)
}
