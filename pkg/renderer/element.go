package renderer

import "github.com/reflow-ui/reflow/pkg/vdom"

// mountElement creates the host element, populates children and props,
// and inserts it before anchor.
func (r *Renderer) mountElement(vn *vdom.VNode, container any, anchor any) {
	r.metrics.countMount()

	el := r.adapter.CreateElement(vn.Tag)
	vn.El = el

	if vn.HasTextChildren() {
		r.hostOp("set_element_text")
		r.adapter.SetElementText(el, vn.Text)
	} else {
		for _, child := range vn.Children {
			r.patch(nil, child, el, nil)
		}
	}

	for key, value := range vn.Props {
		r.hostOp("patch_prop")
		r.adapter.PatchProp(el, key, nil, value)
	}

	r.insert(el, container, anchor)
}

// patchElement carries the host element over and applies prop and child
// deltas in place.
func (r *Renderer) patchElement(old, new *vdom.VNode) {
	el := old.El
	new.El = el

	oldProps, newProps := old.Props, new.Props
	for key, next := range newProps {
		prev, ok := oldProps[key]
		if !ok || !vdom.PropsEqual(prev, next) {
			r.hostOp("patch_prop")
			r.adapter.PatchProp(el, key, prev, next)
		}
	}
	for key, prev := range oldProps {
		if _, ok := newProps[key]; !ok {
			r.hostOp("patch_prop")
			r.adapter.PatchProp(el, key, prev, nil)
		}
	}

	r.patchChildren(old, new, el)
}
