package renderer

import (
	"github.com/reflow-ui/reflow/internal/errors"
	"github.com/reflow-ui/reflow/pkg/vdom"
)

// patchChildren reconciles the children of a pair of same-type nodes.
// The four shape cases: sequence vs sequence goes through the keyed fast
// diff; everything else degenerates to clear-and-rebuild.
func (r *Renderer) patchChildren(old, new *vdom.VNode, container any) {
	switch {
	case new.Children != nil:
		if old.Children != nil {
			r.patchKeyedChildren(old.Children, new.Children, container)
			return
		}
		// Old was text or absent: clear, then mount each new child.
		if old.Text != "" {
			r.hostOp("set_element_text")
			r.adapter.SetElementText(container, "")
		}
		for _, child := range new.Children {
			r.patch(nil, child, container, nil)
		}

	case new.Text != "":
		if old.Children != nil {
			for _, child := range old.Children {
				r.safeUnmount(child)
			}
		}
		if old.Text != new.Text {
			r.hostOp("set_element_text")
			r.adapter.SetElementText(container, new.Text)
		}

	default: // new has no children
		if old.Children != nil {
			for _, child := range old.Children {
				r.safeUnmount(child)
			}
		} else if old.Text != "" {
			r.hostOp("set_element_text")
			r.adapter.SetElementText(container, "")
		}
	}
}

// patchKeyedChildren aligns two ordered child sequences: trim the common
// prefix and suffix, handle the pure mount/unmount tails, and resolve the
// remaining middle with a longest-increasing-subsequence pass so host
// moves are minimal for the chosen matching.
func (r *Renderer) patchKeyedChildren(oldC, newC []*vdom.VNode, container any) {
	if r.debug {
		r.validateKeys(newC)
	}

	i := 0
	oldEnd := len(oldC) - 1
	newEnd := len(newC) - 1

	// Phase 1: common prefix.
	for i <= oldEnd && i <= newEnd && oldC[i].Key == newC[i].Key {
		r.patch(oldC[i], newC[i], container, nil)
		i++
	}

	// Phase 2: common suffix.
	for oldEnd >= i && newEnd >= i && oldC[oldEnd].Key == newC[newEnd].Key {
		r.patch(oldC[oldEnd], newC[newEnd], container, nil)
		oldEnd--
		newEnd--
	}

	switch {
	case i > oldEnd && i <= newEnd:
		// Only additions remain; anchor them before the suffix.
		anchor := r.anchorAfter(newC, newEnd)
		for j := i; j <= newEnd; j++ {
			r.patch(nil, newC[j], container, anchor)
		}

	case i > newEnd && i <= oldEnd:
		// Only removals remain.
		for j := i; j <= oldEnd; j++ {
			r.safeUnmount(oldC[j])
		}

	case i <= oldEnd && i <= newEnd:
		r.patchMiddle(oldC, newC, i, oldEnd, newEnd, container)
	}
}

// patchMiddle handles the general case left after prefix/suffix trimming:
// an unordered mix of kept, moved, added, and removed children.
func (r *Renderer) patchMiddle(oldC, newC []*vdom.VNode, i, oldEnd, newEnd int, container any) {
	toPatch := newEnd - i + 1

	// source[j] is the old index that new child i+j came from, -1 if new.
	// -1 (not 0) is the hole sentinel so old index 0 is a valid source.
	source := make([]int, toPatch)
	for j := range source {
		source[j] = -1
	}

	keyToNewIndex := make(map[string]int, toPatch)
	for k := i; k <= newEnd; k++ {
		if key := newC[k].Key; key != "" {
			keyToNewIndex[key] = k
		}
	}

	patched := 0
	moved := false
	pos := 0

	for j := i; j <= oldEnd; j++ {
		old := oldC[j]

		if patched >= toPatch {
			// Every new slot is matched; the rest of the old list goes.
			r.safeUnmount(old)
			continue
		}

		k, ok := -1, false
		if old.Key != "" {
			k, ok = keyToNewIndex[old.Key]
		}
		if !ok {
			r.safeUnmount(old)
			continue
		}

		r.patch(old, newC[k], container, nil)
		patched++
		source[k-i] = j

		// Matched new indices that go backwards mean a reorder.
		if k < pos {
			moved = true
		} else {
			pos = k
		}
	}

	var seq []int
	if moved {
		seq = longestIncreasingSubsequence(source)
	}

	s := len(seq) - 1
	for x := toPatch - 1; x >= 0; x-- {
		idx := i + x
		anchor := r.anchorAfter(newC, idx)

		if source[x] == -1 {
			r.patch(nil, newC[idx], container, anchor)
			continue
		}
		if !moved {
			continue
		}
		if s >= 0 && x == seq[s] {
			// Part of the stable subsequence; already in relative position.
			s--
			continue
		}
		r.move(newC[idx], container, anchor)
	}
}

// anchorAfter returns the host node directly after position idx in the new
// child list, or nil when idx is the last child.
func (r *Renderer) anchorAfter(newC []*vdom.VNode, idx int) any {
	if idx+1 < len(newC) {
		return hostEl(newC[idx+1])
	}
	return nil
}

// move re-inserts a mounted vnode's host nodes before anchor. Fragments
// and components move their materialised children.
func (r *Renderer) move(vn *vdom.VNode, container any, anchor any) {
	switch vn.Kind {
	case vdom.KindFragment:
		for _, child := range vn.Children {
			r.move(child, container, anchor)
		}
	case vdom.KindComponent, vdom.KindFunc:
		if inst, ok := vn.Inst.(*Instance); ok && inst.subTree != nil {
			r.move(inst.subTree, container, anchor)
		}
	default:
		r.metrics.countMove()
		r.insert(vn.El, container, anchor)
	}
}

// validateKeys reports duplicate non-empty sibling keys.
func (r *Renderer) validateKeys(children []*vdom.VNode) {
	seen := make(map[string]bool, len(children))
	for _, child := range children {
		if child.Key == "" {
			continue
		}
		if seen[child.Key] {
			r.diag(errors.New("E040").WithDetail("key " + child.Key))
		}
		seen[child.Key] = true
	}
}
