package renderer

// Adapter is the host-node capability the renderer is bound to. Host nodes
// are opaque to the core: it only creates them, inserts them relative to
// one another, and hands them back to the adapter for mutation. Host node
// values must be comparable (pointers are).
type Adapter interface {
	// CreateElement creates a host element for the given tag.
	CreateElement(tag string) any

	// CreateText creates a host text node.
	CreateText(text string) any

	// CreateComment creates a host comment node.
	CreateComment(text string) any

	// Insert places node into parent before anchor. A nil anchor appends.
	// Inserting a node that is already in the tree moves it.
	Insert(node, parent, anchor any)

	// Remove detaches node from its parent. The adapter is responsible
	// for releasing any handlers it registered through PatchProp.
	Remove(node any)

	// SetText replaces the content of a text or comment node.
	SetText(node any, text string)

	// SetElementText replaces all of an element's children with one text.
	SetElementText(el any, text string)

	// PatchProp applies an attribute, property, or event handler update.
	// A nil next means remove.
	PatchProp(el any, key string, prev, next any)
}

// FrameScheduler is an optional adapter extension used by transition
// support to defer work to the host's next paint.
type FrameScheduler interface {
	NextFrame(fn func())
}
