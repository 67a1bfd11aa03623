package vdom

import "strings"

// VKind is the node type discriminator.
type VKind uint8

const (
	KindElement   VKind = iota // <div>, <button>, etc.
	KindText                   // Plain text node
	KindComment                // Comment node
	KindFragment               // Grouping without wrapper
	KindComponent              // Stateful component
	KindFunc                   // Function component
)

// String returns the string representation of the VKind.
func (k VKind) String() string {
	switch k {
	case KindElement:
		return "Element"
	case KindText:
		return "Text"
	case KindComment:
		return "Comment"
	case KindFragment:
		return "Fragment"
	case KindComponent:
		return "Component"
	case KindFunc:
		return "Func"
	default:
		return "Unknown"
	}
}

// VNode is the virtual DOM node. User code builds VNodes with the element
// helpers and never mutates them afterwards; El and Inst are the only fields
// written by the renderer once the node is mounted.
type VNode struct {
	Kind     VKind    // Node type
	Tag      string   // Element tag name (e.g., "div")
	Props    Props    // Attributes, component inputs, event handlers
	Children []*VNode // Child nodes (nil = no children, empty = empty sequence)
	Key      string   // Reconciliation key
	Text     string   // Content for KindText/KindComment, or an element's plain-text children

	Def   *ComponentDef       // For KindComponent
	Fn    func(Props) *VNode  // For KindFunc
	Slots Slots               // For KindComponent: named slot thunks from the parent

	El   any // Host node back-reference, set at mount (nil before)
	Inst any // Component instance back-reference, owned by the renderer
}

// Props holds attributes, declared component inputs, and event handlers.
// Keys starting with "on" denote event handlers.
type Props map[string]any

// Attr represents a single attribute.
type Attr struct {
	Key   string
	Value any
}

// IsEmpty returns true if this is an empty/nil attribute.
func (a Attr) IsEmpty() bool {
	return a.Key == ""
}

// Slot is a named child thunk supplied by the parent of a component vnode.
type Slot func() *VNode

// Slots maps slot names to thunks.
type Slots map[string]Slot

// SameType reports whether two vnodes describe the same kind of node and can
// be patched against each other instead of replaced. Following the dispatcher
// contract, a mismatch means unmount-then-mount.
func (v *VNode) SameType(other *VNode) bool {
	if v == nil || other == nil {
		return false
	}
	if v.Kind != other.Kind || v.Key != other.Key {
		return false
	}
	switch v.Kind {
	case KindElement:
		return v.Tag == other.Tag
	case KindComponent:
		return v.Def == other.Def
	default:
		return true
	}
}

// HasTextChildren reports whether the node's children are plain text rather
// than a vnode sequence.
func (v *VNode) HasTextChildren() bool {
	return v.Kind == KindElement && v.Children == nil && v.Text != ""
}

// IsInteractive returns true if this node has event handlers attached.
func (v *VNode) IsInteractive() bool {
	if v == nil || v.Kind != KindElement {
		return false
	}
	for key := range v.Props {
		if IsEventProp(key) {
			return true
		}
	}
	return false
}

// IsEventProp returns true if the prop key names an event handler.
// Case-insensitive to catch onclick, onClick, OnClick, etc.
func IsEventProp(key string) bool {
	return len(key) > 2 && strings.EqualFold(key[:2], "on")
}

// EventPropName maps an emitted event name to its handler prop.
// "change" becomes "onChange", "rowSelect" becomes "onRowSelect".
func EventPropName(event string) string {
	if event == "" {
		return ""
	}
	return "on" + strings.ToUpper(event[:1]) + event[1:]
}
