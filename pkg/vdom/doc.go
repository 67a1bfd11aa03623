// Package vdom provides the virtual DOM node model for Reflow.
//
// A VNode describes an intended host subtree. The node kind is a tagged
// enum (VKind): host elements, text, comments, fragments, and components.
// Props holds attributes and event handlers; keys starting with "on" denote
// handlers. The renderer in pkg/renderer reconciles VNode trees against the
// host through an adapter.
//
// # Element API
//
// Elements are created using variadic factory functions:
//
//	Div(Class("card"), ID("main"),
//	    H1("Title"),
//	    P("Content"),
//	    OnClick(handler),
//	)
//
// # Components
//
// A ComponentDef declares inputs, a Setup function, a Render function, and
// lifecycle callbacks. Component(def, ...) produces a component vnode; the
// parent passes slots as Slots or inline children:
//
//	Component(card,
//	    Attr{Key: "title", Value: "Hello"},
//	    Slots{"default": func() *VNode { return P("body") }},
//	)
//
// Func wraps a plain render function as a stateless component.
package vdom
