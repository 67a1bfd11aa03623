package vdom

import "strings"

// attr creates an Attr with the given key and value.
func attr(key string, value any) Attr {
	return Attr{Key: key, Value: value}
}

// Identity attributes

// ID sets the id attribute.
func ID(id string) Attr { return attr("id", id) }

// Class sets the class attribute, joining multiple classes with spaces.
func Class(classes ...string) Attr { return attr("class", strings.Join(classes, " ")) }

// StyleAttr sets the style attribute (named to avoid conflict with a Style element helper).
func StyleAttr(style string) Attr { return attr("style", style) }

// Key sets the reconciliation key. Keys identify siblings across renders;
// within one parent no two siblings may share the same non-empty key.
func Key(key string) Attr { return attr("key", key) }

// Data creates a data-* attribute.
// Example: Data("id", "123") sets data-id="123".
func Data(key, value string) Attr { return attr("data-"+key, value) }

// Common element attributes

// Href sets the href attribute.
func Href(href string) Attr { return attr("href", href) }

// Src sets the src attribute.
func Src(src string) Attr { return attr("src", src) }

// Alt sets the alt attribute.
func Alt(alt string) Attr { return attr("alt", alt) }

// Type sets the type attribute.
func Type(t string) Attr { return attr("type", t) }

// Value sets the value attribute.
func Value(v any) Attr { return attr("value", v) }

// Name sets the name attribute.
func Name(name string) Attr { return attr("name", name) }

// Placeholder sets the placeholder attribute.
func Placeholder(p string) Attr { return attr("placeholder", p) }

// Disabled sets the disabled attribute.
func Disabled(disabled bool) Attr { return attr("disabled", disabled) }

// Checked sets the checked attribute.
func Checked(checked bool) Attr { return attr("checked", checked) }

// Title_ sets the title attribute (named to avoid conflict with the Title element).
func Title_(title string) Attr { return attr("title", title) }

// Accessibility attributes

// Role sets the role attribute.
func Role(role string) Attr { return attr("role", role) }

// AriaLabel sets the aria-label attribute.
func AriaLabel(label string) Attr { return attr("aria-label", label) }

// AriaHidden sets the aria-hidden attribute.
func AriaHidden(hidden bool) Attr { return attr("aria-hidden", hidden) }

// Event handler attributes. Handler props begin with "on"; the renderer
// routes them to the host adapter (elements) or to the instance's props
// (components), where Emit resolves them.

// On attaches a handler for an arbitrary event name.
// Example: On("rowSelect", fn) sets the onRowSelect prop.
func On(event string, handler any) Attr {
	return attr(EventPropName(event), handler)
}

// OnClick attaches a click handler.
func OnClick(handler any) Attr { return attr("onClick", handler) }

// OnInput attaches an input handler.
func OnInput(handler any) Attr { return attr("onInput", handler) }

// OnChange attaches a change handler.
func OnChange(handler any) Attr { return attr("onChange", handler) }

// OnSubmit attaches a submit handler.
func OnSubmit(handler any) Attr { return attr("onSubmit", handler) }

// OnKeydown attaches a keydown handler.
func OnKeydown(handler any) Attr { return attr("onKeydown", handler) }

// OnFocus attaches a focus handler.
func OnFocus(handler any) Attr { return attr("onFocus", handler) }

// OnBlur attaches a blur handler.
func OnBlur(handler any) Attr { return attr("onBlur", handler) }
