package vdom

// voidElements are elements that cannot have children.
var voidElements = map[string]bool{
	"area":   true,
	"base":   true,
	"br":     true,
	"col":    true,
	"embed":  true,
	"hr":     true,
	"img":    true,
	"input":  true,
	"link":   true,
	"meta":   true,
	"param":  true,
	"source": true,
	"track":  true,
	"wbr":    true,
}

// IsVoidElement returns true if the tag is a void element.
func IsVoidElement(tag string) bool {
	return voidElements[tag]
}

// El creates an element vnode with the given tag and arguments.
// Arguments can be: nil, Attr, []Attr, *VNode, []*VNode, string.
// A single string argument with no vnode children becomes the element's
// plain-text content; otherwise strings become text child nodes.
func El(tag string, args ...any) *VNode {
	node := &VNode{
		Kind:  KindElement,
		Tag:   tag,
		Props: make(Props),
	}

	for _, arg := range args {
		switch v := arg.(type) {
		case nil:
			// Ignore nil (allows conditional attributes and children)
			continue

		case Attr:
			setProp(node, v)

		case []Attr:
			for _, a := range v {
				setProp(node, a)
			}

		case *VNode:
			if v != nil {
				appendChild(node, v)
			}

		case []*VNode:
			for _, child := range v {
				if child != nil {
					appendChild(node, child)
				}
			}

		case string:
			if node.Children == nil && node.Text == "" {
				node.Text = v
			} else {
				appendChild(node, Text(v))
			}
		}
	}

	return node
}

// appendChild adds a child node, demoting any plain-text content to a text
// child first so the two representations never coexist.
func appendChild(node *VNode, child *VNode) {
	if node.Text != "" {
		node.Children = append(node.Children, Text(node.Text))
		node.Text = ""
	}
	node.Children = append(node.Children, child)
}

// setProp folds a single Attr into the node's props. The "key" attr is
// lifted onto the node itself and never stored as a prop.
func setProp(node *VNode, a Attr) {
	if a.Key == "" {
		return
	}
	if a.Key == "key" {
		if s, ok := a.Value.(string); ok {
			node.Key = s
		}
		return
	}
	node.Props[a.Key] = a.Value
}

// Text creates a text vnode.
func Text(text string) *VNode {
	return &VNode{Kind: KindText, Text: text}
}

// Comment creates a comment vnode.
func Comment(text string) *VNode {
	return &VNode{Kind: KindComment, Text: text}
}

// Fragment creates a grouping vnode with no host node of its own.
// Arguments can be *VNode, []*VNode, string, or the key Attr.
func Fragment(args ...any) *VNode {
	node := &VNode{
		Kind:     KindFragment,
		Children: make([]*VNode, 0),
	}
	for _, arg := range args {
		switch v := arg.(type) {
		case nil:
			continue
		case Attr:
			if v.Key == "key" {
				if s, ok := v.Value.(string); ok {
					node.Key = s
				}
			}
		case *VNode:
			if v != nil {
				node.Children = append(node.Children, v)
			}
		case []*VNode:
			for _, child := range v {
				if child != nil {
					node.Children = append(node.Children, child)
				}
			}
		case string:
			node.Children = append(node.Children, Text(v))
		}
	}
	return node
}

// Document structure elements

func Html(args ...any) *VNode  { return El("html", args...) }
func Head(args ...any) *VNode  { return El("head", args...) }
func Body(args ...any) *VNode  { return El("body", args...) }
func Title(args ...any) *VNode { return El("title", args...) }
func Meta(args ...any) *VNode  { return El("meta", args...) }
func Link(args ...any) *VNode  { return El("link", args...) }

// Content sectioning elements

func Header(args ...any) *VNode  { return El("header", args...) }
func Footer(args ...any) *VNode  { return El("footer", args...) }
func Main(args ...any) *VNode    { return El("main", args...) }
func Nav(args ...any) *VNode     { return El("nav", args...) }
func Section(args ...any) *VNode { return El("section", args...) }
func Article(args ...any) *VNode { return El("article", args...) }
func Aside(args ...any) *VNode   { return El("aside", args...) }
func H1(args ...any) *VNode      { return El("h1", args...) }
func H2(args ...any) *VNode      { return El("h2", args...) }
func H3(args ...any) *VNode      { return El("h3", args...) }
func H4(args ...any) *VNode      { return El("h4", args...) }
func H5(args ...any) *VNode      { return El("h5", args...) }
func H6(args ...any) *VNode      { return El("h6", args...) }

// Text content elements

func Div(args ...any) *VNode        { return El("div", args...) }
func P(args ...any) *VNode          { return El("p", args...) }
func Span(args ...any) *VNode       { return El("span", args...) }
func Pre(args ...any) *VNode        { return El("pre", args...) }
func Blockquote(args ...any) *VNode { return El("blockquote", args...) }
func Ul(args ...any) *VNode         { return El("ul", args...) }
func Ol(args ...any) *VNode         { return El("ol", args...) }
func Li(args ...any) *VNode         { return El("li", args...) }
func Hr(args ...any) *VNode         { return El("hr", args...) }

// Inline text semantics

func A(args ...any) *VNode      { return El("a", args...) }
func Strong(args ...any) *VNode { return El("strong", args...) }
func Em(args ...any) *VNode     { return El("em", args...) }
func B(args ...any) *VNode      { return El("b", args...) }
func I(args ...any) *VNode      { return El("i", args...) }
func Small(args ...any) *VNode  { return El("small", args...) }
func Code(args ...any) *VNode   { return El("code", args...) }
func Br(args ...any) *VNode     { return El("br", args...) }

// Form elements

func Form(args ...any) *VNode     { return El("form", args...) }
func Input(args ...any) *VNode    { return El("input", args...) }
func Textarea(args ...any) *VNode { return El("textarea", args...) }
func Select(args ...any) *VNode   { return El("select", args...) }
func Option(args ...any) *VNode   { return El("option", args...) }
func Button(args ...any) *VNode   { return El("button", args...) }
func Label(args ...any) *VNode    { return El("label", args...) }

// Table elements

func Table(args ...any) *VNode { return El("table", args...) }
func Thead(args ...any) *VNode { return El("thead", args...) }
func Tbody(args ...any) *VNode { return El("tbody", args...) }
func Tr(args ...any) *VNode    { return El("tr", args...) }
func Th(args ...any) *VNode    { return El("th", args...) }
func Td(args ...any) *VNode    { return El("td", args...) }

// Media elements

func Img(args ...any) *VNode    { return El("img", args...) }
func Video(args ...any) *VNode  { return El("video", args...) }
func Audio(args ...any) *VNode  { return El("audio", args...) }
func Canvas(args ...any) *VNode { return El("canvas", args...) }
func Svg(args ...any) *VNode    { return El("svg", args...) }
