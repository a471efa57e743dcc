package dom

import (
	"io"
	"strings"

	"github.com/npillmayer/webframe/core"
	"golang.org/x/net/html"
)

// NodeID addresses a node within a Tree.
type NodeID int32

// None is the NodeID of a non-existent node, e.g. the parent of the root.
const None NodeID = -1

// Kind is the type of a DOM node.
type Kind uint8

// Node kinds known to the DOM. Only elements and text nodes generate boxes.
const (
	DocumentNode Kind = iota
	ElementNode
	TextNode
	CommentNode
	DoctypeNode
)

func (k Kind) String() string {
	switch k {
	case DocumentNode:
		return "#document"
	case ElementNode:
		return "element"
	case TextNode:
		return "#text"
	case CommentNode:
		return "#comment"
	case DoctypeNode:
		return "#doctype"
	}
	return "?"
}

// Node is a node of the document tree.
type Node struct {
	Kind     Kind
	Tag      string // lower case tag name for elements
	Text     string // character data for text and comment nodes
	Attrs    []html.Attribute
	Parent   NodeID
	Children []NodeID
	h        *html.Node
}

// Tree is an arena of DOM nodes. Node 0 is always the document node.
type Tree struct {
	nodes  []Node
	byHTML map[*html.Node]NodeID
}

// Parse reads an HTML document and creates a DOM tree from it.
func Parse(r io.Reader) (*Tree, error) {
	h, err := html.Parse(r)
	if err != nil {
		return nil, core.WrapError(err, core.EINVALID, "cannot parse HTML input")
	}
	return FromHTML(h), nil
}

// FromHTML creates a DOM tree from an HTML parse tree. If h is not a document
// node, an artificial document node is put on top of it.
func FromHTML(h *html.Node) *Tree {
	tree := &Tree{
		nodes:  make([]Node, 0, 64),
		byHTML: make(map[*html.Node]NodeID, 64),
	}
	if h == nil {
		tree.nodes = append(tree.nodes, Node{Kind: DocumentNode, Parent: None})
		return tree
	}
	if h.Type != html.DocumentNode {
		doc := tree.add(nil, None)
		tree.nodes[doc].Kind = DocumentNode
		top := tree.build(h, doc)
		tree.nodes[doc].Children = append(tree.nodes[doc].Children, top)
		return tree
	}
	tree.build(h, None)
	tracer().Debugf("DOM tree with %d nodes created", len(tree.nodes))
	return tree
}

func (tree *Tree) build(h *html.Node, parent NodeID) NodeID {
	id := tree.add(h, parent)
	for c := h.FirstChild; c != nil; c = c.NextSibling {
		child := tree.build(c, id)
		tree.nodes[id].Children = append(tree.nodes[id].Children, child)
	}
	return id
}

func (tree *Tree) add(h *html.Node, parent NodeID) NodeID {
	id := NodeID(len(tree.nodes))
	n := Node{Parent: parent, h: h}
	if h != nil {
		switch h.Type {
		case html.DocumentNode:
			n.Kind = DocumentNode
		case html.ElementNode:
			n.Kind = ElementNode
			n.Tag = strings.ToLower(h.Data)
			n.Attrs = h.Attr
		case html.TextNode:
			n.Kind = TextNode
			n.Text = h.Data
		case html.DoctypeNode:
			n.Kind = DoctypeNode
		default:
			n.Kind = CommentNode
			n.Text = h.Data
		}
		tree.byHTML[h] = id
	}
	tree.nodes = append(tree.nodes, n)
	return id
}

// Len returns the number of nodes in the tree.
func (tree *Tree) Len() int {
	return len(tree.nodes)
}

// Root returns the document node.
func (tree *Tree) Root() NodeID {
	return 0
}

// Node returns the node for an ID. It panics for IDs out of range.
func (tree *Tree) Node(id NodeID) *Node {
	return &tree.nodes[id]
}

// Valid returns true if id addresses a node of this tree.
func (tree *Tree) Valid(id NodeID) bool {
	return id >= 0 && int(id) < len(tree.nodes)
}

// HTMLNode returns the parse tree node a DOM node has been created from.
func (tree *Tree) HTMLNode(id NodeID) *html.Node {
	return tree.nodes[id].h
}

// NodeFor finds the DOM node for a node of the HTML parse tree.
func (tree *Tree) NodeFor(h *html.Node) (NodeID, bool) {
	id, ok := tree.byHTML[h]
	return id, ok
}

// DocumentElement returns the root element of the document, usually <html>.
func (tree *Tree) DocumentElement() (NodeID, bool) {
	for _, ch := range tree.nodes[0].Children {
		if tree.nodes[ch].Kind == ElementNode {
			return ch, true
		}
	}
	return None, false
}

// Attr returns the value of an element's attribute.
func (tree *Tree) Attr(id NodeID, key string) (string, bool) {
	for _, a := range tree.nodes[id].Attrs {
		if a.Namespace == "" && strings.EqualFold(a.Key, key) {
			return a.Val, true
		}
	}
	return "", false
}

// Walk visits the subtree starting at id in document order. If f returns false,
// the children of the visited node are skipped.
func (tree *Tree) Walk(id NodeID, f func(NodeID, *Node) bool) {
	if !f(id, &tree.nodes[id]) {
		return
	}
	for _, ch := range tree.nodes[id].Children {
		tree.Walk(ch, f)
	}
}

// StyleElements returns the text content of all <style> elements in document order.
func (tree *Tree) StyleElements() []string {
	var sheets []string
	tree.Walk(tree.Root(), func(id NodeID, n *Node) bool {
		if n.Kind == ElementNode && n.Tag == "style" {
			var b strings.Builder
			for _, ch := range n.Children {
				if tree.nodes[ch].Kind == TextNode {
					b.WriteString(tree.nodes[ch].Text)
				}
			}
			sheets = append(sheets, b.String())
			return false
		}
		return true
	})
	return sheets
}

// Name returns a short name for a node, suitable for tracing.
func (tree *Tree) Name(id NodeID) string {
	if !tree.Valid(id) {
		return "<none>"
	}
	n := tree.nodes[id]
	if n.Kind == ElementNode {
		return n.Tag
	}
	return n.Kind.String()
}

// IsWhitespace returns true for text nodes consisting of white space only.
func (n *Node) IsWhitespace() bool {
	return n.Kind == TextNode && strings.TrimSpace(n.Text) == ""
}
