package dom_test

import (
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/webframe/engine/dom"
	"github.com/stretchr/testify/assert"
	"golang.org/x/net/html"
)

var minihtml = `
<html><head>
<style>
  body { margin: 0; }
</style>
</head><body>
  <p id="world">Hello <b>World</b>!</p>
  <!-- a comment -->
</body>
`

func TestDOMFromHTML(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "webframe.dom")
	defer teardown()
	//
	h, err := html.Parse(strings.NewReader(minihtml))
	if err != nil {
		t.Fatalf("cannot create test document: %v", err)
	}
	tree := dom.FromHTML(h)
	assert.Equal(t, dom.DocumentNode, tree.Node(tree.Root()).Kind)
	root, ok := tree.DocumentElement()
	if !ok {
		t.Fatalf("expected document to have a root element")
	}
	assert.Equal(t, "html", tree.Node(root).Tag)
	assert.Equal(t, dom.None, tree.Node(tree.Root()).Parent)
	//
	var p dom.NodeID = dom.None
	tree.Walk(tree.Root(), func(id dom.NodeID, n *dom.Node) bool {
		if v, ok := tree.Attr(id, "id"); ok && v == "world" {
			p = id
		}
		return true
	})
	if p == dom.None {
		t.Fatalf("element with id 'world' not found")
	}
	assert.Equal(t, "p", tree.Node(p).Tag)
	assert.Len(t, tree.Node(p).Children, 3) // "Hello ", <b>, "!"
	first := tree.Node(p).Children[0]
	assert.Equal(t, dom.TextNode, tree.Node(first).Kind)
	assert.Equal(t, "Hello ", tree.Node(first).Text)
	assert.Equal(t, p, tree.Node(first).Parent)
	//
	back, ok := tree.NodeFor(tree.HTMLNode(p))
	assert.True(t, ok)
	assert.Equal(t, p, back)
}

func TestStyleElements(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "webframe.dom")
	defer teardown()
	//
	tree, err := dom.Parse(strings.NewReader(minihtml))
	if err != nil {
		t.Fatal(err)
	}
	sheets := tree.StyleElements()
	if assert.Len(t, sheets, 1) {
		assert.Contains(t, sheets[0], "margin: 0")
	}
}

func TestWhitespaceNodes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "webframe.dom")
	defer teardown()
	//
	n := dom.Node{Kind: dom.TextNode, Text: " \n\t "}
	assert.True(t, n.IsWhitespace())
	n.Text = " x "
	assert.False(t, n.IsWhitespace())
	e := dom.Node{Kind: dom.ElementNode}
	assert.False(t, e.IsWhitespace())
}
