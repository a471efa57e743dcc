/*
Package xpathadapter implements an xpath.NodeNavigator.

We use this library for XPath queries:

	github.com/antchfx/xpath

Package xpathadapter implements an adapter to enable antchfx/xpath to
access an arena DOM tree (type dom.Tree). Clients will usually just call
Select to find the node IDs matching an XPath expression.

For a description of the various methods of interface xpath.NodeNavigator
please refer to the documentation of antchfx/xpath. It is not replicated here.

BSD License

Copyright (c) 2017–18, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions
are met:

1. Redistributions of source code must retain the above copyright
notice, this list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright
notice, this list of conditions and the following disclaimer in the
documentation and/or other materials provided with the distribution.

3. Neither the name of Norbert Pillmayer nor the names of its contributors
may be used to endorse or promote products derived from this software
without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
"AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR
A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
HOLDER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT
LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY
THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT
(INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.
*/
package xpathadapter

import (
	"strings"

	"github.com/antchfx/xpath"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/webframe/core"
	"github.com/npillmayer/webframe/engine/dom"
)

// tracer traces with key 'webframe.dom'.
func tracer() tracing.Trace {
	return tracing.Select("webframe.dom")
}

// NodeNavigator navigates a dom.Tree on behalf of antchfx/xpath.
type NodeNavigator struct {
	tree          *dom.Tree
	root, current dom.NodeID
	attr          int // attributes index, -1 if positioned on an element
}

// NewNavigator creates a new xpath.NodeNavigator for a DOM tree, positioned
// at node.
func NewNavigator(tree *dom.Tree, node dom.NodeID) *NodeNavigator {
	return &NodeNavigator{
		tree:    tree,
		root:    node,
		current: node,
		attr:    -1,
	}
}

// Select evaluates an XPath expression against the whole document and returns
// the IDs of the nodes found, in document order.
func Select(tree *dom.Tree, expr string) ([]dom.NodeID, error) {
	x, err := xpath.Compile(expr)
	if err != nil {
		return nil, core.WrapError(err, core.EINVALID, "cannot compile XPath %q", expr)
	}
	var result []dom.NodeID
	seen := make(map[dom.NodeID]bool)
	iter := x.Select(NewNavigator(tree, tree.Root()))
	for iter.MoveNext() {
		if nav, ok := iter.Current().(*NodeNavigator); ok && !seen[nav.current] {
			seen[nav.current] = true
			result = append(result, nav.current)
		}
	}
	tracer().Debugf("xpath %q selected %d nodes", expr, len(result))
	return result, nil
}

// CurrentNode returns the DOM node a navigator is positioned at.
func CurrentNode(nav xpath.NodeNavigator) (dom.NodeID, bool) {
	mynav, ok := nav.(*NodeNavigator)
	if !ok {
		return dom.None, false
	}
	return mynav.current, true
}

func (nav *NodeNavigator) node() *dom.Node {
	return nav.tree.Node(nav.current)
}

// NodeType is part of interface xpath.NodeNavigator.
func (nav *NodeNavigator) NodeType() xpath.NodeType {
	switch nav.node().Kind {
	case dom.CommentNode:
		return xpath.CommentNode
	case dom.TextNode:
		return xpath.TextNode
	case dom.ElementNode:
		if nav.attr != -1 {
			return xpath.AttributeNode
		}
		return xpath.ElementNode
	}
	// document and doctype
	return xpath.RootNode
}

// LocalName is part of interface xpath.NodeNavigator.
func (nav *NodeNavigator) LocalName() string {
	n := nav.node()
	if nav.attr != -1 {
		return n.Attrs[nav.attr].Key
	}
	return n.Tag
}

// Prefix is part of interface xpath.NodeNavigator.
func (*NodeNavigator) Prefix() string {
	return ""
}

// Value is part of interface xpath.NodeNavigator.
func (nav *NodeNavigator) Value() string {
	n := nav.node()
	switch n.Kind {
	case dom.ElementNode:
		if nav.attr != -1 {
			return n.Attrs[nav.attr].Val
		}
		return innerText(nav.tree, nav.current)
	case dom.TextNode, dom.CommentNode:
		return n.Text
	}
	return innerText(nav.tree, nav.current)
}

// Copy is part of interface xpath.NodeNavigator.
func (nav *NodeNavigator) Copy() xpath.NodeNavigator {
	n := *nav
	return &n
}

// MoveToRoot is part of interface xpath.NodeNavigator.
func (nav *NodeNavigator) MoveToRoot() {
	nav.current = nav.root
	nav.attr = -1
}

// MoveToParent is part of interface xpath.NodeNavigator.
func (nav *NodeNavigator) MoveToParent() bool {
	if nav.attr != -1 {
		nav.attr = -1 // move from attributes to element
		return true
	}
	if nav.current == nav.root {
		return false
	}
	parent := nav.node().Parent
	if parent == dom.None {
		return false
	}
	nav.current = parent
	return true
}

// MoveToNextAttribute is part of interface xpath.NodeNavigator.
func (nav *NodeNavigator) MoveToNextAttribute() bool {
	if nav.node().Kind != dom.ElementNode || nav.attr >= len(nav.node().Attrs)-1 {
		return false
	}
	nav.attr++
	return true
}

// MoveToChild is part of interface xpath.NodeNavigator.
func (nav *NodeNavigator) MoveToChild() bool {
	if nav.attr != -1 {
		return false
	}
	children := nav.node().Children
	if len(children) == 0 {
		return false
	}
	nav.current = children[0]
	return true
}

// MoveToFirst is part of interface xpath.NodeNavigator.
func (nav *NodeNavigator) MoveToFirst() bool {
	if nav.attr != -1 || nav.current == nav.root {
		return false
	}
	siblings := nav.siblings()
	if len(siblings) == 0 || siblings[0] == nav.current {
		return false
	}
	nav.current = siblings[0]
	return true
}

// MoveToNext is part of interface xpath.NodeNavigator.
func (nav *NodeNavigator) MoveToNext() bool {
	if nav.attr != -1 || nav.current == nav.root {
		return false
	}
	siblings := nav.siblings()
	for i, s := range siblings {
		if s == nav.current && i+1 < len(siblings) {
			nav.current = siblings[i+1]
			return true
		}
	}
	return false
}

// MoveToPrevious is part of interface xpath.NodeNavigator.
func (nav *NodeNavigator) MoveToPrevious() bool {
	if nav.attr != -1 || nav.current == nav.root {
		return false
	}
	siblings := nav.siblings()
	for i, s := range siblings {
		if s == nav.current && i > 0 {
			nav.current = siblings[i-1]
			return true
		}
	}
	return false
}

// MoveTo is part of interface xpath.NodeNavigator.
func (nav *NodeNavigator) MoveTo(other xpath.NodeNavigator) bool {
	n, ok := other.(*NodeNavigator)
	if !ok || n.tree != nav.tree || n.root != nav.root {
		return false
	}
	nav.current = n.current
	nav.attr = n.attr
	return true
}

func (nav *NodeNavigator) String() string {
	return nav.Value()
}

var _ xpath.NodeNavigator = &NodeNavigator{}

func (nav *NodeNavigator) siblings() []dom.NodeID {
	parent := nav.node().Parent
	if parent == dom.None {
		return nil
	}
	return nav.tree.Node(parent).Children
}

// innerText returns the text between the start and end tags of an element.
func innerText(tree *dom.Tree, id dom.NodeID) string {
	var b strings.Builder
	tree.Walk(id, func(_ dom.NodeID, n *dom.Node) bool {
		if n.Kind == dom.TextNode {
			b.WriteString(n.Text)
		}
		return n.Kind != dom.CommentNode
	})
	return b.String()
}
