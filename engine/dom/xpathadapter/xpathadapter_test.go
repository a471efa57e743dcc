package xpathadapter

import (
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/webframe/engine/dom"
	"github.com/stretchr/testify/assert"
)

var testdoc = `<html><body>
<div id="a"><p>one</p><p class="x">two</p></div>
<div id="b"><p>three</p></div>
</body></html>`

func TestSelectElements(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "webframe.dom")
	defer teardown()
	//
	tree, err := dom.Parse(strings.NewReader(testdoc))
	if err != nil {
		t.Fatal(err)
	}
	ps, err := Select(tree, "//p")
	assert.NoError(t, err)
	assert.Len(t, ps, 3)
	for _, p := range ps {
		assert.Equal(t, "p", tree.Node(p).Tag)
	}
	//
	x, err := Select(tree, "//p[@class='x']")
	assert.NoError(t, err)
	if assert.Len(t, x, 1) {
		assert.Equal(t, ps[1], x[0])
	}
	//
	b, err := Select(tree, "//div[@id='b']/p")
	assert.NoError(t, err)
	if assert.Len(t, b, 1) {
		assert.Equal(t, ps[2], b[0])
	}
}

func TestSelectSiblingsAndText(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "webframe.dom")
	defer teardown()
	//
	tree, err := dom.Parse(strings.NewReader(testdoc))
	if err != nil {
		t.Fatal(err)
	}
	second, err := Select(tree, "//div[@id='a']/p[2]")
	assert.NoError(t, err)
	assert.Len(t, second, 1)
	nav := NewNavigator(tree, second[0])
	assert.Equal(t, "two", nav.Value())
	//
	_, err = Select(tree, "//p[")
	assert.Error(t, err)
}
