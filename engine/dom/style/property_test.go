package style

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestFourSidedShorthands(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "webframe.cssom")
	defer teardown()
	//
	m := PropertyMap{}
	m.Set("margin", "10px 20px")
	assert.Equal(t, Property("10px"), m.Get("margin-top"))
	assert.Equal(t, Property("20px"), m.Get("margin-right"))
	assert.Equal(t, Property("10px"), m.Get("margin-bottom"))
	assert.Equal(t, Property("20px"), m.Get("margin-left"))
	//
	m.Set("padding", "1px 2px 3px")
	assert.Equal(t, Property("2px"), m.Get("padding-left"))
	assert.Equal(t, Property("3px"), m.Get("padding-bottom"))
	//
	m.Set("margin", "1px 2px 3px 4px 5px") // illegal, ignored
	assert.Equal(t, Property("10px"), m.Get("margin-top"))
}

func TestBorderShorthand(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "webframe.cssom")
	defer teardown()
	//
	m := PropertyMap{}
	m.Set("border", "2px solid red")
	for _, side := range []string{"top", "right", "bottom", "left"} {
		assert.Equal(t, Property("2px"), m.Get("border-"+side+"-width"))
		assert.Equal(t, Property("solid"), m.Get("border-"+side+"-style"))
	}
	m.Set("border-left", "none")
	assert.Equal(t, Property("none"), m.Get("border-left-style"))
	assert.Equal(t, Property("solid"), m.Get("border-top-style"))
}

func TestFlexShorthand(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "webframe.cssom")
	defer teardown()
	//
	cases := []struct {
		value               string
		grow, shrink, basis Property
	}{
		{"1", "1", "1", "0%"},
		{"none", "0", "0", "auto"},
		{"auto", "1", "1", "auto"},
		{"2 3", "2", "3", "0%"},
		{"1 100px", "1", "1", "100px"},
		{"0 1 50%", "0", "1", "50%"},
	}
	for _, c := range cases {
		m := PropertyMap{}
		m.Set("flex", Property(c.value))
		assert.Equal(t, c.grow, m.Get("flex-grow"), c.value)
		assert.Equal(t, c.shrink, m.Get("flex-shrink"), c.value)
		assert.Equal(t, c.basis, m.Get("flex-basis"), c.value)
	}
}

func TestGridShorthands(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "webframe.cssom")
	defer teardown()
	//
	m := PropertyMap{}
	m.Set("grid-column", "1 / span 2")
	assert.Equal(t, Property("1"), m.Get("grid-column-start"))
	assert.Equal(t, Property("span 2"), m.Get("grid-column-end"))
	m.Set("grid-row", "2")
	assert.Equal(t, Property("2"), m.Get("grid-row-start"))
	assert.Equal(t, Property("auto"), m.Get("grid-row-end"))
	m.Set("grid-area", "header")
	assert.Equal(t, Property("header"), m.Get("grid-row-start"))
	assert.Equal(t, Property("header"), m.Get("grid-column-end"))
	m.Set("gap", "4px 8px")
	assert.Equal(t, Property("4px"), m.Get("row-gap"))
	assert.Equal(t, Property("8px"), m.Get("column-gap"))
}

func TestTokenize(t *testing.T) {
	assert.Equal(t, []string{"repeat(2, 1fr)", "100px"}, tokenize("repeat(2, 1fr) 100px"))
	assert.Equal(t, []string{"1", "/", "3"}, tokenize("1/3"))
}
