package douceuradapter

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/webframe/engine/dom/style"
	"github.com/stretchr/testify/assert"
)

func TestParseSheet(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "webframe.cssom")
	defer teardown()
	//
	sheet, err := Parse(`
		p, div { margin: 0; margin-top: 5px; }
		@media print { p { display: none; } }
		@media screen { #x { width: 10px !important; } }
	`)
	assert.NoError(t, err)
	assert.False(t, sheet.Empty())
	rules := sheet.Rules()
	assert.Len(t, rules, 2)
	assert.Equal(t, "p, div", rules[0].Selector())
	assert.Equal(t, []string{"margin", "margin-top"}, rules[0].Properties())
	assert.Equal(t, style.Property("5px"), rules[0].Value("margin-top"))
	assert.Equal(t, "#x", rules[1].Selector())
	assert.Equal(t, style.Property("10px"), rules[1].Value("width"))
	assert.True(t, rules[1].IsImportant("width"))
	//
	other, _ := Parse("span { display: block }")
	sheet.AppendRules(other)
	assert.Len(t, sheet.Rules(), 3)
}

func TestStyleAttribute(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "webframe.cssom")
	defer teardown()
	//
	rule, err := ParseStyleAttribute("width: 50%; flex: 1")
	assert.NoError(t, err)
	assert.Equal(t, "", rule.Selector())
	assert.Equal(t, style.Property("50%"), rule.Value("width"))
	assert.Equal(t, style.Property("1"), rule.Value("flex"))
	assert.False(t, rule.IsImportant("width"))
	//
	rule, err = ParseStyleAttribute("width:300px")
	assert.NoError(t, err)
	assert.Equal(t, style.Property("300px"), rule.Value("width"), "single declaration")
	rule, err = ParseStyleAttribute("margin-top: 10px ; height: 5px;  ")
	assert.NoError(t, err)
	assert.Equal(t, style.Property("10px"), rule.Value("margin-top"))
	assert.Equal(t, style.Property("5px"), rule.Value("height"))
}
