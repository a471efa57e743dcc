package segmenter

import (
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/webframe/engine/text"
	"github.com/stretchr/testify/assert"
)

func joined(chunks []text.Chunk) string {
	var b strings.Builder
	for _, c := range chunks {
		b.WriteString(c.Text)
		b.WriteString(c.Trailing)
	}
	return b.String()
}

func TestBreakNormal(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "webframe.text")
	defer teardown()
	//
	lb := New()
	chunks := lb.Break("Hello   brave\n new world", text.Normal)
	assert.Equal(t, "Hello brave new world", joined(chunks), "white space collapses")
	words := 0
	for _, c := range chunks {
		assert.NotContains(t, c.Text, " ", "chunks must not contain inner spaces")
		assert.False(t, c.HardBreak)
		if c.Text != "" {
			words++
		}
	}
	assert.Equal(t, 4, words)
	assert.Equal(t, "world", chunks[len(chunks)-1].Text)
}

func TestBreakPre(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "webframe.text")
	defer teardown()
	//
	lb := New()
	chunks := lb.Break("a  b\n\nc", text.Pre)
	assert.Len(t, chunks, 3)
	assert.Equal(t, "a  b", chunks[0].Text)
	assert.True(t, chunks[0].HardBreak)
	assert.True(t, chunks[1].HardBreak, "empty line is a chunk of its own")
	assert.Equal(t, "c", chunks[2].Text)
	assert.False(t, chunks[2].HardBreak)
}

func TestNoWrap(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "webframe.text")
	defer teardown()
	//
	chunks := New().Break("one two  three ", text.NoWrap)
	assert.Equal(t, []text.Chunk{{Text: "one two three", Trailing: " "}}, chunks)
}
