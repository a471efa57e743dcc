package text

import (
	"strings"

	"github.com/npillmayer/webframe/core/dimen"
)

// Font selects a font for measurement.
type Font struct {
	Family string
	Size   dimen.Dimen
}

// WhiteSpace controls white space collapsing and line wrapping.
type WhiteSpace uint8

// White space handling modes, as for CSS property white-space.
const (
	Normal WhiteSpace = iota
	NoWrap
	Pre
	PreWrap
	PreLine
)

// Wraps is true if soft wrap opportunities may be taken.
func (ws WhiteSpace) Wraps() bool {
	return ws != NoWrap && ws != Pre
}

// Chunk is a piece of text between two break opportunities, as found by a
// Breaker. Trailing holds white space following the text, which may hang
// over the end of a line.
type Chunk struct {
	Text      string
	Trailing  string
	HardBreak bool // a forced line break follows this chunk
}

// Segment is a measured chunk: an unbreakable run of text.
type Segment struct {
	Text      string
	Width     dimen.Dimen // advance of Text
	Space     dimen.Dimen // advance of trailing white space
	HardBreak bool
}

// Breaker splits text into chunks at line-break opportunities, after
// applying the white space rules.
type Breaker interface {
	Break(text string, ws WhiteSpace) []Chunk
}

// Metrics measures text in a font.
type Metrics interface {
	Advance(text string, font Font) dimen.Dimen
	Extents(font Font) (ascent, descent dimen.Dimen)
}

// Measurer is the text collaborator of the inline layout engine.
type Measurer interface {
	Metrics
	Segments(text string, font Font, ws WhiteSpace) []Segment
}

type measurer struct {
	Breaker
	Metrics
}

// NewMeasurer combines a breaker and metrics into a Measurer.
func NewMeasurer(b Breaker, m Metrics) Measurer {
	if b == nil {
		b = SpaceBreaker{}
	}
	return measurer{Breaker: b, Metrics: m}
}

func (m measurer) Segments(text string, font Font, ws WhiteSpace) []Segment {
	chunks := m.Break(text, ws)
	segs := make([]Segment, len(chunks))
	for i, c := range chunks {
		segs[i] = Segment{
			Text:      c.Text,
			Width:     m.Advance(c.Text, font),
			Space:     m.Advance(c.Trailing, font),
			HardBreak: c.HardBreak,
		}
	}
	tracer().Debugf("text %q broken into %d segments", abbrev(text), len(segs))
	return segs
}

func abbrev(s string) string {
	if len(s) > 24 {
		return s[:21] + "..."
	}
	return s
}

// --- White space processing ------------------------------------------------

// Lines applies white space collapsing to a text and splits it at forced
// line breaks.
func Lines(text string, ws WhiteSpace) []string {
	switch ws {
	case Normal, NoWrap:
		return []string{collapse(text, true)}
	case PreLine:
		lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
		for i, l := range lines {
			lines[i] = collapse(l, false)
		}
		return lines
	}
	text = strings.ReplaceAll(text, "\t", "        ")
	return strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
}

// collapse replaces runs of white space by a single space.
func collapse(s string, newlines bool) string {
	var b strings.Builder
	b.Grow(len(s))
	inSpace := false
	for _, r := range s {
		if isCollapsible(r) || (newlines && r == '\n') {
			if !inSpace {
				b.WriteByte(' ')
			}
			inSpace = true
			continue
		}
		inSpace = false
		b.WriteRune(r)
	}
	return b.String()
}

func isCollapsible(r rune) bool {
	return r == ' ' || r == '\t' || r == '\r' || r == '\f'
}

// SplitTrailing splits a piece of text into a chunk, separating trailing
// white space.
func SplitTrailing(s string) Chunk {
	t := strings.TrimRight(s, " \t")
	return Chunk{Text: t, Trailing: s[len(t):]}
}

// SpaceBreaker is a Breaker which breaks at spaces only.
type SpaceBreaker struct{}

// Break is part of interface Breaker.
func (SpaceBreaker) Break(text string, ws WhiteSpace) []Chunk {
	var chunks []Chunk
	lines := Lines(text, ws)
	for i, line := range lines {
		start := len(chunks)
		if !ws.Wraps() {
			chunks = append(chunks, SplitTrailing(line))
		} else {
			chunks = append(chunks, splitAtSpaces(line)...)
		}
		if i < len(lines)-1 {
			if len(chunks) == start {
				chunks = append(chunks, Chunk{})
			}
			chunks[len(chunks)-1].HardBreak = true
		}
	}
	return chunks
}

func splitAtSpaces(line string) []Chunk {
	var chunks []Chunk
	i := 0
	for i < len(line) {
		j := i
		for j < len(line) && line[j] != ' ' {
			j++
		}
		k := j
		for k < len(line) && line[k] == ' ' {
			k++
		}
		chunks = append(chunks, Chunk{Text: line[i:j], Trailing: line[j:k]})
		i = k
	}
	return chunks
}
