/*
Package segmenter implements a text.Breaker following the Unicode line
breaking algorithm (UAX #14).

Input text is NFC-normalized before segmenting. We use a uax14.LineWrap as
the primary breaker and a segment.SimpleWordBreaker to extract spans of
white space, which are attached to the preceding chunk as trailing space.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package segmenter

import (
	"bufio"
	"strings"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/uax"
	"github.com/npillmayer/uax/segment"
	"github.com/npillmayer/uax/uax14"
	"github.com/npillmayer/webframe/engine/text"
	"golang.org/x/text/unicode/norm"
)

// tracer traces with key 'webframe.text'.
func tracer() tracing.Trace {
	return tracing.Select("webframe.text")
}

// LineBreaker is a text.Breaker for UAX #14 line break opportunities.
// It is not safe for concurrent use; every layout run should use its own.
type LineBreaker struct {
	seg *segment.Segmenter
}

var _ text.Breaker = &LineBreaker{}

// New creates a line breaker.
func New() *LineBreaker {
	return &LineBreaker{
		seg: segment.NewSegmenter(uax14.NewLineWrap(), segment.NewSimpleWordBreaker()),
	}
}

// Break is part of interface text.Breaker.
func (lb *LineBreaker) Break(s string, ws text.WhiteSpace) []text.Chunk {
	var chunks []text.Chunk
	lines := text.Lines(s, ws)
	for i, line := range lines {
		start := len(chunks)
		if ws.Wraps() {
			chunks = lb.wrap(line, chunks)
		} else {
			chunks = append(chunks, text.SplitTrailing(line))
		}
		if i < len(lines)-1 {
			if len(chunks) == start {
				chunks = append(chunks, text.Chunk{})
			}
			chunks[len(chunks)-1].HardBreak = true
		}
	}
	return chunks
}

// wrap appends the chunks of a single line.
func (lb *LineBreaker) wrap(line string, chunks []text.Chunk) []text.Chunk {
	if line == "" {
		return chunks
	}
	start := len(chunks)
	lb.seg.Init(bufio.NewReader(norm.NFC.Reader(strings.NewReader(line))))
	var b strings.Builder
	for lb.seg.Next() {
		frag := lb.seg.Text()
		p1, p2 := lb.seg.Penalties()
		tracer().Debugf("next segment = '%s'\twith penalties %d|%d", frag, p1, p2)
		if isspace(frag) && b.Len() == 0 {
			if len(chunks) > start {
				chunks[len(chunks)-1].Trailing += frag
			} else {
				chunks = append(chunks, text.Chunk{Trailing: frag})
			}
			continue
		}
		b.WriteString(frag)
		if p1 < uax.InfinitePenalty { // line wrap opportunity
			chunks = append(chunks, text.SplitTrailing(b.String()))
			b.Reset()
		}
	}
	if b.Len() > 0 {
		chunks = append(chunks, text.SplitTrailing(b.String()))
	}
	return chunks
}

func isspace(s string) bool {
	return s != "" && strings.Trim(s, " \t") == ""
}
