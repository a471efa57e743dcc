package css

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/npillmayer/webframe/engine/dom/style"
)

// TrackKind classifies grid track sizing functions.
type TrackKind uint8

// Supported track sizing functions. minmax(), min-content, max-content and
// fit-content() degrade to TrackAuto.
const (
	TrackAuto TrackKind = iota
	TrackFixed
	TrackPercent
	TrackFr
)

// TrackSize is a single entry of a grid track list.
type TrackSize struct {
	Kind TrackKind
	Size DimenT  // for fixed and percentage tracks
	Fr   float64 // flex factor for fr tracks
}

// AutoTrack is a track of size `auto`.
var AutoTrack = TrackSize{Kind: TrackAuto}

func (t TrackSize) String() string {
	switch t.Kind {
	case TrackFixed, TrackPercent:
		return t.Size.String()
	case TrackFr:
		return strconv.FormatFloat(t.Fr, 'f', -1, 64) + "fr"
	}
	return "auto"
}

// maximum number of tracks created by repeat(), guarding against
// pathological input like repeat(100000, 1px)
const maxRepeat = 1000

// ParseTrackList parses a grid-template-columns/-rows value. Line names in
// brackets are skipped. `none` and the empty value yield an empty list.
// Unparsable entries degrade to `auto` and are reported with an error,
// together with the best-effort track list.
func ParseTrackList(p style.Property) ([]TrackSize, error) {
	s := strings.TrimSpace(string(p))
	if s == "" || s == "none" {
		return nil, nil
	}
	var tracks []TrackSize
	var errs []string
	for _, tok := range trackTokens(s) {
		if strings.HasPrefix(tok, "repeat(") && strings.HasSuffix(tok, ")") {
			rep, err := parseRepeat(tok[7 : len(tok)-1])
			if err != nil {
				errs = append(errs, err.Error())
			}
			tracks = append(tracks, rep...)
			continue
		}
		t, err := ParseTrackSize(tok)
		if err != nil {
			errs = append(errs, err.Error())
		}
		tracks = append(tracks, t)
	}
	if len(errs) > 0 {
		return tracks, errors.New(strings.Join(errs, "; "))
	}
	return tracks, nil
}

func parseRepeat(inner string) ([]TrackSize, error) {
	comma := strings.IndexByte(inner, ',')
	if comma < 0 {
		return []TrackSize{AutoTrack}, fmt.Errorf("malformed repeat(%s)", inner)
	}
	countStr := strings.TrimSpace(inner[:comma])
	n, err := strconv.Atoi(countStr)
	if err != nil {
		// auto-fill and auto-fit need the container size; repeat once
		n = 1
	}
	if n < 1 {
		n = 1
	} else if n > maxRepeat {
		n = maxRepeat
	}
	var pattern []TrackSize
	var perr error
	for _, tok := range trackTokens(inner[comma+1:]) {
		t, e := ParseTrackSize(tok)
		if e != nil {
			perr = e
		}
		pattern = append(pattern, t)
	}
	tracks := make([]TrackSize, 0, n*len(pattern))
	for i := 0; i < n; i++ {
		tracks = append(tracks, pattern...)
	}
	return tracks, perr
}

// ParseTrackSize parses a single track sizing function.
func ParseTrackSize(tok string) (TrackSize, error) {
	tok = strings.ToLower(strings.TrimSpace(tok))
	switch {
	case tok == "auto" || tok == "min-content" || tok == "max-content":
		return AutoTrack, nil
	case strings.HasPrefix(tok, "minmax(") || strings.HasPrefix(tok, "fit-content("):
		tracer().Debugf("grid track %s treated as auto", tok)
		return AutoTrack, nil
	case strings.HasSuffix(tok, "fr"):
		f, err := strconv.ParseFloat(strings.TrimSuffix(tok, "fr"), 64)
		if err != nil || f < 0 {
			return AutoTrack, fmt.Errorf("illegal flex track %q", tok)
		}
		return TrackSize{Kind: TrackFr, Fr: f}, nil
	}
	d, err := ParseDimen(tok)
	if err != nil {
		return AutoTrack, fmt.Errorf("illegal grid track %q", tok)
	}
	if d.IsPercent() {
		return TrackSize{Kind: TrackPercent, Size: d}, nil
	}
	return TrackSize{Kind: TrackFixed, Size: d}, nil
}

// trackTokens splits a track list at white space, dropping [line-names]
// and keeping function calls intact.
func trackTokens(s string) []string {
	var tokens []string
	var b strings.Builder
	depth, bracket := 0, false
	flush := func() {
		if b.Len() > 0 {
			tokens = append(tokens, b.String())
			b.Reset()
		}
	}
	for _, r := range s {
		switch {
		case r == '[':
			flush()
			bracket = true
		case r == ']':
			bracket = false
		case bracket:
		case r == '(':
			depth++
			b.WriteRune(r)
		case r == ')':
			depth--
			b.WriteRune(r)
		case depth == 0 && (r == ' ' || r == '\t' || r == '\n'):
			flush()
		default:
			b.WriteRune(r)
		}
	}
	flush()
	return tokens
}

// --- Line placement --------------------------------------------------------

// GridLine is a grid-row-start, grid-row-end, grid-column-start or
// grid-column-end value. The zero value is `auto`.
type GridLine struct {
	Line int    // 1-based line number, negative counts from the end; 0 if unset
	Span int    // span count; 0 if not spanning
	Name string // area name
}

// IsAuto is true if a line does not fix a position.
func (gl GridLine) IsAuto() bool {
	return gl.Line == 0 && gl.Name == ""
}

func (gl GridLine) String() string {
	switch {
	case gl.Span > 0:
		return fmt.Sprintf("span %d", gl.Span)
	case gl.Name != "":
		return gl.Name
	case gl.Line != 0:
		return strconv.Itoa(gl.Line)
	}
	return "auto"
}

// ParseGridLine interprets a grid line placement property.
func ParseGridLine(p style.Property) GridLine {
	fields := strings.Fields(strings.ToLower(string(p)))
	if len(fields) == 0 || (len(fields) == 1 && fields[0] == "auto") {
		return GridLine{}
	}
	if fields[0] == "span" {
		if len(fields) == 2 {
			if n, err := strconv.Atoi(fields[1]); err == nil && n > 0 {
				return GridLine{Span: n}
			}
		}
		return GridLine{Span: 1}
	}
	if n, err := strconv.Atoi(fields[0]); err == nil {
		if n == 0 {
			tracer().Debugf("grid line 0 is invalid, treated as auto")
			return GridLine{}
		}
		return GridLine{Line: n}
	}
	return GridLine{Name: fields[0]}
}

// GridArea is a rectangle of grid cells, given as 0-based, end-exclusive
// track indices.
type GridArea struct {
	RowStart, RowEnd int
	ColStart, ColEnd int
}

// TemplateAreas is a parsed grid-template-areas value.
type TemplateAreas struct {
	Rows, Cols int
	Areas      map[string]GridArea
}

// ParseTemplateAreas parses a grid-template-areas value like
//
//	"head head" "nav main"
//
// Rows of unequal length make the whole value invalid. Non-rectangular
// areas are dropped.
func ParseTemplateAreas(p style.Property) (TemplateAreas, error) {
	ta := TemplateAreas{Areas: map[string]GridArea{}}
	s := strings.TrimSpace(string(p))
	if s == "" || s == "none" {
		return ta, nil
	}
	var rows [][]string
	for _, part := range strings.Split(s, "\"") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		rows = append(rows, strings.Fields(part))
	}
	if len(rows) == 0 {
		return ta, nil
	}
	cols := len(rows[0])
	for _, row := range rows {
		if len(row) != cols {
			return TemplateAreas{Areas: map[string]GridArea{}}, fmt.Errorf("grid-template-areas: rows of unequal length")
		}
	}
	ta.Rows, ta.Cols = len(rows), cols
	cells := map[string]int{}
	for r, row := range rows {
		for c, name := range row {
			if strings.Trim(name, ".") == "" {
				continue
			}
			cells[name]++
			a, ok := ta.Areas[name]
			if !ok {
				ta.Areas[name] = GridArea{RowStart: r, RowEnd: r + 1, ColStart: c, ColEnd: c + 1}
				continue
			}
			a.RowStart, a.RowEnd = min(a.RowStart, r), max(a.RowEnd, r+1)
			a.ColStart, a.ColEnd = min(a.ColStart, c), max(a.ColEnd, c+1)
			ta.Areas[name] = a
		}
	}
	var err error
	for name, a := range ta.Areas {
		if (a.RowEnd-a.RowStart)*(a.ColEnd-a.ColStart) != cells[name] {
			delete(ta.Areas, name)
			err = fmt.Errorf("grid area %q is not rectangular", name)
		}
	}
	return ta, err
}
