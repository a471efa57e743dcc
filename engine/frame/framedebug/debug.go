/*
Package framedebug writes box trees in GraphViz DOT format.

After layout, every node is labelled with the box kind, the generating
element and the border box. Render the output with

	dot -Tsvg boxes.dot -o boxes.svg

*/
package framedebug

import (
	"fmt"
	"io"
	"strings"
	"text/template"

	"github.com/npillmayer/webframe/engine/frame"
	"github.com/npillmayer/webframe/engine/frame/boxtree"
)

// Parameters for GraphViz drawing.
type graphParams struct {
	Fontname string
	BoxTmpl  *template.Template
	EdgeTmpl *template.Template
}

// ToGraphViz creates a graphical representation of a box tree.
// It produces a DOT file format suitable as input for Graphviz, given a Writer.
func ToGraphViz(tree *boxtree.Tree, w io.Writer) error {
	if tree == nil || tree.Len() == 0 {
		_, err := io.WriteString(w, "digraph g {\n}\n")
		return err
	}
	header := template.Must(template.New("boxTree").Parse(graphHeadTmpl))
	gparams := graphParams{Fontname: "Helvetica"}
	gparams.BoxTmpl = template.Must(template.New("box").Funcs(
		template.FuncMap{
			"label": label,
			"fill":  fill,
		}).Parse(boxTmpl))
	gparams.EdgeTmpl = template.Must(template.New("boxedge").Parse(edgeTmpl))
	if err := header.Execute(w, gparams); err != nil {
		return err
	}
	var err error
	tree.Walk(tree.Root(), func(id boxtree.BoxID, b *boxtree.LayoutBox, _ int) bool {
		n := &node{Tree: tree, ID: id, B: b}
		if err = gparams.BoxTmpl.Execute(w, n); err != nil {
			return false
		}
		for _, ch := range b.Children {
			e := edge{From: nodeName(id), To: nodeName(ch)}
			if err = gparams.EdgeTmpl.Execute(w, e); err != nil {
				return false
			}
		}
		return true
	})
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, "}\n")
	return err
}

// Helper structs
type node struct {
	Tree *boxtree.Tree
	ID   boxtree.BoxID
	B    *boxtree.LayoutBox
}

func (n *node) Name() string {
	return nodeName(n.ID)
}

type edge struct {
	From, To string
}

func nodeName(id boxtree.BoxID) string {
	return fmt.Sprintf("node%05d", id)
}

// label is a quoted, multi-line DOT label for a box.
func label(n *node) string {
	var sb strings.Builder
	sb.WriteString(n.Tree.Name(n.ID))
	if n.B.Kind == frame.TextRun {
		sb.WriteString(`\n`)
		sb.WriteString(shortText(n.B.Text))
	}
	sb.WriteString(`\n`)
	sb.WriteString(n.B.Dim.BorderBox().String())
	if len(n.B.Lines) > 0 {
		fmt.Fprintf(&sb, `\n%d lines`, len(n.B.Lines))
	}
	return `"` + strings.Replace(sb.String(), `"`, `\"`, -1) + `"`
}

func shortText(txt string) string {
	if r := []rune(txt); len(r) > 10 {
		txt = string(r[:10]) + "…"
	}
	txt = strings.Replace(txt, "\n", `\\n`, -1)
	txt = strings.Replace(txt, "\t", `\\t`, -1)
	txt = strings.Replace(txt, " ", "␣", -1)
	return "“" + txt + "”"
}

func fill(n *node) string {
	switch n.B.Kind {
	case frame.TextRun:
		return "grey95"
	case frame.InlineContainer, frame.InlineBlock:
		return "lightyellow"
	case frame.FlexContainer, frame.FlexItem:
		return "darkseagreen2"
	case frame.GridContainer, frame.GridItem:
		return "lightpink"
	case frame.TableWrapper, frame.TableRowGroup, frame.TableRow, frame.TableCell:
		return "wheat"
	}
	if n.B.Kind.IsAnonymous() {
		return "grey90"
	}
	return "lightblue3"
}

// --- Templates --------------------------------------------------------

const graphHeadTmpl = `digraph g {
  graph [labelloc="t" label="" splines=true overlap=false rankdir = "LR"];
  graph [fontname = "{{ .Fontname }}" fontsize=12] ;
   node [fontname = "{{ .Fontname }}" fontsize=12] ;
   edge [fontname = "{{ .Fontname }}" fontsize=12] ;
`

const boxTmpl = `{{ if or .B.OutOfFlow .B.Floating }}{{ .Name }}	[ label={{ label . }} shape=box style="filled,dashed" fillcolor={{ fill . }} ] ;
{{ else }}{{ .Name }}	[ label={{ label . }} shape=box style=filled fillcolor={{ fill . }} ] ;
{{ end }}`

const edgeTmpl = `{{ .From }} -> {{ .To }} [weight=1] ;
`
