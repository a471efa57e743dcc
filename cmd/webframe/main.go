/*
Command webframe is an interactive inspector for the layout engine.

It loads an HTML file, lays it out and then accepts commands:

	layout [w h]     lay out again, optionally for a new viewport size (px)
	tree             print the box tree with border boxes
	query <xpath>    list the boxes generated by matching elements
	dot <file>       write the box tree in GraphViz DOT format
	help             list commands
	quit             leave

Usage:

	webframe [-trace level] [-width px] [-height px] [-css file] page.html

*/
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/npillmayer/webframe/core/dimen"
	"github.com/npillmayer/webframe/engine/frame/boxtree"
	"github.com/npillmayer/webframe/engine/frame/framedebug"
	"github.com/npillmayer/webframe/engine/page"
	"github.com/pterm/pterm"
)

// tracer traces with key 'webframe.cli'
func tracer() tracing.Trace {
	return tracing.Select("webframe.cli")
}

func main() {
	initDisplay()

	// command line flags
	tlevel := flag.String("trace", "Error", "Trace level [Debug|Info|Error]")
	width := flag.Int("width", 1024, "Viewport width in px")
	height := flag.Int("height", 768, "Viewport height in px")
	metrics := flag.String("metrics", page.MonospaceMetrics, "Text metrics [monospace|opentype]")
	cssfile := flag.String("css", "", "Additional style sheet")
	flag.Parse()

	// set up logging
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter":             "go",
		"trace.webframe.cli":          *tlevel,
		"trace.webframe.page":         *tlevel,
		"trace.webframe.frame.layout": *tlevel,
		"viewport.width":              *width,
		"viewport.height":             *height,
		"text.metrics":                *metrics,
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		fmt.Printf("error configuring tracing")
		os.Exit(1)
	}
	tracing.SetTraceSelector(trace2go.Selector())
	pterm.Info.Println("Welcome to the webframe layout inspector")
	if flag.NArg() != 1 {
		pterm.Error.Println("Usage: webframe [flags] page.html")
		flag.PrintDefaults()
		os.Exit(2)
	}
	//
	intp := &Intp{}
	if err := intp.load(flag.Arg(0), *cssfile, page.ConfigFrom(conf)); err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(3)
	}
	repl, err := readline.New("webframe > ")
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(4)
	}
	intp.repl = repl
	//
	// start receiving commands
	pterm.Info.Println("Quit with <ctrl>D") // inform user how to stop the CLI
	intp.REPL()                             // go into interactive mode
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " !  ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// Intp is our interpreter object
type Intp struct {
	page *page.Page
	repl *readline.Instance
}

func (intp *Intp) load(filename, cssfile string, cfg page.Config) error {
	f, err := os.Open(filename)
	if err != nil {
		return err
	}
	defer f.Close()
	var extra []string
	if cssfile != "" {
		sheet, err := os.ReadFile(cssfile)
		if err != nil {
			return err
		}
		extra = append(extra, string(sheet))
	}
	if intp.page, err = page.Load(f, cfg, extra...); err != nil {
		return err
	}
	vp := intp.page.Viewport()
	pterm.Printfln("loaded %s: %d boxes laid out for %s×%s", filename, intp.page.Boxes.Len(), vp.W, vp.H)
	return nil
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		quit, err := intp.execute(strings.Fields(line))
		if err != nil {
			pterm.Error.Println(err.Error())
			continue
		}
		if quit {
			break
		}
	}
	pterm.Info.Println("Good bye!")
}

func (intp *Intp) execute(cmd []string) (quit bool, err error) {
	tracer().Infof("command = %v", cmd)
	switch strings.ToLower(cmd[0]) {
	case "quit", "exit":
		return true, nil
	case "layout":
		return false, intp.layout(cmd[1:])
	case "tree":
		return false, pterm.DefaultTree.WithRoot(intp.treeNode(intp.page.Boxes.Root())).Render()
	case "query":
		if len(cmd) < 2 {
			return false, fmt.Errorf("usage: query <xpath>")
		}
		return false, intp.query(strings.Join(cmd[1:], " "))
	case "dot":
		if len(cmd) != 2 {
			return false, fmt.Errorf("usage: dot <file>")
		}
		return false, intp.dot(cmd[1])
	default:
		help()
	}
	return false, nil
}

func (intp *Intp) layout(args []string) error {
	vp := intp.page.Viewport()
	w, h := vp.W, vp.H
	if len(args) == 2 {
		pw, err1 := strconv.Atoi(args[0])
		ph, err2 := strconv.Atoi(args[1])
		if err1 != nil || err2 != nil {
			return fmt.Errorf("viewport size not numeric: %v", args)
		}
		w, h = dimen.Dimen(pw)*dimen.PX, dimen.Dimen(ph)*dimen.PX
	} else if len(args) != 0 {
		return fmt.Errorf("usage: layout [w h]")
	}
	if err := intp.page.Relayout(w, h); err != nil {
		return err
	}
	pterm.Printfln("laid out %d boxes for %s×%s", intp.page.Boxes.Len(), w, h)
	return nil
}

func (intp *Intp) treeNode(id boxtree.BoxID) pterm.TreeNode {
	boxes := intp.page.Boxes
	b := boxes.Box(id)
	text := boxes.Name(id) + " " + b.Dim.BorderBox().String()
	if b.Text != "" {
		text += fmt.Sprintf(" %q", b.Text)
	}
	node := pterm.TreeNode{Text: text}
	for _, ch := range b.Children {
		node.Children = append(node.Children, intp.treeNode(ch))
	}
	return node
}

func (intp *Intp) query(expr string) error {
	ids, err := intp.page.Select(expr)
	if err != nil {
		return err
	}
	data := pterm.TableData{{"box", "x", "y", "width", "height", "margin box"}}
	for _, id := range ids {
		b := intp.page.Boxes.Box(id)
		bb := b.Dim.BorderBox()
		data = append(data, []string{
			intp.page.Boxes.Name(id),
			bb.X.String(), bb.Y.String(), bb.W.String(), bb.H.String(),
			b.Dim.MarginBox().String(),
		})
	}
	pterm.Printfln("%d boxes match %s", len(ids), expr)
	return pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

func (intp *Intp) dot(filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	if err := framedebug.ToGraphViz(intp.page.Boxes, f); err != nil {
		f.Close()
		return err
	}
	pterm.Printfln("box tree written to %s", filename)
	return f.Close()
}

func help() {
	pterm.Info.Println("Commands")
	pterm.Println(`
	layout [w h]     lay out again, optionally for a new viewport size (px)
	tree             print the box tree with border boxes
	query <xpath>    list the boxes generated by matching elements
	dot <file>       write the box tree in GraphViz DOT format
	help             this text
	quit             leave (or <ctrl>D)
	`)
}
