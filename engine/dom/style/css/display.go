package css

import (
	"bytes"
	"fmt"
	"strings"
)

// DisplayMode is a type for CSS property "display".
type DisplayMode uint16

// Flags for box context and display mode (outer and inner).
const (
	NoMode            DisplayMode = 0      // unset or error condition
	DisplayNone       DisplayMode = 0x0001 // CSS outer display = none
	FlowMode          DisplayMode = 0x0002 // CSS inner display = flow
	BlockMode         DisplayMode = 0x0004 // CSS outer display = block
	InlineMode        DisplayMode = 0x0008 // CSS outer display = inline
	ListItemMode      DisplayMode = 0x0010 // CSS list-item display
	FlowRoot          DisplayMode = 0x0020 // CSS inner display = flow-root
	FlexMode          DisplayMode = 0x0040 // CSS inner display = flex
	GridMode          DisplayMode = 0x0080 // CSS inner display = grid
	TableMode         DisplayMode = 0x0100 // CSS inner display = table
	ContentsMode      DisplayMode = 0x0200 // CSS contents display mode
	TableRowGroupMode DisplayMode = 0x0400 // table-row-group, -header-group, -footer-group
	TableRowMode      DisplayMode = 0x0800 // table-row
	TableCellMode     DisplayMode = 0x1000 // table-cell
	TableColumnMode   DisplayMode = 0x2000 // table-column(-group), generates no box
	TableCaptionMode  DisplayMode = 0x4000 // table-caption
)

var allDisplayModes = []DisplayMode{
	DisplayNone, FlowMode, BlockMode, InlineMode, ListItemMode, FlowRoot, FlexMode,
	GridMode, TableMode, ContentsMode, TableRowGroupMode, TableRowMode, TableCellMode,
	TableColumnMode, TableCaptionMode,
}

var displayModeNames = map[DisplayMode]string{
	DisplayNone:       "none",
	FlowMode:          "flow",
	BlockMode:         "block",
	InlineMode:        "inline",
	ListItemMode:      "list-item",
	FlowRoot:          "flow-root",
	FlexMode:          "flex",
	GridMode:          "grid",
	TableMode:         "table",
	ContentsMode:      "contents",
	TableRowGroupMode: "table-row-group",
	TableRowMode:      "table-row",
	TableCellMode:     "table-cell",
	TableColumnMode:   "table-column",
	TableCaptionMode:  "table-caption",
}

const outerMask = BlockMode | InlineMode | DisplayNone | ContentsMode
const innerMask = FlowMode | FlowRoot | FlexMode | GridMode | TableMode

// Set sets a given atomic mode within this display mode.
func (disp *DisplayMode) Set(d DisplayMode) {
	*disp = (*disp) | d
}

// Contains checks if a display mode contains a given atomic mode.
// Returns false for d = NoMode.
func (disp DisplayMode) Contains(d DisplayMode) bool {
	return d != NoMode && (disp&d > 0)
}

// Overlaps returns true if a given display mode shares at least one atomic
// mode flag with disp (excluding NoMode).
func (disp DisplayMode) Overlaps(d DisplayMode) bool {
	return disp&d != 0
}

// Outer returns the outer display type (block or inline) of a mode.
func (disp DisplayMode) Outer() DisplayMode {
	return disp & outerMask
}

// Inner returns the inner display type (flow, flow-root, flex, grid or table).
// Modes without an explicit inner type default to flow.
func (disp DisplayMode) Inner() DisplayMode {
	inner := disp & innerMask
	if inner == NoMode {
		return FlowMode
	}
	return inner
}

// IsBlockLevel is true for modes which participate in a block formatting context.
func (disp DisplayMode) IsBlockLevel() bool {
	return disp.Contains(BlockMode) || disp.Contains(ListItemMode)
}

// IsInlineLevel is true for modes which participate in an inline formatting context.
func (disp DisplayMode) IsInlineLevel() bool {
	return disp.Contains(InlineMode)
}

// IsTableInternal is true for row groups, rows, cells, columns and captions.
func (disp DisplayMode) IsTableInternal() bool {
	return disp.Overlaps(TableRowGroupMode | TableRowMode | TableCellMode |
		TableColumnMode | TableCaptionMode)
}

func (disp DisplayMode) String() string {
	if disp == NoMode {
		return "NoMode"
	}
	return disp.FullString()
}

// FullString returns all atomic modes set in a display mode.
func (disp DisplayMode) FullString() string {
	var b bytes.Buffer
	first := true
	for _, m := range allDisplayModes {
		if disp.Contains(m) {
			if !first {
				b.WriteString(" ")
			}
			first = false
			b.WriteString(displayModeNames[m])
		}
	}
	return b.String()
}

// Symbol returns a Unicode symbol for a mode.
func (disp DisplayMode) Symbol() string {
	if disp == FlowMode {
		return "▧"
	} else if disp.Contains(FlexMode) {
		return "▤"
	} else if disp.Contains(GridMode) {
		return "◰"
	} else if disp.Contains(TableMode) || disp.IsTableInternal() {
		return "▥"
	} else if disp.Contains(ListItemMode) {
		return "▣"
	} else if disp.Contains(BlockMode) {
		return "▩"
	} else if disp.Contains(InlineMode) {
		return "►"
	}
	return "?"
}

var displayKeywords = map[string]DisplayMode{
	"none":               DisplayNone,
	"contents":           ContentsMode,
	"block":              BlockMode | FlowMode,
	"inline":             InlineMode | FlowMode,
	"inline-block":       InlineMode | FlowRoot,
	"flow-root":          BlockMode | FlowRoot,
	"list-item":          BlockMode | FlowMode | ListItemMode,
	"flex":               BlockMode | FlexMode,
	"inline-flex":        InlineMode | FlexMode,
	"grid":               BlockMode | GridMode,
	"inline-grid":        InlineMode | GridMode,
	"table":              BlockMode | TableMode,
	"inline-table":       InlineMode | TableMode,
	"table-row-group":    TableRowGroupMode,
	"table-header-group": TableRowGroupMode,
	"table-footer-group": TableRowGroupMode,
	"table-row":          TableRowMode,
	"table-cell":         TableCellMode | FlowRoot,
	"table-column":       TableColumnMode,
	"table-column-group": TableColumnMode,
	"table-caption":      TableCaptionMode | FlowRoot,
}

// ParseDisplay returns mode flags from a display property string (outer and inner).
// It understands the legacy one-keyword syntax as well as two-keyword values
// like `inline flex`. Unknown values result in block mode and an error.
func ParseDisplay(display string) (DisplayMode, error) {
	display = strings.ToLower(strings.TrimSpace(display))
	if display == "" {
		return NoMode, nil
	}
	if mode, ok := displayKeywords[display]; ok {
		return mode, nil
	}
	fields := strings.Fields(display)
	if len(fields) == 2 {
		var mode DisplayMode
		for _, f := range fields {
			switch f {
			case "block":
				mode.Set(BlockMode)
			case "inline":
				mode.Set(InlineMode)
			case "flow":
				mode.Set(FlowMode)
			case "flow-root":
				mode.Set(FlowRoot)
			case "flex":
				mode.Set(FlexMode)
			case "grid":
				mode.Set(GridMode)
			case "table":
				mode.Set(TableMode)
			default:
				return BlockMode | FlowMode, fmt.Errorf("unknown display mode: %s", display)
			}
		}
		if mode.Outer() != NoMode && mode&innerMask != NoMode {
			return mode, nil
		}
	}
	return BlockMode | FlowMode, fmt.Errorf("unknown display mode: %s", display)
}
