package cli

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/flowpath/d8"
	"github.com/katalvlaran/flowpath/raster"
	"github.com/katalvlaran/flowpath/trace"
)

var glyphs = map[d8.Code]string{
	d8.East:      "→",
	d8.SouthEast: "↘",
	d8.South:     "↓",
	d8.SouthWest: "↙",
	d8.West:      "←",
	d8.NorthWest: "↖",
	d8.North:     "↑",
	d8.NorthEast: "↗",
	d8.Sink:      "·",
	d8.NoData:    "×",
}

func glyph(c d8.Code) string {
	if s, ok := glyphs[c]; ok {
		return s
	}
	return "?"
}

// renderGrid draws g one glyph per cell. Path cells are highlighted, the start
// cell is bold and the stop cell (when on the grid) is marked in red. Colours
// follow the terminal profile detected for out; plain writers get plain text.
func renderGrid(out io.Writer, g *raster.Grid, res trace.Result) string {
	r := lipgloss.NewRenderer(out)
	var (
		plainStyle = r.NewStyle().Foreground(lipgloss.Color("244"))
		pathStyle  = r.NewStyle().Foreground(lipgloss.Color("12"))
		startStyle = r.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
		stopStyle  = r.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
		titleStyle = r.NewStyle().Bold(true)
	)

	onPath := make(map[trace.Point]bool, len(res.Path))
	for _, p := range res.Path {
		onPath[p] = true
	}
	var start trace.Point
	if len(res.Path) > 0 {
		start = res.Path[0]
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(statusLine(res)))
	b.WriteByte('\n')
	for row := 0; row < g.Rows(); row++ {
		cells := make([]string, g.Cols())
		for col := 0; col < g.Cols(); col++ {
			p := trace.Point{Row: row, Col: col}
			s := glyph(g.At(row, col))
			switch {
			case onPath[p] && p == start:
				s = startStyle.Render(s)
			case p == res.Stop && res.Status != trace.OutOfBounds:
				s = stopStyle.Render(s)
			case onPath[p]:
				s = pathStyle.Render(s)
			default:
				s = plainStyle.Render(s)
			}
			cells[col] = s
		}
		b.WriteString(strings.Join(cells, " "))
		b.WriteByte('\n')
	}

	return b.String()
}
