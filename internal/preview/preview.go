// Package preview draws laid-out media cards as terminal text.
//
// Each role is painted with its own glyph and colour, in child order, so the
// icon is drawn over the attachment and the text band the way a host would
// composite them. A terminal cell is roughly twice as tall as it is wide, so
// one cell covers Scale pixels horizontally and 2*Scale vertically.
package preview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/grindlemire/mediaview"
)

// DefaultColumns is the target grid width when neither Scale nor Columns is set.
const DefaultColumns = 80

// Options controls rendering.
type Options struct {
	// Scale is pixels per cell column. Zero picks the smallest scale that
	// fits the container in Columns.
	Scale int

	// Columns is the target grid width in cells. Zero means DefaultColumns.
	Columns int

	// Renderer styles the output. Nil uses lipgloss's default renderer,
	// which follows the capabilities of stdout.
	Renderer *lipgloss.Renderer
}

var (
	glyphs = [mediaview.ChildCount]string{"A", "T", "D", "I"}
	colors = [mediaview.ChildCount]lipgloss.Color{"39", "213", "150", "214"}
)

const (
	emptyCell   = -1
	paddingCell = -2
)

// FitScale returns the smallest scale at which width pixels fit in columns cells.
func FitScale(width, columns int) int {
	if columns <= 0 {
		columns = DefaultColumns
	}
	if width <= 0 {
		return 1
	}
	return max(ceilDiv(width, columns), 1)
}

// Render rasterises p inside c and returns the framed grid followed by a legend.
// The grid grows to include placements that overflow the container.
func Render(c mediaview.Container, p mediaview.Placements, opts Options) string {
	r := opts.Renderer
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	scale := opts.Scale
	if scale <= 0 {
		scale = FitScale(c.Width, opts.Columns)
	}

	area := mediaview.NewRect(0, 0, c.Width, c.Height).Union(p.Bounds())
	g := newGrid(area, scale, scale*2)
	g.paint(c.ContentRect(), emptyCell)
	for _, role := range mediaview.Roles {
		g.paint(p.Get(role), int(role))
	}

	frame := r.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240"))

	return lipgloss.JoinVertical(lipgloss.Left,
		frame.Render(g.render(r)),
		legend(r, p, scale),
	)
}

func legend(r *lipgloss.Renderer, p mediaview.Placements, scale int) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "scale 1:%d\n", scale)
	for _, role := range mediaview.Roles {
		rect := p.Get(role)
		glyph := r.NewStyle().Foreground(colors[role]).Bold(true).Render(glyphs[role])
		fmt.Fprintf(&sb, "%s %-11s (%d,%d)-(%d,%d) %dx%d\n",
			glyph, role, rect.X, rect.Y, rect.Right(), rect.Bottom(), rect.Width, rect.Height)
	}
	return strings.TrimSuffix(sb.String(), "\n")
}

// grid maps each cell to the role painted there, or to emptyCell or paddingCell.
type grid struct {
	origin       mediaview.Rect
	cellW, cellH int
	cells        [][]int
}

func newGrid(area mediaview.Rect, cellW, cellH int) *grid {
	cols := ceilDiv(max(area.Width, 0), cellW)
	rows := ceilDiv(max(area.Height, 0), cellH)
	cells := make([][]int, rows)
	for y := range cells {
		cells[y] = make([]int, cols)
		for x := range cells[y] {
			cells[y][x] = paddingCell
		}
	}
	return &grid{origin: area, cellW: cellW, cellH: cellH, cells: cells}
}

// paint marks every cell r touches. Empty rectangles paint nothing.
func (g *grid) paint(r mediaview.Rect, v int) {
	if r.IsEmpty() {
		return
	}
	x0 := (r.X - g.origin.X) / g.cellW
	x1 := ceilDiv(r.Right()-g.origin.X, g.cellW)
	y0 := (r.Y - g.origin.Y) / g.cellH
	y1 := ceilDiv(r.Bottom()-g.origin.Y, g.cellH)

	for y := max(y0, 0); y < min(y1, len(g.cells)); y++ {
		row := g.cells[y]
		for x := max(x0, 0); x < min(x1, len(row)); x++ {
			row[x] = v
		}
	}
}

func (g *grid) render(r *lipgloss.Renderer) string {
	lines := make([]string, len(g.cells))
	for y, row := range g.cells {
		var sb strings.Builder
		for x := 0; x < len(row); {
			v := row[x]
			n := 1
			for x+n < len(row) && row[x+n] == v {
				n++
			}
			sb.WriteString(cellRun(r, v, n))
			x += n
		}
		lines[y] = sb.String()
	}
	return strings.Join(lines, "\n")
}

func cellRun(r *lipgloss.Renderer, v, n int) string {
	switch v {
	case paddingCell:
		return strings.Repeat(" ", n)
	case emptyCell:
		return r.NewStyle().Faint(true).Render(strings.Repeat("·", n))
	default:
		return r.NewStyle().Foreground(colors[v]).Render(strings.Repeat(glyphs[v], n))
	}
}

func ceilDiv(n, d int) int {
	return (n + d - 1) / d
}
