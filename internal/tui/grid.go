package tui

import (
	"math"
	"strings"

	"github.com/leapstack-labs/mcpi/internal/canvas"
	"github.com/leapstack-labs/mcpi/pkg/estimator"
)

type cell uint8

const (
	cellEmpty cell = iota
	cellCircle
	cellInside
	cellOutside
)

// grid is a character canvas: the unit circle outline plus plotted points.
type grid struct {
	cols, rows int
	cells      []cell
	plotted    int
}

func newGrid(cols, rows int) *grid {
	g := &grid{cols: cols, rows: rows, cells: make([]cell, cols*rows)}
	g.reset()
	return g
}

// reset removes every point and redraws the circle outline.
func (g *grid) reset() {
	clear(g.cells)
	g.plotted = 0
	steps := 8 * (g.cols + g.rows)
	for i := range steps {
		theta := 2 * math.Pi * float64(i) / float64(steps)
		col, row := canvas.Cell(math.Cos(theta), math.Sin(theta), g.cols, g.rows)
		g.cells[row*g.cols+col] = cellCircle
	}
}

func (g *grid) plot(p estimator.Point) {
	col, row := canvas.Cell(p.X, p.Y, g.cols, g.rows)
	if p.Inside {
		g.cells[row*g.cols+col] = cellInside
	} else {
		g.cells[row*g.cols+col] = cellOutside
	}
	g.plotted++
}

// copyFrom makes g show the same cells and count as src.
func (g *grid) copyFrom(src *grid) {
	copy(g.cells, src.cells)
	g.plotted = src.plotted
}

func (g *grid) at(col, row int) cell {
	return g.cells[row*g.cols+col]
}

func (g *grid) render(st styles) string {
	var b strings.Builder
	for row := range g.rows {
		for col := range g.cols {
			switch g.at(col, row) {
			case cellCircle:
				b.WriteString(st.circle.Render("·"))
			case cellInside:
				b.WriteString(st.inside.Render("•"))
			case cellOutside:
				b.WriteString(st.outside.Render("•"))
			default:
				b.WriteByte(' ')
			}
		}
		if row < g.rows-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}
