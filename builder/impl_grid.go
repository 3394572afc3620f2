// SPDX-License-Identifier: MIT
// Package: lvpath/builder
//
// impl_grid.go - Grid(width, conn) constructor.
//
// Layout:
//   - Nodes 1..n are cells of a width×(n/width) grid in row-major order:
//     id = y*width + x + 1, with (0,0) at node 1.
//   - Conn4 joins orthogonal neighbors; Conn8 adds the diagonals.
//
// Determinism:
//   - Cells are visited row by row; each cell emits its forward neighbors
//     (right, down-left, down, down-right) so every pair is added once.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvpath/core"
)

const methodGrid = "Grid"

// Connectivity selects which neighboring cells a Grid joins.
type Connectivity int

const (
	// Conn4 joins each cell to its left, right, upper and lower neighbors.
	Conn4 Connectivity = iota
	// Conn8 additionally joins diagonal neighbors.
	Conn8
)

// GridID maps cell (x, y) of a grid with the given width to its node id.
func GridID(x, y, width int) int {
	return y*width + x + 1
}

// GridCoord maps a node id back to its (x, y) cell.
func GridCoord(id, width int) (x, y int) {
	return (id - 1) % width, (id - 1) / width
}

// Grid returns a Constructor that lays nodes 1..n out as a grid of the given
// width and joins neighboring cells. Requires width ≥ 1 and n divisible by width.
func Grid(width int, conn Connectivity) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		n := g.Size()
		if width < 1 || n%width != 0 {
			return fmt.Errorf("%s: width=%d does not divide n=%d: %w", methodGrid, width, n, ErrInvalidGrid)
		}
		height := n / width

		offsets := [][2]int{{1, 0}, {0, 1}}
		if conn == Conn8 {
			offsets = [][2]int{{1, 0}, {-1, 1}, {0, 1}, {1, 1}}
		}

		for y := 0; y < height; y++ {
			for x := 0; x < width; x++ {
				for _, d := range offsets {
					nx, ny := x+d[0], y+d[1]
					if nx < 0 || nx >= width || ny >= height {
						continue
					}
					if err := addEdge(g, cfg, methodGrid, GridID(x, y, width), GridID(nx, ny, width)); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
