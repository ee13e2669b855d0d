package entity

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/caro-engine/internal/apperror"
)

// Board is a fixed rows × cols grid of cells.
type Board struct {
	rows  int
	cols  int
	cells [][]Symbol
}

func NewBoard(rows, cols int) *Board {
	board := &Board{rows: rows, cols: cols}
	board.Clear()

	return board
}

// Clear - empties every cell.
func (that *Board) Clear() {
	that.cells = make([][]Symbol, that.rows)
	for row := range that.cells {
		that.cells[row] = make([]Symbol, that.cols)
	}
}

func (that *Board) Rows() int {
	return that.rows
}

func (that *Board) Cols() int {
	return that.cols
}

func (that *Board) InBounds(row, col int) bool {
	return row >= 0 && row < that.rows && col >= 0 && col < that.cols
}

// Cell - returns the content of a cell.
func (that *Board) Cell(row, col int) (Symbol, error) {
	if !that.InBounds(row, col) {
		return Empty, fmt.Errorf("%w: (%d, %d) on %dx%d board", apperror.ErrOutOfRange, row, col, that.rows, that.cols)
	}

	return that.cells[row][col], nil
}

// Place - writes a symbol into an empty cell. It reports whether the cell was written.
func (that *Board) Place(row, col int, symbol Symbol) (bool, error) {
	current, err := that.Cell(row, col)
	if err != nil {
		return false, err
	}

	if current != Empty {
		return false, nil
	}

	that.cells[row][col] = symbol

	return true, nil
}

// EmptyCells - returns every empty cell in row-major order.
func (that *Board) EmptyCells() []Move {
	moves := make([]Move, 0, that.rows*that.cols)
	for row := 0; row < that.rows; row++ {
		for col := 0; col < that.cols; col++ {
			if that.cells[row][col] == Empty {
				moves = append(moves, Move{Row: row, Col: col})
			}
		}
	}

	return moves
}

// IsFull - true when no empty cell is left.
func (that *Board) IsFull() bool {
	for _, row := range that.cells {
		for _, cell := range row {
			if cell == Empty {
				return false
			}
		}
	}

	return true
}

// LinesByRow - returns a copy of the board rows.
func (that *Board) LinesByRow() [][]Symbol {
	lines := make([][]Symbol, that.rows)
	for row := range that.cells {
		lines[row] = append([]Symbol(nil), that.cells[row]...)
	}

	return lines
}

// LinesByColumn - returns the transposed view of the board.
func (that *Board) LinesByColumn() [][]Symbol {
	lines := make([][]Symbol, that.cols)
	for col := 0; col < that.cols; col++ {
		line := make([]Symbol, that.rows)
		for row := 0; row < that.rows; row++ {
			line[row] = that.cells[row][col]
		}
		lines[col] = line
	}

	return lines
}

// LinesByDiagonal - returns all diagonals of every length in both directions.
// The first rows+cols-1 lines run top-left to bottom-right, the rest run
// bottom-left to top-right.
func (that *Board) LinesByDiagonal() [][]Symbol {
	lines := make([][]Symbol, 0, 2*(that.rows+that.cols-1))

	// down-right, starting on the top row
	for col := 0; col < that.cols; col++ {
		lines = append(lines, that.walk(0, col, 1, 1))
	}
	// down-right, starting on the left column below the top row
	for row := 1; row < that.rows; row++ {
		lines = append(lines, that.walk(row, 0, 1, 1))
	}

	// up-right, starting on the bottom row
	for col := 0; col < that.cols; col++ {
		lines = append(lines, that.walk(that.rows-1, col, -1, 1))
	}
	// up-right, starting on the left column above the bottom row
	for row := 0; row < that.rows-1; row++ {
		lines = append(lines, that.walk(row, 0, -1, 1))
	}

	return lines
}

func (that *Board) walk(row, col, deltaRow, deltaCol int) []Symbol {
	var line []Symbol
	for that.InBounds(row, col) {
		line = append(line, that.cells[row][col])
		row += deltaRow
		col += deltaCol
	}

	return line
}

// String renders one line per row, e.g. "X.O".
func (that *Board) String() string {
	var sb strings.Builder
	for row, cells := range that.cells {
		if row > 0 {
			sb.WriteByte('\n')
		}
		for _, cell := range cells {
			sb.WriteString(cell.String())
		}
	}

	return sb.String()
}
