// board.go
// Copyright (C) 2023 Vilhjálmur Þorsteinsson / Miðeind ehf.
// Adapted for the GADDAG-based move generator.

/*

This program is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

This program is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with this program.  If not, see <http://www.gnu.org/licenses/>.

*/

package wordplay

import "fmt"

// Premium-square codes. A square carries at most one of these;
// LetterMultiplier/WordMultiplier never need to combine a letter and a
// word multiplier in the same cell.
const (
	PremiumNone = iota
	PremiumDoubleLetter
	PremiumTripleLetter
	PremiumQuadLetter
	PremiumDoubleWord
	PremiumTripleWord
	PremiumQuadWord
)

// PremiumLayout is a fixed 225-entry table of premium-square codes.
type PremiumLayout [NumCells]int

// LetterMultiplier returns the letter-score multiplier at index.
func (p *PremiumLayout) LetterMultiplier(index int) int {
	switch p[index] {
	case PremiumDoubleLetter:
		return 2
	case PremiumTripleLetter:
		return 3
	case PremiumQuadLetter:
		return 4
	default:
		return 1
	}
}

// WordMultiplier returns the word-score multiplier at index.
func (p *PremiumLayout) WordMultiplier(index int) int {
	switch p[index] {
	case PremiumDoubleWord:
		return 2
	case PremiumTripleWord:
		return 3
	case PremiumQuadWord:
		return 4
	default:
		return 1
	}
}

// StandardPremiumLayout is the classic 15x15 Scrabble premium-square
// layout, collapsed from the teacher's separate letter/word multiplier
// matrices (board.go's WORD_MULTIPLIERS_STANDARD / LETTER_MULTIPLIERS_STANDARD)
// into the single flat code table this package uses downstream for scoring.
var StandardPremiumLayout = buildStandardPremiumLayout()

func buildStandardPremiumLayout() *PremiumLayout {
	var p PremiumLayout
	tw := [][2]int{{0, 0}, {0, 7}, {0, 14}, {7, 0}, {7, 14}, {14, 0}, {14, 7}, {14, 14}}
	dw := [][2]int{
		{1, 1}, {2, 2}, {3, 3}, {4, 4}, {10, 10}, {11, 11}, {12, 12}, {13, 13},
		{1, 13}, {2, 12}, {3, 11}, {4, 10}, {10, 4}, {11, 3}, {12, 2}, {13, 1},
	}
	tl := [][2]int{
		{1, 5}, {1, 9}, {5, 1}, {5, 5}, {5, 9}, {5, 13},
		{9, 1}, {9, 5}, {9, 9}, {9, 13}, {13, 5}, {13, 9},
	}
	dl := [][2]int{
		{0, 3}, {0, 11}, {2, 6}, {2, 8}, {3, 0}, {3, 7}, {3, 14},
		{6, 2}, {6, 6}, {6, 8}, {6, 12}, {7, 3}, {7, 11},
		{8, 2}, {8, 6}, {8, 8}, {8, 12}, {11, 0}, {11, 7}, {11, 14},
		{12, 6}, {12, 8}, {14, 3}, {14, 11},
	}
	for _, rc := range dl {
		p[CellIndex(rc[0], rc[1])] = PremiumDoubleLetter
	}
	for _, rc := range tl {
		p[CellIndex(rc[0], rc[1])] = PremiumTripleLetter
	}
	for _, rc := range dw {
		p[CellIndex(rc[0], rc[1])] = PremiumDoubleWord
	}
	for _, rc := range tw {
		p[CellIndex(rc[0], rc[1])] = PremiumTripleWord
	}
	p[CenterCell] = PremiumDoubleWord
	return &p
}

// Board is a 15x15 Scrabble board, represented as a flat array of
// cells plus a running occupied-cell count.
type Board struct {
	cells [NumCells]byte
	count int
}

// NewBoard returns an empty board.
func NewBoard() *Board {
	b := &Board{}
	for i := range b.cells {
		b.cells[i] = EmptyTile
	}
	return b
}

func validateCellIndex(index int) {
	if index < 0 || index >= NumCells {
		panic(fmt.Sprintf("wordplay: board index %d out of range", index))
	}
}

// Get returns the tile symbol at index, or EmptyTile if the cell is vacant.
func (b *Board) Get(index int) byte {
	validateCellIndex(index)
	return b.cells[index]
}

// Place sets a single cell directly, without going through a Move. It
// is used to seed a board from an external board string before move
// generation runs.
func (b *Board) Place(tile byte, index int) {
	validateCellIndex(index)
	if !isValidBoardTile(tile) {
		panic(fmt.Sprintf("wordplay: invalid board tile %q", tile))
	}
	if b.cells[index] == EmptyTile && tile != EmptyTile {
		b.count++
	} else if b.cells[index] != EmptyTile && tile == EmptyTile {
		b.count--
	}
	b.cells[index] = tile
}

// MakeMove commits a generated move to the board. It panics if any of
// the move's target cells is already occupied, since that would mean
// the generator or caller violated the "only empty cells" invariant.
func (b *Board) MakeMove(m Move) {
	for i := 0; i < m.Len; i++ {
		pos := m.Positions[i]
		validateCellIndex(pos)
		if b.cells[pos] != EmptyTile {
			panic(fmt.Sprintf("wordplay: make_move: cell %d already occupied", pos))
		}
		b.cells[pos] = m.Tiles[i]
	}
	b.count += m.Len
}

// UndoMove reverts a move previously committed with MakeMove.
func (b *Board) UndoMove(m Move) {
	for i := 0; i < m.Len; i++ {
		b.cells[m.Positions[i]] = EmptyTile
	}
	b.count -= m.Len
}

// IsEmptyBoard reports whether the board has no tiles at all.
func (b *Board) IsEmptyBoard() bool {
	return b.count == 0
}

// IsAnchor reports whether index is an empty cell horizontally or
// vertically adjacent to at least one occupied cell.
func (b *Board) IsAnchor(index int) bool {
	validateCellIndex(index)
	if b.cells[index] != EmptyTile {
		return false
	}
	row, col := RowCol(index)
	if row > 0 && b.cells[index-BoardSize] != EmptyTile {
		return true
	}
	if row < BoardSize-1 && b.cells[index+BoardSize] != EmptyTile {
		return true
	}
	if col > 0 && b.cells[index-1] != EmptyTile {
		return true
	}
	if col < BoardSize-1 && b.cells[index+1] != EmptyTile {
		return true
	}
	return false
}
