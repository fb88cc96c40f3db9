// alphabet.go
// This file defines the tile alphabet, board geometry and the
// miscellaneous constants shared by the board, rack, move and
// GADDAG types.

package wordplay

import "fmt"

const (
	// BoardSize is the number of rows and columns on the board.
	BoardSize = 15
	// NumCells is the total number of cells on the board.
	NumCells = BoardSize * BoardSize
	// RackSize is the number of slots in a rack.
	RackSize = 7
	// CenterCell is the board index of the fixed opening-move cell.
	CenterCell = (BoardSize/2)*BoardSize + BoardSize/2

	// EmptyTile marks a vacant board or line-buffer cell.
	EmptyTile byte = '.'
	// Blank is the rack symbol for a wildcard tile.
	Blank byte = '?'

	// letterCount is the number of distinct letters A-Z.
	letterCount = 26
	// blankIndex is the GADDAG edge index reserved for the blank.
	blankIndex = letterCount
	// pivotIndex is the GADDAG edge index reserved for the PIVOT marker.
	pivotIndex = letterCount + 1
	// edgeCount is the total number of distinct edge indices a node can have.
	edgeCount = letterCount + 2
)

// CellIndex turns a (row, col) pair into a flat board index.
func CellIndex(row, col int) int {
	return row*BoardSize + col
}

// RowCol turns a flat board index back into a (row, col) pair.
func RowCol(index int) (row, col int) {
	return index / BoardSize, index % BoardSize
}

// tileIndex maps a tile symbol (an uppercase letter or the blank) to its
// GADDAG edge index. It panics on any other byte, since every tile that
// reaches the board, rack or GADDAG is validated at the boundary.
func tileIndex(tile byte) int {
	switch {
	case tile >= 'A' && tile <= 'Z':
		return int(tile - 'A')
	case tile == Blank:
		return blankIndex
	default:
		panic(fmt.Sprintf("wordplay: invalid tile symbol %q", tile))
	}
}

// indexTile is the inverse of tileIndex, restricted to the letters
// (the blank and pivot indices never need to round-trip back to a
// placeable symbol).
func indexTile(index int) byte {
	if index < 0 || index >= letterCount {
		panic(fmt.Sprintf("wordplay: invalid letter index %d", index))
	}
	return byte('A' + index)
}

// isValidBoardTile reports whether b is a symbol that may occupy a
// board cell: an uppercase letter (a placed normal tile, or a placed
// blank shown as its assigned letter) or EmptyTile.
func isValidBoardTile(b byte) bool {
	return b == EmptyTile || (b >= 'A' && b <= 'Z')
}

// isValidRackTile reports whether b is a symbol that may occupy a
// rack slot: an uppercase letter or the blank.
func isValidRackTile(b byte) bool {
	return (b >= 'A' && b <= 'Z') || b == Blank
}
