// scoring.go
// Package scoring is a separate, optional, non-hot-path scoring
// helper: it turns a wordplay.Move and the wordplay.Board it was
// played against into a Scrabble point total. Grounded on the
// teacher's move.go (TileMove.Score), board.go's letter/word
// multiplier tables and bag.go's per-letter TileSet.Scores maps,
// collapsed into a single English letter-value table and the shared
// wordplay.PremiumLayout rather than re-deriving multipliers from a
// matrix of Square values.
package scoring

import "wordplay"

// BingoBonus is the additional points awarded for using an entire
// RackSize-tile rack in a single move.
const BingoBonus = 50

// LetterValues maps an uppercase letter to its standard English point
// value, copied from the teacher's bag.go EnglishTileSet.Scores.
var LetterValues = map[byte]int{
	'A': 1, 'B': 3, 'C': 3, 'D': 2, 'E': 1,
	'F': 4, 'G': 2, 'H': 4, 'I': 1, 'J': 8,
	'K': 5, 'L': 1, 'M': 3, 'N': 1, 'O': 1,
	'P': 3, 'Q': 10, 'R': 1, 'S': 1, 'T': 1,
	'U': 1, 'V': 4, 'W': 4, 'X': 8, 'Y': 4,
	'Z': 10,
}

// Score computes the point value of m as played against board, using
// layout for premium squares and values for letter point values.
//
// Move does not record which rack slot supplied each placed tile, so
// there is no way to tell here whether a given placed letter came
// from a blank or from the matching lettered tile; every placed
// letter scores at full value. This follows from Move's data model
// (see DESIGN.md).
func Score(board *wordplay.Board, m wordplay.Move, values map[byte]int, layout *wordplay.PremiumLayout) int {
	if m.Len == 0 {
		return 0
	}
	placed := make(map[int]byte, m.Len)
	for i := 0; i < m.Len; i++ {
		placed[m.Positions[i]] = m.Tiles[i]
	}
	horizontal := isHorizontalMove(m)

	total := mainWordScore(board, placed, m, horizontal, values, layout)
	for pos := range placed {
		total += crossWordScore(board, placed, pos, !horizontal, values, layout)
	}
	if m.Len == wordplay.RackSize {
		total += BingoBonus
	}
	return total
}

func isHorizontalMove(m wordplay.Move) bool {
	if m.Len < 2 {
		return true
	}
	row0, _ := wordplay.RowCol(m.Positions[0])
	for i := 1; i < m.Len; i++ {
		row, _ := wordplay.RowCol(m.Positions[i])
		if row != row0 {
			return false
		}
	}
	return true
}

// mainWordScore walks the full primary-axis word (including any
// pre-existing tiles it touches), applying premium multipliers only
// to the newly placed cells.
func mainWordScore(board *wordplay.Board, placed map[int]byte, m wordplay.Move, horizontal bool, values map[byte]int, layout *wordplay.PremiumLayout) int {
	start := wordStart(board, placed, m.Positions[0], horizontal)
	score, wordMult := 0, 1
	pos := start
	for {
		tile, isNew := placed[pos]
		if !isNew {
			tile = board.Get(pos)
		}
		if tile == wordplay.EmptyTile {
			break
		}
		val := values[tile]
		if isNew {
			score += val * layout.LetterMultiplier(pos)
			wordMult *= layout.WordMultiplier(pos)
		} else {
			score += val
		}
		next, ok := step(pos, horizontal)
		if !ok {
			break
		}
		pos = next
	}
	return score * wordMult
}

// occupied reports whether pos holds a tile, either newly placed this
// move or already on the board.
func occupied(board *wordplay.Board, placed map[int]byte, pos int) bool {
	if _, isNew := placed[pos]; isNew {
		return true
	}
	return board.Get(pos) != wordplay.EmptyTile
}

// crossWordScore scores the short perpendicular word formed at pos,
// if placing a tile there created one; returns 0 if pos has no
// occupied perpendicular neighbor.
func crossWordScore(board *wordplay.Board, placed map[int]byte, pos int, crossHorizontal bool, values map[byte]int, layout *wordplay.PremiumLayout) int {
	if before, ok := stepBack(pos, crossHorizontal); !ok || !occupied(board, placed, before) {
		if after, ok := step(pos, crossHorizontal); !ok || !occupied(board, placed, after) {
			return 0
		}
	}
	start := wordStart(board, placed, pos, crossHorizontal)
	score, wordMult := 0, 1
	cur := start
	for {
		t, isNew := placed[cur]
		if !isNew {
			t = board.Get(cur)
		}
		if t == wordplay.EmptyTile {
			break
		}
		val := values[t]
		if isNew {
			score += val * layout.LetterMultiplier(cur)
			wordMult *= layout.WordMultiplier(cur)
		} else {
			score += val
		}
		next, ok := step(cur, crossHorizontal)
		if !ok {
			break
		}
		cur = next
	}
	return score * wordMult
}

// wordStart walks backwards from pos along the given direction while
// the preceding cell is occupied, and returns the position of the
// first tile in that contiguous run.
func wordStart(board *wordplay.Board, placed map[int]byte, pos int, horizontal bool) int {
	for {
		p, ok := stepBack(pos, horizontal)
		if !ok || !occupied(board, placed, p) {
			break
		}
		pos = p
	}
	return pos
}

func step(pos int, horizontal bool) (int, bool) {
	row, col := wordplay.RowCol(pos)
	if horizontal {
		if col+1 >= wordplay.BoardSize {
			return 0, false
		}
		return wordplay.CellIndex(row, col+1), true
	}
	if row+1 >= wordplay.BoardSize {
		return 0, false
	}
	return wordplay.CellIndex(row+1, col), true
}

func stepBack(pos int, horizontal bool) (int, bool) {
	row, col := wordplay.RowCol(pos)
	if horizontal {
		if col-1 < 0 {
			return 0, false
		}
		return wordplay.CellIndex(row, col-1), true
	}
	if row-1 < 0 {
		return 0, false
	}
	return wordplay.CellIndex(row-1, col), true
}
