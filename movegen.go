// movegen.go
// Copyright (C) 2023 Vilhjálmur Þorsteinsson / Miðeind ehf.
//
// GADDAG-based move generation. Restructured from the teacher's
// DAWG-based Axis/ExtendRightNavigator/LeftPermutationNavigator
// left-part table approach (movegen.go, navigators.go) into the
// classic Appel & Jacobson anchor-driven bidirectional GADDAG
// recursion: extend_backwards consumes (or extends into) the prefix
// to the left of an anchor, crosses the PIVOT exactly once per
// backward call, and extend_forwards builds and records the suffix.
//
// Unlike the teacher, which fans a goroutine out per anchor, this
// generator runs anchors sequentially on the calling goroutine: the
// per-call row/column snapshots and explored-anchor bitset are shared,
// mutable state that a single generation call owns outright, and the
// spec this module implements deliberately does not call for
// cross-anchor concurrency.

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

// MoveGenerator produces every legal move for a given board and rack
// against a fixed dictionary.
type MoveGenerator struct {
	dawg  *Gaddag
	cache *crossWordCache
}

// NewMoveGenerator returns a generator backed by dawg.
func NewMoveGenerator(dawg *Gaddag) *MoveGenerator {
	return &MoveGenerator{
		dawg:  dawg,
		cache: newCrossWordCache(defaultCrossWordCacheSize),
	}
}

// generatorContext holds the per-call state a single GenerateAllMoves
// invocation shares across every anchor and direction it explores: the
// row/column snapshots of the board (fixed for the whole call, since
// only the primary-direction line buffer is mutated while searching),
// the set of anchors already fully searched, and the deduplicated
// output moves.
type generatorContext struct {
	hori     [BoardSize][BoardSize]byte
	vert     [BoardSize][BoardSize]byte
	explored [NumCells]bool
	moves    map[string]Move
}

func newGeneratorContext(board *Board) *generatorContext {
	gctx := &generatorContext{moves: make(map[string]Move)}
	for r := 0; r < BoardSize; r++ {
		for c := 0; c < BoardSize; c++ {
			t := board.Get(CellIndex(r, c))
			gctx.hori[r][c] = t
			gctx.vert[c][r] = t
		}
	}
	return gctx
}

// GenerateAllMoves returns every legal move available to rack on
// board. The rack is left byte-identical to its pre-call state.
func (mg *MoveGenerator) GenerateAllMoves(board *Board, rack *Rack) []Move {
	gctx := newGeneratorContext(board)

	if board.IsEmptyBoard() {
		mg.searchAnchor(gctx, board, rack, CenterCell)
	} else {
		for i := 0; i < NumCells; i++ {
			if board.IsAnchor(i) {
				mg.searchAnchor(gctx, board, rack, i)
				gctx.explored[i] = true
			}
		}
	}

	result := make([]Move, 0, len(gctx.moves))
	for _, m := range gctx.moves {
		result = append(result, m)
	}
	Logger.Printf("generate_all_moves: %d distinct moves found", len(result))
	return result
}

// searchAnchor runs both the horizontal and vertical search starting
// from anchor.
func (mg *MoveGenerator) searchAnchor(gctx *generatorContext, board *Board, rack *Rack, anchor int) {
	row, col := RowCol(anchor)
	for _, horizontal := range [2]bool{true, false} {
		rc := &recursionContext{
			gen:          mg,
			board:        board,
			rack:         rack,
			gctx:         gctx,
			isHorizontal: horizontal,
			isForwards:   false,
			node:         mg.dawg.root,
		}
		if horizontal {
			rc.axis = row
			rc.anchor = col
			rc.line = gctx.hori[row]
		} else {
			rc.axis = col
			rc.anchor = row
			rc.line = gctx.vert[col]
		}
		rc.depth = rc.anchor
		rc.extendBackwards()
	}
}

// recursionContext is the mutable state of one anchor/direction
// search. It is shared by every recursive call in that search via a
// single pointer, and every mutation (node, depth, direction, line
// buffer, partial move, rack availability) is reverted by its own
// caller before returning, so the struct returns to its pre-call value
// after each recursive step.
type recursionContext struct {
	gen   *MoveGenerator
	board *Board
	rack  *Rack
	gctx  *generatorContext

	isHorizontal bool
	axis         int // row index if horizontal, column index if vertical
	anchor       int // position of the anchor along the line

	isForwards bool
	depth      int
	node       *gaddagNode
	line       [BoardSize]byte
	move       Move
}

// boardIndex maps a position along the line to a board index.
func (rc *recursionContext) boardIndex(pos int) int {
	if rc.isHorizontal {
		return CellIndex(rc.axis, pos)
	}
	return CellIndex(pos, rc.axis)
}

// extendBackwards walks from the anchor towards the start of the
// line, consuming any tiles already on the board, trying to extend
// the reversed prefix with rack tiles, and crossing the PIVOT exactly
// once per empty cell reached (and once on running off the start of
// the line or reaching an already-searched anchor) to hand off to
// extendForwards.
func (rc *recursionContext) extendBackwards() {
	pos := rc.depth
	if pos < 0 || rc.gctx.explored[rc.boardIndex(pos)] {
		// Past the start of the line, or at an anchor already fully
		// searched (any move placing a tile there was generated then):
		// nothing is placed here, but the prefix built so far may still
		// start just after this point, so the PIVOT is still crossed.
		rc.crossPivot()
		return
	}
	if rc.line[pos] != EmptyTile {
		rc.consumeExistingBackwards(pos)
		return
	}
	rc.crossPivot()
	rc.tryPlaceFromRack()
}

// consumeExistingBackwards descends through the existing tile at pos
// and recurses one cell further back, reverting node and depth
// afterwards.
func (rc *recursionContext) consumeExistingBackwards(pos int) {
	child := rc.node.getChild(tileIndex(rc.line[pos]))
	if child == nil {
		return
	}
	savedNode := rc.node
	rc.node = child
	rc.depth = pos - 1
	rc.extendBackwards()
	rc.node = savedNode
	rc.depth = pos
}

// crossPivot attempts to switch to forward extension using the current
// node's PIVOT child, if it has one. This is only ever tried from an
// empty cell (an already-searched anchor is one too) or from just past
// the start of the line: an occupied cell always still needs consuming
// (consumeExistingBackwards) before any split point can be considered.
//
// Where forward extension resumes depends on how much of the reversed
// prefix has actually been consumed so far. At the very first call
// (pos == anchor) nothing has been placed or consumed yet, so the
// prefix is empty and the forward word must start at the anchor cell
// itself. In that zero-prefix case, crossing here is only legal if the
// anchor has no tile immediately to its left; that tile would belong
// to the same contiguous word, and crossing now would silently drop
// it from the word being built. Once backward recursion has moved
// past the anchor (pos < anchor), every cell from pos+1 through anchor
// has already been consumed or placed as part of the prefix, so
// forward extension must resume one past the anchor, never re-visiting
// it.
func (rc *recursionContext) crossPivot() {
	pivotChild := rc.node.getChild(pivotIndex)
	if pivotChild == nil {
		return
	}
	resume := rc.anchor + 1
	if rc.depth == rc.anchor {
		if rc.anchor > 0 && rc.line[rc.anchor-1] != EmptyTile {
			return
		}
		resume = rc.anchor
	}
	savedNode, savedDepth, savedForwards := rc.node, rc.depth, rc.isForwards
	rc.node = pivotChild
	rc.isForwards = true
	rc.depth = resume
	rc.extendForwards()
	rc.node, rc.depth, rc.isForwards = savedNode, savedDepth, savedForwards
}

// extendForwards walks from the anchor towards the end of the line,
// consuming any tiles already on the board, trying to extend the
// suffix with rack tiles, and recording a move whenever the current
// node is terminal and the move has placed at least one tile.
func (rc *recursionContext) extendForwards() {
	pos := rc.depth
	if pos >= BoardSize {
		rc.finishWord()
		return
	}
	if rc.line[pos] != EmptyTile {
		child := rc.node.getChild(tileIndex(rc.line[pos]))
		if child == nil {
			return
		}
		savedNode := rc.node
		rc.node = child
		rc.depth = pos + 1
		rc.extendForwards()
		rc.node = savedNode
		rc.depth = pos
		return
	}
	rc.tryPlaceFromRack()
	rc.finishWord()
}

// finishWord records the current move if the node reached so far is a
// terminal GADDAG node and at least one rack tile has been placed.
func (rc *recursionContext) finishWord() {
	if rc.node.isWord && rc.move.Len > 0 {
		m := rc.move
		rc.gctx.moves[m.key()] = m
	}
}

// tryPlaceFromRack tries every tile available on the rack, once per
// slot (so a letter held twice is tried twice; duplicate moves are
// merged by key), expanding a blank into all 26 letters, at the current position,
// checking the cross-word constraint and the GADDAG child edge before
// descending, and reverts rack, line, move, node and depth state after
// each attempt.
func (rc *recursionContext) tryPlaceFromRack() {
	pos := rc.depth
	bIdx := rc.boardIndex(pos)
	for _, avail := range rc.rack.AvailableTiles() {
		for _, tile := range candidateTiles(avail.Tile) {
			child := rc.node.getChild(tileIndex(tile))
			if child == nil {
				continue
			}
			if !rc.gen.isCrossWordValid(rc.gctx, tile, bIdx, rc.isHorizontal) {
				continue
			}
			rc.rack.MarkUsed(avail.Slot)
			rc.line[pos] = tile
			rc.move.append(tile, bIdx)
			savedNode := rc.node
			rc.node = child
			if rc.isForwards {
				rc.depth = pos + 1
				rc.extendForwards()
			} else {
				rc.depth = pos - 1
				rc.extendBackwards()
			}
			rc.node = savedNode
			rc.depth = pos
			rc.move.removeLast()
			rc.line[pos] = EmptyTile
			rc.rack.UnmarkUsed(avail.Slot)
		}
	}
}

// candidateTiles returns the letters a rack tile can stand in for: a
// normal tile stands only for itself, a blank stands for every letter.
func candidateTiles(tile byte) []byte {
	if tile != Blank {
		return []byte{tile}
	}
	letters := make([]byte, letterCount)
	for i := 0; i < letterCount; i++ {
		letters[i] = indexTile(i)
	}
	return letters
}

// isCrossWordValid reports whether placing tile at boardIndex forms a
// legal perpendicular word (or no perpendicular word at all) against
// the board's pre-existing tiles. It always consults the fixed
// snapshot taken at the start of the call, never the in-progress
// primary-direction line, since tiles placed earlier in this same
// move lie along the primary axis and cannot affect a perpendicular
// cross-word at this cell.
func (mg *MoveGenerator) isCrossWordValid(gctx *generatorContext, tile byte, boardIndex int, primaryIsHorizontal bool) bool {
	row, col := RowCol(boardIndex)
	var left, right []byte
	if primaryIsHorizontal {
		colBuf := gctx.vert[col]
		for r := row - 1; r >= 0 && colBuf[r] != EmptyTile; r-- {
			left = append([]byte{colBuf[r]}, left...)
		}
		for r := row + 1; r < BoardSize && colBuf[r] != EmptyTile; r++ {
			right = append(right, colBuf[r])
		}
	} else {
		rowBuf := gctx.hori[row]
		for c := col - 1; c >= 0 && rowBuf[c] != EmptyTile; c-- {
			left = append([]byte{rowBuf[c]}, left...)
		}
		for c := col + 1; c < BoardSize && rowBuf[c] != EmptyTile; c++ {
			right = append(right, rowBuf[c])
		}
	}
	if len(left) == 0 && len(right) == 0 {
		return true
	}
	word := string(left) + string(tile) + string(right)
	return mg.cache.lookup(word, func() bool {
		return mg.dawg.IsWord(word)
	})
}
