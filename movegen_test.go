package wordplay

import (
	"sync"
	"testing"
)

func smallDict() *Gaddag {
	return FromWordlist([]string{
		"CAT", "CATS", "CARE", "CARES", "CAR", "ARE", "AT", "TA",
		"DOG", "DO", "GO", "SAT", "SAD", "AD",
	})
}

func containsMove(moves []Move, tiles string, positions []int) bool {
	var want Move
	for i, t := range tiles {
		want.append(byte(t), positions[i])
	}
	for _, m := range moves {
		if m.Equal(want) {
			return true
		}
	}
	return false
}

// S1: an empty board only ever considers the center cell as an anchor,
// and every returned move covers it.
func TestGenerateAllMovesEmptyBoardUsesCenterOnly(t *testing.T) {
	gen := NewMoveGenerator(smallDict())
	board := NewBoard()
	rack := FromArrays([]byte{'C', 'A', 'T', 'S'}, 4)

	moves := gen.GenerateAllMoves(board, rack)
	if len(moves) == 0 {
		t.Fatal("expected at least one opening move")
	}
	for _, m := range moves {
		covered := false
		for i := 0; i < m.Len; i++ {
			if m.Positions[i] == CenterCell {
				covered = true
			}
		}
		if !covered {
			t.Errorf("opening move %+v does not cover the center cell", m)
		}
	}
	if !containsMove(moves, "CAT", []int{CellIndex(7, 7), CellIndex(7, 8), CellIndex(7, 9)}) {
		t.Error("expected CAT starting at the center cell to be a legal opening move")
	}
	if !containsMove(moves, "CAT", []int{CellIndex(7, 6), CellIndex(7, 7), CellIndex(7, 8)}) {
		t.Error("expected CAT with the center cell as its middle letter to be a legal opening move")
	}
	if !containsMove(moves, "CAT", []int{CellIndex(7, 5), CellIndex(7, 6), CellIndex(7, 7)}) {
		t.Error("expected CAT with the center cell as its last letter to be a legal opening move")
	}
}

// S2: a lone on-board letter is extended on both sides by rack tiles
// to form the only word the dictionary allows through it, and the
// move records exactly the two newly placed tiles.
func TestGenerateAllMovesBuildsWordAroundSingleBoardLetter(t *testing.T) {
	gen := NewMoveGenerator(smallDict())
	board := NewBoard()
	board.Place('A', CellIndex(0, 2))
	rack := FromArrays([]byte{'C', 'T'}, 2)

	moves := gen.GenerateAllMoves(board, rack)
	var want Move
	want.append('C', CellIndex(0, 1))
	want.append('T', CellIndex(0, 3))
	found := 0
	for _, m := range moves {
		if m.Equal(want) {
			found++
		}
	}
	if found != 1 {
		t.Fatalf("expected exactly one move placing C@(0,1),T@(0,3) around the board's A; found %d among %+v", found, moves)
	}
}

// S3: extending an existing word on the board by adding a rack tile.
func TestGenerateAllMovesExtendsExistingWord(t *testing.T) {
	gen := NewMoveGenerator(smallDict())
	board := NewBoard()
	board.Place('C', CellIndex(7, 6))
	board.Place('A', CellIndex(7, 7))
	board.Place('T', CellIndex(7, 8))
	rack := FromArrays([]byte{'S'}, 1)

	moves := gen.GenerateAllMoves(board, rack)
	if !containsMove(moves, "S", []int{CellIndex(7, 9)}) {
		t.Errorf("expected CATS extension via a single S placed at (7,9); moves=%+v", moves)
	}
}

// Invariant 4(a): crossing the pivot with an empty reversed prefix must
// not ignore a tile already sitting immediately to the left of the
// anchor; that tile is part of the same contiguous word, so any move
// recorded there has to account for it rather than silently reading
// past it.
func TestGenerateAllMovesDoesNotIgnoreAdjacentLeftTile(t *testing.T) {
	gen := NewMoveGenerator(smallDict())
	board := NewBoard()
	board.Place('A', CellIndex(0, 2))
	rack := FromArrays([]byte{'C', 'A', 'T'}, 3)

	moves := gen.GenerateAllMoves(board, rack)
	for _, m := range moves {
		for i := 0; i < m.Len; i++ {
			if m.Tiles[i] == 'C' && m.Positions[i] == CellIndex(0, 3) {
				t.Errorf("did not expect a move placing C at (0,3) immediately right of the board's A, forming the non-word ACAT: %+v", m)
			}
		}
	}
	if !containsMove(moves, "CT", []int{CellIndex(0, 1), CellIndex(0, 3)}) {
		t.Error("expected the legal reading CAT@(0,1),(0,2),(0,3) (C and T newly placed around the board's A) to still be found")
	}
}

// Invariant 2: a board is left byte-identical after a full generation call.
func TestGenerateAllMovesLeavesBoardUntouched(t *testing.T) {
	gen := NewMoveGenerator(smallDict())
	board := NewBoard()
	board.Place('C', CellIndex(7, 6))
	board.Place('A', CellIndex(7, 7))
	board.Place('R', CellIndex(7, 8))
	before := *board
	rack := FromArrays([]byte{'E', 'S'}, 2)

	gen.GenerateAllMoves(board, rack)

	if *board != before {
		t.Fatal("board must be byte-identical before and after generate_all_moves")
	}
}

// S5: a placement that would form an invalid perpendicular word is rejected.
func TestGenerateAllMovesRejectsInvalidCrossWord(t *testing.T) {
	gen := NewMoveGenerator(smallDict())
	board := NewBoard()
	// Vertical word "AT" placed through the center column, one row down.
	board.Place('A', CellIndex(8, 7))
	board.Place('T', CellIndex(9, 7))
	// Placing 'Z' at (7,7) would need to extend down through 'A' to
	// form a vertical word starting with Z, which is not in the dict,
	// and there's no legal horizontal word "Z" alone either.
	rack := FromArrays([]byte{'Z'}, 1)

	moves := gen.GenerateAllMoves(board, rack)
	for _, m := range moves {
		for i := 0; i < m.Len; i++ {
			if m.Tiles[i] == 'Z' && m.Positions[i] == CellIndex(7, 7) {
				t.Errorf("did not expect a legal move placing Z at (7,7): %+v", m)
			}
		}
	}
}

// Invariant 1: a rack is left byte-identical after a full generation call.
func TestGenerateAllMovesLeavesRackUntouched(t *testing.T) {
	gen := NewMoveGenerator(smallDict())
	board := NewBoard()
	board.Place('C', CellIndex(7, 6))
	board.Place('A', CellIndex(7, 7))
	board.Place('R', CellIndex(7, 8))
	rack := FromArrays([]byte{'E', 'S', 'A'}, 3)
	before := *rack

	gen.GenerateAllMoves(board, rack)

	if !rack.Equal(&before) {
		t.Fatal("rack must be byte-identical before and after generate_all_moves")
	}
}

// Invariant 5: moves are deduplicated even when reachable through more
// than one anchor or recursion path.
func TestGenerateAllMovesHasNoDuplicates(t *testing.T) {
	gen := NewMoveGenerator(smallDict())
	board := NewBoard()
	board.Place('C', CellIndex(7, 6))
	board.Place('A', CellIndex(7, 7))
	board.Place('T', CellIndex(7, 8))
	rack := FromArrays([]byte{'S'}, 1)

	moves := gen.GenerateAllMoves(board, rack)
	seen := make(map[string]bool)
	for _, m := range moves {
		k := m.key()
		if seen[k] {
			t.Fatalf("duplicate move found: %+v", m)
		}
		seen[k] = true
	}
}

// Open question resolution: a blank tile stands in for any letter the
// dictionary accepts (see DESIGN.md's decision to iterate blanks).
func TestGenerateAllMovesBlankStandsForLetter(t *testing.T) {
	gen := NewMoveGenerator(smallDict())
	board := NewBoard()
	rack := FromArrays([]byte{'?', 'A', 'T'}, 3)

	moves := gen.GenerateAllMoves(board, rack)
	if !containsMove(moves, "CAT", []int{CellIndex(7, 7), CellIndex(7, 8), CellIndex(7, 9)}) {
		t.Error("expected a blank standing in for C to produce CAT as a legal opening move")
	}
}

// S6: an empty rack never yields any moves, regardless of board state.
func TestGenerateAllMovesEmptyRackYieldsNoMoves(t *testing.T) {
	gen := NewMoveGenerator(smallDict())
	board := NewBoard()
	board.Place('C', CellIndex(7, 6))
	board.Place('A', CellIndex(7, 7))
	board.Place('T', CellIndex(7, 8))
	rack := NewRack()

	moves := gen.GenerateAllMoves(board, rack)
	if len(moves) != 0 {
		t.Fatalf("expected no moves with an empty rack, got %+v", moves)
	}
}

// A Gaddag is built once then only read, so many generator instances
// may share one concurrently: this runs a worker per rack, each with
// its own board and rack, against one shared dictionary.
func TestGenerateAllMovesConcurrentCallsOnSharedGaddag(t *testing.T) {
	dict := smallDict()
	racks := [][]byte{
		{'C', 'A', 'T'},
		{'D', 'O', 'G'},
		{'S', 'A', 'D'},
		{'C', 'A', 'R', 'E'},
	}

	var wg sync.WaitGroup
	results := make([][]Move, len(racks))
	wg.Add(len(racks))
	for i, tiles := range racks {
		go func(i int, tiles []byte) {
			defer wg.Done()
			gen := NewMoveGenerator(dict)
			board := NewBoard()
			rack := FromArrays(tiles, len(tiles))
			results[i] = gen.GenerateAllMoves(board, rack)
		}(i, tiles)
	}
	wg.Wait()

	for i, moves := range results {
		if len(moves) == 0 {
			t.Errorf("worker %d (rack %s) found no opening moves", i, racks[i])
		}
	}
}

func BenchmarkGenerateAllMoves(b *testing.B) {
	gen := NewMoveGenerator(smallDict())
	board := NewBoard()
	board.Place('C', CellIndex(7, 6))
	board.Place('A', CellIndex(7, 7))
	board.Place('R', CellIndex(7, 8))
	rack := FromArrays([]byte{'E', 'S'}, 2)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		gen.GenerateAllMoves(board, rack)
	}
}
