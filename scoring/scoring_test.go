package scoring

import (
	"testing"

	"wordplay"
)

func TestScoreEmptyMove(t *testing.T) {
	board := wordplay.NewBoard()
	if got := Score(board, wordplay.Move{}, LetterValues, wordplay.StandardPremiumLayout); got != 0 {
		t.Fatalf("Score of an empty move = %d, want 0", got)
	}
}

func TestScoreSimpleOpeningWord(t *testing.T) {
	board := wordplay.NewBoard()
	var m wordplay.Move
	// "CAT" placed through the center cell: C@(7,6) A@(7,7) T@(7,8),
	// so the center's double-word premium applies to the whole word.
	positions := []int{
		wordplay.CellIndex(7, 6),
		wordplay.CellIndex(7, 7),
		wordplay.CellIndex(7, 8),
	}
	letters := "CAT"
	for i, ch := range letters {
		m.Positions[m.Len] = positions[i]
		m.Tiles[m.Len] = byte(ch)
		m.Len++
	}
	board.MakeMove(m)

	got := Score(board, m, LetterValues, wordplay.StandardPremiumLayout)
	// C(3) + A(1) + T(1) = 5, doubled by the center square = 10.
	want := 10
	if got != want {
		t.Fatalf("Score(CAT through center) = %d, want %d", got, want)
	}
}

func TestScoreBingoBonus(t *testing.T) {
	board := wordplay.NewBoard()
	var m wordplay.Move
	for i := 0; i < wordplay.RackSize; i++ {
		m.Positions[i] = wordplay.CellIndex(0, i)
		m.Tiles[i] = 'A'
	}
	m.Len = wordplay.RackSize
	board.MakeMove(m)

	got := Score(board, m, LetterValues, wordplay.StandardPremiumLayout)
	if got < BingoBonus {
		t.Fatalf("Score with a full rack played = %d, expected at least the %d-point bingo bonus", got, BingoBonus)
	}
}
