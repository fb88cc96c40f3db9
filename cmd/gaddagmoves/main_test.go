package main

import (
	"bufio"
	"os"
	"strings"
	"testing"

	"wordplay"
	"wordplay/scoring"
)

// This is a smoke test for the demo driver's plumbing (rack parsing,
// move formatting and scoring over an in-memory word list), not a
// substitute for the package tests in wordplay/movegen_test.go.
func TestGenerateAndFormatOpeningMove(t *testing.T) {
	dict := wordplay.FromWordlist([]string{"CAT", "CATS", "CARE", "CAR"})
	board := wordplay.NewBoard()
	rack, err := parseRack("CAT")
	if err != nil {
		t.Fatalf("parseRack: %v", err)
	}

	moves := wordplay.NewMoveGenerator(dict).GenerateAllMoves(board, rack)
	if len(moves) == 0 {
		t.Fatal("expected at least one opening move for rack CAT")
	}

	var found bool
	for _, m := range moves {
		score := scoring.Score(board, m, scoring.LetterValues, wordplay.StandardPremiumLayout)
		line := formatMove(m)
		if strings.Contains(line, "C@") && score <= 0 {
			t.Errorf("move %q scored %d, want a positive score", line, score)
		}
		found = true
	}
	if !found {
		t.Fatal("expected to iterate at least one move")
	}
}

func TestParseRackRejectsOversizedRack(t *testing.T) {
	if _, err := parseRack(strings.Repeat("A", wordplay.RackSize+1)); err == nil {
		t.Fatal("expected an error for a rack longer than RackSize")
	}
}

func TestReadWordlistSkipsBlankLines(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "wordlist")
	if err != nil {
		t.Fatal(err)
	}
	w := bufio.NewWriter(f)
	w.WriteString("cat\n\n  \ncar\n")
	w.Flush()
	f.Close()

	words, err := readWordlist(f.Name())
	if err != nil {
		t.Fatalf("readWordlist: %v", err)
	}
	if len(words) != 2 || words[0] != "cat" || words[1] != "car" {
		t.Fatalf("readWordlist = %v, want [cat car]", words)
	}
}
