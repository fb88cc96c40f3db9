// main.go
// Command gaddagmoves is an example program for exercising the
// wordplay module: it loads a word list and a board/rack position and
// prints every legal move, sorted by score.
//
// Grounded on the teacher's main/main.go (flag-based CLI) and
// go-app/main.go (godotenv/log/os.Getenv wiring), with robot.go's
// byScore sort adapted into a plain sort.Slice over scored moves.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"sort"
	"strings"

	"github.com/joho/godotenv"

	"wordplay"
	"wordplay/scoring"
)

func main() {
	// Loading a .env file is optional: a missing file is not an error,
	// it just means configuration comes entirely from flags/env vars.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("gaddagmoves: could not load .env: %v", err)
	}

	wordlistPath := flag.String("wordlist", envOrDefault("GADDAG_WORDLIST", ""), "path to a newline-separated word list")
	boardPath := flag.String("board", "", "path to a 15-line board file ('.' for empty cells); defaults to an empty board")
	rack := flag.String("rack", "", "rack tiles, '?' for a blank (e.g. CARETS or CARE?S)")
	limit := flag.Int("limit", 0, "maximum number of moves to print (0 = no limit)")
	flag.Parse()

	if *wordlistPath == "" {
		log.Fatal("gaddagmoves: -wordlist (or GADDAG_WORDLIST) is required")
	}
	if *rack == "" {
		log.Fatal("gaddagmoves: -rack is required")
	}

	words, err := readWordlist(*wordlistPath)
	if err != nil {
		log.Fatalf("gaddagmoves: reading word list: %v", err)
	}
	dict := wordplay.FromWordlist(words)

	board := wordplay.NewBoard()
	if *boardPath != "" {
		if err := loadBoard(board, *boardPath); err != nil {
			log.Fatalf("gaddagmoves: reading board: %v", err)
		}
	}

	rackTiles, err := parseRack(*rack)
	if err != nil {
		log.Fatalf("gaddagmoves: parsing rack: %v", err)
	}

	generator := wordplay.NewMoveGenerator(dict)
	moves := generator.GenerateAllMoves(board, rackTiles)

	type scored struct {
		move  wordplay.Move
		score int
	}
	results := make([]scored, len(moves))
	for i, m := range moves {
		results[i] = scored{m, scoring.Score(board, m, scoring.LetterValues, wordplay.StandardPremiumLayout)}
	}
	sort.Slice(results, func(i, j int) bool { return results[i].score > results[j].score })

	if *limit > 0 && *limit < len(results) {
		results = results[:*limit]
	}
	for _, r := range results {
		fmt.Printf("%3d  %s\n", r.score, formatMove(r.move))
	}
	log.Printf("gaddagmoves: %d moves available, %d printed", len(moves), len(results))
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func readWordlist(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var words []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			words = append(words, line)
		}
	}
	return words, scanner.Err()
}

func loadBoard(board *wordplay.Board, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	scanner := bufio.NewScanner(f)
	row := 0
	for scanner.Scan() && row < wordplay.BoardSize {
		line := scanner.Text()
		for col := 0; col < wordplay.BoardSize && col < len(line); col++ {
			ch := line[col]
			if ch != '.' && ch != ' ' {
				board.Place(ch, wordplay.CellIndex(row, col))
			}
		}
		row++
	}
	return scanner.Err()
}

func parseRack(s string) (*wordplay.Rack, error) {
	letters := []byte(strings.ToUpper(s))
	if len(letters) > wordplay.RackSize {
		return nil, fmt.Errorf("rack %q has more than %d tiles", s, wordplay.RackSize)
	}
	return wordplay.FromArrays(letters, len(letters)), nil
}

func formatMove(m wordplay.Move) string {
	var sb strings.Builder
	for i := 0; i < m.Len; i++ {
		row, col := wordplay.RowCol(m.Positions[i])
		fmt.Fprintf(&sb, "%c@(%d,%d) ", m.Tiles[i], row, col)
	}
	return sb.String()
}
