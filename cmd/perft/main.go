// Command perft counts legal move tree leaf nodes from a FEN position, the
// standard correctness and performance benchmark for a move generator.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/pprof"
	"sort"
	"time"

	"github.com/aidanhart/chessplay-core/internal/board"
	"github.com/aidanhart/chessplay-core/internal/perft"
)

var (
	fen        = flag.String("fen", board.StartFEN, "FEN of the position to search")
	depth      = flag.Int("depth", 5, "maximum depth to search")
	divide     = flag.Bool("divide", false, "print a per-root-move node count breakdown")
	cpuprofile = flag.String("cpuprofile", "", "write cpu profile to file")
)

func main() {
	flag.Parse()

	if *cpuprofile != "" {
		f, err := os.Create(*cpuprofile)
		if err != nil {
			log.Fatalf("could not create CPU profile: %v", err)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			log.Fatalf("could not start CPU profile: %v", err)
		}
		defer pprof.StopCPUProfile()
	}

	pos, err := board.ParseFEN(*fen)
	if err != nil {
		log.Fatalf("invalid FEN %q: %v", *fen, err)
	}

	if *divide {
		runDivide(pos, *depth)
		return
	}

	for d := 1; d <= *depth; d++ {
		runPos, _ := board.ParseFEN(*fen)
		start := time.Now()
		nodes := perft.Count(runPos, d)
		elapsed := time.Since(start)

		nps := float64(0)
		if elapsed > 0 {
			nps = float64(nodes) / elapsed.Seconds()
		}
		fmt.Printf("depth %2d: %12d nodes  %10v  %12.0f nps\n", d, nodes, elapsed, nps)
	}
}

func runDivide(pos *board.Board, depth int) {
	breakdown := perft.Divide(pos, depth)

	moves := make([]string, 0, len(breakdown))
	for m := range breakdown {
		moves = append(moves, m)
	}
	sort.Strings(moves)

	var total uint64
	for _, m := range moves {
		fmt.Printf("%s: %d\n", m, breakdown[m])
		total += breakdown[m]
	}
	fmt.Printf("\ntotal: %d\n", total)
}
