package main

import (
	"flag"
	"fmt"
	"log"
	"runtime"
	"sort"
	"sync"
	"time"

	"gridsnake/internal/app"
	"gridsnake/internal/autopilot"
	"gridsnake/pkg/core"
	"gridsnake/pkg/snake"
)

type seedResult struct {
	seed int64
	autopilot.Result
}

func checkSweep(seeds, workers int) error {
	if seeds < 1 {
		return fmt.Errorf("-seeds must be at least 1, got %d", seeds)
	}
	if workers < 1 {
		return fmt.Errorf("-workers must be at least 1, got %d", workers)
	}
	return nil
}

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	seeds := flag.Int("seeds", 64, "number of seeds to play")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	maxTicks := flag.Int("max-ticks", 10000, "tick limit per game (0 = none)")
	verbose := flag.Bool("v", false, "print every seed")
	flag.Parse()

	if err := checkSweep(*seeds, *workers); err != nil {
		log.Fatalf("snake-sweep: %v", err)
	}
	board, err := cfg.Board()
	if err != nil {
		log.Fatalf("snake-sweep: %v", err)
	}
	base := cfg.Seed
	if base == 0 {
		base = 1
	}

	fmt.Printf("Sweeping %d seeds on %dx%d with %d foods (%d workers, %d max ticks)\n",
		*seeds, board.Size.W, board.Size.H, board.Foods, *workers, *maxTicks)

	jobs := make(chan int64)
	results := make(chan seedResult)
	var wg sync.WaitGroup

	for i := 0; i < *workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for seed := range jobs {
				g, err := snake.New(board.Size.W, board.Size.H, board.Foods, core.NewRNG(seed))
				if err != nil {
					log.Printf("seed %d: %v", seed, err)
					continue
				}
				results <- seedResult{seed: seed, Result: autopilot.Play(g, *maxTicks)}
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for i := 0; i < *seeds; i++ {
			jobs <- base + int64(i)
		}
		close(jobs)
	}()

	start := time.Now()
	var all []seedResult
	causes := map[snake.Cause]int{}
	total := 0
	for res := range results {
		all = append(all, res)
		causes[res.Cause]++
		total += res.Score
		if *verbose {
			fmt.Printf("seed %d: score=%d ticks=%d cause=%s\n", res.seed, res.Score, res.Ticks, res.Cause)
		}
	}
	if len(all) == 0 {
		log.Fatal("snake-sweep: no games played")
	}

	sort.Slice(all, func(i, j int) bool {
		if all[i].Score != all[j].Score {
			return all[i].Score > all[j].Score
		}
		return all[i].seed < all[j].seed
	})
	elapsed := time.Since(start)

	fmt.Printf("\nTop 5 seeds (elapsed %s):\n", elapsed.Round(time.Millisecond))
	for i := 0; i < len(all) && i < 5; i++ {
		res := all[i]
		fmt.Printf("%2d) seed=%d score=%d ticks=%d cause=%s\n", i+1, res.seed, res.Score, res.Ticks, res.Cause)
	}

	fmt.Printf("\nMean score %.2f, median %d; finished by wall=%d self=%d, tick limit=%d\n",
		float64(total)/float64(len(all)), all[len(all)/2].Score,
		causes[snake.CauseWall], causes[snake.CauseSelf], causes[snake.CauseNone])
}
