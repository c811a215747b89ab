package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"
	"strings"
	"time"

	"lifeboard/internal/sweep"
	"lifeboard/pkg/random"
)

func main() {
	opt := sweep.DefaultOptions()
	flag.IntVar(&opt.Width, "w", opt.Width, "board width")
	flag.IntVar(&opt.Height, "h", opt.Height, "board height")
	flag.IntVar(&opt.Boards, "boards", opt.Boards, "boards per density")
	flag.IntVar(&opt.Generations, "steps", opt.Generations, "generations to simulate per board")
	flag.IntVar(&opt.Workers, "workers", runtime.NumCPU(), "number of worker goroutines")
	flag.Int64Var(&opt.Seed, "seed", opt.Seed, "base seed; board i uses seed+i")
	densities := flag.String("densities", "", "comma separated densities (n/d), defaults to a built-in set")
	sortPop := flag.Bool("sort", false, "order output by mean final population")
	flag.Parse()

	if *densities != "" {
		opt.Densities = nil
		for _, field := range strings.Split(*densities, ",") {
			p, err := random.ParseRatio(field)
			if err != nil {
				log.Fatal(err)
			}
			opt.Densities = append(opt.Densities, p)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	fmt.Printf("Sweeping %d densities on %dx%d (%d boards, %d workers, %d steps)\n",
		len(opt.Densities), opt.Width, opt.Height, opt.Boards, opt.Workers, opt.Generations)

	start := time.Now()
	results, err := sweep.Run(ctx, opt)
	if err != nil {
		log.Fatal(err)
	}
	if *sortPop {
		sweep.ByMeanPopulation(results)
	}

	fmt.Printf("\n%-8s %-10s %-8s %-12s %-8s %-8s\n", "density", "initial", "dev σ", "mean pop", "extinct", "settled")
	for _, r := range results {
		fmt.Printf("%-8s %-10.4f %-8.2f %-12.1f %-8d %-8d\n",
			r.Density, r.InitialFraction, r.Deviation(), r.MeanPopulation, r.Extinct, r.Settled)
	}
	fmt.Printf("\nelapsed %s\n", time.Since(start).Round(time.Millisecond))
}
