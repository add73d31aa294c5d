// Command fractbench times every generator and strategy and prints a table.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/language"

	"github.com/fractkit/fract"
	"github.com/fractkit/fract/internal/bench"
	"github.com/fractkit/fract/internal/imageio"
)

func main() {
	var (
		size       = flag.Int("size", 1024, "image side length")
		runs       = flag.Int("runs", 3, "runs per case")
		workers    = flag.Int("workers", fract.DefaultWorkers, "worker goroutines (<= 0 uses GOMAXPROCS)")
		generators = flag.String("generators", "mandelbrot,noise", "comma-separated generators")
		strategies = flag.String("strategies", "sequential,rows,locked,tiles,flat", "comma-separated strategies")
		out        = flag.String("out", "", "directory to save the last image of each case (format from -format)")
		format     = flag.String("format", "png", "image format for -out")
		lang       = flag.String("lang", "en", "language tag for number formatting")
		verbose    = flag.Bool("v", false, "debug logging")
		version    = flag.Bool("version", false, "print the version and exit")
	)
	flag.Parse()

	if *version {
		fmt.Println("fract", fract.Version)
		return
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	fract.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	gens, err := parseList(*generators, fract.ParseGenerator)
	if err != nil {
		log.Fatal(err)
	}
	strats, err := parseList(*strategies, fract.ParseStrategy)
	if err != nil {
		log.Fatal(err)
	}
	tag, err := language.Parse(*lang)
	if err != nil {
		log.Fatalf("invalid -lang: %v", err)
	}

	opts := bench.Options{Size: *size, Runs: *runs, Workers: *workers}
	if *out != "" {
		f, err := imageio.ParseFormat(*format)
		if err != nil {
			log.Fatal(err)
		}
		opts.Last = func(c bench.Case, b *fract.Buffer) {
			name := fmt.Sprintf("%s_%s.%s", c.Generator, c.Strategy, f)
			if err := imageio.Save(filepath.Join(*out, name), b); err != nil {
				log.Printf("save %s: %v", name, err)
			}
		}
	}

	results, err := bench.Run(bench.Cases(gens, strats), opts)
	if err != nil {
		log.Fatal(err)
	}
	if err := bench.Report(os.Stdout, results, tag); err != nil {
		log.Fatal(err)
	}
}

func parseList[T any](s string, parse func(string) (T, error)) ([]T, error) {
	var list []T
	for _, name := range strings.Split(s, ",") {
		if strings.TrimSpace(name) == "" {
			continue
		}
		v, err := parse(name)
		if err != nil {
			return nil, err
		}
		list = append(list, v)
	}
	return list, nil
}
