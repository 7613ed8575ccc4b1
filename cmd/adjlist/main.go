// Copyright © 2023-2024 Wei Shen <shenwei356@gmail.com>
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/pkg/profile"
	"github.com/shenwei356/adjlist"
	"github.com/shenwei356/adjlist/graphio"
	"github.com/shenwei356/adjlist/seqio"
	"github.com/shenwei356/bio/seq"
	"github.com/shenwei356/xopen"
	"github.com/vbauerster/mpb/v5"
	"github.com/vbauerster/mpb/v5/decor"
)

var version = "0.1.0"

func main() {
	usage := fmt.Sprintf(`
This command finds overlaps of exactly k-1 bases between contigs,
and outputs the graph of oriented contigs connected by them.
Contigs are read from FASTA/Q files or the standard input.

Version: v%s
Usage: %s [options] -k <k> [<contigs fasta/q> ...]

Options/Flags:
`, version, filepath.Base(os.Args[0]))

	flag.Usage = func() {
		fmt.Fprint(os.Stderr, usage)
		flag.PrintDefaults()
	}

	help := flag.Bool("h", false, "print help message")
	printVersion := flag.Bool("version", false, "print version information")
	k := flag.Int("k", 0, "k-mer size, contigs overlapping by k-1 bases are connected (required)")
	format := flag.String("format", "adj", "output format: adj, dot, bin")
	outFile := flag.String("o", "-", `output file, "-" for stdout, ".gz" suffix for gzipped output`)
	threads := flag.Int("j", runtime.NumCPU(), "number of threads")
	verbose := flag.Bool("v", false, "print verbose information")
	pfCPU := flag.Bool("pprof-cpu", false, "pprofile CPU")
	pfMEM := flag.Bool("pprof-mem", false, "pprofile memory")

	flag.Parse()

	if *help {
		flag.Usage()
		return
	}
	if *printVersion {
		fmt.Printf("adjlist v%s\n", version)
		return
	}

	if *k <= 0 {
		log.Printf("missing -k")
		flag.Usage()
		os.Exit(1)
	}
	outFormat, err := graphio.ParseFormat(*format)
	checkError(err)
	if *threads <= 0 {
		*threads = runtime.NumCPU()
	}

	files := flag.Args()
	if len(files) == 0 {
		files = []string{"-"}
	}
	for _, file := range files {
		if file == "-" {
			continue
		}
		if _, err := os.Stat(file); errors.Is(err, os.ErrNotExist) {
			checkError(fmt.Errorf("%s", err))
		}
	}

	// -----------------------------------------------

	// go tool pprof -http=:8080 cpu.pprof
	if *pfCPU {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	} else if *pfMEM {
		defer profile.Start(profile.MemProfile, profile.ProfilePath(".")).Stop()
	}

	opts := adjlist.Options{K: *k, Threads: *threads}

	var pbs *mpb.Progress
	var bar *mpb.Bar
	if *verbose {
		pbs = mpb.New(mpb.WithWidth(40), mpb.WithOutput(os.Stderr))
		opts.Progress = func(n int) { bar.IncrBy(n) }
	}

	builder, err := adjlist.NewBuilder(opts)
	checkError(err)

	// -----------------------------------------------

	sTime := time.Now()
	seq.ValidateSeq = false
	var reader *seqio.Reader
	var n int
	for _, file := range files {
		if *verbose {
			log.Printf("reading %s", file)
		}
		reader, err = seqio.Open(file)
		checkError(err)

		n, err = builder.AddFrom(reader, file)
		reader.Close()
		checkError(err)

		if *verbose {
			log.Printf("  %d contigs read from %s", n, file)
		}
	}
	builder.Lock()

	nContigs := builder.NumContigs()
	if *verbose {
		log.Printf("read %d contigs in %s", nContigs, time.Since(sTime))
	}

	// -----------------------------------------------

	sTime = time.Now()
	if *verbose {
		bar = pbs.AddBar(int64(2*nContigs),
			mpb.PrependDecorators(
				decor.Name("connecting oriented contigs: "),
				decor.CountersNoUnit("%d/%d"),
			),
			mpb.AppendDecorators(
				decor.Percentage(decor.WC{W: 5}),
				decor.Name(" ETA: "),
				decor.AverageETA(decor.ET_STYLE_GO),
			),
			mpb.BarFillerClearOnComplete(),
		)
	}
	g, err := builder.Build()
	checkError(err)
	if *verbose {
		bar.SetTotal(int64(2*nContigs), true)
		pbs.Wait()

		log.Printf("connected contigs in %s", time.Since(sTime))
		for _, line := range strings.Split(g.Stats().String(), "\n") {
			log.Print(line)
		}
		r := builder.Repeats()
		log.Printf("%d end k-mers shared by %d oriented contigs, %d of low complexity, max fan-out: %d",
			r.Kmers, r.Nodes, r.LowComplexity, r.MaxNodes)
	}

	// -----------------------------------------------

	g.SortEdges()

	outfh, err := xopen.Wopen(*outFile)
	checkError(err)
	defer outfh.Close()

	checkError(graphio.Write(outfh, g, outFormat, "adj"))
}

func checkError(err error) {
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
