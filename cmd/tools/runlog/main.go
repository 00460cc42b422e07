package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/Shivesh777/nanotick/internal/archive"
	"github.com/Shivesh777/nanotick/internal/ops"
	"github.com/Shivesh777/nanotick/internal/report"
)

func main() {
	dir := flag.String("archive", "", "Pebble archive directory (env NANOTICK_ARCHIVE_DIR)")
	show := flag.String("show", "", "Re-render the stored run with this id")
	limit := flag.Int("limit", 10, "Number of runs to list, newest first")
	flag.Parse()

	if *dir == "" {
		*dir = ops.LoadEnv().ArchiveDir
	}
	if *dir == "" {
		fmt.Fprintf(os.Stderr, "usage: %s -archive <dir> [-show <run-id>] [-limit N]\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(1)
	}

	arc, err := archive.Open(*dir)
	if err != nil {
		log.Fatalf("archive open failed: %v", err)
	}
	defer arc.Close()

	if *show != "" {
		rep, err := arc.Get(*show)
		if err != nil {
			log.Fatalf("run lookup failed: %v", err)
		}
		report.Render(os.Stdout, rep)
		return
	}

	runs, err := arc.Recent(*limit)
	if err != nil {
		log.Fatalf("archive scan failed: %v", err)
	}
	if len(runs) == 0 {
		fmt.Println("no archived runs")
		return
	}
	for _, rep := range runs {
		fmt.Printf("%s  %s  rows=%d  p50=%d %s  anomalies=%d  %s\n",
			rep.RunID,
			rep.CreatedAt.Format(time.RFC3339),
			rep.Summary.Rows,
			rep.Summary.P50,
			rep.Summary.Unit,
			rep.Counters.Anomalies(),
			rep.InputPath,
		)
	}
}
