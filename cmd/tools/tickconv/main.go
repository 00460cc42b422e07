package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/Shivesh777/nanotick/internal/ops"
	"github.com/Shivesh777/nanotick/internal/schema"
	"github.com/Shivesh777/nanotick/internal/source"
)

func main() {
	in := flag.String("in", "", "Input feed (parquet, jsonl, ticklog)")
	out := flag.String("out", "", "Output feed (.parquet, .jsonl/.ndjson, or a ticklog directory)")
	symbol := flag.String("symbol", "", "Keep only this symbol")
	configPath := flag.String("config", "", "Path to JSON tuning config")
	flag.Parse()

	if *in == "" || *out == "" {
		fmt.Fprintf(os.Stderr, "usage: %s -in <path> -out <path> [flags]\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(1)
	}

	cfg := ops.Default()
	if *configPath != "" {
		loaded, err := ops.Load(*configPath)
		if err != nil {
			log.Fatalf("config load failed: %v", err)
		}
		cfg = loaded
	}

	start := time.Now()
	events, err := source.Load(*in, cfg.Source)
	if err != nil {
		log.Fatalf("source load failed: %v", err)
	}
	if *symbol != "" {
		events = source.FilterSymbol(events, *symbol)
	}
	if err := source.Save(*out, events, cfg.Source); err != nil {
		log.Fatalf("write failed: %v", err)
	}
	elapsed := time.Since(start)

	var adds, cancels, executes, replaces, other int
	for i := range events {
		switch events[i].Type {
		case schema.MsgAdd:
			adds++
		case schema.MsgCancel:
			cancels++
		case schema.MsgExecute:
			executes++
		case schema.MsgReplace:
			replaces++
		default:
			other++
		}
	}

	rate := float64(len(events)) / elapsed.Seconds()
	fmt.Printf("converted %d rows in %.3fs (%.0f rows/s)\n", len(events), elapsed.Seconds(), rate)
	fmt.Printf("msg counts: A=%d C=%d E=%d U=%d other=%d\n", adds, cancels, executes, replaces, other)
}
