package main

import (
	"context"
	"flag"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/yanun0323/pkg/sys"

	"github.com/Shivesh777/nanotick/internal/bus"
	"github.com/Shivesh777/nanotick/internal/chaos"
	"github.com/Shivesh777/nanotick/internal/codec"
	"github.com/Shivesh777/nanotick/internal/feedgen"
	"github.com/Shivesh777/nanotick/internal/schema"
	"github.com/Shivesh777/nanotick/internal/ticklog"
)

func main() {
	outDir := flag.String("out", "testdata/ticks", "Ticklog directory for generated events")
	symbols := flag.String("symbols", "AAPL,MSFT,GOOG", "Comma-separated symbol list")
	ticks := flag.Int("ticks", 100000, "Number of feed events to generate")
	interval := flag.Duration("interval", 0, "Delay between events")
	basePx := flag.Uint64("base-px", 1000000, "Base price (scaled)")
	pxBand := flag.Uint64("px-band", 50, "Price jitter band (scaled)")
	baseQty := flag.Uint64("base-qty", 100, "Base quantity (scaled)")
	seed := flag.Int64("seed", 1, "Stream seed")
	orphanRate := flag.Float64("orphan-rate", 0, "Orphan cancel/execute/replace injection rate")
	dupRate := flag.Float64("dup-rate", 0, "Duplicate-oid add injection rate")
	unknownRate := flag.Float64("unknown-rate", 0, "Unknown-tag injection rate")
	flag.Parse()

	if *ticks <= 0 {
		log.Fatalf("ticks must be > 0")
	}
	symbolList := splitSymbols(*symbols)
	if len(symbolList) == 0 {
		log.Fatalf("symbols must not be empty")
	}

	generator, err := feedgen.NewGenerator(feedgen.Config{
		Symbols: symbolList,
		BasePx:  schema.Price(*basePx),
		PxBand:  uint32(*pxBand),
		BaseQty: schema.Qty(*baseQty),
		Seed:    *seed,
	})
	if err != nil {
		log.Fatalf("generator init failed: %v", err)
	}

	var noise *chaos.Engine
	if *orphanRate > 0 || *dupRate > 0 || *unknownRate > 0 {
		noise, err = chaos.NewEngine(chaos.Config{
			Seed:             *seed,
			OrphanRate:       *orphanRate,
			DuplicateOIDRate: *dupRate,
			UnknownRate:      *unknownRate,
		})
		if err != nil {
			log.Fatalf("chaos init failed: %v", err)
		}
	}

	ctx := context.Background()
	cfg := ticklog.DefaultConfig(*outDir)
	writer, err := ticklog.NewWriter(cfg)
	if err != nil {
		log.Fatalf("ticklog init failed: %v", err)
	}
	if err := writer.Start(ctx); err != nil {
		log.Fatalf("ticklog start failed: %v", err)
	}

	queue := bus.NewQueue(1024)
	errCh := make(chan error, 1)
	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		queue.Run(ctx, func(e bus.Event) {
			if err := writer.TryAppend(e.Seq, e.Payload); err != nil {
				select {
				case errCh <- err:
				default:
				}
			}
		})
	}()

	seq := uint64(0)
	written := 0
loop:
	for i := 0; i < *ticks; i++ {
		select {
		case <-sys.Shutdown():
			log.Printf("shutdown requested after %d records", written)
			break loop
		default:
		}
		now := time.Now().UTC()
		for _, ev := range noise.Process(generator.Next(now)) {
			seq++
			payload := codec.EncodeEvent(nil, ev)
			if err := queue.TryPublish(bus.Event{Seq: seq, Payload: payload}); err != nil {
				log.Fatalf("publish failed: %v", err)
			}
			written++
		}
		if *interval > 0 && i < *ticks-1 {
			time.Sleep(*interval)
		}
	}

	queue.Close()
	wg.Wait()

	var appendErr error
	select {
	case appendErr = <-errCh:
	default:
	}

	if err := writer.Close(); err != nil {
		log.Fatalf("ticklog close failed: %v", err)
	}
	if appendErr != nil {
		log.Fatalf("ticklog append failed: %v", appendErr)
	}
	log.Printf("wrote %d records for %d symbols to %s", written, len(symbolList), *outDir)
}

func splitSymbols(list string) []string {
	parts := strings.Split(list, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
