package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/google/uuid"
	pyroscope "github.com/grafana/pyroscope-go"

	"github.com/Shivesh777/nanotick/internal/archive"
	"github.com/Shivesh777/nanotick/internal/clock"
	"github.com/Shivesh777/nanotick/internal/ops"
	"github.com/Shivesh777/nanotick/internal/replay"
	"github.com/Shivesh777/nanotick/internal/report"
	"github.com/Shivesh777/nanotick/internal/source"
)

func main() {
	configPath := flag.String("config", "", "Path to JSON tuning config")
	symbol := flag.String("symbol", "", "Replay only this symbol")
	jsonOut := flag.String("json", "", "Write the report as JSON to this path")
	pgDSN := flag.String("pg-dsn", "", "Postgres DSN for the run store (env NANOTICK_PG_DSN)")
	archiveDir := flag.String("archive", "", "Pebble archive directory (env NANOTICK_ARCHIVE_DIR)")
	pyroAddr := flag.String("pyroscope", "", "Pyroscope server address (env NANOTICK_PYROSCOPE_ADDR)")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "usage: %s [flags] <input>\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(1)
	}
	input := flag.Arg(0)

	env := ops.LoadEnv()
	if *pgDSN == "" {
		*pgDSN = env.PGDSN
	}
	if *archiveDir == "" {
		*archiveDir = env.ArchiveDir
	}
	if *pyroAddr == "" {
		*pyroAddr = env.PyroscopeAddr
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		log.Fatalf("config load failed: %v", err)
	}

	if *pyroAddr != "" {
		profiler, err := pyroscope.Start(pyroscope.Config{
			ApplicationName: "nanotick",
			ServerAddress:   *pyroAddr,
			Tags: map[string]string{
				"binary": "nanotick",
			},
			Logger: emptyLogger{},
			ProfileTypes: []pyroscope.ProfileType{
				pyroscope.ProfileCPU,
				pyroscope.ProfileAllocObjects,
				pyroscope.ProfileAllocSpace,
				pyroscope.ProfileInuseObjects,
				pyroscope.ProfileInuseSpace,
			},
		})
		if err != nil {
			log.Fatalf("pyroscope start failed: %v", err)
		}
		defer func() {
			_ = profiler.Stop()
		}()
	}

	events, err := source.Load(input, cfg.Source)
	if err != nil {
		log.Fatalf("source load failed: %v", err)
	}
	if *symbol != "" {
		events = source.FilterSymbol(events, *symbol)
	}

	session := replay.NewSession(cfg.Replay)
	result, err := session.Replay(events)
	if err != nil {
		log.Fatalf("replay failed: %v", err)
	}

	var ticksPerNS float64
	if clock.Unit() == "cycles" {
		ticksPerNS = clock.Calibrate(0)
	}

	rep := report.Report{
		RunID:      uuid.NewString(),
		CreatedAt:  time.Now().UTC(),
		InputPath:  input,
		Summary:    result.Summary,
		Counters:   result.Counters,
		Books:      result.Books,
		Symbols:    result.Symbols,
		TicksPerNS: ticksPerNS,
	}
	report.Render(os.Stdout, rep)

	if *jsonOut != "" {
		if err := report.WriteJSON(*jsonOut, rep); err != nil {
			log.Fatalf("json report failed: %v", err)
		}
	}
	if *pgDSN != "" {
		if err := saveRun(*pgDSN, rep); err != nil {
			log.Fatalf("run store failed: %v", err)
		}
	}
	if *archiveDir != "" {
		if err := archiveRun(*archiveDir, rep); err != nil {
			log.Fatalf("run archive failed: %v", err)
		}
	}
}

func loadConfig(path string) (ops.Loaded, error) {
	if path == "" {
		return ops.Default(), nil
	}
	return ops.Load(path)
}

func saveRun(dsn string, rep report.Report) error {
	store, err := report.OpenStore(dsn)
	if err != nil {
		return err
	}
	defer store.Close()
	return store.Save(rep)
}

func archiveRun(dir string, rep report.Report) error {
	arc, err := archive.Open(dir)
	if err != nil {
		return err
	}
	defer arc.Close()
	return arc.Put(rep)
}

type emptyLogger struct{}

func (emptyLogger) Infof(_ string, _ ...interface{})  {}
func (emptyLogger) Debugf(_ string, _ ...interface{}) {}
func (emptyLogger) Errorf(_ string, _ ...interface{}) {}
