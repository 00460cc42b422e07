package report

import (
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Run is the persisted row of one replay run.
type Run struct {
	ID          string `gorm:"primaryKey"`
	CreatedAt   time.Time
	InputPath   string
	Rows        int64
	WallSeconds float64
	Throughput  float64
	P50         uint64
	P95         uint64
	P99         uint64
	Max         uint64
	ClockUnit   string
	Books       int
	Anomalies   uint64
}

// Store keeps run history in Postgres.
type Store struct {
	db *gorm.DB
}

// OpenStore connects to dsn and migrates the runs table.
func OpenStore(dsn string) (*Store, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(&Run{}); err != nil {
		return nil, err
	}
	return &Store{db: db}, nil
}

// Save inserts one run row.
func (s *Store) Save(rep Report) error {
	return s.db.Create(runFromReport(rep)).Error
}

// Close closes the underlying connection pool.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func runFromReport(rep Report) *Run {
	return &Run{
		ID:          rep.RunID,
		CreatedAt:   rep.CreatedAt,
		InputPath:   rep.InputPath,
		Rows:        rep.Summary.Rows,
		WallSeconds: rep.Summary.WallSeconds,
		Throughput:  rep.Summary.Throughput,
		P50:         rep.Summary.P50,
		P95:         rep.Summary.P95,
		P99:         rep.Summary.P99,
		Max:         rep.Summary.Max,
		ClockUnit:   rep.Summary.Unit,
		Books:       rep.Books,
		Anomalies:   rep.Counters.Anomalies(),
	}
}
