// Package archive keeps finished run reports in a local pebble
// database, so run history survives without a Postgres connection.
package archive

import (
	"encoding/json"
	"fmt"

	"github.com/cockroachdb/pebble"
	"github.com/yanun0323/errors"

	"github.com/Shivesh777/nanotick/internal/report"
)

var ErrRunNotFound = errors.New("archive: run not found")

var runPrefix = []byte("run/")

// keys: run/<20-digit-created-ns>/<run-id> -> report json,
// id/<run-id> -> primary key
func runKey(rep report.Report) []byte {
	return []byte(fmt.Sprintf("run/%020d/%s", rep.CreatedAt.UTC().UnixNano(), rep.RunID))
}

func idKey(runID string) []byte {
	return append([]byte("id/"), runID...)
}

// Archive is a pebble-backed store of run reports.
type Archive struct {
	db *pebble.DB
}

// Open opens or creates the archive database at dir.
func Open(dir string) (*Archive, error) {
	db, err := pebble.Open(dir, &pebble.Options{})
	if err != nil {
		return nil, errors.Wrap(err, "open archive")
	}
	return &Archive{db: db}, nil
}

// Close closes the database.
func (a *Archive) Close() error {
	return a.db.Close()
}

// Put stores one report. The primary key embeds the creation time, so
// scans return runs in chronological order.
func (a *Archive) Put(rep report.Report) error {
	data, err := json.Marshal(rep)
	if err != nil {
		return errors.Wrap(err, "marshal report")
	}
	key := runKey(rep)
	if err := a.db.Set(key, data, pebble.Sync); err != nil {
		return errors.Wrap(err, "store report")
	}
	if err := a.db.Set(idKey(rep.RunID), key, pebble.Sync); err != nil {
		return errors.Wrap(err, "store run id index")
	}
	return nil
}

// Get returns the archived report with the given run id.
func (a *Archive) Get(runID string) (report.Report, error) {
	keyVal, closer, err := a.db.Get(idKey(runID))
	if err != nil {
		if err == pebble.ErrNotFound {
			return report.Report{}, ErrRunNotFound
		}
		return report.Report{}, errors.Wrap(err, "lookup run id")
	}
	key := make([]byte, len(keyVal))
	copy(key, keyVal)
	if err := closer.Close(); err != nil {
		return report.Report{}, err
	}

	data, closer, err := a.db.Get(key)
	if err != nil {
		if err == pebble.ErrNotFound {
			return report.Report{}, ErrRunNotFound
		}
		return report.Report{}, errors.Wrap(err, "load run")
	}
	defer closer.Close()

	var rep report.Report
	if err := json.Unmarshal(data, &rep); err != nil {
		return report.Report{}, errors.Wrap(err, "decode run")
	}
	return rep, nil
}

// Scan calls fn for every archived run in chronological order.
func (a *Archive) Scan(fn func(report.Report) error) error {
	iter, err := a.db.NewIter(&pebble.IterOptions{
		LowerBound: runPrefix,
		UpperBound: keyUpperBound(runPrefix),
	})
	if err != nil {
		return errors.Wrap(err, "archive iter")
	}
	defer iter.Close()

	for iter.First(); iter.Valid(); iter.Next() {
		var rep report.Report
		if err := json.Unmarshal(iter.Value(), &rep); err != nil {
			return errors.Wrapf(err, "decode run %q", iter.Key())
		}
		if err := fn(rep); err != nil {
			return err
		}
	}
	return iter.Error()
}

// Recent returns up to limit runs, newest first.
func (a *Archive) Recent(limit int) ([]report.Report, error) {
	if limit <= 0 {
		return nil, nil
	}
	iter, err := a.db.NewIter(&pebble.IterOptions{
		LowerBound: runPrefix,
		UpperBound: keyUpperBound(runPrefix),
	})
	if err != nil {
		return nil, errors.Wrap(err, "archive iter")
	}
	defer iter.Close()

	var out []report.Report
	for iter.Last(); iter.Valid() && len(out) < limit; iter.Prev() {
		var rep report.Report
		if err := json.Unmarshal(iter.Value(), &rep); err != nil {
			return nil, errors.Wrapf(err, "decode run %q", iter.Key())
		}
		out = append(out, rep)
	}
	return out, iter.Error()
}

func keyUpperBound(prefix []byte) []byte {
	end := make([]byte, len(prefix))
	copy(end, prefix)
	for i := len(end) - 1; i >= 0; i-- {
		end[i]++
		if end[i] != 0 {
			return end[:i+1]
		}
	}
	return nil
}
