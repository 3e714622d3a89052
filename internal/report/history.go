package report

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
	"github.com/syndtr/goleveldb/leveldb"

	"github.com/replayctl/pagesim/internal/sim"
	"github.com/replayctl/pagesim/internal/xerrors"
)

// ErrHistoryLocked reports that another pagesim process already holds the
// history directory's lock file.
const ErrHistoryLocked = xerrors.ConstError("history database is locked by another process")

// runIDKey is the tablespace prefix for the monotonic run-id counter, kept
// under its own key so it never collides with a run record (grounded on
// the teacher's TableSpace-prefixed key scheme in backend/ldb.go).
const runIDKey = "\x00next-run-id"

// RunRecord is one archived pagesim run: enough to answer "history" for a
// user without ever serializing cache state (spec.md's "no persistence of
// cache state across runs" applies to Frame/PolicyState/Partition, not to
// this summary).
type RunRecord struct {
	ID         uint64             `json:"id"`
	Timestamp  time.Time          `json:"timestamp"`
	TracePath  string             `json:"trace_path"`
	Frames     int                `json:"frames"`
	Algorithms []byte             `json:"algorithms"`
	HitRatios  map[string]float64 `json:"hit_ratios"`
}

// History is an embedded goleveldb-backed archive of RunRecords, guarded
// by a sibling flock lock file so two concurrent `pagesim run` processes
// never interleave writes.
type History struct {
	db   *leveldb.DB
	lock *flock.Flock
	dir  string
}

// OpenHistory opens (creating if necessary) the goleveldb database at
// dir, first acquiring an exclusive flock on dir/.lock.
func OpenHistory(dir string) (*History, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating history directory %s: %w", dir, err)
	}

	lock := flock.New(filepath.Join(dir, ".lock"))
	locked, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("locking history directory %s: %w", dir, err)
	}
	if !locked {
		return nil, fmt.Errorf("%w: %s", ErrHistoryLocked, dir)
	}

	db, err := leveldb.OpenFile(dir, nil)
	if err != nil {
		lock.Unlock()
		return nil, fmt.Errorf("opening history database at %s: %w", dir, err)
	}

	return &History{db: db, lock: lock, dir: dir}, nil
}

// Close releases the underlying database handle and the directory lock.
func (h *History) Close() error {
	dbErr := h.db.Close()
	lockErr := h.lock.Unlock()
	if dbErr != nil {
		return dbErr
	}
	return lockErr
}

// Append records one run's results, deriving the RunRecord from the
// engine's raw sim.PolicyResult slice, and returns the id it was
// assigned.
func (h *History) Append(tracePath string, frames int, results []sim.PolicyResult) (uint64, error) {
	id, err := h.nextRunID()
	if err != nil {
		return 0, err
	}

	rec := RunRecord{
		ID:        id,
		Timestamp: time.Now(),
		TracePath: tracePath,
		Frames:    frames,
		HitRatios: make(map[string]float64, len(results)),
	}
	for _, pr := range results {
		rec.Algorithms = append(rec.Algorithms, pr.Policy.Code())
		rec.HitRatios[pr.Policy.Label()] = pr.State.HitRatio()
	}

	data, err := json.Marshal(rec)
	if err != nil {
		return 0, fmt.Errorf("marshaling run record: %w", err)
	}
	if err := h.db.Put(runRecordKey(id), data, nil); err != nil {
		return 0, fmt.Errorf("writing run record: %w", err)
	}
	return id, nil
}

// List returns up to limit most recent RunRecords, newest first. limit <=
// 0 means "no limit".
func (h *History) List(limit int) ([]RunRecord, error) {
	iter := h.db.NewIterator(nil, nil)
	defer iter.Release()

	var records []RunRecord
	for ok := iter.Last(); ok; ok = iter.Prev() {
		key := iter.Key()
		if len(key) > 0 && key[0] == 0 {
			continue // skip the run-id counter key
		}
		var rec RunRecord
		if err := json.Unmarshal(iter.Value(), &rec); err != nil {
			return nil, fmt.Errorf("decoding run record: %w", err)
		}
		records = append(records, rec)
		if limit > 0 && len(records) >= limit {
			break
		}
	}
	return records, iter.Error()
}

func (h *History) nextRunID() (uint64, error) {
	data, err := h.db.Get([]byte(runIDKey), nil)
	var id uint64
	if err == nil {
		id = binary.BigEndian.Uint64(data) + 1
	} else if err != leveldb.ErrNotFound {
		return 0, fmt.Errorf("reading run-id counter: %w", err)
	}

	buf := make([]byte, 8)
	binary.BigEndian.PutUint64(buf, id)
	if err := h.db.Put([]byte(runIDKey), buf, nil); err != nil {
		return 0, fmt.Errorf("writing run-id counter: %w", err)
	}
	return id, nil
}

func runRecordKey(id uint64) []byte {
	key := make([]byte, 9)
	key[0] = 'r'
	binary.BigEndian.PutUint64(key[1:], id)
	return key
}
