package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"sort"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/zangjing/ztq-pricing-service/internal/domain/model"
	"github.com/zangjing/ztq-pricing-service/internal/repository"
)

var (
	// ErrEmptyQueue is returned when a submission is attempted with no
	// queued items.
	ErrEmptyQueue = errors.New("cannot submit an empty queue")
	// ErrImportFormat is returned when an import payload is not a batch
	// array. Nothing is merged on a format error.
	ErrImportFormat = errors.New("import payload is not a batch array")
)

// persistTimeout bounds background store writes.
const persistTimeout = 5 * time.Second

// Ledger is the append-only history of submitted batches, newest first.
// The in-memory slice is authoritative; the key-value store is a best-effort
// mirror written in the background. All mutation goes through one mutex.
type Ledger struct {
	mu      sync.Mutex
	batches []model.Batch
	store   repository.KeyValueStore

	// writeMu serializes store writes; generation drops superseded ones so
	// the newest snapshot always wins regardless of goroutine scheduling.
	writeMu    sync.Mutex
	generation atomic.Uint64
	wg         sync.WaitGroup

	now func() time.Time
}

// NewLedger creates a ledger backed by store and loads any persisted
// history. A corrupt stored payload is logged and discarded; the ledger
// starts empty rather than failing.
func NewLedger(ctx context.Context, store repository.KeyValueStore) *Ledger {
	l := &Ledger{
		store: store,
		now:   time.Now,
	}

	raw, err := store.Get(ctx, repository.KeyLedger)
	if err != nil {
		if !errors.Is(err, repository.ErrKeyNotFound) {
			log.Warn().Err(err).Msg("ledger: loading persisted history failed, starting empty")
		}
		return l
	}

	var batches []model.Batch
	if err := json.Unmarshal(raw, &batches); err != nil {
		log.Warn().Err(err).Msg("ledger: persisted history is corrupt, starting empty")
		return l
	}
	l.batches = batches
	return l
}

// Submit drains the queue into a new batch and prepends it to the history.
// An empty queue is refused with ErrEmptyQueue and nothing changes. The
// returned batch is the caller's copy.
func (l *Ledger) Submit(ctx context.Context, queue *Queue) (model.Batch, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if queue.Len() == 0 {
		return model.Batch{}, ErrEmptyQueue
	}
	items := queue.Drain()

	now := l.now()
	agg := model.AggregateItems(items)
	batch := model.Batch{
		ID:                strconv.FormatInt(now.UnixMilli(), 10),
		Date:              now.Format("2006/1/2 15:04:05"),
		Items:             items,
		TotalNagquPrice:   agg.TotalNagquPrice,
		TotalChannelPrice: agg.TotalChannelPrice,
		TotalRetail:       agg.TotalRetail,
		ItemCount:         agg.Count,
	}

	l.batches = append([]model.Batch{batch}, l.batches...)
	l.persistLocked(ctx)
	return copyBatch(batch), nil
}

// ImportMerge merges an exported ledger payload into the history. Batches
// whose id already exists are skipped; the existing batch wins. The merged
// history is re-sorted newest first by numeric id. Returns the number of
// batches actually added. A malformed payload merges nothing.
func (l *Ledger) ImportMerge(ctx context.Context, raw []byte) (int, error) {
	// A JSON null unmarshals into a nil slice without error, so check the
	// root token explicitly: only an array is a valid export.
	if trimmed := bytes.TrimLeft(raw, " \t\r\n"); len(trimmed) == 0 || trimmed[0] != '[' {
		return 0, ErrImportFormat
	}
	var incoming []model.Batch
	if err := json.Unmarshal(raw, &incoming); err != nil {
		return 0, ErrImportFormat
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	existing := make(map[string]bool, len(l.batches))
	for _, b := range l.batches {
		existing[b.ID] = true
	}

	added := 0
	for _, b := range incoming {
		if b.ID == "" || existing[b.ID] {
			continue
		}
		existing[b.ID] = true
		l.batches = append(l.batches, b)
		added++
	}

	if added > 0 {
		sort.SliceStable(l.batches, func(i, j int) bool {
			return batchIDLess(l.batches[j].ID, l.batches[i].ID)
		})
		l.persistLocked(ctx)
	}
	return added, nil
}

// Batches returns a deep copy of the history, newest first.
func (l *Ledger) Batches() []model.Batch {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]model.Batch, len(l.batches))
	for i, b := range l.batches {
		out[i] = copyBatch(b)
	}
	return out
}

// Len returns the number of batches in the history.
func (l *Ledger) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.batches)
}

// Clear deletes the whole history, in memory and in the store.
func (l *Ledger) Clear(ctx context.Context) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.batches = nil
	l.persistLocked(ctx)
}

// ExportJSON returns the history serialized the same way it is persisted,
// suitable for a later ImportMerge.
func (l *Ledger) ExportJSON() ([]byte, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return json.Marshal(l.batches)
}

// Flush waits for in-flight background persistence to finish. Called on
// graceful shutdown and by tests.
func (l *Ledger) Flush() {
	l.wg.Wait()
}

// persistLocked mirrors the current history to the store in the background.
// The caller holds the mutex; the payload is serialized before the goroutine
// starts so the write never races later mutations. Failures are logged, the
// in-memory state stays authoritative.
func (l *Ledger) persistLocked(ctx context.Context) {
	payload, err := json.Marshal(l.batches)
	if err != nil {
		log.Error().Err(err).Msg("ledger: serializing history failed")
		return
	}

	seq := l.generation.Add(1)
	l.wg.Add(1)
	go func() {
		defer l.wg.Done()
		l.writeMu.Lock()
		defer l.writeMu.Unlock()
		if seq < l.generation.Load() {
			return // a newer snapshot is already queued
		}
		ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), persistTimeout)
		defer cancel()
		if err := l.store.Set(ctx, repository.KeyLedger, payload); err != nil {
			log.Error().Err(err).Msg("ledger: persisting history failed")
		}
	}()
}

// batchIDLess orders ids numerically when both parse, lexically otherwise.
func batchIDLess(a, b string) bool {
	na, errA := strconv.ParseInt(a, 10, 64)
	nb, errB := strconv.ParseInt(b, 10, 64)
	if errA == nil && errB == nil {
		return na < nb
	}
	return a < b
}

func copyBatch(b model.Batch) model.Batch {
	out := b
	out.Items = make([]model.LineItem, len(b.Items))
	copy(out.Items, b.Items)
	return out
}
