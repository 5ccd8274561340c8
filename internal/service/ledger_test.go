package service

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zangjing/ztq-pricing-service/internal/domain/model"
	"github.com/zangjing/ztq-pricing-service/internal/repository"
)

func newTestLedger(t *testing.T) (*Ledger, *repository.MemoryStore) {
	t.Helper()
	store := repository.NewMemoryStore()
	return NewLedger(context.Background(), store), store
}

func fixedClock(ms int64) func() time.Time {
	return func() time.Time { return time.UnixMilli(ms) }
}

func TestLedgerSubmit(t *testing.T) {
	ctx := context.Background()

	t.Run("empty queue is refused", func(t *testing.T) {
		l, _ := newTestLedger(t)
		_, err := l.Submit(ctx, NewQueue())
		assert.ErrorIs(t, err, ErrEmptyQueue)
		assert.Zero(t, l.Len())
	})

	t.Run("submission snapshots and clears the queue", func(t *testing.T) {
		l, store := newTestLedger(t)
		l.now = fixedClock(1735530000000)

		q := NewQueue()
		q.Add(queueItem("a", 10, 3000))
		q.Add(queueItem("b", 20, 6000))

		batch, err := l.Submit(ctx, q)
		require.NoError(t, err)

		assert.Equal(t, "1735530000000", batch.ID)
		assert.Equal(t, time.UnixMilli(1735530000000).Format("2006/1/2 15:04:05"), batch.Date)
		assert.Len(t, batch.Items, 2)
		assert.Equal(t, 2, batch.ItemCount)
		assert.InDelta(t, 9000, batch.TotalRetail, 1e-9)
		assert.Zero(t, q.Len(), "queue is cleared by submission")

		l.Flush()
		raw, err := store.Get(ctx, repository.KeyLedger)
		require.NoError(t, err)
		var persisted []model.Batch
		require.NoError(t, json.Unmarshal(raw, &persisted))
		require.Len(t, persisted, 1)
		assert.Equal(t, batch.ID, persisted[0].ID)
	})

	t.Run("newest batch comes first", func(t *testing.T) {
		l, _ := newTestLedger(t)
		l.now = fixedClock(1000)

		q := NewQueue()
		q.Add(queueItem("a", 1, 1))
		_, err := l.Submit(ctx, q)
		require.NoError(t, err)

		l.now = fixedClock(2000)
		q.Add(queueItem("b", 1, 1))
		_, err = l.Submit(ctx, q)
		require.NoError(t, err)

		batches := l.Batches()
		require.Len(t, batches, 2)
		assert.Equal(t, "2000", batches[0].ID)
		assert.Equal(t, "1000", batches[1].ID)
	})

	t.Run("returned batch is a copy", func(t *testing.T) {
		l, _ := newTestLedger(t)
		q := NewQueue()
		q.Add(queueItem("a", 1, 1))
		batch, err := l.Submit(ctx, q)
		require.NoError(t, err)

		batch.Items[0].ID = "mutated"
		assert.Equal(t, "a", l.Batches()[0].Items[0].ID)
	})
}

func TestLedgerLoad(t *testing.T) {
	ctx := context.Background()

	t.Run("restores persisted history", func(t *testing.T) {
		store := repository.NewMemoryStore()
		history := []model.Batch{{ID: "2000", ItemCount: 1}, {ID: "1000", ItemCount: 2}}
		raw, err := json.Marshal(history)
		require.NoError(t, err)
		require.NoError(t, store.Set(ctx, repository.KeyLedger, raw))

		l := NewLedger(ctx, store)
		require.Equal(t, 2, l.Len())
		assert.Equal(t, "2000", l.Batches()[0].ID)
	})

	t.Run("corrupt payload starts empty", func(t *testing.T) {
		store := repository.NewMemoryStore()
		require.NoError(t, store.Set(ctx, repository.KeyLedger, []byte("{not json")))

		l := NewLedger(ctx, store)
		assert.Zero(t, l.Len())
	})

	t.Run("missing key starts empty", func(t *testing.T) {
		l, _ := newTestLedger(t)
		assert.Zero(t, l.Len())
	})
}

func TestLedgerImportMerge(t *testing.T) {
	ctx := context.Background()

	t.Run("not an array merges nothing", func(t *testing.T) {
		l, _ := newTestLedger(t)
		added, err := l.ImportMerge(ctx, []byte(`{"id":"1"}`))
		assert.ErrorIs(t, err, ErrImportFormat)
		assert.Zero(t, added)
	})

	t.Run("null payload is a format error", func(t *testing.T) {
		l, _ := newTestLedger(t)
		added, err := l.ImportMerge(ctx, []byte("null"))
		assert.ErrorIs(t, err, ErrImportFormat)
		assert.Zero(t, added)
	})

	t.Run("existing batch wins", func(t *testing.T) {
		l, _ := newTestLedger(t)
		l.now = fixedClock(2000)
		q := NewQueue()
		q.Add(queueItem("mine", 5, 500))
		_, err := l.Submit(ctx, q)
		require.NoError(t, err)

		payload, err := json.Marshal([]model.Batch{
			{ID: "2000", ItemCount: 99},
			{ID: "1000", ItemCount: 1},
			{ID: "3000", ItemCount: 2},
		})
		require.NoError(t, err)

		added, err := l.ImportMerge(ctx, payload)
		require.NoError(t, err)
		assert.Equal(t, 2, added)

		batches := l.Batches()
		require.Len(t, batches, 3)
		assert.Equal(t, []string{"3000", "2000", "1000"},
			[]string{batches[0].ID, batches[1].ID, batches[2].ID},
			"merged history is sorted newest first")
		assert.Equal(t, 1, batches[1].ItemCount, "incoming duplicate did not replace the existing batch")
	})

	t.Run("merge is idempotent", func(t *testing.T) {
		l, _ := newTestLedger(t)
		payload, err := json.Marshal([]model.Batch{{ID: "1000"}, {ID: "2000"}})
		require.NoError(t, err)

		added, err := l.ImportMerge(ctx, payload)
		require.NoError(t, err)
		assert.Equal(t, 2, added)

		added, err = l.ImportMerge(ctx, payload)
		require.NoError(t, err)
		assert.Zero(t, added)
		assert.Equal(t, 2, l.Len())
	})

	t.Run("blank ids are skipped", func(t *testing.T) {
		l, _ := newTestLedger(t)
		payload, err := json.Marshal([]model.Batch{{ID: ""}, {ID: "1000"}})
		require.NoError(t, err)

		added, err := l.ImportMerge(ctx, payload)
		require.NoError(t, err)
		assert.Equal(t, 1, added)
	})
}

func TestLedgerExportRoundTrip(t *testing.T) {
	ctx := context.Background()
	l, _ := newTestLedger(t)
	l.now = fixedClock(1735530000000)

	q := NewQueue()
	q.Add(queueItem("a", 10, 3000))
	_, err := l.Submit(ctx, q)
	require.NoError(t, err)

	exported, err := l.ExportJSON()
	require.NoError(t, err)

	other, _ := newTestLedger(t)
	added, err := other.ImportMerge(ctx, exported)
	require.NoError(t, err)
	assert.Equal(t, 1, added)
	assert.Equal(t, l.Batches(), other.Batches())
}

func TestLedgerClear(t *testing.T) {
	ctx := context.Background()
	l, store := newTestLedger(t)
	q := NewQueue()
	q.Add(queueItem("a", 1, 1))
	_, err := l.Submit(ctx, q)
	require.NoError(t, err)

	l.Clear(ctx)
	assert.Zero(t, l.Len())

	l.Flush()
	raw, err := store.Get(ctx, repository.KeyLedger)
	require.NoError(t, err)
	assert.Equal(t, "null", string(raw))
}

// A failing store never breaks submissions.
func TestLedgerPersistFailureIsNonFatal(t *testing.T) {
	ctx := context.Background()
	l := NewLedger(ctx, failingKV{})
	q := NewQueue()
	q.Add(queueItem("a", 1, 1))

	batch, err := l.Submit(ctx, q)
	require.NoError(t, err)
	assert.NotEmpty(t, batch.ID)
	l.Flush()
	assert.Equal(t, 1, l.Len())
}

type failingKV struct{}

func (failingKV) Get(context.Context, string) ([]byte, error) {
	return nil, repository.ErrKeyNotFound
}

func (failingKV) Set(context.Context, string, []byte) error {
	return assert.AnError
}

func (failingKV) Remove(context.Context, string) error {
	return assert.AnError
}
