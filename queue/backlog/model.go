package backlog

import (
	"container/list"
	"sync"

	libatm "github.com/sabouaram/siclient/atomic"
	"github.com/sabouaram/siclient/codec"
)

type queue struct {
	mu       sync.Mutex
	data     *list.List
	capacity int64
	onDrop   DropFunc

	sizeBytes libatm.Value[int64]
	count     libatm.Value[int64]
}

func newQueue(capacityBytes int64, onDrop DropFunc) *queue {
	return &queue{
		data:      list.New(),
		capacity:  capacityBytes,
		onDrop:    onDrop,
		sizeBytes: libatm.NewValue[int64](),
		count:     libatm.NewValue[int64](),
	}
}

func cost(rec codec.Record) int64 {
	return int64(rec.EstimatedCost) + itemOverhead
}

func (q *queue) Push(rec codec.Record) {
	q.mu.Lock()

	q.data.PushBack(rec)
	q.sizeBytes.Store(q.sizeBytes.Load() + cost(rec))
	q.count.Store(q.count.Load() + 1)

	dropped := q.resizeLocked()

	q.mu.Unlock()

	if dropped > 0 && q.onDrop != nil {
		q.onDrop(dropped)
	}
}

func (q *queue) Pop() (codec.Record, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	return q.popFrontLocked()
}

func (q *queue) popFrontLocked() (codec.Record, bool) {
	el := q.data.Front()
	if el == nil {
		return codec.Record{}, false
	}

	rec := el.Value.(codec.Record)
	q.data.Remove(el)
	q.sizeBytes.Store(q.sizeBytes.Load() - cost(rec))
	q.count.Store(q.count.Load() - 1)

	return rec, true
}

func (q *queue) Clear() {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.data.Init()
	q.sizeBytes.Store(0)
	q.count.Store(0)
}

func (q *queue) Configure(capacityBytes int64) {
	q.mu.Lock()
	q.capacity = capacityBytes
	dropped := q.resizeLocked()
	q.mu.Unlock()

	if dropped > 0 && q.onDrop != nil {
		q.onDrop(dropped)
	}
}

// resizeLocked evicts from the head while over capacity, returning the
// number of records evicted. Caller must hold q.mu.
func (q *queue) resizeLocked() int {
	dropped := 0

	for q.sizeBytes.Load() > q.capacity && q.data.Len() > 0 {
		if _, ok := q.popFrontLocked(); ok {
			dropped++
		} else {
			break
		}
	}

	return dropped
}

func (q *queue) Count() int64 {
	return q.count.Load()
}

func (q *queue) SizeBytes() int64 {
	return q.sizeBytes.Load()
}
