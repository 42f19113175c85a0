package command

import (
	"container/list"
	"sync"

	libatm "github.com/sabouaram/siclient/atomic"
)

type queue struct {
	mu   sync.Mutex
	data *list.List

	sizeBytes libatm.Value[int64]
	count     libatm.Value[int64]
}

func newQueue() *queue {
	return &queue{
		data:      list.New(),
		sizeBytes: libatm.NewValue[int64](),
		count:     libatm.NewValue[int64](),
	}
}

func (q *queue) Push(cmd Command) {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.data.PushBack(cmd)
	q.sizeBytes.Store(q.sizeBytes.Load() + cmd.cost())
	q.count.Store(q.count.Load() + 1)
}

func (q *queue) Pop() (Command, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	return q.popFrontLocked()
}

func (q *queue) popFrontLocked() (Command, bool) {
	el := q.data.Front()
	if el == nil {
		return Command{}, false
	}

	cmd := el.Value.(Command)
	q.data.Remove(el)
	q.sizeBytes.Store(q.sizeBytes.Load() - cmd.cost())
	q.count.Store(q.count.Load() - 1)

	return cmd, true
}

func (q *queue) Clear() {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.data.Init()
	q.sizeBytes.Store(0)
	q.count.Store(0)
}

// Trim removes Write-kind nodes from head to tail, skipping every other
// kind in place, until n bytes have been freed or no Write remains.
func (q *queue) Trim(n int64) bool {
	q.mu.Lock()
	defer q.mu.Unlock()

	var freed int64

	for el := q.data.Front(); el != nil && freed < n; {
		cmd := el.Value.(Command)

		if cmd.Kind != Write {
			el = el.Next()
			continue
		}

		next := el.Next()
		q.data.Remove(el)
		q.sizeBytes.Store(q.sizeBytes.Load() - cmd.cost())
		q.count.Store(q.count.Load() - 1)
		freed += cmd.cost()
		el = next
	}

	return freed >= n
}

// DrainDisconnectsOnly removes and returns every Disconnect command,
// discarding every other kind still queued.
func (q *queue) DrainDisconnectsOnly() []Command {
	q.mu.Lock()
	defer q.mu.Unlock()

	out := make([]Command, 0, q.data.Len())

	for el := q.data.Front(); el != nil; {
		next := el.Next()
		cmd := el.Value.(Command)

		if cmd.Kind == Disconnect {
			out = append(out, cmd)
		}

		q.sizeBytes.Store(q.sizeBytes.Load() - cmd.cost())
		q.count.Store(q.count.Load() - 1)
		q.data.Remove(el)

		el = next
	}

	return out
}

func (q *queue) Count() int64 {
	return q.count.Load()
}

func (q *queue) SizeBytes() int64 {
	return q.sizeBytes.Load()
}
