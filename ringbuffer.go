package ringbuffer

import (
	"log/slog"
	"sync"
)

// Cleanable is an interface for types that require explicit cleanup
// when they are dropped from the RingBuffer (overwritten while full,
// or discarded by Reset or Close).
type Cleanable interface {
	// Cleanup performs any necessary resource release.
	Cleanup()
}

// RingBuffer is a generic, thread-safe, fixed-size ring buffer that keeps the
// most recent items. Every state change happens under a single mutex.
type RingBuffer[T any] struct {
	mu sync.Mutex

	data []T
	// head is the index where the next item will be written.
	head int
	// tail is the index of the next item to be read.
	tail int
	// isFull distinguishes a full buffer from an empty one when head == tail.
	isFull bool

	stats   *Statistics
	metrics *bufferMetrics
	opts    *options[T]
	logger  *slog.Logger

	reportedFull bool
	closed       bool
}

// New creates a RingBuffer holding at most size items. It returns an error
// wrapping ErrInvalidSize if size is less than 1, or the registration error
// if WithMetrics was given and the collectors could not be registered.
func New[T any](size int, opts ...Option[T]) (*RingBuffer[T], error) {
	if size <= 0 {
		return nil, wrap(ErrInvalidSize, "New", "size validation")
	}

	o := applyOptions(opts...)
	rb := &RingBuffer[T]{
		data:   make([]T, size),
		stats:  newStatistics(),
		opts:   o,
		logger: o.logger.With("component", "ringbuffer", "capacity", size),
	}

	if o.registerer != nil {
		m, err := newBufferMetrics(o.registerer, o.metricsName)
		if err != nil {
			return nil, wrap(err, "New", "metrics registration")
		}
		m.updateSize(0, size)
		rb.metrics = m
		rb.logger = rb.logger.With("buffer", o.metricsName)
	}

	return rb, nil
}

// Put writes item at the head of the buffer. If the buffer is full the oldest
// item is discarded to make room. Put never blocks and never fails.
func (rb *RingBuffer[T]) Put(item T) {
	dropped, overwrote, becameFull := rb.put(item)
	if becameFull {
		rb.logger.Debug("ring buffer full, oldest items will be overwritten")
	}
	if overwrote {
		rb.drop(dropped)
	}
}

func (rb *RingBuffer[T]) put(item T) (dropped T, overwrote, becameFull bool) {
	rb.mu.Lock()
	defer rb.mu.Unlock()

	size := len(rb.data)
	if rb.isFull {
		// head == tail, so the slot about to be written holds the oldest item.
		dropped = rb.data[rb.head]
		overwrote = true
	}

	rb.data[rb.head] = item
	if rb.isFull {
		rb.tail = (rb.tail + 1) % size
	}
	rb.head = (rb.head + 1) % size
	rb.isFull = rb.head == rb.tail

	if rb.isFull && !rb.reportedFull {
		rb.reportedFull = true
		becameFull = true
	}

	n := rb.sizeLocked()
	rb.stats.recordPut(n, overwrote)
	if rb.metrics != nil {
		rb.metrics.recordPut(n, size, overwrote)
	}

	return dropped, overwrote, becameFull
}

// Pull removes and returns the oldest item. If the buffer is empty it returns
// the zero value of T; use TryPull to tell an empty buffer from a stored zero value.
func (rb *RingBuffer[T]) Pull() T {
	item, _ := rb.TryPull()
	return item
}

// TryPull removes and returns the oldest item and true. If the buffer is empty
// it returns the zero value for the type and false.
func (rb *RingBuffer[T]) TryPull() (T, bool) {
	rb.mu.Lock()
	defer rb.mu.Unlock()

	var zero T
	if rb.isEmptyLocked() {
		rb.stats.recordPull(false)
		return zero, false
	}

	item := rb.data[rb.tail]
	rb.isFull = false
	rb.tail = (rb.tail + 1) % len(rb.data)

	rb.stats.recordPull(true)
	if rb.metrics != nil {
		rb.metrics.recordPull(rb.sizeLocked(), len(rb.data))
	}

	return item, true
}

// IsEmpty reports whether the buffer holds no items.
func (rb *RingBuffer[T]) IsEmpty() bool {
	rb.mu.Lock()
	defer rb.mu.Unlock()
	return rb.isEmptyLocked()
}

// IsFull reports whether the buffer holds GetMaxSize items.
func (rb *RingBuffer[T]) IsFull() bool {
	rb.mu.Lock()
	defer rb.mu.Unlock()
	return rb.isFull
}

// GetMaxSize returns the capacity the buffer was created with.
func (rb *RingBuffer[T]) GetMaxSize() int {
	// len(rb.data) never changes after New.
	return len(rb.data)
}

// GetSize returns the number of items currently held.
func (rb *RingBuffer[T]) GetSize() int {
	rb.mu.Lock()
	defer rb.mu.Unlock()
	return rb.sizeLocked()
}

// Reset discards all items. Slots are not cleared; the discarded items are
// passed to the drop callback and Cleanup like overwritten ones.
func (rb *RingBuffer[T]) Reset() {
	discarded := rb.reset()
	rb.logger.Debug("ring buffer reset", "discarded", len(discarded))
	for _, item := range discarded {
		rb.drop(item)
	}
}

func (rb *RingBuffer[T]) reset() []T {
	rb.mu.Lock()
	defer rb.mu.Unlock()

	discarded := rb.contentsLocked()
	rb.tail = rb.head
	rb.isFull = false

	rb.stats.recordReset()
	if rb.metrics != nil {
		rb.metrics.recordReset(len(rb.data))
	}
	return discarded
}

// Stats returns the buffer's operation counters.
func (rb *RingBuffer[T]) Stats() *Statistics {
	return rb.stats
}

// Close discards the remaining items, calling Cleanup on those that implement
// Cleanable, and unregisters the buffer's metrics. The buffer remains usable
// afterwards but is no longer exported. Calling Close more than once is a no-op.
func (rb *RingBuffer[T]) Close() error {
	rb.mu.Lock()
	if rb.closed {
		rb.mu.Unlock()
		return nil
	}
	rb.closed = true
	metrics := rb.metrics
	rb.metrics = nil
	rb.mu.Unlock()

	rb.Reset()
	if metrics != nil {
		metrics.unregister()
	}
	rb.logger.Debug("ring buffer closed")
	return nil
}

// drop hands a discarded item to the configured hooks. Must be called
// without holding rb.mu so hooks may use the buffer.
func (rb *RingBuffer[T]) drop(item T) {
	if rb.opts.dropCallback != nil {
		rb.opts.dropCallback(item)
	}
	if cleanable, ok := any(item).(Cleanable); ok {
		cleanable.Cleanup()
	}
}

func (rb *RingBuffer[T]) isEmptyLocked() bool {
	return !rb.isFull && rb.head == rb.tail
}

func (rb *RingBuffer[T]) sizeLocked() int {
	if rb.isFull {
		return len(rb.data)
	}
	if rb.head >= rb.tail {
		return rb.head - rb.tail
	}
	return len(rb.data) + rb.head - rb.tail
}

// contentsLocked copies the live items from oldest to newest.
func (rb *RingBuffer[T]) contentsLocked() []T {
	n := rb.sizeLocked()
	if n == 0 {
		return nil
	}
	items := make([]T, 0, n)
	for i := 0; i < n; i++ {
		items = append(items, rb.data[(rb.tail+i)%len(rb.data)])
	}
	return items
}
