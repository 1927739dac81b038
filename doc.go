/*
Package ringbuffer provides a generic, thread-safe, fixed-size circular buffer
that keeps the most recent items.

The RingBuffer is meant for producer-consumer pipelines that need bounded, lossy
history, such as a sliding window of samples or log lines. When the buffer reaches
its capacity, new items overwrite the oldest ones. Reads and writes never block.

Thread safety is achieved with a single mutex per buffer. Every operation,
including the inspectors IsEmpty, IsFull and GetSize, observes a consistent state.

Usage:

Create a new ring buffer of a specific type and size. A size below 1 is rejected:

	rb, err := ringbuffer.New[string](10)
	if err != nil {
		return err
	}
	defer rb.Close()

Add items from one or more goroutines:

	go func() {
		rb.Put("hello")
		rb.Put("world")
	}()

Pull returns the oldest item, or the zero value when the buffer is empty.
TryPull also reports whether an item was available:

	if item, ok := rb.TryPull(); ok {
		fmt.Printf("Got item: %v\n", item)
	}

Reset discards everything currently held:

	rb.Reset()
	fmt.Println(rb.IsEmpty(), rb.GetSize()) // true 0

Dropped Items:

Items discarded without being pulled (overwritten while full, or removed by
Reset or Close) are passed to the function set with WithDropCallback. Types that
require cleanup can implement the Cleanable interface; Cleanup() is called for
each discarded item after the drop callback.

	type MyResource struct {
		// ... fields
	}

	func (r *MyResource) Cleanup() {
		// ... release resources here
	}

	rb, _ := ringbuffer.New[*MyResource](5)
	rb.Put(&MyResource{}) // Cleanup() is called if this item is overwritten.

Hooks run after the buffer's lock is released, so they may call back into the buffer.

Observability:

Every buffer counts its operations; see Stats. Counters can also be exported to
Prometheus:

	reg := prometheus.NewRegistry()
	rb, err := ringbuffer.New[float64](512,
		ringbuffer.WithMetrics[float64](reg, "sensor_window"),
		ringbuffer.WithLogger[float64](logger),
	)

Close unregisters the collectors so another buffer can reuse the name.
*/
package ringbuffer
