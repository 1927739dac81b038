package ringbuffer

import (
	"fmt"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
)

func BenchmarkPut(b *testing.B) {
	for _, size := range []int{16, 1024} {
		b.Run(fmt.Sprintf("size_%d", size), func(b *testing.B) {
			rb := newTestBuffer[int](b, size)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				rb.Put(i)
			}
		})
	}
}

func BenchmarkPutWithMetrics(b *testing.B) {
	rb := newTestBuffer[int](b, 1024, WithMetrics[int](prometheus.NewRegistry(), "bench"))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		rb.Put(i)
	}
}

func BenchmarkPutPull(b *testing.B) {
	rb := newTestBuffer[int](b, 1024)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		rb.Put(i)
		rb.Pull()
	}
}

func BenchmarkPutParallel(b *testing.B) {
	rb := newTestBuffer[int](b, 1024)
	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		i := 0
		for pb.Next() {
			if i%2 == 0 {
				rb.Put(i)
			} else {
				rb.TryPull()
			}
			i++
		}
	})
}
