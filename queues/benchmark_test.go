package queues_test

import (
	"context"
	"fmt"
	"math/rand/v2"
	"sync"
	"testing"

	"cookbook/queues"
)

// ==========================================
// 1. Data Payloads (Variable A: Payload Size)
// ==========================================

// Tiny: 8 Bytes (int64)
type PayloadTiny int64

// Large: 1KB (1024 Bytes)
type PayloadLarge struct {
	Data [1024]byte
}

// ==========================================
// 2. Priority Distribution (Variable B)
// ==========================================

// priorities returns n priorities drawn from [0, spread).
// A small spread produces many ties and exercises the sequence tie-break.
func priorities(n, spread int) []int {
	r := rand.New(rand.NewPCG(1, 2))
	res := make([]int, n)
	for i := range res {
		res[i] = r.IntN(spread)
	}
	return res
}

func benchPushPop[T any](b *testing.B, payload T, n, spread int) {
	prios := priorities(n, spread)
	b.ReportAllocs()
	for b.Loop() {
		pq := queues.NewPriorityQueue[T, int](n, queues.MaxFirst)
		for _, p := range prios {
			pq.Push(payload, p)
		}
		for range n {
			_, _ = pq.Pop()
		}
	}
}

func BenchmarkPriorityQueue_PushPop(b *testing.B) {
	for _, n := range []int{100, 10_000} {
		for _, spread := range []int{4, 1 << 30} {
			b.Run(fmt.Sprintf("Tiny/n=%d/spread=%d", n, spread), func(b *testing.B) {
				benchPushPop(b, PayloadTiny(1), n, spread)
			})
			b.Run(fmt.Sprintf("Large/n=%d/spread=%d", n, spread), func(b *testing.B) {
				benchPushPop(b, PayloadLarge{}, n, spread)
			})
		}
	}
}

// ==========================================
// 3. Wrappers (Variable C: Synchronisation)
// ==========================================

func BenchmarkConcurrentPriorityQueue_Parallel(b *testing.B) {
	cpq := queues.NewConcurrentPriorityQueue[int, int](1024, queues.MaxFirst)
	b.RunParallel(func(pb *testing.PB) {
		i := 0
		for pb.Next() {
			cpq.Push(i, i%16)
			_, _ = cpq.Pop()
			i++
		}
	})
}

func BenchmarkBlockingPriorityQueue_ProducerConsumer(b *testing.B) {
	const items = 10_000
	ctx := context.Background()
	for b.Loop() {
		bpq := queues.NewBlockingPriorityQueue[int, int](256, queues.MaxFirst, 256)
		var wg sync.WaitGroup
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range items {
				if _, err := bpq.PopOrWait(ctx); err != nil {
					return
				}
			}
		}()
		for i := range items {
			_ = bpq.PushOrWait(ctx, i, i%16)
		}
		wg.Wait()
	}
}

func BenchmarkDeque_BoundedPushBack(b *testing.B) {
	for _, maxLen := range []int{5, 1024} {
		b.Run(fmt.Sprintf("maxlen=%d", maxLen), func(b *testing.B) {
			d := queues.NewBoundedDeque[int](maxLen)
			i := 0
			for b.Loop() {
				d.PushBack(i)
				i++
			}
		})
	}
}
