package expansion

import (
	"math/rand"
	"sort"
	"testing"
)

func TestFrontierPopsInCostOrder(t *testing.T) {
	f := newFrontier(16, 8)
	costs := []float64{12.5, 0, 3.3, 7.1, 4.4, 1.0, 9.9}
	for _, c := range costs {
		f.push(Label{Edge: 1, Cost: c})
	}

	want := append([]float64(nil), costs...)
	sort.Float64s(want)
	for i, expected := range want {
		l, ok := f.pop()
		if !ok {
			t.Fatalf("pop %d: frontier empty early", i)
		}
		if l.Cost != expected {
			t.Fatalf("pop %d: cost %.2f, want %.2f", i, l.Cost, expected)
		}
	}
	if _, ok := f.pop(); ok {
		t.Error("pop on drained frontier returned a label")
	}
}

func TestFrontierOverflowRebase(t *testing.T) {
	// 16 buckets x 5s span 80s; costs beyond that land in overflow and must
	// still come out in order after rebasing.
	f := newFrontier(16, 0)
	rng := rand.New(rand.NewSource(1))
	var costs []float64
	for range 200 {
		c := rng.Float64() * 500
		costs = append(costs, c)
		f.push(Label{Cost: c})
	}

	sort.Float64s(costs)
	for i, expected := range costs {
		l, ok := f.pop()
		if !ok {
			t.Fatalf("pop %d: frontier empty early", i)
		}
		if l.Cost != expected {
			t.Fatalf("pop %d: cost %f, want %f", i, l.Cost, expected)
		}
	}
}

func TestFrontierInterleavedNonDecreasingPushes(t *testing.T) {
	// The engine only pushes costs at or above the last popped cost; the
	// frontier must stay ordered under that interleaving.
	f := newFrontier(4, 0)
	f.push(Label{Cost: 1})
	f.push(Label{Cost: 30})

	l, _ := f.pop()
	if l.Cost != 1 {
		t.Fatalf("first pop cost %.1f, want 1", l.Cost)
	}
	f.push(Label{Cost: 2.5})
	f.push(Label{Cost: 120})

	want := []float64{2.5, 30, 120}
	for i, expected := range want {
		l, ok := f.pop()
		if !ok {
			t.Fatalf("pop %d: frontier empty early", i)
		}
		if l.Cost != expected {
			t.Fatalf("pop %d: cost %.1f, want %.1f", i, l.Cost, expected)
		}
	}
}

func TestFrontierMinimumSizing(t *testing.T) {
	f := newFrontier(0, -5)
	if len(f.buckets) != minBuckets {
		t.Errorf("bucket count %d, want floor %d", len(f.buckets), minBuckets)
	}
	f.push(Label{Cost: 0})
	if _, ok := f.pop(); !ok {
		t.Error("frontier with floored sizing lost a label")
	}
}
