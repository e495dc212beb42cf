// Package generator produces random workloads for the simulator.
package generator

import (
	"fmt"
	"math/rand"

	"cpu-scheduler/internal/requests"
)

// Bounds limits the generated values. Arrival times are drawn from
// [0, max(10, 2*count)] and priorities from [MinPriority, max(MinPriority, 2*count)].
type Bounds struct {
	MaxCount    int
	MinBurst    int
	MaxBurst    int
	MinPriority int
}

var DefaultBounds = Bounds{MaxCount: 1000, MinBurst: 1, MaxBurst: 100, MinPriority: 1}

func (b Bounds) Validate() error {
	if b.MaxCount <= 0 {
		return fmt.Errorf("generator: max count must be positive, got %d", b.MaxCount)
	}
	if b.MinBurst <= 0 || b.MaxBurst < b.MinBurst {
		return fmt.Errorf("generator: invalid burst range [%d, %d]", b.MinBurst, b.MaxBurst)
	}
	return nil
}

// Generator draws processes from a seeded source, so equal seeds give equal workloads.
type Generator struct {
	bounds Bounds
	rng    *rand.Rand
}

func New(bounds Bounds, seed int64) *Generator {
	return &Generator{bounds: bounds, rng: rand.New(rand.NewSource(seed))}
}

// Processes returns count processes with ids 1..count.
func (g *Generator) Processes(count int) ([]requests.Process, error) {
	if count <= 0 || count > g.bounds.MaxCount {
		return nil, fmt.Errorf("generator: count must be between 1 and %d, got %d", g.bounds.MaxCount, count)
	}

	maxArrival := 2 * count
	if maxArrival < 10 {
		maxArrival = 10
	}
	maxPriority := 2 * count
	if maxPriority < g.bounds.MinPriority {
		maxPriority = g.bounds.MinPriority
	}

	processes := make([]requests.Process, 0, count)
	for id := 1; id <= count; id++ {
		processes = append(processes, requests.Process{
			Id:          id,
			BurstTime:   g.between(g.bounds.MinBurst, g.bounds.MaxBurst),
			ArrivalTime: g.between(0, maxArrival),
			Priority:    g.between(g.bounds.MinPriority, maxPriority),
		})
	}
	return processes, nil
}

// between draws uniformly from the closed interval [lo, hi].
func (g *Generator) between(lo, hi int) int {
	return lo + g.rng.Intn(hi-lo+1)
}
