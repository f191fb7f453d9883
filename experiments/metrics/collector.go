package metrics

import (
	"sync/atomic"
	"time"
)

// SearchMetric summarizes one classification run.
type SearchMetric struct {
	Duration time.Duration
	Nodes    int // Positions classified by search
	Children int // Positions produced by the move generator
	Pruned   int // Children skipped after a side found a winning reply
	MaxDepth int
}

type Collector interface {
	Start()
	AddNode(depth int)
	AddChildren(n int)
	AddPruned(n int)
	Complete() SearchMetric
}

type collector struct {
	startTime time.Time
	nodes     atomic.Int64
	children  atomic.Int64
	pruned    atomic.Int64
	maxDepth  atomic.Int64
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start() {
	m.startTime = time.Now()
	m.nodes.Store(0)
	m.children.Store(0)
	m.pruned.Store(0)
	m.maxDepth.Store(0)
}

func (m *collector) AddNode(depth int) {
	m.nodes.Add(1)
	for {
		current := m.maxDepth.Load()
		if int64(depth) <= current || m.maxDepth.CompareAndSwap(current, int64(depth)) {
			return
		}
	}
}

func (m *collector) AddChildren(n int) {
	m.children.Add(int64(n))
}

func (m *collector) AddPruned(n int) {
	m.pruned.Add(int64(n))
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Duration: time.Since(m.startTime),
		Nodes:    int(m.nodes.Load()),
		Children: int(m.children.Load()),
		Pruned:   int(m.pruned.Load()),
		MaxDepth: int(m.maxDepth.Load()),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start()                 {}
func (m *dummyCollector) AddNode(depth int)      {}
func (m *dummyCollector) AddChildren(n int)      {}
func (m *dummyCollector) AddPruned(n int)        {}
func (m *dummyCollector) Complete() SearchMetric { return SearchMetric{} }
