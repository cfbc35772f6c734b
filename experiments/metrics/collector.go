package metrics

import (
	"sync/atomic"
	"time"
)

type SearchMetric struct {
	Depth      int
	Goroutines int
	Duration   time.Duration
	Nodes      int // Interior nodes expanded
	Leaves     int // Boards scored by the evaluation function
	Passes     int // Nodes where the side to move had to pass
}

type MoveMetric struct {
	Step   int
	Player string // "black" or "white"
	Move   string // Algebraic notation
	SearchMetric
}

type GameMetric struct {
	BlackAgent  int // AgentConfig.ID
	WhiteAgent  int // AgentConfig.ID
	Winner      string
	BlackPieces int
	WhitePieces int
	StartTime   time.Time
	EndTime     time.Time
	Duration    time.Duration
	TotalMoves  int
	FinalBoard  string // 64 row-major characters, see game.Encode
}

// Margin is the final piece difference from Black's point of view.
func (g GameMetric) Margin() int {
	return g.BlackPieces - g.WhitePieces
}

type Collector interface {
	Start(depth, goroutines int)
	AddNode()
	AddLeaf()
	AddPass()
	Complete() SearchMetric
}

type collector struct {
	depth      int
	goroutines int
	startTime  time.Time
	nodes      atomic.Int64
	leaves     atomic.Int64
	passes     atomic.Int64
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(depth, goroutines int) {
	m.startTime = time.Now()
	m.depth = depth
	m.goroutines = goroutines
}

func (m *collector) AddNode() {
	m.nodes.Add(1)
}

func (m *collector) AddLeaf() {
	m.leaves.Add(1)
}

func (m *collector) AddPass() {
	m.passes.Add(1)
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Depth:      m.depth,
		Goroutines: m.goroutines,
		Duration:   time.Since(m.startTime),
		Nodes:      int(m.nodes.Load()),
		Leaves:     int(m.leaves.Load()),
		Passes:     int(m.passes.Load()),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(depth, goroutines int) {}
func (m *dummyCollector) AddNode()                    {}
func (m *dummyCollector) AddLeaf()                    {}
func (m *dummyCollector) AddPass()                    {}
func (m *dummyCollector) Complete() SearchMetric      { return SearchMetric{} }
