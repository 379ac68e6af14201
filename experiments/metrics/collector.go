package metrics

import (
	"sync/atomic"
	"time"
)

type SearchMetric struct {
	Depth       int
	Duration    time.Duration
	ChanceNodes int
	Leaves      int
	Wins        int
}

type MoveMetric struct {
	Step   int
	Player int // Player ID
	Dice   int
	Move   int
	Hash   uint64
	SearchMetric
}

type GameMetric struct {
	StartingPlayer int // Player ID
	Winner         int // Player ID
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
	Passes         int
	Captures       [2]int
}

type Collector interface {
	Start(depth int)
	AddChanceNode()
	AddLeaf()
	AddWin()
	Complete() SearchMetric
}

type collector struct {
	depth       int
	startTime   time.Time
	chanceNodes atomic.Int32
	leaves      atomic.Int32
	wins        atomic.Int32
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(depth int) {
	m.startTime = time.Now()
	m.depth = depth
	m.chanceNodes.Store(0)
	m.leaves.Store(0)
	m.wins.Store(0)
}

func (m *collector) AddChanceNode() {
	m.chanceNodes.Add(1)
}

func (m *collector) AddLeaf() {
	m.leaves.Add(1)
}

func (m *collector) AddWin() {
	m.wins.Add(1)
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Depth:       m.depth,
		Duration:    time.Since(m.startTime),
		ChanceNodes: int(m.chanceNodes.Load()),
		Leaves:      int(m.leaves.Load()),
		Wins:        int(m.wins.Load()),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(depth int)        {}
func (m *dummyCollector) AddChanceNode()         {}
func (m *dummyCollector) AddLeaf()               {}
func (m *dummyCollector) AddWin()                {}
func (m *dummyCollector) Complete() SearchMetric { return SearchMetric{} }
