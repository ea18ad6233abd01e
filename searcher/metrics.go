package searcher

import "time"

// SearchMetric summarizes one root search: the deepest completed depth, the
// amount of work done, and the wall-clock time spent.
type SearchMetric struct {
	Depth   int
	Nodes   int
	Leaves  int
	Prunes  int
	Elapsed time.Duration
}

type Collector interface {
	Start()
	SetDepth(depth int)
	AddNode()
	AddLeaf()
	AddPrune()
	Complete() SearchMetric
}

type collector struct {
	startTime time.Time
	depth     int
	nodes     int
	leaves    int
	prunes    int
}

func NewCollector() Collector {
	return &collector{}
}

func (c *collector) Start() {
	*c = collector{startTime: time.Now()}
}

func (c *collector) SetDepth(depth int) { c.depth = depth }
func (c *collector) AddNode() { c.nodes++ }
func (c *collector) AddLeaf() { c.leaves++ }
func (c *collector) AddPrune() { c.prunes++ }

func (c *collector) Complete() SearchMetric {
	return SearchMetric{
		Depth:   c.depth,
		Nodes:   c.nodes,
		Leaves:  c.leaves,
		Prunes:  c.prunes,
		Elapsed: time.Since(c.startTime),
	}
}

type dummyCollector struct{}

// NewDummyCollector returns a collector that does nothing, for when search
// metrics are not wanted.
func NewDummyCollector() Collector {
	return dummyCollector{}
}

func (dummyCollector) Start() {}
func (dummyCollector) SetDepth(int) {}
func (dummyCollector) AddNode() {}
func (dummyCollector) AddLeaf() {}
func (dummyCollector) AddPrune() {}
func (dummyCollector) Complete() SearchMetric { return SearchMetric{} }
