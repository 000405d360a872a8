package springs

import "strings"

// suffix identifies a subproblem by what is left of the cells and the runs.
// The count depends on nothing else, so equal suffixes share one answer no
// matter which row or prefix led to them.
type suffix struct {
	cells string
	runs  string
}

// Counter counts arrangements with a memo that lives as long as the Counter.
// A Counter is not safe for concurrent use.
type Counter struct {
	memo map[suffix]int64
}

func NewCounter() *Counter {
	return &Counter{memo: make(map[suffix]int64)}
}

// Arrangements returns how many ways the unknown cells of r can be filled so
// that the damaged runs match r.Runs exactly.
func (c *Counter) Arrangements(r Row) int64 {
	return c.count(r.Cells, r.encodedRuns())
}

// MemoSize reports the number of cached subproblems.
func (c *Counter) MemoSize() int {
	return len(c.memo)
}

func (c *Counter) count(cells, runs string) int64 {
	if cells == "" {
		if runs == "" {
			return 1
		}
		return 0
	}

	key := suffix{cells: cells, runs: runs}
	if memo, ok := c.memo[key]; ok {
		return memo
	}

	var n int64
	switch cells[0] {
	case Operational:
		n = c.count(cells[1:], runs)
	case Damaged:
		n = c.consume(cells, runs)
	case Unknown:
		n = c.count(cells[1:], runs) + c.consume(cells, runs)
	}
	c.memo[key] = n
	return n
}

// consume places the first run at the start of cells, then counts the
// arrangements of what follows the run and its separator.
func (c *Counter) consume(cells, runs string) int64 {
	if runs == "" {
		return 0
	}
	run := int(runs[0])
	if len(cells) < run {
		return 0
	}
	if strings.IndexByte(cells[:run], Operational) >= 0 {
		return 0
	}
	if len(cells) == run {
		return c.count("", runs[1:])
	}
	if cells[run] == Damaged {
		return 0
	}
	return c.count(cells[run+1:], runs[1:])
}
