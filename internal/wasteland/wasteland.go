// Package wasteland navigates the desert network of labelled nodes.
package wasteland

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/aestallon/advent-of-code-2023/pkg/primitives"
)

var (
	// ErrUnknownNode is returned when a walk reaches a node that is not defined.
	ErrUnknownNode = errors.New("wasteland: unknown node")
	// ErrUnreachable is returned when a walk cycles without reaching its goal.
	ErrUnreachable = errors.New("wasteland: goal unreachable")
)

var nodePattern = regexp.MustCompile(`^([A-Z0-9]{3}) = \(([A-Z0-9]{3}), ([A-Z0-9]{3})\)$`)

type Node struct {
	Left, Right string
}

// Map is the instruction string plus the node network.
type Map struct {
	Turns string
	Nodes map[string]Node
}

func Parse(lines []string) (Map, error) {
	blocks := primitives.Blocks(lines)
	if len(blocks) != 2 || len(blocks[0].Lines) != 1 {
		return Map{}, primitives.NewParseError(0, "", "expected an instruction line, a blank line and the node list")
	}
	turns := strings.TrimSpace(blocks[0].Lines[0])
	if strings.Trim(turns, "LR") != "" {
		return Map{}, primitives.NewParseError(blocks[0].Start+1, turns, "instructions may only contain L and R")
	}

	m := Map{Turns: turns, Nodes: map[string]Node{}}
	for i, line := range blocks[1].Lines {
		lineNo := blocks[1].Start + i + 1
		match := nodePattern.FindStringSubmatch(strings.TrimSpace(line))
		if match == nil {
			return Map{}, primitives.NewParseError(lineNo, line, "expected \"AAA = (BBB, CCC)\"")
		}
		if _, dup := m.Nodes[match[1]]; dup {
			return Map{}, primitives.NewParseError(lineNo, line, "node %s defined twice", match[1])
		}
		m.Nodes[match[1]] = Node{Left: match[2], Right: match[3]}
	}
	return m, nil
}

// Steps follows the instructions from start, repeating them as needed, until
// done reports true for the current node. The start node itself is never a
// goal.
func (m Map) Steps(start string, done func(string) bool) (int64, error) {
	limit := int64(len(m.Turns)) * int64(len(m.Nodes))
	cur := start
	for steps := int64(0); steps <= limit; {
		n, ok := m.Nodes[cur]
		if !ok {
			return 0, fmt.Errorf("%w %q", ErrUnknownNode, cur)
		}
		if m.Turns[steps%int64(len(m.Turns))] == 'L' {
			cur = n.Left
		} else {
			cur = n.Right
		}
		steps++
		if done(cur) {
			return steps, nil
		}
	}
	return 0, fmt.Errorf("%w from %s", ErrUnreachable, start)
}

// Part1 counts the steps from AAA to ZZZ.
func (m Map) Part1() (int64, error) {
	return m.Steps("AAA", func(n string) bool { return n == "ZZZ" })
}

// Ghosts returns the starting nodes of the ghost walk, every node ending in A.
func (m Map) Ghosts() []string {
	var starts []string
	for name := range m.Nodes {
		if strings.HasSuffix(name, "A") {
			starts = append(starts, name)
		}
	}
	return starts
}

// Part2 walks every ghost at once until all stand on nodes ending in Z. Each
// ghost's walk is periodic in the input, so the answer is the LCM of the
// first arrival times.
func (m Map) Part2() (int64, error) {
	starts := m.Ghosts()
	if len(starts) == 0 {
		return 0, fmt.Errorf("wasteland: no node ends in A")
	}
	steps := make([]int64, 0, len(starts))
	for _, s := range starts {
		n, err := m.Steps(s, func(n string) bool { return strings.HasSuffix(n, "Z") })
		if err != nil {
			return 0, err
		}
		steps = append(steps, n)
	}
	return primitives.LCM(steps...), nil
}
