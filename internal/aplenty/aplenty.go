// Package aplenty sorts machine parts through the elves' workflows.
package aplenty

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/aestallon/advent-of-code-2023/pkg/primitives"
)

var (
	// ErrUnknownWorkflow is returned when a rule sends a part to a workflow
	// that is not defined.
	ErrUnknownWorkflow = errors.New("aplenty: unknown workflow")
	// ErrLoop is returned when a part can revisit a workflow.
	ErrLoop = errors.New("aplenty: workflow loop")
)

const (
	Start  = "in"
	Accept = "A"
	Reject = "R"
)

// Category is one of the four rating categories, in x, m, a, s order.
type Category int

const categories = "xmas"

func parseCategory(s string) (Category, error) {
	if i := strings.Index(categories, s); len(s) == 1 && i >= 0 {
		return Category(i), nil
	}
	return 0, fmt.Errorf("unknown category %q", s)
}

func (c Category) String() string {
	return categories[c : c+1]
}

// Rule sends a part to Target when its rating in Cat compares to Value by Op.
type Rule struct {
	Cat    Category
	Op     byte
	Value  int64
	Target string
}

func (r Rule) Matches(p Part) bool {
	if r.Op == '<' {
		return p[r.Cat] < r.Value
	}
	return p[r.Cat] > r.Value
}

// Split divides the ratings in iv into the ones the rule matches and the rest.
func (r Rule) Split(iv primitives.Interval[int64]) (match, rest primitives.Interval[int64]) {
	if r.Op == '<' {
		return iv.SplitAt(r.Value)
	}
	rest, match = iv.SplitAt(r.Value + 1)
	return match, rest
}

func (r Rule) String() string {
	return fmt.Sprintf("%v%c%d:%s", r.Cat, r.Op, r.Value, r.Target)
}

type Workflow struct {
	Name     string
	Rules    []Rule
	Fallback string
}

var (
	workflowPattern = regexp.MustCompile(`^([a-z]+)\{(.*)\}$`)
	rulePattern     = regexp.MustCompile(`^([a-z])([<>])(\d+):([a-zAR]+)$`)
	targetPattern   = regexp.MustCompile(`^[a-zAR]+$`)
	ratingPattern   = regexp.MustCompile(`^([a-z])=(\d+)$`)
)

// ParseWorkflow parses "px{a<2006:qkq,m>2090:A,rfg}".
func ParseWorkflow(s string) (Workflow, error) {
	m := workflowPattern.FindStringSubmatch(s)
	if m == nil {
		return Workflow{}, errors.New(`expected "name{rule,...,fallback}"`)
	}
	w := Workflow{Name: m[1]}
	parts := strings.Split(m[2], ",")
	for _, text := range parts[:len(parts)-1] {
		rm := rulePattern.FindStringSubmatch(text)
		if rm == nil {
			return Workflow{}, fmt.Errorf("malformed rule %q", text)
		}
		cat, err := parseCategory(rm[1])
		if err != nil {
			return Workflow{}, err
		}
		v, err := primitives.Int[int64](rm[3])
		if err != nil {
			return Workflow{}, err
		}
		w.Rules = append(w.Rules, Rule{Cat: cat, Op: rm[2][0], Value: v, Target: rm[4]})
	}
	w.Fallback = parts[len(parts)-1]
	if !targetPattern.MatchString(w.Fallback) {
		return Workflow{}, fmt.Errorf("malformed fallback %q", w.Fallback)
	}
	return w, nil
}

// Next returns the target the workflow sends p to.
func (w Workflow) Next(p Part) string {
	for _, r := range w.Rules {
		if r.Matches(p) {
			return r.Target
		}
	}
	return w.Fallback
}

// Part holds the ratings of a part, indexed by Category.
type Part [4]int64

// ParsePart parses "{x=787,m=2655,a=1222,s=2876}". Every category must be
// given exactly once.
func ParsePart(s string) (Part, error) {
	inner, ok := strings.CutPrefix(s, "{")
	if ok {
		inner, ok = strings.CutSuffix(inner, "}")
	}
	if !ok {
		return Part{}, errors.New("part must be enclosed in braces")
	}
	var (
		p    Part
		seen [4]bool
	)
	for _, text := range strings.Split(inner, ",") {
		m := ratingPattern.FindStringSubmatch(text)
		if m == nil {
			return Part{}, fmt.Errorf("malformed rating %q", text)
		}
		cat, err := parseCategory(m[1])
		if err != nil {
			return Part{}, err
		}
		if seen[cat] {
			return Part{}, fmt.Errorf("category %v rated twice", cat)
		}
		seen[cat] = true
		if p[cat], err = primitives.Int[int64](m[2]); err != nil {
			return Part{}, err
		}
	}
	for c, ok := range seen {
		if !ok {
			return Part{}, fmt.Errorf("category %v not rated", Category(c))
		}
	}
	return p, nil
}

func (p Part) Rating() int64 {
	return p[0] + p[1] + p[2] + p[3]
}

// System is the set of workflows plus the parts waiting to be sorted.
type System struct {
	Workflows map[string]Workflow
	Parts     []Part
}

func Parse(lines []string) (System, error) {
	blocks := primitives.Blocks(lines)
	if len(blocks) != 2 {
		return System{}, primitives.NewParseError(0, "", "expected workflows, a blank line and the parts")
	}
	s := System{Workflows: map[string]Workflow{}}
	for i, line := range blocks[0].Lines {
		lineNo := blocks[0].Start + i + 1
		w, err := ParseWorkflow(strings.TrimSpace(line))
		if err != nil {
			return System{}, primitives.WrapParseError(lineNo, line, err)
		}
		if _, dup := s.Workflows[w.Name]; dup {
			return System{}, primitives.NewParseError(lineNo, line, "workflow %s defined twice", w.Name)
		}
		s.Workflows[w.Name] = w
	}
	for i, line := range blocks[1].Lines {
		p, err := ParsePart(strings.TrimSpace(line))
		if err != nil {
			return System{}, primitives.WrapParseError(blocks[1].Start+i+1, line, err)
		}
		s.Parts = append(s.Parts, p)
	}
	return s, nil
}

// Accepted runs p through the workflows from Start.
func (s System) Accepted(p Part) (bool, error) {
	visited := map[string]bool{}
	cur := Start
	for {
		switch cur {
		case Accept:
			return true, nil
		case Reject:
			return false, nil
		}
		if visited[cur] {
			return false, fmt.Errorf("%w through %s", ErrLoop, cur)
		}
		visited[cur] = true
		w, ok := s.Workflows[cur]
		if !ok {
			return false, fmt.Errorf("%w %q", ErrUnknownWorkflow, cur)
		}
		cur = w.Next(p)
	}
}

// Box is a set of parts given as one rating interval per category.
type Box [4]primitives.Interval[int64]

// FullBox holds every part rated 1 to 4000 in each category.
var FullBox = Box{{Lo: 1, Hi: 4001}, {Lo: 1, Hi: 4001}, {Lo: 1, Hi: 4001}, {Lo: 1, Hi: 4001}}

func (b Box) Volume() int64 {
	v := int64(1)
	for _, iv := range b {
		v *= iv.Len()
	}
	return v
}

func (b Box) Empty() bool {
	for _, iv := range b {
		if iv.Empty() {
			return true
		}
	}
	return false
}

// AcceptedBoxes decomposes b into disjoint boxes whose parts are all
// accepted. Each rule cuts the current box in two along its category; the
// matching half follows the rule's target and the rest falls through.
func (s System) AcceptedBoxes(b Box) ([]Box, error) {
	var out []Box
	err := s.accept(Start, b, map[string]bool{}, &out)
	return out, err
}

func (s System) accept(name string, b Box, path map[string]bool, out *[]Box) error {
	if b.Empty() {
		return nil
	}
	switch name {
	case Accept:
		*out = append(*out, b)
		return nil
	case Reject:
		return nil
	}
	if path[name] {
		return fmt.Errorf("%w through %s", ErrLoop, name)
	}
	w, ok := s.Workflows[name]
	if !ok {
		return fmt.Errorf("%w %q", ErrUnknownWorkflow, name)
	}
	path[name] = true
	defer delete(path, name)

	for _, r := range w.Rules {
		match, rest := r.Split(b[r.Cat])
		taken := b
		taken[r.Cat] = match
		if err := s.accept(r.Target, taken, path, out); err != nil {
			return err
		}
		b[r.Cat] = rest
		if rest.Empty() {
			return nil
		}
	}
	return s.accept(w.Fallback, b, path, out)
}

func (s System) Part1() (int64, error) {
	var sum int64
	for i, p := range s.Parts {
		ok, err := s.Accepted(p)
		if err != nil {
			return 0, fmt.Errorf("part %d: %w", i+1, err)
		}
		if ok {
			sum += p.Rating()
		}
	}
	return sum, nil
}

func (s System) Part2() (int64, error) {
	boxes, err := s.AcceptedBoxes(FullBox)
	if err != nil {
		return 0, err
	}
	var n int64
	for _, b := range boxes {
		n += b.Volume()
	}
	return n, nil
}
