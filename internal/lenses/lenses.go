// Package lenses runs the HASHMAP initialisation sequence of the lava
// production facility.
package lenses

import (
	"fmt"
	"regexp"
	"slices"
	"strings"

	"github.com/aestallon/advent-of-code-2023/pkg/primitives"
)

// Hash is the Holiday ASCII String Helper algorithm.
func Hash(s string) int {
	cur := 0
	for i := range len(s) {
		cur = (cur + int(s[i])) * 17 % 256
	}
	return cur
}

// Op is the operation of a step.
type Op byte

const (
	Remove Op = '-'
	Insert Op = '='
)

type Step struct {
	Text  string
	Label string
	Op    Op
	// Focal is the lens focal length for Insert steps.
	Focal int
}

var labelPattern = regexp.MustCompile(`^[a-z]+$`)

func checkLabel(s, label string) error {
	if !labelPattern.MatchString(label) {
		return fmt.Errorf("step %q: label %q must be lower case letters", s, label)
	}
	return nil
}

// ParseStep parses "rn=1" or "cm-".
func ParseStep(s string) (Step, error) {
	if label, ok := strings.CutSuffix(s, string(Remove)); ok {
		if err := checkLabel(s, label); err != nil {
			return Step{}, err
		}
		return Step{Text: s, Label: label, Op: Remove}, nil
	}
	label, focalText, ok := strings.Cut(s, string(Insert))
	if !ok {
		return Step{}, fmt.Errorf("step %q has neither '=' nor '-'", s)
	}
	if err := checkLabel(s, label); err != nil {
		return Step{}, err
	}
	focal, err := primitives.Int[int](focalText)
	if err != nil {
		return Step{}, fmt.Errorf("step %q: %w", s, err)
	}
	if focal < 1 || focal > 9 {
		return Step{}, fmt.Errorf("step %q: focal length %d out of range [1, 9]", s, focal)
	}
	return Step{Text: s, Label: label, Op: Insert, Focal: focal}, nil
}

type Lens struct {
	Label string
	Focal int
}

// Boxes are the 256 boxes of lenses, each in slot order.
type Boxes [256][]Lens

// Apply performs one step, returning the updated boxes; b is left untouched.
func (b Boxes) Apply(s Step) Boxes {
	h := Hash(s.Label)
	box := slices.Clone(b[h])
	i := slices.IndexFunc(box, func(l Lens) bool { return l.Label == s.Label })
	switch s.Op {
	case Remove:
		if i >= 0 {
			box = slices.Delete(box, i, i+1)
		}
	case Insert:
		if i >= 0 {
			box[i].Focal = s.Focal
		} else {
			box = append(box, Lens{Label: s.Label, Focal: s.Focal})
		}
	}
	b[h] = box
	return b
}

// FocusingPower sums box number times slot number times focal length, both
// counted from 1, over every lens.
func (b Boxes) FocusingPower() int64 {
	var p int64
	for i, box := range b {
		for slot, l := range box {
			p += int64(i+1) * int64(slot+1) * int64(l.Focal)
		}
	}
	return p
}

type Sequence struct {
	Steps []Step
}

// Parse reads the comma separated sequence. Newlines are ignored.
func Parse(lines []string) (Sequence, error) {
	joined := strings.Join(lines, "")
	if strings.TrimSpace(joined) == "" {
		return Sequence{}, primitives.NewParseError(0, "", "empty initialisation sequence")
	}
	var seq Sequence
	for _, text := range strings.Split(joined, ",") {
		s, err := ParseStep(strings.TrimSpace(text))
		if err != nil {
			return Sequence{}, primitives.WrapParseError(1, text, err)
		}
		seq.Steps = append(seq.Steps, s)
	}
	return seq, nil
}

func (seq Sequence) Part1() int64 {
	var sum int64
	for _, s := range seq.Steps {
		sum += int64(Hash(s.Text))
	}
	return sum
}

func (seq Sequence) Part2() int64 {
	var b Boxes
	for _, s := range seq.Steps {
		b = b.Apply(s)
	}
	return b.FocusingPower()
}
