// Package lagoon measures the lava lagoon dug out from a dig plan.
package lagoon

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/aestallon/advent-of-code-2023/pkg/primitives"
)

var directions = map[string]primitives.Direction{
	"U": primitives.North, "N": primitives.North,
	"R": primitives.East, "E": primitives.East,
	"D": primitives.South, "S": primitives.South,
	"L": primitives.West, "W": primitives.West,
}

// Instruction is one trench segment of the dig plan.
type Instruction struct {
	Dir   primitives.Direction
	Len   int64
	Color string // six hex digits, without '#'
}

// ParseInstruction parses "R 6 (#70c710)".
func ParseInstruction(line string) (Instruction, error) {
	fields := strings.Fields(line)
	if len(fields) != 3 {
		return Instruction{}, fmt.Errorf("want 3 fields, got %d", len(fields))
	}
	dir, ok := directions[fields[0]]
	if !ok {
		return Instruction{}, fmt.Errorf("unknown direction %q", fields[0])
	}
	n, err := primitives.Int[int64](fields[1])
	if err != nil {
		return Instruction{}, err
	}
	if n <= 0 {
		return Instruction{}, fmt.Errorf("non-positive length %d", n)
	}
	color, ok := strings.CutPrefix(fields[2], "(#")
	if ok {
		color, ok = strings.CutSuffix(color, ")")
	}
	if !ok || len(color) != 6 {
		return Instruction{}, fmt.Errorf("malformed colour %q", fields[2])
	}
	if _, err := strconv.ParseUint(color, 16, 32); err != nil {
		return Instruction{}, fmt.Errorf("malformed colour %q: %w", fields[2], err)
	}
	return Instruction{Dir: dir, Len: n, Color: color}, nil
}

// decodedDirs maps the last colour digit to a direction.
var decodedDirs = [4]primitives.Direction{primitives.East, primitives.South, primitives.West, primitives.North}

// Decode reads the real instruction hidden in the colour: five hex digits of
// distance followed by the direction digit.
func (in Instruction) Decode() (Instruction, error) {
	n, err := strconv.ParseInt(in.Color[:5], 16, 64)
	if err != nil {
		return Instruction{}, fmt.Errorf("colour %q: %w", in.Color, err)
	}
	d := in.Color[5] - '0'
	if d > 3 {
		return Instruction{}, fmt.Errorf("colour %q: direction digit %q out of range [0, 3]", in.Color, in.Color[5])
	}
	if n == 0 {
		return Instruction{}, fmt.Errorf("colour %q: zero length", in.Color)
	}
	return Instruction{Dir: decodedDirs[d], Len: n, Color: in.Color}, nil
}

// Area returns the number of cubic metres dug out: the trench itself plus
// everything it encloses. The shoelace formula gives the interior area of the
// polygon through the cell centres; Pick's theorem adds the boundary cells.
func Area(plan []Instruction) int64 {
	var (
		cur       primitives.Pt[int64]
		twice     int64
		perimeter int64
	)
	for _, in := range plan {
		d := in.Dir.Delta()
		next := cur.Add(primitives.Pt[int64]{X: int64(d.X), Y: int64(d.Y)}.Scale(in.Len))
		twice += cur.X*next.Y - next.X*cur.Y
		perimeter += in.Len
		cur = next
	}
	return primitives.Abs(twice)/2 + perimeter/2 + 1
}

type Plan struct {
	Instructions []Instruction
}

func Parse(lines []string) (Plan, error) {
	var p Plan
	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		in, err := ParseInstruction(line)
		if err != nil {
			return Plan{}, primitives.WrapParseError(i+1, line, err)
		}
		p.Instructions = append(p.Instructions, in)
	}
	if len(p.Instructions) == 0 {
		return Plan{}, primitives.NewParseError(0, "", "empty dig plan")
	}
	return p, nil
}

func (p Plan) Part1() int64 {
	return Area(p.Instructions)
}

func (p Plan) Part2() (int64, error) {
	decoded := make([]Instruction, len(p.Instructions))
	for i, in := range p.Instructions {
		d, err := in.Decode()
		if err != nil {
			return 0, fmt.Errorf("instruction %d: %w", i+1, err)
		}
		decoded[i] = d
	}
	return Area(decoded), nil
}
