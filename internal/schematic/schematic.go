// Package schematic reads the gondola lift engine schematic: part numbers
// and the symbols they touch.
package schematic

import (
	"fmt"
	"strings"

	"github.com/aestallon/advent-of-code-2023/pkg/primitives"
)

type sealed = any

// Token is a classified unit of the schematic.
type Token interface {
	sealed // Only Number and Symbol implement Token.

	// Span returns the token's row and the inclusive range of columns it covers.
	Span() (row, start, end int)
}

// Number is a maximal run of digits on a single row.
type Number struct {
	Value      int64
	Text       string
	Row        int
	Start, End int
}

func (n Number) Span() (int, int, int) {
	return n.Row, n.Start, n.End
}

// Symbol is any character that is neither a digit nor '.'.
type Symbol struct {
	Rune     rune
	Row, Col int
}

func (s Symbol) Span() (int, int, int) {
	return s.Row, s.Col, s.Col
}

// Adjacent reports whether two distinct tokens touch, diagonals included.
func Adjacent(a, b Token) bool {
	ar, as, ae := a.Span()
	br, bs, be := b.Span()
	if ar == br && as == bs {
		return false
	}
	return primitives.Abs(ar-br) <= 1 && as <= be+1 && bs <= ae+1
}

// Gear is a '*' touching exactly two part numbers.
type Gear struct {
	Symbol Symbol
	Parts  [2]Number
}

func (g Gear) Ratio() int64 {
	return g.Parts[0].Value * g.Parts[1].Value
}

// Schematic holds the tokens of every row, left to right.
type Schematic struct {
	width, height int
	rows          [][]Token
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func Parse(lines []string) (Schematic, error) {
	g, err := primitives.ParseGrid(lines)
	if err != nil {
		return Schematic{}, err
	}
	s := Schematic{width: g.Width(), height: g.Height(), rows: make([][]Token, g.Height())}
	for y := range g.Height() {
		row := g.Row(y)
		for x := 0; x < len(row); x++ {
			switch r := row[x]; {
			case r == '.':
			case isDigit(r):
				start := x
				for x+1 < len(row) && isDigit(row[x+1]) {
					x++
				}
				text := string(row[start : x+1])
				v, err := primitives.Int[int64](text)
				if err != nil {
					return Schematic{}, primitives.WrapParseError(y+1, lines[y], err)
				}
				s.rows[y] = append(s.rows[y], Number{Value: v, Text: text, Row: y, Start: start, End: x})
			default:
				s.rows[y] = append(s.rows[y], Symbol{Rune: r, Row: y, Col: x})
			}
		}
	}
	return s, nil
}

// window returns the tokens of rows y-1 to y+1.
func (s Schematic) window(y int) []Token {
	var ts []Token
	for r := max(0, y-1); r <= min(s.height-1, y+1); r++ {
		ts = append(ts, s.rows[r]...)
	}
	return ts
}

// Tokens returns every token in reading order.
func (s Schematic) Tokens() []Token {
	var ts []Token
	for _, row := range s.rows {
		ts = append(ts, row...)
	}
	return ts
}

// NumbersAdjacentToSymbols returns the part numbers: numbers touching at least
// one symbol.
func (s Schematic) NumbersAdjacentToSymbols() []Number {
	var parts []Number
	for y, row := range s.rows {
		for _, t := range row {
			n, ok := t.(Number)
			if !ok {
				continue
			}
			for _, other := range s.window(y) {
				if _, isSym := other.(Symbol); isSym && Adjacent(n, other) {
					parts = append(parts, n)
					break
				}
			}
		}
	}
	return parts
}

// Gears returns every '*' symbol adjacent to exactly two numbers.
func (s Schematic) Gears() []Gear {
	var gears []Gear
	for y, row := range s.rows {
		for _, t := range row {
			sym, ok := t.(Symbol)
			if !ok || sym.Rune != '*' {
				continue
			}
			var adjacent []Number
			for _, other := range s.window(y) {
				if n, isNum := other.(Number); isNum && Adjacent(sym, n) {
					adjacent = append(adjacent, n)
				}
			}
			if len(adjacent) == 2 {
				gears = append(gears, Gear{Symbol: sym, Parts: [2]Number{adjacent[0], adjacent[1]}})
			}
		}
	}
	return gears
}

// String renders the schematic from its tokens.
func (s Schematic) String() string {
	lines := make([]string, s.height)
	for y, row := range s.rows {
		b := []rune(strings.Repeat(".", s.width))
		for _, t := range row {
			switch t := t.(type) {
			case Number:
				copy(b[t.Start:], []rune(t.Text))
			case Symbol:
				b[t.Col] = t.Rune
			default:
				panic(fmt.Sprintf("unknown token %T", t))
			}
		}
		lines[y] = string(b)
	}
	return strings.Join(lines, "\n")
}

func (s Schematic) Part1() int64 {
	var sum int64
	for _, n := range s.NumbersAdjacentToSymbols() {
		sum += n.Value
	}
	return sum
}

func (s Schematic) Part2() int64 {
	var sum int64
	for _, g := range s.Gears() {
		sum += g.Ratio()
	}
	return sum
}
