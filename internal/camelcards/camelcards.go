// Package camelcards ranks Camel Cards hands and computes their winnings.
package camelcards

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/aestallon/advent-of-code-2023/pkg/primitives"
)

// HandSize is the number of cards in every hand.
const HandSize = 5

const labels = "23456789TJQKA"

// Card is a card label's strength, 0 for '2' through 12 for 'A'.
type Card int

// Joker is the strength of J when jokers are wild: weaker than every other
// card.
const Joker Card = -1

func parseCard(r rune, jokers bool) (Card, error) {
	i := strings.IndexRune(labels, r)
	if i < 0 {
		return 0, fmt.Errorf("invalid card %q", r)
	}
	if jokers && r == 'J' {
		return Joker, nil
	}
	return Card(i), nil
}

// Type classifies a hand, ordered from weakest to strongest.
type Type int

const (
	HighCard Type = iota
	OnePair
	TwoPair
	ThreeOfAKind
	FullHouse
	FourOfAKind
	FiveOfAKind
)

func (t Type) String() string {
	return [...]string{"high card", "one pair", "two pair", "three of a kind", "full house", "four of a kind", "five of a kind"}[t]
}

// classify derives the type from label frequencies. Jokers join the most
// frequent other label, which always yields the strongest reachable type.
func classify(cards [HandSize]Card) Type {
	counts := map[Card]int{}
	jokers := 0
	for _, c := range cards {
		if c == Joker {
			jokers++
			continue
		}
		counts[c]++
	}
	freq := make([]int, 0, len(counts))
	for _, n := range counts {
		freq = append(freq, n)
	}
	slices.SortFunc(freq, func(a, b int) int { return cmp.Compare(b, a) })
	if len(freq) == 0 {
		freq = []int{0}
	}
	freq[0] += jokers

	switch {
	case freq[0] == 5:
		return FiveOfAKind
	case freq[0] == 4:
		return FourOfAKind
	case freq[0] == 3 && freq[1] == 2:
		return FullHouse
	case freq[0] == 3:
		return ThreeOfAKind
	case freq[0] == 2 && freq[1] == 2:
		return TwoPair
	case freq[0] == 2:
		return OnePair
	}
	return HighCard
}

type Hand struct {
	Text  string
	Cards [HandSize]Card
	Bid   int64
	Type  Type
}

// ParseHand parses "32T3K 765". With jokers set, J is wild.
func ParseHand(line string, jokers bool) (Hand, error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return Hand{}, fmt.Errorf("expected \"<cards> <bid>\"")
	}
	text := fields[0]
	if n := len([]rune(text)); n != HandSize {
		return Hand{}, fmt.Errorf("hand %q has %d cards, expected %d", text, n, HandSize)
	}
	h := Hand{Text: text}
	for i, r := range []rune(text) {
		c, err := parseCard(r, jokers)
		if err != nil {
			return Hand{}, err
		}
		h.Cards[i] = c
	}
	bid, err := primitives.Int[int64](fields[1])
	if err != nil {
		return Hand{}, fmt.Errorf("bid: %w", err)
	}
	if bid < 0 {
		return Hand{}, fmt.Errorf("negative bid %d", bid)
	}
	h.Bid = bid
	h.Type = classify(h.Cards)
	return h, nil
}

// Compare orders hands by type, then card by card from the first.
func Compare(a, b Hand) int {
	if c := cmp.Compare(a.Type, b.Type); c != 0 {
		return c
	}
	for i := range HandSize {
		if c := cmp.Compare(a.Cards[i], b.Cards[i]); c != 0 {
			return c
		}
	}
	return 0
}

// Winnings ranks the hands from weakest (rank 1) and sums rank times bid.
func Winnings(hands []Hand) int64 {
	sorted := slices.Clone(hands)
	slices.SortStableFunc(sorted, Compare)
	var total int64
	for i, h := range sorted {
		total += int64(i+1) * h.Bid
	}
	return total
}

// Game keeps the raw lines since the joker rule changes card strengths and
// therefore needs its own parse.
type Game struct {
	lines []string
	Hands []Hand
}

func parseHands(lines []string, jokers bool) ([]Hand, error) {
	var hands []Hand
	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		h, err := ParseHand(line, jokers)
		if err != nil {
			return nil, primitives.WrapParseError(i+1, line, err)
		}
		hands = append(hands, h)
	}
	if len(hands) == 0 {
		return nil, primitives.NewParseError(0, "", "no hands")
	}
	return hands, nil
}

func Parse(lines []string) (Game, error) {
	hands, err := parseHands(lines, false)
	if err != nil {
		return Game{}, err
	}
	return Game{lines: lines, Hands: hands}, nil
}

func (g Game) Part1() int64 {
	return Winnings(g.Hands)
}

func (g Game) Part2() (int64, error) {
	hands, err := parseHands(g.lines, true)
	if err != nil {
		return 0, err
	}
	return Winnings(hands), nil
}
