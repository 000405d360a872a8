package aplenty

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aestallon/advent-of-code-2023/pkg/primitives"
)

const sample = `px{a<2006:qkq,m>2090:A,rfg}
pv{a>1716:R,A}
lnx{m>1548:A,A}
rfg{s<537:gd,x>2440:R,A}
qs{s>3448:A,lnx}
qkq{x<1416:A,crn}
crn{x>2662:A,R}
in{s<1351:px,qqz}
qqz{s>2770:qs,m<1801:hdj,R}
gd{a>3333:R,R}
hdj{m>838:A,pv}

{x=787,m=2655,a=1222,s=2876}
{x=1679,m=44,a=2067,s=496}
{x=2036,m=264,a=79,s=2244}
{x=2461,m=1339,a=466,s=291}
{x=2127,m=1623,a=2188,s=1013}`

func parse(t *testing.T, text string) System {
	t.Helper()
	s, err := Parse(strings.Split(text, "\n"))
	require.NoError(t, err)
	return s
}

func TestParts(t *testing.T) {
	s := parse(t, sample)
	assert.Len(t, s.Workflows, 11)
	assert.Len(t, s.Parts, 5)

	p1, err := s.Part1()
	require.NoError(t, err)
	assert.EqualValues(t, 19114, p1)

	p2, err := s.Part2()
	require.NoError(t, err)
	assert.EqualValues(t, 167409079868000, p2)
}

func TestAccepted(t *testing.T) {
	s := parse(t, sample)
	want := []bool{true, false, true, false, true}
	for i, p := range s.Parts {
		got, err := s.Accepted(p)
		require.NoError(t, err)
		assert.Equal(t, want[i], got, "part %d", i+1)
	}
}

// Every accepted part must fall in exactly one accepted box.
func TestAcceptedBoxes_Disjoint(t *testing.T) {
	s := parse(t, sample)
	boxes, err := s.AcceptedBoxes(FullBox)
	require.NoError(t, err)
	for _, p := range s.Parts {
		ok, err := s.Accepted(p)
		require.NoError(t, err)
		n := 0
		for _, b := range boxes {
			if b[0].Contains(p[0]) && b[1].Contains(p[1]) && b[2].Contains(p[2]) && b[3].Contains(p[3]) {
				n++
			}
		}
		if ok {
			assert.Equal(t, 1, n, "part %v", p)
		} else {
			assert.Zero(t, n, "part %v", p)
		}
	}
}

func TestPart2_Trivial(t *testing.T) {
	all := parse(t, "in{A}\n\n{x=1,m=1,a=1,s=1}")
	got, err := all.Part2()
	require.NoError(t, err)
	assert.EqualValues(t, int64(4000*4000)*4000*4000, got)

	half := parse(t, "in{x<2001:A,R}\n\n{x=1,m=1,a=1,s=1}")
	got, err = half.Part2()
	require.NoError(t, err)
	assert.EqualValues(t, int64(2000*4000)*4000*4000, got)
}

func TestRule_Split(t *testing.T) {
	iv := primitives.Interval[int64]{Lo: 1, Hi: 11}
	match, rest := Rule{Op: '<', Value: 4}.Split(iv)
	assert.Equal(t, primitives.Interval[int64]{Lo: 1, Hi: 4}, match)
	assert.Equal(t, primitives.Interval[int64]{Lo: 4, Hi: 11}, rest)

	match, rest = Rule{Op: '>', Value: 4}.Split(iv)
	assert.Equal(t, primitives.Interval[int64]{Lo: 5, Hi: 11}, match)
	assert.Equal(t, primitives.Interval[int64]{Lo: 1, Hi: 5}, rest)
}

func TestParseWorkflow(t *testing.T) {
	w, err := ParseWorkflow("px{a<2006:qkq,m>2090:A,rfg}")
	require.NoError(t, err)
	assert.Equal(t, Workflow{
		Name: "px",
		Rules: []Rule{
			{Cat: 2, Op: '<', Value: 2006, Target: "qkq"},
			{Cat: 1, Op: '>', Value: 2090, Target: "A"},
		},
		Fallback: "rfg",
	}, w)
	assert.Equal(t, "a<2006:qkq", w.Rules[0].String())
}

func TestParse_Errors(t *testing.T) {
	for name, text := range map[string]string{
		"no parts":         "in{A}",
		"bad workflow":     "in{A\n\n{x=1,m=1,a=1,s=1}",
		"bad rule":         "in{q<1:A,R}\n\n{x=1,m=1,a=1,s=1}",
		"empty fallback":   "in{}\n\n{x=1,m=1,a=1,s=1}",
		"duplicate":        "in{A}\nin{R}\n\n{x=1,m=1,a=1,s=1}",
		"missing category": "in{A}\n\n{x=1,m=1,a=1}",
		"repeated rating":  "in{A}\n\n{x=1,m=1,a=1,s=1,x=2}",
		"no braces":        "in{A}\n\nx=1,m=1,a=1,s=1",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := Parse(strings.Split(text, "\n"))
			assert.Error(t, err)
		})
	}
}

func TestUnknownWorkflow(t *testing.T) {
	s := parse(t, "in{x<10:nope,A}\n\n{x=1,m=1,a=1,s=1}")
	_, err := s.Part1()
	assert.ErrorIs(t, err, ErrUnknownWorkflow)
	_, err = s.Part2()
	assert.ErrorIs(t, err, ErrUnknownWorkflow)
}

func TestLoop(t *testing.T) {
	s := parse(t, "in{x<10:ab,A}\nab{cd}\ncd{in}\n\n{x=1,m=1,a=1,s=1}")
	_, err := s.Part1()
	assert.ErrorIs(t, err, ErrLoop)
	_, err = s.Part2()
	assert.ErrorIs(t, err, ErrLoop)
}
