package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	c = StatusCorrect
	p = StatusPresent
	a = StatusAbsent
)

func TestEvaluate_Vectors(t *testing.T) {
	cases := []struct {
		guess, solution string
		want            []Status
	}{
		// E twice in both words, no exact hits: S, E, E present.
		{"SPEED", "ERASE", []Status{p, a, p, p, a}},
		{"CRANE", "CRANE", []Status{c, c, c, c, c}},
		{"FJORD", "BUILT", []Status{a, a, a, a, a}},
		// Exact O credited first, the other O becomes present.
		{"ROBOT", "FLOOR", []Status{p, p, a, c, a}},
		// Two L in both: both present; A has no match.
		{"LLAMA", "HELLO", []Status{p, p, a, a, a}},
		// Three E in guess, two in solution: third E is absent.
		{"EERIE", "SPEED", []Status{p, p, a, a, a}},
		// Single E in solution already used by the exact match.
		{"GEESE", "THEME", []Status{a, a, c, a, c}},
		{"ABBEY", "BABES", []Status{p, p, c, c, a}},
	}
	for _, tc := range cases {
		t.Run(tc.guess+"/"+tc.solution, func(t *testing.T) {
			assert.Equal(t, tc.want, Evaluate(tc.guess, tc.solution))
		})
	}
}

func TestEvaluate_Idempotent(t *testing.T) {
	first := Evaluate("SPEED", "ERASE")
	second := Evaluate("SPEED", "ERASE")
	assert.Equal(t, first, second)
}

func TestEvaluate_NeverOvercreditsLetters(t *testing.T) {
	words := []string{"SPEED", "ERASE", "EERIE", "LLAMA", "HELLO", "ROBOT", "FLOOR", "ABBEY", "BABES", "MAMMA", "GEESE", "THEME"}
	for _, sol := range words {
		for _, guess := range words {
			st := Evaluate(guess, sol)
			require.Len(t, st, len(guess))

			credited := map[rune]int{}
			for i, r := range guess {
				require.NotEqual(t, StatusUnset, st[i])
				if st[i] != StatusAbsent {
					credited[r]++
				}
			}
			occurs := map[rune]int{}
			for _, r := range sol {
				occurs[r]++
			}
			for r, n := range credited {
				assert.LessOrEqualf(t, n, occurs[r], "guess %s vs %s letter %c", guess, sol, r)
			}
		}
	}
}
