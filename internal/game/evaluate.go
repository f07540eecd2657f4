// apps/go-board/internal/game/evaluate.go
//
// Guess evaluation using the two-pass Wordle algorithm.

package game

// Evaluate compares guess against solution and returns one Status per position.
//
// Pass 1:
//   - Count every solution letter.
//   - Mark exact matches as correct and take them out of the count.
//
// Pass 2:
//   - For each remaining guess letter: if the count for that letter is still
//     positive, mark present and decrement; otherwise mark absent.
//
// Exact matches are credited first so a letter that occurs once in the
// solution never earns two marks. guess and solution must have equal length.
func Evaluate(guess, solution string) []Status {
	g := []rune(guess)
	s := []rune(solution)
	res := make([]Status, len(g))

	remaining := make(map[rune]int, len(s))
	for _, r := range s {
		remaining[r]++
	}

	for i := range g {
		if g[i] == s[i] {
			res[i] = StatusCorrect
			remaining[g[i]]--
		}
	}

	for i := range g {
		if res[i] == StatusCorrect {
			continue
		}
		if remaining[g[i]] > 0 {
			res[i] = StatusPresent
			remaining[g[i]]--
		} else {
			res[i] = StatusAbsent
		}
	}
	return res
}

// allCorrect returns true if every status is StatusCorrect.
func allCorrect(st []Status) bool {
	for _, x := range st {
		if x != StatusCorrect {
			return false
		}
	}
	return true
}
