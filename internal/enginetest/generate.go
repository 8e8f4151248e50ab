package enginetest

import "math/rand"

// alphabet is the fixed, small literal alphabet generated patterns and
// inputs are drawn from — large enough to exercise alternation and
// concatenation meaningfully, small enough that random inputs collide
// with random patterns often enough to be an interesting test.
const alphabet = "abc"

// GenPattern produces a random pattern string from the grammar in §6,
// roughly bounded by budget AST nodes. It is deterministic given rng, so
// a failing case found in CI reproduces from the same seed.
func GenPattern(rng *rand.Rand, budget int) string {
	if budget <= 1 {
		return string(alphabet[rng.Intn(len(alphabet))])
	}
	switch rng.Intn(6) {
	case 0:
		return string(alphabet[rng.Intn(len(alphabet))])
	case 1:
		return GenPattern(rng, budget/2) + GenPattern(rng, budget/2)
	case 2:
		return "(" + GenPattern(rng, budget/2) + "|" + GenPattern(rng, budget/2) + ")"
	case 3:
		return "(" + GenPattern(rng, budget-1) + ")*"
	case 4:
		return "(" + GenPattern(rng, budget-1) + ")+"
	default:
		return "(" + GenPattern(rng, budget-1) + ")?"
	}
}

// GenInput produces a random string of up to maxLen scalars from the
// same alphabet GenPattern draws literals from.
func GenInput(rng *rand.Rand, maxLen int) string {
	n := rng.Intn(maxLen + 1)
	buf := make([]byte, n)
	for i := range buf {
		buf[i] = alphabet[rng.Intn(len(alphabet))]
	}
	return string(buf)
}
