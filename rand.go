package blast

// IntN is a wrapper around rand.IntN that allows for non-positive values.
func (e *Engine) IntN(n int) int {
	if n <= 0 {
		return 0
	}
	return e.rand.IntN(n)
}

// Die returns a random number between 1 and n. It returns 1 for non-positive
// values.
func (e *Engine) Die(n int) int {
	return e.IntN(n) + 1
}

// Dice returns the sum of n rolls of an s-sided die.
func (e *Engine) Dice(n, s int) int {
	sum := 0
	for range n {
		sum += e.Die(s)
	}
	return sum
}

// OneIn reports whether a one in n chance succeeded. It is always true for
// n <= 1.
func (e *Engine) OneIn(n int) bool {
	return e.IntN(n) == 0
}

// saves reports whether a monster of the given level shrugs off a
// level-gated effect of the given power.
func (e *Engine) saves(level, power int) bool {
	return level > e.Die(max(1, power-10))+10
}

// distStatus returns a status duration that decays with effective distance.
func (e *Engine) distStatus(base, spread, dist int) int {
	return (base + e.Die(spread) + dist) / (dist + 1)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func sign(x int) int {
	switch {
	case x < 0:
		return -1
	case x > 0:
		return 1
	default:
		return 0
	}
}
