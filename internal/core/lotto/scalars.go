package lotto

// Membership tables for the fixed number families on the 5x5 card
// index 0 is unused so tables read naturally as table[number]
var (
	// primes <= 25
	primeSet = memberSet(2, 3, 5, 7, 11, 13, 17, 19, 23)

	// fibonacci members on the board
	fibonacciSet = memberSet(1, 2, 3, 5, 8, 13, 21)

	// frame: the 16 border cells of the printed 5x5 card
	frameSet = memberSet(1, 2, 3, 4, 5, 6, 10, 11, 15, 16, 20, 21, 22, 23, 24, 25)

	// portrait: the 9 center cells, complement of the frame
	portraitSet = memberSet(7, 8, 9, 12, 13, 14, 17, 18, 19)
)

func memberSet(xs ...int) [MaxNumber + 1]bool {
	var t [MaxNumber + 1]bool
	for _, x := range xs {
		t[x] = true
	}
	return t
}

// Sum totals the numbers in the set
func (ns Numbers) Sum() int {
	s := 0
	for _, n := range ns {
		s += n
	}
	return s
}

// Evens counts even members
func (ns Numbers) Evens() int {
	c := 0
	for _, n := range ns {
		if n%2 == 0 {
			c++
		}
	}
	return c
}

// Primes counts members of the prime family
func (ns Numbers) Primes() int { return ns.countIn(primeSet) }

// Frame counts members on the card border
func (ns Numbers) Frame() int { return ns.countIn(frameSet) }

// Portrait counts members in the card center
func (ns Numbers) Portrait() int { return ns.countIn(portraitSet) }

// Fibonacci counts members of the fibonacci family
func (ns Numbers) Fibonacci() int { return ns.countIn(fibonacciSet) }

// MultiplesOfThree counts members divisible by three
func (ns Numbers) MultiplesOfThree() int {
	c := 0
	for _, n := range ns {
		if n%3 == 0 {
			c++
		}
	}
	return c
}

// Repeats counts members shared with prev, typically the preceding draw
// a nil prev yields zero
func (ns Numbers) Repeats(prev Numbers) int {
	if len(prev) == 0 {
		return 0
	}
	return ns.Overlap(prev)
}

func (ns Numbers) countIn(table [MaxNumber + 1]bool) int {
	c := 0
	for _, n := range ns {
		if table[n] {
			c++
		}
	}
	return c
}
