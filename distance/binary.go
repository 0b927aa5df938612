package distance

// Binary distance metrics for binary/boolean vectors.
// These treat non-zero values as true and zero values as false.

// contingency holds the 2x2 agreement counts of two boolean vectors.
// tt + tf + ft + ff always equals the vector length.
type contingency struct {
	tt, tf, ft, ff int
}

// mismatches returns the number of coordinates where exactly one side is true.
func (c contingency) mismatches() int { return c.tf + c.ft }

func (c contingency) n() int { return c.tt + c.tf + c.ft + c.ff }

// countBinary counts true-true, true-false, false-true, false-false pairs.
func countBinary[T Float](x, y []T) contingency {
	mustMatch(x, y)
	var c contingency
	for i := range x {
		xTrue := x[i] != 0
		yTrue := y[i] != 0
		switch {
		case xTrue && yTrue:
			c.tt++
		case xTrue:
			c.tf++
		case yTrue:
			c.ft++
		default:
			c.ff++
		}
	}
	return c
}

// Hamming computes the proportion of coordinates whose values differ.
// Unlike the other metrics in this file it compares raw values, not
// truthiness. Empty input yields NaN.
// D(x, y) = (number of x_i != y_i) / n
func Hamming[T Float](x, y []T) T {
	mustMatch(x, y)
	var count int
	for i := range x {
		if x[i] != y[i] {
			count++
		}
	}
	return T(count) / T(len(x))
}

// Jaccard computes the Jaccard distance. Two all-false vectors are at
// distance 0.
// D(x, y) = (ntf + nft) / (ntt + ntf + nft)
func Jaccard[T Float](x, y []T) T {
	c := countBinary(x, y)
	union := c.tt + c.mismatches()
	if union == 0 {
		return 0
	}
	return T(c.mismatches()) / T(union)
}

// Dice computes the Dice distance (Sørensen-Dice).
// D(x, y) = (ntf + nft) / (2*ntt + ntf + nft)
func Dice[T Float](x, y []T) T {
	c := countBinary(x, y)
	ne := c.mismatches()
	if ne == 0 {
		return 0
	}
	return T(ne) / (2*T(c.tt) + T(ne))
}

// Matching computes the proportion of coordinates whose truthiness differs.
// Empty input yields NaN.
// D(x, y) = (ntf + nft) / n
func Matching[T Float](x, y []T) T {
	c := countBinary(x, y)
	return T(c.mismatches()) / T(c.n())
}

// Kulsinski computes the Kulsinski distance.
// D(x, y) = (ntf + nft - ntt + n) / (ntf + nft + n)
func Kulsinski[T Float](x, y []T) T {
	c := countBinary(x, y)
	ne := c.mismatches()
	if ne == 0 {
		return 0
	}
	n := T(c.n())
	return (T(ne) - T(c.tt) + n) / (T(ne) + n)
}

// RogersTanimoto computes the Rogers-Tanimoto distance. Empty input yields NaN.
// D(x, y) = 2*(ntf + nft) / (n + ntf + nft)
func RogersTanimoto[T Float](x, y []T) T {
	c := countBinary(x, y)
	ne := T(c.mismatches())
	return 2 * ne / (T(c.n()) + ne)
}

// SokalMichener computes the Sokal-Michener distance, which has the same
// closed form as Rogers-Tanimoto.
func SokalMichener[T Float](x, y []T) T {
	return RogersTanimoto(x, y)
}

// RussellRao computes the Russell-Rao distance. When every true coordinate
// of x is true in y and vice versa the distance is 0; this includes empty
// and all-false input.
// D(x, y) = (n - ntt) / n
func RussellRao[T Float](x, y []T) T {
	c := countBinary(x, y)
	if c.tf == 0 && c.ft == 0 {
		return 0
	}
	n := T(c.n())
	return (n - T(c.tt)) / n
}

// SokalSneath computes the Sokal-Sneath distance.
// D(x, y) = (ntf + nft) / (0.5*ntt + ntf + nft)
func SokalSneath[T Float](x, y []T) T {
	c := countBinary(x, y)
	ne := c.mismatches()
	if ne == 0 {
		return 0
	}
	return T(ne) / (0.5*T(c.tt) + T(ne))
}

// Yule computes the Yule distance. It is 0 whenever either off-diagonal
// count is zero.
// D(x, y) = 2*ntf*nft / (ntt*nff + ntf*nft)
func Yule[T Float](x, y []T) T {
	c := countBinary(x, y)
	if c.tf == 0 || c.ft == 0 {
		return 0
	}
	tf, ft := T(c.tf), T(c.ft)
	return 2 * tf * ft / (T(c.tt)*T(c.ff) + tf*ft)
}
